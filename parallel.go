package iotac

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Source is one named input for ParseAll and ParseEach.
type Source struct {
	Name string // Recorded in error positions
	Text string
}

// Result is the outcome of parsing one Source. Exactly one of Tree and
// Err is non-nil.
type Result struct {
	Name string
	Tree *Tree
	Err  error
}

// ParseAll parses independent sources in parallel, at most
// config.Workers at a time. Trees are returned in input order. The first
// failure cancels the sources not yet started and is returned alone.
//
// Parsing is pure: the result equals parsing each source in turn.
func ParseAll(ctx context.Context, sources []Source, config *Config) ([]*Tree, error) {
	c, pc, err := resolve(config)
	if err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Workers)

	trees := make([]*Tree, len(sources))
	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pc := pc
			pc.Filename = src.Name
			tree, err := parseTree(src.Text, c, pc)
			if err != nil {
				return err
			}
			trees[i] = tree
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return trees, nil
}

// ParseEach parses independent sources in parallel like ParseAll, but a
// failing source does not stop the others. Results are in input order.
// Sources not started before ctx is done report ctx.Err().
func ParseEach(ctx context.Context, sources []Source, config *Config) ([]Result, error) {
	c, pc, err := resolve(config)
	if err != nil {
		return nil, err
	}

	var g errgroup.Group
	g.SetLimit(c.Workers)

	results := make([]Result, len(sources))
	for i, src := range sources {
		results[i].Name = src.Name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			pc := pc
			pc.Filename = src.Name
			results[i].Tree, results[i].Err = parseTree(src.Text, c, pc)
			return nil
		})
	}
	_ = g.Wait() // Workers record their errors in results.
	return results, nil
}
