package movegen

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tilesmith/tilesmith/alphabet"
	"github.com/tilesmith/tilesmith/move"
)

// generateThreaded runs every search task in its own search context, at
// most gen.threads at a time. Results are merged in task order through the
// play recorder, so the outcome is the same as a single-threaded search.
func (gen *Generator) generateThreaded(ctx context.Context, rack *alphabet.Rack, cs *crossSets,
	tasks []searchTask) ([]*move.Move, error) {

	results := make([][]*move.Move, len(tasks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(gen.threads)

	for i, t := range tasks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sc := newSearchContext(gen, rack, cs)
			sc.genFromAnchor(t.anchor, t.dir)
			results[i] = sc.plays
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var plays []*move.Move
	for _, r := range results {
		for _, m := range r {
			plays = gen.playRecorder(plays, m)
		}
	}
	return plays, nil
}
