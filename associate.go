package go_sball

import (
	"context"
)

// Associate matches every query point with its nearest reference points.
// The tree is built for this call only; build it once with New when the
// same reference set is matched against several query batches.
func Associate(ctx context.Context, reference, query []Point, opts ...QueryOption) (*Result, error) {
	tree, err := New(reference)
	if err != nil {
		return nil, err
	}
	return tree.Query(ctx, query, opts...)
}
