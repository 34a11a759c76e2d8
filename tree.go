package go_sball

import (
	"context"
	"fmt"
	"slices"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/oleiade/lane/v2"
	"golang.org/x/sync/errgroup"
)

// Tree is a ball tree over a fixed set of reference points using the haversine metric.
// Reference points with identical coordinates share one location in the tree.
// A Tree is immutable once built and may be queried from several goroutines at once.
type Tree struct {
	root      *Node
	reference []Point
	// points, units and members are indexed by location; members lists the
	// reference indices at each location in ascending order.
	points     []s2.LatLng
	units      []s2.Point
	members    [][]int
	convention LonConvention
	leafSize   int
	nodes      int
	logger     *Logger
}

// New builds a tree over the reference points.
// Points keep their position in reference as their identity in every search result.
func New(reference []Point, opts ...Option) (*Tree, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	points, convention, err := validatePoints("reference", reference)
	if err != nil {
		o.logger.LogBuild(context.Background(), len(reference), o.leafSize, 0, err)
		return nil, err
	}

	t := &Tree{
		reference:  slices.Clone(reference),
		convention: convention,
		leafSize:   o.leafSize,
		logger:     o.logger,
	}
	locations := make(map[s2.LatLng]int, len(points))
	for i, p := range points {
		loc, ok := locations[p]
		if !ok {
			loc = len(t.points)
			locations[p] = loc
			t.points = append(t.points, p)
			t.units = append(t.units, s2.PointFromLatLng(p))
			t.members = append(t.members, nil)
		}
		t.members[loc] = append(t.members[loc], i)
	}
	order := make([]int, len(t.points))
	for i := range order {
		order[i] = i
	}
	t.root = t.buildNode(order)
	t.logger.LogBuild(context.Background(), len(points), t.leafSize, t.nodes, nil)
	return t, nil
}

// buildNode covers locs with a ball and splits it at the median of its widest axis
// until a ball holds no more than leafSize locations.
func (t *Tree) buildNode(locs []int) *Node {
	t.nodes++
	node := &Node{indices: locs, center: t.centroid(locs)}
	for _, i := range locs {
		node.radius = max(node.radius, HaversineLatLng(node.center, t.points[i]))
	}
	if len(locs) <= t.leafSize {
		node.isLeaveNode = true
		return node
	}

	mid := len(locs) / 2
	t.selectMedian(locs, mid, t.widestAxis(locs))
	node.children = []*Node{
		t.buildNode(locs[:mid]),
		t.buildNode(locs[mid:]),
	}
	return node
}

// selectMedian reorders locs so that locs[k] holds the k-th smallest location along axis,
// with smaller ones before it and larger ones after it. Equal components are ordered by location.
func (t *Tree) selectMedian(locs []int, k int, axis r3.Axis) {
	less := func(a, b int) bool {
		ca, cb := component(t.units[locs[a]], axis), component(t.units[locs[b]], axis)
		if ca != cb {
			return ca < cb
		}
		return locs[a] < locs[b]
	}
	swap := func(a, b int) {
		locs[a], locs[b] = locs[b], locs[a]
	}
	lo, hi := 0, len(locs)-1
	for lo < hi {
		// Median of three, moved to hi as the pivot.
		m := lo + (hi-lo)/2
		if less(m, lo) {
			swap(lo, m)
		}
		if less(hi, lo) {
			swap(lo, hi)
		}
		if less(hi, m) {
			swap(m, hi)
		}
		swap(m, hi)

		store := lo
		for i := lo; i < hi; i++ {
			if less(i, hi) {
				swap(store, i)
				store++
			}
		}
		swap(store, hi)

		switch {
		case k == store:
			return
		case k < store:
			hi = store - 1
		default:
			lo = store + 1
		}
	}
}

// centroid returns the normalized mean direction of the locations, or the first one when they cancel out.
func (t *Tree) centroid(locs []int) s2.LatLng {
	var sum r3.Vector
	for _, i := range locs {
		sum = sum.Add(t.units[i].Vector)
	}
	if sum.Norm() < 1e-12 {
		return t.points[locs[0]]
	}
	return s2.LatLngFromPoint(s2.Point{Vector: sum.Normalize()})
}

func (t *Tree) widestAxis(locs []int) r3.Axis {
	lo := t.units[locs[0]].Vector
	hi := lo
	for _, i := range locs[1:] {
		v := t.units[i].Vector
		lo = r3.Vector{X: min(lo.X, v.X), Y: min(lo.Y, v.Y), Z: min(lo.Z, v.Z)}
		hi = r3.Vector{X: max(hi.X, v.X), Y: max(hi.Y, v.Y), Z: max(hi.Z, v.Z)}
	}
	return hi.Sub(lo).LargestComponent()
}

func component(p s2.Point, axis r3.Axis) float64 {
	switch axis {
	case r3.XAxis:
		return p.X
	case r3.YAxis:
		return p.Y
	default:
		return p.Z
	}
}

// Size returns the number of reference points.
func (t *Tree) Size() int {
	return len(t.reference)
}

// Locations returns the number of distinct reference coordinates.
func (t *Tree) Locations() int {
	return len(t.points)
}

// Convention returns the longitude convention of the reference set.
func (t *Tree) Convention() LonConvention {
	return t.convention
}

// Root returns the outermost ball of the tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Search performs an exact nearest neighbor search around p.
// The callback is called for each reference point in order of non-decreasing distance,
// and the search stops if the callback returns true, every point was visited, or the context is canceled.
// Points at exactly the same distance are reported in an unspecified but repeatable order.
func (t *Tree) Search(ctx context.Context, p Point, callback func(Neighbor) bool) error {
	points, err := t.validateQuery([]Point{p})
	if err != nil {
		return err
	}
	return t.search(ctx, points[0], func(l location) bool {
		for _, i := range t.members[l.loc] {
			if callback(Neighbor{Index: i, Point: t.reference[i], Distance: l.distance}) {
				return true
			}
		}
		return false
	})
}

func (t *Tree) search(ctx context.Context, point s2.LatLng, callback func(location) bool) error {
	priorityQueue := lane.NewMinPriorityQueue[interface{}, float64]()
	priorityQueue.Push(t.root, t.root.MinDistance(point))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		popped, _, ok := priorityQueue.Pop()
		if !ok {
			return nil
		}
		switch node := popped.(type) {
		case *Node:
			if node.IsLeaveNode() {
				node.AddValuesToQueue(point, t.points, priorityQueue.Push)
			} else {
				node.AddChildrenToQueue(point, priorityQueue.Push)
			}
		case location:
			if callback(node) {
				return nil
			}
		}
	}
}

// Nearest returns the k reference points closest to p, sorted by distance and then by index.
func (t *Tree) Nearest(ctx context.Context, p Point, k int) ([]Neighbor, error) {
	if err := t.checkK(k); err != nil {
		return nil, err
	}
	points, err := t.validateQuery([]Point{p})
	if err != nil {
		return nil, err
	}
	found, err := t.nearest(ctx, points[0], k)
	if err != nil {
		return nil, err
	}
	for i := range found {
		found[i].Point = t.reference[found[i].Index]
	}
	return found, nil
}

// nearest keeps collecting past the k-th neighbour while distances tie with it,
// so that the lowest indices win after sorting. A location never contributes more
// than k indices, so duplicated coordinates are resolved without visiting them one by one.
func (t *Tree) nearest(ctx context.Context, point s2.LatLng, k int) ([]Neighbor, error) {
	found := make([]Neighbor, 0, k)
	var kth s1.Angle
	err := t.search(ctx, point, func(l location) bool {
		if len(found) >= k && l.distance > kth {
			return true
		}
		members := t.members[l.loc]
		if len(members) > k {
			members = members[:k]
		}
		for _, i := range members {
			found = append(found, Neighbor{Index: i, Distance: l.distance})
		}
		if len(found) >= k {
			kth = found[k-1].Distance
		}
		return false
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(found, func(a, b Neighbor) int {
		switch {
		case a.less(b):
			return -1
		case b.less(a):
			return 1
		}
		return 0
	})
	return found[:k], nil
}

// Query returns, for every query point, the indices of its k nearest reference points
// and, unless disabled with WithReturnDistance(false), their great-circle distances in radians.
func (t *Tree) Query(ctx context.Context, query []Point, opts ...QueryOption) (result *Result, err error) {
	o, err := newQueryOptions(opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		t.logger.LogQuery(ctx, len(query), o.k, o.workers, err)
	}()
	if err := t.checkK(o.k); err != nil {
		return nil, err
	}
	points, err := t.validateQuery(query)
	if err != nil {
		return nil, err
	}

	result = newResult(len(points), o.k, t.Size(), o.returnDistance)
	if o.workers == 1 {
		for i, p := range points {
			if err := t.fillRow(ctx, result, i, p, o.k); err != nil {
				return nil, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		chunk := (len(points) + o.workers - 1) / o.workers
		for start := 0; start < len(points); start += chunk {
			end := min(start+chunk, len(points))
			g.Go(func() error {
				for i := start; i < end; i++ {
					if err := t.fillRow(gctx, result, i, points[i], o.k); err != nil {
						return err
					}
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	if result.Rows() != len(query) {
		return nil, &ShapeMismatchError{Expected: len(query), Actual: result.Rows()}
	}
	return result, nil
}

func (t *Tree) fillRow(ctx context.Context, result *Result, row int, point s2.LatLng, k int) error {
	found, err := t.nearest(ctx, point, k)
	if err != nil {
		return err
	}
	for j, n := range found {
		result.Indices[row][j] = n.Index
		if result.Distances != nil {
			result.Distances[row][j] = n.Distance.Radians()
		}
	}
	return nil
}

func (t *Tree) checkK(k int) error {
	if k < 1 || k > t.Size() {
		return invalidParam("k", "k %d must be between 1 and %d", k, t.Size())
	}
	return nil
}

func (t *Tree) validateQuery(query []Point) ([]s2.LatLng, error) {
	points, convention, err := validatePoints("query", query)
	if err != nil {
		return nil, err
	}
	if !t.convention.compatible(convention) {
		return nil, &InvalidInputError{Set: "query", Index: -1,
			Reason: fmt.Sprintf("longitude convention %s does not match reference convention %s", convention, t.convention)}
	}
	return points, nil
}
