package go_sball

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// boundSlack absorbs rounding in the haversine evaluation so that the
// lower bound of a ball never exceeds the true distance to one of its points.
const boundSlack = 1e-12

// location is a distinct reference coordinate reached by a search.
type location struct {
	loc      int
	distance s1.Angle
}

// Node is a ball of the tree: every location below it lies within radius of center.
type Node struct {
	center      s2.LatLng
	radius      s1.Angle
	indices     []int
	children    []*Node
	isLeaveNode bool
}

func (n *Node) IsLeaveNode() bool {
	return n.isLeaveNode
}

// Len returns the number of distinct reference locations covered by the ball.
func (n *Node) Len() int {
	return len(n.indices)
}

// MinDistance returns a lower bound of the distance between point and any point inside the ball.
func (n *Node) MinDistance(point s2.LatLng) float64 {
	d := float64(HaversineLatLng(point, n.center)-n.radius) - boundSlack
	if d < 0 {
		return 0
	}
	return d
}

// Contains reports whether the ball covers the given point.
func (n *Node) Contains(point s2.LatLng) bool {
	return HaversineLatLng(point, n.center) <= n.radius+boundSlack
}

func (n *Node) AddChildrenToQueue(point s2.LatLng, addFunction func(interface{}, float64)) {
	for _, child := range n.children {
		addFunction(child, child.MinDistance(point))
	}
}

func (n *Node) AddValuesToQueue(point s2.LatLng, points []s2.LatLng, addFunction func(interface{}, float64)) {
	for _, i := range n.indices {
		d := HaversineLatLng(point, points[i])
		addFunction(location{loc: i, distance: d}, float64(d))
	}
}

// Depth returns the number of levels below and including the node.
func (n *Node) Depth() int {
	depth := 0
	for _, child := range n.children {
		depth = max(depth, child.Depth())
	}
	return depth + 1
}

// ValuesCount returns the number of locations held by every leaf below the node.
func (n *Node) ValuesCount() []int {
	if n.isLeaveNode {
		return []int{len(n.indices)}
	}
	result := make([]int, 0)
	for _, child := range n.children {
		result = append(result, child.ValuesCount()...)
	}
	return result
}
