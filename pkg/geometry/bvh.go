package geometry

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHNode represents a node in the Bounding Volume Hierarchy.
// Children are either further nodes or the scene objects themselves.
// Right is nil when the node wraps a single object.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	bbox  core.AABB
}

// BVHStats summarizes the shape of a built hierarchy
type BVHStats struct {
	Nodes    int // Interior BVHNode count
	Leaves   int // Scene objects referenced by the tree
	MaxDepth int // Longest root-to-object path, counting nodes
}

// NewBVH constructs a BVH from a slice of objects
func NewBVH(objects []Hittable) *BVHNode {
	if len(objects) == 0 {
		return &BVHNode{bbox: core.EmptyAABB}
	}

	// Make a copy of the slice so sorting never reorders the caller's objects
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy)
}

// buildBVH recursively splits objects at the median of their box minimums
// along the longest axis of their combined bounds
func buildBVH(objects []Hittable) *BVHNode {
	node := &BVHNode{}

	switch len(objects) {
	case 1:
		node.Left = objects[0]
	case 2:
		node.Left = objects[0]
		node.Right = objects[1]
	default:
		bounds := core.EmptyAABB
		for _, object := range objects {
			bounds = core.NewAABBFromBoxes(bounds, object.BoundingBox())
		}

		axis := bounds.LongestAxis()
		sortByBoxMin(objects, axis)

		mid := len(objects) / 2
		node.Left = buildBVH(objects[:mid])
		node.Right = buildBVH(objects[mid:])
	}

	node.bbox = node.Left.BoundingBox()
	if node.Right != nil {
		node.bbox = core.NewAABBFromBoxes(node.bbox, node.Right.BoundingBox())
	}
	return node
}

// sortByBoxMin orders objects by the minimum of their box on axis.
// The stable sort keeps equal keys in input order so trees are reproducible.
func sortByBoxMin(objects []Hittable, axis int) {
	type keyed struct {
		object Hittable
		key    float64
	}
	entries := make([]keyed, len(objects))
	for i, object := range objects {
		entries[i] = keyed{object, object.BoundingBox().AxisInterval(axis).Min}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].key < entries[j].key
	})
	for i := range entries {
		objects[i] = entries[i].object
	}
}

// Hit returns the closest hit in the subtree. A miss on the node box skips
// both children; a hit on the left narrows the search on the right.
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	if n.Left == nil || !n.bbox.Hit(ray, rayT) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, rayT, sampler)
	if n.Right == nil {
		return leftHit, hitLeft
	}

	upper := rayT.Max
	if hitLeft {
		upper = leftHit.T
	}

	if rightHit, hitRight := n.Right.Hit(ray, core.NewInterval(rayT.Min, upper), sampler); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the box computed when the node was built
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

// Stats walks the tree and reports its size and depth
func (n *BVHNode) Stats() BVHStats {
	var stats BVHStats
	n.collectStats(1, &stats)
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}
	for _, child := range []Hittable{n.Left, n.Right} {
		if child == nil {
			continue
		}
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.Leaves++
		}
	}
}
