package universe

import "sort"

// kdTree is a static 3-d tree over system coordinates. It is built
// once by NewUniverse and never modified, which keeps radius queries
// lock-free for concurrent readers.
type kdTree struct {
	root *kdNode
}

type kdNode struct {
	system      *System
	axis        int
	left, right *kdNode
}

func axisValue(c Coordinate, axis int) float64 {
	switch axis {
	case 0:
		return c.X
	case 1:
		return c.Y
	default:
		return c.Z
	}
}

func newKDTree(systems []*System) *kdTree {
	nodes := make([]*System, len(systems))
	copy(nodes, systems)
	return &kdTree{root: buildKD(nodes, 0)}
}

func buildKD(systems []*System, depth int) *kdNode {
	if len(systems) == 0 {
		return nil
	}
	axis := depth % 3
	sort.Slice(systems, func(i, j int) bool {
		return axisValue(systems[i].Coordinate, axis) < axisValue(systems[j].Coordinate, axis)
	})
	mid := len(systems) / 2
	return &kdNode{
		system: systems[mid],
		axis:   axis,
		left:   buildKD(systems[:mid], depth+1),
		right:  buildKD(systems[mid+1:], depth+1),
	}
}

// inRadius collects every system whose distance to origin is at most
// radius. Comparison is on squared distances; subtrees are pruned when
// the splitting plane is farther than the radius. Result order is
// traversal order, not distance order.
func (t *kdTree) inRadius(origin Coordinate, radius Meters) []*System {
	if t.root == nil || radius < 0 {
		return nil
	}
	rr := float64(radius) * float64(radius)
	var out []*System
	var walk func(n *kdNode)
	walk = func(n *kdNode) {
		if n == nil {
			return
		}
		if origin.DistanceSquared(n.system.Coordinate) <= rr {
			out = append(out, n.system)
		}
		diff := axisValue(origin, n.axis) - axisValue(n.system.Coordinate, n.axis)
		if diff <= 0 {
			walk(n.left)
			if diff*diff <= rr {
				walk(n.right)
			}
		} else {
			walk(n.right)
			if diff*diff <= rr {
				walk(n.left)
			}
		}
	}
	walk(t.root)
	return out
}
