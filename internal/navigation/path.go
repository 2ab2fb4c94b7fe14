// Package navigation computes preference-weighted routes over any
// Navigatable graph. It runs Dijkstra between consecutive waypoints
// and stitches the per-pair results into one Path.
package navigation

import (
	"container/heap"

	"github.com/dsp/neweden/internal/universe"
)

// Preference is the edge-cost policy of a path build. Costs are
// positive integers, which keeps Dijkstra admissible.
type Preference int

const (
	// PreferShortest weighs every connection at 1, minimizing jumps.
	PreferShortest Preference = iota
	// PreferHighsec weighs a connection at 1 when its destination is
	// highsec and 1000 otherwise. The penalty biases, it does not
	// forbid: if no highsec route exists a route is still found.
	PreferHighsec
	// PreferLowsecAndNullsec is the inverse of PreferHighsec.
	PreferLowsecAndNullsec
)

func (p Preference) cost(to *universe.System) int {
	switch p {
	case PreferHighsec:
		if to.Security.Class() == universe.Highsec {
			return 1
		}
		return 1000
	case PreferLowsecAndNullsec:
		if to.Security.Class() == universe.Highsec {
			return 1000
		}
		return 1
	default:
		return 1
	}
}

func (p Preference) String() string {
	switch p {
	case PreferHighsec:
		return "highsec"
	case PreferLowsecAndNullsec:
		return "lowsec-and-nullsec"
	default:
		return "shortest"
	}
}

// ElementKind tags a path element.
type ElementKind int

const (
	// ElementWaypoint marks a system that was requested as a waypoint.
	ElementWaypoint ElementKind = iota
	// ElementSystem marks an intermediate system on the route.
	ElementSystem
	// ElementConnection marks the connection traversed between the
	// surrounding systems.
	ElementConnection
)

// PathElement is one entry of the flattened route: either a system
// (waypoint or intermediate) or the connection just traversed.
// System is set for waypoint and system elements, Connection for
// connection elements.
type PathElement struct {
	Kind       ElementKind
	System     *universe.System
	Connection *universe.Connection
}

// Path is a computed route. It is immutable; iterating it never
// re-runs the search.
type Path struct {
	elements []PathElement
	jumps    int
}

// Jumps returns the total number of connections traversed.
func (p *Path) Jumps() int {
	return p.jumps
}

// From returns the first system on the path, or nil on an empty path.
func (p *Path) From() *universe.System {
	for i := range p.elements {
		if p.elements[i].Kind != ElementConnection {
			return p.elements[i].System
		}
	}
	return nil
}

// To returns the last system on the path, or nil on an empty path.
func (p *Path) To() *universe.System {
	for i := len(p.elements) - 1; i >= 0; i-- {
		if p.elements[i].Kind != ElementConnection {
			return p.elements[i].System
		}
	}
	return nil
}

// Iter returns a fresh cursor over the path elements. Each call
// restarts from the beginning and replays the same sequence.
func (p *Path) Iter() *PathIterator {
	return &PathIterator{path: p}
}

// PathIterator walks a Path front to back.
type PathIterator struct {
	path *Path
	cur  int
}

// Next returns the next element, or ok=false past the end.
func (it *PathIterator) Next() (PathElement, bool) {
	if it.cur >= len(it.path.elements) {
		return PathElement{}, false
	}
	el := it.path.elements[it.cur]
	it.cur++
	return el, true
}

// PathBuilder accumulates waypoints and a preference, then computes
// the route with Build.
type PathBuilder struct {
	nav        universe.Navigatable
	waypoints  []*universe.System
	preference Preference
}

// NewPathBuilder creates a builder over the given graph. The default
// preference is PreferShortest.
func NewPathBuilder(nav universe.Navigatable) *PathBuilder {
	return &PathBuilder{nav: nav}
}

// Waypoint appends one waypoint. Waypoints are visited in the order
// they were added.
func (b *PathBuilder) Waypoint(s *universe.System) *PathBuilder {
	b.waypoints = append(b.waypoints, s)
	return b
}

// Waypoints appends several waypoints in order.
func (b *PathBuilder) Waypoints(systems []*universe.System) *PathBuilder {
	b.waypoints = append(b.waypoints, systems...)
	return b
}

// Prefer selects the edge-cost policy.
func (b *PathBuilder) Prefer(p Preference) *PathBuilder {
	b.preference = p
	return b
}

// Build computes the route through all waypoints. Fewer than two
// waypoints yields an empty path. If any consecutive waypoint pair is
// unreachable the whole build returns nil; a partial route is never
// returned.
//
// Between parallel connections of equal cost the first one in
// adjacency insertion order wins: the search only relaxes a node on a
// strictly smaller tentative distance. This makes repeated builds over
// the same graph fully deterministic.
func (b *PathBuilder) Build() *Path {
	path := &Path{}
	for i := 0; i+1 < len(b.waypoints); i++ {
		segment := b.search(b.waypoints[i], b.waypoints[i+1])
		if segment == nil {
			return nil
		}
		// The segment starts with the waypoint the previous segment
		// ended on; keep a single waypoint element at the seam.
		if len(path.elements) > 0 {
			segment = segment[1:]
		}
		for _, el := range segment {
			if el.Kind == ElementConnection {
				path.jumps++
			}
		}
		path.elements = append(path.elements, segment...)
	}
	return path
}

// step records how a system was reached during the search.
type step struct {
	prev universe.SystemID
	via  universe.Connection
}

func (b *PathBuilder) search(from, to *universe.System) []PathElement {
	if from.ID == to.ID {
		return []PathElement{{Kind: ElementWaypoint, System: from}}
	}

	dist := map[universe.SystemID]int{from.ID: 0}
	came := map[universe.SystemID]step{}

	pq := &priorityQueue{{id: from.ID, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		if item.id == to.ID {
			return b.reconstruct(from, to, came)
		}
		if d, ok := dist[item.id]; ok && item.dist > d {
			continue
		}
		for _, conn := range b.nav.GetConnections(item.id) {
			next := b.nav.GetSystem(conn.To)
			if next == nil {
				// Dangling edge; nothing to traverse into.
				continue
			}
			nd := item.dist + b.preference.cost(next)
			if d, ok := dist[conn.To]; !ok || nd < d {
				dist[conn.To] = nd
				came[conn.To] = step{prev: item.id, via: conn}
				heap.Push(pq, pqItem{id: conn.To, dist: nd})
			}
		}
	}
	return nil
}

func (b *PathBuilder) reconstruct(from, to *universe.System, came map[universe.SystemID]step) []PathElement {
	// Walk the predecessor chain backwards, then reverse.
	var rev []PathElement
	cur := to.ID
	for cur != from.ID {
		s := came[cur]
		conn := s.via
		kind := ElementSystem
		if cur == to.ID {
			kind = ElementWaypoint
		}
		rev = append(rev, PathElement{Kind: kind, System: b.nav.GetSystem(cur)})
		rev = append(rev, PathElement{Kind: ElementConnection, Connection: &conn})
		cur = s.prev
	}
	rev = append(rev, PathElement{Kind: ElementWaypoint, System: from})

	out := make([]PathElement, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		out = append(out, rev[i])
	}
	return out
}

// Priority queue for Dijkstra.
type pqItem struct {
	id   universe.SystemID
	dist int
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
