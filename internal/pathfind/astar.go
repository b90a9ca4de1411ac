package pathfind

import (
	"container/heap"

	"heroes_ai/internal/army"
)

type pathNode struct {
	cell   army.Cell
	g, h   int
	seq    int
	parent *pathNode
	index  int // heap index
}

// openList orders by f = g+h; equal f pops in insertion order so runs are repeatable.
type openList []*pathNode

func (ol openList) Len() int { return len(ol) }
func (ol openList) Less(i, j int) bool {
	fi, fj := ol[i].g+ol[i].h, ol[j].g+ol[j].h
	if fi != fj {
		return fi < fj
	}
	return ol[i].seq < ol[j].seq
}
func (ol openList) Swap(i, j int) { ol[i], ol[j] = ol[j], ol[i]; ol[i].index = i; ol[j].index = j }
func (ol *openList) Push(x any) { n := x.(*pathNode); n.index = len(*ol); *ol = append(*ol, n) }
func (ol *openList) Pop() any {
	old := *ol
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*ol = old[:len(old)-1]
	return n
}

// Blocked marks the cells of every living unit except the two endpoints.
func (g Grid) Blocked(units []*army.Unit, source, target *army.Unit) []bool {
	blocked := make([]bool, g.Width*g.Height)
	for _, u := range units {
		if u == nil || u == source || u == target || !u.IsAlive() {
			continue
		}
		if c := u.Pos(); g.Inside(c) {
			blocked[g.key(c)] = true
		}
	}
	return blocked
}

// FindPath returns the cells from source to target inclusive, moving in 8 directions at
// unit cost. It returns nil when either unit is missing, either endpoint lies off the
// grid, or the target cannot be reached.
func (g Grid) FindPath(source, target *army.Unit, units []*army.Unit) []army.Cell {
	if source == nil || target == nil || g.Width <= 0 || g.Height <= 0 {
		return nil
	}
	start, goal := source.Pos(), target.Pos()
	if !g.Inside(start) || !g.Inside(goal) {
		return nil
	}
	return g.search(start, goal, g.Blocked(units, source, target))
}

func (g Grid) search(start, goal army.Cell, blocked []bool) []army.Cell {
	closed := make([]bool, g.Width*g.Height)
	best := make(map[int]int)
	seq := 0

	ol := &openList{{cell: start, h: Chebyshev(start, goal)}}
	heap.Init(ol)
	best[g.key(start)] = 0

	for ol.Len() > 0 {
		cur := heap.Pop(ol).(*pathNode)
		k := g.key(cur.cell)
		if closed[k] {
			continue
		}
		closed[k] = true
		if cur.cell == goal {
			return buildPath(cur)
		}

		for _, d := range dirs {
			next := army.Cell{X: cur.cell.X + d.X, Y: cur.cell.Y + d.Y}
			if !g.Inside(next) {
				continue
			}
			nk := g.key(next)
			if blocked[nk] || closed[nk] {
				continue
			}
			ng := cur.g + 1
			if prev, ok := best[nk]; ok && ng >= prev {
				continue
			}
			best[nk] = ng
			seq++
			heap.Push(ol, &pathNode{cell: next, g: ng, h: Chebyshev(next, goal), seq: seq, parent: cur})
		}
	}
	return nil
}

func buildPath(end *pathNode) []army.Cell {
	var cells []army.Cell
	for n := end; n != nil; n = n.parent {
		cells = append(cells, n.cell)
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}

// FindPath searches the default 27x21 grid.
func FindPath(source, target *army.Unit, units []*army.Unit) []army.Cell {
	return DefaultGrid().FindPath(source, target, units)
}
