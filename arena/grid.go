package arena

import (
	"container/heap"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/skirmish/ecs/component"
	"github.com/milk9111/skirmish/ports"
)

// navGrid marks which arena cells an actor can stand in.
type navGrid struct {
	cell    float64
	cols    int
	rows    int
	blocked []bool
}

type cellPos struct {
	x, y int
}

func buildNavGrid(s *Space) *navGrid {
	g := &navGrid{cell: s.cfg.CellSize}
	g.cols = int(math.Ceil(s.cfg.Width / g.cell))
	g.rows = int(math.Ceil(s.cfg.Height / g.cell))
	if g.cols <= 0 || g.rows <= 0 {
		g.cols, g.rows = 0, 0
		return g
	}
	g.blocked = make([]bool, g.cols*g.rows)

	margin := defaultActorRadius * 0.5
	filter := cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: uint(component.LayerWall)}
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			bb := cp.BB{
				L: float64(x)*g.cell - margin,
				B: float64(y)*g.cell - margin,
				R: float64(x+1)*g.cell + margin,
				T: float64(y+1)*g.cell + margin,
			}
			idx := y*g.cols + x
			s.space.BBQuery(bb, filter, func(shape *cp.Shape, data interface{}) {
				g.blocked[idx] = true
			}, nil)
		}
	}
	return g
}

func (g *navGrid) blockedCount() int {
	n := 0
	for _, b := range g.blocked {
		if b {
			n++
		}
	}
	return n
}

// cellOf reports the cell containing p, or false outside the grid.
func (g *navGrid) cellOf(p ports.Point) (cellPos, bool) {
	if g.cols == 0 || p.X() < 0 || p.Y() < 0 {
		return cellPos{}, false
	}
	c := cellPos{x: int(p.X() / g.cell), y: int(p.Y() / g.cell)}
	if c.x >= g.cols || c.y >= g.rows {
		return cellPos{}, false
	}
	return c, true
}

func (g *navGrid) index(c cellPos) int {
	return c.y*g.cols + c.x
}

func (g *navGrid) open(c cellPos) bool {
	return c.x >= 0 && c.y >= 0 && c.x < g.cols && c.y < g.rows && !g.blocked[g.index(c)]
}

func (g *navGrid) center(c cellPos, z float64) ports.Point {
	return ports.Point{(float64(c.x) + 0.5) * g.cell, (float64(c.y) + 0.5) * g.cell, z}
}

func (g *navGrid) neighbors(c cellPos) []cellPos {
	out := make([]cellPos, 0, 4)
	for _, n := range []cellPos{{c.x - 1, c.y}, {c.x + 1, c.y}, {c.x, c.y - 1}, {c.x, c.y + 1}} {
		if g.open(n) {
			out = append(out, n)
		}
	}
	return out
}

// reachable floods open cells from origin whose centers lie within radius.
func (g *navGrid) reachable(origin ports.Point, radius float64) []cellPos {
	start, ok := g.cellOf(origin)
	if !ok || !g.open(start) {
		return nil
	}
	seen := make([]bool, len(g.blocked))
	seen[g.index(start)] = true
	queue := []cellPos{start}
	var out []cellPos
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		out = append(out, c)
		for _, n := range g.neighbors(c) {
			idx := g.index(n)
			if seen[idx] {
				continue
			}
			seen[idx] = true
			if g.center(n, origin.Z()).Sub(origin).Len() > radius {
				continue
			}
			queue = append(queue, n)
		}
	}
	return out
}

// path returns cell-center waypoints from start to goal using A* over open
// cells. The final waypoint is goal itself.
func (g *navGrid) path(from, to ports.Point) []ports.Point {
	start, ok := g.cellOf(from)
	if !ok {
		return nil
	}
	goal, ok := g.cellOf(to)
	if !ok || !g.open(goal) {
		return nil
	}
	if start == goal {
		return []ports.Point{to}
	}

	cells := astar(g, start, goal)
	if len(cells) == 0 {
		return nil
	}
	out := make([]ports.Point, 0, len(cells))
	// skip the start cell, the actor already stands in it
	for _, c := range cells[1 : len(cells)-1] {
		out = append(out, g.center(c, to.Z()))
	}
	return append(out, to)
}

func astar(g *navGrid, start, goal cellPos) []cellPos {
	n := len(g.blocked)
	cameFrom := make([]int, n)
	gScore := make([]float64, n)
	for i := range cameFrom {
		cameFrom[i] = -1
		gScore[i] = math.Inf(1)
	}
	startIdx, goalIdx := g.index(start), g.index(goal)
	gScore[startIdx] = 0

	open := &openSet{}
	heap.Push(open, &openItem{pos: start, f: manhattan(start, goal)})
	for open.Len() > 0 {
		cur := heap.Pop(open).(*openItem).pos
		curIdx := g.index(cur)
		if curIdx == goalIdx {
			break
		}
		for _, nb := range g.neighbors(cur) {
			idx := g.index(nb)
			tentative := gScore[curIdx] + 1
			if tentative < gScore[idx] {
				cameFrom[idx] = curIdx
				gScore[idx] = tentative
				heap.Push(open, &openItem{pos: nb, f: tentative + manhattan(nb, goal)})
			}
		}
	}
	if cameFrom[goalIdx] == -1 {
		return nil
	}

	var path []cellPos
	for cur := goalIdx; cur != -1; cur = cameFrom[cur] {
		path = append(path, cellPos{x: cur % g.cols, y: cur / g.cols})
		if cur == startIdx {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func manhattan(a, b cellPos) float64 {
	return math.Abs(float64(a.x-b.x)) + math.Abs(float64(a.y-b.y))
}

type openItem struct {
	pos cellPos
	f   float64
}

type openSet []*openItem

func (o openSet) Len() int           { return len(o) }
func (o openSet) Less(i, j int) bool { return o[i].f < o[j].f }
func (o openSet) Swap(i, j int)      { o[i], o[j] = o[j], o[i] }
func (o *openSet) Push(x any)        { *o = append(*o, x.(*openItem)) }
func (o *openSet) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*o = old[:n-1]
	return item
}
