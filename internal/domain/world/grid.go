package world

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Direction string

const (
	DirNorth Direction = "north"
	DirSouth Direction = "south"
	DirEast  Direction = "east"
	DirWest  Direction = "west"
)

// Delta returns the unit offset for the direction. Unknown directions
// resolve to no movement.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirNorth:
		return 0, -1
	case DirSouth:
		return 0, 1
	case DirEast:
		return 1, 0
	case DirWest:
		return -1, 0
	default:
		return 0, 0
	}
}

// Grid is the row-major tile world. Rows are replaced wholesale on
// mutation so readers holding a previous snapshot never observe a
// half-applied change.
type Grid struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Rows   [][]Tile `json:"rows"`
}

func NewGrid(width, height int, kind TileKind) *Grid {
	rows := make([][]Tile, height)
	for y := range rows {
		row := make([]Tile, width)
		for x := range row {
			row[x] = Tile{X: x, Y: y, Kind: kind}
		}
		rows[y] = row
	}
	return &Grid{Width: width, Height: height, Rows: rows}
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// At returns a copy of the tile at (x, y).
func (g *Grid) At(x, y int) (Tile, bool) {
	if !g.InBounds(x, y) {
		return Tile{}, false
	}
	return g.Rows[y][x], true
}

// SetTile replaces the tile at (x, y) with a copy-on-write of its row.
func (g *Grid) SetTile(t Tile) bool {
	if !g.InBounds(t.X, t.Y) {
		return false
	}
	row := make([]Tile, g.Width)
	copy(row, g.Rows[t.Y])
	row[t.X] = t
	g.Rows[t.Y] = row
	return true
}

// Neighbors4 returns the in-bounds orthogonal neighbors of (x, y).
func (g *Grid) Neighbors4(x, y int) []Tile {
	out := make([]Tile, 0, 4)
	for _, d := range [][2]int{{0, -1}, {0, 1}, {1, 0}, {-1, 0}} {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			out = append(out, g.Rows[ny][nx])
		}
	}
	return out
}

// Chebyshev is the board distance between two points: the number of king
// moves, which is what the claim radius is measured in.
func Chebyshev(a, b Point) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
