package model

import (
	"math"
	"math/rand"

	"github.com/zyedidia/generic/mapset"
)

type Tile int

const (
	TILE_FLOOR Tile = iota
	TILE_SOLID
	TILE_DESTRUCTIBLE
)

func (t Tile) Name() string {
	switch t {
	case TILE_FLOOR:
		return "FLOOR"
	case TILE_SOLID:
		return "SOLID"
	case TILE_DESTRUCTIBLE:
		return "DESTRUCTIBLE"
	default:
		return "N/A"
	}
}

// Arena is the wall grid. Cells outside the grid read as TILE_SOLID from every predicate.
type Arena struct {
	Cols, Rows   int
	TileSize     float64
	Spawn        Cell
	EnemyCells   []Cell
	wall         []bool
	destructible []bool
}

// NewArena builds an arena holding only the permanent structure: the border and the
// even/even pillars.
func NewArena(cols, rows int, tileSize float64) *Arena {
	a := &Arena{
		Cols:         cols,
		Rows:         rows,
		TileSize:     tileSize,
		Spawn:        Cell{Col: 1, Row: 1},
		wall:         make([]bool, cols*rows),
		destructible: make([]bool, cols*rows),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if a.permanent(Cell{Col: c, Row: r}) {
				a.wall[a.index(Cell{Col: c, Row: r})] = true
			}
		}
	}
	return a
}

// GenerateArena fills the open interior with destructible walls with probability fill,
// keeping the spawn pocket clear.
func GenerateArena(cols, rows int, tileSize, fill float64, rng *rand.Rand) *Arena {
	a := NewArena(cols, rows, tileSize)
	pocket := a.SpawnPocket()
	for r := 1; r < rows-1; r++ {
		for c := 1; c < cols-1; c++ {
			cell := Cell{Col: c, Row: r}
			if a.IsWall(cell) || pocket.Has(cell) {
				continue
			}
			if rng.Float64() < fill {
				a.destructible[a.index(cell)] = true
			}
		}
	}
	return a
}

// SpawnPocket is the spawn cell and its right and lower neighbours.
func (a *Arena) SpawnPocket() mapset.Set[Cell] {
	pocket := mapset.New[Cell]()
	pocket.Put(a.Spawn)
	pocket.Put(a.Spawn.Step(DIR_RIGHT, 1))
	pocket.Put(a.Spawn.Step(DIR_DOWN, 1))
	return pocket
}

func (a *Arena) permanent(c Cell) bool {
	if c.Col == 0 || c.Row == 0 || c.Col == a.Cols-1 || c.Row == a.Rows-1 {
		return true
	}
	return c.Col%2 == 0 && c.Row%2 == 0
}

func (a *Arena) index(c Cell) int {
	return c.Row*a.Cols + c.Col
}

func (a *Arena) IsValid(c Cell) bool {
	return c.Col >= 0 && c.Col < a.Cols && c.Row >= 0 && c.Row < a.Rows
}

func (a *Arena) IsWall(c Cell) bool {
	if !a.IsValid(c) {
		return true
	}
	return a.wall[a.index(c)]
}

func (a *Arena) IsDestructible(c Cell) bool {
	if !a.IsValid(c) {
		return false
	}
	return a.destructible[a.index(c)]
}

func (a *Arena) Tile(c Cell) Tile {
	switch {
	case a.IsWall(c):
		return TILE_SOLID
	case a.IsDestructible(c):
		return TILE_DESTRUCTIBLE
	default:
		return TILE_FLOOR
	}
}

// IsOpen is true for valid floor cells.
func (a *Arena) IsOpen(c Cell) bool {
	return a.Tile(c) == TILE_FLOOR
}

// Destroy clears a destructible wall and reports whether one was there.
func (a *Arena) Destroy(c Cell) bool {
	if !a.IsDestructible(c) {
		return false
	}
	a.destructible[a.index(c)] = false
	return true
}

func (a *Arena) CanPlaceOrdnance(c Cell) bool {
	return a.IsValid(c) && !a.IsWall(c) && !a.IsDestructible(c)
}

func (a *Arena) WorldToGrid(x, y float64) Cell {
	return Cell{
		Col: int(math.Floor(x / a.TileSize)),
		Row: int(math.Floor(y / a.TileSize)),
	}
}

func (a *Arena) GridToWorld(c Cell) (float64, float64) {
	return float64(c.Col) * a.TileSize, float64(c.Row) * a.TileSize
}

func (a *Arena) TileRect(c Cell) Rect {
	x, y := a.GridToWorld(c)
	return Rect{X: x, Y: y, W: a.TileSize, H: a.TileSize}
}

func (a *Arena) DestructibleCount() int {
	n := 0
	for _, d := range a.destructible {
		if d {
			n++
		}
	}
	return n
}

// EnemySpawns returns the fixed enemy cells of a loaded layout when it has any, otherwise
// up to n distinct open interior cells other than the spawn, sampled uniformly without
// replacement. Fewer candidates yield fewer cells.
func (a *Arena) EnemySpawns(rng *rand.Rand, n int) []Cell {
	if len(a.EnemyCells) > 0 {
		fixed := append([]Cell(nil), a.EnemyCells...)
		if len(fixed) > n {
			fixed = fixed[:n]
		}
		return fixed
	}
	candidates := make([]Cell, 0)
	for r := 1; r < a.Rows-1; r++ {
		for c := 1; c < a.Cols-1; c++ {
			cell := Cell{Col: c, Row: r}
			if a.IsOpen(cell) && cell != a.Spawn {
				candidates = append(candidates, cell)
			}
		}
	}
	if n > len(candidates) {
		n = len(candidates)
	}
	// partial Fisher-Yates
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
	return candidates[:n]
}

func (a *Arena) Clone() *Arena {
	c := *a
	c.EnemyCells = append([]Cell(nil), a.EnemyCells...)
	c.wall = append([]bool(nil), a.wall...)
	c.destructible = append([]bool(nil), a.destructible...)
	return &c
}
