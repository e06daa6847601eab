package model

import "time"

// Actor is the movement and collision body shared by the player and the enemies.
// Pos is the top-left corner in world units; Size must stay below one tile so a body
// touches at most a 2x2 block of cells.
type Actor struct {
	Pos    Vec
	Size   float64
	Speed  float64
	Alive  bool
	Health int
}

func NewActor(arena *Arena, at Cell, size, speed float64, health int) Actor {
	x, y := arena.GridToWorld(at)
	return Actor{
		Pos:    Vec{X: x, Y: y},
		Size:   size,
		Speed:  speed,
		Alive:  true,
		Health: health,
	}
}

func (a *Actor) RectAt(x, y float64) Rect {
	return Rect{X: x, Y: y, W: a.Size, H: a.Size}
}

func (a *Actor) Rect() Rect {
	return a.RectAt(a.Pos.X, a.Pos.Y)
}

// Cell is the grid cell of the top-left corner.
func (a *Actor) Cell(arena *Arena) Cell {
	return arena.WorldToGrid(a.Pos.X, a.Pos.Y)
}

func (a *Actor) Place(arena *Arena, at Cell) {
	a.Pos.X, a.Pos.Y = arena.GridToWorld(at)
}

// TakeDamage subtracts health and reports whether the actor died from it.
func (a *Actor) TakeDamage(n int) bool {
	if !a.Alive {
		return false
	}
	a.Health -= n
	if a.Health <= 0 {
		a.Health = 0
		a.Alive = false
		return true
	}
	return false
}

// CoveredCells lists every cell the rectangle at (x,y) reaches, at most 2x2.
func (a *Actor) CoveredCells(arena *Arena, x, y float64) []Cell {
	r := a.RectAt(x, y)
	start := arena.WorldToGrid(r.X, r.Y)
	end := arena.WorldToGrid(r.X+r.W, r.Y+r.H)
	cells := make([]Cell, 0, 4)
	for col := start.Col; col <= end.Col; col++ {
		for row := start.Row; row <= end.Row; row++ {
			cells = append(cells, Cell{Col: col, Row: row})
		}
	}
	return cells
}

// CanOccupy checks the rectangle at (x,y) against terrain and obstacles. Any covered
// cell outside the arena rejects. Solid and destructible cells reject on a true
// intersection. An obstacle cell other than exempt rejects when the move would push the
// body deeper into it, so a body already straddling an obstacle can still back out.
// Obstacles deliberately do not reject on plain intersection: that would trap a body
// standing on its own ordnance whenever it steps toward lower coordinates.
func (a *Actor) CanOccupy(x, y float64, arena *Arena, obstacles []Cell, exempt *Cell) bool {
	r := a.RectAt(x, y)
	for _, cell := range a.CoveredCells(arena, x, y) {
		if !arena.IsValid(cell) {
			return false
		}
		if arena.Tile(cell) != TILE_FLOOR && r.Intersects(arena.TileRect(cell)) {
			return false
		}
	}
	current := a.Rect()
	for _, o := range obstacles {
		if exempt != nil && o == *exempt {
			continue
		}
		tile := arena.TileRect(o)
		if r.Overlap(tile) > current.Overlap(tile) {
			return false
		}
	}
	return true
}

// Move applies v one axis at a time, X first, so a body blocked on one axis still slides
// along the other.
func (a *Actor) Move(v Vec, arena *Arena, obstacles []Cell, exempt *Cell) (blockedX, blockedY bool) {
	if v.X != 0 {
		if a.CanOccupy(a.Pos.X+v.X, a.Pos.Y, arena, obstacles, exempt) {
			a.Pos.X += v.X
		} else {
			blockedX = true
		}
	}
	if v.Y != 0 {
		if a.CanOccupy(a.Pos.X, a.Pos.Y+v.Y, arena, obstacles, exempt) {
			a.Pos.Y += v.Y
		} else {
			blockedY = true
		}
	}
	return
}

type Player struct {
	Actor
	Lives             int
	BombCapacity      int
	FlameRadius       int
	InvulnerableUntil time.Time
	// SoftPass is the cell of the last planted ordnance while the player has not left it.
	SoftPass *Cell
}

func (p *Player) Invulnerable(now time.Time) bool {
	return now.Before(p.InvulnerableUntil)
}

func (p *Player) GrantInvulnerability(now time.Time, d time.Duration) {
	p.InvulnerableUntil = now.Add(d)
}

type Enemy struct {
	Actor
	Id     int
	Wander *Wander
}

func (e *Enemy) Dir() Direction {
	return e.Wander.Dir
}
