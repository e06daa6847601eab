package model

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testActor(a *Arena, at Cell) Actor {
	return NewActor(a, at, a.TileSize-6, 3, 1)
}

// bruteForceFree checks every tile of the arena (plus a one-tile margin) against the
// rectangle, independent of the 2x2 enumeration in CanOccupy.
func bruteForceFree(a *Arena, r Rect) bool {
	for row := -1; row <= a.Rows; row++ {
		for col := -1; col <= a.Cols; col++ {
			cell := Cell{Col: col, Row: row}
			tile := a.TileRect(cell)
			if !r.Intersects(tile) {
				continue
			}
			if !a.IsValid(cell) || a.Tile(cell) != TILE_FLOOR {
				return false
			}
		}
	}
	return true
}

func TestCanOccupy_AgreesWithBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	a := GenerateArena(11, 9, 40, 0.4, rng)
	act := testActor(a, a.Spawn)
	for i := 0; i < 20000; i++ {
		x := rng.Float64()*float64(a.Cols-1)*a.TileSize + 1
		y := rng.Float64()*float64(a.Rows-1)*a.TileSize + 1
		r := act.RectAt(x, y)
		// inside the arena bounds the enumeration never reaches an invalid cell
		if r.X+r.W >= float64(a.Cols)*a.TileSize || r.Y+r.H >= float64(a.Rows)*a.TileSize {
			continue
		}
		require.Equal(t, bruteForceFree(a, r), act.CanOccupy(x, y, a, nil, nil), "rect %+v", r)
	}
}

func TestCoveredCells_AtMostTwoByTwo(t *testing.T) {
	a := NewArena(9, 9, 40)
	act := testActor(a, Cell{Col: 1, Row: 1})
	assert.Len(t, act.CoveredCells(a, 40, 40), 1)
	assert.Len(t, act.CoveredCells(a, 45, 45), 1)
	assert.Len(t, act.CoveredCells(a, 50, 40), 2)
	assert.Len(t, act.CoveredCells(a, 50, 50), 4)
}

func TestMove_AxisSeparatedSliding(t *testing.T) {
	a := NewArena(9, 9, 40)
	act := testActor(a, Cell{Col: 1, Row: 1})
	// up is the border; the X component still applies
	bx, by := act.Move(Vec{X: 3, Y: -3}, a, nil, nil)
	assert.False(t, bx)
	assert.True(t, by)
	assert.Equal(t, Vec{X: 43, Y: 40}, act.Pos)
}

func TestMove_BlockedByPillar(t *testing.T) {
	a := NewArena(9, 9, 40)
	act := testActor(a, Cell{Col: 1, Row: 1})
	act.Pos = Vec{X: 40, Y: 40}
	// the pillar at (2,2) sits diagonally; moving down from (1,1) aligned is free
	_, by := act.Move(Vec{Y: 3}, a, nil, nil)
	assert.False(t, by)
	// shifted right by 10 the body would overlap the pillar column when moving down
	act.Pos = Vec{X: 50, Y: 46}
	_, by = act.Move(Vec{Y: 3}, a, nil, nil)
	assert.True(t, by)
	assert.Equal(t, 46.0, act.Pos.Y)
}

func TestMove_DestructibleBlocks(t *testing.T) {
	a := NewArena(9, 9, 40)
	a.destructible[a.index(Cell{Col: 2, Row: 1})] = true
	act := testActor(a, Cell{Col: 1, Row: 1})
	act.Pos.X = 46 // right edge at 80, touching but not entering (2,1)
	bx, _ := act.Move(Vec{X: 3}, a, nil, nil)
	assert.True(t, bx)
	assert.Equal(t, 46.0, act.Pos.X)
}

func TestMove_ObstaclesAndExemption(t *testing.T) {
	a := NewArena(9, 9, 40)
	act := testActor(a, Cell{Col: 1, Row: 1})
	bomb := Cell{Col: 1, Row: 1}
	obstacles := []Cell{bomb}

	// standing on a fresh bomb with the exemption: free to walk away
	bx, _ := act.Move(Vec{X: 3}, a, obstacles, &bomb)
	assert.False(t, bx)

	// without the exemption backing out still works, pushing in does not
	act.Pos = Vec{X: 60, Y: 40}
	bx, _ = act.Move(Vec{X: -3}, a, obstacles, nil)
	assert.True(t, bx, "moving deeper into the bomb tile")
	bx, _ = act.Move(Vec{X: 3}, a, obstacles, nil)
	assert.False(t, bx, "moving out of the bomb tile")

	// clear of the tile, re-entry is refused
	act.Pos = Vec{X: 80, Y: 40}
	bx, _ = act.Move(Vec{X: -3}, a, obstacles, nil)
	assert.True(t, bx)
	assert.Equal(t, 80.0, act.Pos.X)
}

func TestTakeDamage(t *testing.T) {
	a := NewArena(5, 5, 40)
	act := NewActor(a, Cell{Col: 1, Row: 1}, 34, 1, 2)
	assert.False(t, act.TakeDamage(1))
	assert.True(t, act.Alive)
	assert.True(t, act.TakeDamage(1))
	assert.False(t, act.Alive)
	assert.Equal(t, 0, act.Health)
	assert.False(t, act.TakeDamage(1), "already dead")
}

func TestWander_TurnsWithinInterval(t *testing.T) {
	now := time.Unix(1000, 0)
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		w := NewWander(rng, now, time.Second, 2500*time.Millisecond)
		d := w.NextTurn.Sub(now)
		require.GreaterOrEqual(t, d, time.Second)
		require.LessOrEqual(t, d, 2500*time.Millisecond)
	}
}

func TestWander_CoversAllDirections(t *testing.T) {
	now := time.Unix(1000, 0)
	w := NewWander(rand.New(rand.NewSource(9)), now, time.Second, 2*time.Second)
	seen := map[Direction]bool{}
	for i := 0; i < 200; i++ {
		w.Blocked(now)
		seen[w.Dir] = true
	}
	assert.Len(t, seen, 4)
}

func TestSteer_BlockedEnemyResamples(t *testing.T) {
	a := NewArena(9, 9, 40)
	now := time.Unix(1000, 0)
	w := NewWander(rand.New(rand.NewSource(2)), now, time.Hour, time.Hour)
	w.Dir = DIR_UP
	e := &Enemy{Actor: NewActor(a, Cell{Col: 1, Row: 1}, 34, 1.5, 1), Wander: w}
	changed := false
	for i := 0; i < 50 && !changed; i++ {
		Steer(&e.Actor, e.Wander, a, nil, nil, now)
		changed = e.Dir() != DIR_UP
	}
	assert.True(t, changed, "blocked wanderer never picked a new direction")
	assert.Equal(t, 40.0, e.Pos.Y)
}

func TestSteer_InputControl(t *testing.T) {
	a := NewArena(9, 9, 40)
	p := &Player{Actor: NewActor(a, Cell{Col: 1, Row: 1}, 34, 3, 1)}
	Steer(&p.Actor, InputControl{Axis: Vec{X: 1}}, a, nil, nil, time.Now())
	assert.Equal(t, 43.0, p.Pos.X)
	p.Alive = false
	Steer(&p.Actor, InputControl{Axis: Vec{X: 1}}, a, nil, nil, time.Now())
	assert.Equal(t, 43.0, p.Pos.X, "dead actors do not move")
}
