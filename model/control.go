package model

import (
	"math/rand"
	"time"
)

// Control is the source of an actor's movement intent: the host's input for the player,
// a random walk for enemies.
type Control interface {
	Intent(a *Actor, now time.Time) Vec
	Blocked(now time.Time)
}

// Steer is the single movement routine for every actor kind.
func Steer(a *Actor, c Control, arena *Arena, obstacles []Cell, exempt *Cell, now time.Time) {
	if !a.Alive {
		return
	}
	bx, by := a.Move(c.Intent(a, now), arena, obstacles, exempt)
	if bx {
		c.Blocked(now)
	}
	if by {
		c.Blocked(now)
	}
}

// InputControl moves along Axis, each component in {-1,0,1}, at the actor's speed.
type InputControl struct {
	Axis Vec
}

func (ic InputControl) Intent(a *Actor, now time.Time) Vec {
	return ic.Axis.Scale(a.Speed)
}

func (ic InputControl) Blocked(now time.Time) {}

// Wander walks in one cardinal direction, picking a new one when its timer runs out or
// when it bumps into something.
type Wander struct {
	Dir      Direction
	NextTurn time.Time
	MinTurn  time.Duration
	MaxTurn  time.Duration
	rng      *rand.Rand
}

func NewWander(rng *rand.Rand, now time.Time, minTurn, maxTurn time.Duration) *Wander {
	w := &Wander{MinTurn: minTurn, MaxTurn: maxTurn, rng: rng}
	w.turn(now)
	return w
}

func (w *Wander) turn(now time.Time) {
	w.Dir = Directions[w.rng.Intn(len(Directions))]
	w.NextTurn = now.Add(w.interval())
}

func (w *Wander) interval() time.Duration {
	span := w.MaxTurn - w.MinTurn
	if span <= 0 {
		return w.MinTurn
	}
	return w.MinTurn + time.Duration(w.rng.Int63n(int64(span)+1))
}

func (w *Wander) Intent(a *Actor, now time.Time) Vec {
	if !now.Before(w.NextTurn) {
		w.turn(now)
	}
	dx, dy := w.Dir.Delta()
	return Vec{X: float64(dx), Y: float64(dy)}.Scale(a.Speed)
}

// Blocked picks a fresh direction right away; the turn deadline is left alone.
func (w *Wander) Blocked(now time.Time) {
	w.Dir = Directions[w.rng.Intn(len(Directions))]
}
