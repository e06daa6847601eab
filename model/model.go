package model

import "fmt"

type Cell struct {
	Col, Row int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Step returns the cell n tiles away in direction d.
func (c Cell) Step(d Direction, n int) Cell {
	dx, dy := d.Delta()
	return Cell{Col: c.Col + dx*n, Row: c.Row + dy*n}
}

// Direction indexes follow the path order used for cell neighbours: 0 right, 1 down, 2 left, 3 up.
type Direction int

const (
	DIR_RIGHT Direction = iota
	DIR_DOWN
	DIR_LEFT
	DIR_UP
)

var Directions = [4]Direction{DIR_RIGHT, DIR_DOWN, DIR_LEFT, DIR_UP}

func (d Direction) Delta() (int, int) {
	switch d {
	case DIR_RIGHT:
		return 1, 0
	case DIR_DOWN:
		return 0, 1
	case DIR_LEFT:
		return -1, 0
	case DIR_UP:
		return 0, -1
	default:
		return 0, 0
	}
}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) Name() string {
	switch d {
	case DIR_RIGHT:
		return "RIGHT"
	case DIR_DOWN:
		return "DOWN"
	case DIR_LEFT:
		return "LEFT"
	case DIR_UP:
		return "UP"
	default:
		return fmt.Sprintf("n/a:%d", d)
	}
}

type Vec struct {
	X, Y float64
}

func (v Vec) Scale(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

// Rect is a half-open axis aligned rectangle: [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports a strict overlap; rectangles sharing only an edge do not collide.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Overlap returns the intersection area, 0 when the rectangles do not intersect.
func (r Rect) Overlap(o Rect) float64 {
	w := minf(r.X+r.W, o.X+o.W) - maxf(r.X, o.X)
	h := minf(r.Y+r.H, o.Y+o.H) - maxf(r.Y, o.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
