package model

import (
	"time"

	"github.com/zyedidia/generic/mapset"
)

type Blast struct {
	SpawnedAt time.Time
	Duration  time.Duration
	cells     []Cell
	set       mapset.Set[Cell]
}

func NewBlast(cells []Cell, now time.Time, d time.Duration) *Blast {
	set := mapset.New[Cell]()
	ordered := make([]Cell, 0, len(cells))
	for _, c := range cells {
		if set.Has(c) {
			continue
		}
		set.Put(c)
		ordered = append(ordered, c)
	}
	return &Blast{SpawnedAt: now, Duration: d, cells: ordered, set: set}
}

func (b *Blast) Contains(c Cell) bool {
	return b.set.Has(c)
}

func (b *Blast) Active(now time.Time) bool {
	return now.Sub(b.SpawnedAt) < b.Duration
}

// Progress runs from 0 at spawn to 1 at expiry.
func (b *Blast) Progress(now time.Time) float64 {
	if b.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(b.SpawnedAt)) / float64(b.Duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func (b *Blast) Cells() []Cell {
	return append([]Cell(nil), b.cells...)
}

func (b *Blast) Size() int {
	return b.set.Size()
}
