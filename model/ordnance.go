package model

import "time"

// Ordnance is a planted device. Radius is copied from the planter at plant time.
type Ordnance struct {
	Cell      Cell
	PlantedAt time.Time
	Fuse      time.Duration
	Radius    int
}

func (o *Ordnance) ShouldDetonate(now time.Time) bool {
	return now.Sub(o.PlantedAt) >= o.Fuse
}

func (o *Ordnance) Remaining(now time.Time) time.Duration {
	left := o.Fuse - now.Sub(o.PlantedAt)
	if left < 0 {
		return 0
	}
	return left
}

// BlastCells is the plus shaped footprint. Each arm walks out up to Radius cells: an
// invalid or solid cell ends the arm without being included, a destructible cell is
// included and ends the arm.
func (o *Ordnance) BlastCells(arena *Arena) []Cell {
	cells := []Cell{o.Cell}
	for _, d := range Directions {
		for i := 1; i <= o.Radius; i++ {
			next := o.Cell.Step(d, i)
			if !arena.IsValid(next) || arena.IsWall(next) {
				break
			}
			cells = append(cells, next)
			if arena.IsDestructible(next) {
				break
			}
		}
	}
	return cells
}
