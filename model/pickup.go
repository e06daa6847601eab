package model

import (
	"fmt"
	"math"
)

type PickupKind int

const (
	PICKUP_CAPACITY PickupKind = iota
	PICKUP_FLAME
	PICKUP_SPEED
	PICKUP_LIFE
	pickupKinds
)

var PickupKinds = [pickupKinds]PickupKind{PICKUP_CAPACITY, PICKUP_FLAME, PICKUP_SPEED, PICKUP_LIFE}

func (k PickupKind) Name() string {
	switch k {
	case PICKUP_CAPACITY:
		return "BOMB_UP"
	case PICKUP_FLAME:
		return "FIRE_UP"
	case PICKUP_SPEED:
		return "SPEED_UP"
	case PICKUP_LIFE:
		return "HEART"
	default:
		return fmt.Sprintf("n/a:%d", k)
	}
}

// Limits caps what pickups can raise.
type Limits struct {
	MaxCapacity int
	MaxFlame    int
	SpeedDelta  float64
	MaxSpeed    float64
}

var pickupEffects = [pickupKinds]func(p *Player, lim Limits){
	PICKUP_CAPACITY: func(p *Player, lim Limits) {
		if p.BombCapacity < lim.MaxCapacity {
			p.BombCapacity++
		}
	},
	PICKUP_FLAME: func(p *Player, lim Limits) {
		if p.FlameRadius < lim.MaxFlame {
			p.FlameRadius++
		}
	},
	PICKUP_SPEED: func(p *Player, lim Limits) {
		p.Speed = math.Min(p.Speed+lim.SpeedDelta, lim.MaxSpeed)
	},
	PICKUP_LIFE: func(p *Player, lim Limits) {
		p.Lives++
	},
}

type Pickup struct {
	Cell  Cell
	Kind  PickupKind
	Taken bool
}

// ApplyTo runs the kind's effect once; a taken pickup does nothing and returns false.
func (pu *Pickup) ApplyTo(p *Player, lim Limits) bool {
	if pu.Taken || pu.Kind < 0 || pu.Kind >= pickupKinds {
		return false
	}
	pickupEffects[pu.Kind](p, lim)
	pu.Taken = true
	return true
}
