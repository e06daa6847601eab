package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testLimits = Limits{MaxCapacity: 6, MaxFlame: 8, SpeedDelta: 0.5, MaxSpeed: 5}

func testPlayer() *Player {
	return &Player{
		Actor:        Actor{Speed: 3, Alive: true, Health: 1},
		Lives:        3,
		BombCapacity: 1,
		FlameRadius:  2,
	}
}

func TestPickup_Effects(t *testing.T) {
	p := testPlayer()
	for _, k := range PickupKinds {
		pu := &Pickup{Kind: k}
		assert.True(t, pu.ApplyTo(p, testLimits), k.Name())
	}
	assert.Equal(t, 2, p.BombCapacity)
	assert.Equal(t, 3, p.FlameRadius)
	assert.Equal(t, 3.5, p.Speed)
	assert.Equal(t, 4, p.Lives)
}

func TestPickup_Caps(t *testing.T) {
	p := testPlayer()
	for i := 0; i < 20; i++ {
		for _, k := range PickupKinds {
			(&Pickup{Kind: k}).ApplyTo(p, testLimits)
		}
	}
	assert.Equal(t, 6, p.BombCapacity)
	assert.Equal(t, 8, p.FlameRadius)
	assert.Equal(t, 5.0, p.Speed)
	assert.Equal(t, 23, p.Lives, "lives are not capped")
}

func TestPickup_AppliesOnce(t *testing.T) {
	p := testPlayer()
	pu := &Pickup{Kind: PICKUP_LIFE}
	assert.True(t, pu.ApplyTo(p, testLimits))
	assert.False(t, pu.ApplyTo(p, testLimits))
	assert.Equal(t, 4, p.Lives)
}

func TestPickup_UnknownKind(t *testing.T) {
	p := testPlayer()
	assert.False(t, (&Pickup{Kind: PickupKind(42)}).ApplyTo(p, testLimits))
	assert.Equal(t, "n/a:42", PickupKind(42).Name())
}
