package session

import (
	"time"

	"github.com/zucenko/bomber/model"
)

type ActorKind int

const (
	ACTOR_PLAYER ActorKind = iota
	ACTOR_ENEMY
)

type ActorView struct {
	Kind         ActorKind
	Id           int
	X, Y, Size   float64
	Cell         model.Cell
	Dir          model.Direction
	Invulnerable bool
}

type OrdnanceView struct {
	Cell      model.Cell
	Radius    int
	Remaining time.Duration
}

type BlastView struct {
	Cells    []model.Cell
	Progress float64
}

type PickupView struct {
	Cell model.Cell
	Kind model.PickupKind
}

// View is a detached copy of everything a renderer may show. Changing it has no effect
// on the session.
type View struct {
	State GameSessionState
	Arena *model.Arena

	Player   ActorView
	Enemies  []ActorView
	Ordnance []OrdnanceView
	Blasts   []BlastView
	Pickups  []PickupView

	Score        int
	Level        int
	Lives        int
	BombCapacity int
	BombsInUse   int
	FlameRadius  int
	Speed        float64
}

func (gs *GameSession) View() View {
	now := gs.clock.Now()
	p := gs.player
	v := View{
		State: gs.state,
		Arena: gs.arena.Clone(),
		Player: ActorView{
			Kind:         ACTOR_PLAYER,
			X:            p.Pos.X,
			Y:            p.Pos.Y,
			Size:         p.Size,
			Cell:         p.Cell(gs.arena),
			Invulnerable: p.Invulnerable(now),
		},
		Enemies:      make([]ActorView, 0, len(gs.enemies)),
		Ordnance:     make([]OrdnanceView, 0, len(gs.ordnance)),
		Blasts:       make([]BlastView, 0, len(gs.blasts)),
		Pickups:      make([]PickupView, 0, len(gs.pickups)),
		Score:        gs.score,
		Level:        gs.level,
		Lives:        p.Lives,
		BombCapacity: p.BombCapacity,
		BombsInUse:   len(gs.ordnance),
		FlameRadius:  p.FlameRadius,
		Speed:        p.Speed,
	}
	for _, e := range gs.enemies {
		v.Enemies = append(v.Enemies, ActorView{
			Kind: ACTOR_ENEMY,
			Id:   e.Id,
			X:    e.Pos.X,
			Y:    e.Pos.Y,
			Size: e.Size,
			Cell: e.Cell(gs.arena),
			Dir:  e.Dir(),
		})
	}
	for _, o := range gs.ordnance {
		v.Ordnance = append(v.Ordnance, OrdnanceView{Cell: o.Cell, Radius: o.Radius, Remaining: o.Remaining(now)})
	}
	for _, b := range gs.blasts {
		if b.Active(now) {
			v.Blasts = append(v.Blasts, BlastView{Cells: b.Cells(), Progress: b.Progress(now)})
		}
	}
	for _, pu := range gs.pickups {
		v.Pickups = append(v.Pickups, PickupView{Cell: pu.Cell, Kind: pu.Kind})
	}
	return v
}
