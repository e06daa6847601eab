package session

import (
	"math/rand"
	"time"

	"github.com/zucenko/bomber/model"
)

type GameSessionState int

const (
	GS_PLAY GameSessionState = iota + 1
	GS_OVER
	GS_VICTORY
)

// GameSession owns the whole mutable game state. It is single-writer: Tick, Plant,
// Restart and View must all be called from the host's one update loop.
type GameSession struct {
	state    GameSessionState
	config   Config
	clock    Clock
	rng      *rand.Rand
	arena    *model.Arena
	player   *model.Player
	enemies  []*model.Enemy
	ordnance []*model.Ordnance
	blasts   []*model.Blast
	pickups  []*model.Pickup
	events   []Event

	score       int
	level       int
	lastPlant   time.Time
	hasPlanted  bool
	nextEnemyId int
}

// Input is the movement snapshot for one tick.
type Input struct {
	Left, Right, Up, Down bool
}

// Axis resolves opposing keys the way a keyboard poll does: left beats right, up beats down.
func (in Input) Axis() model.Vec {
	var v model.Vec
	if in.Left {
		v.X = -1
	} else if in.Right {
		v.X = 1
	}
	if in.Up {
		v.Y = -1
	} else if in.Down {
		v.Y = 1
	}
	return v
}

type OutcomeKind int

const (
	OUTCOME_CONTINUE OutcomeKind = iota
	OUTCOME_GAME_OVER
	OUTCOME_VICTORY
)

type Outcome struct {
	Kind  OutcomeKind
	Score int
}

type PlantResult int

const (
	PLANT_OK PlantResult = iota
	PLANT_AT_CAPACITY
	PLANT_COOLDOWN
	PLANT_BLOCKED
	PLANT_OCCUPIED
	PLANT_FINISHED
)

type EventKind int

const (
	EV_PLANT EventKind = iota
	EV_DETONATE
	EV_WALL_DESTROYED
	EV_PICKUP_DROPPED
	EV_PICKUP_TAKEN
	EV_PLAYER_HIT
	EV_ENEMY_DOWN
	EV_GAME_OVER
	EV_VICTORY
)

// Event records something that happened inside a tick or command, for hosts that play
// sounds or start animations.
type Event struct {
	Kind EventKind
	Cell model.Cell
}
