package session

import (
	"math/rand"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/bomber/model"
)

func NewGameSession(config Config, clock Clock) (*GameSession, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = SystemClock{}
	}
	gs := &GameSession{
		config: config,
		clock:  clock,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
	gs.reset()
	return gs, nil
}

// Restart throws everything away and starts a fresh level with a new arena.
func (gs *GameSession) Restart() {
	log.Infof("GameSession.Restart from %s score:%d", gs.state.Name(), gs.score)
	gs.reset()
}

func (gs *GameSession) reset() {
	now := gs.clock.Now()
	gs.state = GS_PLAY
	gs.score = 0
	gs.level = 1
	gs.hasPlanted = false
	gs.lastPlant = time.Time{}
	gs.ordnance = nil
	gs.blasts = nil
	gs.pickups = nil
	gs.events = nil
	gs.arena = gs.newArena()
	gs.player = gs.newPlayer()
	gs.enemies = make([]*model.Enemy, 0, gs.config.EnemyCount)
	for _, cell := range gs.arena.EnemySpawns(gs.rng, gs.config.EnemyCount) {
		gs.nextEnemyId++
		gs.enemies = append(gs.enemies, &model.Enemy{
			Actor:  model.NewActor(gs.arena, cell, gs.config.ActorSize(), gs.config.EnemySpeed, gs.config.EnemyHealth),
			Id:     gs.nextEnemyId,
			Wander: model.NewWander(gs.rng, now, gs.config.EnemyTurnMin, gs.config.EnemyTurnMax),
		})
	}
	if len(gs.enemies) < gs.config.EnemyCount {
		log.Warnf("GameSession.reset only %d of %d enemies fit", len(gs.enemies), gs.config.EnemyCount)
	}
}

func (gs *GameSession) newArena() *model.Arena {
	c := gs.config
	if c.Level != "" {
		a, err := model.ReadArena(strings.NewReader(c.Level), c.TileSize)
		if err == nil {
			return a
		}
		log.Errorf("GameSession.newArena level rejected, generating: %v", err)
	}
	return model.GenerateArena(c.Cols, c.Rows, c.TileSize, c.Fill, gs.rng)
}

func (gs *GameSession) newPlayer() *model.Player {
	c := gs.config
	return &model.Player{
		Actor:        model.NewActor(gs.arena, gs.arena.Spawn, c.ActorSize(), c.PlayerSpeed, 1),
		Lives:        c.PlayerLives,
		BombCapacity: c.BombCapacity,
		FlameRadius:  c.FlameRadius,
	}
}

// Tick advances the game by one frame. Terminal states are frozen until Restart.
func (gs *GameSession) Tick(in Input) Outcome {
	if gs.state != GS_PLAY {
		return gs.outcome()
	}
	now := gs.clock.Now()
	gs.movePlayer(in, now)
	gs.releaseSoftPass()
	gs.moveEnemies(now)
	gs.detonate(now)
	gs.expireBlasts(now)
	gs.collectPickups()
	gs.damagePlayer(now)
	gs.damageEnemies(now)
	gs.checkVictory()
	return gs.outcome()
}

func (gs *GameSession) outcome() Outcome {
	switch gs.state {
	case GS_OVER:
		return Outcome{Kind: OUTCOME_GAME_OVER, Score: gs.score}
	case GS_VICTORY:
		return Outcome{Kind: OUTCOME_VICTORY, Score: gs.score}
	default:
		return Outcome{Kind: OUTCOME_CONTINUE, Score: gs.score}
	}
}

func (gs *GameSession) emit(k EventKind, c model.Cell) {
	gs.events = append(gs.events, Event{Kind: k, Cell: c})
}

// DrainEvents hands over the events gathered since the last call.
func (gs *GameSession) DrainEvents() []Event {
	ev := gs.events
	gs.events = nil
	return ev
}

func (gs *GameSession) obstacles() []model.Cell {
	cells := make([]model.Cell, 0, len(gs.ordnance))
	for _, o := range gs.ordnance {
		cells = append(cells, o.Cell)
	}
	return cells
}

func (gs *GameSession) movePlayer(in Input, now time.Time) {
	model.Steer(&gs.player.Actor, model.InputControl{Axis: in.Axis()}, gs.arena, gs.obstacles(), gs.player.SoftPass, now)
}

func (gs *GameSession) releaseSoftPass() {
	if sp := gs.player.SoftPass; sp != nil && gs.player.Cell(gs.arena) != *sp {
		gs.player.SoftPass = nil
	}
}

func (gs *GameSession) moveEnemies(now time.Time) {
	obstacles := gs.obstacles()
	for _, e := range gs.enemies {
		model.Steer(&e.Actor, e.Wander, gs.arena, obstacles, nil, now)
	}
	gs.removeDeadEnemies()
}

func (gs *GameSession) removeDeadEnemies() {
	kept := gs.enemies[:0]
	for _, e := range gs.enemies {
		if e.Alive {
			kept = append(kept, e)
			continue
		}
		gs.score += gs.config.EnemyScore
		gs.emit(EV_ENEMY_DOWN, e.Cell(gs.arena))
		log.Debugf("enemy %d down at %v", e.Id, e.Cell(gs.arena))
	}
	for i := len(kept); i < len(gs.enemies); i++ {
		gs.enemies[i] = nil
	}
	gs.enemies = kept
}

// detonate fires every ordnance whose fuse ran out this tick. A device caught in another's
// blast is not triggered early; it waits for its own fuse.
func (gs *GameSession) detonate(now time.Time) {
	fired := make(map[*model.Ordnance]bool)
	for _, o := range gs.ordnance {
		if o.ShouldDetonate(now) {
			fired[o] = true
		}
	}
	if len(fired) == 0 {
		return
	}
	kept := make([]*model.Ordnance, 0, len(gs.ordnance)-len(fired))
	for _, o := range gs.ordnance {
		if !fired[o] {
			kept = append(kept, o)
			continue
		}
		cells := o.BlastCells(gs.arena)
		gs.destroyTerrain(cells)
		gs.blasts = append(gs.blasts, model.NewBlast(cells, now, gs.config.BlastDuration))
		gs.emit(EV_DETONATE, o.Cell)
		log.Debugf("detonation at %v radius:%d cells:%d", o.Cell, o.Radius, len(cells))
	}
	gs.ordnance = kept
}

func (gs *GameSession) destroyTerrain(cells []model.Cell) {
	for _, c := range cells {
		if !gs.arena.Destroy(c) {
			continue
		}
		gs.score += gs.config.WallScore
		gs.emit(EV_WALL_DESTROYED, c)
		if gs.rng.Float64() < gs.config.DropChance {
			kind := model.PickupKinds[gs.rng.Intn(len(model.PickupKinds))]
			gs.pickups = append(gs.pickups, &model.Pickup{Cell: c, Kind: kind})
			gs.emit(EV_PICKUP_DROPPED, c)
		}
	}
}

func (gs *GameSession) expireBlasts(now time.Time) {
	kept := gs.blasts[:0]
	for _, b := range gs.blasts {
		if b.Active(now) {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(gs.blasts); i++ {
		gs.blasts[i] = nil
	}
	gs.blasts = kept
}

func (gs *GameSession) collectPickups() {
	cell := gs.player.Cell(gs.arena)
	kept := gs.pickups[:0]
	for _, pu := range gs.pickups {
		if pu.Cell == cell && pu.ApplyTo(gs.player, gs.config.Limits()) {
			gs.emit(EV_PICKUP_TAKEN, cell)
			log.Debugf("pickup %s taken at %v", pu.Kind.Name(), cell)
			continue
		}
		kept = append(kept, pu)
	}
	for i := len(kept); i < len(gs.pickups); i++ {
		gs.pickups[i] = nil
	}
	gs.pickups = kept
}

func (gs *GameSession) inBlast(c model.Cell, now time.Time) bool {
	for _, b := range gs.blasts {
		if b.Active(now) && b.Contains(c) {
			return true
		}
	}
	return false
}

// damagePlayer treats enemy contact and flames the same: one life per hit, gated by the
// invulnerability window.
func (gs *GameSession) damagePlayer(now time.Time) {
	p := gs.player
	cell := p.Cell(gs.arena)
	hit := gs.inBlast(cell, now)
	for _, e := range gs.enemies {
		if hit {
			break
		}
		hit = e.Alive && e.Cell(gs.arena) == cell
	}
	if !hit || p.Invulnerable(now) {
		return
	}
	p.Lives--
	gs.emit(EV_PLAYER_HIT, cell)
	if p.Lives <= 0 {
		p.Lives = 0
		p.Alive = false
		gs.state = GS_OVER
		gs.emit(EV_GAME_OVER, cell)
		log.Infof("GameSession game over score:%d", gs.score)
		return
	}
	p.Place(gs.arena, gs.arena.Spawn)
	p.SoftPass = nil
	p.GrantInvulnerability(now, gs.config.Invulnerability)
	log.Debugf("player hit at %v, lives left %d", cell, p.Lives)
}

func (gs *GameSession) damageEnemies(now time.Time) {
	for _, e := range gs.enemies {
		if gs.inBlast(e.Cell(gs.arena), now) {
			e.TakeDamage(1)
		}
	}
	gs.removeDeadEnemies()
}

// checkVictory pays the completion bonus once; the state change stops later ticks from
// getting here again.
func (gs *GameSession) checkVictory() {
	if gs.state != GS_PLAY || len(gs.enemies) > 0 {
		return
	}
	gs.state = GS_VICTORY
	gs.score += gs.config.CompletionBonus
	gs.emit(EV_VICTORY, gs.player.Cell(gs.arena))
	log.Infof("GameSession victory score:%d", gs.score)
}

// Plant drops ordnance on the player's cell. Rejections are ordinary results.
func (gs *GameSession) Plant() PlantResult {
	if gs.state != GS_PLAY {
		return PLANT_FINISHED
	}
	now := gs.clock.Now()
	if len(gs.ordnance) >= gs.player.BombCapacity {
		return PLANT_AT_CAPACITY
	}
	if gs.hasPlanted && now.Sub(gs.lastPlant) < gs.config.Cooldown {
		return PLANT_COOLDOWN
	}
	cell := gs.player.Cell(gs.arena)
	if !gs.arena.CanPlaceOrdnance(cell) {
		return PLANT_BLOCKED
	}
	for _, o := range gs.ordnance {
		if o.Cell == cell {
			return PLANT_OCCUPIED
		}
	}
	gs.ordnance = append(gs.ordnance, &model.Ordnance{
		Cell:      cell,
		PlantedAt: now,
		Fuse:      gs.config.Fuse,
		Radius:    gs.player.FlameRadius,
	})
	soft := cell
	gs.player.SoftPass = &soft
	gs.lastPlant = now
	gs.hasPlanted = true
	gs.emit(EV_PLANT, cell)
	return PLANT_OK
}

func (gs *GameSession) State() GameSessionState {
	return gs.state
}

func (gs *GameSession) Score() int {
	return gs.score
}
