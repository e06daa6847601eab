package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/bomber/model"
)

func TestView_Snapshot(t *testing.T) {
	gs, clock := newTestSession(t, crateLevel, nil)
	require.Equal(t, PLANT_OK, gs.Plant())
	clock.Advance(time.Second)

	v := gs.View()
	assert.Equal(t, GS_PLAY, v.State)
	assert.Equal(t, ACTOR_PLAYER, v.Player.Kind)
	assert.Equal(t, model.Cell{Col: 1, Row: 1}, v.Player.Cell)
	require.Len(t, v.Enemies, 1)
	assert.Equal(t, model.Cell{Col: 9, Row: 5}, v.Enemies[0].Cell)
	require.Len(t, v.Ordnance, 1)
	assert.Equal(t, 2*time.Second, v.Ordnance[0].Remaining)
	assert.Equal(t, 1, v.BombsInUse)
	assert.Equal(t, 3, v.Lives)
	assert.Equal(t, 1, v.Level)
	assert.Empty(t, v.Blasts)
}

func TestView_Detached(t *testing.T) {
	gs, _ := newTestSession(t, crateLevel, nil)
	crate := model.Cell{Col: 3, Row: 1}
	v := gs.View()
	require.True(t, v.Arena.Destroy(crate))
	assert.True(t, gs.arena.IsDestructible(crate))

	gs2, clock := newTestSession(t, crateLevel, nil)
	require.Equal(t, PLANT_OK, gs2.Plant())
	teleport(gs2, &gs2.player.Actor, safeCell)
	clock.Advance(gs2.config.Fuse)
	gs2.Tick(idle)
	v = gs2.View()
	require.Len(t, v.Blasts, 1)
	v.Blasts[0].Cells[0] = model.Cell{Col: 99, Row: 99}
	assert.False(t, gs2.blasts[0].Contains(model.Cell{Col: 99, Row: 99}))
}
