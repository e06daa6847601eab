package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/bomber/model"
	"github.com/zucenko/bomber/session"
)

func TestFuseDigit(t *testing.T) {
	for _, tc := range []struct {
		left time.Duration
		want rune
	}{
		{2500 * time.Millisecond, '3'},
		{999 * time.Millisecond, '1'},
		{0, '1'},
		{12 * time.Second, '9'},
	} {
		assert.Equal(t, string(tc.want), string(fuseDigit(tc.left)), "left %v", tc.left)
	}
}

func TestHeld_ExpiresAfterHold(t *testing.T) {
	h := newHeld()
	start := time.Unix(100, 0)
	h.press(model.DIR_LEFT, start)
	assert.Equal(t, session.Input{Left: true}, h.input(start.Add(HOLD/2)))
	assert.Equal(t, session.Input{}, h.input(start.Add(HOLD)))

	h.press(model.DIR_UP, start)
	h.release()
	assert.Equal(t, session.Input{}, h.input(start))
}

func TestPollEvents_StopsOnFini(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())

	events := make(chan tcell.Event, 4)
	done := make(chan struct{})
	go func() {
		pollEvents(screen, events)
		close(done)
	}()

	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	select {
	case ev := <-events:
		key, ok := ev.(*tcell.EventKey)
		require.True(t, ok)
		assert.Equal(t, tcell.KeyEnter, key.Key())
	case <-time.After(time.Second):
		t.Fatal("no key event")
	}

	screen.Fini()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("event pump still running after Fini")
	}
}
