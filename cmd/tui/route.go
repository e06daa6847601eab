package main

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/bomber/app"
	"github.com/zucenko/bomber/model"
	"github.com/zucenko/bomber/session"
)

// Terminals report presses but not releases, so a direction counts as held for a while
// after its last press. Key repeat refreshes it.
const HOLD = 150 * time.Millisecond

var keyCommands = map[tcell.Key]app.Command{
	tcell.KeyUp:         app.CMD_UP,
	tcell.KeyDown:       app.CMD_DOWN,
	tcell.KeyEnter:      app.CMD_CONFIRM,
	tcell.KeyEscape:     app.CMD_BACK,
	tcell.KeyBackspace:  app.CMD_ERASE,
	tcell.KeyBackspace2: app.CMD_ERASE,
}

var runeCommands = map[rune]app.Command{
	' ': app.CMD_PLANT,
	'r': app.CMD_RESTART,
	'R': app.CMD_RESTART,
}

var keyDirections = map[tcell.Key]model.Direction{
	tcell.KeyRight: model.DIR_RIGHT,
	tcell.KeyDown:  model.DIR_DOWN,
	tcell.KeyLeft:  model.DIR_LEFT,
	tcell.KeyUp:    model.DIR_UP,
}

var runeDirections = map[rune]model.Direction{
	'd': model.DIR_RIGHT,
	's': model.DIR_DOWN,
	'a': model.DIR_LEFT,
	'w': model.DIR_UP,
}

type held struct {
	last map[model.Direction]time.Time
}

func newHeld() *held {
	return &held{last: map[model.Direction]time.Time{}}
}

func (h *held) press(d model.Direction, now time.Time) {
	h.last[d] = now
}

func (h *held) input(now time.Time) session.Input {
	on := func(d model.Direction) bool {
		t, ok := h.last[d]
		return ok && now.Sub(t) < HOLD
	}
	return session.Input{
		Left:  on(model.DIR_LEFT),
		Right: on(model.DIR_RIGHT),
		Up:    on(model.DIR_UP),
		Down:  on(model.DIR_DOWN),
	}
}

func (h *held) release() {
	h.last = map[model.Direction]time.Time{}
}

// route applies one key event and reports whether the program should go on.
func (t *Tui) route(ev *tcell.EventKey, now time.Time) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}
	a := t.App
	switch a.State {
	case app.APP_NAME_INPUT:
		if ev.Key() == tcell.KeyRune {
			a.Type(ev.Rune())
			return true
		}
	case app.APP_GAME:
		if d, ok := keyDirections[ev.Key()]; ok {
			t.held.press(d, now)
			return true
		}
		if ev.Key() == tcell.KeyRune {
			if d, ok := runeDirections[ev.Rune()]; ok {
				t.held.press(d, now)
				return true
			}
			if ev.Rune() == 'c' {
				t.copyLayout()
				return true
			}
		}
	}
	if c, ok := keyCommands[ev.Key()]; ok {
		a.Command(c)
	} else if ev.Key() == tcell.KeyRune {
		if c, ok := runeCommands[ev.Rune()]; ok {
			a.Command(c)
		}
	}
	if a.State != app.APP_GAME {
		t.held.release()
	}
	return a.State != app.APP_QUIT
}

func (t *Tui) copyLayout() {
	layout := t.App.Session.View().Arena.Layout()
	if err := clipboard.WriteAll(layout); err != nil {
		log.Warnf("copy layout: %v", err)
		return
	}
	log.Infof("arena layout copied to clipboard")
}

// fuseDigit is the whole seconds left on a fuse, counting the running one, capped at 9 so
// it fits one column.
func fuseDigit(left time.Duration) rune {
	secs := int(left.Seconds()) + 1
	if secs > 9 {
		secs = 9
	}
	if secs < 0 {
		secs = 0
	}
	return rune('0' + secs)
}
