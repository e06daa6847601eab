package main

import (
	"flag"
	"io/ioutil"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/bomber/app"
	"github.com/zucenko/bomber/model"
	"github.com/zucenko/bomber/scores"
	"github.com/zucenko/bomber/session"
	"github.com/zucenko/bomber/sound"
)

const FRAME = 16 * time.Millisecond

type Tui struct {
	App    *app.App
	screen tcell.Screen
	sound  *sound.SoundManager
	held   *held
}

var (
	levelPath  = flag.String("level", "", "level layout file")
	scoresPath = flag.String("scores", "scores.db", "high score database")
	logPath    = flag.String("log", "", "log file, logging is off when empty")
	seed       = flag.Int64("seed", 0, "arena seed, 0 picks one from the clock")
	verbose    = flag.Bool("v", false, "debug logging")
	mute       = flag.Bool("mute", false, "no sound")
)

func setupLog() {
	log.SetOutput(ioutil.Discard)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if *logPath == "" {
		return
	}
	f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Fatalf("log file: %v", err)
	}
	log.SetOutput(f)
}

func config() session.Config {
	cfg, err := session.DefaultConfig().FromEnv()
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	} else if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if *levelPath != "" {
		f, err := os.Open(*levelPath)
		if err != nil {
			log.Fatalf("level: %v", err)
		}
		defer f.Close()
		if cfg.Level, err = session.LoadLevel(f); err != nil {
			log.Fatalf("level %s: %v", *levelPath, err)
		}
	}
	return cfg
}

func main() {
	flag.Parse()
	setupLog()

	gs, err := session.NewGameSession(config(), session.SystemClock{})
	if err != nil {
		log.Fatal(err)
	}
	var keeper app.ScoreKeeper
	store, err := scores.Open(*scoresPath)
	if err != nil {
		log.Errorf("scores disabled: %v", err)
	} else {
		defer store.Close()
		keeper = store
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	t := &Tui{
		App:    app.New(gs, keeper),
		screen: screen,
		sound:  sound.NewSoundManager(),
		held:   newHeld(),
	}
	if !*mute {
		if err := t.sound.Initialize(); err != nil {
			log.Warnf("audio off: %v", err)
		}
	}
	t.run()
	t.sound.Cleanup()
	screen.Fini()
}

// pollEvents pumps screen events into events until the screen is finalized.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		events <- ev
	}
}

func (t *Tui) run() {
	ticker := time.NewTicker(FRAME)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go pollEvents(t.screen, events)

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !t.route(ev, time.Now()) {
					return
				}
			case *tcell.EventResize:
				t.screen.Sync()
			}
		case now := <-ticker.C:
			t.App.Update(t.held.input(now))
			t.sound.PlayEvents(t.App.Session.DrainEvents())
			t.draw(now)
		}
	}
}

var (
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleSolid   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCrate   = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleBomb    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleFlame   = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorYellow)
	styleFade    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorMaroon)
	stylePickup  = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleOverlay = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

var pickupRunes = map[model.PickupKind]rune{
	model.PICKUP_CAPACITY: 'B',
	model.PICKUP_FLAME:    'F',
	model.PICKUP_SPEED:    'S',
	model.PICKUP_LIFE:     'H',
}

// Every arena cell is two terminal columns wide.
func (t *Tui) put(c model.Cell, a, b rune, st tcell.Style) {
	x, y := c.Col*2, c.Row+1
	t.screen.SetContent(x, y, a, nil, st)
	t.screen.SetContent(x+1, y, b, nil, st)
}

func (t *Tui) text(x, y int, s string, st tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, st)
		x++
	}
}

func (t *Tui) draw(now time.Time) {
	t.screen.Clear()
	a := t.App
	lines := a.Lines()
	if a.State != app.APP_GAME {
		for i, l := range lines {
			t.text(2, 1+i, l, styleText)
		}
		t.screen.Show()
		return
	}
	v := a.Session.View()
	t.text(0, 0, a.Hud(v), styleText)
	t.drawArena(v, now)
	if len(lines) > 0 {
		y := 1 + v.Arena.Rows/2 - len(lines)/2
		for i, l := range lines {
			t.text(v.Arena.Cols-len([]rune(l))/2, y+i, " "+l+" ", styleOverlay)
		}
	}
	t.screen.Show()
}

func (t *Tui) drawArena(v session.View, now time.Time) {
	ar := v.Arena
	for row := 0; row < ar.Rows; row++ {
		for col := 0; col < ar.Cols; col++ {
			c := model.Cell{Col: col, Row: row}
			switch ar.Tile(c) {
			case model.TILE_SOLID:
				t.put(c, '█', '█', styleSolid)
			case model.TILE_DESTRUCTIBLE:
				t.put(c, '▒', '▒', styleCrate)
			}
		}
	}
	for _, p := range v.Pickups {
		t.put(p.Cell, '[', pickupRunes[p.Kind], stylePickup)
	}
	for _, o := range v.Ordnance {
		t.put(o.Cell, '●', fuseDigit(o.Remaining), styleBomb)
	}
	for _, b := range v.Blasts {
		st := styleFlame
		if b.Progress > 0.5 {
			st = styleFade
		}
		for _, c := range b.Cells {
			t.put(c, '*', '*', st)
		}
	}
	for _, e := range v.Enemies {
		t.put(center(ar, e), '<', '>', styleEnemy)
	}
	p := v.Player
	if !p.Invulnerable || now.UnixNano()/int64(100*time.Millisecond)%2 == 0 {
		t.put(center(ar, p), '(', ')', stylePlayer)
	}
}

func center(ar *model.Arena, a session.ActorView) model.Cell {
	return ar.WorldToGrid(a.X+a.Size/2, a.Y+a.Size/2)
}
