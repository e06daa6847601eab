package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/bomber/app"
	"github.com/zucenko/bomber/model"
	"github.com/zucenko/bomber/scores"
	"github.com/zucenko/bomber/session"
)

const (
	HUD_HEIGHT = 36
	TPS        = 60
)

var errQuit = errors.New("quit")

func HexToRGBA(u uint32, alpha float64) color.RGBA {
	a := uint8(alpha * 255)
	scale := func(c uint32) uint8 { return uint8(float64(0xff&c) * alpha) }
	return color.RGBA{scale(u >> 16), scale(u >> 8), scale(u), a}
}

var (
	COLOR_BACKGROUND = HexToRGBA(0x2e7d32, 1)
	COLOR_SOLID      = HexToRGBA(0x444444, 1)
	COLOR_CRATE      = HexToRGBA(0x8d6e63, 1)
	COLOR_ORDNANCE   = HexToRGBA(0x111111, 1)
	COLOR_FLAME      = uint32(0xff9800)
	COLOR_PLAYER     = uint32(0x2196f3)
	COLOR_ENEMY      = HexToRGBA(0xe53935, 1)
)

var PICKUP_COLORS = map[model.PickupKind]uint32{
	model.PICKUP_CAPACITY: 0xffeb3b,
	model.PICKUP_FLAME:    0xff5722,
	model.PICKUP_SPEED:    0x00e5ff,
	model.PICKUP_LIFE:     0xf06292,
}

var PICKUP_LABELS = map[model.PickupKind]string{
	model.PICKUP_CAPACITY: "B",
	model.PICKUP_FLAME:    "F",
	model.PICKUP_SPEED:    "S",
	model.PICKUP_LIFE:     "H",
}

var keyCommands = map[ebiten.Key]app.Command{
	ebiten.KeyUp:        app.CMD_UP,
	ebiten.KeyDown:      app.CMD_DOWN,
	ebiten.KeyEnter:     app.CMD_CONFIRM,
	ebiten.KeyEscape:    app.CMD_BACK,
	ebiten.KeyBackspace: app.CMD_ERASE,
	ebiten.KeySpace:     app.CMD_PLANT,
	ebiten.KeyR:         app.CMD_RESTART,
}

type Game struct {
	App    *app.App
	Panel  *Nine
	Tweens map[*gween.Tween]*Action

	width, height int

	shakeOffset float64
	flashAlpha  float64
	hudScale    float64
	playerAlpha float64
	blinking    bool

	hudText  string
	hudLabel *ebiten.Image
}

var theGame *Game

func NewGame(a *app.App) (*Game, error) {
	panel, err := NewNine(12)
	if err != nil {
		return nil, err
	}
	arena := a.Session.View().Arena
	return &Game{
		App:         a,
		Panel:       panel,
		Tweens:      make(map[*gween.Tween]*Action),
		width:       int(float64(arena.Cols) * arena.TileSize),
		height:      int(float64(arena.Rows)*arena.TileSize) + HUD_HEIGHT,
		hudScale:    1,
		playerAlpha: 1,
	}, nil
}

func (g *Game) readCommands() {
	a := g.App
	if a.State == app.APP_NAME_INPUT {
		for _, r := range ebiten.InputChars() {
			a.Type(r)
		}
	}
	for key, c := range keyCommands {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if a.State == app.APP_NAME_INPUT && (key == ebiten.KeySpace || key == ebiten.KeyR) {
			continue
		}
		a.Command(c)
	}
}

func readInput() session.Input {
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	return session.Input{
		Left:  pressed(ebiten.KeyLeft, ebiten.KeyA),
		Right: pressed(ebiten.KeyRight, ebiten.KeyD),
		Up:    pressed(ebiten.KeyUp, ebiten.KeyW),
		Down:  pressed(ebiten.KeyDown, ebiten.KeyS),
	}
}

func (g *Game) react(events []session.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case session.EV_DETONATE:
			g.shake(6)
		case session.EV_PLAYER_HIT:
			g.flash(.6)
		case session.EV_PICKUP_TAKEN:
			g.pulse()
		}
	}
}

func (g *Game) update(screen *ebiten.Image) error {
	g.updateTweens(1. / TPS)
	g.readCommands()
	if g.App.State == app.APP_QUIT {
		return errQuit
	}
	g.App.Update(readInput())
	g.react(g.App.Session.DrainEvents())

	if ebiten.IsDrawingSkipped() {
		return nil
	}

	if e := screen.Fill(color.RGBA{20, 20, 24, 255}); e != nil {
		log.Warnf("%v", e)
	}
	if g.App.State == app.APP_GAME {
		v := g.App.Session.View()
		g.drawArena(screen, v)
		g.drawHud(screen, g.App.Hud(v))
		if g.flashAlpha > 0 {
			ebitenutil.DrawRect(screen, 0, 0, float64(g.width), float64(g.height), color.RGBA{uint8(g.flashAlpha * 255), 0, 0, uint8(g.flashAlpha * 255)})
		}
	}
	g.drawPanel(screen, g.App.Lines())
	return nil
}

func (g *Game) drawArena(screen *ebiten.Image, v session.View) {
	ar := v.Arena
	ts := ar.TileSize
	ox, oy := g.shakeOffset, float64(HUD_HEIGHT)
	rect := func(x, y, w, h float64, c color.Color) {
		ebitenutil.DrawRect(screen, ox+x, oy+y, w, h, c)
	}
	cell := func(c model.Cell, inset float64, clr color.Color) {
		x, y := ar.GridToWorld(c)
		rect(x+inset, y+inset, ts-2*inset, ts-2*inset, clr)
	}

	rect(0, 0, float64(ar.Cols)*ts, float64(ar.Rows)*ts, COLOR_BACKGROUND)
	for row := 0; row < ar.Rows; row++ {
		for col := 0; col < ar.Cols; col++ {
			c := model.Cell{Col: col, Row: row}
			switch ar.Tile(c) {
			case model.TILE_SOLID:
				cell(c, 0, COLOR_SOLID)
			case model.TILE_DESTRUCTIBLE:
				cell(c, 1, COLOR_CRATE)
			}
		}
	}
	for _, p := range v.Pickups {
		cell(p.Cell, 10, HexToRGBA(PICKUP_COLORS[p.Kind], 1))
		x, y := ar.GridToWorld(p.Cell)
		ebitenutil.DebugPrintAt(screen, PICKUP_LABELS[p.Kind], int(ox+x)+17, int(oy+y)+12)
	}
	for _, o := range v.Ordnance {
		cell(o.Cell, 7, COLOR_ORDNANCE)
		x, y := ar.GridToWorld(o.Cell)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", int(o.Remaining.Seconds())+1), int(ox+x)+17, int(oy+y)+12)
	}
	for _, b := range v.Blasts {
		alpha := 1 - float64(ease.InQuad(float32(b.Progress), 0, 1, 1))
		for _, c := range b.Cells {
			cell(c, 2, HexToRGBA(COLOR_FLAME, alpha))
		}
	}
	for _, e := range v.Enemies {
		rect(e.X, e.Y, e.Size, e.Size, COLOR_ENEMY)
	}
	p := v.Player
	alpha := 1.
	if p.Invulnerable {
		g.blink()
		alpha = g.playerAlpha
	}
	rect(p.X, p.Y, p.Size, p.Size, HexToRGBA(COLOR_PLAYER, alpha))
}

func main() {
	flag.Parse()
	loadFonts()

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
	theGame, err = NewGame(app.New(gs, keeper))
	if err != nil {
		log.Fatal(err)
	}
	err = ebiten.Run(theGame.update, theGame.width, theGame.height, 1, "Bomber")
	if err != nil && err != errQuit {
		log.Fatal(err)
	}
}
