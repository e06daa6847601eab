package main

import (
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var HudFont, BigFont font.Face

func loadFonts() {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	const dpi = 72
	HudFont = truetype.NewFace(tt, &truetype.Options{Size: 18, DPI: dpi, Hinting: font.HintingFull})
	BigFont = truetype.NewFace(tt, &truetype.Options{Size: 26, DPI: dpi, Hinting: font.HintingFull})
}

// Nine draws a nine-slice panel: corners keep their size, edges stretch along one axis
// and the middle along both.
type Nine struct {
	images              *ebiten.Image
	alpha               float64
	R, G, B             float64
	positions           [4]int
	x, y, width, height int
}

// NewNine builds the panel source: a 3x3 grid of edge-sized blocks, bright border around
// a dark fill.
func NewNine(edge int) (*Nine, error) {
	img, err := ebiten.NewImage(edge*3, edge*3, ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	if err := img.Fill(color.RGBA{0xee, 0xee, 0xee, 0xff}); err != nil {
		return nil, err
	}
	inner, err := ebiten.NewImage(edge*3-4, edge*3-4, ebiten.FilterDefault)
	if err != nil {
		return nil, err
	}
	inner.Fill(color.RGBA{0x20, 0x20, 0x28, 0xff})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(2, 2)
	img.DrawImage(inner, op)
	return &Nine{
		images:    img,
		alpha:     .9,
		R:         1,
		G:         1,
		B:         1,
		positions: [4]int{0, edge, edge * 2, edge * 3},
	}, nil
}

func (n *Nine) SetBounds(x, y, width, height int) {
	n.x, n.y = x, y
	n.width, n.height = width, height
}

func (n *Nine) Draw(screen *ebiten.Image) {
	p := n.positions
	edge := float64(p[1] - p[0])
	targets := [3]float64{float64(n.x), float64(n.x) + edge, float64(n.x+n.width) - edge}
	targetsY := [3]float64{float64(n.y), float64(n.y) + edge, float64(n.y+n.height) - edge}
	spans := [3]float64{edge, float64(n.width) - 2*edge, edge}
	spansY := [3]float64{edge, float64(n.height) - 2*edge, edge}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			src := image.Rect(p[i], p[j], p[i+1], p[j+1])
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(spans[i]/edge, spansY[j]/edge)
			op.GeoM.Translate(targets[i], targetsY[j])
			op.ColorM.Scale(n.R, n.G, n.B, n.alpha)
			screen.DrawImage(n.images.SubImage(src).(*ebiten.Image), op)
		}
	}
}

// drawPanel centres a panel holding lines on the screen.
func (g *Game) drawPanel(screen *ebiten.Image, lines []string) {
	if len(lines) == 0 {
		return
	}
	const lineHeight, pad = 32, 24
	width := 0
	for _, l := range lines {
		if w := font.MeasureString(BigFont, l).Ceil(); w > width {
			width = w
		}
	}
	w, h := width+2*pad, len(lines)*lineHeight+2*pad
	x, y := (g.width-w)/2, (g.height-h)/2
	g.Panel.SetBounds(x, y, w, h)
	g.Panel.Draw(screen)
	for i, l := range lines {
		text.Draw(screen, l, BigFont, x+pad, y+pad+(i+1)*lineHeight-8, color.White)
	}
}

func (g *Game) drawHud(screen *ebiten.Image, line string) {
	if g.hudLabel == nil || line != g.hudText {
		g.hudText = line
		g.hudLabel = prepareTextImage(line, g.width)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.hudScale, g.hudScale)
	op.GeoM.Translate(8, 0)
	screen.DrawImage(g.hudLabel, op)
}

func prepareTextImage(s string, width int) *ebiten.Image {
	img, _ := ebiten.NewImage(width, HUD_HEIGHT, ebiten.FilterLinear)
	text.Draw(img, s, HudFont, 0, 26, color.White)
	return img
}
