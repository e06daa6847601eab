package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type Action struct {
	nexts    []func(g *Game)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

func (a *Action) next(t *gween.Tween) *Action {
	action := &Action{}
	if a.nexts == nil {
		a.nexts = make([]func(g *Game), 0)
	}
	a.nexts = append(a.nexts,
		func(g *Game) {
			g.Tweens[t] = action
		})
	return action
}

func (g *Game) updateTweens(dt float32) {
	for t, a := range g.Tweens {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			for _, next := range a.nexts {
				next(g)
			}
			delete(g.Tweens, t)
		}
	}
}

// shake jolts the arena and lets it settle.
func (g *Game) shake(strength float32) {
	g.Tweens[gween.New(strength, 0, .35, ease.OutElastic)] = &Action{
		onChange: func(v float32) { g.shakeOffset = float64(v) },
	}
}

func (g *Game) flash(alpha float32) {
	g.Tweens[gween.New(alpha, 0, .4, ease.OutQuad)] = &Action{
		onChange: func(v float32) { g.flashAlpha = float64(v) },
	}
}

// pulse grows the HUD for a moment.
func (g *Game) pulse() {
	up := &Action{onChange: func(v float32) { g.hudScale = float64(v) }}
	g.Tweens[gween.New(1, 1.25, .1, ease.OutQuad)] = up
	down := up.next(gween.New(1.25, 1, .2, ease.InQuad))
	down.onChange = up.onChange
}

// blink fades the player out and in while it cannot be hurt.
func (g *Game) blink() {
	if g.blinking {
		return
	}
	g.blinking = true
	out := &Action{onChange: func(v float32) { g.playerAlpha = float64(v) }}
	g.Tweens[gween.New(1, .25, .1, ease.Linear)] = out
	in := out.next(gween.New(.25, 1, .1, ease.Linear))
	in.onChange = out.onChange
	in.addOnFinish(func() {
		g.blinking = false
	})
}
