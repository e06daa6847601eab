package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// BoomGenerator is a noise burst over a falling rumble.
type BoomGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

func NewBoomGenerator(sr beep.SampleRate, seed int64) *BoomGenerator {
	return &BoomGenerator{sr: sr, seed: seed}
}

func (g *BoomGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 6)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		freq := 40 + 50*math.Exp(-t*10)
		rumble := 0.5 * math.Sin(2*math.Pi*freq*t)

		sample := envelope * (0.35*noise + rumble) * 0.6
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BoomGenerator) Err() error {
	return nil
}

// SweepGenerator glides between two frequencies over its length, with a short attack
// and a linear release.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	pos      int
	phase    float64
}

func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{sr: sr, from: from, to: to, length: sr.N(d)}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.length {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.length {
			return i, true
		}
		p := float64(g.pos) / float64(g.length)
		freq := g.from + (g.to-g.from)*p
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		attack := math.Min(float64(g.pos)/float64(g.sr.N(5*time.Millisecond)), 1)
		sample := 0.25 * attack * (1 - p) * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
