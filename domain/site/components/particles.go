package components

import (
	"fmt"
	"math/rand/v2"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Pritam6569/portfr/internal/motion"
)

// ParticleColors is the palette particles are drawn from.
var ParticleColors = []string{"#6C63FF", "#FF6584", "#4ECDC4", "#FFC857", "#FF5A5F"}

// Particle is one decorative dot in the page background.
type Particle struct {
	X, Y     float64 // percent of the viewport
	Size     float64 // px
	Color    string
	Opacity  float64
	Duration time.Duration
	Delay    time.Duration
}

// NewParticles returns n particles drawn from r.
func NewParticles(n int, r *rand.Rand) []Particle {
	particles := make([]Particle, n)
	for i := range particles {
		particles[i] = Particle{
			X:        r.Float64() * 100,
			Y:        r.Float64() * 100,
			Size:     r.Float64()*5 + 1,
			Color:    ParticleColors[r.IntN(len(ParticleColors))],
			Opacity:  r.Float64()*0.5 + 0.1,
			Duration: time.Duration((r.Float64()*20 + 10) * float64(time.Second)),
			Delay:    time.Duration(r.Float64() * 10 * float64(time.Second)),
		}
	}
	return particles
}

func ParticleBackground(particles []Particle) g.Node {
	return Div(
		Class("particles"),
		g.Attr("aria-hidden", "true"),
		g.Map(particles, func(p Particle) g.Node {
			return Div(
				Class("particle"),
				Style(fmt.Sprintf("left:%.2f%%;top:%.2f%%;width:%.2fpx;height:%.2fpx;opacity:%.2f",
					p.X, p.Y, p.Size, p.Size, p.Opacity)),
				Div(
					Class("particle-dot"),
					motion.Attrs(motion.Float, -1),
					Style(fmt.Sprintf("background:%s;animation-duration:%dms;animation-delay:%dms",
						p.Color, p.Duration.Milliseconds(), p.Delay.Milliseconds())),
				),
			)
		}),
	)
}
