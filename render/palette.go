package render

import (
	"sync"

	"github.com/battlesnakeio/mamba/config"
)

var fallbackColors = []string{
	"yellow",
	"magenta",
	"cyan",
	"red",
	"white",
}

// Palette maps players to snake colors. The configured snake colors come
// first, then the fallback list, wrapping around by player id.
type Palette struct {
	mu     sync.RWMutex
	colors []string
}

// NewPalette builds a palette from the configured colors.
func NewPalette(c config.Colors) *Palette {
	p := &Palette{}
	p.Reset(c)
	return p
}

// Color returns the color of a player.
func (p *Palette) Color(player int) string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if player < 0 {
		player = -player
	}
	return p.colors[player%len(p.colors)]
}

// Reset swaps in a new set of configured colors.
func (p *Palette) Reset(c config.Colors) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.colors = nil
	for _, s := range []string{c.Snake, c.Snake2} {
		if s != "" {
			p.colors = append(p.colors, s)
		}
	}
	p.colors = append(p.colors, fallbackColors...)
}
