package model

import (
	"sort"

	"github.com/pkg/errors"
)

// Named starting layouts for NewEngineFromGrid
const (
	PatternGlider   = "glider"
	PatternBlinker  = "blinker"
	PatternShowcase = "showcase"
)

var patternLayouts = map[string]func(g *Grid){
	PatternGlider: func(g *Grid) {
		g.AddGlider(1, 1)
	},
	PatternBlinker: func(g *Grid) {
		g.AddOscillator(g.width/2-1, g.height/2)
	},
	// gliders in both top corners, blinkers on the diagonal
	PatternShowcase: func(g *Grid) {
		if g.width < 10 || g.height < 10 {
			g.AddGlider(1, 1)
			return
		}
		g.AddGlider(5, 5)
		if g.width >= 20 && g.height >= 15 {
			g.AddGlider(g.width-8, 5)
		}
		g.AddOscillator(g.width/4, g.height/4)
		if g.width >= 30 {
			g.AddOscillator(3*g.width/4, 3*g.height/4)
		}
	},
}

// Patterns lists the names PatternGrid accepts
func Patterns() []string {
	names := make([]string, 0, len(patternLayouts))
	for name := range patternLayouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PatternGrid builds a width x height grid holding the named layout
func PatternGrid(name string, width, height int) (*Grid, error) {
	layout, ok := patternLayouts[name]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidConfig, "[PatternGrid] unknown pattern %q", name)
	}
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "[PatternGrid] dimensions must be positive, got %dx%d", height, width)
	}
	g := NewGrid(width, height)
	layout(g)
	return g, nil
}
