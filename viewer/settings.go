// Package viewer shows the cluster-colored simulation in a window.
package viewer

import (
	"github.com/sheikhrachel/cluster-gol/model"
	"github.com/sheikhrachel/cluster-gol/utils"
)

// Settings configures a viewer window.
type Settings struct {
	Width, Height int
	Population    int
	Seed          int64
	Workers       int
	Connectivity  model.Connectivity
	Scale         int
	TPS           int
}

// SettingsFromConfig maps a run configuration onto window settings.
func SettingsFromConfig(c utils.Config) Settings {
	s := Settings{
		Width:        c.Width,
		Height:       c.Height,
		Population:   c.InitialPopulation,
		Seed:         c.Seed,
		Workers:      c.Workers,
		Connectivity: model.Connectivity(c.Connectivity),
		Scale:        max(1, c.Scale),
		TPS:          c.FPS,
	}
	if s.TPS <= 0 {
		s.TPS = 10
	}
	return s
}

// stepGate decides whether a tick advances the simulation.
// A held tick shows the current generation unchanged, which is how the first
// frame and the frame after a reset get drawn before anything moves.
type stepGate struct {
	paused   bool
	tickOnce bool
	hold     bool
}

// reset holds the next tick and drops any pending single step
func (s *stepGate) reset() {
	s.hold = true
	s.tickOnce = false
}

func (s *stepGate) togglePause() {
	s.paused = !s.paused
}

// stepOnce advances a single generation while paused
func (s *stepGate) stepOnce() {
	s.tickOnce = true
}

// shouldStep reports whether this tick advances, consuming a hold or a single step
func (s *stepGate) shouldStep() bool {
	if s.hold {
		s.hold = false
		return false
	}
	if s.paused && !s.tickOnce {
		return false
	}
	s.tickOnce = false
	return true
}
