//go:build !ebiten

package viewer

import "fmt"

// Game is a placeholder for builds without the ebiten tag.
type Game struct{}

// New reports that the GUI build tag is missing.
func New(Settings) (*Game, error) {
	return nil, fmt.Errorf("viewer.New requires building with the 'ebiten' tag")
}
