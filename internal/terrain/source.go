package terrain

import (
	"fmt"
	"strings"

	"magrathea/internal/core"
)

// ElevationSource maps a body-local point in kilometres to an elevation in
// metres.
type ElevationSource interface {
	Elevation(p core.Point) float64
}

// Strategy selects which ElevationSource a terrain is built on.
type Strategy int

const (
	// StrategyPoints interpolates between randomly scattered samples.
	StrategyPoints Strategy = iota
	// StrategyNoise samples opensimplex noise.
	StrategyNoise
)

func (s Strategy) String() string {
	switch s {
	case StrategyPoints:
		return "points"
	case StrategyNoise:
		return "noise"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy accepts the names produced by Strategy.String.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "points", "":
		return StrategyPoints, nil
	case "noise":
		return StrategyNoise, nil
	default:
		return 0, fmt.Errorf("unknown elevation strategy %q", name)
	}
}
