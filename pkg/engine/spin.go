package engine

import "github.com/parabolic/parabolic/pkg/platform"

// SpinOrder is the tilt sequence of one spin cycle.
var SpinOrder = [4]platform.Direction{platform.North, platform.West, platform.South, platform.East}

// Spin applies one spin cycle to g.
func Spin(g *platform.Grid, strategy platform.Strategy) {
	for _, d := range SpinOrder {
		strategy.Apply(g, d)
	}
}

// SpinN applies n spin cycles to g.
func SpinN(g *platform.Grid, strategy platform.Strategy, n int) {
	for i := 0; i < n; i++ {
		Spin(g, strategy)
	}
}

// SpinDirectionNames returns the names of SpinOrder, for per-direction metrics.
func SpinDirectionNames() []string {
	names := make([]string, len(SpinOrder))
	for i, d := range SpinOrder {
		names[i] = d.String()
	}
	return names
}
