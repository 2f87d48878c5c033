package plane

import (
	"sort"
	"strings"

	"github.com/matzehuels/mandelzoom/pkg/errors"
)

// Landmark is a named window on a well-known feature of the Mandelbrot set.
type Landmark struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Window      Window `json:"window"`
}

// Landmarks lists classic regions of the set, keyed by a lowercase slug.
var Landmarks = map[string]Landmark{
	"full": {
		Name:        "Full set",
		Description: "the default overview",
		Window:      DefaultWindow,
	},
	"seahorse": {
		Name:        "Seahorse Valley",
		Description: "dense filaments and repeating curls",
		Window:      Window{MinX: -0.8, MinY: 0.05, MaxX: -0.7, MaxY: 0.15},
	},
	"elephant": {
		Name:        "Elephant Valley",
		Description: "large bulb with trunk-like tendrils",
		Window:      Window{MinX: -1.85, MinY: -0.10, MaxX: -1.75, MaxY: -0.02},
	},
	"spiral": {
		Name:        "Spiral Minibrot",
		Description: "small copy of the set with tight spiral arms",
		Window:      Window{MinX: -0.7435, MinY: 0.1310, MaxX: -0.7420, MaxY: 0.1325},
	},
	"triple-spiral": {
		Name:        "Triple Spiral",
		Description: "threefold symmetric spiral structure",
		Window:      Window{MinX: -0.7480, MinY: 0.0950, MaxX: -0.7450, MaxY: 0.0980},
	},
	"dragon": {
		Name:        "Valley of the Dragon",
		Description: "deep spiral filaments",
		Window:      Window{MinX: -0.7400, MinY: 0.1800, MaxX: -0.7350, MaxY: 0.1850},
	},
	"mini-spiral": {
		Name:        "Minibrot in a Mini-Spiral",
		Description: "self-similar copy inside a spiral arm",
		Window:      Window{MinX: -1.7390, MinY: -0.0235, MaxX: -1.7375, MaxY: -0.0220},
	},
}

// LandmarkNames returns the landmark slugs in sorted order.
func LandmarkNames() []string {
	names := make([]string, 0, len(Landmarks))
	for k := range Landmarks {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LookupLandmark returns the landmark registered under name (case-insensitive).
func LookupLandmark(name string) (Landmark, error) {
	l, ok := Landmarks[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Landmark{}, errors.New(errors.ErrCodeInvalidRegion, "unknown region %q (one of: %s)", name, strings.Join(LandmarkNames(), ", "))
	}
	return l, nil
}
