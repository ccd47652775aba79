// Package scene holds the animated demo scenes. A scene is a pure function of
// time: rendering the same t twice yields the same pixels, so frames can be
// rendered in any order and on any worker.
package scene

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"softraster/internal/asset"
	"softraster/internal/raster"
)

// ErrUnknown is returned by Lookup for names with no scene.
var ErrUnknown = errors.New("scene: unknown scene")

// Scene draws one frame of an animation.
type Scene interface {
	Name() string
	// Render paints the frame at t seconds into c, covering all of it.
	Render(c *raster.Canvas, t float64) error
}

// Env carries shared inputs for scenes that need more than the canvas.
type Env struct {
	// Asset is the image used by the squish scene. A generated pattern is
	// used when it is nil.
	Asset *asset.Image
}

type renderFunc func(c *raster.Canvas, t float64) error

type scene struct {
	name   string
	render renderFunc
}

func (s scene) Name() string { return s.name }

func (s scene) Render(c *raster.Canvas, t float64) error {
	if err := s.render(c, t); err != nil {
		return fmt.Errorf("scene %s: %w", s.name, err)
	}
	return nil
}

var registry = map[string]func(Env) renderFunc{
	"checker":  func(Env) renderFunc { return renderChecker },
	"circles":  func(Env) renderFunc { return renderCircles },
	"triangle": func(Env) renderFunc { return renderTriangle },
	"grid3d":   func(Env) renderFunc { return renderGrid3D },
	"pyramid":  func(Env) renderFunc { return renderPyramid },
	"squish":   newSquish,
	"glyphs":   func(Env) renderFunc { return renderGlyphs },
}

// Names returns every scene name in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the scene called name.
func Lookup(name string, env Env) (Scene, error) {
	newRender, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, name)
	}
	return scene{name: name, render: newRender(env)}, nil
}

// Resolve looks up every name, or every scene when names is empty.
func Resolve(names []string, env Env) ([]Scene, error) {
	if len(names) == 0 {
		names = Names()
	}
	out := make([]Scene, 0, len(names))
	for _, name := range names {
		s, err := Lookup(name, env)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// pingPong folds v into [0, span], bouncing at both ends.
func pingPong(v, span float64) float64 {
	if span <= 0 {
		return 0
	}
	m := math.Mod(v, 2*span)
	if m < 0 {
		m += 2 * span
	}
	return span - math.Abs(m-span)
}

// textScale picks a font scale so a line takes roughly 1/frac of h.
func textScale(h, frac int) int {
	return max(h/(frac*8), 1)
}
