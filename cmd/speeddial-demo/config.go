package main

import (
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/tanema/gween/ease"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/speeddial/pkg/animation"
	"github.com/go-drift/speeddial/pkg/layouts"
)

// sceneConfig is the optional YAML scene description. Every field has a
// sensible default so the demo runs without a file.
type sceneConfig struct {
	Dial  dialConfig   `yaml:"dial"`
	Items []itemConfig `yaml:"items"`
}

type dialConfig struct {
	Overlap     float64 `yaml:"overlap"`
	OpenMillis  int     `yaml:"open_ms"`
	CloseMillis int     `yaml:"close_ms"`
	OpenCurve   string  `yaml:"open_curve"`  // see curveFunc
	CloseCurve  string  `yaml:"close_curve"` // see curveFunc
	Reverse     bool    `yaml:"reverse"`
	Layout      string  `yaml:"layout"`  // vertical, horizontal, arc, radial
	Spacing     float64 `yaml:"spacing"` // vertical/horizontal item spacing
	Radius      float64 `yaml:"radius"`  // arc/radial radius
}

type itemConfig struct {
	Label string `yaml:"label"`
	Color string `yaml:"color"`
}

func defaultScene() sceneConfig {
	return sceneConfig{
		Dial: dialConfig{
			Overlap:     0.8,
			OpenMillis:  250,
			CloseMillis: 200,
			OpenCurve:   "back-out",
			Layout:      "vertical",
			Spacing:     64,
			Radius:      120,
		},
		Items: []itemConfig{
			{Label: "Copy", Color: "tomato"},
			{Label: "Paste", Color: "mediumseagreen"},
			{Label: "Share", Color: "steelblue"},
			{Label: "Delete", Color: "orange"},
		},
	}
}

// loadScene reads a scene file, falling back to the built-in scene when path
// is empty. Missing fields inherit their defaults.
func loadScene(path string) (sceneConfig, error) {
	scene := defaultScene()
	if path == "" {
		return scene, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return sceneConfig{}, fmt.Errorf("reading scene: %w", err)
	}
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return sceneConfig{}, fmt.Errorf("parsing scene %s: %w", path, err)
	}

	if scene.Dial.Overlap < 0 || scene.Dial.Overlap > 1 {
		return sceneConfig{}, fmt.Errorf("scene %s: overlap %v outside [0, 1]", path, scene.Dial.Overlap)
	}
	if len(scene.Items) == 0 {
		return sceneConfig{}, fmt.Errorf("scene %s: no items", path)
	}
	for _, name := range []string{scene.Dial.OpenCurve, scene.Dial.CloseCurve} {
		if _, err := curveFunc(name); err != nil {
			return sceneConfig{}, fmt.Errorf("scene %s: %w", path, err)
		}
	}
	for _, item := range scene.Items {
		if _, err := item.rgba(); err != nil {
			return sceneConfig{}, fmt.Errorf("scene %s: %w", path, err)
		}
	}
	return scene, nil
}

func (d dialConfig) openDuration() time.Duration {
	return time.Duration(d.OpenMillis) * time.Millisecond
}

func (d dialConfig) closeDuration() time.Duration {
	return time.Duration(d.CloseMillis) * time.Millisecond
}

// curveFunc resolves a named easing curve. The bezier names come from the
// animation package; the rest are gween eases, so a scene can pick a bounce
// or overshoot entrance. Empty means the dial's directional default.
func curveFunc(name string) (func(float64) float64, error) {
	switch strings.ToLower(name) {
	case "":
		return nil, nil
	case "linear":
		return animation.LinearCurve, nil
	case "ease":
		return animation.Ease, nil
	case "ease-in":
		return animation.EaseIn, nil
	case "ease-out":
		return animation.EaseOut, nil
	case "ease-in-out":
		return animation.EaseInOut, nil
	case "back-out":
		return animation.FromEase(ease.OutBack), nil
	case "bounce-out":
		return animation.FromEase(ease.OutBounce), nil
	case "elastic-out":
		return animation.FromEase(ease.OutElastic), nil
	case "quad-in":
		return animation.FromEase(ease.InQuad), nil
	default:
		return nil, fmt.Errorf("unknown curve %q", name)
	}
}

// layoutFunc resolves the named layout preset.
func (d dialConfig) layoutFunc() (layouts.Layout, error) {
	switch strings.ToLower(d.Layout) {
	case "", "vertical":
		return layouts.Vertical(d.Spacing), nil
	case "horizontal":
		return layouts.Horizontal(d.Spacing), nil
	case "arc":
		// Fan from straight up to straight left.
		return layouts.Arc(d.Radius, -90, -90), nil
	case "radial":
		return layouts.Radial(d.Radius), nil
	default:
		return nil, fmt.Errorf("unknown layout %q", d.Layout)
	}
}

// rgba resolves the item's SVG 1.1 color name via x/image/colornames.
func (i itemConfig) rgba() (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(i.Color))
	if name == "" {
		return colornames.Slategray, nil
	}
	c, ok := colornames.Map[name]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color %q for item %q", i.Color, i.Label)
	}
	return c, nil
}
