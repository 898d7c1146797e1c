// Command speeddial-demo renders an interactive speed dial with Ebitengine.
//
// Click the round button in the bottom-right corner to disclose the actions;
// click an action to select it, or anywhere else to dismiss. A scene file
// can restyle the dial:
//
//	speeddial-demo -scene scene.yaml
//
// See config.go for the scene schema.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/go-drift/speeddial/pkg/animation"
	"github.com/go-drift/speeddial/pkg/geometry"
	"github.com/go-drift/speeddial/pkg/layouts"
	"github.com/go-drift/speeddial/pkg/speeddial"
)

const (
	screenW = 480
	screenH = 640

	fabRadius  = 28
	itemRadius = 20
)

// action is the item payload: what each secondary button does.
type action struct {
	label string
	tint  color.RGBA
}

// sprite is the content type the builders return: something the game can
// measure, place, and draw.
type sprite struct {
	size  geometry.Size
	draw  func(screen *ebiten.Image, at geometry.Offset)
	onTap func()
}

func (s sprite) bounds(at geometry.Offset) geometry.Rect {
	return geometry.RectFromLTWH(at.X, at.Y, s.size.Width, s.size.Height)
}

type game struct {
	dial     *speeddial.Surface[action, sprite]
	layout   layouts.Layout
	count    int
	selected string
}

func newGame(scene sceneConfig) (*game, error) {
	layout, err := scene.Dial.layoutFunc()
	if err != nil {
		return nil, err
	}

	openCurve, err := curveFunc(scene.Dial.OpenCurve)
	if err != nil {
		return nil, err
	}
	closeCurve, err := curveFunc(scene.Dial.CloseCurve)
	if err != nil {
		return nil, err
	}

	g := &game{layout: layout, count: len(scene.Items)}

	items := make([]action, len(scene.Items))
	for i, item := range scene.Items {
		tint, err := item.rgba()
		if err != nil {
			return nil, err
		}
		items[i] = action{label: item.Label, tint: tint}
	}

	dial, err := speeddial.New(speeddial.Config[action, sprite]{
		Items:                items,
		PrimaryBuilder:       g.buildPrimary,
		ItemBuilder:          g.buildItem,
		SecondaryItemBuilder: g.buildLabel,
		BackdropBuilder:      g.buildBackdrop,
		// Items hang their center off the center of the primary button.
		PrimaryAnchor: geometry.AlignmentCenter,
		ItemAnchor:    geometry.AlignmentCenter,
		Overlap:       scene.Dial.Overlap,
		OpenDuration:  scene.Dial.openDuration(),
		CloseDuration: scene.Dial.closeDuration(),
		OpenCurve:     openCurve,
		CloseCurve:    closeCurve,
		Reverse:       scene.Dial.Reverse,
		OnOpen:        func() { log.Println("dial opened") },
		OnClose:       func() { log.Println("dial closed") },
	})
	if err != nil {
		return nil, err
	}
	g.dial = dial
	return g, nil
}

// primaryBounds is the fixed position of the primary control.
func (g *game) primaryBounds() geometry.Rect {
	return geometry.RectFromLTWH(
		screenW-24-2*fabRadius,
		screenH-24-2*fabRadius,
		2*fabRadius,
		2*fabRadius,
	)
}

func (g *game) buildPrimary(c *speeddial.Controller) sprite {
	progress := 0.0
	if c.Status() != speeddial.StatusClosed {
		progress = c.Animation().Value
	}
	return sprite{
		size: geometry.Size{Width: 2 * fabRadius, Height: 2 * fabRadius},
		draw: func(screen *ebiten.Image, at geometry.Offset) {
			center := geometry.Offset{X: at.X + fabRadius, Y: at.Y + fabRadius}
			vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), fabRadius, color.RGBA{R: 0x34, G: 0x51, B: 0xb2, A: 0xff}, true)
			drawPlus(screen, center, 12, progress*math.Pi/4)
		},
		onTap: c.Toggle,
	}
}

func (g *game) buildItem(item action, index int, anim *animation.CurvedAnimation, c *speeddial.Controller) sprite {
	t := anim.Value()
	return sprite{
		size: geometry.Size{Width: 2 * itemRadius, Height: 2 * itemRadius},
		draw: func(screen *ebiten.Image, at geometry.Offset) {
			center := geometry.Offset{X: at.X + itemRadius, Y: at.Y + itemRadius}
			tint := item.tint
			tint.A = uint8(255 * clamp01(t))
			vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), float32(itemRadius*t), tint, true)
		},
		onTap: func() {
			g.selected = item.label
			c.Close()
		},
	}
}

func (g *game) buildLabel(item action, index int, anim *animation.CurvedAnimation, c *speeddial.Controller) sprite {
	t := anim.Value()
	return sprite{
		size: geometry.Size{Width: float64(8 * len(item.label)), Height: 16},
		draw: func(screen *ebiten.Image, at geometry.Offset) {
			if t < 0.5 {
				return // labels pop in during the second half of the slide
			}
			ebitenutil.DebugPrintAt(screen, item.label, int(at.X), int(at.Y))
		},
	}
}

func (g *game) buildBackdrop(c *speeddial.Controller) sprite {
	alpha := uint8(96 * clamp01(c.Animation().Value))
	return sprite{
		size: geometry.Size{Width: screenW, Height: screenH},
		draw: func(screen *ebiten.Image, at geometry.Offset) {
			vector.DrawFilledRect(screen, 0, 0, screenW, screenH, color.RGBA{A: alpha}, false)
		},
		onTap: c.Close,
	}
}

func (g *game) Update() error {
	animation.StepTickers()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.handleTap(float64(mx), float64(my))
	}
	return nil
}

// handleTap routes a click front-to-back: primary button, then items, then
// the backdrop.
func (g *game) handleTap(x, y float64) {
	plan := g.dial.Build()
	primary := g.primaryBounds()

	if contains(primary, x, y) {
		if plan.Primary.onTap != nil {
			plan.Primary.onTap()
		}
		return
	}

	for _, entry := range plan.Items {
		at := g.itemPosition(plan, entry)
		if contains(entry.Content.bounds(at), x, y) && entry.Content.onTap != nil {
			entry.Content.onTap()
			return
		}
	}

	if plan.HasBackdrop && plan.Mounted && plan.Backdrop.onTap != nil {
		plan.Backdrop.onTap()
	}
}

// itemPosition is the anchor-resolved position plus the layout's fan offset,
// scaled by the item's disclosure progress.
func (g *game) itemPosition(plan speeddial.Plan[sprite], entry speeddial.PlanItem[sprite]) geometry.Offset {
	base := plan.Anchor.Resolve(g.primaryBounds(), entry.Content.size)
	slide := g.layout(entry.Index, g.count).Scale(entry.Animation.Value())
	return base.Add(slide)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0xf2, G: 0xf2, B: 0xf7, A: 0xff})

	plan := g.dial.Build()

	if plan.HasBackdrop {
		plan.Backdrop.draw(screen, geometry.Offset{})
	}

	for _, entry := range plan.Items {
		at := g.itemPosition(plan, entry)
		entry.Content.draw(screen, at)
		if plan.HasSecondary {
			// Labels sit to the left of their item.
			labelAt := at.Add(geometry.Offset{X: -entry.Secondary.size.Width - 12, Y: itemRadius - 8})
			entry.Secondary.draw(screen, labelAt)
		}
	}

	plan.Primary.draw(screen, g.primaryBounds().TopLeft())

	status := fmt.Sprintf("status: %s", g.dial.Controller().Status())
	if g.selected != "" {
		status += fmt.Sprintf("  selected: %s", g.selected)
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

// drawPlus draws the "+" glyph on the primary button, rotated by angle so it
// morphs toward an "x" while the dial opens.
func drawPlus(screen *ebiten.Image, center geometry.Offset, arm, angle float64) {
	for _, base := range []float64{0, math.Pi / 2} {
		a := base + angle
		dx := arm * math.Cos(a)
		dy := arm * math.Sin(a)
		vector.StrokeLine(screen,
			float32(center.X-dx), float32(center.Y-dy),
			float32(center.X+dx), float32(center.Y+dy),
			3, color.White, true)
	}
}

func contains(r geometry.Rect, x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func main() {
	scenePath := flag.String("scene", "", "path to a YAML scene file")
	flag.Parse()

	scene, err := loadScene(*scenePath)
	if err != nil {
		log.Fatalf("speeddial-demo: %v", err)
	}

	g, err := newGame(scene)
	if err != nil {
		log.Fatalf("speeddial-demo: %v", err)
	}
	defer g.dial.Dispose()

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Speed Dial")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
