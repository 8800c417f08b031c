// helix-view is a terminal debug viewer standing in for the real renderer.
// It consumes the scene's draw list read-only and plots each render item's
// world position on a top-down XZ grid. q or ESC quits.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/helix/config"
	"github.com/lixenwraith/helix/content"
	"github.com/lixenwraith/helix/core"
	"github.com/lixenwraith/helix/logging"
	"github.com/lixenwraith/helix/render"
	"github.com/lixenwraith/helix/vmath"
)

const worldHalfExtent = 20.0 // world units mapped to the terminal

func main() {
	logger, err := logging.New("warn", false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	scene, err := buildScene(logger)
	if err != nil {
		logger.Fatal("scene build failed", zap.Error(err))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventKey:
				if e.Key() == tcell.KeyEscape || e.Rune() == 'q' {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			scene.Update(dt)
			draw(screen, scene.RenderItems())
		}
	}
}

// draw plots items on the XZ plane; the Y row of each glyph encodes nothing,
// height shows as the digit of the item's world Y clamped to 0-9
func draw(screen tcell.Screen, items []render.RenderItem) {
	screen.Clear()
	width, height := screen.Size()
	if width < 4 || height < 4 {
		screen.Show()
		return
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for _, item := range items {
		pos := vmath.M4TransformPoint(item.Model, vmath.Vec3{})

		cx := int((pos.X/worldHalfExtent + 1) * 0.5 * float64(width-1))
		cy := int((pos.Z/worldHalfExtent + 1) * 0.5 * float64(height-1))
		if cx < 0 || cx >= width || cy < 0 || cy >= height {
			continue
		}

		level := int(pos.Y)
		if level < 0 {
			level = 0
		}
		if level > 9 {
			level = 9
		}
		screen.SetContent(cx, cy, rune('0'+level), nil, style)
	}
	screen.Show()
}

func buildScene(logger *zap.Logger) (*content.Scene, error) {
	scene, err := content.NewScene(config.Default(), content.NewMemoryFactory(), logger)
	if err != nil {
		return nil, err
	}

	if _, err := scene.AddGround(worldHalfExtent, 1); err != nil {
		return nil, err
	}
	for i := 0; i < 5; i++ {
		pos := vmath.Vec3{X: float64(i*3 - 6), Y: 3, Z: float64(i - 2)}
		if _, err := scene.AddBox(core.BodyDynamic, pos, vmath.Vec3{X: 0.5, Y: 0.5, Z: 0.5}); err != nil {
			return nil, err
		}
	}
	if _, err := scene.AddSpinner(
		vmath.Vec3{X: 6, Y: 1, Z: 6},
		vmath.Vec3{X: 1, Y: 1, Z: 1},
		vmath.Vec3{Y: 1}, 1.2,
	); err != nil {
		return nil, err
	}
	return scene, nil
}
