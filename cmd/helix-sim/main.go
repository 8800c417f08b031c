// helix-sim runs the simulation core headless: it builds the demo scene
// against an in-memory GPU factory and advances frames at a synthetic rate.
// Useful for profiling the tick path and validating scene content without
// a renderer attached.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/lixenwraith/helix/config"
	"github.com/lixenwraith/helix/content"
	"github.com/lixenwraith/helix/core"
	"github.com/lixenwraith/helix/logging"
	"github.com/lixenwraith/helix/vmath"
)

func main() {
	var (
		configPath  = flag.String("config", "", "engine config YAML (defaults apply when empty)")
		frames      = flag.Int("frames", 600, "number of frames to simulate")
		frameDt     = flag.Float64("dt", 1.0/60.0, "synthetic frame delta in seconds")
		profileMode = flag.String("profile", "", "profiling mode: cpu or mem")
	)
	flag.Parse()

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "":
	default:
		fmt.Fprintf(os.Stderr, "unknown profile mode %q\n", *profileMode)
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger, err := logging.New(cfg.LogLevel, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	scene, err := buildDemoScene(cfg, logger)
	if err != nil {
		logger.Fatal("scene build failed", zap.Error(err))
	}

	walker := scene.WalkerEntity
	for frame := 0; frame < *frames; frame++ {
		// Steer the walker in a slow circle to keep the broadphase busy
		angle := float64(frame) * 0.01
		intent := vmath.Vec3{X: 3 * math.Cos(angle), Z: 3 * math.Sin(angle)}
		scene.SetMoveIntent(walker, intent)

		scene.Update(*frameDt)
	}

	logger.Info("simulation finished",
		zap.Int("frames", *frames),
		zap.Uint64("ticks", scene.Runner().TotalTicks()),
		zap.Int("entities", scene.World.EntityCount()),
		zap.Int("render_items", len(scene.RenderItems())),
		zap.Uint64("revision", scene.Revision()),
	)
}

// demoScene bundles the content.Scene with the entities the driver steers
type demoScene struct {
	*content.Scene
	WalkerEntity core.Entity
}

// buildDemoScene constructs ground, a box stack, a spinner, a walker, and
// one intentionally malformed skinned asset to exercise the load-failure path
func buildDemoScene(cfg config.Engine, logger *zap.Logger) (*demoScene, error) {
	scene, err := content.NewScene(cfg, content.NewMemoryFactory(), logger)
	if err != nil {
		return nil, err
	}

	if _, err := scene.AddGround(50, 1); err != nil {
		return nil, err
	}
	for i := 0; i < 3; i++ {
		pos := vmath.Vec3{X: -4, Y: 0.5 + float64(i)*1.2, Z: 2}
		if _, err := scene.AddBox(core.BodyDynamic, pos, vmath.Vec3{X: 0.5, Y: 0.5, Z: 0.5}); err != nil {
			return nil, err
		}
	}
	if _, err := scene.AddSpinner(
		vmath.Vec3{X: 5, Y: 1, Z: -3},
		vmath.Vec3{X: 1, Y: 1, Z: 1},
		vmath.Vec3{Y: 1}, 0.8,
	); err != nil {
		return nil, err
	}

	walker, err := scene.AddWalker(vmath.Vec3{Y: 0.5}, vmath.Vec3{X: 0.4, Y: 0.5, Z: 0.4}, 4)
	if err != nil {
		return nil, err
	}

	// Malformed on purpose: the loader must reject it, log, and leave the
	// entity without the skinned capability
	if _, err := scene.AddSkinned("broken", []byte(`{"version": 99}`), vmath.Vec3{X: 2}); err != nil {
		return nil, err
	}

	return &demoScene{Scene: scene, WalkerEntity: walker}, nil
}
