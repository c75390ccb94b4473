// Command raster is the software rasterizer's entrypoint: it parses CLI
// flags, loads a mesh and texture, opens a presentation window, and runs
// the per-tick pipeline loop until the user quits.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"softraster/camera"
	"softraster/math"
	"softraster/mesh"
	"softraster/pipeline"
	"softraster/present"
)

const targetFrameTime = time.Second / 60

var (
	flagWidth      int
	flagHeight     int
	flagFullscreen bool
	flagVSync      bool
	flagMode       string
)

func main() {
	root := &cobra.Command{
		Use:   "raster [model.obj] [texture.png]",
		Short: "Software 3D rasterizer",
		Args:  cobra.MaximumNArgs(2),
		RunE:  run,
	}

	root.Flags().IntVar(&flagWidth, "width", 800, "window width")
	root.Flags().IntVar(&flagHeight, "height", 600, "window height")
	root.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "open in fullscreen")
	root.Flags().BoolVar(&flagVSync, "vsync", true, "enable vsync")
	root.Flags().StringVar(&flagMode, "mode", "wire", "initial render mode: wire|solid|texture")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "raster: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	objPath := "assets/model.obj"
	pngPath := "assets/texture.png"
	if len(args) >= 1 {
		objPath = args[0]
	}
	if len(args) >= 2 {
		pngPath = args[1]
	}

	store := mesh.NewStore()
	store.LoadMesh(objPath, pngPath, math.NewVec3(1, 1, 1), math.NewVec3(0, 0, 5), math.Vec3{})

	cam := camera.New()
	pipe := pipeline.New(flagWidth, flagHeight, store, cam)
	pipe.Mode = modeFromFlag(flagMode)

	win, err := present.NewWindow(present.Config{
		Width:      flagWidth,
		Height:     flagHeight,
		Title:      "softraster",
		Fullscreen: flagFullscreen,
		VSync:      flagVSync,
	})
	if err != nil {
		return fmt.Errorf("init failure: %w", err)
	}
	defer win.Destroy()

	last := time.Now()
	for !win.ShouldClose() {
		frameStart := time.Now()
		dt := float32(frameStart.Sub(last).Seconds())
		last = frameStart

		win.PollEvents()
		input := pollInput(win, pipe.Mode)
		if input.Quit {
			break
		}

		if err := pipe.Frame(dt, input); err != nil {
			return fmt.Errorf("frame: %w", err)
		}
		win.Present(pipe.Color.Bytes())

		if elapsed := time.Since(frameStart); elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	return nil
}

func modeFromFlag(s string) pipeline.RenderMode {
	switch s {
	case "solid":
		return pipeline.ModeSolid
	case "texture":
		return pipeline.ModeTexture | pipeline.ModeWire
	default:
		return pipeline.ModeWire | pipeline.ModeDot
	}
}

// pollInput reads the current key state into an InputState. SetMode stays
// zero, which keeps the pipeline's current mode, unless a mode-select key
// is held; currentMode is not read.
func pollInput(win *present.Window, currentMode pipeline.RenderMode) pipeline.InputState {
	in := pipeline.InputState{
		Quit:           win.IsKeyPressed(present.KeyEscape),
		MoveForward:    win.IsKeyPressed(present.KeyW),
		MoveBackward:   win.IsKeyPressed(present.KeyS),
		YawLeft:        win.IsKeyPressed(present.KeyA),
		YawRight:       win.IsKeyPressed(present.KeyD),
		PitchUp:        win.IsKeyPressed(present.KeyI),
		PitchDown:      win.IsKeyPressed(present.KeyK),
		MoveUp:         win.IsKeyPressed(present.KeyUp),
		MoveDown:       win.IsKeyPressed(present.KeyDown),
		ToggleCulling:  win.IsKeyPressed(present.KeyC),
		ToggleDepthVis: win.IsKeyPressed(present.KeyZ),
	}

	switch {
	case win.IsKeyPressed(present.Key1):
		in.SetMode = pipeline.ModeWire | pipeline.ModeDot
	case win.IsKeyPressed(present.Key2):
		in.SetMode = pipeline.ModeWire
	case win.IsKeyPressed(present.Key3):
		in.SetMode = pipeline.ModeSolid
	case win.IsKeyPressed(present.Key4):
		in.SetMode = pipeline.ModeSolid | pipeline.ModeWire
	case win.IsKeyPressed(present.Key5):
		in.SetMode = pipeline.ModeTexture
	case win.IsKeyPressed(present.Key6):
		in.SetMode = pipeline.ModeTexture | pipeline.ModeWire
	}

	return in
}
