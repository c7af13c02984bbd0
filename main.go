package main

import (
	"flag"
	"fmt"
	"log/slog"
	"runtime"

	"GLTutorial/config"
	"GLTutorial/harness"
	"GLTutorial/imageio"
	Log "GLTutorial/logging"
	"GLTutorial/scenes"
	Types "GLTutorial/types"
)

func selectScene(name string, cfg *config.Config) (*harness.Scene, error) {

	switch name {
	case "triangle", "polygons":
		return scenes.Triangle(), nil
	case "textures":
		return scenes.Textures(cfg.Textures.First, cfg.Textures.Second), nil
	}

	return nil, fmt.Errorf("unknown scene %q (want triangle or textures)", name)

}

func main() {

	// GLFW and the GL context belong to the main thread

	runtime.LockOSThread()

	sceneName := flag.String("scene", "triangle", "scene to render: triangle or textures")
	configPath := flag.String("config", "", "optional YAML configuration file")
	frames := flag.Int("frames", 0, "stop after this many frames, 0 runs until the window is closed")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	cfg := config.Default()

	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		Types.CheckError(err)
	}

	level, err := Log.ParseLevel(cfg.Log.Level)
	Types.CheckError(err)

	if *verbose {
		level = slog.LevelDebug
	}

	Log.SetLogger(Log.NewStderrLogger(level))

	scene, err := selectScene(*sceneName, cfg)
	Types.CheckError(err)

	Log.NewLog("Program startup:", scene.Name)

	renderer := harness.New(Types.Platform{}, imageio.Loader{FlipY: cfg.Textures.FlipY}, harness.Options{
		Window:    cfg.WindowConfig(),
		MaxFrames: *frames,
	})

	stats, err := renderer.Run(scene)
	Types.CheckError(err)

	Log.NewLog("Rendered", stats.Frames, "frames in", stats.Duration)

}
