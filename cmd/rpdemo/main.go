// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Command rpdemo renders a scene described in YAML using
// a registered driver and logs a summary of every frame.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gviegas/rp"
	"github.com/gviegas/rp/camera"
	"github.com/gviegas/rp/driver"
	"github.com/gviegas/rp/driver/soft"
	"github.com/gviegas/rp/gltf"
	"github.com/gviegas/rp/linear"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		log.Fatal(err)
	}
}

// cameraFile is the camera section of a scene file.
type cameraFile struct {
	Cameras []struct {
		Name         string     `yaml:"name"`
		Position     *linear.V3 `yaml:"position"`
		Target       *linear.V3 `yaml:"target"`
		Orthographic bool       `yaml:"orthographic"`
		FovY         *float32   `yaml:"fov_y"`
		Size         *float32   `yaml:"size"`
		Aspect       *float32   `yaml:"aspect"`
		Near         *float32   `yaml:"near"`
		Far          *float32   `yaml:"far"`
		LayerMask    *uint32    `yaml:"layer_mask"`
	} `yaml:"cameras"`
}

func loadCameras(data []byte) ([]driver.Camera, error) {
	var cf cameraFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing cameras: %w", err)
	}
	if len(cf.Cameras) == 0 {
		return nil, fmt.Errorf("scene has no cameras")
	}
	cams := make([]driver.Camera, 0, len(cf.Cameras))
	for _, c := range cf.Cameras {
		cam := camera.New(c.Name)
		if c.Position != nil {
			cam.Pos = *c.Position
		}
		if c.Target != nil {
			cam.Target = *c.Target
		}
		if c.Orthographic {
			cam.Kind = camera.Orthographic
		}
		for _, x := range [...]struct {
			src *float32
			dst *float32
		}{
			{c.FovY, &cam.FovY},
			{c.Size, &cam.Size},
			{c.Aspect, &cam.Aspect},
			{c.Near, &cam.Near},
			{c.Far, &cam.Far},
		} {
			if x.src != nil {
				*x.dst = *x.src
			}
		}
		if c.LayerMask != nil {
			cam.LayerMask = *c.LayerMask
		}
		cams = append(cams, cam)
	}
	return cams, nil
}

// loadScene adds the scene in data to gpu.
// The format is chosen by the file extension.
func loadScene(gpu *soft.GPU, path string, data []byte) (int, []driver.Camera, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gltf", ".glb":
		doc, err := gltf.Decode(bytes.NewReader(data))
		if err != nil {
			return 0, nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		n, cs, err := gpu.ImportGLTF(doc)
		if err != nil {
			return 0, nil, err
		}
		if len(cs) == 0 {
			return 0, nil, fmt.Errorf("scene has no cameras")
		}
		cams := make([]driver.Camera, len(cs))
		for i, c := range cs {
			cams[i] = c
		}
		return n, cams, nil
	default:
		n, err := gpu.LoadScene(data)
		if err != nil {
			return 0, nil, err
		}
		cams, err := loadCameras(data)
		return n, cams, err
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("rpdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		drvName = fs.String("driver", "soft", "driver name")
		cfgPath = fs.String("config", "", "TOML configuration file")
		scene   = fs.String("scene", "", "scene file (YAML, glTF or GLB)")
		frames  = fs.Int("frames", 1, "number of frames to render")
		verbose = fs.Bool("v", false, "enable debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *scene == "" {
		return fmt.Errorf("missing -scene")
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	rp.SetLogger(logger)
	defer rp.SetLogger(nil)

	cfg := rp.DefaultConfig()
	if *cfgPath != "" {
		var err error
		if cfg, err = rp.LoadConfig(*cfgPath); err != nil {
			return err
		}
	}

	host, err := rp.OpenDriver(*drvName)
	if err != nil {
		return err
	}
	defer host.Driver().Close()
	gpu, ok := host.(*soft.GPU)
	if !ok {
		return fmt.Errorf("driver %q cannot load scene files", host.Driver().Name())
	}
	data, err := os.ReadFile(*scene)
	if err != nil {
		return err
	}
	n, cams, err := loadScene(gpu, *scene, data)
	if err != nil {
		return err
	}
	logger.Info("scene loaded", "objects", n, "cameras", len(cams))

	pl, err := rp.NewPipeline(host, &cfg)
	if err != nil {
		return err
	}
	rec := gpu.Recorder()
	for i := range *frames {
		start := len(rec.Frames())
		if err := pl.RenderFrame(cams...); err != nil {
			logger.Warn("frame rendered with errors", "frame", i, "err", err)
		}
		for _, f := range rec.Frames()[start:] {
			logSubmission(logger, i, &f)
		}
	}
	return nil
}

func logSubmission(logger *slog.Logger, frame int, f *soft.Frame) {
	var cam string
	for _, ev := range f.Events {
		if ev.Kind == soft.EvSetupCamera {
			cam = ev.Camera
			break
		}
	}
	attrs := []any{"frame", frame, "id", f.ID, "camera", cam}
	for i, d := range f.Draws() {
		attrs = append(attrs, fmt.Sprintf("pass%d", i), len(d.Objects))
	}
	logger.Info("submitted", attrs...)
}
