// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver_test

import (
	"fmt"
	"log"

	"github.com/gogpu/gputypes"

	"github.com/gviegas/rp/driver"
	"github.com/gviegas/rp/driver/soft"
)

var (
	drv  driver.Driver
	host driver.Host
)

func init() {
	// Select a driver to use.
	drivers := driver.Drivers()
drvLoop:
	for i := range drivers {
		switch drivers[i].Name() {
		case "soft":
			drv = drivers[i]
			break drvLoop
		}
	}
	if drv == nil {
		log.Fatal("driver.Drivers(): driver not found")
	}
	var err error
	host, err = drv.Open()
	if err != nil {
		log.Fatal(err)
	}
	// Ideally, we should call drv.Close somewhere.
}

// Example_clear records a clear command into a command
// buffer, executes it and submits the frame.
func Example_clear() {
	cb := host.NewCmdBuffer("Example")
	cb.BeginSample(cb.Name())
	cb.ClearRenderTarget(driver.ClearValue{
		ColorOp: gputypes.LoadOpClear,
		DepthOp: gputypes.LoadOpClear,
		Color:   gputypes.Color{R: 0.1, G: 0.2, B: 0.3, A: 1},
		Depth:   1,
	})
	cb.EndSample(cb.Name())

	ctx := host.Context()
	ctx.ExecuteCmdBuffer(cb)
	cb.Clear()
	ctx.Submit()

	// Only the soft driver lets us inspect what was submitted.
	rec := host.(*soft.GPU).Recorder()
	f, _ := rec.LastFrame()
	for _, ev := range f.Events {
		fmt.Println(ev.Kind, len(ev.Cmds))
	}
	fmt.Println("buffer length:", cb.Len())
	fmt.Println("open samples:", f.OpenSamples)

	// Output:
	// Execute 3
	// Submit 0
	// buffer length: 0
	// open samples: 0
}

// Example_shaders looks up shaders by name.
func Example_shaders() {
	if _, err := host.FindShader(soft.ErrorShader); err != nil {
		log.Fatal(err)
	}
	_, err := host.FindShader("Missing/Shader")
	fmt.Println(err)

	// Output:
	// driver: shader not found: "Missing/Shader"
}
