package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"raytracer/pixelsink"
	"raytracer/rtlog"
	"raytracer/scenefile"
	"raytracer/tracer"
)

func main() {
	scenePath := flag.String("scene", "scene.yaml", "scene description file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := rtlog.NewDefault("rtview", *debug)

	sf, err := scenefile.Load(*scenePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	sc, err := scenefile.BuildScene(sf, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	win, err := newWindow(sf.Width, sf.Height, "rtview: "+sf.Output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer glfw.Terminate()
	glfw.SwapInterval(1)
	gl.Viewport(0, 0, int32(sf.Width), int32(sf.Height))

	quad, err := newQuadProgram()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg := tracer.Config{
		TraceDepth:        sf.TraceDepth,
		RegularSampleSize: sf.SampleSize,
		RenderBudget:      sf.RenderBudget(),
	}
	e := tracer.NewEngineWithConfig(sc, log, cfg)

	buf := pixelsink.NewBuffer(sf.Width, sf.Height)
	e.SetRenderTarget(sf.Width, sf.Height, buf)
	e.InitEngine(sf.EyeVec(), sf.TargetVec())

	done := false
	for !win.ShouldClose() {
		glfw.PollEvents()
		if win.GetKey(glfw.KeyEscape) == glfw.Press {
			break
		}

		// Spec §5's cooperative contract: one time slice per host tick,
		// so the window stays responsive while a frame is still rendering.
		if !done {
			done = e.Render()
		}

		gl.Clear(gl.COLOR_BUFFER_BIT)
		quad.upload(sf.Width, sf.Height, buf.Pix)
		quad.draw()
		win.SwapBuffers()
	}
}
