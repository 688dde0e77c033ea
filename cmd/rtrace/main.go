package main

import (
	"flag"
	"fmt"
	"os"

	"raytracer/pixelsink"
	"raytracer/rtlog"
	"raytracer/scenefile"
	"raytracer/tracer"
)

func main() {
	scenePath := flag.String("scene", "scene.yaml", "scene description file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := rtlog.NewDefault("rtrace", *debug)

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

	cfg := tracer.Config{
		TraceDepth:        sf.TraceDepth,
		RegularSampleSize: sf.SampleSize,
		RenderBudget:      sf.RenderBudget(),
	}
	e := tracer.NewEngineWithConfig(sc, log, cfg)

	sink := pixelsink.NewPNGSink(sf.Width, sf.Height, sf.Output)
	e.SetRenderTarget(sf.Width, sf.Height, sink)
	e.InitEngine(sf.EyeVec(), sf.TargetVec())

	log.Infof("rendering %dx%d -> %s", sf.Width, sf.Height, sf.Output)
	for !e.Render() {
		// Render is cooperative (spec §5): it returns after its time slice
		// and expects to be called again until it reports done. A headless
		// run has no other work to interleave, so just keep calling it.
	}

	if err := sink.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log.Infof("wrote %s", sf.Output)
}
