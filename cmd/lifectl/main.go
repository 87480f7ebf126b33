package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"

	"torus-life/internal/app"
	"torus-life/internal/core"
	_ "torus-life/internal/life"
	"torus-life/internal/patterns"
	"torus-life/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 100, "generations to simulate")
	every := flag.Int("every", 0, "print status every n generations (0 prints only the final status)")
	pngPath := flag.String("png", "", "write the final frame to this PNG file")
	list := flag.Bool("list", false, "list presets and patterns, then exit")
	flag.Parse()

	if *list {
		printCatalog()
		return
	}

	if err := cfg.Resolve(flag.CommandLine); err != nil {
		log.Fatalf("config: %+v", err)
	}

	sim, err := core.Build(cfg.Sim, cfg.SimOverrides())
	if err != nil {
		log.Fatalf("%v", err)
	}

	log.Printf("%s seed=%d size=%dx%d", sim.Name(), sim.Seed(), sim.Size().W, sim.Size().H)
	for i := 1; i <= *steps; i++ {
		sim.Step()
		if *every > 0 && i%*every == 0 {
			log.Print(sim.Status())
		}
	}
	log.Print(sim.Status())

	if *pngPath != "" {
		sim.Render()
		if err := writePNG(*pngPath, sim); err != nil {
			log.Fatalf("%+v", err)
		}
		log.Printf("wrote %s", *pngPath)
	}
}

func writePNG(path string, sim core.Sim) error {
	size := sim.Size()
	cs := sim.CellSize()
	img := image.NewRGBA(image.Rect(0, 0, size.W*cs, size.H*cs))
	render.ToRGBA(img.Pix, sim.Pixels())

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}

func printCatalog() {
	fmt.Println("presets:", strings.Join(core.SimNames(), ", "))
	for _, name := range patterns.Names() {
		p, _ := patterns.Lookup(name)
		w, h := p.Bounds()
		fmt.Printf("  %-18s %-11s %2dx%-2d %d cells\n", p.Name, p.Category, w, h, p.Len())
	}
}
