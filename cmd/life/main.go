package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"

	"torus-life/internal/app"
	"torus-life/internal/core"
	_ "torus-life/internal/life"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Resolve(flag.CommandLine); err != nil {
		log.Fatalf("config: %+v", err)
	}

	sim, err := core.Build(cfg.Sim, cfg.SimOverrides())
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(sim, cfg); err != nil {
		if errors.Is(err, app.ErrHeadless) {
			fmt.Fprintln(os.Stderr, "no window backend in this build; run: go run -tags ebiten ./cmd/life")
			os.Exit(2)
		}
		log.Fatal(err)
	}
}
