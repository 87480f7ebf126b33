//go:build !ebiten

package app

import "torus-life/internal/core"

// Run reports ErrHeadless; rebuild with -tags ebiten for the window.
func Run(core.Sim, *Config) error {
	return ErrHeadless
}
