package core

import (
	"strings"
	"testing"
)

func TestBuildUnknownSim(t *testing.T) {
	_, err := Build("no-such-sim", nil)
	if err == nil {
		t.Fatal("expected an error for an unregistered sim")
	}
	if !strings.Contains(err.Error(), "no-such-sim") {
		t.Fatalf("error should name the sim, got %q", err)
	}
}

func TestParameterControlClamp(t *testing.T) {
	ctrl := ParameterControl{Min: 0, Max: 1, HasMin: true, HasMax: true}
	if got := ctrl.Clamp(1.5); got != 1 {
		t.Fatalf("expected clamp to 1, got %f", got)
	}
	if got := ctrl.Clamp(-0.5); got != 0 {
		t.Fatalf("expected clamp to 0, got %f", got)
	}
	open := ParameterControl{}
	if got := open.Clamp(42); got != 42 {
		t.Fatalf("unbounded control should not clamp, got %f", got)
	}
}
