package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 64; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d differs for identical seeds: %d vs %d", i, x, y)
		}
	}
}

func TestRNGChanceBounds(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 32; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) must never fire")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) must always fire")
		}
	}
	if r.IntN(0) != 0 || r.IntN(-3) != 0 {
		t.Fatal("IntN with non-positive n should return 0")
	}
}
