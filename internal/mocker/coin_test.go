// ABOUTME: Tests for coin implementations
// ABOUTME: Seeded coins are reproducible; bounds never consume entropy

package mocker

import "testing"

func TestSeededCoin_Reproducible(t *testing.T) {
	t.Parallel()

	a := NewSeededCoin(42)
	b := NewSeededCoin(42)
	for i := range 200 {
		if a.Flip(0.5) != b.Flip(0.5) {
			t.Fatalf("flip %d diverged for identical seeds", i)
		}
	}
}

func TestSeededCoin_Bounds(t *testing.T) {
	t.Parallel()

	c := NewSeededCoin(7)
	for range 100 {
		if c.Flip(0) {
			t.Fatal("Flip(0) returned true")
		}
		if !c.Flip(1) {
			t.Fatal("Flip(1) returned false")
		}
	}
}

func TestGlobalCoin_Bounds(t *testing.T) {
	t.Parallel()

	for range 100 {
		if GlobalCoin.Flip(0) {
			t.Fatal("Flip(0) returned true")
		}
		if !GlobalCoin.Flip(1) {
			t.Fatal("Flip(1) returned false")
		}
	}
}

func TestGlobalCoin_Mixes(t *testing.T) {
	t.Parallel()

	var heads int
	const n = 2000
	for range n {
		if GlobalCoin.Flip(0.5) {
			heads++
		}
	}
	if heads == 0 || heads == n {
		t.Errorf("Flip(0.5) gave %d heads out of %d", heads, n)
	}
}
