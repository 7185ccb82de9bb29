package convert

import (
	"math"
	"testing"
)

func TestMapProgress_FlooredAtTen(t *testing.T) {
	mapped, _ := MapProgress(0)
	if mapped != 10 {
		t.Fatalf("expected floor of 10 at raw=0, got %.2f", mapped)
	}
}

func TestMapProgress_LowRange(t *testing.T) {
	mapped, _ := MapProgress(9.99)
	if math.Abs(mapped-29.98) > 1e-9 {
		t.Fatalf("expected 29.98 at raw=9.99, got %.4f", mapped)
	}
}

func TestMapProgress_ContinuousAtBreakpoints(t *testing.T) {
	if mapped, _ := MapProgress(10); mapped != 30 {
		t.Fatalf("expected 30 at raw=10, got %.2f", mapped)
	}
	if mapped, _ := MapProgress(50); mapped != 70 {
		t.Fatalf("expected 70 at raw=50, got %.2f", mapped)
	}
}

func TestMapProgress_MidRange(t *testing.T) {
	mapped, msg := MapProgress(30)
	if mapped != 50 {
		t.Fatalf("expected 50 at raw=30, got %.2f", mapped)
	}
	if msg != "Converting video... 50%" {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestMapProgress_CappedAtNinety(t *testing.T) {
	if mapped, _ := MapProgress(90); mapped != 90 {
		t.Fatalf("expected cap of 90 at raw=90, got %.2f", mapped)
	}
	if mapped, _ := MapProgress(100); mapped != 90 {
		t.Fatalf("expected cap of 90 at raw=100, got %.2f", mapped)
	}
}
