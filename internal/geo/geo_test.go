package geo_test

import (
	"math"
	"testing"

	"github.com/noah-isme/backend-pricing/internal/geo"
)

func TestDistanceJakartaBandung(t *testing.T) {
	t.Parallel()

	jakarta := &geo.Point{Lat: -6.2088, Lng: 106.8456}
	bandung := &geo.Point{Lat: -6.9175, Lng: 107.6191}

	got := geo.Distance(jakarta, bandung)
	// Straight-line distance is roughly 116 km.
	if got < 110 || got > 122 {
		t.Fatalf("expected ~116 km, got %f", got)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	t.Parallel()

	a := &geo.Point{Lat: -6.2, Lng: 106.8}
	b := &geo.Point{Lat: -7.8, Lng: 110.4}
	if d1, d2 := geo.Distance(a, b), geo.Distance(b, a); math.Abs(d1-d2) > 1e-9 {
		t.Fatalf("distance not symmetric: %f vs %f", d1, d2)
	}
}

func TestDistanceSamePoint(t *testing.T) {
	t.Parallel()

	p := &geo.Point{Lat: -6.2, Lng: 106.8}
	if d := geo.Distance(p, p); d != 0 {
		t.Fatalf("expected 0, got %f", d)
	}
}

func TestDistanceMissingPoint(t *testing.T) {
	t.Parallel()

	p := &geo.Point{Lat: -6.2, Lng: 106.8}
	if d := geo.Distance(nil, p); d != 0 {
		t.Fatalf("expected 0 for missing origin, got %f", d)
	}
	if d := geo.Distance(p, nil); d != 0 {
		t.Fatalf("expected 0 for missing destination, got %f", d)
	}
}
