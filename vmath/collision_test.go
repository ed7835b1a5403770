package vmath

import "testing"

func TestBoxOverlapStrict(t *testing.T) {
	a := BoxAt(Vec3F{0, 0, 0}, 1, 2, 1)
	tests := []struct {
		name string
		b    AABB
		want bool
	}{
		{"same", BoxAt(Vec3F{0, 0, 0}, 1, 2, 1), true},
		{"touching x", BoxAt(Vec3F{1, 0, 0}, 1, 2, 1), false},
		{"above", BoxAt(Vec3F{0, 2, 0}, 1, 2, 1), false},
		{"partial z", BoxAt(Vec3F{0, 0, 0.9}, 1, 2, 1), true},
		{"far lane", BoxAt(Vec3F{3, 0, 0}, 2.4, 1.5, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("Overlaps() not symmetric: got %v", got)
			}
		})
	}
}

func TestSphereOverlapsBox(t *testing.T) {
	box := BoxAt(Vec3F{0, 0, 0}, 1, 2, 1)

	if !(Sphere{Center: Vec3F{0, 1, 0}, Radius: 0.5}).OverlapsBox(box) {
		t.Error("sphere inside box should overlap")
	}
	if !(Sphere{Center: Vec3F{0, 1, 0.8}, Radius: 0.5}).OverlapsBox(box) {
		t.Error("sphere grazing front face should overlap")
	}
	if (Sphere{Center: Vec3F{0, 1, 1.0}, Radius: 0.5}).OverlapsBox(box) {
		t.Error("sphere touching front face should not overlap")
	}
	if (Sphere{Center: Vec3F{3, 1, 0}, Radius: 0.5}).OverlapsBox(box) {
		t.Error("sphere in another lane should not overlap")
	}
}

func TestEasingEndpoints(t *testing.T) {
	for _, fn := range []func(float64) float64{OutSine, InSine} {
		if got := fn(0); !ApproxEqual(got, 0, 1e-12) {
			t.Errorf("ease(0) = %f, want 0", got)
		}
		if got := fn(1); !ApproxEqual(got, 1, 1e-12) {
			t.Errorf("ease(1) = %f, want 1", got)
		}
	}
	if OutSine(0.5) <= InSine(0.5) {
		t.Error("OutSine should lead InSine at the midpoint")
	}
}

func TestLerpClampsFactor(t *testing.T) {
	if got := Lerp(0, 10, 2); got != 10 {
		t.Errorf("Lerp overshoot: got %f", got)
	}
	if got := Lerp(0, 10, -1); got != 0 {
		t.Errorf("Lerp undershoot: got %f", got)
	}
}

func TestFastRandFloat64Range(t *testing.T) {
	r := NewFastRand(42)
	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %f", f)
		}
		u := r.Uniform(0.8, 1.5)
		if u < 0.8 || u >= 1.5 {
			t.Fatalf("Uniform out of range: %f", u)
		}
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a, b := NewFastRand(7), NewFastRand(7)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatal("same seed produced different sequences")
		}
	}
}
