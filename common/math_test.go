package common

import (
	"math"
	"testing"
)

func TestMoveToward(t *testing.T) {
	cases := []struct {
		name     string
		from     Vec2
		to       Vec2
		maxDelta float64
		want     Vec2
	}{
		{"reaches_target_when_close", Vec2{X: 1}, Vec2{X: 2}, 5, Vec2{X: 2}},
		{"advances_along_x", Vec2{}, Vec2{X: 10}, 4, Vec2{X: 4}},
		{"advances_along_y", Vec2{}, Vec2{Y: -10}, 4, Vec2{Y: -4}},
		{"zero_distance", Vec2{X: 3, Y: 3}, Vec2{X: 3, Y: 3}, 1, Vec2{X: 3, Y: 3}},
		{"zero_delta_stays", Vec2{X: 1, Y: 1}, Vec2{X: 5, Y: 5}, 0, Vec2{X: 1, Y: 1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := MoveToward(c.from, c.to, c.maxDelta)
			if math.Abs(got.X-c.want.X) > 1e-9 || math.Abs(got.Y-c.want.Y) > 1e-9 {
				t.Fatalf("MoveToward(%v, %v, %v) = %v, want %v", c.from, c.to, c.maxDelta, got, c.want)
			}
		})
	}
}

func TestMoveTowardNeverOvershoots(t *testing.T) {
	from := Vec2{}
	to := Vec2{X: 80}
	for i := 0; i < 1000; i++ {
		from = MoveToward(from, to, 500.0/60.0)
		if from.X > to.X {
			t.Fatalf("overshot target on step %d: %v", i, from)
		}
	}
	if from.X != to.X {
		t.Fatalf("never reached target: %v", from)
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"zero_stays_zero", Vec2{}, Vec2{}},
		{"unit_x", Vec2{X: 5}, Vec2{X: 1}},
		{"diagonal", Vec2{X: 3, Y: 4}, Vec2{X: 0.6, Y: 0.8}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.in.Normalize()
			if math.Abs(got.X-c.want.X) > 1e-9 || math.Abs(got.Y-c.want.Y) > 1e-9 {
				t.Fatalf("Normalize(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); got != 5 {
		t.Fatalf("Lerp(0, 10, 0.5) = %v, want 5", got)
	}
	if got := Lerp(2, 2, 0.9); got != 2 {
		t.Fatalf("Lerp(2, 2, 0.9) = %v, want 2", got)
	}
}
