package components

import (
	"math"
	"testing"

	"github.com/gonewx/invaders/pkg/utils"
)

func TestFormationPointAt(t *testing.T) {
	f := Formation{
		Pivot:  utils.Vec2{X: 10, Y: 20},
		Radius: utils.Vec2{X: 100, Y: 50},
	}

	tests := []struct {
		angle float64
		want  utils.Vec2
	}{
		{0, utils.Vec2{X: 110, Y: 20}},
		{math.Pi / 2, utils.Vec2{X: 10, Y: 70}},
		{math.Pi, utils.Vec2{X: -90, Y: 20}},
	}
	for _, tt := range tests {
		if got := f.PointAt(tt.angle); !got.ApproxEqual(tt.want, 1e-9) {
			t.Errorf("PointAt(%v) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

// TestOrbitalMotionOwnsCopy 每个敌人持有独立的编队副本
func TestOrbitalMotionOwnsCopy(t *testing.T) {
	template := Formation{Angle: 1.0, Speed: 500}

	a := NewOrbitalMotion(template)
	b := NewOrbitalMotion(template)
	a.Formation.Angle += 0.5

	if b.Formation.Angle != 1.0 {
		t.Errorf("advancing one copy changed another: %v", b.Formation.Angle)
	}
	if template.Angle != 1.0 {
		t.Errorf("advancing a copy changed the template: %v", template.Angle)
	}
	if !b.Formation.SameOrbit(template) {
		t.Error("untouched copy should match the template")
	}
	if a.Formation.SameOrbit(template) {
		t.Error("advanced copy should no longer match the template angle")
	}
}
