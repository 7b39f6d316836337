package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorAngle(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want float64
	}{
		{name: "up", v: Vector{DX: 0, DY: -10}, want: 0},
		{name: "right", v: Vector{DX: 10, DY: 0}, want: 90},
		{name: "down", v: Vector{DX: 0, DY: 10}, want: 180},
		{name: "left", v: Vector{DX: -10, DY: 0}, want: 270},
		{name: "up-right diagonal", v: Vector{DX: 5, DY: -5}, want: 45},
		{name: "up-left diagonal", v: Vector{DX: -5, DY: -5}, want: 315},
		{name: "zero vector", v: Vector{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.v.Angle(), 1e-9)
		})
	}
}

func TestVectorFromAngle_RoundTrip(t *testing.T) {
	for _, deg := range []float64{0, 5, 20, 45, 90, 135, 180, 270, 359} {
		v := VectorFromAngle(deg, 10)
		assert.InDelta(t, 10, v.Len(), 1e-9)
		assert.InDelta(t, 0, AngleDelta(deg, v.Angle()), 1e-9, "angle %v", deg)
	}
}

func TestAngleDelta(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{0, 0, 0},
		{0, 25, 25},
		{350, 10, 20},
		{10, 350, 20},
		{0, 180, 180},
		{-30, 30, 60},
		{720, 90, 90},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, AngleDelta(tt.a, tt.b), 1e-9, "delta(%v, %v)", tt.a, tt.b)
	}
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0, NormalizeAngle(360), 1e-9)
	assert.InDelta(t, 270, NormalizeAngle(-90), 1e-9)
	assert.InDelta(t, 10, NormalizeAngle(370), 1e-9)
}

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 10}

	assert.Equal(t, Point{X: 25, Y: 25}, r.Center())
	assert.True(t, r.Contains(Point{X: 10, Y: 20}))
	assert.True(t, r.Contains(Point{X: 40, Y: 30}))
	assert.False(t, r.Contains(Point{X: 41, Y: 25}))
}

func TestPointSubAdd(t *testing.T) {
	p := Point{X: 3, Y: 4}
	q := Point{X: 0, Y: 0}

	v := p.Sub(q)
	assert.Equal(t, Vector{DX: 3, DY: 4}, v)
	assert.InDelta(t, 5, v.Len(), 1e-9)
	assert.Equal(t, p, q.Add(v))
}
