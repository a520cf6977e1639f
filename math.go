package main

import (
	"image"
	"math"

	"golang.org/x/exp/constraints"
)

// =================================
// FPoint
// =================================

type FPoint struct {
	X, Y float64
}

func FPt(x, y float64) FPoint {
	return FPoint{X: x, Y: y}
}

func (p FPoint) Add(q FPoint) FPoint {
	p.X += q.X
	p.Y += q.Y
	return p
}

func (p FPoint) Sub(q FPoint) FPoint {
	p.X -= q.X
	p.Y -= q.Y
	return p
}

func (p FPoint) Mul(q FPoint) FPoint {
	p.X *= q.X
	p.Y *= q.Y
	return p
}

func (p FPoint) Scale(s float64) FPoint {
	p.X *= s
	p.Y *= s
	return p
}

func (p FPoint) Dot(q FPoint) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p FPoint) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func (p FPoint) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

func (p FPoint) Floor() FPoint {
	return FPoint{X: math.Floor(p.X), Y: math.Floor(p.Y)}
}

func (p FPoint) Fract() FPoint {
	return FPoint{X: p.X - math.Floor(p.X), Y: p.Y - math.Floor(p.Y)}
}

func (p FPoint) Rotate(theta float64) FPoint {
	cos := math.Cos(theta)
	sin := math.Sin(theta)

	return FPoint{
		X: cos*p.X - sin*p.Y,
		Y: sin*p.X + cos*p.Y,
	}
}

func (p FPoint) Eq(q FPoint) bool {
	return p.X == q.X && p.Y == q.Y
}

// =================================
// scalar helpers
// =================================

func f64[N constraints.Integer | constraints.Float](n N) float64 {
	return float64(n)
}

func f32[N constraints.Integer | constraints.Float](n N) float32 {
	return float32(n)
}

func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

func Clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = min(n, maxN)
	n = max(n, minN)

	return n
}

func Fract(v float64) float64 {
	return v - math.Floor(v)
}

// SmoothStep is the usual cubic Hermite ramp.
// Returns 0 below edge0, 1 above edge1.
func SmoothStep(edge0, edge1, v float64) float64 {
	t := Clamp((v-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// Remap maps v from [fromMin, fromMax] to [toMin, toMax], clamped.
func Remap(v, fromMin, fromMax, toMin, toMax float64) float64 {
	t := Clamp((v-fromMin)/(fromMax-fromMin), 0, 1)
	return Lerp(toMin, toMax, t)
}

// =================================
// misc
// =================================

func RectWH(w, h int) image.Rectangle {
	return image.Rectangle{
		Min: image.Point{},
		Max: image.Point{w, h},
	}
}
