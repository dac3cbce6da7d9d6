package util

import (
	"math"
)

// InRect returns true if px,py is within Rect returned by function parameter
func InRect(x, y int, fn func() (int, int, int, int)) bool {
	x0, y0, x1, y1 := fn()
	return x > x0 && y > y0 && x < x1 && y < y1
}

// Lerp see https://en.wikipedia.org/wiki/Linear_interpolation
func Lerp(v0, v1, t float64) float64 {
	if t > 1.0 {
		t = 1.0
	}
	return (1-t)*v0 + t*v1
}

// Normalize is the opposite of lerp. Instead of a range and a factor, we give a range and a value to find out the factor.
func Normalize(start, finish, value float64) float64 {
	return (value - start) / (finish - start)
}

// MapValue converts a value from the scale [fromMin, fromMax] to a value from the scale [toMin, toMax].
// It’s just the normalize and lerp functions working together.
func MapValue(value, fromMin, fromMax, toMin, toMax float64) float64 {
	return Lerp(toMin, toMax, Normalize(fromMin, fromMax, value))
}

// Clamp a value between min and max values
func Clamp(value, _min, _max float64) float64 {
	return math.Min(math.Max(value, _min), _max)
}

// Max returns the largest of it's two int parameters
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smallest of it's two int parameters
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func IndexOf[T comparable](elems []T, v T) int {
	for i, s := range elems {
		if v == s {
			return i
		}
	}
	return -1
}

func Contains[T comparable](elems []T, v T) bool {
	return IndexOf(elems, v) >= 0
}
