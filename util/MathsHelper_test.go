package util

import (
	"math"
	"testing"
)

func TestMax(t *testing.T) {
	if Max(1, 2, 3) != 3 {
		t.Error("Max(1,2,3) should be 3")
	}
	if Max(3, 2, 1) != 3 {
		t.Error("Max(3,2,1) should be 3")
	}
	if Max(-1, -2, -3) != -1 {
		t.Error("Max(-1,-2,-3) should be -1")
	}
	if Max(1.5, 2.5, 0.5) != 2.5 {
		t.Error("Max(1.5,2.5,0.5) should be 2.5")
	}
}

func TestMaxEmpty(t *testing.T) {
	result := Max[float64]()
	if result != 0 {
		t.Errorf("Max() should return zero value, got %f", result)
	}
}

func TestMaxNaN(t *testing.T) {
	nan := math.NaN()
	if !math.IsNaN(Max(nan, 1.0, 2.0)) {
		t.Error("Max with NaN first should return NaN")
	}
	if !math.IsNaN(Max(1.0, nan, 2.0)) {
		t.Error("Max with NaN in middle should return NaN")
	}
}

func TestMin(t *testing.T) {
	if Min(1, 2, 3) != 1 {
		t.Error("Min(1,2,3) should be 1")
	}
	if Min(-1, -2, -3) != -3 {
		t.Error("Min(-1,-2,-3) should be -3")
	}
	if Min(math.Inf(1), 4.0) != 4.0 {
		t.Error("Min(+Inf,4) should be 4")
	}
}

func TestMinNaN(t *testing.T) {
	nan := math.NaN()
	if !math.IsNaN(Min(1.0, nan)) {
		t.Error("Min with NaN should return NaN")
	}
}

func TestAbs(t *testing.T) {
	if Abs(int32(-5)) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0.0) != 0 {
		t.Error("Abs(0) should be 0")
	}
	if Abs(-2.5) != 2.5 {
		t.Error("Abs(-2.5) should be 2.5")
	}
}

func TestAlmostEqual(t *testing.T) {
	tests := []struct {
		a, b, eps float64
		expected  bool
	}{
		{1.0, 1.0, 0, true},
		{1.0, 1.0 + 1e-12, 1e-9, true},
		{1.0, 1.1, 1e-9, false},
		{-3.0, -3.0000001, 1e-6, true},
		{math.Inf(1), math.Inf(1), 1e-9, true},
		{math.Inf(1), math.Inf(-1), 1e-9, false},
		{math.NaN(), math.NaN(), 1e-9, false},
	}

	for _, tt := range tests {
		result := AlmostEqual(tt.a, tt.b, tt.eps)
		if result != tt.expected {
			t.Errorf("AlmostEqual(%f, %f, %g) = %v; want %v", tt.a, tt.b, tt.eps, result, tt.expected)
		}
	}
}

func TestClamp3NaN(t *testing.T) {
	nan := math.NaN()
	if !math.IsNaN(Clamp3(5, nan, 10)) {
		t.Error("Clamp3 with NaN lower bound should return NaN")
	}
	if !math.IsNaN(Clamp3(5, 0, nan)) {
		t.Error("Clamp3 with NaN upper bound should return NaN")
	}
	if !math.IsNaN(Clamp3(nan, 0, 10)) {
		t.Error("Clamp3 of NaN should return NaN")
	}
}

func TestClamp3(t *testing.T) {
	tests := []struct {
		v, a, b  float64
		expected float64
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{5, 10, 0, 5},
		{-5, 10, 0, 0},
		{15, 10, 0, 10},
	}

	for _, tt := range tests {
		result := Clamp3(tt.v, tt.a, tt.b)
		if result != tt.expected {
			t.Errorf("Clamp3(%f, %f, %f) = %f; want %f", tt.v, tt.a, tt.b, result, tt.expected)
		}
	}
}
