package fixed

import (
	"math"
	"testing"
)

func TestFromFloatRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		f    float64
	}{
		{"zero", 0},
		{"one", 1},
		{"negative one", -1},
		{"small positive", 0.125},
		{"small negative", -0.125},
		{"half pixel", 0.5},
		{"large", 1000.75},
		{"large negative", -1000.75},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := FromFloat(tc.f)
			got := s.Float()
			if math.Abs(got-tc.f) > 1.0/float64(One) {
				t.Errorf("FromFloat(%v).Float() = %v, want within %v", tc.f, got, 1.0/float64(One))
			}
		})
	}
}

func TestFromFloatRoundsTiesAwayFromZero(t *testing.T) {
	// 0.5/256 rounds to 1/256 away from zero in both directions.
	half := 0.5 / float64(One)
	if got := FromFloat(half); got != 1 {
		t.Errorf("FromFloat(%v) = %v, want 1", half, got)
	}
	if got := FromFloat(-half); got != -1 {
		t.Errorf("FromFloat(%v) = %v, want -1", -half, got)
	}
}

func TestFromInt(t *testing.T) {
	if got := FromInt(5); got.Float() != 5 {
		t.Errorf("FromInt(5).Float() = %v, want 5", got.Float())
	}
	if got := FromInt(-3); got.Float() != -3 {
		t.Errorf("FromInt(-3).Float() = %v, want -3", got.Float())
	}
}

func TestMulRounding(t *testing.T) {
	tests := []struct {
		a, b float64
	}{
		{2.5, 4.0},
		{0.1, 0.2},
		{-1.5, 3.0},
		{1.0 / 3, 3.0},
		{123.456, 0.0625},
	}

	for _, tc := range tests {
		a := FromFloat(tc.a)
		b := FromFloat(tc.b)
		got := a.Mul(b).Float()
		want := tc.a * tc.b
		if math.Abs(got-want) > 2.0/float64(One) {
			t.Errorf("FromFloat(%v).Mul(FromFloat(%v)) = %v, want ~%v", tc.a, tc.b, got, want)
		}
	}
}

func TestDivRounding(t *testing.T) {
	tests := []struct {
		a, b float64
	}{
		{1, 2},
		{10, 4},
		{-10, 4},
		{10, -4},
		{1, 3},
	}

	for _, tc := range tests {
		a := FromFloat(tc.a)
		b := FromFloat(tc.b)
		got := a.Div(b).Float()
		want := tc.a / tc.b
		if math.Abs(got-want) > 2.0/float64(One) {
			t.Errorf("FromFloat(%v).Div(FromFloat(%v)) = %v, want ~%v", tc.a, tc.b, got, want)
		}
	}
}

func TestAddSub(t *testing.T) {
	a := FromFloat(1.5)
	b := FromFloat(0.25)
	if got := a.Add(b).Float(); got != 1.75 {
		t.Errorf("Add = %v, want 1.75", got)
	}
	if got := a.Sub(b).Float(); got != 1.25 {
		t.Errorf("Sub = %v, want 1.25", got)
	}
}

func TestIncDec(t *testing.T) {
	a := FromFloat(1.5)
	if got := a.Inc().Float(); got != 2.5 {
		t.Errorf("Inc = %v, want 2.5", got)
	}
	if got := a.Dec().Float(); got != 0.5 {
		t.Errorf("Dec = %v, want 0.5", got)
	}
}

func TestOrdering(t *testing.T) {
	a := FromFloat(1.0)
	b := FromFloat(2.0)

	if !a.Less(b) {
		t.Error("1.0 should be less than 2.0")
	}
	if b.Less(a) {
		t.Error("2.0 should not be less than 1.0")
	}
	if a.Cmp(a) != 0 {
		t.Error("a.Cmp(a) should be 0")
	}
	if a.Cmp(b) != -1 {
		t.Error("a.Cmp(b) should be -1")
	}
	if b.Cmp(a) != 1 {
		t.Error("b.Cmp(a) should be 1")
	}
}

func TestEpsilon(t *testing.T) {
	a := FromFloat(1.0)
	if a.Add(Epsilon).Float() <= a.Float() {
		t.Error("adding Epsilon should strictly increase the value")
	}
}

func TestFloorCeil(t *testing.T) {
	tests := []struct {
		f          float64
		floor, ceil int
	}{
		{2.0, 2, 2},
		{2.5, 2, 3},
		{-2.5, -3, -2},
		{0.01, 0, 1},
	}
	for _, tc := range tests {
		s := FromFloat(tc.f)
		if got := s.Floor(); got != tc.floor {
			t.Errorf("FromFloat(%v).Floor() = %v, want %v", tc.f, got, tc.floor)
		}
		if got := s.Ceil(); got != tc.ceil {
			t.Errorf("FromFloat(%v).Ceil() = %v, want %v", tc.f, got, tc.ceil)
		}
	}
}

func TestFromFloatCheckedRejectsNonFinite(t *testing.T) {
	if _, ok := FromFloatChecked(math.NaN()); ok {
		t.Error("NaN should be rejected")
	}
	if _, ok := FromFloatChecked(math.Inf(1)); ok {
		t.Error("+Inf should be rejected")
	}
	if _, ok := FromFloatChecked(math.Inf(-1)); ok {
		t.Error("-Inf should be rejected")
	}
	if _, ok := FromFloatChecked(10.0); !ok {
		t.Error("10.0 should be accepted")
	}
}
