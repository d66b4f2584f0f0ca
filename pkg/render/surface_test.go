package render

import "testing"

func TestNewSurfacePanicsOnNonPositiveDimensions(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 4},
		{"zero height", 4, 0},
		{"negative width", -1, 4},
		{"negative height", 4, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("NewSurface(%d, %d) did not panic", tc.width, tc.height)
				}
			}()
			NewSurface[float32](tc.width, tc.height)
		})
	}
}

func TestSurfaceGetSet(t *testing.T) {
	s := NewSurface[int](4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("got %dx%d, want 4x3", s.Width(), s.Height())
	}
	s.Set(2, 1, 42)
	if got := s.Get(2, 1); got != 42 {
		t.Fatalf("Get(2,1) = %d, want 42", got)
	}
	if got := s.Get(0, 0); got != 0 {
		t.Fatalf("Get(0,0) = %d, want zero value", got)
	}
}

func TestSurfaceClearIdempotence(t *testing.T) {
	s := NewSurface[float32](4, 4)
	s.Set(1, 1, 9)
	s.Clear(3)
	once := append([]float32(nil), s.Pixels()...)
	s.Clear(3)
	twice := s.Pixels()

	if len(once) != len(twice) {
		t.Fatalf("length changed across repeated clear")
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("pixel %d differs after second clear: %v vs %v", i, once[i], twice[i])
		}
		if once[i] != 3 {
			t.Fatalf("pixel %d = %v, want 3", i, once[i])
		}
	}
}

func TestSurfacePixelsReflectsStorage(t *testing.T) {
	s := NewSurface[int](2, 2)
	s.Set(0, 0, 1)
	s.Set(1, 0, 2)
	s.Set(0, 1, 3)
	s.Set(1, 1, 4)
	want := []int{1, 2, 3, 4}
	got := s.Pixels()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Pixels()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
