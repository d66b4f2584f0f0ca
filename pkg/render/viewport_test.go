package render

import (
	"testing"

	"github.com/rastalab/rasta/pkg/math3d"
)

func TestNewViewportStateBox(t *testing.T) {
	vp := newViewportState(2, 3, 10, 8)
	if vp.minX != 2 || vp.minY != 3 || vp.maxX != 11 || vp.maxY != 10 {
		t.Fatalf("box = [%d,%d,%d,%d], want [2,3,11,10]", vp.minX, vp.minY, vp.maxX, vp.maxY)
	}
	wantScale := math3d.V3(5, -4, 0.5)
	wantBias := math3d.V3(7, 7, 0.5)
	if vp.scale != wantScale {
		t.Fatalf("scale = %+v, want %+v", vp.scale, wantScale)
	}
	if vp.bias != wantBias {
		t.Fatalf("bias = %+v, want %+v", vp.bias, wantBias)
	}
}

func TestNewViewportStatePanicsOnNonPositiveDimensions(t *testing.T) {
	cases := []struct{ w, h int }{{0, 4}, {4, 0}, {-1, 4}, {4, -1}}
	for _, tc := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("newViewportState(_, _, %d, %d) did not panic", tc.w, tc.h)
				}
			}()
			newViewportState(0, 0, tc.w, tc.h)
		}()
	}
}
