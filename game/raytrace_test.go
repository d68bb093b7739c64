package game

import (
	"slices"
	"testing"

	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
)

func TestBlocksBetween(t *testing.T) {
	tests := []struct {
		name       string
		start, end mgl32.Vec3
		want       []df_cube.Pos
	}{
		{
			name:  "along x",
			start: mgl32.Vec3{0.5, 0.5, 0.5},
			end:   mgl32.Vec3{3.5, 0.5, 0.5},
			want:  []df_cube.Pos{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}},
		},
		{
			name:  "negative z",
			start: mgl32.Vec3{0.5, 64.5, 0.5},
			end:   mgl32.Vec3{0.5, 64.5, -1.5},
			want:  []df_cube.Pos{{0, 64, 0}, {0, 64, -1}, {0, 64, -2}},
		},
		{
			name:  "zero length",
			start: mgl32.Vec3{1, 1, 1},
			end:   mgl32.Vec3{1, 1, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(BlocksBetween(tt.start, tt.end))
			if !slices.Equal(got, tt.want) {
				t.Errorf("BlocksBetween() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirectionVector(t *testing.T) {
	tests := []struct {
		yaw, pitch float32
		want       mgl32.Vec3
	}{
		{0, 0, mgl32.Vec3{0, 0, 1}},
		{90, 0, mgl32.Vec3{-1, 0, 0}},
		{180, 0, mgl32.Vec3{0, 0, -1}},
		{0, 90, mgl32.Vec3{0, -1, 0}},
	}
	for _, tt := range tests {
		got := DirectionVector(tt.yaw, tt.pitch)
		if got.Sub(tt.want).Len() > 1e-5 {
			t.Errorf("DirectionVector(%v, %v) = %v, want %v", tt.yaw, tt.pitch, got, tt.want)
		}
	}
}

func TestDFBoxToCubeBox(t *testing.T) {
	b := DFBoxToCubeBox(df_cube.Box(0.12, 0, 0.12, 0.88, 1.51, 0.88))
	if b.Min() != (mgl32.Vec3{0.12, 0, 0.12}) || b.Max() != (mgl32.Vec3{0.88, 1.51, 0.88}) {
		t.Errorf("DFBoxToCubeBox() = %v", b)
	}
}
