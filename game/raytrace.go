package game

import (
	"iter"

	"github.com/chewxy/math32"
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// BlocksBetween yields the positions of the blocks a ray from start to end passes through, starting
// with the block containing start.
func BlocksBetween(start, end mgl32.Vec3) iter.Seq[df_cube.Pos] {
	return func(yield func(df_cube.Pos) bool) {
		delta := end.Sub(start)
		length := delta.Len()
		if length <= 0 {
			return
		}
		dir := delta.Mul(1 / length)

		var (
			pos          df_cube.Pos
			step         [3]int
			tMax, tDelta [3]float32
		)
		for i := 0; i < 3; i++ {
			pos[i] = int(math32.Floor(start[i]))
			switch {
			case dir[i] > 0:
				step[i] = 1
				tMax[i] = (float32(pos[i]+1) - start[i]) / dir[i]
				tDelta[i] = 1 / dir[i]
			case dir[i] < 0:
				step[i] = -1
				tMax[i] = (start[i] - float32(pos[i])) / -dir[i]
				tDelta[i] = 1 / -dir[i]
			default:
				tMax[i] = math32.MaxFloat32
				tDelta[i] = math32.MaxFloat32
			}
		}

		for {
			if !yield(pos) {
				return
			}
			axis := 0
			if tMax[1] < tMax[axis] {
				axis = 1
			}
			if tMax[2] < tMax[axis] {
				axis = 2
			}
			if tMax[axis] > length {
				return
			}
			pos[axis] += step[axis]
			tMax[axis] += tDelta[axis]
		}
	}
}
