package blockmodel

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
)

// Speaker is the model of a speaker. Size is the metadata of the speaker's size.
type Speaker struct {
	Size int32
}

// BBox returns the hitbox of the speaker. Sizes without a hitbox of their own fall back to a full block.
func (s Speaker) BBox(pos cube.Pos, bs world.BlockSource) []cube.BBox {
	return []cube.BBox{SpeakerBox(s.Size)}
}

// FaceSolid ...
func (s Speaker) FaceSolid(pos cube.Pos, face cube.Face, bs world.BlockSource) bool {
	return false
}

// SpeakerBox returns the hitbox of a speaker with the size passed, relative to the block position.
func SpeakerBox(size int32) cube.BBox {
	switch size {
	case 0:
		return cube.Box(0.26, 0.05, 0.25, 0.75, 0.65, 0.74)
	case 1:
		return cube.Box(0.2, 0, 0.2, 0.8, 0.88, 0.8)
	case 2:
		return cube.Box(0.12, 0, 0.12, 0.88, 1.51, 0.88)
	}
	return FullBox
}

// FullBox is the hitbox of a full block.
var FullBox = cube.Box(0, 0, 0, 1, 1, 1)
