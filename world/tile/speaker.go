package tile

import (
	"slices"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/betterrecords/wire"
	"github.com/oomph-ac/betterrecords/world/block"
)

// Speaker is the tile entity of a speaker block. It remembers which way the speaker faces and
// the wires connected to it.
type Speaker struct {
	// Rotation is the yaw of the entity that placed the speaker.
	Rotation float32
	Size     block.SpeakerSize

	connections []wire.Connection
}

// SetRotation ...
func (s *Speaker) SetRotation(yaw float32) {
	s.Rotation = yaw
}

// SetSize ...
func (s *Speaker) SetSize(size block.SpeakerSize) {
	s.Size = size
}

// Facing returns the horizontal direction the speaker faces.
func (s *Speaker) Facing() cube.Direction {
	return cube.Rotation{float64(s.Rotation), 0}.Direction()
}

// Connections ...
func (s *Speaker) Connections() []wire.Connection {
	return slices.Clone(s.connections)
}

// AddConnection ...
func (s *Speaker) AddConnection(c wire.Connection) {
	if slices.Contains(s.connections, c) {
		return
	}
	s.connections = append(s.connections, c)
}

// TileEntityID ...
func (*Speaker) TileEntityID() string {
	return block.SpeakerTileEntityID
}

// EncodeNBT ...
func (s *Speaker) EncodeNBT() map[string]any {
	conns := make([]map[string]any, 0, len(s.connections))
	for _, c := range s.connections {
		conns = append(conns, map[string]any{
			"from": posToNBT(c.From),
			"to":   posToNBT(c.To),
		})
	}
	return map[string]any{
		"id":          block.SpeakerTileEntityID,
		"rotation":    s.Rotation,
		"size":        int32(s.Size.Meta()),
		"connections": conns,
	}
}

// DecodeNBT ...
func (s *Speaker) DecodeNBT(data map[string]any) {
	s.Rotation, _ = data["rotation"].(float32)
	size, _ := data["size"].(int32)
	s.Size = block.SpeakerSizeFromMeta(int(size))

	s.connections = s.connections[:0]
	for _, m := range connectionsFromNBT(data["connections"]) {
		from, okFrom := posFromNBT(m["from"])
		to, okTo := posFromNBT(m["to"])
		if !okFrom || !okTo {
			continue
		}
		s.connections = append(s.connections, wire.Connection{From: from, To: to})
	}
}

// connectionsFromNBT accepts both the list written by EncodeNBT and the list produced by decoding it
// from NBT.
func connectionsFromNBT(v any) []map[string]any {
	switch v := v.(type) {
	case []map[string]any:
		return v
	case []any:
		conns := make([]map[string]any, 0, len(v))
		for _, c := range v {
			if m, ok := c.(map[string]any); ok {
				conns = append(conns, m)
			}
		}
		return conns
	}
	return nil
}

func posToNBT(pos cube.Pos) []int32 {
	return []int32{int32(pos[0]), int32(pos[1]), int32(pos[2])}
}

func posFromNBT(v any) (cube.Pos, bool) {
	s, ok := v.([]int32)
	if !ok || len(s) != 3 {
		return cube.Pos{}, false
	}
	return cube.Pos{int(s[0]), int(s[1]), int(s[2])}, true
}
