package world

import (
	"bytes"
	"fmt"
	"maps"
	"slices"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/betterrecords/world/block"
	"github.com/oomph-ac/betterrecords/world/tile"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
)

// EncodeChunkTiles encodes the tile entities of the chunk passed as consecutive network NBT
// compounds, each holding the position of the tile entity in x, y and z.
func (w *World) EncodeChunkTiles(chunkPos protocol.ChunkPos) ([]byte, error) {
	w.RLock()
	defer w.RUnlock()

	buf := bytes.NewBuffer(nil)
	c, ok := w.chunks[chunkPos]
	if !ok {
		return buf.Bytes(), nil
	}

	enc := nbt.NewEncoderWithEncoding(buf, nbt.NetworkLittleEndian)
	positions := slices.SortedFunc(maps.Keys(c.tiles), comparePos)
	for _, pos := range positions {
		data := c.tiles[pos].EncodeNBT()
		data["x"], data["y"], data["z"] = int32(pos[0]), int32(pos[1]), int32(pos[2])
		if err := enc.Encode(data); err != nil {
			return nil, fmt.Errorf("encode tile entity at %v: %w", pos, err)
		}
	}
	return buf.Bytes(), nil
}

// DecodeChunkTiles decodes tile entities written by EncodeChunkTiles into the chunk passed. Tile
// entities without a matching block at their position are skipped.
func (w *World) DecodeChunkTiles(chunkPos protocol.ChunkPos, data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := nbt.NewDecoderWithEncoding(buf, nbt.NetworkLittleEndian)

	w.Lock()
	defer w.Unlock()

	c := w.chunk(chunkPos)
	for buf.Len() > 0 {
		var m map[string]any
		if err := dec.Decode(&m); err != nil {
			return fmt.Errorf("decode tile entity: %w", err)
		}
		x, okX := m["x"].(int32)
		y, okY := m["y"].(int32)
		z, okZ := m["z"].(int32)
		if !okX || !okY || !okZ {
			continue
		}
		pos := cube.Pos{int(x), int(y), int(z)}
		if chunkPosOf(pos) != chunkPos {
			continue
		}

		p, ok := c.blocks[pos].(block.TileEntityProvider)
		if !ok {
			w.logger.Debug("skipped tile entity without block", "pos", pos)
			continue
		}
		te, err := tile.Decode(m)
		if err != nil {
			return err
		}
		if te.TileEntityID() != p.TileEntityID() {
			w.logger.Debug("skipped tile entity of other block", "pos", pos, "id", te.TileEntityID())
			continue
		}
		c.tiles[pos] = te
	}
	return nil
}

func comparePos(a, b cube.Pos) int {
	for i := range a {
		if a[i] != b[i] {
			return a[i] - b[i]
		}
	}
	return 0
}
