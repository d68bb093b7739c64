// Package tile implements the tile entities kept by the world next to the blocks of the mod.
package tile

import (
	"fmt"

	"github.com/oomph-ac/betterrecords/world/block"
)

var factories = map[string]func() block.TileEntity{}

func init() {
	Register(block.SpeakerTileEntityID, func() block.TileEntity { return &Speaker{} })
}

// Register makes tile entities with the ID passed constructible through New. Registering an ID twice
// replaces the previous factory.
func Register(id string, f func() block.TileEntity) {
	factories[id] = f
}

// New returns a new tile entity with the ID passed.
func New(id string) (block.TileEntity, bool) {
	f, ok := factories[id]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Decode creates a tile entity from NBT data holding its ID.
func Decode(data map[string]any) (block.TileEntity, error) {
	id, _ := data["id"].(string)
	te, ok := New(id)
	if !ok {
		return nil, fmt.Errorf("unknown tile entity %q", id)
	}
	te.DecodeNBT(data)
	return te, nil
}
