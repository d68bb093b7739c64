package block

import (
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/world"
)

// ModID is the namespace of every block registered by the mod.
const ModID = "betterrecords"

// UpdateFlag controls what happens after a block in the world changes.
type UpdateFlag uint8

const (
	// UpdateNeighbours notifies neighbouring blocks and marks the chunk as changed so it is saved.
	UpdateNeighbours UpdateFlag = 1 << iota
	// UpdateClients sends the change to viewers of the world.
	UpdateClients
	// UpdateNoRender stops viewers from re-rendering the block.
	UpdateNoRender
	// UpdateRerenderMain forces viewers to re-render the block immediately.
	UpdateRerenderMain
)

// UpdateDefault is the flag set used for regular block changes on the authoritative side.
const UpdateDefault = UpdateNeighbours | UpdateClients

// Has reports if all bits of o are set in f.
func (f UpdateFlag) Has(o UpdateFlag) bool {
	return f&o == o
}

// TileEntity is the mutable state kept by the world at the position of a block.
type TileEntity interface {
	// TileEntityID returns the identifier the tile entity is saved with.
	TileEntityID() string
	EncodeNBT() map[string]any
	DecodeNBT(data map[string]any)
}

// World is the part of the world that block hooks read and mutate.
type World interface {
	Block(pos cube.Pos) world.Block
	// SetBlock replaces the block at pos and reports whether the block changed.
	SetBlock(pos cube.Pos, b world.Block, flags UpdateFlag) bool
	// TileEntity returns the tile entity at pos, or nil if there is none.
	TileEntity(pos cube.Pos) TileEntity
	NotifyBlockUpdate(pos cube.Pos, before, after world.Block, flags UpdateFlag)
	// Remote is true when the world mirrors state owned by another simulation.
	Remote() bool
}

// Placer is an entity that places blocks.
type Placer interface {
	Rotation() cube.Rotation
}

// Breaker is an entity that breaks blocks.
type Breaker interface {
	HeldTool() item.Tool
}

// ModBlock is a block added by the mod. Every state of the block is a value of the same type.
type ModBlock interface {
	world.Block
	// Name returns the registry name of the block, without the namespace.
	Name() string
	// States returns every state of the block.
	States() []world.Block
}

// TileEntityProvider is a block that keeps a tile entity at its position.
type TileEntityProvider interface {
	TileEntityID() string
}

// MetaCodec converts a block to and from the metadata it is persisted with.
type MetaCodec interface {
	StateFromMeta(meta int) world.Block
	MetaFromState() int
}

// Adder is a block notified after it was added to the world.
type Adder interface {
	OnAdded(w World, pos cube.Pos)
}

// PlacedByHandler is a block notified after an entity placed it.
type PlacedByHandler interface {
	PlacedBy(w World, pos cube.Pos, placer Placer, stack item.Stack)
}

// PlayerRemover is a block with custom behaviour when removed by a player. RemovedByPlayer returns
// true if the block was removed.
type PlayerRemover interface {
	RemovedByPlayer(w World, pos cube.Pos, breaker Breaker, willHarvest bool) bool
}

// SubBlockProvider lists the item stacks a block shows in the creative inventory.
type SubBlockProvider interface {
	SubBlocks() []item.Stack
}

// RemoveByDefault removes the block at pos the way blocks without custom removal behaviour are
// removed: the block is replaced with air.
func RemoveByDefault(w World, pos cube.Pos) bool {
	flags := UpdateDefault
	if w.Remote() {
		flags |= UpdateRerenderMain
	}
	return w.SetBlock(pos, block.Air{}, flags)
}
