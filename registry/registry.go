// Package registry keeps the blocks added by the mod, hands out their network runtime IDs and
// drives the registration of their assets.
package registry

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/betterrecords/client"
	"github.com/oomph-ac/betterrecords/world/block"
	"github.com/zeebo/xxh3"
)

// Registry is the dispatch table of mod blocks. Runtime IDs are handed out in the order states are
// registered, starting at FirstRuntimeID.
type Registry struct {
	log *slog.Logger

	first  uint32
	blocks []block.ModBlock
	names  map[string]block.ModBlock
	states []world.Block
	hashes map[uint64]uint32
}

// FirstRuntimeID is the runtime ID given to the first registered state when no other offset is
// passed to New. Lower IDs belong to the blocks of the game itself.
const FirstRuntimeID = 1 << 16

// New returns an empty Registry whose first runtime ID is first.
func New(log *slog.Logger, first uint32) *Registry {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Registry{
		log:    log,
		first:  first,
		names:  make(map[string]block.ModBlock),
		hashes: make(map[uint64]uint32),
	}
}

// Register adds the block and all of its states to the registry.
func (r *Registry) Register(b block.ModBlock) error {
	if _, ok := r.names[b.Name()]; ok {
		return fmt.Errorf("block %q already registered", b.Name())
	}
	states := b.States()
	hashes := make([]uint64, 0, len(states))
	for _, s := range states {
		h := StateHash(s)
		if _, ok := r.hashes[h]; ok {
			return fmt.Errorf("state of block %q collides with a registered state", b.Name())
		}
		hashes = append(hashes, h)
	}
	for i, s := range states {
		r.hashes[hashes[i]] = r.first + uint32(len(r.states))
		r.states = append(r.states, s)
	}
	r.names[b.Name()] = b
	r.blocks = append(r.blocks, b)
	r.log.Debug("registered block", "name", b.Name(), "states", len(states))
	return nil
}

// Block returns the registered block with the name passed.
func (r *Registry) Block(name string) (block.ModBlock, bool) {
	b, ok := r.names[name]
	return b, ok
}

// Blocks returns the registered blocks in registration order.
func (r *Registry) Blocks() []block.ModBlock {
	return append([]block.ModBlock(nil), r.blocks...)
}

// RuntimeID returns the runtime ID of the block state passed.
func (r *Registry) RuntimeID(b world.Block) (uint32, bool) {
	rid, ok := r.hashes[StateHash(b)]
	return rid, ok
}

// BlockByRuntimeID returns the block state with the runtime ID passed.
func (r *Registry) BlockByRuntimeID(rid uint32) (world.Block, bool) {
	if rid < r.first || rid-r.first >= uint32(len(r.states)) {
		return nil, false
	}
	return r.states[rid-r.first], true
}

// CreativeItems returns the items of all registered blocks shown in the creative inventory.
func (r *Registry) CreativeItems() []item.Stack {
	var stacks []item.Stack
	for _, b := range r.blocks {
		if p, ok := b.(block.SubBlockProvider); ok {
			stacks = append(stacks, p.SubBlocks()...)
		}
	}
	return stacks
}

// RegisterAssets registers the item models and tile entity item renderers of all registered blocks.
func (r *Registry) RegisterAssets(l client.ModelLoader, t client.TESRRegistry) {
	for _, b := range r.blocks {
		if p, ok := b.(client.ItemModelProvider); ok {
			p.RegisterItemModel(l)
		}
		if p, ok := b.(client.TESRProvider); ok {
			p.RegisterTESRItemStacks(t)
		}
	}
}

// StateHash hashes the name and properties of a block state. Two states share a hash only if they
// encode to the same name and properties.
func StateHash(b world.Block) uint64 {
	name, properties := b.EncodeBlock()

	h := xxh3.New()
	_, _ = h.WriteString(name)
	for _, k := range slices.Sorted(maps.Keys(properties)) {
		_, _ = fmt.Fprintf(h, "\x00%s=%T:%v", k, properties[k], properties[k])
	}
	return h.Sum64()
}
