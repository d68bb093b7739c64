package block

import (
	"github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/betterrecords/assert"
	"github.com/oomph-ac/betterrecords/client"
	"github.com/oomph-ac/betterrecords/wire"
	"github.com/oomph-ac/betterrecords/world/blockmodel"
)

// SpeakerTileEntityID is the identifier of the tile entity kept at the position of every speaker.
const SpeakerTileEntityID = ModID + ":speaker"

var speakerHash = block.NextHash()

var (
	speakerHardness   = [...]float64{2, 3, 4}
	speakerResistance = [...]float64{7.5, 8, 9.5}
)

// speakerBreakRow is the row of speakerHardness and speakerResistance used by every speaker,
// regardless of its size.
const speakerBreakRow = 0

// Speaker is a wooden block that plays the music of the devices wired to it. It comes in three
// sizes, each with its own hitbox.
type Speaker struct {
	Size SpeakerSize
}

// speakerTile is the tile entity state written when a speaker is placed.
type speakerTile interface {
	SetRotation(yaw float32)
	SetSize(size SpeakerSize)
}

// Name ...
func (Speaker) Name() string {
	return "speaker"
}

// States ...
func (Speaker) States() []world.Block {
	states := make([]world.Block, 0, 3)
	for _, size := range SpeakerSizes() {
		states = append(states, Speaker{Size: size})
	}
	return states
}

// EncodeBlock ...
func (s Speaker) EncodeBlock() (string, map[string]any) {
	return ModID + ":" + s.Name(), map[string]any{"size": s.Size.String()}
}

// EncodeItem ...
func (s Speaker) EncodeItem() (name string, meta int16) {
	return ModID + ":" + s.Name(), int16(s.Size.Meta())
}

func (s Speaker) Hash() (uint64, uint64) {
	return speakerHash, uint64(s.Size.Uint8())
}

// Model ...
func (s Speaker) Model() world.BlockModel {
	return blockmodel.Speaker{Size: int32(s.Size.Meta())}
}

// BreakInfo ...
func (s Speaker) BreakInfo() block.BreakInfo {
	return block.BreakInfo{
		Hardness:        speakerBreakValue(speakerHardness, speakerBreakRow, 2),
		BlastResistance: speakerBreakValue(speakerResistance, speakerBreakRow, 7.5),
		Harvestable: func(item.Tool) bool {
			return true
		},
		Effective: func(t item.Tool) bool {
			return t.ToolType() == item.TypeAxe
		},
		Drops: func(item.Tool, []item.Enchantment) []item.Stack {
			return []item.Stack{item.NewStack(Speaker{Size: SpeakerSizeFromMeta(s.DamageDropped())}, 1)}
		},
	}
}

// TileEntityID ...
func (Speaker) TileEntityID() string {
	return SpeakerTileEntityID
}

// StateFromMeta ...
func (Speaker) StateFromMeta(meta int) world.Block {
	return Speaker{Size: SpeakerSizeFromMeta(meta)}
}

// MetaFromState ...
func (s Speaker) MetaFromState() int {
	return s.Size.Meta()
}

// DamageDropped returns the item metadata of the speaker dropped when the block is harvested.
func (s Speaker) DamageDropped() int {
	return s.Size.Meta()
}

// SubBlocks returns one speaker item for every size.
func (Speaker) SubBlocks() []item.Stack {
	stacks := make([]item.Stack, 0, 3)
	for _, size := range SpeakerSizes() {
		stacks = append(stacks, item.NewStack(Speaker{Size: size}, 1))
	}
	return stacks
}

// OnAdded ...
func (s Speaker) OnAdded(w World, pos cube.Pos) {
	w.NotifyBlockUpdate(pos, s, s, UpdateDefault)
}

// PlacedBy stores the yaw of the placer and the size of the speaker in its tile entity.
func (s Speaker) PlacedBy(w World, pos cube.Pos, placer Placer, _ item.Stack) {
	te, ok := w.TileEntity(pos).(speakerTile)
	if !ok {
		return
	}
	te.SetRotation(float32(placer.Rotation().Yaw()))
	te.SetSize(s.Size)
}

// RemovedByPlayer ...
func (s Speaker) RemovedByPlayer(w World, pos cube.Pos, _ Breaker, _ bool) bool {
	if !w.Remote() {
		if dev, ok := w.TileEntity(pos).(wire.SoundDevice); ok {
			removeConnections(w, pos, dev)
		}
	}
	return RemoveByDefault(w, pos)
}

// RegisterItemModel points the item of every size at the shared speaker item model.
func (s Speaker) RegisterItemModel(l client.ModelLoader) {
	loc := client.ModelResourceLocation{Path: ModID + ":itemblock/" + s.Name(), Variant: "inventory"}
	for _, size := range SpeakerSizes() {
		l.SetCustomModelResourceLocation(Speaker{Size: size}, int16(size.Meta()), loc)
	}
}

// RegisterTESRItemStacks renders the item of every size with the speaker tile entity renderer.
func (s Speaker) RegisterTESRItemStacks(r client.TESRRegistry) {
	for _, size := range SpeakerSizes() {
		r.RegisterTESRItemStack(Speaker{Size: size}, int16(size.Meta()), SpeakerTileEntityID)
	}
}

// removeConnections detaches the wires of a sound device that is about to be removed.
func removeConnections(World, cube.Pos, wire.SoundDevice) {
	// TODO: detach the wires from the devices on the other end of each connection.
	assert.Unimplemented("speaker wire connection removal")
}

func speakerBreakValue(table [3]float64, row int, fallback float64) float64 {
	if row < 0 || row >= len(table) {
		return fallback
	}
	return table[row]
}
