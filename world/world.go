package world

import (
	"log/slog"

	"github.com/chewxy/math32"
	df_block "github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/betterrecords/game"
	"github.com/oomph-ac/betterrecords/world/block"
	"github.com/oomph-ac/betterrecords/world/tile"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sasha-s/go-deadlock"
)

var currentWorldId uint64

// Viewer is notified of block changes sent to clients.
type Viewer interface {
	ViewBlockUpdate(pos cube.Pos, b world.Block, flags block.UpdateFlag)
}

// World holds the blocks placed by the mod and their tile entities, grouped by chunk. Positions
// without a block hold air.
type World struct {
	id           uint64
	remote       bool
	lastCleanPos protocol.ChunkPos

	chunks  map[protocol.ChunkPos]*chunkState
	viewers []Viewer

	logger *slog.Logger

	deadlock.RWMutex
}

type chunkState struct {
	blocks map[cube.Pos]world.Block
	tiles  map[cube.Pos]block.TileEntity
	dirty  bool
}

// New returns an empty world. A remote world mirrors a world owned by another simulation: it does
// not run the added and removal logic reserved for the authoritative side.
func New(logger *slog.Logger, remote bool) *World {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	currentWorldId++
	return &World{
		id:     currentWorldId,
		remote: remote,
		chunks: make(map[protocol.ChunkPos]*chunkState),
		logger: logger,
	}
}

// Remote ...
func (w *World) Remote() bool {
	return w.remote
}

// AddViewer adds a viewer that receives the block changes sent to clients.
func (w *World) AddViewer(v Viewer) {
	w.Lock()
	defer w.Unlock()
	w.viewers = append(w.viewers, v)
}

// RemoveViewer ...
func (w *World) RemoveViewer(v Viewer) {
	w.Lock()
	defer w.Unlock()
	for i, other := range w.viewers {
		if other == v {
			w.viewers = append(w.viewers[:i], w.viewers[i+1:]...)
			return
		}
	}
}

// Block returns the block at the position passed.
func (w *World) Block(pos cube.Pos) world.Block {
	w.RLock()
	defer w.RUnlock()

	if c, ok := w.chunks[chunkPosOf(pos)]; ok {
		if b, ok := c.blocks[pos]; ok {
			return b
		}
	}
	return df_block.Air{}
}

// TileEntity returns the tile entity at the position passed, or nil if there is none.
func (w *World) TileEntity(pos cube.Pos) block.TileEntity {
	w.RLock()
	defer w.RUnlock()

	if c, ok := w.chunks[chunkPosOf(pos)]; ok {
		if te, ok := c.tiles[pos]; ok {
			return te
		}
	}
	return nil
}

// SetBlock sets the block at the position passed and reports whether the block changed. Tile
// entities are created for blocks that need one, and removed together with the block they belong to.
func (w *World) SetBlock(pos cube.Pos, b world.Block, flags block.UpdateFlag) bool {
	if pos.OutOfBounds(world.Overworld.Range()) {
		return false
	}
	before := w.Block(pos)
	if sameState(before, b) {
		return false
	}

	w.Lock()
	c := w.chunk(chunkPosOf(pos))
	if _, air := b.(df_block.Air); air {
		delete(c.blocks, pos)
	} else {
		c.blocks[pos] = b
	}
	w.updateTileEntity(c, pos, b)
	w.Unlock()

	w.NotifyBlockUpdate(pos, before, b, flags)
	if a, ok := b.(block.Adder); ok && !w.remote {
		a.OnAdded(w, pos)
	}
	return true
}

// updateTileEntity keeps the tile entity at pos in line with the block b. The world must be locked.
func (w *World) updateTileEntity(c *chunkState, pos cube.Pos, b world.Block) {
	p, ok := b.(block.TileEntityProvider)
	if !ok {
		delete(c.tiles, pos)
		return
	}
	if te, ok := c.tiles[pos]; ok && te.TileEntityID() == p.TileEntityID() {
		return
	}
	te, ok := tile.New(p.TileEntityID())
	if !ok {
		w.logger.Warn("no tile entity registered for block", "id", p.TileEntityID(), "pos", pos)
		delete(c.tiles, pos)
		return
	}
	c.tiles[pos] = te
}

// NotifyBlockUpdate sends a block change to the viewers of the world if flags contains
// UpdateClients, and marks the chunk as changed if flags contains UpdateNeighbours.
func (w *World) NotifyBlockUpdate(pos cube.Pos, before, after world.Block, flags block.UpdateFlag) {
	w.Lock()
	if flags.Has(block.UpdateNeighbours) {
		w.chunk(chunkPosOf(pos)).dirty = true
	}
	var viewers []Viewer
	if flags.Has(block.UpdateClients) {
		viewers = append(viewers, w.viewers...)
	}
	w.Unlock()

	w.logger.Debug("block update", "pos", pos, "flags", flags, "viewers", len(viewers))
	for _, v := range viewers {
		v.ViewBlockUpdate(pos, after, flags)
	}
}

// PlaceBlock places the block at the position passed on behalf of placer.
func (w *World) PlaceBlock(pos cube.Pos, b world.Block, placer block.Placer, stack item.Stack) bool {
	if !w.SetBlock(pos, b, block.UpdateDefault) {
		return false
	}
	if h, ok := b.(block.PlacedByHandler); ok {
		h.PlacedBy(w, pos, placer, stack)
	}
	return true
}

// PlaceItem places the block held as the item of stack. Blocks that persist their state as
// metadata are placed in the state encoded in the item's metadata.
func (w *World) PlaceItem(pos cube.Pos, stack item.Stack, placer block.Placer) bool {
	if stack.Empty() {
		return false
	}
	var b world.Block
	switch it := stack.Item().(type) {
	case block.MetaCodec:
		_, meta := stack.Item().EncodeItem()
		b = it.StateFromMeta(int(meta))
	case world.Block:
		b = it
	default:
		return false
	}
	return w.PlaceBlock(pos, b, placer, stack)
}

// BreakBlock breaks the block at the position passed on behalf of breaker. It returns the items
// dropped by the block and whether the block was removed.
func (w *World) BreakBlock(pos cube.Pos, breaker block.Breaker) ([]item.Stack, bool) {
	b := w.Block(pos)
	breakable, ok := b.(interface{ BreakInfo() df_block.BreakInfo })
	if !ok {
		return nil, false
	}
	info := breakable.BreakInfo()
	tool := breaker.HeldTool()
	willHarvest := info.Harvestable != nil && info.Harvestable(tool)

	var removed bool
	if r, ok := b.(block.PlayerRemover); ok {
		removed = r.RemovedByPlayer(w, pos, breaker, willHarvest)
	} else {
		removed = block.RemoveByDefault(w, pos)
	}
	if !removed {
		return nil, false
	}
	if !willHarvest || info.Drops == nil {
		return nil, true
	}
	return info.Drops(tool, nil), true
}

// PickBlock returns the first block whose hitbox is hit by a ray from eye in the direction of yaw
// and pitch, at most reach blocks away.
func (w *World) PickBlock(eye mgl32.Vec3, yaw, pitch, reach float32) (cube.Pos, bool) {
	end := eye.Add(game.DirectionVector(yaw, pitch).Mul(reach))
	for pos := range game.BlocksBetween(eye, end) {
		b := w.Block(pos)
		// Mod block models do not read their neighbours.
		for _, bb := range b.Model().BBox(pos, nil) {
			if _, ok := trace.BBoxIntercept(game.DFBoxToCubeBox(bb.Translate(pos.Vec3())), eye, end); ok {
				return pos, true
			}
		}
	}
	return cube.Pos{}, false
}

// Dirty returns the chunks changed since they were last saved.
func (w *World) Dirty() []protocol.ChunkPos {
	w.RLock()
	defer w.RUnlock()

	var dirty []protocol.ChunkPos
	for pos, c := range w.chunks {
		if c.dirty {
			dirty = append(dirty, pos)
		}
	}
	return dirty
}

// CleanChunks drops the state of chunks further than radius chunks away from pos.
func (w *World) CleanChunks(radius int32, pos protocol.ChunkPos) {
	w.Lock()
	defer w.Unlock()

	if pos == w.lastCleanPos {
		return
	}
	w.lastCleanPos = pos

	for chunkPos := range w.chunks {
		if chunkInRange(radius, chunkPos, pos) {
			continue
		}
		delete(w.chunks, chunkPos)
		w.logger.Info("removed chunk", "world", w.id, "chunkPos", chunkPos, "radius", radius, "pos", pos)
	}
}

// chunk returns the state of the chunk at pos, creating it if needed. The world must be locked.
func (w *World) chunk(pos protocol.ChunkPos) *chunkState {
	c, ok := w.chunks[pos]
	if !ok {
		c = &chunkState{
			blocks: make(map[cube.Pos]world.Block),
			tiles:  make(map[cube.Pos]block.TileEntity),
		}
		w.chunks[pos] = c
	}
	return c
}

func chunkPosOf(pos cube.Pos) protocol.ChunkPos {
	return protocol.ChunkPos{int32(pos[0]) >> 4, int32(pos[2]) >> 4}
}

// chunkInRange returns true if the chunk position is within the given radius of the chunk position.
func chunkInRange(radius int32, chunkPos, pos protocol.ChunkPos) bool {
	diffX, diffZ := pos[0]-chunkPos[0], pos[1]-chunkPos[1]
	dist := math32.Sqrt(float32(diffX*diffX) + float32(diffZ*diffZ))

	return int32(dist) <= radius
}

// sameState reports whether a and b are the same block state.
func sameState(a, b world.Block) bool {
	aBase, aState := a.Hash()
	bBase, bState := b.Hash()
	return aBase == bBase && aState == bState
}
