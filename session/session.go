// Package session forwards the block changes of a world to a connected client.
package session

import (
	"log/slog"

	df_block "github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/betterrecords/world/block"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

// PacketWriter writes packets to a client. *minecraft.Conn implements it.
type PacketWriter interface {
	WritePacket(pk packet.Packet) error
}

// Palette resolves the runtime IDs of block states.
type Palette interface {
	RuntimeID(b world.Block) (uint32, bool)
}

// Session is a world viewer that sends block changes to a single client.
type Session struct {
	conn    PacketWriter
	palette Palette
	airRID  uint32
	log     *slog.Logger
}

// New returns a session writing to conn. airRID is the runtime ID of air on the client.
func New(conn PacketWriter, palette Palette, airRID uint32, log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Session{conn: conn, palette: palette, airRID: airRID, log: log}
}

// ViewBlockUpdate ...
func (s *Session) ViewBlockUpdate(pos cube.Pos, b world.Block, flags block.UpdateFlag) {
	rid, ok := s.runtimeID(b)
	if !ok {
		name, _ := b.EncodeBlock()
		s.log.Warn("no runtime ID for block update", "block", name, "pos", pos)
		return
	}
	err := s.conn.WritePacket(&packet.UpdateBlock{
		Position:          protocol.BlockPos{int32(pos[0]), int32(pos[1]), int32(pos[2])},
		NewBlockRuntimeID: rid,
		Flags:             networkFlags(flags),
		Layer:             0,
	})
	if err != nil {
		s.log.Error("failed to write block update", "pos", pos, "err", err)
	}
}

func (s *Session) runtimeID(b world.Block) (uint32, bool) {
	if _, ok := b.(df_block.Air); ok {
		return s.airRID, true
	}
	return s.palette.RuntimeID(b)
}

// networkFlags converts update flags to the flags of an UpdateBlock packet. Re-render hints are not
// part of the protocol; a forced re-render is sent as a priority update.
func networkFlags(flags block.UpdateFlag) uint32 {
	var f uint32
	if flags.Has(block.UpdateNeighbours) {
		f |= packet.BlockUpdateNeighbours
	}
	if flags.Has(block.UpdateClients) {
		f |= packet.BlockUpdateNetwork
	}
	if flags.Has(block.UpdateNoRender) {
		f |= packet.BlockUpdateNoGraphics
	}
	if flags.Has(block.UpdateRerenderMain) {
		f |= packet.BlockUpdatePriority
	}
	return f
}
