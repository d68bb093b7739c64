package session

import (
	"errors"
	"testing"

	df_block "github.com/df-mc/dragonfly/server/block"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/oomph-ac/betterrecords/world/block"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

type mockConn struct {
	packets []packet.Packet
	err     error
}

func (c *mockConn) WritePacket(pk packet.Packet) error {
	c.packets = append(c.packets, pk)
	return c.err
}

type mockPalette map[world.Block]uint32

func (p mockPalette) RuntimeID(b world.Block) (uint32, bool) {
	rid, ok := p[b]
	return rid, ok
}

func TestViewBlockUpdate(t *testing.T) {
	conn := &mockConn{}
	s := New(conn, mockPalette{block.Speaker{Size: block.MediumSpeaker()}: 70001}, 12, nil)

	s.ViewBlockUpdate(cube.Pos{1, -2, 3}, block.Speaker{Size: block.MediumSpeaker()}, block.UpdateDefault)
	s.ViewBlockUpdate(cube.Pos{1, -2, 3}, df_block.Air{}, block.UpdateDefault|block.UpdateRerenderMain)
	s.ViewBlockUpdate(cube.Pos{1, -2, 3}, block.Speaker{Size: block.LargeSpeaker()}, block.UpdateDefault)

	if len(conn.packets) != 2 {
		t.Fatalf("wrote %d packets, want 2", len(conn.packets))
	}
	want := []packet.UpdateBlock{
		{Position: protocol.BlockPos{1, -2, 3}, NewBlockRuntimeID: 70001, Flags: packet.BlockUpdateNeighbours | packet.BlockUpdateNetwork},
		{Position: protocol.BlockPos{1, -2, 3}, NewBlockRuntimeID: 12, Flags: packet.BlockUpdateNeighbours | packet.BlockUpdateNetwork | packet.BlockUpdatePriority},
	}
	for i, pk := range conn.packets {
		got, ok := pk.(*packet.UpdateBlock)
		if !ok {
			t.Fatalf("packet %d = %T", i, pk)
		}
		if *got != want[i] {
			t.Errorf("packet %d = %+v, want %+v", i, *got, want[i])
		}
	}
}

func TestViewBlockUpdateWriteError(t *testing.T) {
	conn := &mockConn{err: errors.New("closed")}
	s := New(conn, mockPalette{}, 0, nil)
	s.ViewBlockUpdate(cube.Pos{}, df_block.Air{}, block.UpdateClients)
	if len(conn.packets) != 1 {
		t.Errorf("wrote %d packets, want 1", len(conn.packets))
	}
}
