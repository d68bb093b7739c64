package betterrecords

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/oomph-ac/betterrecords/settings"
	"github.com/oomph-ac/betterrecords/world/block"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
)

type mockConn struct {
	packets []packet.Packet
}

func (c *mockConn) WritePacket(pk packet.Packet) error {
	c.packets = append(c.packets, pk)
	return nil
}

type mockPlacer struct{}

func (mockPlacer) Rotation() cube.Rotation {
	return cube.Rotation{}
}

func TestNew(t *testing.T) {
	s := settings.DefaultSettings()
	s.Records.Remote = true
	r, err := New(s, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(r.CreativeItems()) != 3 {
		t.Errorf("got %d creative items, want 3", len(r.CreativeItems()))
	}
	if len(r.Assets().Models()) != 3 {
		t.Errorf("got %d item models, want 3", len(r.Assets().Models()))
	}
	if !r.World().Remote() {
		t.Error("world is not remote")
	}
}

func TestConnect(t *testing.T) {
	s := settings.DefaultSettings()
	r, err := New(s, nil)
	if err != nil {
		t.Fatal(err)
	}
	conn := &mockConn{}
	sess := r.Connect(conn)

	speaker := block.Speaker{Size: block.LargeSpeaker()}
	r.World().PlaceBlock(cube.Pos{0, 64, 0}, speaker, mockPlacer{}, item.NewStack(speaker, 1))
	if len(conn.packets) == 0 {
		t.Fatal("no block update sent")
	}
	pk := conn.packets[0].(*packet.UpdateBlock)
	if rid, _ := r.Blocks().RuntimeID(speaker); pk.NewBlockRuntimeID != rid {
		t.Errorf("runtime ID = %d, want %d", pk.NewBlockRuntimeID, rid)
	}

	r.Disconnect(sess)
	n := len(conn.packets)
	r.World().SetBlock(cube.Pos{1, 64, 0}, speaker, block.UpdateDefault)
	if len(conn.packets) != n {
		t.Error("disconnected session received an update")
	}
}
