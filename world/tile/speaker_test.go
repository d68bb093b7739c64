package tile

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/betterrecords/wire"
	"github.com/oomph-ac/betterrecords/world/block"
)

func TestNewSpeaker(t *testing.T) {
	te, ok := New(block.SpeakerTileEntityID)
	if !ok {
		t.Fatal("speaker tile entity is not registered")
	}
	if _, ok := te.(*Speaker); !ok {
		t.Fatalf("New(%q) = %T", block.SpeakerTileEntityID, te)
	}
	if _, ok := te.(wire.SoundDevice); !ok {
		t.Error("speaker tile entity is not a sound device")
	}
	if _, ok := New("betterrecords:unknown"); ok {
		t.Error("New returned a tile entity for an unknown ID")
	}
}

func TestSpeakerNBT(t *testing.T) {
	s := &Speaker{}
	s.SetRotation(-90.5)
	s.SetSize(block.MediumSpeaker())
	s.AddConnection(wire.Connection{From: cube.Pos{1, 2, 3}, To: cube.Pos{4, 5, 6}})
	s.AddConnection(wire.Connection{From: cube.Pos{1, 2, 3}, To: cube.Pos{4, 5, 6}})

	te, err := Decode(s.EncodeNBT())
	if err != nil {
		t.Fatal(err)
	}
	got := te.(*Speaker)
	if got.Rotation != -90.5 || got.Size != block.MediumSpeaker() {
		t.Errorf("decoded speaker = rotation %v size %v", got.Rotation, got.Size)
	}
	conns := got.Connections()
	if len(conns) != 1 || conns[0].Other(cube.Pos{1, 2, 3}) != (cube.Pos{4, 5, 6}) {
		t.Errorf("decoded connections = %v", conns)
	}
}

func TestSpeakerDecodeUnknownSize(t *testing.T) {
	s := &Speaker{Size: block.LargeSpeaker()}
	s.DecodeNBT(map[string]any{"size": int32(9), "rotation": float32(10)})
	if s.Size != block.SmallSpeaker() || s.Rotation != 10 {
		t.Errorf("decoded speaker = rotation %v size %v", s.Rotation, s.Size)
	}
}

func TestDecodeUnknownTileEntity(t *testing.T) {
	if _, err := Decode(map[string]any{"id": "betterrecords:unknown"}); err == nil {
		t.Error("Decode accepted an unknown tile entity")
	}
}

func TestSpeakerFacing(t *testing.T) {
	s := &Speaker{}
	for yaw, want := range map[float32]cube.Direction{0: cube.South, 180: cube.North} {
		s.SetRotation(yaw)
		if got := s.Facing(); got != want {
			t.Errorf("Facing() with yaw %v = %v, want %v", yaw, got, want)
		}
	}
}
