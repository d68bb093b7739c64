package registry

import (
	"testing"

	df_block "github.com/df-mc/dragonfly/server/block"
	"github.com/oomph-ac/betterrecords/client"
	"github.com/oomph-ac/betterrecords/world/block"
)

func TestRegisterSpeaker(t *testing.T) {
	r := New(nil, FirstRuntimeID)
	if err := r.Register(block.Speaker{}); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(block.Speaker{}); err == nil {
		t.Error("registering a block twice succeeded")
	}
	if _, ok := r.Block("speaker"); !ok {
		t.Error("speaker not found by name")
	}

	for i, size := range block.SpeakerSizes() {
		s := block.Speaker{Size: size}
		rid, ok := r.RuntimeID(s)
		if !ok || rid != FirstRuntimeID+uint32(i) {
			t.Errorf("RuntimeID(%v) = %d, %v", size, rid, ok)
		}
		if b, ok := r.BlockByRuntimeID(rid); !ok || b != s {
			t.Errorf("BlockByRuntimeID(%d) = %v, %v", rid, b, ok)
		}
	}
	if _, ok := r.RuntimeID(df_block.Air{}); ok {
		t.Error("air has a runtime ID")
	}
	for _, rid := range []uint32{0, FirstRuntimeID - 1, FirstRuntimeID + 3} {
		if _, ok := r.BlockByRuntimeID(rid); ok {
			t.Errorf("BlockByRuntimeID(%d) found a block", rid)
		}
	}
}

func TestStateHash(t *testing.T) {
	small, large := StateHash(block.Speaker{}), StateHash(block.Speaker{Size: block.LargeSpeaker()})
	if small == large {
		t.Error("speaker sizes share a state hash")
	}
	if small != StateHash(block.Speaker{Size: block.SmallSpeaker()}) {
		t.Error("state hash is not stable")
	}
}

func TestCreativeItemsAndAssets(t *testing.T) {
	r := New(nil, 100)
	if err := r.Register(block.Speaker{}); err != nil {
		t.Fatal(err)
	}
	items := r.CreativeItems()
	if len(items) != 3 {
		t.Fatalf("got %d creative items, want 3", len(items))
	}
	for i, stack := range items {
		if _, meta := stack.Item().EncodeItem(); int(meta) != i {
			t.Errorf("creative item %d has meta %d", i, meta)
		}
	}

	assets := client.NewRegistry()
	r.RegisterAssets(assets, assets)
	if len(assets.Models()) != 3 || len(assets.TileEntityRenderers()) != 3 {
		t.Errorf("registered %d models and %d renderers, want 3 each", len(assets.Models()), len(assets.TileEntityRenderers()))
	}
}
