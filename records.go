// Package betterrecords wires the blocks of the mod into a world, the asset registries of the client
// and the sessions of connected players.
package betterrecords

import (
	"fmt"
	"log/slog"

	"github.com/df-mc/dragonfly/server/item"
	"github.com/oomph-ac/betterrecords/client"
	"github.com/oomph-ac/betterrecords/registry"
	"github.com/oomph-ac/betterrecords/session"
	"github.com/oomph-ac/betterrecords/settings"
	"github.com/oomph-ac/betterrecords/world"
	"github.com/oomph-ac/betterrecords/world/block"
)

// Records is an instance of the mod.
type Records struct {
	settings settings.Settings
	log      *slog.Logger

	blocks *registry.Registry
	assets *client.Registry
	world  *world.World
}

// New registers the blocks of the mod and their assets, and creates the world they are placed in.
func New(s settings.Settings, log *slog.Logger) (*Records, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	blocks := registry.New(log, s.Records.FirstRuntimeID)
	for _, b := range []block.ModBlock{block.Speaker{}} {
		if err := blocks.Register(b); err != nil {
			return nil, fmt.Errorf("register %s: %w", b.Name(), err)
		}
	}

	assets := client.NewRegistry()
	blocks.RegisterAssets(assets, assets)

	log.Info("registered blocks", "blocks", len(blocks.Blocks()), "models", len(assets.Models()))
	return &Records{
		settings: s,
		log:      log,
		blocks:   blocks,
		assets:   assets,
		world:    world.New(log, s.Records.Remote),
	}, nil
}

// World returns the world the blocks of the mod are placed in.
func (r *Records) World() *world.World {
	return r.world
}

// Blocks returns the block registry of the mod.
func (r *Records) Blocks() *registry.Registry {
	return r.blocks
}

// Assets returns the item model and renderer bindings of the mod.
func (r *Records) Assets() *client.Registry {
	return r.assets
}

// CreativeItems returns the items the mod adds to the creative inventory.
func (r *Records) CreativeItems() []item.Stack {
	return r.blocks.CreativeItems()
}

// Connect starts sending block changes of the world to the client writing to conn. The session
// returned should be passed to Disconnect once the client leaves.
func (r *Records) Connect(conn session.PacketWriter) *session.Session {
	s := session.New(conn, r.blocks, r.settings.Records.AirRuntimeID, r.log)
	r.world.AddViewer(s)
	return s
}

// Disconnect stops sending block changes to the session passed.
func (r *Records) Disconnect(s *session.Session) {
	r.world.RemoveViewer(s)
}
