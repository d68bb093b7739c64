// Package client binds items to the models and special renderers used to draw them. The bindings are
// built once while assets are registered and read by the renderer afterwards.
package client

import (
	"fmt"

	"github.com/df-mc/dragonfly/server/world"
	"github.com/elliotchance/orderedmap/v2"
)

// ModelResourceLocation points at a model file and the variant of it to use.
type ModelResourceLocation struct {
	Path    string
	Variant string
}

// String returns the location in the form path#variant.
func (l ModelResourceLocation) String() string {
	return l.Path + "#" + l.Variant
}

// ModelLoader sets the models used for items.
type ModelLoader interface {
	SetCustomModelResourceLocation(it world.Item, meta int16, loc ModelResourceLocation)
}

// TESRRegistry binds items to the special renderer of a tile entity.
type TESRRegistry interface {
	RegisterTESRItemStack(it world.Item, meta int16, tileEntityID string)
}

// ItemModelProvider is a block that registers models for its items.
type ItemModelProvider interface {
	RegisterItemModel(l ModelLoader)
}

// TESRProvider is a block whose items are drawn by a tile entity renderer.
type TESRProvider interface {
	RegisterTESRItemStacks(r TESRRegistry)
}

// ItemKey identifies an item variant by its name and metadata.
type ItemKey struct {
	Name string
	Meta int16
}

// String ...
func (k ItemKey) String() string {
	return fmt.Sprintf("%s:%d", k.Name, k.Meta)
}

// KeyOf returns the ItemKey of the item with the metadata passed.
func KeyOf(it world.Item, meta int16) ItemKey {
	name, _ := it.EncodeItem()
	return ItemKey{Name: name, Meta: meta}
}

// Registry is a ModelLoader and TESRRegistry that keeps the bindings in registration order. The zero
// value is not usable; use NewRegistry.
type Registry struct {
	models *orderedmap.OrderedMap[ItemKey, ModelResourceLocation]
	tesr   *orderedmap.OrderedMap[ItemKey, string]
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		models: orderedmap.NewOrderedMap[ItemKey, ModelResourceLocation](),
		tesr:   orderedmap.NewOrderedMap[ItemKey, string](),
	}
}

// SetCustomModelResourceLocation ...
func (r *Registry) SetCustomModelResourceLocation(it world.Item, meta int16, loc ModelResourceLocation) {
	r.models.Set(KeyOf(it, meta), loc)
}

// RegisterTESRItemStack ...
func (r *Registry) RegisterTESRItemStack(it world.Item, meta int16, tileEntityID string) {
	r.tesr.Set(KeyOf(it, meta), tileEntityID)
}

// Model returns the model location set for the item variant.
func (r *Registry) Model(k ItemKey) (ModelResourceLocation, bool) {
	return r.models.Get(k)
}

// TileEntityRenderer returns the tile entity whose renderer draws the item variant.
func (r *Registry) TileEntityRenderer(k ItemKey) (string, bool) {
	return r.tesr.Get(k)
}

// Models returns the item variants with a model, in the order they were registered.
func (r *Registry) Models() []ItemKey {
	return r.models.Keys()
}

// TileEntityRenderers returns the item variants drawn by a tile entity renderer, in the order they
// were registered.
func (r *Registry) TileEntityRenderers() []ItemKey {
	return r.tesr.Keys()
}
