// Package wire holds the capability interfaces shared by blocks that take part in
// speaker wiring. Signal propagation itself lives outside this module.
package wire

import "github.com/df-mc/dragonfly/server/block/cube"

// Connection is a wire between two sound devices.
type Connection struct {
	// From is the position of the device the signal comes from.
	From cube.Pos
	// To is the position of the device the signal goes to.
	To cube.Pos
}

// Other returns the end of the connection that is not at pos.
func (c Connection) Other(pos cube.Pos) cube.Pos {
	if c.From == pos {
		return c.To
	}
	return c.From
}

// SoundDevice is implemented by tile entities that can be wired to other sound devices.
type SoundDevice interface {
	// Connections returns the wires currently attached to the device.
	Connections() []Connection
	// AddConnection attaches a wire to the device. Adding a wire that is already attached does
	// nothing.
	AddConnection(c Connection)
}
