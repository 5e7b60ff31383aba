// Package record defines the capability contract a wire-framed value must
// satisfy to be carried inside an envelope, and a registry for looking up
// constructors by wire id.
package record

import "github.com/arloliu/serialcore/buffer"

// Record is any value with a fixed wire identity (ID, Version) and the
// ability to encode/decode its own body. It does not own or invoke its
// envelope; the envelope package wraps a Record reference with header
// framing from the outside.
type Record interface {
	ID() uint16
	Version() uint8
	SerializeBody(w *buffer.Writer) error
	DeserializeBody(r *buffer.Reader) error
}

// Registry maps a wire id to a constructor for the Record type registered
// under it, so a reader that only knows a header's id can produce an empty
// Record to deserialize into.
type Registry struct {
	factories map[uint16]func() Record
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[uint16]func() Record)}
}

// Register associates id with factory, overwriting any prior registration
// for the same id.
func (reg *Registry) Register(id uint16, factory func() Record) {
	reg.factories[id] = factory
}

// New constructs a fresh Record for id, or reports ok=false if no factory
// is registered under it.
func (reg *Registry) New(id uint16) (Record, bool) {
	factory, ok := reg.factories[id]
	if !ok {
		return nil, false
	}

	return factory(), true
}
