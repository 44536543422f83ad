package apt

import "fmt"

// Message is implemented by every decoded message type.
type Message interface {
	MessageID() uint16
}

// DecodeFunc turns the data packet of a frame (or the full header, for header-only
// messages) into a typed message.
type DecodeFunc[M Message] func([]byte) (M, error)

// Descriptor describes how one message id is framed and decoded.
type Descriptor[M Message] struct {
	ID     uint16
	Name   string
	Length int // total wire length including the header
	Decode DecodeFunc[M]
}

// Catalog is an immutable table of message descriptors. It is safe for concurrent
// use once built.
type Catalog[M Message] struct {
	entries map[uint16]Descriptor[M]
}

// NewCatalog builds a catalog from descs. Duplicate ids, lengths shorter than a
// header and missing decode routines are rejected.
func NewCatalog[M Message](descs ...Descriptor[M]) (*Catalog[M], error) {
	entries := make(map[uint16]Descriptor[M], len(descs))
	for _, d := range descs {
		if _, ok := entries[d.ID]; ok {
			return nil, fmt.Errorf("catalog: duplicate message id 0x%04X", d.ID)
		}
		if d.Length < HeaderLen {
			return nil, fmt.Errorf("catalog: message 0x%04X has length %d, shorter than the header", d.ID, d.Length)
		}
		if d.Decode == nil {
			return nil, fmt.Errorf("catalog: message 0x%04X has no decode routine", d.ID)
		}
		entries[d.ID] = d
	}
	return &Catalog[M]{entries: entries}, nil
}

// MustCatalog is like NewCatalog but panics on error. Intended for package-level
// tables.
func MustCatalog[M Message](descs ...Descriptor[M]) *Catalog[M] {
	c, err := NewCatalog(descs...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog[M]) Lookup(id uint16) (Descriptor[M], bool) {
	d, ok := c.entries[id]
	return d, ok
}

// IDs returns every message id in the catalog, in no particular order.
func (c *Catalog[M]) IDs() []uint16 {
	ids := make([]uint16, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	return ids
}

// Name returns the protocol name registered for id, or its hex form.
func (c *Catalog[M]) Name(id uint16) string {
	if d, ok := c.entries[id]; ok && d.Name != "" {
		return d.Name
	}
	return fmt.Sprintf("0x%04X", id)
}
