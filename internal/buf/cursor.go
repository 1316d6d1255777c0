package buf

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/psdkit/pkg/types"
)

// Cursor is a sequential big-endian reader/writer over a fixed byte slice.
//
// Every access takes an implicit position (the current one) or an explicit
// offset via the *At variants; either way the position moves to the end of
// the accessed field. The slice never grows: callers pre-allocate for
// writes and supply the full buffer for reads.
//
// Reads return their error directly. Writes return the cursor so calls can
// be chained; the first failure is kept and reported by Err, and later
// writes become no-ops.
type Cursor struct {
	b   []byte
	pos int
	enc encoding.Encoding
	err error
}

// NewCursor wraps b with the position at zero. Fixed strings use UTF-8.
func NewCursor(b []byte) *Cursor {
	return &Cursor{b: b, enc: unicode.UTF8}
}

// WithEncoding sets the text encoding used by the fixed-string accessors.
// A nil enc restores UTF-8.
func (c *Cursor) WithEncoding(enc encoding.Encoding) *Cursor {
	if enc == nil {
		enc = unicode.UTF8
	}
	c.enc = enc
	return c
}

// ---- Position control ----

// Seek moves the position to off. Bounds are checked on the next access.
func (c *Cursor) Seek(off int) *Cursor {
	c.pos = off
	return c
}

// Tell returns the current position.
func (c *Cursor) Tell() int { return c.pos }

// Skip advances the position by n bytes without touching them.
func (c *Cursor) Skip(n int) *Cursor {
	c.pos += n
	return c
}

// Len returns the capacity of the underlying buffer.
func (c *Cursor) Len() int { return len(c.b) }

// Bytes returns the underlying buffer.
func (c *Cursor) Bytes() []byte { return c.b }

// Err returns the first write error, if any.
func (c *Cursor) Err() error { return c.err }

// span returns b[off:off+n] and moves the position past it.
func (c *Cursor) span(off, n int) ([]byte, error) {
	s, ok := Slice(c.b, off, n)
	if !ok {
		return nil, types.UnderrunError(off, n, len(c.b))
	}
	c.pos = off + n
	return s, nil
}

// ---- Reads ----

// ReadU8 reads a byte at the current position.
func (c *Cursor) ReadU8() (uint8, error) { return c.ReadU8At(c.pos) }

// ReadU8At reads a byte at off.
func (c *Cursor) ReadU8At(off int) (uint8, error) {
	s, err := c.span(off, 1)
	if err != nil {
		return 0, err
	}
	return s[0], nil
}

// ReadI8 reads a signed byte at the current position.
func (c *Cursor) ReadI8() (int8, error) { return c.ReadI8At(c.pos) }

// ReadI8At reads a signed byte at off.
func (c *Cursor) ReadI8At(off int) (int8, error) {
	v, err := c.ReadU8At(off)
	return int8(v), err
}

// ReadU16 reads a big-endian uint16 at the current position.
func (c *Cursor) ReadU16() (uint16, error) { return c.ReadU16At(c.pos) }

// ReadU16At reads a big-endian uint16 at off.
func (c *Cursor) ReadU16At(off int) (uint16, error) {
	s, err := c.span(off, 2)
	if err != nil {
		return 0, err
	}
	return U16BE(s), nil
}

// ReadI16 reads a big-endian int16 at the current position.
func (c *Cursor) ReadI16() (int16, error) { return c.ReadI16At(c.pos) }

// ReadI16At reads a big-endian int16 at off.
func (c *Cursor) ReadI16At(off int) (int16, error) {
	v, err := c.ReadU16At(off)
	return int16(v), err
}

// ReadU32 reads a big-endian uint32 at the current position.
func (c *Cursor) ReadU32() (uint32, error) { return c.ReadU32At(c.pos) }

// ReadU32At reads a big-endian uint32 at off.
func (c *Cursor) ReadU32At(off int) (uint32, error) {
	s, err := c.span(off, 4)
	if err != nil {
		return 0, err
	}
	return U32BE(s), nil
}

// ReadI32 reads a big-endian int32 at the current position.
func (c *Cursor) ReadI32() (int32, error) { return c.ReadI32At(c.pos) }

// ReadI32At reads a big-endian int32 at off.
func (c *Cursor) ReadI32At(off int) (int32, error) {
	v, err := c.ReadU32At(off)
	return int32(v), err
}

// ReadFixedString decodes n bytes at the current position as text.
func (c *Cursor) ReadFixedString(n int) (string, error) { return c.ReadFixedStringAt(n, c.pos) }

// ReadFixedStringAt decodes n bytes at off as text.
func (c *Cursor) ReadFixedStringAt(n, off int) (string, error) {
	s, err := c.span(off, n)
	if err != nil {
		return "", err
	}
	decoded, err := c.enc.NewDecoder().Bytes(s)
	if err != nil {
		return "", fmt.Errorf("buf: decode string at %d: %w", off, err)
	}
	return string(decoded), nil
}

// ---- Writes ----

// put reserves n bytes at off for a write, recording the first failure.
func (c *Cursor) put(off, n int) []byte {
	if c.err != nil {
		return nil
	}
	s, err := c.span(off, n)
	if err != nil {
		c.err = err
		return nil
	}
	return s
}

// WriteU8 writes v at the current position.
func (c *Cursor) WriteU8(v uint8) *Cursor { return c.WriteU8At(v, c.pos) }

// WriteU8At writes v at off.
func (c *Cursor) WriteU8At(v uint8, off int) *Cursor {
	if s := c.put(off, 1); s != nil {
		s[0] = v
	}
	return c
}

// WriteI8 writes v at the current position.
func (c *Cursor) WriteI8(v int8) *Cursor { return c.WriteU8At(uint8(v), c.pos) }

// WriteI8At writes v at off.
func (c *Cursor) WriteI8At(v int8, off int) *Cursor { return c.WriteU8At(uint8(v), off) }

// WriteU16 writes v big-endian at the current position.
func (c *Cursor) WriteU16(v uint16) *Cursor { return c.WriteU16At(v, c.pos) }

// WriteU16At writes v big-endian at off.
func (c *Cursor) WriteU16At(v uint16, off int) *Cursor {
	if s := c.put(off, 2); s != nil {
		PutU16BE(s, v)
	}
	return c
}

// WriteI16 writes v big-endian at the current position.
func (c *Cursor) WriteI16(v int16) *Cursor { return c.WriteU16At(uint16(v), c.pos) }

// WriteI16At writes v big-endian at off.
func (c *Cursor) WriteI16At(v int16, off int) *Cursor { return c.WriteU16At(uint16(v), off) }

// WriteU32 writes v big-endian at the current position.
func (c *Cursor) WriteU32(v uint32) *Cursor { return c.WriteU32At(v, c.pos) }

// WriteU32At writes v big-endian at off.
func (c *Cursor) WriteU32At(v uint32, off int) *Cursor {
	if s := c.put(off, 4); s != nil {
		PutU32BE(s, v)
	}
	return c
}

// WriteI32 writes v big-endian at the current position.
func (c *Cursor) WriteI32(v int32) *Cursor { return c.WriteU32At(uint32(v), c.pos) }

// WriteI32At writes v big-endian at off.
func (c *Cursor) WriteI32At(v int32, off int) *Cursor { return c.WriteU32At(uint32(v), off) }

// WriteFixedString writes the encoded bytes of s at the current position.
func (c *Cursor) WriteFixedString(s string) *Cursor { return c.WriteFixedStringAt(s, c.pos) }

// WriteFixedStringAt writes the encoded bytes of s verbatim at off and
// advances by their length. No padding or truncation is applied.
func (c *Cursor) WriteFixedStringAt(s string, off int) *Cursor {
	if c.err != nil {
		return c
	}
	encoded, err := c.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		c.err = fmt.Errorf("buf: encode string at %d: %w", off, err)
		return c
	}
	if dst := c.put(off, len(encoded)); dst != nil {
		copy(dst, encoded)
	}
	return c
}
