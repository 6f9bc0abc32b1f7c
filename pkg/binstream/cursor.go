package binstream

import "encoding/binary"

// Cursor provides sequential big-endian reading of an in-memory byte
// buffer. It holds the single read position shared by every Window
// derived from it. The buffer is set once at construction and never
// resized.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor wraps data with the position at 0. The cursor keeps a
// reference to data rather than copying it.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Len returns the total buffer length.
func (c *Cursor) Len() int { return len(c.data) }

// Position returns the current absolute read position.
func (c *Cursor) Position() int { return c.pos }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// HasMore reports whether at least one unread byte remains.
func (c *Cursor) HasMore() bool { return c.pos < len(c.data) }

// Has reports whether at least n unread bytes remain.
func (c *Cursor) Has(n int) bool { return len(c.data)-c.pos >= n }

// Seek restores a previously observed position. Callers needing
// lookahead snapshot Position before reading and Seek back afterwards;
// there is no other way to rewind.
func (c *Cursor) Seek(pos int) error {
	if pos < 0 || pos > len(c.data) {
		return &BoundsError{Pos: pos, Bound: len(c.data)}
	}
	c.pos = pos
	return nil
}

// require checks that n bytes are available at the current position.
// The position is untouched on failure.
func (c *Cursor) require(n int) error {
	if len(c.data)-c.pos < n {
		return &BoundsError{Pos: c.pos, Bound: len(c.data), Need: n}
	}
	return nil
}

// ReadUint8 reads one byte and advances the position by 1.
func (c *Cursor) ReadUint8() (uint8, error) {
	if err := c.require(1); err != nil {
		return 0, err
	}
	v := c.data[c.pos]
	c.pos++
	return v, nil
}

// ReadUint16 reads a big-endian uint16 and advances the position by 2.
func (c *Cursor) ReadUint16() (uint16, error) {
	if err := c.require(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(c.data[c.pos:])
	c.pos += 2
	return v, nil
}

// ReadUint24 reads a big-endian 24-bit integer and advances the position
// by 3. Tagged formats use 3-byte sizes where the top bit of each byte
// is reserved; composing them is the caller's concern.
func (c *Cursor) ReadUint24() (uint32, error) {
	if err := c.require(3); err != nil {
		return 0, err
	}
	v := uint32(c.data[c.pos])<<16 | uint32(c.data[c.pos+1])<<8 | uint32(c.data[c.pos+2])
	c.pos += 3
	return v, nil
}

// ReadUint32 reads a big-endian uint32 and advances the position by 4.
func (c *Cursor) ReadUint32() (uint32, error) {
	if err := c.require(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(c.data[c.pos:])
	c.pos += 4
	return v, nil
}

// ReadTag3 reads a 3-character tag identifier. Each byte maps directly
// to one code point with no encoding validation, so identifiers with
// bytes above 0x7F round-trip unchanged.
func (c *Cursor) ReadTag3() (string, error) { return c.readTag(3) }

// ReadTag4 reads a 4-character tag identifier.
func (c *Cursor) ReadTag4() (string, error) { return c.readTag(4) }

func (c *Cursor) readTag(n int) (string, error) {
	if err := c.require(n); err != nil {
		return "", err
	}
	s := make([]rune, n)
	for i := 0; i < n; i++ {
		s[i] = rune(c.data[c.pos+i])
	}
	c.pos += n
	return string(s), nil
}

// Skip advances the position by n bytes without reading. Non-positive n
// is a no-op.
func (c *Cursor) Skip(n int) error {
	if n <= 0 {
		return nil
	}
	if err := c.require(n); err != nil {
		return err
	}
	c.pos += n
	return nil
}

// ScanUint24 consumes bytes until the last three compose want, masked to
// 24 bits. Returns true with the position just past the match, or false
// with the position at the buffer end if want never appears. The rolling
// window handles overlapping candidates: scanning for 0xAABBAA over
// AA AA BB AA matches at the final byte.
func (c *Cursor) ScanUint24(want uint32) bool {
	var window uint32
	for c.HasMore() {
		window = (window<<8 | uint32(c.data[c.pos])) & 0xFFFFFF
		c.pos++
		if window == want {
			return true
		}
	}
	return false
}

// ScanUint32 is ScanUint24 over a four-byte rolling window.
func (c *Cursor) ScanUint32(want uint32) bool {
	var window uint32
	for c.HasMore() {
		window = window<<8 | uint32(c.data[c.pos])
		c.pos++
		if window == want {
			return true
		}
	}
	return false
}
