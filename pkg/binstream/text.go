package binstream

import (
	"encoding/binary"
	"unicode/utf16"
)

// ReadStringLatin1 decodes the entire remaining window as ISO-8859-1,
// one byte per code point, and advances the position to the bound.
func (w *Window) ReadStringLatin1() string {
	s := latin1(w.Bytes())
	w.SkipRest()
	return s
}

// ReadStringUTF8 decodes the entire remaining window as UTF-8. The
// position does not advance; unlike ReadStringLatin1 the caller skips
// past the text explicitly.
func (w *Window) ReadStringUTF8() string {
	return string(w.Bytes())
}

// ReadStringUTF16 decodes the entire remaining window as UTF-16. A
// leading byte-order mark selects the byte order and is dropped from the
// result; without one the text is taken as little-endian. The position
// does not advance, matching ReadStringUTF8.
func (w *Window) ReadStringUTF16() string {
	b := w.Bytes()
	bigEndian := false
	if len(b) >= 2 {
		switch {
		case b[0] == 0xFE && b[1] == 0xFF:
			bigEndian = true
			b = b[2:]
		case b[0] == 0xFF && b[1] == 0xFE:
			b = b[2:]
		}
	}
	return decodeUTF16(b, bigEndian)
}

// ReadZStringLatin1 reads ISO-8859-1 text up to a zero terminator. The
// terminator is consumed and excluded from the result. When the window
// ends before a terminator the accumulated text is returned iff
// allowShort is true; otherwise the read fails.
func (w *Window) ReadZStringLatin1(allowShort bool) (string, error) {
	var s []rune
	for w.HasMore() {
		b, err := w.ReadUint8()
		if err != nil {
			return "", err
		}
		if b == 0 {
			return string(s), nil
		}
		s = append(s, rune(b))
	}
	if !allowShort {
		return "", &BoundsError{Pos: w.cur.pos, Bound: w.bound, Need: 1}
	}
	return string(s), nil
}

// ReadZStringUTF8 reads UTF-8 text up to a zero terminator. The scan
// advances byte by byte; on success the span before the terminator is
// decoded and the terminator consumed. Exhaustion without a terminator
// follows the allowShort rule of ReadZStringLatin1.
func (w *Window) ReadZStringUTF8(allowShort bool) (string, error) {
	start := w.cur.pos
	for w.HasMore() {
		b, err := w.ReadUint8()
		if err != nil {
			return "", err
		}
		if b == 0 {
			return string(w.cur.data[start : w.cur.pos-1]), nil
		}
	}
	if !allowShort {
		return "", &BoundsError{Pos: w.cur.pos, Bound: w.bound, Need: 1}
	}
	return string(w.cur.data[start:w.cur.pos]), nil
}

// ReadZStringUTF16 reads UTF-16 text up to a 0x0000 terminator, which is
// consumed and excluded.
//
// Byte order is inferred from a byte-order mark: 0xFF,0xFE selects
// little-endian (also the default without a mark), 0xFE,0xFF big-endian.
// A mark restarts the decoded span, so anything read before it is
// dropped. The pair 0xFF,0x00 appears in real-world tags where a writer
// encoded the mark itself as UTF-16 text; the pair that follows it is
// consumed as the actual mark and decoding stays little-endian.
//
// Exhaustion before a terminator follows the allowShort rule; an odd
// dangling byte at the window end is ignored.
func (w *Window) ReadZStringUTF16(allowShort bool) (string, error) {
	c := w.cur
	from := c.pos
	bigEndian := false
	for w.Has(2) {
		b1, b2 := c.data[c.pos], c.data[c.pos+1]
		c.pos += 2
		switch {
		case b1 == 0xFF && b2 == 0x00:
			// double-encoded mark, swallow the real one behind it
			if w.Has(2) {
				c.pos += 2
			}
			from = c.pos
		case b1 == 0xFF && b2 == 0xFE:
			from = c.pos
		case b1 == 0xFE && b2 == 0xFF:
			bigEndian = true
			from = c.pos
		case b1 == 0x00 && b2 == 0x00:
			return decodeUTF16(c.data[from:c.pos-2], bigEndian), nil
		}
	}
	if !allowShort {
		return "", &BoundsError{Pos: c.pos, Bound: w.bound, Need: 2}
	}
	if from >= w.bound {
		// A sibling window or the raw cursor overshot the bound; there
		// is nothing left to decode.
		return "", nil
	}
	return decodeUTF16(c.data[from:w.bound], bigEndian), nil
}

// decodeUTF16 pairs b into code units in the given byte order and
// decodes them to a string. An odd trailing byte is dropped. Unpaired
// surrogates come out as U+FFFD.
func decodeUTF16(b []byte, bigEndian bool) string {
	if len(b)%2 != 0 {
		b = b[:len(b)-1]
	}
	u := make([]uint16, len(b)/2)
	for i := range u {
		if bigEndian {
			u[i] = binary.BigEndian.Uint16(b[2*i:])
		} else {
			u[i] = binary.LittleEndian.Uint16(b[2*i:])
		}
	}
	return string(utf16.Decode(u))
}

func latin1(b []byte) string {
	s := make([]rune, len(b))
	for i, c := range b {
		s[i] = rune(c)
	}
	return string(s)
}
