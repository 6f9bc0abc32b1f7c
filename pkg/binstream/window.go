package binstream

import (
	"github.com/dverbeek/binspect/internal/logger"
)

// Window is a bounded, non-owning view over a Cursor restricting reads
// to [current position, bound). Windows never carry a position of their
// own: every read advances the shared cursor, so sibling windows over
// one cursor observe each other's progress and must be read in the order
// they were derived. A single logical reader drives the whole window
// tree; interleaved reads from multiple goroutines corrupt the shared
// position and are unsupported.
type Window struct {
	label string
	cur   *Cursor
	bound int
}

// NewWindow creates a window covering the next n bytes of c. The bound
// is clamped to the buffer length.
func NewWindow(label string, c *Cursor, n int) *Window {
	bound := min(c.pos+n, len(c.data))
	logger.Debug("window created", "label", label, "pos", c.pos, "bound", bound)
	return &Window{label: label, cur: c, bound: bound}
}

// NewWindowToEnd creates a window covering the rest of the buffer.
func NewWindowToEnd(label string, c *Cursor) *Window {
	logger.Debug("window created", "label", label, "pos", c.pos, "bound", len(c.data))
	return &Window{label: label, cur: c, bound: len(c.data)}
}

// Sub creates a nested window covering the next n bytes. The child bound
// is limited only by the cursor's total length, not by the parent's
// bound: a child declared longer than its parent's remaining span reads
// on where the parent would refuse.
func (w *Window) Sub(label string, n int) *Window {
	return NewWindow(label, w.cur, n)
}

// SubToEnd creates a nested window covering the rest of the buffer.
func (w *Window) SubToEnd(label string) *Window {
	return NewWindowToEnd(label, w.cur)
}

// Label returns the diagnostic label given at construction.
func (w *Window) Label() string { return w.label }

// Bound returns the exclusive upper limit as an absolute offset.
func (w *Window) Bound() int { return w.bound }

// Remaining returns the number of bytes between the shared position and
// the bound.
func (w *Window) Remaining() int { return w.bound - w.cur.pos }

// HasMore reports whether at least one byte remains in the window.
func (w *Window) HasMore() bool { return w.cur.pos < w.bound }

// Has reports whether at least n bytes remain in the window.
func (w *Window) Has(n int) bool { return w.bound-w.cur.pos >= n }

func (w *Window) require(n int) error {
	if w.bound-w.cur.pos < n {
		return &BoundsError{Pos: w.cur.pos, Bound: w.bound, Need: n}
	}
	return nil
}

// Extend enlarges the bound by n bytes, clamped to the buffer length.
// Formats that declare their length incrementally grow their window as
// each length field arrives.
func (w *Window) Extend(n int) {
	w.bound = min(w.bound+n, len(w.cur.data))
	logger.Debug("window extended", "label", w.label, "by", n, "bound", w.bound)
}

// Skip advances the shared position by n bytes, checked against the
// window bound. Non-positive n is a no-op.
func (w *Window) Skip(n int) error {
	if n <= 0 {
		return nil
	}
	if err := w.require(n); err != nil {
		return err
	}
	w.cur.pos += n
	return nil
}

// SkipRest advances the shared position to the bound, consuming the
// window's remainder. A window already drained (or overshot through a
// sibling) is left alone.
func (w *Window) SkipRest() {
	if w.cur.pos < w.bound {
		w.cur.pos = w.bound
	}
}

// ReadUint8 reads one byte through the window.
func (w *Window) ReadUint8() (uint8, error) {
	if err := w.require(1); err != nil {
		return 0, err
	}
	return w.cur.ReadUint8()
}

// ReadUint16 reads a big-endian uint16 through the window.
func (w *Window) ReadUint16() (uint16, error) {
	if err := w.require(2); err != nil {
		return 0, err
	}
	return w.cur.ReadUint16()
}

// ReadUint24 reads a big-endian 24-bit integer through the window.
func (w *Window) ReadUint24() (uint32, error) {
	if err := w.require(3); err != nil {
		return 0, err
	}
	return w.cur.ReadUint24()
}

// ReadUint32 reads a big-endian uint32 through the window.
func (w *Window) ReadUint32() (uint32, error) {
	if err := w.require(4); err != nil {
		return 0, err
	}
	return w.cur.ReadUint32()
}

// ReadTag3 reads a 3-character tag identifier through the window.
func (w *Window) ReadTag3() (string, error) {
	if err := w.require(3); err != nil {
		return "", err
	}
	return w.cur.ReadTag3()
}

// ReadTag4 reads a 4-character tag identifier through the window.
func (w *Window) ReadTag4() (string, error) {
	if err := w.require(4); err != nil {
		return "", err
	}
	return w.cur.ReadTag4()
}

// Bytes returns the unread span [position, bound) as a view into the
// cursor's buffer. The position does not advance; callers combining
// Bytes with further reads skip explicitly.
func (w *Window) Bytes() []byte {
	if w.cur.pos >= w.bound {
		return nil
	}
	return w.cur.data[w.cur.pos:w.bound]
}
