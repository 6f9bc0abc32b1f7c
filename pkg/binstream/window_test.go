package binstream

import (
	"bytes"
	"errors"
	"testing"
)

func TestWindowContainment(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06})
	if err := c.Skip(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := NewWindow("body", c, 3)
	if w.Bound() != 5 {
		t.Errorf("expected bound 5, got %d", w.Bound())
	}
	// Exactly 3 bytes readable, then the window is spent.
	for i := 0; i < 3; i++ {
		if !w.HasMore() {
			t.Fatalf("expected HasMore after %d reads", i)
		}
		if _, err := w.ReadUint8(); err != nil {
			t.Fatalf("read %d: unexpected error: %v", i, err)
		}
	}
	if w.HasMore() {
		t.Error("expected window exhausted")
	}
	if !c.HasMore() {
		t.Error("cursor itself still has a byte past the window")
	}
	if _, err := w.ReadUint8(); !errors.Is(err, ErrShortRead) {
		t.Errorf("expected ErrShortRead past bound, got %v", err)
	}
}

func TestWindowToEnd(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x04})
	if err := c.Skip(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := NewWindowToEnd("rest", c)
	if w.Bound() != 4 {
		t.Errorf("expected bound 4, got %d", w.Bound())
	}
	if w.Remaining() != 3 {
		t.Errorf("expected remaining 3, got %d", w.Remaining())
	}
}

func TestWindowClampsToBuffer(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03})
	w := NewWindow("huge", c, 100)
	if w.Bound() != 3 {
		t.Errorf("expected bound clamped to 3, got %d", w.Bound())
	}
}

func TestWindowSharedPosition(t *testing.T) {
	// Sibling windows share the cursor position: reads through one are
	// visible as lost capacity in the other.
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06})
	a := NewWindow("a", c, 4)
	b := NewWindow("b", c, 6)
	if _, err := a.ReadUint16(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Remaining() != 4 {
		t.Errorf("expected sibling remaining 4, got %d", b.Remaining())
	}
	if _, err := b.ReadUint16(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Remaining() != 0 {
		t.Errorf("expected first window drained, got remaining %d", a.Remaining())
	}
}

func TestSubWindowNotClampedToParent(t *testing.T) {
	// A child window is capped by the buffer, not by its parent: a child
	// declared longer than the parent's remaining span reads past where
	// the parent would refuse.
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})
	parent := NewWindow("parent", c, 2)
	child := parent.Sub("child", 6)
	if child.Bound() != 6 {
		t.Errorf("expected child bound 6, got %d", child.Bound())
	}
	if _, err := child.ReadUint32(); err != nil {
		t.Fatalf("read past parent bound should succeed: %v", err)
	}
	if parent.Remaining() != -2 {
		t.Errorf("expected parent overshot by 2, got remaining %d", parent.Remaining())
	}
	if parent.HasMore() {
		t.Error("overshot parent must not report more data")
	}
}

func TestSubWindowToEnd(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x04})
	parent := NewWindow("parent", c, 2)
	child := parent.SubToEnd("child")
	if child.Bound() != 4 {
		t.Errorf("expected child bound 4, got %d", child.Bound())
	}
}

func TestWindowReads(t *testing.T) {
	data := []byte{0xAB, 0x01, 0x02, 0x01, 0x02, 0x03, 0x01, 0x02, 0x03, 0x04, 'T', 'I', 'T', '2'}
	c := NewCursor(data)
	w := NewWindowToEnd("all", c)

	v8, err := w.ReadUint8()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v8 != 0xAB {
		t.Errorf("expected 0xAB, got 0x%02X", v8)
	}
	v16, err := w.ReadUint16()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v16 != 0x0102 {
		t.Errorf("expected 0x0102, got 0x%04X", v16)
	}
	v24, err := w.ReadUint24()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v24 != 0x010203 {
		t.Errorf("expected 0x010203, got 0x%06X", v24)
	}
	v32, err := w.ReadUint32()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v32 != 0x01020304 {
		t.Errorf("expected 0x01020304, got 0x%08X", v32)
	}
	tag, err := w.ReadTag4()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag != "TIT2" {
		t.Errorf("expected TIT2, got %q", tag)
	}
	if w.HasMore() {
		t.Error("expected window exhausted")
	}
}

func TestWindowShortReadLeavesPosition(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x04})
	w := NewWindow("small", c, 2)
	_, err := w.ReadUint32()
	var be *BoundsError
	if !errors.As(err, &be) {
		t.Fatalf("expected BoundsError, got %v", err)
	}
	if be.Pos != 0 || be.Bound != 2 || be.Need != 4 {
		t.Errorf("unexpected fields: pos=%d bound=%d need=%d", be.Pos, be.Bound, be.Need)
	}
	if c.Position() != 0 {
		t.Errorf("failed read moved position to %d", c.Position())
	}
	// The cursor alone could satisfy the read; the window bound refuses it.
	if _, err := c.ReadUint32(); err != nil {
		t.Errorf("raw cursor read should succeed: %v", err)
	}
}

func TestWindowSkip(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x04})
	w := NewWindow("w", c, 3)
	if err := w.Skip(-1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Skip(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Position() != 2 {
		t.Errorf("expected position 2, got %d", c.Position())
	}
	if err := w.Skip(2); !errors.Is(err, ErrShortRead) {
		t.Errorf("expected ErrShortRead, got %v", err)
	}
}

func TestWindowSkipRest(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
	w := NewWindow("w", c, 4)
	if _, err := w.ReadUint8(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w.SkipRest()
	if c.Position() != 4 {
		t.Errorf("expected position 4, got %d", c.Position())
	}
	// Idempotent once drained.
	w.SkipRest()
	if c.Position() != 4 {
		t.Errorf("expected position still 4, got %d", c.Position())
	}
}

func TestWindowExtend(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06})
	w := NewWindow("w", c, 2)
	if _, err := w.ReadUint32(); err == nil {
		t.Fatal("expected short read before extend")
	}
	w.Extend(2)
	if w.Bound() != 4 {
		t.Errorf("expected bound 4, got %d", w.Bound())
	}
	if _, err := w.ReadUint32(); err != nil {
		t.Fatalf("unexpected error after extend: %v", err)
	}
	// Extending past the buffer clamps.
	w.Extend(100)
	if w.Bound() != 6 {
		t.Errorf("expected bound clamped to 6, got %d", w.Bound())
	}
}

func TestWindowBytes(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
	if err := c.Skip(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := NewWindow("w", c, 3)
	b := w.Bytes()
	if !bytes.Equal(b, []byte{0x02, 0x03, 0x04}) {
		t.Errorf("unexpected bytes: %v", b)
	}
	// Bytes does not advance; the same span reads again.
	if c.Position() != 1 {
		t.Errorf("Bytes moved position to %d", c.Position())
	}
	if !bytes.Equal(w.Bytes(), b) {
		t.Error("expected identical span on second call")
	}
	w.SkipRest()
	if w.Bytes() != nil {
		t.Error("expected nil span on drained window")
	}
}

func TestWindowLabel(t *testing.T) {
	c := NewCursor(nil)
	w := NewWindow("frame-header", c, 0)
	if w.Label() != "frame-header" {
		t.Errorf("unexpected label %q", w.Label())
	}
}
