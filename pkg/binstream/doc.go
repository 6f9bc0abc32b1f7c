// Package binstream provides forward-only reading of binary container
// formats held fully in memory.
//
// A Cursor owns a byte buffer and the single read position over it.
// Windows restrict reads to a sub-range of the buffer and nest
// recursively; every read issued through a window still advances the one
// shared cursor position, so a window tree is traversed by a single
// logical reader in declaration order:
//
//	c := binstream.NewCursor(data)
//	header := binstream.NewWindow("header", c, 10)
//	id, err := header.ReadTag4()
//	size, err := header.ReadUint32()
//	frame := binstream.NewWindow("frame", c, int(size))
//	title, err := frame.ReadZStringUTF16(false)
//
// All multi-byte integers are big-endian, as used by tagged-chunk file
// formats. A read that would cross the active boundary fails with a
// BoundsError carrying the position, the limit in effect and the
// requested size; no partial value is ever returned.
//
// Text decoding covers ISO-8859-1, UTF-8 and UTF-16, each in
// whole-window and zero-terminated flavors. The UTF-16 reader infers
// byte order from a byte-order mark and tolerates the double-encoded
// mark some tag writers emit.
package binstream
