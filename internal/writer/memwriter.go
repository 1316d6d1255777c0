package writer

// MemWriter captures section bytes in memory.
type MemWriter struct {
	Buf []byte
}

// WriteSection stores a copy of buf, replacing anything written before.
func (w *MemWriter) WriteSection(buf []byte) error {
	w.Buf = append(w.Buf[:0], buf...)
	return nil
}
