package tlv

import "sync"

// writerPool reuses scratch writers for nested elements, whose value must be
// fully encoded before its TLV-LENGTH is known.
var writerPool = sync.Pool{
	New: func() any {
		// 512 bytes covers every management record short of long name lists.
		return &Writer{b: make([]byte, 0, 512)}
	},
}

// maxPooledCap keeps unusually large buffers from being retained by the pool.
const maxPooledCap = 64 * 1024

func getWriter() *Writer {
	return writerPool.Get().(*Writer)
}

func putWriter(w *Writer) {
	if cap(w.b) > maxPooledCap {
		return
	}
	w.Reset()
	writerPool.Put(w)
}
