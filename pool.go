package iso8583

import "sync"

// wireBufferPool reuses the scratch buffer Encode assembles a message into
// before it is copied out and returned to the caller. A worked financial
// request/response (MTI + primary/secondary bitmap + a handful of DE 2-128
// fields) rarely exceeds a few hundred bytes, so the pool seeds buffers at
// 256 bytes: enough to avoid a reallocation for the common case without
// over-provisioning for messages that never use it.
var wireBufferPool = sync.Pool{
	New: func() interface{} {
		buf := make([]byte, 256)
		return &buf
	},
}

// wireBufferPoolCap bounds what getWireBuffer/putWireBuffer will retain. A
// message carrying an LLLLLLVAR field (up to 999999 bytes) or a large DE 120
// PPN blob can legitimately grow a scratch buffer far past the common case;
// pooling that buffer back would pin its backing array in the pool for
// every subsequent Encode call, most of which need only a few hundred
// bytes. Buffers that outgrow this bound are simply left for the garbage
// collector.
const wireBufferPoolCap = 4096

func getWireBuffer() []byte {
	buf := wireBufferPool.Get().(*[]byte)
	return (*buf)[:0]
}

func putWireBuffer(buf []byte) {
	if cap(buf) > wireBufferPoolCap {
		return
	}
	b := buf[:0]
	wireBufferPool.Put(&b)
}
