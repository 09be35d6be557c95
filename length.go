package radix4

import "math"

// remainderTable maps D%3 (data bytes remaining in an incomplete radix
// triple) to the number of extra characters emitted for them, counting one
// data character per byte plus one partial radix character: 0 data bytes
// need 0 chars, 1 needs 2, 2 need 3.
var remainderTable = [3]int{0, 2, 3}

// computeEncodedLength implements the length formula from spec.md §4.2.
// It is shared by the block encoder (which must pre-allocate) and by the
// public Codec.EncodedLen.
func computeEncodedLength(cfg *Config, data []byte) (int, error) {
	n := len(data)
	r := 0
	if cfg.optimistic {
		r = cfg.mapping.RadixFreePrefixLen(data)
	}
	d := n - r

	enc := r + (d/3)*4 + remainderTable[d%3]

	if cfg.terminated {
		enc++
	}
	if cfg.optimistic && (cfg.terminated || r < n) {
		enc++
	}

	if cfg.lineLength > 0 && enc > 0 {
		extra := ((enc - 1) / cfg.lineLength) * len(cfg.lineBreak)
		if extra < 0 || enc > math.MaxInt-extra {
			return 0, newErr(ErrBytesTooLong)
		}
		enc += extra
	}

	if enc < 0 {
		return 0, newErr(ErrBytesTooLong)
	}

	return enc, nil
}
