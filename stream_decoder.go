package radix4

// StreamDecoder is a stateful, incremental Radix4 decoder, the mirror of
// StreamEncoder. It pulls symbols from a source one at a time, skipping
// whitespace, and reconstructs bytes as soon as enough input has arrived.
//
// Like StreamEncoder, a StreamDecoder is single-owner (spec.md §5).
type StreamDecoder struct {
	cfg     *Config
	byteSrc ByteSource
	charSrc CharSource

	radixFree bool
	done      bool

	i, j int
	bs   [3]byte
}

func newStreamDecoder(cfg *Config, byteSrc ByteSource, charSrc CharSource) *StreamDecoder {
	return &StreamDecoder{
		cfg:       cfg,
		byteSrc:   byteSrc,
		charSrc:   charSrc,
		radixFree: cfg.optimistic,
	}
}

func (d *StreamDecoder) nextRaw() (int, error) {
	if d.byteSrc != nil {
		return d.byteSrc.Next()
	}
	return d.charSrc.Next()
}

// nextSymbol returns the next non-whitespace ASCII input byte. ok is false
// with a nil error at end of input.
func (d *StreamDecoder) nextSymbol() (b byte, ok bool, err error) {
	for {
		v, err := d.nextRaw()
		if err != nil {
			return 0, false, err
		}
		if v < 0 {
			return 0, false, nil
		}
		if v > 255 {
			return 0, false, newErr(ErrInvalidCharacter)
		}
		b := byte(v)
		if d.cfg.tables.isWhitespace[b] {
			continue
		}
		return b, true, nil
	}
}

// ReadByte returns the next decoded byte. ok is false with a nil error at
// a clean end of stream.
func (d *StreamDecoder) ReadByte() (b byte, ok bool, err error) {
	for {
		if d.i < d.j {
			out := d.bs[d.i]
			d.i++
			return out, true, nil
		}
		if d.done {
			return 0, false, nil
		}
		if d.radixFree {
			produced, eos, rerr := d.readRadixFreeByte()
			if rerr != nil {
				return 0, false, rerr
			}
			if eos {
				return 0, false, nil
			}
			if d.radixFree {
				// got a real byte
				return produced, true, nil
			}
			// transitioned out of radix-free mode with no byte produced;
			// loop around into triple mode.
			continue
		}
		if err := d.fillTriple(); err != nil {
			return 0, false, err
		}
		// loop back: either d.i < d.j now, or d.done was set (clean EOS).
	}
}

// readRadixFreeByte reads one symbol while still in the optimistic prefix.
// If the symbol is the terminator marker, it flips radixFree off and
// returns eos=false with no byte (caller should retry in triple mode).
func (d *StreamDecoder) readRadixFreeByte() (produced byte, eos bool, err error) {
	sym, ok, err := d.nextSymbol()
	if err != nil {
		return 0, false, err
	}
	if !ok {
		if d.cfg.terminated {
			return 0, false, newErr(ErrUnexpectedEndOfInput)
		}
		d.done = true
		return 0, true, nil
	}
	if d.cfg.tables.isTerminator(sym) {
		d.radixFree = false
		return 0, false, nil
	}
	idx := d.cfg.tables.indexOf(sym)
	if idx < 0 {
		return 0, false, newErr(ErrInvalidCharacter)
	}
	return d.cfg.mapping.Unmap(byte(idx)), false, nil
}

// fillTriple reads one radix character followed by up to three data
// characters and reconstructs d.bs[0:n], setting d.i=0, d.j=n. It sets
// d.done instead when the stream ends cleanly at a group boundary.
func (d *StreamDecoder) fillTriple() error {
	sym, ok, err := d.nextSymbol()
	if err != nil {
		return err
	}
	if !ok {
		if d.cfg.terminated {
			return newErr(ErrUnexpectedEndOfInput)
		}
		d.done = true
		return nil
	}
	if d.cfg.tables.isTerminator(sym) {
		if !d.cfg.terminated {
			return newErr(ErrMisplacedTerminator)
		}
		d.done = true
		return nil
	}
	ridx := d.cfg.tables.indexOf(sym)
	if ridx < 0 {
		return newErr(ErrInvalidCharacter)
	}
	radix := byte(ridx)

	n := 0
	endOfStream := false
	for n < 3 {
		dsym, dok, derr := d.nextSymbol()
		if derr != nil {
			return derr
		}
		if !dok {
			if d.cfg.terminated {
				return newErr(ErrUnexpectedEndOfInput)
			}
			endOfStream = true
			break
		}
		if d.cfg.tables.isTerminator(dsym) {
			if !d.cfg.terminated {
				return newErr(ErrMisplacedTerminator)
			}
			endOfStream = true
			break
		}
		didx := d.cfg.tables.indexOf(dsym)
		if didx < 0 {
			return newErr(ErrInvalidCharacter)
		}
		top2 := (radix << uint((n+1)*2)) & 0xC0
		d.bs[n] = d.cfg.mapping.Unmap((byte(didx) & 0x3F) | top2)
		n++
	}

	if n == 0 {
		return newErr(ErrInvalidLength)
	}

	d.i, d.j = 0, n
	if endOfStream {
		d.done = true
	}
	return nil
}
