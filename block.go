package radix4

// lineWriter writes single output characters into a pre-sized buffer,
// inserting the configured line-break sequence at the right physical
// cursor positions. It implements the insertion rule from spec.md §4.3
// step 5: before writing a character at cursor position p, if
// lineLength > 0 and p % (lineLength + len(lineBreak)) == lineLength,
// the line-break bytes are written first and the cursor advances past
// them. Used by the block encoder; StreamEncoder.putChar applies the same
// rule, so line-break placement is identical in both modes.
type lineWriter struct {
	out        []byte
	pos        int
	lineLength int
	lineBreak  []byte
}

func (w *lineWriter) put(b byte) {
	if w.lineLength > 0 {
		period := w.lineLength + len(w.lineBreak)
		if w.pos%period == w.lineLength {
			copy(w.out[w.pos:], w.lineBreak)
			w.pos += len(w.lineBreak)
		}
	}
	w.out[w.pos] = b
	w.pos++
}

// blockEncode implements the single-pass block encoder of spec.md §4.3.
func blockEncode(cfg *Config, data []byte) ([]byte, error) {
	encLen, err := computeEncodedLength(cfg, data)
	if err != nil {
		return nil, err
	}
	out := make([]byte, encLen)
	w := &lineWriter{out: out, lineLength: cfg.lineLength, lineBreak: cfg.lineBreak}

	n := len(data)
	i := 0
	if cfg.optimistic {
		for i < n && cfg.mapping.IsRadixFree(data[i]) {
			m := cfg.mapping.MapByte(data[i])
			w.put(cfg.alphabetChars[m&0x3F])
			i++
		}
		if i < n || cfg.terminated {
			w.put(cfg.terminator)
		}
	}

	remaining := data[i:]
	for _, b := range remaining {
		m := cfg.mapping.MapByte(b)
		w.put(cfg.alphabetChars[m&0x3F])
	}

	var radix byte
	triple := 0
	for _, b := range remaining {
		m := cfg.mapping.MapByte(b)
		radix |= (m & 0xC0) >> uint((triple+1)*2)
		triple++
		if triple == 3 {
			w.put(cfg.alphabetChars[radix])
			radix = 0
			triple = 0
		}
	}
	if triple != 0 {
		w.put(cfg.alphabetChars[radix])
	}

	if cfg.terminated {
		w.put(cfg.terminator)
	}

	return out, nil
}

// blockDecode implements the block decoder of spec.md §4.4.
func blockDecode(cfg *Config, input []byte, stripWhitespace bool) ([]byte, error) {
	buf, err := cleanInput(cfg, input, stripWhitespace)
	if err != nil {
		return nil, err
	}

	length := len(buf)
	if cfg.terminated {
		if length == 0 || buf[length-1] != cfg.terminator {
			return nil, newErr(ErrMissingTerminator)
		}
		length--
	}

	firstRadix := 0
	markerLen := 0
	if cfg.optimistic {
		markerPos := -1
		for i := length - 1; i >= 0; i-- {
			if buf[i] == cfg.terminator {
				markerPos = i
				break
			}
		}
		if markerPos >= 0 {
			firstRadix = markerPos
			markerLen = 1
			if firstRadix == length-1 {
				// The marker was superfluous (all input was radix-free but a
				// marker was still forced by terminated mode); drop it.
				length = firstRadix
				markerLen = 0
			}
		} else {
			firstRadix = length
		}
	}

	regionStart := firstRadix + markerLen
	d := length - regionStart
	if d%4 == 1 {
		return nil, newErr(ErrInvalidLength)
	}
	dataLen := d * 3 / 4

	out := make([]byte, firstRadix+dataLen)

	for i := 0; i < firstRadix; i++ {
		idx := cfg.tables.indexOf(buf[i])
		if idx < 0 {
			return nil, classifyBadChar(cfg, buf[i], i)
		}
		out[i] = cfg.mapping.Unmap(byte(idx))
	}

	dataStart := regionStart
	radixStart := regionStart + dataLen
	var radix byte
	for j := 0; j < dataLen; j++ {
		k := j % 3
		if k == 0 {
			ridx := cfg.tables.indexOf(buf[radixStart+j/3])
			if ridx < 0 {
				return nil, classifyBadChar(cfg, buf[radixStart+j/3], radixStart+j/3)
			}
			radix = byte(ridx)
		}
		didx := cfg.tables.indexOf(buf[dataStart+j])
		if didx < 0 {
			return nil, classifyBadChar(cfg, buf[dataStart+j], dataStart+j)
		}
		top2 := (radix << uint((k+1)*2)) & 0xC0
		m := (byte(didx) & 0x3F) | top2
		out[firstRadix+j] = cfg.mapping.Unmap(m)
	}

	return out, nil
}

// cleanInput validates that every byte of input is ASCII and, if
// stripWhitespace is set, removes whitespace-set bytes.
func cleanInput(cfg *Config, input []byte, stripWhitespace bool) ([]byte, error) {
	for i, b := range input {
		if b >= 128 {
			return nil, newErrAtByte(ErrInvalidCharacter, i, b)
		}
	}
	if !stripWhitespace {
		return input, nil
	}
	out := make([]byte, 0, len(input))
	for _, b := range input {
		if cfg.tables.isWhitespace[b] {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

// classifyBadChar turns a non-alphabet byte encountered mid-decode into the
// appropriate CodecError: a terminator found where one is not allowed is a
// MisplacedTerminator, anything else is an InvalidCharacter.
func classifyBadChar(cfg *Config, b byte, offset int) error {
	if b == cfg.terminator {
		return newErrAtByte(ErrMisplacedTerminator, offset, b)
	}
	return newErrAtByte(ErrInvalidCharacter, offset, b)
}
