package radix4

import "fmt"

// Builder is a validating configuration builder producing a *Codec, the
// Go analogue of the source spec's Configuration Builder component. It
// starts from the default (block-mode) snapshot and accumulates setter
// calls. A setter given an invalid argument records the error, which Build
// then returns; all other checks run in Build.
type Builder struct {
	cfg *Config
	err error
}

// NewBuilder returns a Builder seeded with the default configuration:
// default mapping and alphabet, default whitespace set, '.' terminator,
// no line breaks, block mode, optimistic and terminated both on, and a
// 1024-byte stream buffer.
func NewBuilder() *Builder {
	cfg, err := defaultConfig()
	return &Builder{cfg: cfg, err: err}
}

// Mapping replaces the codec's Mapping.
func (b *Builder) Mapping(m *Mapping) *Builder {
	if b.err != nil {
		return b
	}
	if m == nil {
		b.err = newErr(ErrInvalidArgument)
		return b
	}
	b.cfg.mapping = m
	b.cfg.alphabetChars = m.alphabetChars()
	return b
}

// BufferSize sets the stream encoder's internal buffer size. It is
// rounded up to a multiple of 4 at Build time; it must be positive.
func (b *Builder) BufferSize(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n <= 0 {
		b.err = fmt.Errorf("%w: buffer size must be positive, got %d", ErrInvalidArgument, n)
		return b
	}
	b.cfg.bufferSize = n
	return b
}

// LineLength sets the line length after which a line break is inserted.
// 0 (the default) disables line breaks.
func (b *Builder) LineLength(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n < 0 {
		b.err = fmt.Errorf("%w: line length must be non-negative, got %d", ErrInvalidArgument, n)
		return b
	}
	b.cfg.lineLength = n
	return b
}

// LineBreak sets the line break byte sequence. Validated at Build time to
// be non-empty and whitespace-only.
func (b *Builder) LineBreak(lb []byte) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.lineBreak = append([]byte(nil), lb...)
	return b
}

// Whitespace replaces the whitespace set.
func (b *Builder) Whitespace(ws []byte) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.whitespace = append([]byte(nil), ws...)
	return b
}

// Streaming selects stream mode (true) or block mode (false).
func (b *Builder) Streaming(v bool) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.streaming = v
	return b
}

// Optimistic enables or disables the optimistic radix-free prefix.
func (b *Builder) Optimistic(v bool) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.optimistic = v
	return b
}

// Terminated enables or disables the trailing terminator.
func (b *Builder) Terminated(v bool) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.terminated = v
	return b
}

// Terminator sets the terminator byte.
func (b *Builder) Terminator(t byte) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.terminator = t
	return b
}

// Build validates the accumulated configuration and, on success, returns
// an immutable *Codec wrapping it. Validation failures use the Err*
// sentinels from errors.go: ErrInvalidMapping, ErrInvalidTerminator,
// ErrInvalidLineBreak, ErrInvalidWhitespace.
func (b *Builder) Build() (*Codec, error) {
	if b.err != nil {
		return nil, b.err
	}

	cfg := b.cfg.clone()
	cfg.bufferSize = roundUpToMultipleOf4(cfg.bufferSize)

	for _, c := range cfg.alphabetChars {
		if c >= 128 {
			return nil, fmt.Errorf("%w: non-ASCII alphabet byte %#02x", ErrInvalidMapping, c)
		}
	}

	tables, err := newAlphabetTable(cfg.mapping, cfg.whitespace, cfg.terminator)
	if err != nil {
		return nil, err
	}
	cfg.tables = tables

	if len(cfg.lineBreak) == 0 {
		return nil, fmt.Errorf("%w: line break must be non-empty", ErrInvalidLineBreak)
	}
	for _, lb := range cfg.lineBreak {
		if !containsByte(cfg.whitespace, lb) {
			return nil, fmt.Errorf("%w: line break byte %#02x is not in the whitespace set", ErrInvalidLineBreak, lb)
		}
	}

	return &Codec{cfg: cfg}, nil
}

func roundUpToMultipleOf4(n int) int {
	return (n + 3) &^ 3
}

func containsByte(set []byte, b byte) bool {
	for _, c := range set {
		if c == b {
			return true
		}
	}
	return false
}
