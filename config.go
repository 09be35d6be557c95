package radix4

// Config is an immutable configuration snapshot produced by Builder.Build.
// Once built it is never mutated, so a *Config (and any *Codec wrapping
// one) may be shared freely across goroutines.
type Config struct {
	mapping       *Mapping
	tables        *alphabetTable
	whitespace    []byte
	terminator    byte
	lineLength    int
	lineBreak     []byte
	streaming     bool
	optimistic    bool
	terminated    bool
	bufferSize    int
	alphabetChars [AlphabetSize]byte
}

const defaultStreamBufferSize = 1024

// defaultConfig returns the Builder's starting snapshot before any setters
// are applied: default mapping, default whitespace, '.' terminator, no
// line breaks, optimistic+terminated both on, buffer size 1024.
func defaultConfig() (*Config, error) {
	mapping, err := NewMapping(defaultAlphabetChars)
	if err != nil {
		return nil, err
	}
	tables, err := newAlphabetTable(mapping, DefaultWhitespace, DefaultTerminator)
	if err != nil {
		return nil, err
	}
	return &Config{
		mapping:       mapping,
		tables:        tables,
		whitespace:    append([]byte(nil), DefaultWhitespace...),
		terminator:    DefaultTerminator,
		lineLength:    0,
		lineBreak:     []byte{'\n'},
		streaming:     false,
		optimistic:    true,
		terminated:    true,
		bufferSize:    defaultStreamBufferSize,
		alphabetChars: mapping.alphabetChars(),
	}, nil
}

func (c *Config) clone() *Config {
	cp := *c
	cp.whitespace = append([]byte(nil), c.whitespace...)
	cp.lineBreak = append([]byte(nil), c.lineBreak...)
	return &cp
}
