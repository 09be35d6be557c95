package radix4

import (
	"io"
	"strings"
)

// Codec is the immutable facade over a Config, dispatching each batch or
// streaming operation to the block or stream engine as configured. Like
// Config, a *Codec is safe to share across goroutines: every method either
// reads cfg or allocates fresh, single-owner state.
type Codec struct {
	cfg *Config
}

// Block is the default block-mode codec (optimistic, terminated, '.'
// terminator, default alphabet and whitespace, no line breaks).
var Block = mustBuildDefault(false)

// Stream is the default stream-mode codec, otherwise identical to Block.
var Stream = mustBuildDefault(true)

func mustBuildDefault(streaming bool) *Codec {
	b := NewBuilder()
	b.Streaming(streaming)
	c, err := b.Build()
	if err != nil {
		panic("radix4: default codec construction failed: " + err.Error())
	}
	return c
}

// EncodedLen returns the number of bytes EncodeToBytes would produce for
// data, without performing the encode.
func (c *Codec) EncodedLen(data []byte) (int, error) {
	if data == nil {
		return 0, newErr(ErrInvalidArgument)
	}
	return computeEncodedLength(c.cfg, data)
}

// EncodeToBytes encodes data and returns the result as a fresh byte slice.
func (c *Codec) EncodeToBytes(data []byte) ([]byte, error) {
	if data == nil {
		return nil, newErr(ErrInvalidArgument)
	}
	if !c.cfg.streaming {
		return blockEncode(c.cfg, data)
	}
	enc := c.NewStreamEncoderToBytes()
	if _, err := enc.Write(data); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return enc.Bytes(), nil
}

// EncodeToString encodes data and returns the result as a string.
func (c *Codec) EncodeToString(data []byte) (string, error) {
	b, err := c.EncodeToBytes(data)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeFromBytes decodes data, skipping whitespace-set bytes, and returns
// the reconstructed original bytes.
func (c *Codec) DecodeFromBytes(data []byte) ([]byte, error) {
	if data == nil {
		return nil, newErr(ErrInvalidArgument)
	}
	if !c.cfg.streaming {
		return blockDecode(c.cfg, data, true)
	}
	return c.decodeStream(NewBytesSource(data))
}

// DecodeFromString decodes s, skipping whitespace-set bytes, and returns
// the reconstructed original bytes.
func (c *Codec) DecodeFromString(s string) ([]byte, error) {
	if !c.cfg.streaming {
		return blockDecode(c.cfg, []byte(s), true)
	}
	return c.decodeStream(NewCharsSourceAsBytes(s))
}

func (c *Codec) decodeStream(src ByteSource) ([]byte, error) {
	dec := newStreamDecoder(c.cfg, src, nil)
	out := make([]byte, 0, 64)
	for {
		b, ok, err := dec.ReadByte()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, b)
	}
}

// BytesEncoder is a StreamEncoder whose sink is an in-memory byte buffer,
// returned by Codec.NewStreamEncoderToBytes.
type BytesEncoder struct {
	*StreamEncoder
	sink *bytesSink
}

// Bytes returns everything written (and flushed) to the sink so far.
func (e *BytesEncoder) Bytes() []byte { return e.sink.Bytes() }

// NewStreamEncoderToBytes returns a stream encoder writing into an
// internal, growable byte buffer retrievable via Bytes().
func (c *Codec) NewStreamEncoderToBytes() *BytesEncoder {
	sink := newBytesSink()
	return &BytesEncoder{StreamEncoder: newStreamEncoder(c.cfg, sink, nil), sink: sink}
}

// NewStreamEncoderToWriter returns a stream encoder writing through w.
func (c *Codec) NewStreamEncoderToWriter(w io.Writer) *StreamEncoder {
	return newStreamEncoder(c.cfg, NewWriterByteSink(w), nil)
}

// NewStreamEncoderToBuilder returns a stream encoder appending to b.
func (c *Codec) NewStreamEncoderToBuilder(b *strings.Builder) *StreamEncoder {
	return newStreamEncoder(c.cfg, nil, NewBuilderCharSink(b))
}

// NewStreamDecoderFromBytes returns a stream decoder reading data.
func (c *Codec) NewStreamDecoderFromBytes(data []byte) *StreamDecoder {
	return newStreamDecoder(c.cfg, NewBytesSource(data), nil)
}

// NewStreamDecoderFromReader returns a stream decoder reading from r.
func (c *Codec) NewStreamDecoderFromReader(r io.Reader) *StreamDecoder {
	return newStreamDecoder(c.cfg, NewReaderByteSource(r), nil)
}

// NewStreamDecoderFromChars returns a stream decoder reading the runes of
// s, the input-from-chars adapter of spec.md §6.
func (c *Codec) NewStreamDecoderFromChars(s string) *StreamDecoder {
	return newStreamDecoder(c.cfg, nil, NewCharsSource(s))
}

// NewCharsSourceAsBytes adapts a string's runes into a ByteSource,
// rejecting any code point outside 0..255 as InvalidCharacter. Used by the
// batch DecodeFromString path, which works in terms of bytes internally.
func NewCharsSourceAsBytes(s string) ByteSource {
	return &runeByteSource{runes: []rune(s)}
}

type runeByteSource struct {
	runes []rune
	pos   int
}

func (s *runeByteSource) Next() (int, error) {
	if s.pos >= len(s.runes) {
		return -1, nil
	}
	r := s.runes[s.pos]
	s.pos++
	if r > 255 {
		return 0, newErr(ErrInvalidCharacter)
	}
	return int(r), nil
}
