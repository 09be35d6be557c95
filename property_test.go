package radix4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// Round-trip (bijection) property from spec.md §8, for both block and
// stream engines.
func TestPropertyRoundTrip(t *testing.T) {
	for _, streaming := range []bool{false, true} {
		streaming := streaming
		rapid.Check(t, func(t *rapid.T) {
			codec, err := NewBuilder().Streaming(streaming).Build()
			assert.NoError(t, err)

			in := rapid.SliceOfN(rapid.Byte(), 0, 256).Draw(t, "in")

			enc, err := codec.EncodeToBytes(in)
			assert.NoError(t, err)

			dec, err := codec.DecodeFromBytes(enc)
			assert.NoError(t, err)
			assert.Equal(t, in, dec)
		})
	}
}

// Length formula property from spec.md §8.
func TestPropertyEncodedLengthMatchesFormula(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		streaming := rapid.Bool().Draw(t, "streaming")
		optimistic := rapid.Bool().Draw(t, "optimistic")
		terminated := rapid.Bool().Draw(t, "terminated")

		codec, err := NewBuilder().
			Streaming(streaming).
			Optimistic(optimistic).
			Terminated(terminated).
			Build()
		assert.NoError(t, err)

		in := rapid.SliceOfN(rapid.Byte(), 0, 128).Draw(t, "in")

		want, err := codec.EncodedLen(in)
		assert.NoError(t, err)

		got, err := codec.EncodeToBytes(in)
		assert.NoError(t, err)
		assert.Equal(t, want, len(got))
	})
}

// Alphabet discipline property from spec.md §8: every encoded byte is
// either an alphabet character, the terminator, or part of a line break,
// and the output never ends with a trailing line break.
func TestPropertyAlphabetDiscipline(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lineLength := rapid.IntRange(0, 20).Draw(t, "lineLength")

		codec, err := NewBuilder().LineLength(lineLength).Build()
		assert.NoError(t, err)

		in := rapid.SliceOfN(rapid.Byte(), 0, 200).Draw(t, "in")
		enc, err := codec.EncodeToBytes(in)
		assert.NoError(t, err)

		allowed := make(map[byte]bool, AlphabetSize+2)
		for _, c := range defaultAlphabetChars {
			allowed[c] = true
		}
		allowed[DefaultTerminator] = true
		allowed['\n'] = true

		for _, b := range enc {
			assert.Truef(t, allowed[b], "unexpected byte %#02x in encoded output %q", b, enc)
		}
		if lineLength > 0 && len(enc) > 0 {
			assert.NotEqual(t, byte('\n'), enc[len(enc)-1], "encoded output ends with a trailing line break")
		}
	})
}

// Inverse mapping property from spec.md §8.
func TestPropertyInverseMapping(t *testing.T) {
	mapping, err := NewMapping(defaultAlphabetChars)
	assert.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		i := rapid.IntRange(0, 255).Draw(t, "i")
		b := byte(i)
		assert.Equal(t, i, int(mapping.MapByte(mapping.Unmap(b))))
		assert.Equal(t, b, mapping.Unmap(mapping.MapByte(b)))
	})
}

// Whitespace invariance property from spec.md §8: inserting whitespace at
// any position between encoded characters must not change the decode.
func TestPropertyWhitespaceInvariance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		streaming := rapid.Bool().Draw(t, "streaming")
		codec, err := NewBuilder().Streaming(streaming).Build()
		assert.NoError(t, err)

		in := rapid.SliceOfN(rapid.Byte(), 0, 128).Draw(t, "in")
		enc, err := codec.EncodeToBytes(in)
		assert.NoError(t, err)

		ws := []byte{'\r', '\n', '\t', ' '}
		padded := make([]byte, 0, len(enc)*2)
		for _, b := range enc {
			if rapid.Bool().Draw(t, "insertBefore") {
				padded = append(padded, ws[rapid.IntRange(0, len(ws)-1).Draw(t, "wsIdx")])
			}
			padded = append(padded, b)
		}

		dec, err := codec.DecodeFromBytes(padded)
		assert.NoError(t, err)
		assert.Equal(t, in, dec)
	})
}

// Incremental equivalence property from spec.md §8, for the stream
// encoder: any chunking of the same input yields the same output bytes.
func TestPropertyStreamIncrementalEquivalence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := rapid.SliceOfN(rapid.Byte(), 0, 128).Draw(t, "in")

		whole := Stream.NewStreamEncoderToBytes()
		_, err := whole.Write(in)
		assert.NoError(t, err)
		assert.NoError(t, whole.Close())

		chunked := Stream.NewStreamEncoderToBytes()
		pos := 0
		for pos < len(in) {
			n := rapid.IntRange(1, 5).Draw(t, "chunk")
			if pos+n > len(in) {
				n = len(in) - pos
			}
			_, err := chunked.Write(in[pos : pos+n])
			assert.NoError(t, err)
			pos += n
		}
		assert.NoError(t, chunked.Close())

		assert.Equal(t, whole.Bytes(), chunked.Bytes())
	})
}
