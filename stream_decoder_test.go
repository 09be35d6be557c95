package radix4

import (
	"bytes"
	"errors"
	"testing"
)

func TestStreamDecodeRoundTrip(t *testing.T) {
	codec := Stream

	cases := [][]byte{
		{},
		[]byte("Hello World!"),
		[]byte("ABC123"),
		[]byte{0x00, 0xff, 0x80, 0x7f, 0x3c},
		bytes.Repeat([]byte("mixed CONTENT 123!@#"), 20),
	}

	for _, in := range cases {
		enc, err := codec.EncodeToBytes(in)
		if err != nil {
			t.Fatalf("EncodeToBytes(%q) error = %v", in, err)
		}
		dec, err := codec.DecodeFromBytes(enc)
		if err != nil {
			t.Fatalf("DecodeFromBytes(%q) error = %v", enc, err)
		}
		if !bytes.Equal(dec, in) {
			t.Errorf("round trip mismatch: got %q, want %q", dec, in)
		}
	}
}

func TestStreamDecodeFromReader(t *testing.T) {
	codec := Stream
	in := []byte("streamed through an io.Reader, with radix bytes \x80\xff thrown in")

	enc, err := codec.EncodeToBytes(in)
	if err != nil {
		t.Fatalf("EncodeToBytes() error = %v", err)
	}

	dec := codec.NewStreamDecoderFromReader(bytes.NewReader(enc))
	var out []byte
	for {
		b, ok, err := dec.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte() error = %v", err)
		}
		if !ok {
			break
		}
		out = append(out, b)
	}
	if !bytes.Equal(out, in) {
		t.Errorf("decoded = %q, want %q", out, in)
	}
}

func TestStreamDecodeWhitespaceInvariance(t *testing.T) {
	codec := Stream
	in := []byte("Hello World! More data follows to exercise triples.")

	enc, err := codec.EncodeToBytes(in)
	if err != nil {
		t.Fatalf("EncodeToBytes() error = %v", err)
	}

	padded := make([]byte, 0, len(enc)*2)
	for i, b := range enc {
		if i%2 == 0 {
			padded = append(padded, ' ', '\r', '\n')
		}
		padded = append(padded, b)
	}

	dec, err := codec.DecodeFromBytes(padded)
	if err != nil {
		t.Fatalf("DecodeFromBytes() error = %v", err)
	}
	if !bytes.Equal(dec, in) {
		t.Errorf("decoded = %q, want %q", dec, in)
	}
}

func TestStreamDecodeUnexpectedEndOfStream(t *testing.T) {
	codec := Stream
	// Valid prefix for a non-radix-free byte, but missing its closing triple
	// and terminator.
	_, err := codec.DecodeFromBytes([]byte("A."))
	if !errors.Is(err, ErrUnexpectedEndOfInput) {
		t.Errorf("DecodeFromBytes() error = %v, want ErrUnexpectedEndOfInput", err)
	}
}

func TestStreamDecodeNonTerminatedEndsCleanlyOnEOS(t *testing.T) {
	codec, err := NewBuilder().Streaming(true).Terminated(false).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	in := []byte("ABC123")
	enc, err := codec.EncodeToBytes(in)
	if err != nil {
		t.Fatalf("EncodeToBytes() error = %v", err)
	}
	dec, err := codec.DecodeFromBytes(enc)
	if err != nil {
		t.Fatalf("DecodeFromBytes() error = %v", err)
	}
	if !bytes.Equal(dec, in) {
		t.Errorf("decoded = %q, want %q", dec, in)
	}
}
