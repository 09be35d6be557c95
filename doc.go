// Package radix4 implements the Radix4 binary-to-text codec: a 256-byte
// permutation whose first 64 outputs are an ASCII alphabet, chosen so that
// any input byte already inside the alphabet encodes to itself. The
// remaining two bits of every byte ("radix" bits) are collected separately
// and either interleaved with the data (stream mode) or appended as a tail
// (block mode).
//
// Construct a codec with NewBuilder, or use the Block/Stream defaults.
// Batch operations (EncodeToBytes, DecodeFromBytes, ...) work over whole
// byte slices; the NewStreamEncoder*/NewStreamDecoder* family supports
// incremental encoding and decoding against an io.Writer/io.Reader, a
// strings.Builder, or an in-memory buffer.
package radix4
