// Package transfer compresses serialized ANSI/NIST transaction bytes for
// spooling to a local cache directory between ingest and onward
// transmission — never the image payloads themselves, which are already
// compressed by their own codec (JPEG/WSQ/etc). Mirrors the codec-selector
// shape of arloliu/mebo's compress package, pooling encoders/decoders the
// same way.
package transfer

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec selects which compression format CompressFile/DecompressFile use.
type Codec uint8

const (
	CodecZstd Codec = iota
	CodecLZ4
)

var zstdEncoderPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			panic(fmt.Sprintf("transfer: failed to create zstd encoder: %v", err))
		}
		return enc
	},
}

var zstdDecoderPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			panic(fmt.Sprintf("transfer: failed to create zstd decoder: %v", err))
		}
		return dec
	},
}

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// CompressFile compresses raw (a serialized File's bytes) under the chosen
// codec.
func CompressFile(raw []byte, codec Codec) ([]byte, error) {
	switch codec {
	case CodecZstd:
		enc := zstdEncoderPool.Get().(*zstd.Encoder)
		defer zstdEncoderPool.Put(enc)
		return enc.EncodeAll(raw, nil), nil
	case CodecLZ4:
		c, _ := lz4CompressorPool.Get().(*lz4.Compressor)
		defer lz4CompressorPool.Put(c)
		dst := make([]byte, lz4.CompressBlockBound(len(raw)))
		n, err := c.CompressBlock(raw, dst)
		if err != nil {
			return nil, fmt.Errorf("transfer: lz4 compress: %w", err)
		}
		return dst[:n], nil
	default:
		return nil, fmt.Errorf("transfer: unknown codec %d", codec)
	}
}

// DecompressFile reverses CompressFile. For LZ4, expectedSize must be the
// original uncompressed length (LZ4 block format carries no size header);
// CompressFile's caller is expected to store it alongside the blob.
func DecompressFile(compressed []byte, codec Codec, expectedSize int) ([]byte, error) {
	switch codec {
	case CodecZstd:
		dec := zstdDecoderPool.Get().(*zstd.Decoder)
		defer zstdDecoderPool.Put(dec)
		out, err := dec.DecodeAll(compressed, nil)
		if err != nil {
			return nil, fmt.Errorf("transfer: zstd decompress: %w", err)
		}
		return out, nil
	case CodecLZ4:
		dst := make([]byte, expectedSize)
		n, err := lz4.UncompressBlock(compressed, dst)
		if err != nil {
			return nil, fmt.Errorf("transfer: lz4 decompress: %w", err)
		}
		return dst[:n], nil
	default:
		return nil, fmt.Errorf("transfer: unknown codec %d", codec)
	}
}
