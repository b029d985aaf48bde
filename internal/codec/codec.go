package codec

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/pierrec/lz4"
)

// Compress gob-encodes v and compresses the result with lz4
func Compress(v interface{}) ([]byte, error) {
	buff := new(bytes.Buffer)
	compressor := lz4.NewWriter(buff)
	err := gob.NewEncoder(compressor).Encode(v)
	if err != nil {
		return nil, fmt.Errorf("Unable to encode snapshot: %w", err)
	}
	err = compressor.Close()
	if err != nil {
		return nil, fmt.Errorf("Unable to compress snapshot: %w", err)
	}
	return buff.Bytes(), nil
}

// Decompress decompresses lz4 data produced by Compress and gob-decodes it into v
func Decompress(buf []byte, v interface{}) error {
	decompressor := lz4.NewReader(bytes.NewReader(buf))
	err := gob.NewDecoder(decompressor).Decode(v)
	if err != nil {
		return fmt.Errorf("Unable to decode snapshot: %w", err)
	}
	return nil
}
