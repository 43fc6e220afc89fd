package llama

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unicode/utf8"
)

// All multi-byte fields in GGML containers are little-endian.

func readExact(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, &ReadExactError{Bytes: n, Err: err}
	}
	return buf, nil
}

func readU32(r io.Reader) (uint32, error) {
	buf, err := readExact(r, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

func readI32(r io.Reader) (int32, error) {
	v, err := readU32(r)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

func readF32(r io.Reader) (float32, error) {
	v, err := readU32(r)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// readString reads n raw bytes and validates them as UTF-8. Tensor and
// vocabulary names must be valid UTF-8; arbitrary bytes are rejected
// rather than replaced.
func readString(r io.Reader, n int) (string, error) {
	buf, err := readExact(r, n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", &InvalidUTF8Error{Err: fmt.Errorf("invalid UTF-8 sequence in %d byte string", n)}
	}
	return string(buf), nil
}

// intFromI32 narrows a signed on-disk count to a non-negative int.
func intFromI32(field string, v int32) (int, error) {
	if v < 0 {
		return 0, &IntegerConversionError{Err: fmt.Errorf("field %s: value %d is negative", field, v)}
	}
	return int(v), nil
}
