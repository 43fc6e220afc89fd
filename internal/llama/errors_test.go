package llama

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llama-go/llama/internal/ggml"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		err  error
		want string
	}{
		{&OpenFileError{Path: "m.bin", Err: cause}, `could not open file "m.bin": boom`},
		{&NoParentPathError{Path: "/"}, `no parent path for "/"`},
		{&ReadExactError{Bytes: 4, Err: cause}, "unable to read exactly 4 bytes: boom"},
		{&IOError{Err: cause}, "non-specific I/O error: boom"},
		{&InvalidUTF8Error{Err: cause}, "could not convert bytes to a UTF-8 string: boom"},
		{&IntegerConversionError{Err: cause}, "invalid integer conversion: boom"},
		{&UnsupportedFileTypeError{Value: 99}, "unsupported file type: 99"},
		{&InvalidMagicError{Path: "m.bin", Magic: 0xdead}, `invalid magic number 0xdead for "m.bin"`},
		{&InvalidFormatVersionError{Container: ggml.ContainerGGJT, Version: 9}, "invalid file format version 9 for ggjt container"},
		{&HyperparametersF16InvalidError{FType: 7}, "invalid value 7 for f16 in hyperparameters"},
		{&UnknownTensorError{TensorName: "w", Path: "m.bin"}, `unknown tensor "w" in "m.bin"`},
		{&TensorWrongSizeError{TensorName: "w", Path: "m.bin"}, `the tensor "w" has the wrong size in "m.bin"`},
		{&UnsupportedElementTypeError{TensorName: "w", FType: 42, Path: "m.bin"}, `invalid ftype 42 for tensor "w" in "m.bin"`},
		{&InvariantBrokenError{Path: "m.bin", Invariant: "offset overflow"}, `invariant broken: offset overflow in "m.bin"`},
		{&ModelNotCreatedError{Path: "m.bin"}, `could not create model from "m.bin"`},
		{&MultipartNotSupportedError{Paths: []string{"a", "b"}}, "multipart models are not supported (found a, b)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

// Types that wrap a lower-level cause must keep it reachable.
func TestErrorUnwrapping(t *testing.T) {
	cause := io.ErrUnexpectedEOF

	wrapping := []error{
		&OpenFileError{Path: "m.bin", Err: cause},
		&ReadExactError{Bytes: 8, Err: cause},
		&IOError{Err: cause},
		&InvalidUTF8Error{Err: cause},
		&IntegerConversionError{Err: cause},
	}
	for _, err := range wrapping {
		assert.ErrorIs(t, err, cause, "%T must unwrap to its cause", err)
	}
}
