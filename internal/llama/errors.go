package llama

import (
	"fmt"
	"strings"

	"github.com/llama-go/llama/internal/ggml"
)

// Every way a model load can fail has its own error type below. The set
// is closed: the loader constructs exactly these and nothing else, and a
// loaded error is terminal for the attempt. Types that arise from a
// lower-level failure keep the cause reachable through Unwrap, so
// errors.As and errors.Is see through them.

// OpenFileError reports that the model file could not be opened.
type OpenFileError struct {
	Path string
	Err  error
}

func (e *OpenFileError) Error() string {
	return fmt.Sprintf("could not open file %q: %v", e.Path, e.Err)
}

func (e *OpenFileError) Unwrap() error { return e.Err }

// NoParentPathError reports that a path expected to live inside a
// directory has no parent.
type NoParentPathError struct {
	Path string
}

func (e *NoParentPathError) Error() string {
	return fmt.Sprintf("no parent path for %q", e.Path)
}

// ReadExactError reports that a fixed-size read came up short.
type ReadExactError struct {
	Bytes int // how many bytes the read required
	Err   error
}

func (e *ReadExactError) Error() string {
	return fmt.Sprintf("unable to read exactly %d bytes: %v", e.Bytes, e.Err)
}

func (e *ReadExactError) Unwrap() error { return e.Err }

// IOError wraps an I/O failure not covered by a more specific type.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("non-specific I/O error: %v", e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// InvalidUTF8Error reports a string field that failed UTF-8 validation.
type InvalidUTF8Error struct {
	Err error
}

func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("could not convert bytes to a UTF-8 string: %v", e.Err)
}

func (e *InvalidUTF8Error) Unwrap() error { return e.Err }

// IntegerConversionError reports a numeric field that could not be
// narrowed to its target type.
type IntegerConversionError struct {
	Err error
}

func (e *IntegerConversionError) Error() string {
	return fmt.Sprintf("invalid integer conversion: %v", e.Err)
}

func (e *IntegerConversionError) Unwrap() error { return e.Err }

// UnsupportedFileTypeError reports a header storage-format code with no
// corresponding ggml.FileType.
type UnsupportedFileTypeError struct {
	Value int32
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %d", e.Value)
}

// InvalidMagicError reports a leading magic number that matches no
// recognized container family.
type InvalidMagicError struct {
	Path  string
	Magic uint32
}

func (e *InvalidMagicError) Error() string {
	return fmt.Sprintf("invalid magic number %#x for %q", e.Magic, e.Path)
}

// InvalidFormatVersionError reports a recognized container family with
// an unsupported format version.
type InvalidFormatVersionError struct {
	Container ggml.ContainerType
	Version   uint32
}

func (e *InvalidFormatVersionError) Error() string {
	return fmt.Sprintf("invalid file format version %d for %s container", e.Version, e.Container)
}

// HyperparametersF16InvalidError reports an unrecognized value in the
// legacy f16 hyperparameter field.
type HyperparametersF16InvalidError struct {
	FType int32
}

func (e *HyperparametersF16InvalidError) Error() string {
	return fmt.Sprintf("invalid value %d for f16 in hyperparameters", e.FType)
}

// UnknownTensorError reports a tensor in the data section that the
// model's manifest never declared.
type UnknownTensorError struct {
	TensorName string
	Path       string
}

func (e *UnknownTensorError) Error() string {
	return fmt.Sprintf("unknown tensor %q in %q", e.TensorName, e.Path)
}

// TensorWrongSizeError reports a tensor whose declared size does not
// match the size expected from its shape and storage format.
type TensorWrongSizeError struct {
	TensorName string
	Path       string
}

func (e *TensorWrongSizeError) Error() string {
	return fmt.Sprintf("the tensor %q has the wrong size in %q", e.TensorName, e.Path)
}

// UnsupportedElementTypeError reports a per-tensor storage-format code
// with no corresponding ggml.FileType.
type UnsupportedElementTypeError struct {
	TensorName string
	FType      int32
	Path       string
}

func (e *UnsupportedElementTypeError) Error() string {
	return fmt.Sprintf("invalid ftype %d for tensor %q in %q", e.FType, e.TensorName, e.Path)
}

// InvariantBrokenError reports an internal consistency check that
// failed. Under correct input this is unreachable; seeing one means a
// loader bug rather than a bad file.
type InvariantBrokenError struct {
	Path      string
	Invariant string
}

func (e *InvariantBrokenError) Error() string {
	return fmt.Sprintf("invariant broken: %s in %q", e.Invariant, e.Path)
}

// ModelNotCreatedError reports that the manifest declared zero tensors,
// so there was no model to materialize.
type ModelNotCreatedError struct {
	Path string
}

func (e *ModelNotCreatedError) Error() string {
	return fmt.Sprintf("could not create model from %q", e.Path)
}

// MultipartNotSupportedError reports that file discovery found more
// than one part for what must be a single-file model.
type MultipartNotSupportedError struct {
	Paths []string
}

func (e *MultipartNotSupportedError) Error() string {
	return fmt.Sprintf("multipart models are not supported (found %s)", strings.Join(e.Paths, ", "))
}
