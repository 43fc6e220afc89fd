// Package loader is the public surface for loading llama models stored
// in legacy GGML containers.
//
// It wraps the internal implementation and re-exports the three parts
// of the loading contract: the quantization file-type tag, the progress
// event stream, and the load error taxonomy.
//
// Example usage:
//
//	import "github.com/llama-go/llama/loader"
//
//	model, err := loader.Load("path/to/model.bin", 2048, func(p loader.Progress) {
//	    switch ev := p.(type) {
//	    case loader.PartLoading:
//	        fmt.Printf("loading part %s\n", ev.File)
//	    case loader.PartTensorLoaded:
//	        fmt.Printf("tensor %d/%d\n", ev.CurrentTensor+1, ev.TensorCount)
//	    }
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("file type: %s\n", model.Hyperparameters.FileType)
package loader

import (
	"github.com/llama-go/llama/internal/ggml"
	"github.com/llama-go/llama/internal/llama"
)

// FileType is the quantization storage-format tag from the file header.
type FileType = ggml.FileType

// Storage formats, in header code order.
const (
	FileTypeF32        FileType = ggml.FileTypeF32
	FileTypeMostlyF16  FileType = ggml.FileTypeMostlyF16
	FileTypeMostlyQ4_0 FileType = ggml.FileTypeMostlyQ4_0
	FileTypeMostlyQ4_1 FileType = ggml.FileTypeMostlyQ4_1
	FileTypeMostlyQ4_2 FileType = ggml.FileTypeMostlyQ4_2
	FileTypeMostlyQ4_3 FileType = ggml.FileTypeMostlyQ4_3
	FileTypeMostlyQ5_0 FileType = ggml.FileTypeMostlyQ5_0
	FileTypeMostlyQ5_1 FileType = ggml.FileTypeMostlyQ5_1
	FileTypeMostlyQ8_0 FileType = ggml.FileTypeMostlyQ8_0
	FileTypeMostlyQ8_1 FileType = ggml.FileTypeMostlyQ8_1
)

// DefaultFileType is the fallback for callers that need a file type
// before the real header value is known.
const DefaultFileType = ggml.DefaultFileType

// FileTypeFromInt32 decodes a header code into a FileType; the second
// return value is false for codes outside the declared range.
func FileTypeFromInt32(v int32) (FileType, bool) {
	return ggml.FileTypeFromInt32(v)
}

// ContainerType identifies the outer envelope of a model file.
type ContainerType = ggml.ContainerType

// Recognized container families.
const (
	ContainerGGML ContainerType = ggml.ContainerGGML
	ContainerGGMF ContainerType = ggml.ContainerGGMF
	ContainerGGJT ContainerType = ggml.ContainerGGJT
)

// Model and its constituents.
type (
	Model           = llama.Model
	Tensor          = llama.Tensor
	Hyperparameters = llama.Hyperparameters
	Vocabulary      = llama.Vocabulary
)

// Progress events. See the internal package documentation for the
// ordering and retention contract.
type (
	Progress              = llama.Progress
	ProgressFunc          = llama.ProgressFunc
	HyperparametersLoaded = llama.HyperparametersLoaded
	ContextSize           = llama.ContextSize
	PartLoading           = llama.PartLoading
	PartTensorLoaded      = llama.PartTensorLoaded
	PartLoaded            = llama.PartLoaded
)

// Load error taxonomy. Match with errors.As.
type (
	OpenFileError                  = llama.OpenFileError
	NoParentPathError              = llama.NoParentPathError
	ReadExactError                 = llama.ReadExactError
	IOError                        = llama.IOError
	InvalidUTF8Error               = llama.InvalidUTF8Error
	IntegerConversionError         = llama.IntegerConversionError
	UnsupportedFileTypeError       = llama.UnsupportedFileTypeError
	InvalidMagicError              = llama.InvalidMagicError
	InvalidFormatVersionError      = llama.InvalidFormatVersionError
	HyperparametersF16InvalidError = llama.HyperparametersF16InvalidError
	UnknownTensorError             = llama.UnknownTensorError
	TensorWrongSizeError           = llama.TensorWrongSizeError
	UnsupportedElementTypeError    = llama.UnsupportedElementTypeError
	InvariantBrokenError           = llama.InvariantBrokenError
	ModelNotCreatedError           = llama.ModelNotCreatedError
	MultipartNotSupportedError     = llama.MultipartNotSupportedError
)

// File discovery collaborator.
type (
	FindFilesError             = llama.FindFilesError
	FindFilesNoParentPathError = llama.FindFilesNoParentPathError
	FindFilesIOError           = llama.FindFilesIOError
)

// Load reads a single-part model from path. nCtx is the caller's
// intended context length; progress may be nil.
func Load(path string, nCtx int, progress ProgressFunc) (*Model, error) {
	return llama.Load(path, nCtx, progress)
}

// FindAllModelFiles returns the main model path followed by any
// numbered sibling parts.
func FindAllModelFiles(mainPath string) ([]string, FindFilesError) {
	return llama.FindAllModelFiles(mainPath)
}
