package ggml

import "fmt"

// FileType describes how tensor values are stored on disk. The "mostly"
// variants quantize the bulk of the weights but keep 1D tensors in f32.
//
// The integer codes are the zero-based declaration order and are written
// verbatim to the file header, so the order below is part of the on-disk
// format and must never be rearranged.
type FileType uint32

// Storage formats, in header code order.
const (
	FileTypeF32 FileType = iota
	FileTypeMostlyF16
	FileTypeMostlyQ4_0
	FileTypeMostlyQ4_1
	FileTypeMostlyQ4_2
	FileTypeMostlyQ4_3
	FileTypeMostlyQ5_0
	FileTypeMostlyQ5_1
	FileTypeMostlyQ8_0
	FileTypeMostlyQ8_1

	fileTypeCount // must be last
)

// DefaultFileType is the fallback for callers that need a file type
// before the real header value is known. Decoding never substitutes it:
// an out-of-range code is always an error.
const DefaultFileType = FileTypeMostlyF16

// FileTypeFromInt32 decodes a header code into a FileType. The second
// return value is false for any code outside the declared range; the
// caller decides which error that becomes.
func FileTypeFromInt32(v int32) (FileType, bool) {
	if v < 0 || v >= int32(fileTypeCount) {
		return 0, false
	}
	return FileType(v), true
}

// Int32 encodes the file type as its header code.
func (t FileType) Int32() int32 {
	return int32(t)
}

var fileTypeNames = [fileTypeCount]string{
	FileTypeF32:        "f32",
	FileTypeMostlyF16:  "f16",
	FileTypeMostlyQ4_0: "q4_0",
	FileTypeMostlyQ4_1: "q4_1",
	FileTypeMostlyQ4_2: "q4_2",
	FileTypeMostlyQ4_3: "q4_3",
	FileTypeMostlyQ5_0: "q5_0",
	FileTypeMostlyQ5_1: "q5_1",
	FileTypeMostlyQ8_0: "q8_0",
	FileTypeMostlyQ8_1: "q8_1",
}

// String returns the canonical lowercase short name.
func (t FileType) String() string {
	if t < fileTypeCount {
		return fileTypeNames[t]
	}
	return fmt.Sprintf("unknown(%d)", uint32(t))
}

// TypeTrait describes the block layout of a storage format.
type TypeTrait struct {
	BlockSize int // elements per block
	TypeSize  int // bytes per block
	Quantized bool
}

var typeTraits = [fileTypeCount]TypeTrait{
	FileTypeF32:        {BlockSize: 1, TypeSize: 4},
	FileTypeMostlyF16:  {BlockSize: 1, TypeSize: 2},
	FileTypeMostlyQ4_0: {BlockSize: 32, TypeSize: 20, Quantized: true},
	FileTypeMostlyQ4_1: {BlockSize: 32, TypeSize: 24, Quantized: true},
	FileTypeMostlyQ4_2: {BlockSize: 16, TypeSize: 10, Quantized: true},
	FileTypeMostlyQ4_3: {BlockSize: 16, TypeSize: 12, Quantized: true},
	FileTypeMostlyQ5_0: {BlockSize: 32, TypeSize: 22, Quantized: true},
	FileTypeMostlyQ5_1: {BlockSize: 32, TypeSize: 24, Quantized: true},
	FileTypeMostlyQ8_0: {BlockSize: 32, TypeSize: 36, Quantized: true},
	FileTypeMostlyQ8_1: {BlockSize: 32, TypeSize: 40, Quantized: true},
}

// Trait returns the block layout for this storage format.
func (t FileType) Trait() TypeTrait {
	if t < fileTypeCount {
		return typeTraits[t]
	}
	return TypeTrait{BlockSize: 1}
}

// IsQuantized reports whether the format is block-quantized.
func (t FileType) IsQuantized() bool {
	return t.Trait().Quantized
}

// RowSize returns the byte size of a row of elements stored in this
// format. Elements are padded up to a whole number of blocks.
func (t FileType) RowSize(elements int) int {
	trait := t.Trait()
	if trait.BlockSize == 0 {
		return 0
	}
	numBlocks := (elements + trait.BlockSize - 1) / trait.BlockSize
	return numBlocks * trait.TypeSize
}
