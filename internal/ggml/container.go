// Package ggml defines the on-disk contract for legacy GGML model
// containers: the recognized container envelopes (magic number plus
// format version) and the quantization file-type tag stored in the
// header.
//
// This package is pure data: it owns no I/O and no state. The loader in
// internal/llama reads the bytes and consults this package to decide
// whether what it read is valid.
package ggml

import "fmt"

// Magic numbers for the recognized container families, as read
// little-endian from the first four bytes of a model file.
const (
	MagicGGML uint32 = 0x67676d6c // unversioned legacy container
	MagicGGMF uint32 = 0x67676d66 // versioned, adds vocabulary scores
	MagicGGJT uint32 = 0x67676a74 // versioned, adds tensor data alignment
)

// Alignment is the byte alignment of tensor data in GGJT containers.
const Alignment = 32

// ContainerType identifies the outer envelope of a model file.
type ContainerType uint32

// Recognized container families.
const (
	ContainerGGML ContainerType = iota
	ContainerGGMF
	ContainerGGJT
)

// ContainerTypeFromMagic maps a header magic number to its container
// family. The second return value is false if the magic is not
// recognized.
func ContainerTypeFromMagic(magic uint32) (ContainerType, bool) {
	switch magic {
	case MagicGGML:
		return ContainerGGML, true
	case MagicGGMF:
		return ContainerGGMF, true
	case MagicGGJT:
		return ContainerGGJT, true
	default:
		return 0, false
	}
}

// Versioned reports whether the container encodes a format version
// after the magic number. The legacy GGML envelope does not.
func (t ContainerType) Versioned() bool {
	return t != ContainerGGML
}

// SupportsVersion reports whether the given format version is one this
// package knows how to decode for the container family. Unversioned
// containers only accept version 0 (the absence of a version field).
func (t ContainerType) SupportsVersion(version uint32) bool {
	switch t {
	case ContainerGGML:
		return version == 0
	case ContainerGGMF:
		return version == 1
	case ContainerGGJT:
		return version >= 1 && version <= 3
	default:
		return false
	}
}

// HasVocabularyScores reports whether vocabulary entries carry a score
// alongside the token bytes.
func (t ContainerType) HasVocabularyScores() bool {
	return t != ContainerGGML
}

// String returns the container family name.
func (t ContainerType) String() string {
	switch t {
	case ContainerGGML:
		return "ggml"
	case ContainerGGMF:
		return "ggmf"
	case ContainerGGJT:
		return "ggjt"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(t))
	}
}
