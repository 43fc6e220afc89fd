package llama

import (
	"io"

	"github.com/llama-go/llama/internal/ggml"
)

// Hyperparameters is the architecture-defining configuration read from
// the model header before any tensor data.
type Hyperparameters struct {
	NVocab int // vocabulary size
	NCtx   int // context size, supplied by the caller rather than the file
	NEmbd  int // embedding dimension
	NMult  int // feed-forward rounding multiple
	NHead  int // attention heads
	NLayer int // transformer layers
	NRot   int // rotary embedding dimension

	// FileType is how the bulk of the tensors are stored.
	FileType ggml.FileType
}

// NFF returns the feed-forward intermediate size derived from the
// embedding dimension, rounded up to a multiple of NMult.
func (h *Hyperparameters) NFF() int {
	if h.NMult <= 0 {
		return 0
	}
	return ((2*(4*h.NEmbd)/3 + h.NMult - 1) / h.NMult) * h.NMult
}

// hyperparameterFields is the on-disk field order.
var hyperparameterFields = []string{"n_vocab", "n_embd", "n_mult", "n_head", "n_layer", "n_rot"}

// readHyperparameters decodes the hyperparameter block. The final field
// is the storage-format code: legacy unversioned containers store the
// old f16 flag, versioned containers store a file-type code, and each
// gets its own error on an unrecognized value.
func readHyperparameters(r io.Reader, container ggml.ContainerType, nCtx int) (*Hyperparameters, error) {
	h := &Hyperparameters{NCtx: nCtx}
	dst := []*int{&h.NVocab, &h.NEmbd, &h.NMult, &h.NHead, &h.NLayer, &h.NRot}
	for i, field := range hyperparameterFields {
		raw, err := readI32(r)
		if err != nil {
			return nil, err
		}
		v, err := intFromI32(field, raw)
		if err != nil {
			return nil, err
		}
		*dst[i] = v
	}

	ftype, err := readI32(r)
	if err != nil {
		return nil, err
	}
	ft, ok := ggml.FileTypeFromInt32(ftype)
	if !ok {
		if container.Versioned() {
			return nil, &UnsupportedFileTypeError{Value: ftype}
		}
		return nil, &HyperparametersF16InvalidError{FType: ftype}
	}
	h.FileType = ft

	return h, nil
}
