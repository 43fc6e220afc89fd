package llama

import (
	"fmt"

	"github.com/llama-go/llama/internal/ggml"
)

// Tensor is one named unit of weight data.
type Tensor struct {
	Name        string
	Dims        []int
	ElementType ggml.FileType
	Data        []byte
}

// NumElements returns the total element count.
func (t *Tensor) NumElements() int {
	n := 1
	for _, d := range t.Dims {
		n *= d
	}
	return n
}

// ByteSize returns the on-disk byte size of the tensor data. Rows are
// padded up to whole quantization blocks, so the size is computed per
// row of the leading dimension.
func (t *Tensor) ByteSize() int {
	if len(t.Dims) == 0 {
		return 0
	}
	rows := 1
	for _, d := range t.Dims[1:] {
		rows *= d
	}
	return t.ElementType.RowSize(t.Dims[0]) * rows
}

// Model is a fully loaded single-part model.
type Model struct {
	Hyperparameters *Hyperparameters
	Vocabulary      *Vocabulary
	Tensors         map[string]*Tensor
}

// tensorSpec is one manifest entry: the name, shape and element type a
// tensor must have when it appears in the data section.
type tensorSpec struct {
	name string
	dims []int
	elem ggml.FileType
}

func (s tensorSpec) byteSize() int {
	t := Tensor{Dims: s.dims, ElementType: s.elem}
	return t.ByteSize()
}

// tensorManifest derives the expected tensor set of the llama
// architecture from the hyperparameters. The bulk 2D weights use the
// file's storage format; norm weights stay in f32.
func tensorManifest(h *Hyperparameters) []tensorSpec {
	if h.NVocab <= 0 || h.NEmbd <= 0 {
		return nil
	}

	wtype := h.FileType
	nFF := h.NFF()

	specs := []tensorSpec{
		{"tok_embeddings.weight", []int{h.NEmbd, h.NVocab}, wtype},
		{"norm.weight", []int{h.NEmbd}, ggml.FileTypeF32},
		{"output.weight", []int{h.NEmbd, h.NVocab}, wtype},
	}
	for i := 0; i < h.NLayer; i++ {
		prefix := fmt.Sprintf("layers.%d.", i)
		specs = append(specs,
			tensorSpec{prefix + "attention_norm.weight", []int{h.NEmbd}, ggml.FileTypeF32},
			tensorSpec{prefix + "attention.wq.weight", []int{h.NEmbd, h.NEmbd}, wtype},
			tensorSpec{prefix + "attention.wk.weight", []int{h.NEmbd, h.NEmbd}, wtype},
			tensorSpec{prefix + "attention.wv.weight", []int{h.NEmbd, h.NEmbd}, wtype},
			tensorSpec{prefix + "attention.wo.weight", []int{h.NEmbd, h.NEmbd}, wtype},
			tensorSpec{prefix + "ffn_norm.weight", []int{h.NEmbd}, ggml.FileTypeF32},
			tensorSpec{prefix + "feed_forward.w1.weight", []int{h.NEmbd, nFF}, wtype},
			tensorSpec{prefix + "feed_forward.w2.weight", []int{nFF, h.NEmbd}, wtype},
			tensorSpec{prefix + "feed_forward.w3.weight", []int{h.NEmbd, nFF}, wtype},
		)
	}
	return specs
}

// tensorOverhead is the fixed per-tensor bookkeeping cost used in the
// context size estimate.
const tensorOverhead = 128

// contextSize estimates the memory needed to hold the model: all
// manifest tensors, per-tensor overhead, and the f32 key/value cache
// sized by the context length.
func contextSize(h *Hyperparameters, specs []tensorSpec) uint64 {
	var total uint64
	for _, s := range specs {
		total += uint64(s.byteSize()) + tensorOverhead
	}
	kvElements := uint64(h.NCtx) * uint64(h.NLayer) * uint64(h.NEmbd)
	total += 2 * kvElements * 4
	return total
}
