package llama

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llama-go/llama/internal/ggml"
)

func TestTensorManifest(t *testing.T) {
	h := &Hyperparameters{
		NVocab:   32000,
		NEmbd:    4096,
		NMult:    256,
		NHead:    32,
		NLayer:   2,
		NRot:     128,
		FileType: ggml.FileTypeMostlyQ4_0,
	}

	specs := tensorManifest(h)
	require.Len(t, specs, 3+2*9)

	byName := make(map[string]tensorSpec, len(specs))
	for _, s := range specs {
		byName[s.name] = s
	}

	emb, ok := byName["tok_embeddings.weight"]
	require.True(t, ok)
	assert.Equal(t, []int{4096, 32000}, emb.dims)
	assert.Equal(t, ggml.FileTypeMostlyQ4_0, emb.elem)

	// Norm weights stay in f32 regardless of the file type.
	norm, ok := byName["layers.1.ffn_norm.weight"]
	require.True(t, ok)
	assert.Equal(t, []int{4096}, norm.dims)
	assert.Equal(t, ggml.FileTypeF32, norm.elem)

	ff, ok := byName["layers.0.feed_forward.w2.weight"]
	require.True(t, ok)
	assert.Equal(t, []int{h.NFF(), 4096}, ff.dims)
}

func TestTensorManifestEmpty(t *testing.T) {
	assert.Empty(t, tensorManifest(&Hyperparameters{NVocab: 0, NEmbd: 4096, NMult: 1}))
	assert.Empty(t, tensorManifest(&Hyperparameters{NVocab: 32000, NEmbd: 0, NMult: 1}))
}

func TestNFF(t *testing.T) {
	h := &Hyperparameters{NEmbd: 4096, NMult: 256}
	// 2*(4*4096)/3 = 10922, rounded up to a multiple of 256.
	assert.Equal(t, 11008, h.NFF())

	assert.Zero(t, (&Hyperparameters{NEmbd: 4096}).NFF())
}

func TestTensorByteSize(t *testing.T) {
	tests := []struct {
		name string
		t    Tensor
		want int
	}{
		{"f32 2d", Tensor{Dims: []int{4, 2}, ElementType: ggml.FileTypeF32}, 32},
		{"f16 1d", Tensor{Dims: []int{16}, ElementType: ggml.FileTypeMostlyF16}, 32},
		{"q4_0 row padding", Tensor{Dims: []int{40, 2}, ElementType: ggml.FileTypeMostlyQ4_0}, 80},
		{"empty dims", Tensor{ElementType: ggml.FileTypeF32}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.t.ByteSize())
		})
	}
}

func TestContextSize(t *testing.T) {
	h := &Hyperparameters{
		NVocab: 2, NCtx: 512, NEmbd: 4, NMult: 1, NHead: 1, NLayer: 1, NRot: 1,
		FileType: ggml.FileTypeF32,
	}
	specs := tensorManifest(h)

	size := contextSize(h, specs)
	assert.NotZero(t, size)

	// More context means a larger key/value cache.
	h2 := *h
	h2.NCtx = 1024
	assert.Greater(t, contextSize(&h2, specs), size)
}
