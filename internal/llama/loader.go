package llama

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/llama-go/llama/internal/ggml"
)

// Load reads a single-part model from path. nCtx is the context length
// the caller intends to run with; it sizes the memory estimate but is
// not stored in the file. progress may be nil.
//
// Loading is sequential and fail-fast: the first validation failure
// abandons the load and is returned as one of the error types in this
// package. There is no partial-success state.
func Load(path string, nCtx int, progress ProgressFunc) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenFileError{Path: path, Err: err}
	}
	defer func() {
		_ = f.Close() // read-only file
	}()

	return load(f, path, nCtx, progress)
}

func load(r io.Reader, path string, nCtx int, progress ProgressFunc) (*Model, error) {
	cr := &offsetReader{r: r}

	container, err := readContainer(cr, path)
	if err != nil {
		return nil, err
	}

	hparams, err := readHyperparameters(cr, container, nCtx)
	if err != nil {
		return nil, err
	}
	emit(progress, HyperparametersLoaded{Hyperparameters: hparams})

	vocab, err := readVocabulary(cr, hparams.NVocab, container.HasVocabularyScores())
	if err != nil {
		return nil, err
	}

	paths, ferr := FindAllModelFiles(path)
	if ferr != nil {
		return nil, ferr.LoadError()
	}
	if len(paths) > 1 {
		return nil, &MultipartNotSupportedError{Paths: paths}
	}

	manifest := tensorManifest(hparams)
	if len(manifest) == 0 {
		return nil, &ModelNotCreatedError{Path: path}
	}
	emit(progress, ContextSize{Bytes: contextSize(hparams, manifest)})

	specs := make(map[string]tensorSpec, len(manifest))
	for _, s := range manifest {
		specs[s.name] = s
	}

	model := &Model{
		Hyperparameters: hparams,
		Vocabulary:      vocab,
		Tensors:         make(map[string]*Tensor, len(manifest)),
	}

	// Multi-part models were rejected above, so the one discovered path
	// is the file already being read.
	for partIdx, partPath := range paths {
		emit(progress, PartLoading{File: partPath, CurrentPart: partIdx, TotalParts: len(paths)})

		byteSize, err := loadPart(cr, container, partPath, specs, model, progress)
		if err != nil {
			return nil, err
		}
		if len(model.Tensors) == 0 {
			return nil, &ModelNotCreatedError{Path: partPath}
		}

		emit(progress, PartLoaded{
			File:        partPath,
			ByteSize:    byteSize,
			TensorCount: len(model.Tensors),
		})
	}

	return model, nil
}

// loadPart reads tensor entries until end of file, validating each one
// against the manifest, and returns the total tensor data byte size.
func loadPart(cr *offsetReader, container ggml.ContainerType, path string, specs map[string]tensorSpec, model *Model, progress ProgressFunc) (int, error) {
	byteSize := 0
	for {
		var hdr [4]byte
		if _, err := io.ReadFull(cr, hdr[:]); err != nil {
			if err == io.EOF {
				return byteSize, nil // clean end of the tensor stream
			}
			return 0, &ReadExactError{Bytes: len(hdr), Err: err}
		}
		nDimsRaw := int32(binary.LittleEndian.Uint32(hdr[:]))

		tensor, err := readTensorEntry(cr, container, path, nDimsRaw, specs)
		if err != nil {
			return 0, err
		}
		byteSize += len(tensor.Data)

		if _, dup := model.Tensors[tensor.Name]; dup {
			return 0, &InvariantBrokenError{
				Path:      path,
				Invariant: fmt.Sprintf("tensor %q appears more than once", tensor.Name),
			}
		}

		emit(progress, PartTensorLoaded{
			File:          path,
			CurrentTensor: len(model.Tensors),
			TensorCount:   len(specs),
		})
		model.Tensors[tensor.Name] = tensor
	}
}

func readTensorEntry(cr *offsetReader, container ggml.ContainerType, path string, nDimsRaw int32, specs map[string]tensorSpec) (*Tensor, error) {
	nDims, err := intFromI32("n_dims", nDimsRaw)
	if err != nil {
		return nil, err
	}
	if nDims < 1 || nDims > 2 {
		return nil, &InvariantBrokenError{
			Path:      path,
			Invariant: fmt.Sprintf("tensor declares %d dimensions, expected 1 or 2", nDims),
		}
	}

	nameLenRaw, err := readI32(cr)
	if err != nil {
		return nil, err
	}
	nameLen, err := intFromI32("name_len", nameLenRaw)
	if err != nil {
		return nil, err
	}

	ftype, err := readI32(cr)
	if err != nil {
		return nil, err
	}

	dims := make([]int, nDims)
	for i := range dims {
		raw, err := readI32(cr)
		if err != nil {
			return nil, err
		}
		if dims[i], err = intFromI32("ne", raw); err != nil {
			return nil, err
		}
	}

	name, err := readString(cr, nameLen)
	if err != nil {
		return nil, err
	}

	spec, ok := specs[name]
	if !ok {
		return nil, &UnknownTensorError{TensorName: name, Path: path}
	}

	elem, ok := ggml.FileTypeFromInt32(ftype)
	if !ok {
		return nil, &UnsupportedElementTypeError{TensorName: name, FType: ftype, Path: path}
	}

	tensor := &Tensor{Name: name, Dims: dims, ElementType: elem}
	if !dimsEqual(dims, spec.dims) || tensor.ByteSize() != spec.byteSize() {
		return nil, &TensorWrongSizeError{TensorName: name, Path: path}
	}

	// GGJT aligns tensor data; skip the padding.
	if container == ggml.ContainerGGJT {
		if err := cr.align(ggml.Alignment); err != nil {
			return nil, err
		}
	}

	data, err := readExact(cr, tensor.ByteSize())
	if err != nil {
		return nil, err
	}
	tensor.Data = data

	return tensor, nil
}

func readContainer(cr *offsetReader, path string) (ggml.ContainerType, error) {
	magic, err := readU32(cr)
	if err != nil {
		return 0, err
	}
	container, ok := ggml.ContainerTypeFromMagic(magic)
	if !ok {
		return 0, &InvalidMagicError{Path: path, Magic: magic}
	}

	version := uint32(0)
	if container.Versioned() {
		if version, err = readU32(cr); err != nil {
			return 0, err
		}
	}
	if !container.SupportsVersion(version) {
		return 0, &InvalidFormatVersionError{Container: container, Version: version}
	}

	return container, nil
}

func emit(progress ProgressFunc, ev Progress) {
	if progress != nil {
		progress(ev)
	}
}

func dimsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// offsetReader counts consumed bytes so GGJT alignment padding can be
// computed without seeking.
type offsetReader struct {
	r   io.Reader
	off int64
}

func (o *offsetReader) Read(p []byte) (int, error) {
	n, err := o.r.Read(p)
	o.off += int64(n)
	return n, err
}

func (o *offsetReader) align(alignment int) error {
	pad := (int64(alignment) - o.off%int64(alignment)) % int64(alignment)
	if pad == 0 {
		return nil
	}
	if _, err := io.CopyN(io.Discard, o, pad); err != nil {
		return &IOError{Err: err}
	}
	return nil
}
