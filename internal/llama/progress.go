package llama

// Progress is one milestone in the life of a model load. The loader
// delivers events synchronously, on the loading goroutine, in the order
//
//	HyperparametersLoaded, ContextSize,
//	then per part: PartLoading, PartTensorLoaded..., PartLoaded.
//
// Events reference data owned by the loader (paths, hyperparameters);
// they are only valid for the duration of the callback and must not be
// retained past it. Copy what you need.
type Progress interface {
	progress()
}

// ProgressFunc receives progress events. A nil ProgressFunc disables
// reporting. The loader blocks until the callback returns, so the next
// event is never produced while one is being handled.
type ProgressFunc func(Progress)

// HyperparametersLoaded is emitted once the hyperparameters have been
// read from the model header.
type HyperparametersLoaded struct {
	Hyperparameters *Hyperparameters
}

// ContextSize is emitted once the memory required for the model has
// been estimated.
type ContextSize struct {
	Bytes uint64
}

// PartLoading is emitted when a model part begins loading.
type PartLoading struct {
	File        string
	CurrentPart int // zero-based
	TotalParts  int
}

// PartTensorLoaded is emitted after each tensor of the current part.
// CurrentTensor counts up from 0 to TensorCount-1 within one part.
type PartTensorLoaded struct {
	File          string
	CurrentTensor int // zero-based
	TensorCount   int
}

// PartLoaded is emitted when a model part has finished loading.
type PartLoaded struct {
	File        string
	ByteSize    int
	TensorCount int
}

func (HyperparametersLoaded) progress() {}
func (ContextSize) progress()           {}
func (PartLoading) progress()           {}
func (PartTensorLoaded) progress()      {}
func (PartLoaded) progress()            {}
