// Package llama loads llama models stored in legacy GGML containers
// (GGML, GGMF, GGJT) and defines the contract every consumer of the
// loader agrees on: the progress event stream and the error taxonomy.
//
// A load runs sequentially and fail-fast. The pipeline validates the
// container magic and version, reads hyperparameters and the
// vocabulary, derives the expected tensor manifest from the
// hyperparameters, and then reads tensor entries until end of file,
// checking each against the manifest. Milestones are reported through a
// ProgressFunc; any failure is returned as exactly one of the error
// types in this package, with lower-level causes preserved for
// errors.As and errors.Is.
//
// Example:
//
//	model, err := llama.Load("path/to/model.bin", 2048, func(p llama.Progress) {
//	    if t, ok := p.(llama.PartTensorLoaded); ok {
//	        fmt.Printf("tensor %d/%d\n", t.CurrentTensor+1, t.TensorCount)
//	    }
//	})
//	if err != nil {
//	    var magic *llama.InvalidMagicError
//	    if errors.As(err, &magic) {
//	        // not a GGML model file
//	    }
//	}
//
// Design principles:
//   - Pure Go, no CGO, no concurrency: events arrive on the calling
//     goroutine and the next one is not produced until the callback
//     returns.
//   - Closed sets: container types, file types, progress events and
//     error kinds are all fixed enumerations, never extended at run
//     time.
//   - No silent defaults: an out-of-range storage-format code is an
//     error, never clamped and never replaced by a fallback.
package llama
