package llama

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

// FindFilesError is the closed error set of FindAllModelFiles: either
// the main path has no parent directory, or probing the directory
// failed with an I/O error. Each kind knows how to express itself in
// the loading error taxonomy via LoadError, so absorbing a discovery
// failure can never lose information and can never fail.
type FindFilesError interface {
	error

	// LoadError converts the discovery failure into its loading
	// taxonomy equivalent. The conversion is total: every kind of
	// FindFilesError maps to exactly one loading error type.
	LoadError() error
}

// FindFilesNoParentPathError reports a main path with no parent
// directory to search for additional parts.
type FindFilesNoParentPathError struct {
	Path string
}

func (e *FindFilesNoParentPathError) Error() string {
	return fmt.Sprintf("no parent path for %q", e.Path)
}

// LoadError maps onto NoParentPathError.
func (e *FindFilesNoParentPathError) LoadError() error {
	return &NoParentPathError{Path: e.Path}
}

// FindFilesIOError reports an I/O failure while probing for parts.
type FindFilesIOError struct {
	Err error
}

func (e *FindFilesIOError) Error() string {
	return fmt.Sprintf("I/O error while finding model files: %v", e.Err)
}

func (e *FindFilesIOError) Unwrap() error { return e.Err }

// LoadError maps onto IOError.
func (e *FindFilesIOError) LoadError() error {
	return &IOError{Err: e.Err}
}

// FindAllModelFiles returns the main model path followed by any
// numbered sibling parts ("model", "model.1", "model.2", ...) in part
// order. Probing stops at the first missing index, so the returned set
// is always contiguous.
func FindAllModelFiles(mainPath string) ([]string, FindFilesError) {
	cleaned := filepath.Clean(mainPath)
	if parent := filepath.Dir(cleaned); parent == cleaned {
		return nil, &FindFilesNoParentPathError{Path: mainPath}
	}

	paths := []string{mainPath}
	for i := 1; ; i++ {
		candidate := cleaned + "." + strconv.Itoa(i)
		if _, err := os.Stat(candidate); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				break
			}
			return nil, &FindFilesIOError{Err: err}
		}
		paths = append(paths, candidate)
	}
	return paths, nil
}
