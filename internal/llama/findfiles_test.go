package llama

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("part"), 0o644))
}

func TestFindAllModelFilesSinglePart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.bin")
	touch(t, path)

	paths, err := FindAllModelFiles(path)
	require.Nil(t, err)
	assert.Equal(t, []string{path}, paths)
}

func TestFindAllModelFilesNumberedParts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.bin")
	touch(t, path)
	touch(t, path+".1")
	touch(t, path+".2")
	touch(t, path+".4") // gap at .3: probing stops at the first hole

	paths, err := FindAllModelFiles(path)
	require.Nil(t, err)
	assert.Equal(t, []string{path, path + ".1", path + ".2"}, paths)
}

func TestFindAllModelFilesNoParentPath(t *testing.T) {
	_, err := FindAllModelFiles("/")
	require.NotNil(t, err)

	var noParent *FindFilesNoParentPathError
	require.ErrorAs(t, err, &noParent)
	assert.Equal(t, "/", noParent.Path)
}

// Every discovery failure kind maps onto exactly one loading error
// type, and the conversion can never fail.
func TestFindFilesErrorAbsorption(t *testing.T) {
	ioCause := errors.New("disk on fire")

	cases := []struct {
		name string
		in   FindFilesError
		want error
	}{
		{
			name: "no parent path",
			in:   &FindFilesNoParentPathError{Path: "/"},
			want: &NoParentPathError{Path: "/"},
		},
		{
			name: "io",
			in:   &FindFilesIOError{Err: ioCause},
			want: &IOError{Err: ioCause},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.LoadError()
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFindFilesIOErrorPreservesCause(t *testing.T) {
	cause := errors.New("permission denied")
	var ferr FindFilesError = &FindFilesIOError{Err: cause}

	assert.ErrorIs(t, ferr, cause)
	assert.ErrorIs(t, ferr.LoadError(), cause)
}
