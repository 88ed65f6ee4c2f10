package tuplegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestWriteAndCheck(t *testing.T) {
	dir := t.TempDir()
	files, err := Generate(smallConfig)
	qt.Assert(t, qt.IsNil(err))

	stale, err := Check(dir, files)
	qt.Assert(t, qt.ErrorIs(err, ErrStale))
	qt.Assert(t, qt.HasLen(stale, len(files)))

	err = Write(dir, files)
	qt.Assert(t, qt.IsNil(err))
	stale, err = Check(dir, files)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(stale, 0))

	err = os.WriteFile(filepath.Join(dir, "join3.go"), []byte("package tuple\n"), 0o666)
	qt.Assert(t, qt.IsNil(err))
	stale, err = Check(dir, files)
	qt.Assert(t, qt.ErrorMatches(err, `generated files are out of date: join3.go`))
	qt.Assert(t, qt.DeepEquals(stale, []string{"join3.go"}))
}

func TestWriteError(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "nonexistent"), []File{{Name: "x.go"}})
	qt.Assert(t, qt.ErrorIs(err, os.ErrNotExist))
}
