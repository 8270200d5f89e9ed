// Package vostest provides a deterministic VOS for tests.
package vostest

import (
	"bytes"
	"io/fs"
	"path/filepath"
	"syscall"

	"github.com/spf13/afero"

	"github.com/Scharxi/mini-shell/core/vos"
)

// TestOS is a VOS backed by an in-memory filesystem that captures its
// output. Changing directory never affects the real process.
type TestOS struct {
	*vos.VIOAdapter

	Fs afero.Fs
	// Out and Err capture what was written to stdout and stderr.
	Out *bytes.Buffer
	Err *bytes.Buffer

	wd string
}

var _ vos.VOS = (*TestOS)(nil)

// NewTestOS creates a TestOS with the working directory set to "/" and the
// given directories already created.
func NewTestOS(dirs ...string) *TestOS {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	out := &TestOS{
		VIOAdapter: vos.NewVIOAdapter(nil, stdout, stderr),
		Fs:         afero.NewMemMapFs(),
		Out:        stdout,
		Err:        stderr,
		wd:         "/",
	}

	for _, dir := range dirs {
		if err := out.Fs.MkdirAll(dir, 0755); err != nil {
			panic(err)
		}
	}
	return out
}

// Getwd implements vos.VDir.Getwd.
func (t *TestOS) Getwd() (string, error) {
	return t.wd, nil
}

// Chdir implements vos.VDir.Chdir, dir must name an existing directory.
func (t *TestOS) Chdir(dir string) error {
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(t.wd, dir)
	}
	dir = filepath.Clean(dir)

	info, err := t.Fs.Stat(dir)
	if err != nil {
		return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.ENOENT}
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "chdir", Path: dir, Err: syscall.ENOTDIR}
	}

	t.wd = dir
	return nil
}
