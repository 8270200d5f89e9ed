package vos

import (
	"io"
	"os"
)

// HostOS is a VOS backed by the real operating system.
type HostOS struct {
	VIO
}

var _ VOS = (*HostOS)(nil)

// NewHostOS creates a VOS over the real working directory with the given
// standard streams.
func NewHostOS(stdin io.Reader, stdout, stderr io.Writer) *HostOS {
	return &HostOS{VIO: NewVIOAdapter(stdin, stdout, stderr)}
}

// Getwd implements VDir.Getwd.
func (*HostOS) Getwd() (string, error) {
	return os.Getwd()
}

// Chdir implements VDir.Chdir.
func (*HostOS) Chdir(dir string) error {
	return os.Chdir(dir)
}
