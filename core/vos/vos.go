// Package vos abstracts the parts of the operating system a command touches:
// its standard streams and the working directory.
package vos

import "io"

// VIO holds the standard streams of a process.
type VIO interface {
	Stdin() io.ReadCloser
	Stdout() io.WriteCloser
	Stderr() io.WriteCloser
}

// VDir manages the working directory.
type VDir interface {
	Getwd() (string, error)
	Chdir(dir string) error
}

// VOS provides a virtual OS interface.
type VOS interface {
	VIO
	VDir
}
