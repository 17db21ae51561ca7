// Package fileutil writes generated site files.
package fileutil

import (
	"io"
	"os"
	"path/filepath"
)

// ReadableByAll is the file permission mode for generated site files, which
// are served by web servers running as other users.
const ReadableByAll os.FileMode = 0o644

// DirReadableByAll is the permission mode for generated site directories.
const DirReadableByAll os.FileMode = 0o755

// WriteFile writes data to path, creating missing parent directories.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirReadableByAll); err != nil {
		return err
	}
	return os.WriteFile(path, data, ReadableByAll)
}

// CopyFile copies the contents of src to dest, creating missing parent
// directories. An existing dest is truncated.
func CopyFile(dest, src string) (err error) {
	if err := os.MkdirAll(filepath.Dir(dest), DirReadableByAll); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, ReadableByAll)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
