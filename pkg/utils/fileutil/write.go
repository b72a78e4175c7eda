// Package fileutil writes generated artefacts to disk.
package fileutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
)

// WriteAtomic renders into a buffer with fn and replaces path with the
// result. The previous file stays intact when fn fails.
func WriteAtomic(path string, fn func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return goerr.Wrap(err, "failed to create output directory", goerr.V("dir", dir))
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return goerr.Wrap(err, "failed to create temporary file", goerr.V("dir", dir))
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return goerr.Wrap(err, "failed to write temporary file", goerr.V("path", tmp.Name()))
	}
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to close temporary file", goerr.V("path", tmp.Name()))
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return goerr.Wrap(err, "failed to set file mode", goerr.V("path", tmp.Name()))
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return goerr.Wrap(err, "failed to replace file", goerr.V("path", path))
	}
	return nil
}
