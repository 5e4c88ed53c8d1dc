package render

import (
	"fmt"
	"image"
	"image/png"
	"path/filepath"

	"gopkg.in/src-d/go-billy.v4"
)

// WriteError reports a failure to persist a rendered image.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Save PNG-encodes img into path on fs, creating parent directories.
func Save(fs billy.Filesystem, path string, img image.Image) (err error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return &WriteError{Path: path, Err: err}
		}
	}
	f, err := fs.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &WriteError{Path: path, Err: cerr}
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
