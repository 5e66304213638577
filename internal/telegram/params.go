package telegram

import (
	"io"
	"os"
	"path/filepath"
)

// Params are the parameters of one Bot API call. Values are scalars, nested
// maps/slices (JSON-encoded on the wire) or InputFile markers.
type Params map[string]any

// Set stores key and returns p for chaining.
func (p Params) Set(key string, value any) Params {
	p[key] = value
	return p
}

// InputFile marks a parameter as a file upload; its presence switches the
// request to multipart/form-data.
type InputFile struct {
	// Name is the file name sent in the multipart header.
	Name string
	// Path is read from disk when Reader is nil.
	Path   string
	Reader io.Reader
}

// FileFromPath uploads the file at path.
func FileFromPath(path string) InputFile {
	return InputFile{Name: filepath.Base(path), Path: path}
}

// FileFromReader uploads the content of r under name.
func FileFromReader(name string, r io.Reader) InputFile {
	return InputFile{Name: name, Reader: r}
}

func (f InputFile) open() (io.ReadCloser, error) {
	if f.Reader != nil {
		if rc, ok := f.Reader.(io.ReadCloser); ok {
			return rc, nil
		}
		return io.NopCloser(f.Reader), nil
	}
	return os.Open(f.Path)
}

// fileFields are the parameters whose plain string value may name a local file.
var fileFields = map[string]bool{
	"photo":       true,
	"document":    true,
	"audio":       true,
	"video":       true,
	"animation":   true,
	"voice":       true,
	"video_note":  true,
	"sticker":     true,
	"thumbnail":   true,
	"certificate": true,
}

// localFile reports whether a string parameter value refers to an existing regular file.
func localFile(key string, value any) (InputFile, bool) {
	s, ok := value.(string)
	if !ok || !fileFields[key] || s == "" {
		return InputFile{}, false
	}
	info, err := os.Stat(s)
	if err != nil || !info.Mode().IsRegular() {
		return InputFile{}, false
	}
	return FileFromPath(s), true
}

// hasFiles reports whether any value of p, at any depth, needs a multipart upload.
func hasFiles(p Params) bool {
	for k, v := range p {
		if _, ok := localFile(k, v); ok {
			return true
		}
		if containsInputFile(v) {
			return true
		}
	}
	return false
}

func containsInputFile(v any) bool {
	switch val := v.(type) {
	case InputFile, *InputFile:
		return true
	case Params:
		for _, item := range val {
			if containsInputFile(item) {
				return true
			}
		}
	case map[string]any:
		for _, item := range val {
			if containsInputFile(item) {
				return true
			}
		}
	case []any:
		for _, item := range val {
			if containsInputFile(item) {
				return true
			}
		}
	case []map[string]any:
		for _, item := range val {
			if containsInputFile(item) {
				return true
			}
		}
	}
	return false
}
