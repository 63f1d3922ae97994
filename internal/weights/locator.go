// Package weights locates model weight bundles on disk so a file-backed
// loader (and the serve command's startup check) can find them without
// hard-coding paths.
package weights

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"segmentd/internal/common/fsutil"
)

// File describes one weight bundle found on disk.
type File struct {
	Name      string
	Path      string
	SizeBytes int64
}

// weight bundle extensions we recognize
var extensions = map[string]struct{}{
	".tflite": {},
	".pb":     {},
	".onnx":   {},
	".bin":    {},
}

// LoadDir scans a directory for weight bundles. ID is the full filename;
// Path is the absolute file path.
func LoadDir(dir string) ([]File, error) {
	base, err := fsutil.ExpandHome(dir)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var files []File
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if _, ok := extensions[strings.ToLower(filepath.Ext(name))]; !ok {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, File{Name: name, Path: filepath.Join(abs, name), SizeBytes: info.Size()})
	}
	return files, nil
}

// Locate returns the largest weight bundle in dir, on the assumption that
// sidecar metadata files are small next to the weights themselves.
func Locate(dir string) (File, error) {
	files, err := LoadDir(dir)
	if err != nil {
		return File{}, err
	}
	if len(files) == 0 {
		return File{}, fmt.Errorf("no weight bundles in %s", dir)
	}
	best := files[0]
	for _, f := range files[1:] {
		if f.SizeBytes > best.SizeBytes {
			best = f
		}
	}
	return best, nil
}
