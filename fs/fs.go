// Package fs provides whole-file helpers that read into and write from
// allocator-issued blocks.
package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/ahmedabdelhay/gedo"
)

// PathType classifies a filesystem path.
type PathType int

const (
	// PathFailure means the path does not exist or cannot be inspected.
	PathFailure PathType = iota
	// PathFile is a regular file.
	PathFile
	// PathDirectory is a directory.
	PathDirectory
)

// ReadFile reads the whole file into a block of size+1 bytes issued by
// alloc, leaving the trailing byte zero so the contents are
// nul-terminated and can be adopted by strs.FromBlock. The caller
// returns the block to alloc. A nil alloc selects the process default
// allocator.
func ReadFile(path string, alloc gedo.Allocator) (gedo.Block, error) {
	if alloc == nil {
		alloc = gedo.Default()
	}
	size, err := Size(path)
	if err != nil {
		return gedo.Block{}, err
	}
	block, err := alloc.Allocate(int(size) + 1)
	if err != nil {
		return gedo.Block{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		alloc.Free(&block)
		return gedo.Block{}, err
	}
	defer f.Close()
	if _, err := io.ReadFull(f, block.Data()[:size]); err != nil {
		alloc.Free(&block)
		return gedo.Block{}, fmt.Errorf("fs: read %s: %w", path, err)
	}
	return block, nil
}

// WriteFile writes the block's bytes to path, creating or truncating it.
func WriteFile(path string, block gedo.Block) error {
	return os.WriteFile(path, block.Data(), 0o644)
}

// Exists reports whether path exists.
func Exists(path string) bool {
	return PathTypeOf(path) != PathFailure
}

// PathTypeOf classifies path as a file, a directory, or a failure.
func PathTypeOf(path string) PathType {
	return pathTypeOf(path)
}

// Size returns the size of the file at path in bytes.
func Size(path string) (int64, error) {
	return fileSize(path)
}
