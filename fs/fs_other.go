//go:build !linux

package fs

import (
	"fmt"
	"os"
)

func pathTypeOf(path string) PathType {
	info, err := os.Stat(path)
	if err != nil {
		return PathFailure
	}
	if info.IsDir() {
		return PathDirectory
	}
	if info.Mode().IsRegular() {
		return PathFile
	}
	return PathFailure
}

func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return -1, fmt.Errorf("fs: stat %s: %w", path, err)
	}
	return info.Size(), nil
}
