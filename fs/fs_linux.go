package fs

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func pathTypeOf(path string) PathType {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return PathFailure
	}
	switch st.Mode & unix.S_IFMT {
	case unix.S_IFDIR:
		return PathDirectory
	case unix.S_IFREG:
		return PathFile
	}
	return PathFailure
}

func fileSize(path string) (int64, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return -1, fmt.Errorf("fs: stat %s: %w", path, err)
	}
	return st.Size, nil
}
