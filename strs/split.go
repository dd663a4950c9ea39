package strs

import (
	"github.com/ahmedabdelhay/gedo"
	"github.com/ahmedabdelhay/gedo/container"
)

// Split breaks s at delim and returns the non-empty parts as owned
// strings allocated from alloc. Runs of delimiters collapse, so no empty
// parts are produced. A nil alloc selects the process default allocator.
func Split(s string, delim byte, alloc gedo.Allocator) (container.Array[String], error) {
	if alloc == nil {
		alloc = gedo.Default()
	}
	out := container.NewWith[String](alloc)
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == delim {
			if i > start {
				part, err := NewFrom(s[start:i], alloc)
				if err != nil {
					closeAll(&out)
					return container.Array[String]{}, err
				}
				if err := out.Append(part); err != nil {
					part.Close()
					closeAll(&out)
					return container.Array[String]{}, err
				}
			}
			start = i + 1
		}
	}
	return out, nil
}

// SplitLines splits s at newlines, dropping empty lines.
func SplitLines(s string, alloc gedo.Allocator) (container.Array[String], error) {
	return Split(s, '\n', alloc)
}

// Concat joins parts into one owned string. A non-zero sep is inserted
// between consecutive parts.
func Concat(parts []String, sep byte, alloc gedo.Allocator) (String, error) {
	out := New(alloc)
	total := 0
	for i := range parts {
		total += parts[i].Len()
	}
	if sep != 0 && len(parts) > 1 {
		total += len(parts) - 1
	}
	if err := out.Reserve(total); err != nil {
		return String{}, err
	}
	for i := range parts {
		if err := out.Append(parts[i].String()); err != nil {
			out.Close()
			return String{}, err
		}
		if sep != 0 && i != len(parts)-1 {
			if err := out.AppendByte(sep); err != nil {
				out.Close()
				return String{}, err
			}
		}
	}
	return out, nil
}

// FileExtension returns the extension of path including the dot, or ""
// when path has none.
func FileExtension(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

// closeAll releases every string already collected plus the array block.
func closeAll(parts *container.Array[String]) {
	for i := 0; i < parts.Len(); i++ {
		p := parts.Get(i)
		p.Close()
	}
	parts.Close()
}
