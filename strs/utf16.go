package strs

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ahmedabdelhay/gedo"
)

var (
	utf16Encoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
)

// UTF16FromString encodes s as UTF-16LE into an allocator block with a
// two-byte nul terminator, the layout Windows file APIs expect. The
// caller returns the block to alloc. A nil alloc selects the process
// default allocator.
func UTF16FromString(s string, alloc gedo.Allocator) (gedo.Block, error) {
	if alloc == nil {
		alloc = gedo.Default()
	}
	encoded, _, err := transform.Bytes(utf16Encoding.NewEncoder(), []byte(s))
	if err != nil {
		return gedo.Block{}, err
	}
	// Allocate arrives zero-filled, so the trailing two bytes are
	// already the terminator.
	block, err := alloc.Allocate(len(encoded) + 2)
	if err != nil {
		return gedo.Block{}, err
	}
	copy(block.Data(), encoded)
	return block, nil
}

// StringFromUTF16 decodes a nul-terminated UTF-16LE block produced by
// UTF16FromString back into a Go string.
func StringFromUTF16(block gedo.Block) (string, error) {
	data := block.Data()
	end := len(data)
	for i := 0; i+1 < len(data); i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			end = i
			break
		}
	}
	decoded, _, err := transform.Bytes(utf16Encoding.NewDecoder(), data[:end])
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
