// Package bitmap provides allocator-backed mono and color bitmaps with
// simple rectangle blitting.
package bitmap

import (
	"fmt"
	"unsafe"

	"github.com/ahmedabdelhay/gedo"
)

// Color is an RGBA color with 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

// Predefined colors.
var (
	Red       = Color{255, 0, 0, 255}
	Green     = Color{0, 255, 0, 255}
	GreenBlue = Color{78, 201, 176, 255}
	Blue      = Color{0, 0, 255, 255}
	White     = Color{255, 255, 255, 255}
	Black     = Color{0, 0, 0, 255}
	DarkGrey  = Color{30, 30, 30, 255}
)

// Rect is an axis-aligned rectangle in pixel coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Bitmap is a one-byte-per-pixel mask backed by an allocator block.
type Bitmap struct {
	Width, Height int

	alloc gedo.Allocator
	block gedo.Block
}

// ColorBitmap is a Color-per-pixel image backed by an allocator block.
type ColorBitmap struct {
	Width, Height int

	alloc gedo.Allocator
	block gedo.Block
}

// NewBitmap allocates a zeroed width x height mask from alloc. A nil
// alloc selects the process default allocator.
func NewBitmap(width, height int, alloc gedo.Allocator) (*Bitmap, error) {
	if alloc == nil {
		alloc = gedo.Default()
	}
	block, err := alloc.Allocate(width * height)
	if err != nil {
		return nil, err
	}
	return &Bitmap{Width: width, Height: height, alloc: alloc, block: block}, nil
}

// Pixels returns the mask bytes in row-major order.
func (b *Bitmap) Pixels() []byte {
	return b.block.Data()
}

// Close returns the pixel block to the allocator that issued it.
func (b *Bitmap) Close() {
	b.alloc.Free(&b.block)
}

// NewColorBitmap allocates a zeroed width x height image from alloc. A
// nil alloc selects the process default allocator.
func NewColorBitmap(width, height int, alloc gedo.Allocator) (*ColorBitmap, error) {
	if alloc == nil {
		alloc = gedo.Default()
	}
	block, err := alloc.Allocate(width * height * int(unsafe.Sizeof(Color{})))
	if err != nil {
		return nil, err
	}
	return &ColorBitmap{Width: width, Height: height, alloc: alloc, block: block}, nil
}

// Pixels views the block as colors in row-major order.
func (b *ColorBitmap) Pixels() []Color {
	data := b.block.Data()
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*Color)(unsafe.Pointer(unsafe.SliceData(data))), b.Width*b.Height)
}

// Close returns the pixel block to the allocator that issued it.
func (b *ColorBitmap) Close() {
	b.alloc.Free(&b.block)
}

func checkArea(width, height int, area Rect) {
	if area.X+area.Width > width || area.Y+area.Height > height {
		panic(fmt.Sprintf("fill area %+v outside %dx%d bitmap", area, width, height))
	}
}

// FillRect fills area of dst with a solid color.
func FillRect(dst *ColorBitmap, area Rect, color Color) {
	checkArea(dst.Width, dst.Height, area)
	pixels := dst.Pixels()
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			pixels[y*dst.Width+x] = color
		}
	}
}

// FillRectMask fills area of dst with color wherever the corresponding
// mask byte is non-zero. The mask is read row-major from its origin and
// must cover area.
func FillRectMask(dst *ColorBitmap, area Rect, mask *Bitmap, color Color) {
	checkArea(dst.Width, dst.Height, area)
	pixels := dst.Pixels()
	maskPixels := mask.Pixels()
	i := 0
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			if maskPixels[i] != 0 {
				pixels[y*dst.Width+x] = color
			}
			i++
		}
	}
}

// FillRectFrom copies src pixels row-major into area of dst. src must
// hold at least area.Width*area.Height pixels.
func FillRectFrom(dst *ColorBitmap, area Rect, src *ColorBitmap) {
	checkArea(dst.Width, dst.Height, area)
	pixels := dst.Pixels()
	srcPixels := src.Pixels()
	i := 0
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			pixels[y*dst.Width+x] = srcPixels[i]
			i++
		}
	}
}
