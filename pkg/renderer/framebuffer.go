package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Framebuffer holds the rendered image as a row-major buffer of
// gamma-corrected color triples in [0, 1]. Row 0 is the top of the image.
// Quantizing and serializing to a file format is left to the caller.
type Framebuffer struct {
	Width  int
	Height int
	pixels []core.Vec3
}

// NewFramebuffer creates an all-black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// At returns the color at pixel (x, y)
func (f *Framebuffer) At(x, y int) core.Vec3 {
	return f.pixels[y*f.Width+x]
}

// Set writes the color at pixel (x, y)
func (f *Framebuffer) Set(x, y int, c core.Vec3) {
	f.pixels[y*f.Width+x] = c
}

// ToImage quantizes the buffer to an 8-bit RGBA image
func (f *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * c.X),
				G: uint8(255 * c.Y),
				B: uint8(255 * c.Z),
				A: 255,
			})
		}
	}
	return img
}
