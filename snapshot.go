package glpipe

import "image"

// Snapshot reads the bottom-left width x height region of the read
// framebuffer into an image with the top row first.
func (c *Context) Snapshot(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}
	pixels := c.drv.ReadPixels(0, 0, int32(width), int32(height))

	// Flip vertically (OpenGL origin is bottom-left).
	rowLen := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowLen
		if src+rowLen > len(pixels) {
			continue
		}
		copy(img.Pix[y*img.Stride:y*img.Stride+rowLen], pixels[src:src+rowLen])
	}
	return img
}
