package larcv

import "fmt"

// Image2D is a dense grid of ADC values stored row major, the wire axis
// first. The zero value of every pixel is 0.
type Image2D struct {
	width  int
	height int
	pixels []float32
}

func NewImage2D(width int, height int) Image2D {
	return Image2D{width: width, height: height, pixels: make([]float32, width*height)}
}

func (img Image2D) Width() int {
	return img.width
}

func (img Image2D) Height() int {
	return img.height
}

func (img *Image2D) SetPixel(x int, y int, value float32) {
	img.pixels[x*img.height+y] = value
}

func (img Image2D) Pixel(x int, y int) float32 {
	return img.pixels[x*img.height+y]
}

// Pixels exposes the backing slice for bulk writes to the output file.
func (img Image2D) Pixels() []float32 {
	return img.pixels
}

// Compress shrinks the image to newWidth by newHeight by summing
// rectangular blocks. The new dimensions must divide the old ones exactly.
func (img Image2D) Compress(newWidth int, newHeight int) (Image2D, error) {
	if newWidth <= 0 || newHeight <= 0 || img.width%newWidth != 0 || img.height%newHeight != 0 {
		return Image2D{}, fmt.Errorf("cannot compress %dx%d image to %dx%d",
			img.width, img.height, newWidth, newHeight)
	}

	blockWidth := img.width / newWidth
	blockHeight := img.height / newHeight
	out := NewImage2D(newWidth, newHeight)
	for x := 0; x < newWidth; x++ {
		for y := 0; y < newHeight; y++ {
			var sum float32
			for i := 0; i < blockWidth; i++ {
				for j := 0; j < blockHeight; j++ {
					sum += img.Pixel(x*blockWidth+i, y*blockHeight+j)
				}
			}
			out.SetPixel(x, y, sum)
		}
	}
	return out, nil
}
