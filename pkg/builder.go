package larcv

import "fmt"

// BuildPlaneImage renders one plane's region of interest into the fixed
// size canvas: fill the raw wires-by-ticks grid from the store, sum it
// down by the downsample blocks, and place the result in the top-left
// corner of a zeroed ImageSize x ImageSize image. The canvas loop bounds
// checks both axes, so a compressed region larger than the canvas is
// truncated rather than written out of range.
func BuildPlaneImage(store *WireStore, roi ROI) (Image2D, error) {
	raw := NewImage2D(roi.Wires(), roi.Ticks())
	for itWire := 0; itWire < roi.Wires(); itWire++ {
		channel := roi.FirstWire + itWire
		if _, ok := store.Lookup(channel); !ok {
			continue
		}
		for itTick := 0; itTick < roi.Ticks(); itTick++ {
			raw.SetPixel(itWire, itTick, store.Sample(channel, roi.FirstTick+itTick))
		}
	}

	width := roi.Wires() / roi.Downsample
	height := roi.Ticks() / (TickBlock * roi.Downsample)
	compressed, err := raw.Compress(width, height)
	if err != nil {
		return Image2D{}, fmt.Errorf("compressing plane image: %w", err)
	}

	canvas := NewImage2D(ImageSize, ImageSize)
	for x := 0; x < ImageSize; x++ {
		for y := 0; y < ImageSize; y++ {
			if x < width && y < height {
				canvas.SetPixel(x, y, compressed.Pixel(x, y))
			}
		}
	}
	return canvas, nil
}
