package larcv

import "testing"

func TestNewImage2DZeroFilled(t *testing.T) {
	img := NewImage2D(4, 3)
	if img.Width() != 4 || img.Height() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 4x3", img.Width(), img.Height())
	}
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			if img.Pixel(x, y) != 0 {
				t.Errorf("Pixel(%d, %d): got %g, want 0", x, y, img.Pixel(x, y))
			}
		}
	}
}

func TestImage2DSetPixel(t *testing.T) {
	img := NewImage2D(4, 3)
	img.SetPixel(2, 1, 7.5)
	if got := img.Pixel(2, 1); got != 7.5 {
		t.Errorf("Pixel(2, 1): got %g, want 7.5", got)
	}
	if got := img.Pixel(1, 2); got != 0 {
		t.Errorf("Pixel(1, 2): got %g, want 0", got)
	}
}

func TestImage2DCompressSumsBlocks(t *testing.T) {
	img := NewImage2D(4, 8)
	for x := 0; x < 4; x++ {
		for y := 0; y < 8; y++ {
			img.SetPixel(x, y, float32(x*8+y))
		}
	}

	out, err := img.Compress(2, 2)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	want := [2][2]float32{{44, 76}, {172, 204}}
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			if got := out.Pixel(x, y); got != want[x][y] {
				t.Errorf("Pixel(%d, %d): got %g, want %g", x, y, got, want[x][y])
			}
		}
	}
}

func TestImage2DCompressPreservesTotal(t *testing.T) {
	img := NewImage2D(6, 12)
	var total float32
	for x := 0; x < 6; x++ {
		for y := 0; y < 12; y++ {
			value := float32((x*13 + y*7) % 11)
			img.SetPixel(x, y, value)
			total += value
		}
	}

	out, err := img.Compress(3, 3)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	var sum float32
	for _, v := range out.Pixels() {
		sum += v
	}
	if sum != total {
		t.Errorf("total: got %g, want %g", sum, total)
	}
}

func TestImage2DCompressRejectsBadShape(t *testing.T) {
	img := NewImage2D(4, 8)
	if _, err := img.Compress(3, 2); err == nil {
		t.Error("Compress(3, 2) of a 4x8 image: no error")
	}
	if _, err := img.Compress(0, 2); err == nil {
		t.Error("Compress(0, 2): no error")
	}
}
