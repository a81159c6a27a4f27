package larcv

import "testing"

func TestBuildPlaneImageSumsBlocksIntoCanvas(t *testing.T) {
	store := NewWireStore()
	for channel := 0; channel < 4; channel++ {
		samples := make([]float32, 8)
		for tick := range samples {
			samples[tick] = float32(channel*10 + tick)
		}
		store.Ingest(channel, samples)
	}
	roi := ROI{FirstWire: 0, LastWire: 3, FirstTick: 0, LastTick: 7, Downsample: 1}

	img, err := BuildPlaneImage(store, roi)
	if err != nil {
		t.Fatalf("BuildPlaneImage: %v", err)
	}
	if img.Width() != ImageSize || img.Height() != ImageSize {
		t.Fatalf("canvas: got %dx%d, want %dx%d", img.Width(), img.Height(), ImageSize, ImageSize)
	}
	for channel := 0; channel < 4; channel++ {
		wantLow := float32(channel*40 + 6)   // ticks 0..3
		wantHigh := float32(channel*40 + 22) // ticks 4..7
		if got := img.Pixel(channel, 0); got != wantLow {
			t.Errorf("Pixel(%d, 0): got %g, want %g", channel, got, wantLow)
		}
		if got := img.Pixel(channel, 1); got != wantHigh {
			t.Errorf("Pixel(%d, 1): got %g, want %g", channel, got, wantHigh)
		}
	}
	if got := img.Pixel(4, 0); got != 0 {
		t.Errorf("Pixel(4, 0): got %g, want 0", got)
	}
	if got := img.Pixel(0, 2); got != 0 {
		t.Errorf("Pixel(0, 2): got %g, want 0", got)
	}
}

func TestBuildPlaneImageMissingChannelReadsZero(t *testing.T) {
	store := NewWireStore()
	store.Ingest(0, []float32{1, 1, 1, 1, 1, 1, 1, 1})
	store.Ingest(2, []float32{1, 1, 1, 1})
	roi := ROI{FirstWire: 0, LastWire: 3, FirstTick: 0, LastTick: 7, Downsample: 1}

	img, err := BuildPlaneImage(store, roi)
	if err != nil {
		t.Fatalf("BuildPlaneImage: %v", err)
	}
	if got := img.Pixel(0, 0); got != 4 {
		t.Errorf("Pixel(0, 0): got %g, want 4", got)
	}
	if got := img.Pixel(1, 0); got != 0 { // channel 1 never ingested
		t.Errorf("Pixel(1, 0): got %g, want 0", got)
	}
	if got := img.Pixel(2, 0); got != 4 {
		t.Errorf("Pixel(2, 0): got %g, want 4", got)
	}
	if got := img.Pixel(2, 1); got != 0 { // waveform ends at tick 3
		t.Errorf("Pixel(2, 1): got %g, want 0", got)
	}
}

func TestBuildPlaneImageDownsampled(t *testing.T) {
	store := NewWireStore()
	for channel := 0; channel < 4; channel++ {
		samples := make([]float32, 16)
		for tick := range samples {
			samples[tick] = 1
		}
		store.Ingest(channel, samples)
	}
	roi := ROI{FirstWire: 0, LastWire: 3, FirstTick: 0, LastTick: 15, Downsample: 2}

	img, err := BuildPlaneImage(store, roi)
	if err != nil {
		t.Fatalf("BuildPlaneImage: %v", err)
	}
	// 4 wires x 16 ticks collapse into 2x2 blocks of 2x8 raw samples each
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			if got := img.Pixel(x, y); got != 16 {
				t.Errorf("Pixel(%d, %d): got %g, want 16", x, y, got)
			}
		}
	}
	if got := img.Pixel(2, 0); got != 0 {
		t.Errorf("Pixel(2, 0): got %g, want 0", got)
	}
}

func TestBuildPlaneImageWideRegionTruncated(t *testing.T) {
	store := NewWireStore()
	store.Ingest(619, []float32{0, 0, 0, 9})
	roi := ROI{FirstWire: 0, LastWire: 619, FirstTick: 0, LastTick: 3, Downsample: 1}

	img, err := BuildPlaneImage(store, roi)
	if err != nil {
		t.Fatalf("BuildPlaneImage: %v", err)
	}
	if img.Width() != ImageSize || img.Height() != ImageSize {
		t.Fatalf("canvas: got %dx%d, want %dx%d", img.Width(), img.Height(), ImageSize, ImageSize)
	}
	// column 619 of the compressed image falls outside the canvas
	var sum float32
	for _, v := range img.Pixels() {
		sum += v
	}
	if sum != 0 {
		t.Errorf("canvas sum: got %g, want 0", sum)
	}
}
