package larcv

import (
	"errors"
	"testing"
)

func TestFindBestAPALouderWins(t *testing.T) {
	configureForTest(t)
	store := NewWireStore()
	// APA 0 carries one small spike, APA 1 sustained activity
	store.Ingest(400, spike(1000, 25))
	samples := make([]float32, 200)
	for tick := range samples {
		samples[tick] = 30
	}
	store.Ingest(2560+400, samples)

	apa, err := FindBestAPA(store, []int{0, 1})
	if err != nil {
		t.Fatalf("FindBestAPA: %v", err)
	}
	if apa != 1 {
		t.Errorf("best APA: got %d, want 1", apa)
	}
}

func TestFindBestAPATieKeepsFirstCandidate(t *testing.T) {
	configureForTest(t)
	store := NewWireStore()
	store.Ingest(400, spike(1000, 25))
	store.Ingest(2560+400, spike(1000, 25))

	apa, err := FindBestAPA(store, []int{1, 0})
	if err != nil {
		t.Fatalf("FindBestAPA: %v", err)
	}
	if apa != 1 {
		t.Errorf("best APA: got %d, want first candidate 1", apa)
	}
}

func TestFindBestAPANoCandidates(t *testing.T) {
	configureForTest(t)
	store := NewWireStore()

	_, err := FindBestAPA(store, nil)
	if !errors.Is(err, ErrNoViableAPA) {
		t.Errorf("error: got %v, want ErrNoViableAPA", err)
	}
}

func TestFindBestAPAChargeStopsAtMaxTick(t *testing.T) {
	saved := GetConfiguration()
	t.Cleanup(func() { SetConfiguration(saved) })
	SetConfiguration(Configuration{MaxTick: 100, ADCCut: 20})

	store := NewWireStore()
	// a huge pulse beyond the readout window contributes nothing
	store.Ingest(400, spike(200, 1000))
	store.Ingest(2560+400, spike(50, 10))

	apa, err := FindBestAPA(store, []int{0, 1})
	if err != nil {
		t.Fatalf("FindBestAPA: %v", err)
	}
	if apa != 1 {
		t.Errorf("best APA: got %d, want 1", apa)
	}
}
