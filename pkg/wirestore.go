package larcv

// WireStore holds one event's waveforms keyed by channel id. A fresh store
// is built for every event and dropped when processing returns.
type WireStore struct {
	signals map[int][]float32
}

func NewWireStore() *WireStore {
	return &WireStore{signals: make(map[int][]float32)}
}

// Ingest inserts the waveform for a channel, replacing any previous one.
func (s *WireStore) Ingest(channel int, samples []float32) {
	s.signals[channel] = samples
}

func (s *WireStore) Lookup(channel int) ([]float32, bool) {
	samples, ok := s.signals[channel]
	return samples, ok
}

// Sample returns the amplitude at (channel, tick). Unknown channels and
// ticks past the end of the waveform read as zero.
func (s *WireStore) Sample(channel int, tick int) float32 {
	samples, ok := s.signals[channel]
	if !ok || tick < 0 || tick >= len(samples) {
		return 0
	}
	return samples[tick]
}

func (s *WireStore) Len() int {
	return len(s.signals)
}
