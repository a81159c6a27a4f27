package larcv

// FindBestAPA scores every candidate APA by its total summed amplitude
// over all three planes and returns the highest one. Candidates are scored
// in the order given and a later candidate must strictly beat the running
// best, so ties go to the earliest candidate. Callers pass candidates in
// first-appearance order to keep the choice deterministic.
func FindBestAPA(store *WireStore, apas []int) (int, error) {
	if len(apas) == 0 {
		return 0, ErrNoViableAPA
	}

	best := apas[0]
	bestADC := apaCharge(store, apas[0])
	for _, apa := range apas[1:] {
		charge := apaCharge(store, apa)
		if charge > bestADC {
			best = apa
			bestADC = charge
		}
	}
	return best, nil
}

// apaCharge sums raw amplitudes over every channel of the APA and every
// tick below MaxTick. Missing channels and short waveforms contribute
// zero. Amplitudes below the ADC cut still count here; the cut only
// applies to region finding.
func apaCharge(store *WireStore, apa int) float32 {
	var total float32
	for plane := 0; plane < NumPlanes; plane++ {
		first, last := PlaneRange(apa, plane)
		for channel := first; channel <= last; channel++ {
			samples, ok := store.Lookup(channel)
			if !ok {
				continue
			}
			maxTick := configuration.MaxTick
			if len(samples) < maxTick {
				maxTick = len(samples)
			}
			for tick := 0; tick < maxTick; tick++ {
				total += samples[tick]
			}
		}
	}
	return total
}
