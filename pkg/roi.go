package larcv

// ROI is the padded region of interest on one readout plane. Wire bounds
// are absolute channel ids, tick bounds are sample indices, and all four
// bounds are inclusive. After FindROI succeeds, Wires() is divisible by
// Downsample and Ticks() by TickBlock*Downsample.
type ROI struct {
	FirstWire  int
	LastWire   int
	FirstTick  int
	LastTick   int
	Downsample int
}

func (r ROI) Wires() int {
	return r.LastWire - r.FirstWire + 1
}

func (r ROI) Ticks() int {
	return r.LastTick - r.FirstTick + 1
}

// FindROI locates the activity on one plane of the chosen APA and pads it
// into a region whose downsampled size is exact. It depends only on the
// store and the configured ADC cut, so running it twice gives the same
// region.
func FindROI(store *WireStore, apa int, plane int) (ROI, error) {
	firstChannel, lastChannel := PlaneRange(apa, plane)

	// bounding box of samples above the cut
	cut := float32(configuration.ADCCut)
	roi := ROI{}
	found := false
	for channel := firstChannel; channel <= lastChannel; channel++ {
		samples, ok := store.Lookup(channel)
		if !ok {
			continue
		}
		for tick, adc := range samples {
			if adc <= cut {
				continue
			}
			if !found {
				roi = ROI{FirstWire: channel, LastWire: channel, FirstTick: tick, LastTick: tick}
				found = true
				continue
			}
			if channel < roi.FirstWire {
				roi.FirstWire = channel
			}
			if channel > roi.LastWire {
				roi.LastWire = channel
			}
			if tick < roi.FirstTick {
				roi.FirstTick = tick
			}
			if tick > roi.LastTick {
				roi.LastTick = tick
			}
		}
	}
	if !found {
		return ROI{}, &ErrROINotFound{APA: apa, Plane: plane}
	}

	roi.Downsample = 1
	if roi.Wires() > ImageSize || roi.Ticks()/TickBlock > ImageSize {
		roi.Downsample = 2
	}

	if err := padWires(&roi, firstChannel, lastChannel, apa, plane); err != nil {
		return ROI{}, err
	}
	if err := padTicks(&roi, apa, plane); err != nil {
		return ROI{}, err
	}
	return roi, nil
}

// padWires grows the wire bounds by the margin, clamped to the plane, then
// nudges one bound so the count divides by the downsample factor.
func padWires(roi *ROI, firstChannel int, lastChannel int, apa int, plane int) error {
	margin := WireMargin * roi.Downsample
	if roi.FirstWire-margin < firstChannel {
		roi.FirstWire = firstChannel
	} else {
		roi.FirstWire -= margin
	}
	if roi.LastWire+margin > lastChannel {
		roi.LastWire = lastChannel
	} else {
		roi.LastWire += margin
	}

	if roi.Wires()%roi.Downsample == 1 {
		switch {
		case roi.LastWire < lastChannel:
			roi.LastWire++
		case roi.FirstWire > firstChannel:
			roi.FirstWire--
		default:
			// plane widths are even, so a full-plane region can never
			// end up here
			return &ErrInvariantViolation{Dimension: "wire", APA: apa, Plane: plane,
				Count: roi.Wires(), Order: roi.Downsample}
		}
	}
	return nil
}

// padTicks grows the tick bounds by the margin plus whatever is needed to
// make the count divide by the block order, clamping to the canonical
// window. A region too large to pad is widened to the whole window, whose
// length divides exactly for both downsample factors.
func padTicks(roi *ROI, apa int, plane int) error {
	windowFirst, windowLast := TickWindow(roi.Downsample)
	window := windowLast - windowFirst
	order := TickBlock * roi.Downsample
	margin := TickMargin * roi.Downsample

	ticksToAdd := 0
	if roi.Ticks()%order != 0 {
		ticksToAdd = order - roi.Ticks()%order
	}
	if roi.Ticks()+2*margin+ticksToAdd > window {
		roi.FirstTick = windowFirst
		roi.LastTick = windowLast
		return nil
	}

	// start side
	if roi.FirstTick-(margin+ticksToAdd) < windowFirst {
		roi.FirstTick = windowFirst
	} else {
		roi.FirstTick -= margin + ticksToAdd
	}

	// end side
	if roi.Ticks()%order != 0 {
		ticksToAdd = order - roi.Ticks()%order
	} else {
		ticksToAdd = 0
	}
	if roi.LastTick+margin+ticksToAdd > windowLast {
		roi.LastTick = windowLast
	} else {
		roi.LastTick += margin + ticksToAdd
	}

	// a clamped end can leave a remainder for the start side to absorb
	if roi.Ticks()%order != 0 {
		ticksToAdd = order - roi.Ticks()%order
		if roi.FirstTick-ticksToAdd < windowFirst {
			roi.FirstTick = windowFirst
		} else {
			roi.FirstTick -= ticksToAdd
		}
	}

	if roi.Ticks()%order != 0 {
		return &ErrInvariantViolation{Dimension: "tick", APA: apa, Plane: plane,
			Count: roi.Ticks(), Order: order}
	}
	return nil
}
