package larcv

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// ProcessEvent turns one event's wire signals into the three plane images
// of its most active APA. All per-event state lives inside this call. A
// skippable error (see IsSkippable) means the event produced no record;
// any other error means the run should stop.
func ProcessEvent(event Event) (*EventRecord, error) {
	store := NewWireStore()
	apas := make([]int, 0, 4)
	for _, signal := range event.Signals {
		if len(signal.Samples) == 0 {
			continue
		}
		channel := int(signal.Channel)
		if channelMask[channel] {
			if configuration.Verbosity > 1 {
				message := fmt.Sprintf("dropping masked channel %d", channel)
				logger.Info(message, "pipeline")
			}
			continue
		}
		store.Ingest(channel, signal.Samples)
		apa := APAOf(channel)
		if !slices.Contains(apas, apa) {
			apas = append(apas, apa)
		}
	}

	if len(apas) == 0 {
		return nil, ErrNoActivity
	}

	apa, err := FindBestAPA(store, apas)
	if err != nil {
		return nil, err
	}
	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("event %d uses APA %d", event.EventID, apa)
		logger.Info(message, "pipeline")
	}

	// every plane must yield a region before any image is built, so a
	// skipped event leaves nothing behind
	for plane := 0; plane < NumPlanes; plane++ {
		if _, err := FindROI(store, apa, plane); err != nil {
			return nil, err
		}
	}

	record := &EventRecord{
		Run:       event.Run,
		Subrun:    event.Subrun,
		EventID:   event.EventID,
		Timestamp: event.Timestamp,
		EventType: int32(configuration.EventType),
	}
	for plane := 0; plane < NumPlanes; plane++ {
		roi, err := FindROI(store, apa, plane)
		if err != nil {
			return nil, err
		}
		if configuration.Verbosity > 0 {
			message := fmt.Sprintf("plane %d resolution %dx%d downsampled to %dx%d",
				plane, roi.Wires(), roi.Ticks(),
				roi.Wires()/roi.Downsample, roi.Ticks()/(TickBlock*roi.Downsample))
			logger.Info(message, "pipeline")
		}
		image, err := BuildPlaneImage(store, roi)
		if err != nil {
			return nil, err
		}
		record.Images[plane] = image
	}
	return record, nil
}
