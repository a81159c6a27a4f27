package larcv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threePlaneEvent puts one spike on each plane of APA 0 so the full
// pipeline has a region to find everywhere.
func threePlaneEvent(eventID uint32, channels [3]int) Event {
	event := Event{Run: 12, Subrun: 3, EventID: eventID, Timestamp: 1700000000}
	for _, channel := range channels {
		event.Signals = append(event.Signals, WireSignal{
			Channel: uint32(channel),
			Samples: spike(1000, 25),
		})
	}
	return event
}

func TestProcessEventBuildsThreePlaneImages(t *testing.T) {
	configureForTest(t)
	event := threePlaneEvent(7, [3]int{400, 900, 1700})

	record, err := ProcessEvent(event)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, uint32(12), record.Run)
	assert.Equal(t, uint32(3), record.Subrun)
	assert.Equal(t, uint32(7), record.EventID)
	assert.Equal(t, uint64(1700000000), record.Timestamp)

	for plane := 0; plane < NumPlanes; plane++ {
		img := record.Images[plane]
		require.Equal(t, ImageSize, img.Width(), "plane %d", plane)
		require.Equal(t, ImageSize, img.Height(), "plane %d", plane)

		// the spike sits 10 wires from the region edge and 10 blocks down
		assert.Equal(t, float32(25), img.Pixel(10, 10), "plane %d", plane)
		var sum float32
		for _, v := range img.Pixels() {
			sum += v
		}
		assert.Equal(t, float32(25), sum, "plane %d", plane)
	}
}

func TestProcessEventNoSignals(t *testing.T) {
	configureForTest(t)

	record, err := ProcessEvent(Event{EventID: 9})
	assert.Nil(t, record)
	assert.ErrorIs(t, err, ErrNoActivity)
}

func TestProcessEventEmptyWaveforms(t *testing.T) {
	configureForTest(t)
	event := Event{EventID: 9, Signals: []WireSignal{{Channel: 400, Samples: nil}}}

	record, err := ProcessEvent(event)
	assert.Nil(t, record)
	assert.ErrorIs(t, err, ErrNoActivity)
}

func TestProcessEventMissingPlaneSkipsWholeEvent(t *testing.T) {
	configureForTest(t)
	event := Event{EventID: 11, Signals: []WireSignal{{Channel: 400, Samples: spike(1000, 25)}}}

	record, err := ProcessEvent(event)
	assert.Nil(t, record)
	var roiErr *ErrROINotFound
	require.True(t, errors.As(err, &roiErr), "error: got %v, want ErrROINotFound", err)
	assert.Equal(t, 0, roiErr.APA)
	assert.Equal(t, 1, roiErr.Plane)
}

func TestProcessEventNoStateLeaksBetweenEvents(t *testing.T) {
	configureForTest(t)

	record, err := ProcessEvent(threePlaneEvent(1, [3]int{400, 900, 1700}))
	require.NoError(t, err)
	require.NotNil(t, record)

	// channels 900 and 1700 from the first event must be gone
	record, err = ProcessEvent(Event{
		EventID: 2,
		Signals: []WireSignal{{Channel: 400, Samples: spike(1000, 25)}},
	})
	assert.Nil(t, record)
	var roiErr *ErrROINotFound
	assert.True(t, errors.As(err, &roiErr), "error: got %v, want ErrROINotFound", err)
}

func TestProcessEventMaskedChannelsDropped(t *testing.T) {
	configureForTest(t)
	savedMask := channelMask
	t.Cleanup(func() { channelMask = savedMask })
	channelMask = map[int]bool{400: true, 900: true, 1700: true}

	record, err := ProcessEvent(threePlaneEvent(5, [3]int{400, 900, 1700}))
	assert.Nil(t, record)
	assert.ErrorIs(t, err, ErrNoActivity)
}

func TestProcessEventTagsConfiguredEventType(t *testing.T) {
	saved := GetConfiguration()
	t.Cleanup(func() { SetConfiguration(saved) })
	SetConfiguration(Configuration{MaxTick: 4492, ADCCut: 20, EventType: 7})

	record, err := ProcessEvent(threePlaneEvent(3, [3]int{400, 900, 1700}))
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, int32(7), record.EventType)
}

func TestProcessEventPicksLouderAPA(t *testing.T) {
	configureForTest(t)
	event := threePlaneEvent(4, [3]int{400, 900, 1700})
	// louder signals on all three planes of APA 1
	for _, channel := range []int{2560 + 400, 2560 + 900, 2560 + 1700} {
		samples := make([]float32, 1001)
		for tick := 900; tick <= 1000; tick++ {
			samples[tick] = 30
		}
		event.Signals = append(event.Signals, WireSignal{
			Channel: uint32(channel),
			Samples: samples,
		})
	}

	record, err := ProcessEvent(event)
	require.NoError(t, err)
	require.NotNil(t, record)

	// each plane image carries APA 1's hundred-tick band, not the spike
	for plane := 0; plane < NumPlanes; plane++ {
		var sum float32
		for _, v := range record.Images[plane].Pixels() {
			sum += v
		}
		assert.Equal(t, float32(30*101), sum, "plane %d", plane)
	}
}
