package larcv

// Readout geometry of the 10 kt detector module. Channels are numbered
// consecutively across the whole detector, 2560 per APA. Within an APA the
// first two blocks of 800 channels are the induction planes and the last
// 960 channels are the collection plane.
const (
	ChannelsPerAPA = 2560
	NumPlanes      = 3
	ImageSize      = 600
)

var (
	PlaneChannels     = [NumPlanes]int{800, 800, 960}
	PlaneFirstChannel = [NumPlanes]int{0, 800, 1600}
	PlaneLastChannel  = [NumPlanes]int{799, 1599, 2559}
)

// Sizes used when padding a region of interest, per unit of downsample.
// A downsampled pixel covers Downsample wires by TickBlock*Downsample
// ticks, so padded counts must stay divisible by those block sizes.
const (
	WireMargin = 10
	TickMargin = 40
	TickBlock  = 4
)

// Canonical tick windows the padded region must stay inside. The window
// shrinks by one block on each side at downsample 2 so that its length
// stays divisible by the larger block size.
const (
	fullWindowFirstTick = 0
	fullWindowLastTick  = 4491
	halfWindowFirstTick = 2
	halfWindowLastTick  = 4489
)

func APAOf(channel int) int {
	return channel / ChannelsPerAPA
}

// PlaneOf maps a channel to its readout plane. The collection plane is
// wider than 800 channels, so the raw division is clipped to plane 2.
func PlaneOf(channel int) int {
	plane := (channel % ChannelsPerAPA) / 800
	if plane >= NumPlanes {
		plane = NumPlanes - 1
	}
	return plane
}

// PlaneRange returns the first and last channel (inclusive) of a plane
// within the given APA.
func PlaneRange(apa int, plane int) (int, int) {
	base := apa * ChannelsPerAPA
	return base + PlaneFirstChannel[plane], base + PlaneLastChannel[plane]
}

func TickWindow(downsample int) (int, int) {
	if downsample == 2 {
		return halfWindowFirstTick, halfWindowLastTick
	}
	return fullWindowFirstTick, fullWindowLastTick
}
