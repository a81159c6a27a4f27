package larcv

// WireSignal is one channel's deconvolved waveform as produced by the
// signal-processing stage upstream of this tool.
type WireSignal struct {
	Channel uint32
	Samples []float32
}

// Event is the decoded content of one detector event.
type Event struct {
	Run       uint32
	Subrun    uint32
	EventID   uint32
	Timestamp uint64
	Signals   []WireSignal
}

// EventRecord is the processed output for one event: the three plane
// images of the most active APA plus the identifiers written alongside
// them. Records are appended to the output file and never mutated.
type EventRecord struct {
	Run       uint32
	Subrun    uint32
	EventID   uint32
	Timestamp uint64
	EventType int32
	Images    [NumPlanes]Image2D
}
