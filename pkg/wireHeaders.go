package larcv

// On-disk layout of a wire dump file: one file header, then a stream of
// events. Every event starts with a fixed-size header whose EventSize
// covers the header itself plus the channel payload, so readers can walk
// the file without decoding payloads. All integers are little endian.

const WIRE_MAGIC_NUMBER uint32 = 0x0ADCDA7A
const WIRE_MAGIC_NUMBER_SWAPPED uint32 = 0x7ADADC0A

/* ---------- Unique version identifier ---------- */
const WIRE_MAJOR_VERSION_NUMBER = 1
const WIRE_MINOR_VERSION_NUMBER = 2
const WIRE_CURRENT_VERSION = ((WIRE_MAJOR_VERSION_NUMBER << 16) & 0xffff0000) | (WIRE_MINOR_VERSION_NUMBER & 0x0000ffff)

/* ---------- Event kind ---------- */
type EventKindType uint32

const (
	START_OF_RUN EventKindType = iota + 1
	END_OF_RUN
	PHYSICS_EVENT
	CALIBRATION_EVENT
	EVENT_FORMAT_ERROR
)

// SOURCE_LABEL_LENGTH is the fixed width of the producer label in the file
// header. Shorter labels are zero padded.
const SOURCE_LABEL_LENGTH = 32

type FileHeaderStruct struct {
	FileMagic   uint32
	FileVersion uint32
	RunNumber   uint32
	SourceLabel [SOURCE_LABEL_LENGTH]byte
}

type EventHeaderStruct struct {
	EventSize          uint32
	EventMagic         uint32
	EventHeadSize      uint32
	EventVersion       uint32
	EventKind          EventKindType
	EventRunNb         uint32
	EventSubrunNb      uint32
	EventId            uint32
	EventNChannels     uint32
	EventTimestampSec  uint32
	EventTimestampUsec uint32
}

// ChannelHeaderStruct precedes each channel's block of float32 samples.
type ChannelHeaderStruct struct {
	ChannelId   uint32
	SampleCount uint32
}
