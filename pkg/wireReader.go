package larcv

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"unsafe"
)

func ValidEvent(header EventHeaderStruct) bool {
	return header.EventKind == PHYSICS_EVENT || header.EventKind == CALIBRATION_EVENT
}

// ReadFileHeader consumes the file header, leaving the cursor at the first
// event. The magic number is checked here; the producer label is left to
// the caller to match against its configuration.
func ReadFileHeader(file *os.File) (FileHeaderStruct, error) {
	var header FileHeaderStruct
	headerSize := unsafe.Sizeof(header)
	headerBinary := make([]byte, headerSize)
	nRead, err := file.Read(headerBinary)
	if err != nil {
		return header, fmt.Errorf("error reading file header: %w", err)
	}
	if nRead < int(headerSize) {
		return header, fmt.Errorf("file too short for header: %d bytes", nRead)
	}

	headerReader := bytes.NewReader(headerBinary)
	binary.Read(headerReader, binary.LittleEndian, &header)

	if header.FileMagic != WIRE_MAGIC_NUMBER {
		return header, fmt.Errorf("bad magic number 0x%08x in %q", header.FileMagic, file.Name())
	}
	return header, nil
}

func (h FileHeaderStruct) Label() string {
	return string(bytes.TrimRight(h.SourceLabel[:], "\x00"))
}

func ReadEventFromFile(file *os.File) (EventHeaderStruct, []byte, error) {
	var header EventHeaderStruct
	headerSize := unsafe.Sizeof(header)
	headerBinary := make([]byte, headerSize)
	nRead, err := file.Read(headerBinary)
	if err != nil {
		return header, nil, err
	}

	if nRead == 0 {
		return header, nil, err
	}

	headerReader := bytes.NewReader(headerBinary)
	binary.Read(headerReader, binary.LittleEndian, &header)

	if header.EventMagic != WIRE_MAGIC_NUMBER {
		return header, nil, fmt.Errorf("bad magic number 0x%08x in event header", header.EventMagic)
	}

	payloadSize := uint32(header.EventSize) - uint32(headerSize)
	eventData := make([]byte, payloadSize)
	file.Read(eventData)
	return header, eventData, nil
}

// DecodeEvent unpacks the channel payload of one event. The header has
// already been stripped by ReadEventFromFile.
func DecodeEvent(eventData []byte, header EventHeaderStruct) (Event, error) {
	event := Event{
		Run:       header.EventRunNb,
		Subrun:    header.EventSubrunNb,
		EventID:   header.EventId,
		Timestamp: uint64(header.EventTimestampSec)*1000000 + uint64(header.EventTimestampUsec),
		Signals:   make([]WireSignal, 0, header.EventNChannels),
	}

	position := 0
	for i := 0; i < int(header.EventNChannels); i++ {
		signal, nRead, err := readChannel(eventData, position)
		if err != nil {
			return event, fmt.Errorf("channel block %d of event %d: %w", i, header.EventId, err)
		}
		if configuration.Verbosity > 2 {
			message := fmt.Sprintf("channel %d with %d samples", signal.Channel, len(signal.Samples))
			logger.Info(message, "wireReader")
		}
		event.Signals = append(event.Signals, signal)
		position += nRead
	}
	return event, nil
}

func readChannel(eventData []byte, position int) (WireSignal, int, error) {
	var chHeader ChannelHeaderStruct
	chHeaderSize := int(unsafe.Sizeof(chHeader))
	if position+chHeaderSize > len(eventData) {
		return WireSignal{}, 0, fmt.Errorf("payload too short for channel header")
	}
	chReader := bytes.NewReader(eventData[position : position+chHeaderSize])
	binary.Read(chReader, binary.LittleEndian, &chHeader)

	start := position + chHeaderSize
	end := start + int(chHeader.SampleCount)*4
	if end > len(eventData) {
		return WireSignal{}, 0, fmt.Errorf("payload too short for %d samples of channel %d",
			chHeader.SampleCount, chHeader.ChannelId)
	}
	samples := make([]float32, chHeader.SampleCount)
	sampleReader := bytes.NewReader(eventData[start:end])
	binary.Read(sampleReader, binary.LittleEndian, samples)

	return WireSignal{Channel: chHeader.ChannelId, Samples: samples}, end - position, nil
}
