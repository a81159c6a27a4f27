package larcv

import (
	"errors"
	"fmt"

	hdf5 "github.com/next-exp/hdf5-go"
)

type Writer struct {
	File         *hdf5.File
	Filename     string
	FirstEvt     bool
	RunGroup     *hdf5.Group
	ImagesGroup  *hdf5.Group
	EventTable   *hdf5.Dataset
	RunInfoTable *hdf5.Dataset
	PlaneImages  [NumPlanes]*hdf5.Dataset
	EvtCounter   int
}

func NewWriter(filename string) (*Writer, error) {
	if configuration.UseBlosc {
		bloscVersion, bloscDate, err := hdf5.RegisterBlosc()
		if err != nil {
			return nil, fmt.Errorf("error registering blosc filter: %w", err)
		}
		if configuration.Verbosity > 0 {
			logger.Info(fmt.Sprint("Blosc version: ", bloscVersion, " date: ", bloscDate), "writer")
		}
	}

	logger.Info(fmt.Sprint("Creating file: ", filename), "writer")

	writer := &Writer{}
	writer.Filename = filename

	var err error
	if writer.File, err = openFile(filename); err != nil {
		return nil, err
	}
	if writer.RunGroup, err = createGroup(writer.File, "Run"); err != nil {
		return nil, err
	}
	if writer.ImagesGroup, err = createGroup(writer.File, "Images"); err != nil {
		return nil, err
	}
	if writer.EventTable, err = createTable(writer.RunGroup, "events", EventDataHDF5{}); err != nil {
		return nil, err
	}
	if writer.RunInfoTable, err = createTable(writer.RunGroup, "runInfo", RunInfoHDF5{}); err != nil {
		return nil, err
	}

	// The image extent never depends on the data, so all three plane
	// datasets exist even in a run where every event is skipped.
	for plane := 0; plane < NumPlanes; plane++ {
		name := fmt.Sprintf("plane%d", plane)
		writer.PlaneImages[plane] = createImageArray(writer.ImagesGroup, name)
	}

	writer.EvtCounter = 0
	return writer, nil
}

func (w *Writer) WriteRecord(record *EventRecord) {
	// Run number is constant within a file, write it only once
	if !w.FirstEvt {
		writeEntryToTable(w.RunInfoTable, RunInfoHDF5{run_number: int32(record.Run)}, w.EvtCounter)
		w.FirstEvt = true
	}

	entry := EventDataHDF5{
		evt_number: int32(record.EventID),
		subrun:     int32(record.Subrun),
		event_type: record.EventType,
		timestamp:  record.Timestamp,
	}
	writeEntryToTable(w.EventTable, entry, w.EvtCounter)

	for plane := 0; plane < NumPlanes; plane++ {
		pixels := record.Images[plane].Pixels()
		writeImage(w.PlaneImages[plane], &pixels, w.EvtCounter)
	}

	w.EvtCounter++
}

func (w *Writer) Close() error {
	logger.Info(fmt.Sprint("Closing file: ", w.Filename), "writer")
	var errs []error

	if err := w.EventTable.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing event table: %w", err))
	}
	if err := w.RunInfoTable.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing run info table: %w", err))
	}
	for plane, dataset := range w.PlaneImages {
		if dataset == nil {
			continue
		}
		if err := dataset.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing plane %d images: %w", plane, err))
		}
	}
	if err := w.RunGroup.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing run group: %w", err))
	}
	if err := w.ImagesGroup.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing images group: %w", err))
	}
	if err := w.File.Close(); err != nil {
		errs = append(errs, fmt.Errorf("error closing file: %w", err))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func ProcessRecord(record *EventRecord, configuration Configuration, writer *Writer) {
	if configuration.WriteData && record != nil {
		writer.WriteRecord(record)
	}
}
