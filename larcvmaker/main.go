package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	larcv "github.com/dune-exp/larcv_go/pkg"
	sqlx "github.com/jmoiron/sqlx"
)

var dbConn *sqlx.DB
var configuration larcv.Configuration

var (
	logger         Logger
	VerbosityLevel int
	DiscardErrors  bool
)

func init() {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	handlerStdOut := NewHandler(os.Stdout, opts)
	handlerStdErr := slog.NewJSONHandler(os.Stderr, opts)
	logger = Logger{
		InfoLog:  slog.New(handlerStdOut),
		ErrorLog: slog.New(handlerStdErr),
	}
}

func main() {
	configFilename := flag.String("config", "", "Configuration file path")
	flag.Parse()

	var err error
	configuration, err = LoadConfiguration(*configFilename)
	if err != nil {
		message := fmt.Errorf("Error reading configuration file: %w", err)
		logger.Error(message.Error())
		return
	}
	larcv.SetConfiguration(configuration)
	larcv.SetLogger(logger)

	VerbosityLevel = configuration.Verbosity
	DiscardErrors = configuration.Discard
	if VerbosityLevel > 0 {
		message := fmt.Sprintf("Reading configuration file: %s", *configFilename)
		logger.Info(message, "main")
	}
	if VerbosityLevel > 0 {
		printConfiguration(configuration, logger)
	}

	file, err := os.Open(configuration.FileIn)
	if err != nil {
		message := fmt.Errorf("Error opening file: %w", err)
		logger.Error(message.Error())
		return
	}
	defer file.Close()

	fileHeader, err := larcv.ReadFileHeader(file)
	if err != nil {
		message := fmt.Errorf("Error reading file header: %w", err)
		logger.Error(message.Error())
		return
	}
	if label := fileHeader.Label(); label != configuration.WireModuleLabel {
		message := fmt.Sprintf("File produced by %q, expected label %q", label, configuration.WireModuleLabel)
		logger.Error(message)
		return
	}
	if VerbosityLevel > 0 {
		message := fmt.Sprintf("Run number: %d", fileHeader.RunNumber)
		logger.Info(message, "main")
	}

	if !configuration.NoDB {
		dbConn, err = larcv.ConnectToDatabase(configuration.User, configuration.Passwd, configuration.Host, configuration.DBName)
		if err != nil {
			message := fmt.Errorf("Error connection to database: %w", err)
			logger.Error(message.Error())
			return
		}
		defer dbConn.Close()

		if err := larcv.LoadDatabase(dbConn, int(fileHeader.RunNumber)); err != nil {
			return
		}
	}

	evtCount := countEvents(file)
	evtsToRead := numberOfEventsToProcess(evtCount, configuration.Skip, configuration.MaxEvents)
	if VerbosityLevel > 0 {
		message := fmt.Sprintf("Number of events: %d, to process: %d", evtCount, evtsToRead)
		logger.Info(message, "main")
	}

	fileReader := NewFileReader(file)

	writer, err := larcv.NewWriter(outputFilename(configuration))
	if err != nil {
		message := fmt.Errorf("Error creating output file: %w", err)
		logger.Error(message.Error())
		return
	}

	start := time.Now()
	var written, skipped int
	if configuration.Parallel {
		written, skipped, err = runParallel(fileReader, writer)
	} else {
		written, skipped, err = runSequential(fileReader, writer)
	}
	if err != nil {
		logger.Error(err.Error())
	}

	if closeErr := writer.Close(); closeErr != nil {
		logger.Error(closeErr.Error())
	}

	duration := time.Since(start)
	message := fmt.Sprintf("Processed %d events (%d written, %d skipped) in %d ms",
		written+skipped, written, skipped, duration.Milliseconds())
	logger.Info(message, "main")
}

func runSequential(fileReader *FileReader, writer *larcv.Writer) (int, int, error) {
	written := 0
	skipped := 0
	for {
		header, eventData, err := fileReader.getNextEvent()
		if err != nil {
			if err != io.EOF {
				return written, skipped, fmt.Errorf("error reading event: %w", err)
			}
			break
		}
		record, err := processEvent(eventData, header)
		if err != nil {
			if !keepGoing(header, err) {
				return written, skipped, err
			}
			skipped++
			continue
		}
		if record == nil {
			// processEvent recovered from a panic
			skipped++
			continue
		}
		larcv.ProcessRecord(record, configuration, writer)
		written++
	}
	return written, skipped, nil
}

// processEvent decodes one event and builds its plane images. A panic
// anywhere below turns into a discarded event instead of taking down the
// whole run.
func processEvent(eventData []byte, header larcv.EventHeaderStruct) (record *larcv.EventRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			errMessage := fmt.Errorf("recovered from panic on event %d: %v", header.EventId, r)
			logger.Error(errMessage.Error())
			message := fmt.Sprintf("discarding event %d", header.EventId)
			logger.Error(message)
			record = nil
			err = nil
		}
	}()

	event, err := larcv.DecodeEvent(eventData, header)
	if err != nil {
		return nil, fmt.Errorf("error decoding event data: %w", err)
	}
	return larcv.ProcessEvent(event)
}

// keepGoing decides whether a failed event ends the run. Events without a
// usable region are expected and only logged; decode errors are dropped
// when discarding is enabled; an invariant violation always aborts.
func keepGoing(header larcv.EventHeaderStruct, err error) bool {
	if larcv.IsSkippable(err) {
		message := fmt.Sprintf("Skipping event %d: %v", header.EventId, err)
		logger.Info(message, "main")
		return true
	}
	if DiscardErrors && !larcv.IsFatal(err) {
		message := fmt.Sprintf("discarding event %d: %v", header.EventId, err)
		logger.Error(message)
		return true
	}
	return false
}

func numberOfEventsToProcess(fileEvtCount int, skipEvts int, maxEvtCount int) int {
	evtsToRead := maxEvtCount
	if fileEvtCount < evtsToRead {
		evtsToRead = fileEvtCount
	}
	evtsToRead -= skipEvts
	if evtsToRead < 0 {
		evtsToRead = 0
	}
	return evtsToRead
}

// outputFilename falls back to a name derived from the grid job's PROCESS
// environment variable, so parallel jobs sharing a directory do not
// clobber each other's output.
func outputFilename(config larcv.Configuration) string {
	if config.FileOut != "" {
		return config.FileOut
	}
	if process, ok := os.LookupEnv("PROCESS"); ok {
		return "larcv_" + process + ".h5"
	}
	return "larcv.h5"
}
