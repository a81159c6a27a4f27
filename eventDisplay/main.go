package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	larcv "github.com/dune-exp/larcv_go/pkg"
)

var configuration larcv.Configuration

var (
	logger         Logger
	VerbosityLevel int
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
	outPrefix := flag.String("out", "event", "Output image file prefix")
	nEvents := flag.Int("events", 1, "Number of events to render")
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

	fileReader := NewFileReader(file)

	rendered := 0
	for rendered < *nEvents {
		header, eventData, err := fileReader.getNextEvent()
		if err != nil {
			if err != io.EOF {
				message := fmt.Errorf("error reading event: %w", err)
				logger.Error(message.Error())
			}
			break
		}
		event, err := larcv.DecodeEvent(eventData, header)
		if err != nil {
			message := fmt.Errorf("error decoding event data: %w", err)
			logger.Error(message.Error())
			continue
		}
		record, err := larcv.ProcessEvent(event)
		if err != nil {
			if larcv.IsSkippable(err) {
				message := fmt.Sprintf("Skipping event %d: %v", header.EventId, err)
				logger.Info(message, "main")
				continue
			}
			logger.Error(err.Error())
			break
		}

		for plane := 0; plane < larcv.NumPlanes; plane++ {
			filename := fmt.Sprintf("%s_%d_plane%d.png", *outPrefix, record.EventID, plane)
			if err := renderPlane(record, plane, filename); err != nil {
				message := fmt.Errorf("error rendering plane %d: %w", plane, err)
				logger.Error(message.Error())
				continue
			}
			message := fmt.Sprintf("Wrote %s", filename)
			logger.Info(message, "main")
		}
		rendered++
	}
}
