package main

import (
	"encoding/json"
	"fmt"
	"os"

	larcv "github.com/dune-exp/larcv_go/pkg"
)

func LoadConfiguration(filename string) (larcv.Configuration, error) {
	var config larcv.Configuration

	// Set default values
	config.MaxEvents = 1000000000
	config.Verbosity = 0
	config.WireModuleLabel = "caldata"
	config.MaxTick = 4492
	config.ADCCut = 20
	config.EventType = 0
	config.NoDB = true
	config.Discard = true
	config.Skip = 0
	config.Host = "localhost"
	config.User = "dunereader"
	config.Passwd = "readonly"
	config.DBName = "dune_channel_status"
	config.NumWorkers = 1
	config.WriteData = true
	config.Parallel = false
	config.UseBlosc = false
	config.CompressionLevel = 4

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = json.Unmarshal(data, &config)
	if err != nil {
		return config, err
	}
	return config, nil
}

func printConfiguration(config larcv.Configuration, logger Logger) {
	logger.Info(fmt.Sprintf("File in: %s", config.FileIn), "config")
	logger.Info(fmt.Sprintf("File out: %s", config.FileOut), "config")
	logger.Info(fmt.Sprintf("Wire module label: %s", config.WireModuleLabel), "config")
	logger.Info(fmt.Sprintf("Max tick: %d", config.MaxTick), "config")
	logger.Info(fmt.Sprintf("ADC cut: %d", config.ADCCut), "config")
	logger.Info(fmt.Sprintf("Event type: %d", config.EventType), "config")
	logger.Info(fmt.Sprintf("No DB: %t", config.NoDB), "config")
	logger.Info(fmt.Sprintf("Host: %s", config.Host), "config")
	logger.Info(fmt.Sprintf("DB name: %s", config.DBName), "config")
	logger.Info(fmt.Sprintf("Skip: %d", config.Skip), "config")
	logger.Info(fmt.Sprintf("Max events: %d", config.MaxEvents), "config")
	logger.Info(fmt.Sprintf("Verbosity: %d", config.Verbosity), "config")
	logger.Info(fmt.Sprintf("Discard: %t", config.Discard), "config")
	logger.Info(fmt.Sprintf("Write data: %t", config.WriteData), "config")
	logger.Info(fmt.Sprintf("Number of workers: %d", config.NumWorkers), "config")
	logger.Info(fmt.Sprintf("Parallel: %t", config.Parallel), "config")
	logger.Info(fmt.Sprintf("Use blosc: %t", config.UseBlosc), "config")
	logger.Info(fmt.Sprintf("Compression level: %d", config.CompressionLevel), "config")
}
