package larcv

type Configuration struct {
	MaxEvents        int            `json:"max_events"`
	Verbosity        int            `json:"verbosity"`
	FileIn           string         `json:"file_in"`
	FileOut          string         `json:"file_out"`
	WireModuleLabel  string         `json:"wire_module_label"`
	MaxTick          int            `json:"max_tick"`
	ADCCut           int            `json:"adc_cut"`
	EventType        int            `json:"event_type"`
	NoDB             bool           `json:"no_db"`
	Discard          bool           `json:"discard"`
	Skip             int            `json:"skip"`
	Host             string         `json:"host"`
	User             string         `json:"user"`
	Passwd           string         `json:"pass"`
	DBName           string         `json:"dbname"`
	NumWorkers       int            `json:"num_workers"`
	WriteData        bool           `json:"write_data"`
	Parallel         bool           `json:"parallel"`
	UseBlosc         bool           `json:"use_blosc"`
	CompressionLevel int            `json:"compression_level"`
	BloscAlgorithm   BloscAlgorithm `json:"blosc_algorithm"`
	BloscShuffle     BloscShuffle   `json:"blosc_shuffle"`
}

var configuration Configuration

func GetConfiguration() Configuration {
	return configuration
}

func SetConfiguration(config Configuration) {
	configuration = config
}
