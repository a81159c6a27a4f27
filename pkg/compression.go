package larcv

import (
	"encoding/json"
	"fmt"

	"github.com/next-exp/hdf5-go"
)

// BloscAlgorithm selects the Blosc compressor by name in the JSON
// configuration. The zero value is blosclz, matching the filter default.
type BloscAlgorithm struct {
	Name string
	Code hdf5.BloscFilter
}

var bloscAlgorithmCodes = map[string]hdf5.BloscFilter{
	"blosclz": hdf5.BLOSC_BLOSCLZ,
	"lz4":     hdf5.BLOSC_LZ4,
	"lz4hc":   hdf5.BLOSC_LZ4HC,
	"snappy":  hdf5.BLOSC_SNAPPY,
	"zlib":    hdf5.BLOSC_ZLIB,
	"zstd":    hdf5.BLOSC_ZSTD,
}

var bloscAlgorithmNames = map[hdf5.BloscFilter]string{
	hdf5.BLOSC_BLOSCLZ: "blosclz",
	hdf5.BLOSC_LZ4:     "lz4",
	hdf5.BLOSC_LZ4HC:   "lz4hc",
	hdf5.BLOSC_SNAPPY:  "snappy",
	hdf5.BLOSC_ZLIB:    "zlib",
	hdf5.BLOSC_ZSTD:    "zstd",
}

func ParseBloscAlgorithm(name string) (BloscAlgorithm, error) {
	code, ok := bloscAlgorithmCodes[name]
	if !ok {
		return BloscAlgorithm{}, fmt.Errorf("invalid BloscAlgorithm: %s", name)
	}
	return BloscAlgorithm{Name: name, Code: code}, nil
}

func (b BloscAlgorithm) String() string {
	name, ok := bloscAlgorithmNames[b.Code]
	if !ok {
		return "UNKNOWN"
	}
	return name
}

func (b BloscAlgorithm) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *BloscAlgorithm) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseBloscAlgorithm(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// BloscShuffle selects the Blosc shuffle mode by name.
type BloscShuffle struct {
	Name string
	Code hdf5.BloscShuffle
}

var bloscShuffleCodes = map[string]hdf5.BloscShuffle{
	"no-shuffle":   hdf5.BLOSC_NOSHUFFLE,
	"byte-shuffle": hdf5.BLOSC_SHUFFLE,
	"bit-shuffle":  hdf5.BLOSC_BITSHUFFLE,
}

var bloscShuffleNames = map[hdf5.BloscShuffle]string{
	hdf5.BLOSC_NOSHUFFLE:  "no-shuffle",
	hdf5.BLOSC_SHUFFLE:    "byte-shuffle",
	hdf5.BLOSC_BITSHUFFLE: "bit-shuffle",
}

func ParseBloscShuffle(name string) (BloscShuffle, error) {
	code, ok := bloscShuffleCodes[name]
	if !ok {
		return BloscShuffle{}, fmt.Errorf("invalid BloscShuffle: %s", name)
	}
	return BloscShuffle{Name: name, Code: code}, nil
}

func (b BloscShuffle) String() string {
	name, ok := bloscShuffleNames[b.Code]
	if !ok {
		return "UNKNOWN"
	}
	return name
}

func (b BloscShuffle) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *BloscShuffle) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseBloscShuffle(s)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
