// Package util is a grab bag for config and log file handling.
package util

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// OpenLog opens path for appending, falling back to discard.
func OpenLog(path string, mode os.FileMode) (file io.Writer, err error) {

	file, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, mode)
	if err != nil {
		err = errors.Wrapf(err, "failed to open log %s", path)
		file = io.Discard
	}

	return
}

// CloseLog closes file when it is a real file.
func CloseLog(file io.Writer) {

	actually, ok := file.(*os.File)
	if ok {
		actually.Close()
	}
}

// Defaulter fills in zero values after loading.
type Defaulter interface {
	Defaults()
}

// Validator refuses a loaded config.
type Validator interface {
	Validate() error
}

// LoadConfig decodes yaml from path into cfg, rejecting unknown keys.
// Defaults and Validate are applied when cfg has them.
func LoadConfig(cfg any, path string) (err error) {

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read from %s", path)
		return
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	err = decoder.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		err = errors.Wrapf(err, "failed to unmarshal %s", path)
		return
	}
	err = nil

	if dft, ok := cfg.(Defaulter); ok {
		dft.Defaults()
	}

	if vld, ok := cfg.(Validator); ok {
		err = vld.Validate()
		err = errors.Wrapf(err, "invalid config in %s", path)
	}
	return
}

// SampleConfig writes data to path unless something is already there.
func SampleConfig(data []byte, path string, mode os.FileMode) (err error) {

	_, err = os.Stat(path)
	if err == nil {
		return // already have a cfg
	}

	err = os.WriteFile(path, data, mode)
	err = errors.Wrapf(err, "failed to write to %s", path)
	return
}
