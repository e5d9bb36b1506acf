package lox

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/naoina/toml"
)

// Config holds the driver settings. Field names double as TOML keys.
type Config struct {
	Prompt       string
	HistoryFile  string
	Color        bool
	MaxCallDepth int
}

// DefaultConfig is used for anything the config file leaves out.
var DefaultConfig = Config{
	Prompt:       "> ",
	HistoryFile:  "~/.glox_history",
	Color:        true,
	MaxCallDepth: DefaultMaxCallDepth,
}

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// LoadConfig decodes file over a copy of DefaultConfig.
func LoadConfig(file string) (Config, error) {
	cfg := DefaultConfig
	f, err := os.Open(file)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(&cfg)
	// Add file name to errors that have a line number.
	var lineErr *toml.LineError
	if errors.As(err, &lineErr) {
		err = errors.New(file + ", " + err.Error())
	}
	return cfg, err
}

// historyPath expands a leading "~" to the user's home directory.
func historyPath(file string) string {
	if file == "~" || strings.HasPrefix(file, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, strings.TrimPrefix(file, "~"))
	}
	return file
}
