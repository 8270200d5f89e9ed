package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"

	"github.com/Scharxi/mini-shell/core/history"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"
	DefaultDirName    = ".msh"
)

type Configuration struct {
	configFs afero.Fs

	Prompt       string `json:"prompt"`
	HistoryFile  string `json:"history_file"`
	HistoryLimit int    `json:"history_limit" validate:"gte=0"`
	Color        string `json:"color" validate:"oneof=always auto never"`
	PipelineMode string `json:"pipeline_mode" validate:"oneof=stream buffer"`
	EventLog     string `json:"event_log"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func (c *Configuration) fs() afero.Fs {
	return c.configFs
}

// HistoryPath returns the absolute path of the history file.
func (c *Configuration) HistoryPath() string {
	switch {
	case c.HistoryFile == "":
		return history.DefaultPath()
	case filepath.IsAbs(c.HistoryFile):
		return c.HistoryFile
	default:
		return filepath.Join(filepath.Dir(history.DefaultPath()), c.HistoryFile)
	}
}

// HistoryStore returns the store backing the command history.
func (c *Configuration) HistoryStore() *history.FileStore {
	return history.NewFileStore(afero.NewOsFs(), c.HistoryPath(), c.HistoryLimit)
}

// OpenEventLog opens the event log in an append only state. The returned
// file is nil if the event log is disabled.
func (c *Configuration) OpenEventLog() (afero.File, error) {
	if c.EventLog == "" {
		return nil, nil
	}
	if err := c.fs().MkdirAll(filepath.Dir(c.EventLog), 0700); err != nil {
		return nil, err
	}
	return c.fs().OpenFile(c.EventLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// ReadEventLog opens the event log for reading.
func (c *Configuration) ReadEventLog() (afero.File, error) {
	if c.EventLog == "" {
		return nil, os.ErrNotExist
	}
	return c.fs().OpenFile(c.EventLog, os.O_RDONLY, 0600)
}

// DefaultDir returns the configuration directory used when none is given.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultDirName
	}
	return filepath.Join(home, DefaultDirName)
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
