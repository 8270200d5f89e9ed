package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into dir. An existing
// configuration is left untouched.
func Initialize(dir string, logger *log.Logger) error {
	return InitializeFs(afero.NewOsFs(), dir, logger)
}

// InitializeFs is like Initialize but writes to the given filesystem.
func InitializeFs(fsys afero.Fs, dir string, logger *log.Logger) error {
	logger.Printf("Initializing configuration in %q\n", dir)
	if err := fsys.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("couldn't create config dir: %w", err)
	}

	configPath := filepath.Join(dir, ConfigurationName)
	exists, err := afero.Exists(fsys, configPath)
	if err != nil {
		return err
	}
	if exists {
		logger.Printf("- %s exists, skipping\n", ConfigurationName)
		return nil
	}

	logger.Printf("- Writing %s\n", ConfigurationName)
	if err := afero.WriteFile(fsys, configPath, defaultConfigData, 0600); err != nil {
		return fmt.Errorf("couldn't write %s: %w", ConfigurationName, err)
	}
	return nil
}
