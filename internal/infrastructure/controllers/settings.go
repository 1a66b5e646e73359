package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/gitcache/internal/domain/entities"
)

// loadSettings reads the configuration named by --config, or the first one found in the
// default locations. Without any configuration file the defaults apply.
func loadSettings(cmd *cobra.Command) *entities.Settings {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		var err error
		cfgPath, err = entities.FindConfigFile()
		if err != nil {
			logger.Debugf("Using default settings: %v", err)
			return entities.DefaultSettings()
		}
	}

	logger.Debugf("Using config file: %s", cfgPath)

	settings, err := entities.NewSettings(cfgPath)
	if err != nil {
		logger.Errorf("failed to load config, using defaults: %v", err)
		return entities.DefaultSettings()
	}
	return settings
}
