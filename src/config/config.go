// Package config resolves the tool's settings from three layers with
// explicit precedence: flags the user actually passed, then the
// [aws_token_updater] section of the INI config file, then flag defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/ini.v1"
)

// Flag names as registered on the command line.
const (
	FlagCredentials = "credentials"
	FlagConfig      = "config"
	FlagKionYAML    = "kion-yaml"
	FlagProfile     = "profile"
	FlagFavourite   = "favourite"
	FlagLog         = "log"
	FlagDebug       = "debug"
)

// configSection is the section of the config file this tool reads.
const configSection = "aws_token_updater"

// Settings holds the fully resolved configuration for one run.
type Settings struct {
	CredentialsPath string
	ProfileName     string
	Favourite       string
	KionYAMLPath    string
	LogDest         string
	Debug           bool
}

// ConfigurationError reports required settings that are still unset after
// every layer has been consulted. It is raised before any broker or store
// I/O happens.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf(
		"missing configuration: %s (pass the flags or set them in the config file)",
		strings.Join(e.Missing, ", "),
	)
}

// Resolve merges the given flag set with the config file it points at and
// validates that every required setting ended up populated. A missing
// config file is not an error; an unreadable or unparsable one is.
func Resolve(flags *pflag.FlagSet) (*Settings, error) {
	configPath, err := flags.GetString(FlagConfig)
	if err != nil {
		return nil, err
	}

	section, err := loadSection(configPath)
	if err != nil {
		return nil, err
	}

	settings := &Settings{
		CredentialsPath: layered(flags, section, FlagCredentials, "credentials"),
		ProfileName:     layered(flags, section, FlagProfile, "profile"),
		Favourite:       layered(flags, section, FlagFavourite, "favourite"),
		KionYAMLPath:    layered(flags, section, FlagKionYAML, "kion_yaml"),
		LogDest:         layered(flags, section, FlagLog, "log"),
	}
	settings.Debug, err = flags.GetBool(FlagDebug)
	if err != nil {
		return nil, err
	}

	var missing []string
	if settings.ProfileName == "" {
		missing = append(missing, FlagProfile)
	}
	if settings.Favourite == "" {
		missing = append(missing, FlagFavourite)
	}
	if settings.CredentialsPath == "" {
		missing = append(missing, FlagCredentials)
	}
	if missing != nil {
		return nil, &ConfigurationError{Missing: missing}
	}
	return settings, nil
}

// loadSection reads the tool's section from the config file. Both the file
// and the section are optional; nil means "no file layer".
func loadSection(path string) (*ini.Section, error) {
	if path == "" {
		return nil, nil
	}
	file, err := ini.LooseLoad(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}
	section, err := file.GetSection(configSection)
	if err != nil {
		return nil, nil
	}
	return section, nil
}

// layered picks the value for one setting: the flag wins when it was
// explicitly passed, otherwise the config file key, otherwise the flag's
// default.
func layered(flags *pflag.FlagSet, section *ini.Section, flagName, iniKey string) string {
	value, _ := flags.GetString(flagName)
	if flags.Changed(flagName) {
		return value
	}
	if section != nil && section.HasKey(iniKey) {
		if fromFile := section.Key(iniKey).String(); fromFile != "" {
			return fromFile
		}
	}
	return value
}
