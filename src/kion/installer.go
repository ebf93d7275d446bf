package kion

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// NewConfigInstaller creates an Installer that copies the kion CLI config
// from sourcePath to destPath. The kion CLI only reads its config from one
// fixed location, so destPath is normally <home>/.kion.yml.
func NewConfigInstaller(sourcePath, destPath string, logger *logrus.Entry) Installer {
	return &configInstaller{
		sourcePath: sourcePath,
		destPath:   destPath,
		logger:     logger,
	}
}

func (installer *configInstaller) Install() error {
	if installer.sourcePath == installer.destPath {
		installer.logger.Debug("Kion config is sourced from the expected location, not copying")
		return nil
	}

	installer.logger.WithFields(logrus.Fields{
		"source":      installer.sourcePath,
		"destination": installer.destPath,
	}).Debug("Copying kion config")

	contents, err := os.ReadFile(installer.sourcePath)
	if err != nil {
		return errors.Wrap(err, "reading kion config")
	}

	// A truncated or garbled template must not clobber a working config.
	var parsed yaml.Node
	if err := yaml.Unmarshal(contents, &parsed); err != nil {
		return errors.Wrapf(err, "kion config %s is not valid YAML", installer.sourcePath)
	}

	if err := os.WriteFile(installer.destPath, contents, 0600); err != nil {
		return errors.Wrap(err, "writing kion config")
	}
	return nil
}

type configInstaller struct {
	sourcePath string
	destPath   string
	logger     *logrus.Entry
}
