package app

import (
	"github.com/hmrd-forpeople/aws-token-updater/src/config"
	"github.com/hmrd-forpeople/aws-token-updater/src/creds"
	"github.com/hmrd-forpeople/aws-token-updater/src/kion"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("prefix", "app")

// New creates a new application with the given settings and collaborators.
func New(settings *config.Settings, store creds.Store, fetcher kion.Fetcher, installer kion.Installer) *App {
	return &App{
		Settings:  settings,
		Store:     store,
		Fetcher:   fetcher,
		Installer: installer,
	}
}

// Run performs a single update pass: consult the store, and when the
// stored credentials are stale, install the kion config, fetch a fresh
// bundle, and merge it back into the store. A nil return means the store
// holds usable credentials, whether or not anything was written.
func (app *App) Run() error {
	log.WithFields(logrus.Fields{
		"profile":     app.Settings.ProfileName,
		"credentials": app.Settings.CredentialsPath,
		"favourite":   app.Settings.Favourite,
	}).Debug("Starting update pass")

	if !app.Store.NeedsUpdate(app.Settings.ProfileName) {
		log.Info("Credentials have not yet expired, not updating")
		return nil
	}

	if err := app.Installer.Install(); err != nil {
		return errors.Wrap(err, "installing kion config")
	}

	result, err := app.Fetcher.Fetch(app.Settings.Favourite)
	if err != nil {
		return err
	}

	return app.Store.Apply(app.Settings.ProfileName, result)
}
