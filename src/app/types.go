package app

import (
	"github.com/hmrd-forpeople/aws-token-updater/src/config"
	"github.com/hmrd-forpeople/aws-token-updater/src/creds"
	"github.com/hmrd-forpeople/aws-token-updater/src/kion"
)

// App holds the state of the application.
type App struct {
	Settings  *config.Settings
	Store     creds.Store
	Fetcher   kion.Fetcher
	Installer kion.Installer
}
