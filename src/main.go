package main

import (
	"os"

	"github.com/hmrd-forpeople/aws-token-updater/src/app"
	"github.com/hmrd-forpeople/aws-token-updater/src/config"
	"github.com/hmrd-forpeople/aws-token-updater/src/creds"
	"github.com/hmrd-forpeople/aws-token-updater/src/kion"
	"github.com/hmrd-forpeople/aws-token-updater/src/log"
	"github.com/hmrd-forpeople/aws-token-updater/src/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "aws-token-updater",
		Short:         "Refresh AWS CLI credentials from kion",
		Long:          "Fetches short-lived AWS credentials from the kion CLI and saves them to a profile in the AWS credentials file. Intended to run from cron; does nothing while the stored credentials are still valid.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := cmd.Flags()
	flags.String(config.FlagCredentials, utils.HomePath(".aws", "credentials"), "Location of AWS credentials file")
	flags.String(config.FlagConfig, utils.HomePath(".config", "aws-token-updater.ini"), "Path of configuration file")
	flags.String(config.FlagKionYAML, utils.HomePath(".config", "kion.yml"), "Path of kion configuration file")
	flags.String(config.FlagProfile, "", "Name of AWS profile to update")
	flags.String(config.FlagFavourite, "", "Name of kion favourite to use")
	flags.String(config.FlagLog, utils.HomePath(".log", "kion-auth.log"), "Path of log file, or \"stdout\"")
	flags.Bool(config.FlagDebug, false, "Print extra logging")

	// The spelling differs by side of the Atlantic; accept both.
	flags.String("favorite", "", "Alias for --favourite")
	_ = flags.MarkHidden("favorite")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if flags.Changed("favorite") && !flags.Changed(config.FlagFavourite) {
		alias, _ := flags.GetString("favorite")
		_ = flags.Set(config.FlagFavourite, alias)
	}

	settings, err := config.Resolve(flags)
	if err != nil {
		return err
	}

	log.Setup(settings.LogDest, settings.Debug)

	store := creds.NewFileStore(
		settings.CredentialsPath,
		logrus.WithField("prefix", "creds/file-store"),
	)
	fetcher := kion.NewFetcher(
		kion.NewExecRunner(),
		logrus.WithField("prefix", "kion/fetcher"),
	)
	installer := kion.NewConfigInstaller(
		settings.KionYAMLPath,
		utils.HomePath(".kion.yml"),
		logrus.WithField("prefix", "kion/installer"),
	)

	return app.New(settings, store, fetcher, installer).Run()
}

func main() {
	if err := newCommand().Execute(); err != nil {
		logrus.WithFields(logrus.Fields{
			"prefix": "main",
			"error":  err.Error(),
		}).Error("Update failed")
		os.Exit(1)
	}
}
