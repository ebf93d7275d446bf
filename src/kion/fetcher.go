package kion

import (
	"encoding/json"

	"github.com/hmrd-forpeople/aws-token-updater/src/creds"
	"github.com/sirupsen/logrus"
)

const (
	brokerCommand        = "kion"
	favoriteSubcommand   = "favorite"
	credentialProcessArg = "--credential-process"
)

// NewFetcher creates a Fetcher that shells out through the given Runner.
func NewFetcher(runner Runner, logger *logrus.Entry) Fetcher {
	return &fetcher{
		runner: runner,
		logger: logger,
	}
}

func (f *fetcher) Fetch(favourite string) (creds.FetchResult, error) {
	logger := f.logger.WithField("favourite", favourite)
	logger.Info("Retrieving AWS credentials from kion")

	output, err := f.runner.Output(brokerCommand, favoriteSubcommand, credentialProcessArg, favourite)
	if err != nil {
		return nil, &BrokerInvocationError{Err: err}
	}

	var result creds.FetchResult
	if err := json.Unmarshal(output, &result); err != nil {
		return nil, &MalformedResponseError{Reason: "not a JSON object of strings", Err: err}
	}

	if missing := result.Missing(); missing != nil {
		return nil, &MalformedResponseError{Missing: missing}
	}

	logger.WithField("expiration", result[creds.KeyExpiration]).Debug("New credentials received")
	return result, nil
}

type fetcher struct {
	runner Runner
	logger *logrus.Entry
}
