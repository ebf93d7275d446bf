package creds

import (
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// updateMargin is how close to (or past) expiration stored credentials may
// be before they are refreshed. Runs are assumed to be scheduled no less
// than every 10 minutes, so this keeps the profile usable between runs.
const updateMargin = 10 * time.Minute

// Section keys as consumed by the AWS CLI and SDKs. expirationKey is this
// tool's own bookkeeping; AWS tooling ignores it.
const (
	accessKeyIDKey     = "aws_access_key_id"
	secretAccessKeyKey = "aws_secret_access_key"
	sessionTokenKey    = "aws_session_token"
	expirationKey      = "expiration"
)

// NewFileStore returns a Store backed by the INI credentials file at path.
func NewFileStore(path string, logger *logrus.Entry) Store {
	return NewFileStoreAt(path, logger, time.Now)
}

// NewFileStoreAt is NewFileStore with a fixed clock, for tests that need a
// deterministic "now".
func NewFileStoreAt(path string, logger *logrus.Entry, now func() time.Time) Store {
	return &fileStore{
		path:   path,
		logger: logger,
		now:    now,
	}
}

func (store *fileStore) NeedsUpdate(profileName string) bool {
	logger := store.logger.WithField("profile", profileName)
	logger.WithField("path", store.path).Info("Checking whether credentials need an update")

	file, err := ini.Load(store.path)
	if err != nil {
		logger.WithField("error", err.Error()).Debug("Cannot read store, forcing update")
		return true
	}

	section, err := file.GetSection(profileName)
	if err != nil {
		logger.Debug("Profile does not exist, forcing update")
		return true
	}

	if !section.HasKey(expirationKey) {
		logger.Debug("No expiration recorded for profile, forcing update")
		return true
	}

	raw := section.Key(expirationKey).String()
	expiration, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		logger.WithFields(logrus.Fields{
			"expiration": raw,
			"error":      err.Error(),
		}).Warn("Unparsable expiration, forcing update")
		return true
	}

	now := store.now().UTC()
	logger.WithFields(logrus.Fields{
		"expiration": expiration.UTC().Format(time.RFC3339),
		"now":        now.Format(time.RFC3339),
	}).Debug("Comparing expiration against now")

	if !expiration.After(now.Add(-updateMargin)) {
		logger.Debug("Credentials expire within the update margin, updating")
		return true
	}

	logger.Debug("Credentials are still good, not updating")
	return false
}

func (store *fileStore) Apply(profileName string, result FetchResult) error {
	logger := store.logger.WithField("profile", profileName)
	logger.WithField("path", store.path).Info("Updating credentials")

	file, err := ini.LooseLoad(store.path)
	if err != nil {
		return &StoreReadError{Path: store.path, Err: err}
	}

	section, err := file.GetSection(profileName)
	if err != nil {
		logger.Debug("Adding profile section")
		section, err = file.NewSection(profileName)
		if err != nil {
			return &StoreReadError{Path: store.path, Err: err}
		}
	}

	section.Key(accessKeyIDKey).SetValue(result[KeyAccessKeyID])
	section.Key(secretAccessKeyKey).SetValue(result[KeySecretAccessKey])
	section.Key(sessionTokenKey).SetValue(result[KeySessionToken])
	section.Key(expirationKey).SetValue(result[KeyExpiration])

	if err := file.SaveTo(store.path); err != nil {
		return &StoreWriteError{Path: store.path, Err: err}
	}

	logger.Info("Credentials updated successfully")
	return nil
}

type fileStore struct {
	path   string
	logger *logrus.Entry
	now    func() time.Time
}
