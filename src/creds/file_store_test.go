package creds_test

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	. "github.com/hmrd-forpeople/aws-token-updater/src/creds"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

var _ = Describe("FileStore", func() {
	const profile = "prod"

	var (
		path    string
		now     time.Time
		subject Store
	)

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "credentials")
		now = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		subject = NewFileStoreAt(
			path,
			logrus.WithField("prefix", "test"),
			func() time.Time { return now },
		)
	})

	writeStore := func(contents string) {
		Expect(os.WriteFile(path, []byte(contents), 0600)).To(Succeed())
	}

	expiringAt := func(expiration time.Time) string {
		return "[" + profile + "]\n" +
			"aws_access_key_id = AKIAOLD\n" +
			"aws_secret_access_key = oldsecret\n" +
			"aws_session_token = oldtoken\n" +
			"expiration = " + expiration.Format(time.RFC3339) + "\n"
	}

	Describe("NeedsUpdate", func() {
		Context("When the store does not exist", func() {
			It("Forces an update", func() {
				Expect(subject.NeedsUpdate(profile)).To(BeTrue())
			})
		})

		Context("When the store cannot be parsed", func() {
			BeforeEach(func() {
				writeStore("this is not an ini file\n")
			})

			It("Forces an update", func() {
				Expect(subject.NeedsUpdate(profile)).To(BeTrue())
			})
		})

		Context("When the profile section is absent", func() {
			BeforeEach(func() {
				writeStore("[staging]\nexpiration = 2030-01-01T00:00:00Z\n")
			})

			It("Forces an update", func() {
				Expect(subject.NeedsUpdate(profile)).To(BeTrue())
			})
		})

		Context("When the profile has no expiration", func() {
			BeforeEach(func() {
				writeStore("[" + profile + "]\naws_access_key_id = AKIAOLD\n")
			})

			It("Forces an update", func() {
				Expect(subject.NeedsUpdate(profile)).To(BeTrue())
			})
		})

		Context("When the expiration cannot be parsed", func() {
			BeforeEach(func() {
				writeStore("[" + profile + "]\nexpiration = next tuesday\n")
			})

			It("Forces an update", func() {
				Expect(subject.NeedsUpdate(profile)).To(BeTrue())
			})
		})

		Context("When the credentials expire well in the future", func() {
			BeforeEach(func() {
				writeStore(expiringAt(now.Add(time.Hour)))
			})

			It("Does not update", func() {
				Expect(subject.NeedsUpdate(profile)).To(BeFalse())
			})
		})

		Context("When the expiration sits exactly on the update margin", func() {
			BeforeEach(func() {
				writeStore(expiringAt(now.Add(-10 * time.Minute)))
			})

			It("Forces an update", func() {
				Expect(subject.NeedsUpdate(profile)).To(BeTrue())
			})
		})

		Context("When the expiration is just inside the update margin", func() {
			BeforeEach(func() {
				writeStore(expiringAt(now.Add(-10*time.Minute + time.Second)))
			})

			It("Does not update", func() {
				Expect(subject.NeedsUpdate(profile)).To(BeFalse())
			})
		})

		Context("When the credentials expired years ago", func() {
			BeforeEach(func() {
				writeStore("[" + profile + "]\nexpiration = 2020-01-01T00:00:00+00:00\n")
			})

			It("Forces an update", func() {
				Expect(subject.NeedsUpdate(profile)).To(BeTrue())
			})
		})
	})

	Describe("Apply", func() {
		var result FetchResult

		BeforeEach(func() {
			result = FetchResult{
				KeyAccessKeyID:     "AKIANEW",
				KeySecretAccessKey: "newsecret",
				KeySessionToken:    "newtoken",
				KeyExpiration:      now.Add(time.Hour).Format(time.RFC3339),
			}
		})

		Context("When the store does not exist", func() {
			It("Creates it with exactly one section carrying the four keys", func() {
				Expect(subject.Apply(profile, result)).To(Succeed())

				file, err := ini.Load(path)
				Expect(err).To(BeNil())
				Expect(file.SectionStrings()).To(ConsistOf(ini.DefaultSection, profile))

				section := file.Section(profile)
				Expect(section.KeyStrings()).To(ConsistOf(
					"aws_access_key_id",
					"aws_secret_access_key",
					"aws_session_token",
					"expiration",
				))
				Expect(section.Key("aws_access_key_id").String()).To(Equal("AKIANEW"))
				Expect(section.Key("aws_secret_access_key").String()).To(Equal("newsecret"))
				Expect(section.Key("aws_session_token").String()).To(Equal("newtoken"))
				Expect(section.Key("expiration").String()).To(Equal(result[KeyExpiration]))
			})

			It("Round-trips into a store that no longer needs an update", func() {
				Expect(subject.NeedsUpdate(profile)).To(BeTrue())
				Expect(subject.Apply(profile, result)).To(Succeed())
				Expect(subject.NeedsUpdate(profile)).To(BeFalse())
			})
		})

		Context("When the store holds unrelated sections", func() {
			BeforeEach(func() {
				writeStore("[default]\n" +
					"aws_access_key_id = AKIADEFAULT\n" +
					"aws_secret_access_key = defaultsecret\n" +
					"region = us-east-1\n" +
					"\n" +
					expiringAt(now.Add(-time.Hour)))
			})

			It("Updates only the target section", func() {
				Expect(subject.Apply(profile, result)).To(Succeed())

				file, err := ini.Load(path)
				Expect(err).To(BeNil())

				unrelated := file.Section("default")
				Expect(unrelated.Key("aws_access_key_id").String()).To(Equal("AKIADEFAULT"))
				Expect(unrelated.Key("aws_secret_access_key").String()).To(Equal("defaultsecret"))
				Expect(unrelated.Key("region").String()).To(Equal("us-east-1"))

				updated := file.Section(profile)
				Expect(updated.Key("aws_access_key_id").String()).To(Equal("AKIANEW"))
				Expect(updated.Key("aws_session_token").String()).To(Equal("newtoken"))
			})

			It("Preserves keys of the target section it does not manage", func() {
				writeStore("[" + profile + "]\n" +
					"region = eu-west-1\n" +
					"expiration = 2020-01-01T00:00:00Z\n")

				Expect(subject.Apply(profile, result)).To(Succeed())

				file, err := ini.Load(path)
				Expect(err).To(BeNil())
				section := file.Section(profile)
				Expect(section.Key("region").String()).To(Equal("eu-west-1"))
				Expect(section.Key("expiration").String()).To(Equal(result[KeyExpiration]))
			})
		})

		Context("When the existing store cannot be parsed", func() {
			BeforeEach(func() {
				writeStore("this is not an ini file\n")
			})

			It("Fails with a StoreReadError", func() {
				err := subject.Apply(profile, result)
				var readErr *StoreReadError
				Expect(errors.As(err, &readErr)).To(BeTrue())
				Expect(readErr.Path).To(Equal(path))
			})
		})

		Context("When the destination cannot be written", func() {
			BeforeEach(func() {
				subject = NewFileStoreAt(
					filepath.Join(GinkgoT().TempDir(), "missing", "credentials"),
					logrus.WithField("prefix", "test"),
					func() time.Time { return now },
				)
			})

			It("Fails with a StoreWriteError", func() {
				err := subject.Apply(profile, result)
				var writeErr *StoreWriteError
				Expect(errors.As(err, &writeErr)).To(BeTrue())
			})
		})
	})
})

var _ = Describe("FetchResult", func() {
	Describe("Missing", func() {
		It("Accepts a complete result", func() {
			result := FetchResult{
				KeyAccessKeyID:     "AKIA",
				KeySecretAccessKey: "secret",
				KeySessionToken:    "token",
				KeyExpiration:      "2025-01-01T00:00:00Z",
			}
			Expect(result.Missing()).To(BeNil())
		})

		It("Reports absent keys", func() {
			result := FetchResult{KeyAccessKeyID: "AKIA"}
			Expect(result.Missing()).To(Equal([]string{
				KeySecretAccessKey,
				KeySessionToken,
				KeyExpiration,
			}))
		})

		It("Treats empty values as missing", func() {
			result := FetchResult{
				KeyAccessKeyID:     "AKIA",
				KeySecretAccessKey: "",
				KeySessionToken:    "token",
				KeyExpiration:      "2025-01-01T00:00:00Z",
			}
			Expect(result.Missing()).To(Equal([]string{KeySecretAccessKey}))
		})
	})
})
