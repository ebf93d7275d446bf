package creds

// Keys the broker must populate in a fetch result. The same names are used
// by the AWS credential_process contract, so they are matched exactly.
const (
	KeyAccessKeyID     = "AccessKeyId"
	KeySecretAccessKey = "SecretAccessKey"
	KeySessionToken    = "SessionToken"
	KeyExpiration      = "Expiration"
)

// RequiredKeys lists every key a FetchResult must carry before it may be
// written to a store. A profile section always receives all four together.
var RequiredKeys = []string{
	KeyAccessKeyID,
	KeySecretAccessKey,
	KeySessionToken,
	KeyExpiration,
}

// FetchResult is the raw credential bundle produced by the broker. It is
// untyped input: callers validate it with Missing before handing it to a
// Store.
type FetchResult map[string]string

// Missing returns the required keys that are absent or empty, in the order
// of RequiredKeys. A nil return means the result is safe to apply.
func (result FetchResult) Missing() []string {
	var missing []string
	for _, key := range RequiredKeys {
		if result[key] == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// Store reads and updates named credential profiles in a shared credentials
// file. Implementations are not safe for concurrent writers; the tool is
// expected to run as non-overlapping scheduled invocations.
type Store interface {
	// NeedsUpdate reports whether the profile's credentials should be
	// refreshed. Any state that cannot be read, parsed, or found counts
	// as needing an update.
	NeedsUpdate(profileName string) bool
	// Apply merges the fetch result into the named profile section and
	// rewrites the store, leaving every other section untouched.
	Apply(profileName string, result FetchResult) error
}
