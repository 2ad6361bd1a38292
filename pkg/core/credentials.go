package core

// Credentials holds the Web API credential triple used to sign private
// requests. The triple is immutable after client construction and is only
// ever consumed by the signer; it is never logged or serialized.
type Credentials struct {
	// ID is the Web API identifier issued by the venue.
	ID string
	// Key is the public Web API key.
	Key string
	// Secret is the private key used as the HMAC signing key.
	Secret string
}

// Complete returns true when all three credential fields are present.
func (c Credentials) Complete() bool {
	return c.ID != "" && c.Key != "" && c.Secret != ""
}

// Validate returns a CredentialError naming the first missing field, or nil
// when the triple is complete.
func (c Credentials) Validate() error {
	switch {
	case c.ID == "":
		return &CredentialError{Missing: "id"}
	case c.Key == "":
		return &CredentialError{Missing: "key"}
	case c.Secret == "":
		return &CredentialError{Missing: "secret"}
	}
	return nil
}

// String returns a masked representation safe for logging. The secret is
// never included.
func (c Credentials) String() string {
	return "Credentials{id=" + mask(c.ID) + ", key=" + mask(c.Key) + ", secret=***}"
}

func mask(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + "****" + s[len(s)-2:]
}
