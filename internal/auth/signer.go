// Package auth implements the venue's HMAC request-signing scheme.
//
// Every private request carries an Authorization header of the form
//
//	HMAC {id}:{key}:{timestamp}:{signature}
//
// where signature is the Base64-encoded HMAC-SHA256, keyed by the secret,
// of the canonical string
//
//	timestamp + id + key + METHOD + url + body
//
// concatenated with no separators. The timestamp is wall-clock milliseconds
// since the Unix epoch, the method token is uppercase, the URL is the full
// absolute URL including query string exactly as transmitted, and the body
// is the serialized JSON text or the empty string when absent.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ttwebclient/pkg/core"
)

// Scheme is the Authorization header scheme token.
const Scheme = "HMAC"

// Clock supplies the current time. Tests inject a fixed clock to make
// signatures reproducible.
type Clock func() time.Time

// Header is a computed Authorization header, valid for exactly one request.
type Header struct {
	ID        string
	Key       string
	Timestamp int64
	Signature string
}

// Value renders the header in the venue's wire format.
func (h Header) Value() string {
	return Scheme + " " + h.ID + ":" + h.Key + ":" + strconv.FormatInt(h.Timestamp, 10) + ":" + h.Signature
}

// Signer produces Authorization headers for a fixed credential triple.
// It is a pure function of its inputs plus the clock and is safe for
// concurrent use.
type Signer struct {
	clock Clock
}

// NewSigner creates a Signer. A nil clock defaults to time.Now.
func NewSigner(clock Clock) *Signer {
	if clock == nil {
		clock = time.Now
	}
	return &Signer{clock: clock}
}

// Sign computes the Authorization header for a request. The url must be the
// absolute URL exactly as it will be transmitted, query string included, and
// body must be the exact serialized JSON bytes, or nil when the request
// carries none. Incomplete credentials fail with a CredentialError before
// any I/O; the method token is validated after uppercasing so that no two
// method/url splits can produce the same canonical string.
func (s *Signer) Sign(creds core.Credentials, method, url string, body []byte) (Header, error) {
	if err := creds.Validate(); err != nil {
		return Header{}, err
	}

	method = strings.ToUpper(method)
	switch method {
	case "GET", "POST", "PUT", "DELETE":
	default:
		return Header{}, fmt.Errorf("sign: unsupported http method %q", method)
	}

	timestamp := s.clock().UnixMilli()

	var canonical strings.Builder
	canonical.WriteString(strconv.FormatInt(timestamp, 10))
	canonical.WriteString(creds.ID)
	canonical.WriteString(creds.Key)
	canonical.WriteString(method)
	canonical.WriteString(url)
	canonical.Write(body)

	return Header{
		ID:        creds.ID,
		Key:       creds.Key,
		Timestamp: timestamp,
		Signature: Signature(creds.Secret, canonical.String()),
	}, nil
}

// Signature computes the Base64-encoded HMAC-SHA256 of payload keyed by
// secret. The feed login handshake reuses it over its own canonical string.
func Signature(secret, payload string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
