// Package catalog talks to the comic-character catalog API.
//
// Every request to the catalog must be signed: the query carries a timestamp,
// the public API key and an MD5 token over timestamp + private key + public
// key. The private key itself never leaves the process.
package catalog

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Reserved query parameters set by the signer.
const (
	ParamTimestamp = "ts"
	ParamAPIKey    = "apikey"
	ParamHash      = "hash"
)

// Credentials holds the catalog key pair.
type Credentials struct {
	PublicKey  string
	PrivateKey string
}

// Validate reports ErrConfiguration when either key is blank.
func (c Credentials) Validate() error {
	if strings.TrimSpace(c.PublicKey) == "" {
		return fmt.Errorf("%w: public api key is not set", ErrConfiguration)
	}
	if strings.TrimSpace(c.PrivateKey) == "" {
		return fmt.Errorf("%w: private api key is not set", ErrConfiguration)
	}
	return nil
}

// Hash returns the hex MD5 token the catalog expects for ts and the key pair.
func Hash(ts, publicKey, privateKey string) string {
	sum := md5.Sum([]byte(ts + privateKey + publicKey))
	return hex.EncodeToString(sum[:])
}

// BuildURL appends a signed query to baseURL.
//
// The query is the union of extra and the reserved ts/apikey/hash
// parameters. Values supplied in extra for a reserved key are discarded.
// Parameters are encoded in sorted key order, so the result is fully
// determined by the inputs.
func BuildURL(baseURL string, extra url.Values, ts, publicKey, privateKey string) (string, error) {
	if err := (Credentials{PublicKey: publicKey, PrivateKey: privateKey}).Validate(); err != nil {
		return "", err
	}
	return sign(baseURL, extra, ts, publicKey, privateKey)
}

// sign is BuildURL without the credential check.
func sign(baseURL string, extra url.Values, ts, publicKey, privateKey string) (string, error) {
	if strings.TrimSpace(baseURL) == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidBaseURL)
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("%w: %q is not absolute", ErrInvalidBaseURL, baseURL)
	}

	query := u.Query()
	for key, values := range extra {
		if isReserved(key) {
			continue
		}
		for _, value := range values {
			query.Add(key, value)
		}
	}
	query.Set(ParamTimestamp, ts)
	query.Set(ParamAPIKey, publicKey)
	query.Set(ParamHash, Hash(ts, publicKey, privateKey))

	u.RawQuery = query.Encode()
	return u.String(), nil
}

func isReserved(key string) bool {
	return key == ParamTimestamp || key == ParamAPIKey || key == ParamHash
}

// Clock supplies the timestamp stamped onto each signed query.
type Clock interface {
	Timestamp() string
}

// FixedClock always returns the same timestamp.
type FixedClock string

func (c FixedClock) Timestamp() string { return string(c) }

// WallClock returns the current Unix time in milliseconds.
type WallClock struct{}

func (WallClock) Timestamp() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// ClockFor returns a WallClock for an empty ts or "now", and a FixedClock
// stamping ts otherwise.
func ClockFor(ts string) Clock {
	ts = strings.TrimSpace(ts)
	if ts == "" || strings.EqualFold(ts, "now") {
		return WallClock{}
	}
	return FixedClock(ts)
}

// Signer signs catalog URLs with a validated key pair.
// It holds no mutable state and is safe for concurrent use.
type Signer struct {
	creds Credentials
	clock Clock
}

// NewSigner validates creds once and returns a Signer using clock.
// A nil clock falls back to WallClock.
func NewSigner(creds Credentials, clock Clock) (*Signer, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = WallClock{}
	}
	return &Signer{creds: creds, clock: clock}, nil
}

// URL returns baseURL with extra and a freshly stamped signature.
// The key pair was validated by NewSigner and is not checked again.
func (s *Signer) URL(baseURL string, extra url.Values) (string, error) {
	return sign(baseURL, extra, s.clock.Timestamp(), s.creds.PublicKey, s.creds.PrivateKey)
}
