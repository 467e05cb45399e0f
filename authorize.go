package main

import (
	"crypto/sha256"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"go.mozilla.org/hawk"
)

// an authorization grants API access to a hawk user
type authorization struct {
	ID                    string
	Key                   string
	HawkTimestampValidity string
	hawkMaxTimestampSkew  time.Duration
}

func abs(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// authorize validates the hawk authorization header on a request and
// returns the id of the authenticated user
func (ex *extractor) authorize(r *http.Request, body []byte) (userid string, err error) {
	if r.Header.Get("Authorization") == "" {
		return "", fmt.Errorf("missing Authorization header")
	}
	auth, err := hawk.ParseRequestHeader(r.Header.Get("Authorization"))
	sendStatsErr := ex.stats.Timing("hawk.header_parsed", time.Since(getRequestStartTime(r)), nil, 1.0)
	if sendStatsErr != nil {
		log.Warnf("Error sending hawk.header_parsed: %s", sendStatsErr)
	}
	if err != nil {
		return "", err
	}
	userid = auth.Credentials.ID
	auth, err = hawk.NewAuthFromRequest(r, ex.lookupCred(userid), ex.lookupNonce)
	if err != nil {
		return "", err
	}
	storedAuth, err := ex.backend.getAuthByID(userid)
	if err != nil {
		return "", err
	}
	hawk.MaxTimestampSkew = storedAuth.hawkMaxTimestampSkew
	err = auth.Valid()
	sendStatsErr = ex.stats.Timing("hawk.validated", time.Since(getRequestStartTime(r)), nil, 1.0)
	if sendStatsErr != nil {
		log.Warnf("Error sending hawk.validated: %s", sendStatsErr)
	}
	skew := abs(auth.ActualTimestamp.Sub(auth.Timestamp))
	sendStatsErr = ex.stats.Timing("hawk.timestamp_skew", skew, nil, 1.0)
	if sendStatsErr != nil {
		log.Warnf("Error sending hawk.timestamp_skew: %s", sendStatsErr)
	}
	if err != nil {
		return "", err
	}
	payloadhash := auth.PayloadHash(r.Header.Get("Content-Type"))
	payloadhash.Write(body)
	if !auth.ValidHash(payloadhash) {
		return "", fmt.Errorf("payload validation failed")
	}
	return userid, nil
}

// lookupCred searches the authorizations for a user whose id matches the
// provided id string. If found, a Credential function is returned to complete
// the hawk authorization. If not found, a function that returns an error is
// returned.
func (ex *extractor) lookupCred(id string) hawk.CredentialsLookupFunc {
	auth, err := ex.backend.getAuthByID(id)
	if err == nil {
		// matching user found, return its token
		return func(creds *hawk.Credentials) error {
			creds.Key = auth.Key
			creds.Hash = sha256.New
			return nil
		}
	}
	// credentials not found, return a function that returns a CredentialError
	return func(creds *hawk.Credentials) error {
		return &hawk.CredentialError{
			Type: hawk.UnknownID,
			Credentials: &hawk.Credentials{
				ID:   id,
				Key:  "-",
				Hash: sha256.New,
			},
		}
	}
}

// lookupNonce searches the LRU cache for a previous nonce that matches the
// value provided in val. If found, this is a replay attack, and `false` is
// returned.
func (ex *extractor) lookupNonce(val string, ts time.Time, creds *hawk.Credentials) bool {
	if ex.nonces.Contains(val) {
		return false
	}
	ex.nonces.Add(val, time.Now())
	return true
}
