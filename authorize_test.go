package main

import (
	"bytes"
	"crypto/sha256"
	"net/http"
	"testing"
	"time"

	"go.mozilla.org/hawk"
)

func TestMissingAuthorization(t *testing.T) {
	ex, _ := newTestExtractor(t)

	body := []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	req, err := http.NewRequest("POST", "http://foo.bar/extract", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	_, err = ex.authorize(req, body)
	if err == nil {
		t.Errorf("expected auth to fail with missing authorization but succeeded")
	}
	if err.Error() != "missing Authorization header" {
		t.Errorf("expected auth to fail with missing authorization but got error: %v", err)
	}
}

func TestBogusAuthorization(t *testing.T) {
	ex, _ := newTestExtractor(t)

	body := []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	req, err := http.NewRequest("POST", "http://foo.bar/extract", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", `Hawk thisisbob="bob", andhereisamac="nVg5STp2fD+P7G3ELmUztb3hP/LQajwD+FDQM7rZvhw=", ts="1453681057"`)
	_, err = ex.authorize(req, body)
	if err == nil {
		t.Errorf("expected auth to fail with invalid authorization but succeeded")
	}
	if err.Error() != "hawk: invalid mac, missing or empty" {
		t.Errorf("expected auth to fail with no authorization but got error: %v", err)
	}
}

func TestUnknownUser(t *testing.T) {
	ex, _ := newTestExtractor(t)

	body := []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	req, err := http.NewRequest("POST", "http://foo.bar/extract", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	authheader := getAuthHeader(req, "eve", "1862300e9bd18eafab2eb8d6", sha256.New, id(), "application/json", body)
	req.Header.Set("Authorization", authheader)
	_, err = ex.authorize(req, body)
	if err == nil {
		t.Errorf("expected auth to fail with unknown user but succeeded")
	}
}

func TestBadPayload(t *testing.T) {
	ex, conf := newTestExtractor(t)

	body := []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	req, err := http.NewRequest("POST", "http://foo.bar/extract", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	auth := conf.Authorizations[0]
	authheader := getAuthHeader(req, auth.ID, auth.Key, sha256.New, id(), "application/json", []byte(`9247oldfjd18weohfa`))
	req.Header.Set("Authorization", authheader)
	_, err = ex.authorize(req, body)
	if err == nil {
		t.Errorf("expected auth to fail with payload validation failed but succeeded")
	}
	if err.Error() != "payload validation failed" {
		t.Errorf("expected auth to fail with payload validation failed but got error: %v", err)
	}
}

func TestDuplicateNonce(t *testing.T) {
	ex, conf := newTestExtractor(t)

	body := []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	req, err := http.NewRequest("POST", "http://foo.bar/extract", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	auth := conf.Authorizations[0]
	authheader := getAuthHeader(req, auth.ID, auth.Key, sha256.New, id(), "application/json", body)
	req.Header.Set("Authorization", authheader)
	// run it once
	_, _ = ex.authorize(req, body)
	// and run it twice
	_, err = ex.authorize(req, body)
	if err == nil {
		t.Errorf("expected auth to fail with duplicate nonce, but succeeded")
	}
	if err.Error() != hawk.ErrReplay.Error() {
		t.Errorf("expected auth to fail with duplicate nonces but got error: %v", err)
	}
}

func TestNonceFromLRU(t *testing.T) {
	ex, conf := newTestExtractor(t)

	req, err := http.NewRequest("POST", "http://foo.bar/extract", nil)
	if err != nil {
		t.Fatal(err)
	}
	auth := conf.Authorizations[0]

	auth1 := hawk.NewRequestAuth(req,
		&hawk.Credentials{
			ID:   auth.ID,
			Key:  auth.Key,
			Hash: sha256.New,
		},
		0)
	payloadhash := auth1.PayloadHash("")
	payloadhash.Write([]byte(""))
	auth1.SetHash(payloadhash)
	req.Header.Set("Authorization", auth1.RequestHeader())
	_, err = ex.authorize(req, []byte(""))
	if err != nil {
		t.Fatalf("first request failed: %v", err)
	}
	if !ex.nonces.Contains(auth1.Nonce) {
		t.Errorf("expected nonce %q to be stored in the LRU cache", auth1.Nonce)
	}
}

func TestHawkTimestampValidityParsing(t *testing.T) {
	ex, _ := newTestExtractor(t)

	auth, err := ex.backend.getAuthByID("alice")
	if err != nil {
		t.Fatal(err)
	}
	if auth.hawkMaxTimestampSkew != time.Minute {
		t.Errorf("expected 1m timestamp validity, got %s", auth.hawkMaxTimestampSkew)
	}
	// bob has no explicit validity and falls back to the default
	auth, err = ex.backend.getAuthByID("bob")
	if err != nil {
		t.Fatal(err)
	}
	if auth.hawkMaxTimestampSkew != time.Minute {
		t.Errorf("expected default timestamp validity, got %s", auth.hawkMaxTimestampSkew)
	}
}

func TestDuplicateAuthorizationRejected(t *testing.T) {
	ex, conf := newTestExtractor(t)
	err := ex.addAuthorizations([]authorization{conf.Authorizations[0]})
	if err == nil {
		t.Errorf("expected duplicate authorization to be rejected but it was accepted")
	}
}

func TestMonitorUserReserved(t *testing.T) {
	ex, _ := newTestExtractor(t)
	err := ex.addMonitoring(authorization{Key: "anotherkeyanotherkeyanotherkey12"})
	if err == nil {
		t.Errorf("expected second monitoring auth to be rejected but it was accepted")
	}
}
