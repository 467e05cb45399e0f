package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"hash"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.mozilla.org/hawk"
	"go.uber.org/mock/gomock"

	"github.com/imgmeta/exifd/database"
	"github.com/imgmeta/exifd/internal/mockaudit"
)

// a little-endian TIFF with a single ImageWidth field
var testImageTIFF = []byte{
	'I', 'I', 0x2a, 0x00,
	0x08, 0x00, 0x00, 0x00,
	0x01, 0x00,
	0x00, 0x01, 0x03, 0x00, 0x01, 0x00, 0x00, 0x00, 0x14, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
}

// testImageJPEG wraps testImageTIFF in a JPEG APP1 segment
var testImageJPEG = append(append([]byte{
	0xff, 0xd8,
	0xff, 0xe1, 0x00, 0x22,
	'E', 'x', 'i', 'f', 0x00, 0x00,
}, testImageTIFF...), 0xff, 0xd9)

func newTestExtractor(t *testing.T) (*extractor, configuration) {
	t.Helper()
	var conf configuration
	conf.Server.NonceCacheSize = 64
	conf.Server.ResultCacheSize = 16
	conf.Authorizations = []authorization{
		{
			ID:                    "alice",
			Key:                   "fs5wgcer9qj819kfptdlp8gbtfsgwuc7",
			HawkTimestampValidity: "1m",
		},
		{
			ID:  "bob",
			Key: "9vh6bhlc10y63ow2q4zke4fn1ueoj1w6",
		},
	}
	conf.Monitoring = authorization{Key: "19zd4w3xirb5syjgdx8atq6g91m03bds"}
	ex, err := newExtractor(conf)
	if err != nil {
		t.Fatal(err)
	}
	err = ex.addAuthorizations(conf.Authorizations)
	if err != nil {
		t.Fatal(err)
	}
	err = ex.addMonitoring(conf.Monitoring)
	if err != nil {
		t.Fatal(err)
	}
	return ex, conf
}

func makeExtractRequest(t *testing.T, ex *extractor, userid, key string, extreqs []extractionrequest) *http.Request {
	t.Helper()
	body, err := json.Marshal(extreqs)
	if err != nil {
		t.Fatal(err)
	}
	req, err := http.NewRequest("POST", "http://foo.bar/extract", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	authheader := getAuthHeader(req, userid, key, sha256.New, id(), "application/json", body)
	req.Header.Set("Authorization", authheader)
	return req
}

func TestExtractPass(t *testing.T) {
	ex, conf := newTestExtractor(t)
	testcases := []struct {
		name       string
		input      []byte
		format     string
		fieldCount int
	}{
		{"tiff", testImageTIFF, "tiff", 1},
		{"jpeg", testImageJPEG, "jpeg", 1},
	}
	for _, testcase := range testcases {
		t.Run(testcase.name, func(t *testing.T) {
			auth := conf.Authorizations[0]
			req := makeExtractRequest(t, ex, auth.ID, auth.Key, []extractionrequest{
				{Input: base64.StdEncoding.EncodeToString(testcase.input)},
			})
			w := httptest.NewRecorder()
			ex.handleExtract(w, req)
			if w.Code != http.StatusCreated {
				t.Fatalf("failed with %d: %s", w.Code, w.Body.String())
			}
			var extresps []extractionresponse
			err := json.Unmarshal(w.Body.Bytes(), &extresps)
			if err != nil {
				t.Fatal(err)
			}
			if len(extresps) != 1 {
				t.Fatalf("expected 1 response, got %d", len(extresps))
			}
			if extresps[0].Format != testcase.format {
				t.Errorf("expected format %q, got %q", testcase.format, extresps[0].Format)
			}
			if len(extresps[0].Fields) != testcase.fieldCount {
				t.Errorf("expected %d fields, got %d", testcase.fieldCount, len(extresps[0].Fields))
			}
			if extresps[0].CacheHit {
				t.Errorf("expected a cache miss on first extraction")
			}
		})
	}
}

func TestExtractCacheHit(t *testing.T) {
	ex, conf := newTestExtractor(t)
	auth := conf.Authorizations[0]
	extreqs := []extractionrequest{
		{Input: base64.StdEncoding.EncodeToString(testImageTIFF)},
	}
	for i, wantHit := range []bool{false, true} {
		req := makeExtractRequest(t, ex, auth.ID, auth.Key, extreqs)
		w := httptest.NewRecorder()
		ex.handleExtract(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("call %d failed with %d: %s", i, w.Code, w.Body.String())
		}
		var extresps []extractionresponse
		if err := json.Unmarshal(w.Body.Bytes(), &extresps); err != nil {
			t.Fatal(err)
		}
		if extresps[0].CacheHit != wantHit {
			t.Errorf("call %d: expected cache_hit=%t, got %t", i, wantHit, extresps[0].CacheHit)
		}
	}
}

func TestExtractFailures(t *testing.T) {
	ex, conf := newTestExtractor(t)
	auth := conf.Authorizations[0]
	testcases := []struct {
		name    string
		code    int
		extreqs []extractionrequest
	}{
		{"invalid base64", http.StatusBadRequest,
			[]extractionrequest{{Input: "%%%not-base64%%%"}}},
		{"undecodable input", http.StatusBadRequest,
			[]extractionrequest{{Input: base64.StdEncoding.EncodeToString([]byte("not an image"))}}},
		{"empty request list", http.StatusBadRequest,
			[]extractionrequest{}},
		{"too many requests", http.StatusRequestEntityTooLarge,
			make([]extractionrequest, maxRequestsPerCall+1)},
	}
	for _, testcase := range testcases {
		t.Run(testcase.name, func(t *testing.T) {
			req := makeExtractRequest(t, ex, auth.ID, auth.Key, testcase.extreqs)
			w := httptest.NewRecorder()
			ex.handleExtract(w, req)
			if w.Code != testcase.code {
				t.Fatalf("expected to fail with %d but got %d: %s", testcase.code, w.Code, w.Body.String())
			}
		})
	}
}

func TestExtractUnauthorized(t *testing.T) {
	ex, _ := newTestExtractor(t)
	body, err := json.Marshal([]extractionrequest{
		{Input: base64.StdEncoding.EncodeToString(testImageTIFF)},
	})
	if err != nil {
		t.Fatal(err)
	}
	req, err := http.NewRequest("POST", "http://foo.bar/extract", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ex.handleExtract(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected to fail with %d but got %d: %s", http.StatusUnauthorized, w.Code, w.Body.String())
	}
}

func TestExtractBadCredentials(t *testing.T) {
	ex, _ := newTestExtractor(t)
	req := makeExtractRequest(t, ex, "alice", "thisisnotalicekey1234567890abcde", []extractionrequest{
		{Input: base64.StdEncoding.EncodeToString(testImageTIFF)},
	})
	w := httptest.NewRecorder()
	ex.handleExtract(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected to fail with %d but got %d: %s", http.StatusUnauthorized, w.Code, w.Body.String())
	}
}

func TestExtractAudited(t *testing.T) {
	ex, conf := newTestExtractor(t)
	ctrl := gomock.NewController(t)
	audit := mockaudit.NewMockAuditor(ctrl)
	audit.EXPECT().InsertExtraction(gomock.Cond(func(x any) bool {
		rec, ok := x.(database.ExtractionRecord)
		return ok && rec.UserID == "alice" && rec.Format == "tiff" && rec.FieldCount == 1
	})).Return("record-id", nil)
	ex.audit = audit

	auth := conf.Authorizations[0]
	req := makeExtractRequest(t, ex, auth.ID, auth.Key, []extractionrequest{
		{Input: base64.StdEncoding.EncodeToString(testImageTIFF)},
	})
	w := httptest.NewRecorder()
	ex.handleExtract(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("failed with %d: %s", w.Code, w.Body.String())
	}
}

func TestExtractContentType(t *testing.T) {
	ex, conf := newTestExtractor(t)
	auth := conf.Authorizations[0]
	req := makeExtractRequest(t, ex, auth.ID, auth.Key, []extractionrequest{
		{Input: base64.StdEncoding.EncodeToString(testImageTIFF)},
	})
	w := httptest.NewRecorder()
	ex.handleExtract(w, req)
	if w.Header().Get("Content-Type") != "application/json" {
		t.Fatalf("expected response with content type 'application/json' but got %q instead",
			w.Header().Get("Content-Type"))
	}
}

func TestMonitorPass(t *testing.T) {
	ex, conf := newTestExtractor(t)
	req, err := http.NewRequest("GET", "http://foo.bar/__monitor__", nil)
	if err != nil {
		t.Fatal(err)
	}
	authheader := getAuthHeader(req, monitorAuthID, conf.Monitoring.Key,
		sha256.New, id(), "", []byte(""))
	req.Header.Set("Authorization", authheader)
	w := httptest.NewRecorder()
	ex.handleMonitor(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("failed with %d: %s", w.Code, w.Body.String())
	}
	var monresps []monitorresponse
	if err := json.Unmarshal(w.Body.Bytes(), &monresps); err != nil {
		t.Fatal(err)
	}
	if len(monresps) != 2 {
		t.Fatalf("expected 2 canary results, got %d", len(monresps))
	}
}

func TestMonitorReservedToMonitorUser(t *testing.T) {
	ex, conf := newTestExtractor(t)
	auth := conf.Authorizations[0]
	req, err := http.NewRequest("GET", "http://foo.bar/__monitor__", nil)
	if err != nil {
		t.Fatal(err)
	}
	authheader := getAuthHeader(req, auth.ID, auth.Key, sha256.New, id(), "", []byte(""))
	req.Header.Set("Authorization", authheader)
	w := httptest.NewRecorder()
	ex.handleMonitor(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected to fail with %d but got %d: %s", http.StatusUnauthorized, w.Code, w.Body.String())
	}
}

func TestHeartbeat(t *testing.T) {
	ex, _ := newTestExtractor(t)
	req, err := http.NewRequest("GET", "http://foo.bar/__heartbeat__", nil)
	if err != nil {
		t.Fatal(err)
	}
	w := httptest.NewRecorder()
	ex.handleHeartbeat(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("failed with %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"status":true`) {
		t.Fatalf("unexpected heartbeat body: %s", w.Body.String())
	}
}

func TestVersion(t *testing.T) {
	req, err := http.NewRequest("GET", "http://foo.bar/__version__", nil)
	if err != nil {
		t.Fatal(err)
	}
	w := httptest.NewRecorder()
	handleVersion(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("failed with %d: %s", w.Code, w.Body.String())
	}
	var versiondata map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &versiondata); err != nil {
		t.Fatal(err)
	}
	if versiondata["version"] != version {
		t.Fatalf("expected version %q, got %q", version, versiondata["version"])
	}
}

func getAuthHeader(req *http.Request, user, token string, hash func() hash.Hash, ext, contenttype string, payload []byte) string {
	auth := hawk.NewRequestAuth(req,
		&hawk.Credentials{
			ID:   user,
			Key:  token,
			Hash: hash},
		0)
	auth.Ext = ext
	payloadhash := auth.PayloadHash(contenttype)
	payloadhash.Write(payload)
	auth.SetHash(payloadhash)
	return auth.RequestHeader()
}
