package main

import (
	"net/http"
	"sync"
	"time"

	"github.com/pkg/errors"

	log "github.com/sirupsen/logrus"
	"go.mozilla.org/mozlogrus"
)

// er is a global variable that holds an extraction log
var er extractionRegistry

// extractionRegistry is a simple structure used to pass details about
// extracted metadata from the request handler to the logging middleware
type extractionRegistry struct {
	entry map[string]extractionLog
	sync.Mutex
}

// extractionLog contains log details
type extractionLog struct {
	log    []extractionlogentry
	userid string
}

// extractionlogentry describes one processed input without carrying
// any of the extracted values
type extractionlogentry struct {
	Ref        string `json:"ref"`
	Format     string `json:"format"`
	Digest     string `json:"digest"`
	FieldCount int    `json:"field_count"`
}

func init() {
	// initialize the logger
	mozlogrus.Enable("exifd")
	// make a map that holds extraction logs
	er.entry = make(map[string]extractionLog)
}

// logRequest is a middleware that writes details about each HTTP request processed
// by the various handlers. It is executed last to capture extraction logs as well.
func logRequest() Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, r)
			// attempt to retrieve an extraction registry entry for this request
			// from the global er.entry map, using mutexes
			var el extractionLog
			rid := getRequestID(r)
			er.Lock()
			defer er.Unlock()
			if _, ok := er.entry[rid]; ok {
				el = er.entry[rid]
				delete(er.entry, rid)
			}
			// calculate the processing time
			t1 := getRequestStartTime(r)
			procTs := time.Since(t1)
			log.WithFields(log.Fields{
				"remoteAddress":      r.RemoteAddr,
				"remoteAddressChain": "[" + r.Header.Get("X-Forwarded-For") + "]",
				"method":             r.Method,
				"proto":              r.Proto,
				"url":                r.URL.String(),
				"ua":                 r.UserAgent(),
				"rid":                rid,
				"t":                  procTs / time.Millisecond,
				"user":               el.userid,
				"extraction_log":     el.log,
			}).Info("request")
		})
	}
}

// buildExtractionLog stores the log entries produced while handling a request
// in the er.entry map for the logging middleware to later capture them.
func buildExtractionLog(userid string, entries []extractionlogentry, r *http.Request) error {
	var el extractionLog
	el.log = entries
	el.userid = userid
	// take a lock to check if an entry with this rid already exists
	er.Lock()
	defer er.Unlock()
	rid := getRequestID(r)
	if _, ok := er.entry[rid]; ok {
		return errors.Errorf("a conflicting extraction log entry with rid '%s' already exists", rid)
	}
	er.entry[rid] = el
	return nil
}
