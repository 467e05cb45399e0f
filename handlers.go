package main

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/imgmeta/exifd/database"
	"github.com/imgmeta/exifd/exif"
)

// an extractionrequest is a single image submitted for metadata
// extraction. The image bytes are base64 encoded in Input.
type extractionrequest struct {
	Input     string `json:"input"`
	Thumbnail bool   `json:"thumbnail,omitempty"`
}

// an extractionresponse returns the decoded metadata of one image
type extractionresponse struct {
	Ref          string      `json:"ref"`
	Format       string      `json:"format"`
	LittleEndian bool        `json:"little_endian"`
	Digest       string      `json:"digest"`
	CacheHit     bool        `json:"cache_hit"`
	Fields       []fielddata `json:"fields"`
}

// fielddata is the wire form of a single Exif field
type fielddata struct {
	Tag       string `json:"tag"`
	Context   string `json:"context"`
	Number    uint16 `json:"number"`
	Type      string `json:"type"`
	Count     uint32 `json:"count"`
	Value     string `json:"value"`
	Thumbnail bool   `json:"thumbnail,omitempty"`
}

// handleExtract accepts a list of extraction requests in a hawk
// authenticated POST request and returns the Exif metadata of each
// submitted image
func (ex *extractor) handleExtract(w http.ResponseWriter, r *http.Request) {
	starttime := getRequestStartTime(r)

	if r.ContentLength > 2*ex.maxInputSize {
		httpError(w, r, http.StatusRequestEntityTooLarge,
			"request body exceeds the maximum allowed size")
		return
	}
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		httpError(w, r, http.StatusBadRequest, "failed to read request body: %s", err)
		return
	}

	userid, err := ex.authorize(r, body)
	if err != nil {
		httpError(w, r, http.StatusUnauthorized, "authorization verification failed: %v", err)
		return
	}

	var extreqs []extractionrequest
	err = json.Unmarshal(body, &extreqs)
	if err != nil {
		httpError(w, r, http.StatusBadRequest, "failed to parse request body: %v", err)
		return
	}
	if len(extreqs) == 0 {
		httpError(w, r, http.StatusBadRequest, "no extraction request found in request body")
		return
	}
	if len(extreqs) > maxRequestsPerCall {
		httpError(w, r, http.StatusRequestEntityTooLarge,
			"too many extraction requests, %d max", maxRequestsPerCall)
		return
	}

	extresps := make([]extractionresponse, len(extreqs))
	logentries := make([]extractionlogentry, len(extreqs))
	for i, extreq := range extreqs {
		input, err := base64.StdEncoding.DecodeString(extreq.Input)
		if err != nil {
			httpError(w, r, http.StatusBadRequest,
				"invalid base64 input in request %d: %v", i, err)
			return
		}
		if int64(len(input)) > ex.maxInputSize {
			httpError(w, r, http.StatusRequestEntityTooLarge,
				"input %d exceeds the maximum allowed size of %d bytes", i, ex.maxInputSize)
			return
		}
		digest := fmt.Sprintf("%x", sha256.Sum256(input))

		meta, cacheHit := ex.cachedResult(digest)
		if !cacheHit {
			meta, err = exif.Decode(input)
			if err != nil {
				httpError(w, r, http.StatusBadRequest,
					"extraction of request %d failed: %v", i, err)
				return
			}
			ex.results.Add(digest, meta)
		} else {
			sendStatsErr := ex.stats.Incr("extraction.cache_hit", nil, 1.0)
			if sendStatsErr != nil {
				log.Warnf("Error sending extraction.cache_hit: %s", sendStatsErr)
			}
		}

		extresps[i] = extractionresponse{
			Ref:          id(),
			Format:       meta.Format,
			LittleEndian: meta.LittleEndian,
			Digest:       digest,
			CacheHit:     cacheHit,
			Fields:       makeFieldData(meta, extreq.Thumbnail),
		}
		logentries[i] = extractionlogentry{
			Ref:        extresps[i].Ref,
			Format:     meta.Format,
			Digest:     digest,
			FieldCount: len(extresps[i].Fields),
		}

		if ex.audit != nil {
			_, auditErr := ex.audit.InsertExtraction(database.ExtractionRecord{
				UserID:     userid,
				Digest:     digest,
				Format:     meta.Format,
				FieldCount: len(extresps[i].Fields),
				CacheHit:   cacheHit,
				ProcTimeMs: time.Since(starttime).Milliseconds(),
			})
			if auditErr != nil {
				log.WithFields(log.Fields{
					"rid": getRequestID(r),
				}).Warnf("failed to audit extraction: %v", auditErr)
			}
		}
	}

	err = buildExtractionLog(userid, logentries, r)
	if err != nil {
		httpError(w, r, http.StatusInternalServerError, "%v", err)
		return
	}

	sendStatsErr := ex.stats.Timing("extraction.processed", time.Since(starttime), nil, 1.0)
	if sendStatsErr != nil {
		log.Warnf("Error sending extraction.processed: %s", sendStatsErr)
	}

	respdata, err := json.Marshal(extresps)
	if err != nil {
		httpError(w, r, http.StatusInternalServerError,
			"failed to marshal response: %v", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(respdata)
	log.WithFields(log.Fields{
		"rid":  getRequestID(r),
		"user": userid,
	}).Debug("extraction operation succeeded")
}

// cachedResult returns a previously parsed result for an input digest
func (ex *extractor) cachedResult(digest string) (*exif.Metadata, bool) {
	cached, ok := ex.results.Get(digest)
	if !ok {
		return nil, false
	}
	meta, ok := cached.(*exif.Metadata)
	return meta, ok
}

// makeFieldData converts decoded fields to their wire form, leaving
// out thumbnail fields unless the client requested them
func makeFieldData(meta *exif.Metadata, thumbnail bool) []fielddata {
	fields := make([]fielddata, 0, len(meta.Fields))
	for _, field := range meta.Fields {
		if field.Thumbnail && !thumbnail {
			continue
		}
		fields = append(fields, fielddata{
			Tag:       field.Tag.String(),
			Context:   field.Tag.Context.String(),
			Number:    field.Tag.Number,
			Type:      field.Value.Type.String(),
			Count:     field.Value.Count,
			Value:     field.Value.String(),
			Thumbnail: field.Thumbnail,
		})
	}
	return fields
}

// handleHeartbeat returns a simple message indicating that the API is
// alive and well, and checks the audit database when one is configured
func (ex *extractor) handleHeartbeat(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]bool)
	status := true
	if ex.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		err := ex.db.CheckConnectionContext(ctx)
		checks["check_db"] = err == nil
		if err != nil {
			status = false
			log.Errorf("heartbeat db check failed: %v", err)
		}
	}
	respdata, err := json.Marshal(map[string]interface{}{
		"status": status,
		"checks": checks,
	})
	if err != nil {
		httpError(w, r, http.StatusInternalServerError, "failed to marshal heartbeat: %v", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if !status {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	w.Write(respdata)
}

// handleVersion returns the build version of the service
func handleVersion(w http.ResponseWriter, r *http.Request) {
	respdata, err := json.Marshal(map[string]string{
		"source":  "https://github.com/imgmeta/exifd",
		"version": version,
	})
	if err != nil {
		httpError(w, r, http.StatusInternalServerError, "failed to marshal version: %v", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(respdata)
}
