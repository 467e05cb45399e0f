package main

import (
	"encoding/json"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/imgmeta/exifd/exif"
)

const monitorAuthID = "monitor"

// monitoringCanaryTIFF is a minimal big-endian TIFF with a single
// ImageWidth field, decoded by the monitoring handler to prove the
// extraction path works end to end
var monitoringCanaryTIFF = []byte{
	'M', 'M', 0x00, 0x2a,
	0x00, 0x00, 0x00, 0x08,
	0x00, 0x01,
	0x01, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 0x01, 0x00, 0x14, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
}

// monitoringCanaryJPEG wraps monitoringCanaryTIFF in a JPEG APP1 segment
var monitoringCanaryJPEG = append(append([]byte{
	0xff, 0xd8,
	0xff, 0xe1, 0x00, 0x22,
	'E', 'x', 'i', 'f', 0x00, 0x00,
}, monitoringCanaryTIFF...), 0xff, 0xd9)

type monitorresponse struct {
	Canary     string `json:"canary"`
	Format     string `json:"format"`
	FieldCount int    `json:"field_count"`
}

// handleMonitor runs the monitoring canaries through the extraction code
// and returns their results. It requires the reserved monitor user.
func (ex *extractor) handleMonitor(w http.ResponseWriter, r *http.Request) {
	rid := getRequestID(r)
	starttime := time.Now()
	userid, err := ex.authorize(r, []byte(""))
	if err != nil {
		httpError(w, r, http.StatusUnauthorized, "authorization verification failed: %v", err)
		return
	}
	if userid != monitorAuthID {
		httpError(w, r, http.StatusUnauthorized, "user is not permitted to call this endpoint")
		return
	}

	canaries := []struct {
		name  string
		input []byte
	}{
		{"tiff", monitoringCanaryTIFF},
		{"jpeg", monitoringCanaryJPEG},
	}
	monresps := make([]monitorresponse, len(canaries))
	for i, canary := range canaries {
		meta, err := exif.Decode(canary.input)
		if err != nil {
			httpError(w, r, http.StatusInternalServerError,
				"monitoring canary %q failed to decode: %v", canary.name, err)
			return
		}
		if len(meta.Fields) == 0 {
			httpError(w, r, http.StatusInternalServerError,
				"monitoring canary %q decoded to zero fields", canary.name)
			return
		}
		monresps[i] = monitorresponse{
			Canary:     canary.name,
			Format:     meta.Format,
			FieldCount: len(meta.Fields),
		}
	}

	respdata, err := json.Marshal(monresps)
	if err != nil {
		httpError(w, r, http.StatusInternalServerError, "encoding failed with error: %v", err)
		return
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	w.Write(respdata)

	log.WithFields(log.Fields{
		"rid":     rid,
		"user_id": userid,
		"t":       int32(time.Since(starttime) / time.Millisecond),
	}).Info("monitoring operation succeeded")
}
