package main

import (
	"github.com/DataDog/datadog-go/statsd"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/imgmeta/exifd/database"
)

// default sizing applied when the configuration leaves a value unset
const (
	defaultNonceCacheSize  = 65536
	defaultResultCacheSize = 4096
	defaultMaxInputSize    = 33554432
)

// maximum number of extraction requests accepted in a single API call
const maxRequestsPerCall = 64

// An auditor records extraction operations out of band. It is
// implemented by database.Handler and mocked in tests.
type auditor interface {
	InsertExtraction(database.ExtractionRecord) (string, error)
}

// An extractor holds the runtime state of the extraction service:
// authorizations, the hawk nonce cache, the parsed-result cache, the
// statsd client and the optional audit database.
type extractor struct {
	stats        statsd.ClientInterface
	backend      authBackend
	nonces       *lru.Cache
	results      *lru.Cache
	db           *database.Handler
	audit        auditor
	debug        bool
	maxInputSize int64
}

// newExtractor creates an extraction service with its caches
// initialized from the configuration
func newExtractor(conf configuration) (*extractor, error) {
	nonceSize := conf.Server.NonceCacheSize
	if nonceSize <= 0 {
		nonceSize = defaultNonceCacheSize
	}
	resultSize := conf.Server.ResultCacheSize
	if resultSize <= 0 {
		resultSize = defaultResultCacheSize
	}
	maxInput := conf.Server.MaxInputSize
	if maxInput <= 0 {
		maxInput = defaultMaxInputSize
	}
	nonces, err := lru.New(nonceSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create nonce cache")
	}
	results, err := lru.New(resultSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create result cache")
	}
	return &extractor{
		// a safe default, addStats replaces it when statsd is configured
		stats:        &statsd.NoOpClient{},
		backend:      newInMemoryAuthBackend(),
		nonces:       nonces,
		results:      results,
		maxInputSize: maxInput,
	}, nil
}

// addAuthorizations loads the configured hawk credentials into the
// auth backend
func (ex *extractor) addAuthorizations(auths []authorization) error {
	for i := range auths {
		err := ex.backend.addAuth(&auths[i])
		if err != nil {
			return err
		}
	}
	return nil
}

// addMonitoring enables the monitoring user when a key is configured
func (ex *extractor) addMonitoring(monitoring authorization) error {
	if monitoring.Key == "" {
		return nil
	}
	return ex.backend.addMonitoringAuth(&monitoring)
}

// addDB connects the audit database when one is configured. The
// service runs without auditing otherwise.
func (ex *extractor) addDB(conf database.Config) {
	if conf.Name == "" {
		log.Info("extraction auditing disabled, no database configured")
		return
	}
	db, err := database.Connect(conf)
	if err != nil {
		log.Fatalf("failed to connect to audit database: %v", err)
	}
	ex.db = db
	ex.audit = db
	log.Infof("connected to audit database %s on %s", conf.Name, conf.Host)
	if conf.MonitorPollInterval > 0 {
		go db.Monitor(conf.MonitorPollInterval, make(chan bool))
	}
}

func (ex *extractor) enableDebug() {
	ex.debug = true
	log.SetLevel(log.DebugLevel)
}
