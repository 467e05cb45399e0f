package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/imgmeta/exifd/database"
)

// configuration loads a yaml file that contains the configuration of exifd
type configuration struct {
	Server struct {
		Listen          string
		NonceCacheSize  int
		ResultCacheSize int
		MaxInputSize    int64
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
	}
	Statsd struct {
		Addr      string
		Namespace string
		Buflen    int
	}
	Database       database.Config
	Authorizations []authorization
	Monitoring     authorization
}

func main() {
	var (
		ex          *extractor
		conf        configuration
		cfgFile     string
		showVersion bool
		debug       bool
		err         error
	)
	flag.StringVar(&cfgFile, "c", "exifd.yaml", "Path to configuration file")
	flag.BoolVar(&showVersion, "V", false, "Show build version and exit")
	flag.BoolVar(&debug, "D", false, "Print debug logs")
	flag.Parse()

	if showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	err = conf.loadFromFile(cfgFile)
	if err != nil {
		log.Fatal(err)
	}

	// initialize the extraction service from the configuration
	ex, err = newExtractor(conf)
	if err != nil {
		log.Fatal(err)
	}
	err = ex.addAuthorizations(conf.Authorizations)
	if err != nil {
		log.Fatal(err)
	}
	err = ex.addMonitoring(conf.Monitoring)
	if err != nil {
		log.Fatal(err)
	}
	err = ex.addStats(conf)
	if err != nil {
		log.Fatal(err)
	}
	ex.addDB(conf.Database)

	if debug {
		ex.enableDebug()
	}

	err = setRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	// start serving
	router := mux.NewRouter()
	router.HandleFunc("/__heartbeat__", ex.handleHeartbeat).Methods("GET")
	router.HandleFunc("/__lbheartbeat__", ex.handleHeartbeat).Methods("GET")
	router.HandleFunc("/__version__", handleVersion).Methods("GET")
	router.HandleFunc("/__monitor__",
		statsMiddleware(ex.handleMonitor, "http.monitor", ex.stats)).Methods("GET")
	router.HandleFunc("/extract",
		apiStatsMiddleware(ex.handleExtract, "http.api.extract", ex.stats)).Methods("POST")
	if os.Getenv("EXIFD_PROFILER") != "" {
		addProfilerHandlers(router)
	}

	server := &http.Server{
		Addr:         conf.Server.Listen,
		ReadTimeout:  conf.Server.ReadTimeout,
		WriteTimeout: conf.Server.WriteTimeout,
		Handler: handleMiddlewares(
			router,
			setRequestID(),
			setRequestStartTime(),
			setResponseHeaders(),
			logRequest(),
		),
	}
	log.Infof("starting exifd on %s", conf.Server.Listen)
	err = server.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}

func (c *configuration) loadFromFile(path string) error {
	fd, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	err = yaml.Unmarshal(fd, &c)
	if err != nil {
		return err
	}
	return nil
}
