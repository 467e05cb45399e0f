package main

import (
	"net/http/pprof"
	"os"
	"runtime"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// setRuntimeConfig sets runtime config options from env vars
func setRuntimeConfig() (err error) {
	val, ok := os.LookupEnv("BLOCK_PROFILE_RATE")
	if ok {
		var blockProfileRate int
		blockProfileRate, err = strconv.Atoi(val)
		if err != nil {
			return errors.Wrap(err, "failed to parse BLOCK_PROFILE_RATE as int")
		}
		runtime.SetBlockProfileRate(blockProfileRate)
		log.Infof("SetBlockProfileRate to %d", blockProfileRate)
	} else {
		log.Infof("Did not SetBlockProfileRate. BLOCK_PROFILE_RATE is not set.")
	}
	val, ok = os.LookupEnv("MUTEX_PROFILE_FRACTION")
	if ok {
		var mutexProfileFraction int
		mutexProfileFraction, err = strconv.Atoi(val)
		if err != nil {
			return errors.Wrap(err, "failed to parse MUTEX_PROFILE_FRACTION as int")
		}
		runtime.SetMutexProfileFraction(mutexProfileFraction)
		log.Infof("SetMutexProfileFraction to %d", mutexProfileFraction)
	} else {
		log.Infof("Did not SetMutexProfileFraction. MUTEX_PROFILE_FRACTION is not set.")
	}
	return nil
}

// addProfilerHandlers adds debug pprof handlers
func addProfilerHandlers(router *mux.Router) {
	router.HandleFunc("/debug/pprof/", pprof.Index)
	router.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("/debug/pprof/profile", pprof.Profile)
	router.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("/debug/pprof/trace", pprof.Trace)
}
