package main

import (
	"net/http"

	"github.com/jasonwu001t/taicfg/internal/status"
)

func setupRouter(collector *status.Collector) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/status", collector.StatusHandler())
	mux.HandleFunc("/health", collector.HealthHandler())

	return mux
}
