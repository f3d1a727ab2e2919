package handler

import (
	"net/http"
	"sync"

	"hotelbooking/config"
	"hotelbooking/di"
	"hotelbooking/shared/logger"
	transport "hotelbooking/transport/http"
)

var (
	server *transport.HTTP
	once   sync.Once
)

// Handler serves the API from a serverless function. Connections are opened
// on the first invocation and reused by warm instances.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.Configure(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
