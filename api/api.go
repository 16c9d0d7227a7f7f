// Copyright (c) 2026 The CasperEye developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/caspereye/stakingtracker/api/admin/loglevel"
	"github.com/caspereye/stakingtracker/api/contracts"
	"github.com/caspereye/stakingtracker/api/node"
	"github.com/caspereye/stakingtracker/api/tracker"
	"github.com/caspereye/stakingtracker/health"
	"github.com/caspereye/stakingtracker/log"
	"github.com/caspereye/stakingtracker/runtime"
)

var logger = log.WithContext("pkg", "api")

type Options struct {
	AllowedOrigins  string
	EnableReqLogger bool
	EnableMetrics   bool
	// LogLevel enables the /admin/loglevel endpoint when not nil.
	LogLevel *slog.LevelVar
}

// New return api router
func New(
	executor *runtime.Executor,
	health *health.Health,
	opts Options,
) http.HandlerFunc {
	origins := strings.Split(strings.TrimSpace(opts.AllowedOrigins), ",")
	for i, o := range origins {
		origins[i] = strings.ToLower(strings.TrimSpace(o))
	}

	router := mux.NewRouter()

	tracker.New(executor).
		Mount(router, "/tracker")
	contracts.New(executor).
		Mount(router, "/contracts")
	node.New(health).
		Mount(router, "/node")
	if opts.LogLevel != nil {
		loglevel.New(opts.LogLevel).
			Mount(router, "/admin/loglevel")
	}

	if opts.EnableMetrics {
		router.Use(metricsMiddleware)
	}

	handler := handlers.CompressHandler(router)
	handler = handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedHeaders([]string{"content-type"}),
	)(handler)

	if opts.EnableReqLogger {
		handler = RequestLoggerHandler(handler, logger)
	}

	return handler.ServeHTTP
}
