package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"pokerdrills-server/internal/config"
	"pokerdrills-server/internal/mux"
	"pokerdrills-server/internal/rng"
	"pokerdrills-server/pkg/drill"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address, overrides the configuration")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	listen := cfg.Addr
	if *addr != "" {
		listen = *addr
	}

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	srv := &http.Server{
		Addr:         listen,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, newGenerator(cfg)))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func newGenerator(cfg config.Config) *drill.Generator {
	opts := drill.DefaultOptions()
	opts.HighRankingOdds = cfg.Drill.HighRankingOdds
	if cfg.Drill.MaxRetries > 0 {
		opts.MaxRetries = cfg.Drill.MaxRetries
	}
	if len(cfg.Drill.Pockets) > 0 {
		opts.Pockets = drill.NewFilter(cfg.Drill.Pockets)
	}

	var gen rng.Generator = rng.Crypto{}
	if cfg.Drill.Seed != 0 {
		logrus.WithField("seed", cfg.Drill.Seed).Warn("using a seeded generator, problems are predictable")
		gen = rng.NewSeeded(cfg.Drill.Seed)
	}

	return drill.NewGenerator(gen, opts)
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
