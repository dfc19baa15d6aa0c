package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"insightagent/internal/backend"
	"insightagent/internal/logging"
)

func main() {
	addr := pflag.String("addr", ":8080", "listen address")
	level := pflag.String("log-level", "info", "log level (debug, info, warn, error)")
	creds := pflag.StringArray("credential", nil, "accepted apiKey:apiSecret pair (repeatable; default accepts any)")
	pflag.Parse()

	logging.ConfigureGlobalLogging(*level)
	log := logging.Component("mockbackend")

	opts := []backend.Option{backend.WithLogger(log)}
	if len(*creds) > 0 {
		m, err := parseCredentials(*creds)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		opts = append(opts, backend.WithCredentials(m))
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           backend.New(opts...).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	log.Info().Str("addr", *addr).Msg("mock intelligence service listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("serve")
	}
}

func parseCredentials(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		key, secret, ok := strings.Cut(p, ":")
		if !ok || key == "" || secret == "" {
			return nil, fmt.Errorf("credential %q: want apiKey:apiSecret", p)
		}
		out[key] = secret
	}
	return out, nil
}
