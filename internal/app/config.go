package app

import (
	"io"
	"net/http"

	"insightagent/internal/config"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Settings config.Config  // merged file/env/flag settings
	Params   map[string]any // extra additionalParams merged into every payload
	HTTP     *http.Client   // optional; defaults to a client with Settings.Insights.Timeout
	LogOut   io.Writer      // optional; defaults to the global log writer
}
