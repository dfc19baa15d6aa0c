package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"insightagent/internal/app"
	"insightagent/internal/config"
	"insightagent/internal/logging"
	"insightagent/internal/store"
)

var (
	configPath string
	format     string
	outPath    string
	params     map[string]string

	appCtx   *app.Wire
	settings config.Config
)

// Execute builds the root command and runs it.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRoot().ExecuteContext(ctx)
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "insightagent",
		Short:        "Collect, encrypt and forward fraud signals",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := store.ParseFormat(format); err != nil {
				return err
			}

			m := config.NewManager()
			if err := m.Load(cmd.Root().PersistentFlags(), configPath); err != nil {
				return err
			}
			settings = m.Get()
			logging.ConfigureGlobalLogging(settings.Log.Level)

			extra := make(map[string]any, len(params))
			for k, v := range params {
				extra[k] = v
			}
			w, err := app.NewWire(app.Config{Settings: settings, Params: extra, LogOut: cmd.ErrOrStderr()})
			if err != nil {
				return err
			}
			appCtx = w
			w.Log.Debug().Interface("settings", settings.Redacted()).Msg("settings loaded")
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "YAML config file")
	pf.String("env", "", "environment (PROD or STAGE)")
	pf.String("session-id", "", "session identifier")
	pf.String("api-key", "", "API key")
	pf.String("api-secret", "", "API secret")
	pf.String("intelligence-url", "", "intelligence service base URL (e.g. http://127.0.0.1:8080)")
	pf.String("client-ip", "", "end-user IP sent as client-ip-forwarded")
	pf.Duration("timeout", 10*time.Second, "HTTP timeout for send")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.StringVarP(&format, "format", "f", "json", "output format (json or yaml)")
	pf.StringVarP(&outPath, "out", "o", "", "write output to this file instead of stdout")
	pf.StringToStringVar(&params, "param", nil, "extra additionalParams entry key=value (repeatable)")

	root.AddCommand(collectCmd(), sealCmd(), deriveKeyCmd(), sendCmd(), versionCmd())
	return root
}

// emit prints v in the selected format, or writes it to --out.
func emit(cmd *cobra.Command, v any) error {
	f, err := store.ParseFormat(format)
	if err != nil {
		return err
	}
	if outPath != "" {
		if !cmd.Flags().Changed("format") {
			f = store.FormatFor(outPath)
		}
		if err := store.Write(outPath, v, f, 0o600); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", outPath)
		return nil
	}
	return store.Encode(cmd.OutOrStdout(), v, f)
}

func requireURL() error {
	if strings.TrimSpace(settings.Insights.URL) == "" {
		return fmt.Errorf("no intelligence service configured. use --intelligence-url")
	}
	return nil
}
