package commands

import (
	"github.com/spf13/cobra"

	"insightagent/internal/domain"
	"insightagent/internal/services/session"
	"insightagent/internal/store"
)

// seal: encrypt a payload and print the envelope or the full request.
func sealCmd() *cobra.Command {
	var (
		inPath  string
		request bool
	)
	cmd := &cobra.Command{
		Use:   "seal",
		Short: "Encrypt a payload into an envelope",
		Long: "Encrypt a payload into an envelope. Without --in a fresh payload is collected.\n" +
			"With --request the HTTP request descriptor is printed instead of the envelope.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var (
				client  *session.Client
				payload domain.SignalPayload
				err     error
			)
			if inPath != "" {
				if err := store.Read(inPath, &payload); err != nil {
					return err
				}
				client, err = appCtx.Session(ctx)
			} else {
				client, payload, err = appCtx.Collect(ctx)
			}
			if err != nil {
				return err
			}

			env, err := appCtx.Seal(client, payload)
			if err != nil {
				return err
			}
			if !request {
				return emit(cmd, env)
			}
			if err := requireURL(); err != nil {
				return err
			}
			rd, err := appCtx.Describe(client, env)
			if err != nil {
				return err
			}
			return emit(cmd, rd)
		},
	}
	cmd.Flags().StringVar(&inPath, "in", "", "payload file (JSON or YAML) to seal instead of collecting")
	cmd.Flags().BoolVar(&request, "request", false, "print the request descriptor instead of the envelope")
	return cmd
}
