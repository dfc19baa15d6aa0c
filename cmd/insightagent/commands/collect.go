package commands

import (
	"github.com/spf13/cobra"
)

func collectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collect",
		Short: "Run one signal collection and print the payload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, payload, err := appCtx.Collect(cmd.Context())
			if err != nil {
				return err
			}
			return emit(cmd, payload)
		},
	}
}
