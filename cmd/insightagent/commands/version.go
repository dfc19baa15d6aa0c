package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"insightagent/internal/insights"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the SDK version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d)\n", insights.SDKVersionName, insights.SDKVersionCode)
			return nil
		},
	}
}
