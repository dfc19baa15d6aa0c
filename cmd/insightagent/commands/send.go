package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"insightagent/internal/domain"
)

// send: collect, seal and forward one payload, then print the insights.
func sendCmd() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Collect, encrypt and forward signals to the intelligence service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireURL(); err != nil {
				return err
			}
			res, err := appCtx.Send(cmd.Context())
			if err != nil {
				return err
			}
			if !quiet {
				summarise(cmd.ErrOrStderr(), res)
			}
			return emit(cmd, res)
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the risk summary on stderr")
	return cmd
}

var riskColors = map[domain.RiskScore]*color.Color{
	domain.RiskLow:    color.New(color.FgGreen, color.Bold),
	domain.RiskMedium: color.New(color.FgYellow, color.Bold),
	domain.RiskHigh:   color.New(color.FgRed, color.Bold),
}

func summarise(w io.Writer, res domain.Insights) {
	c, ok := riskColors[res.RiskScore]
	if !ok {
		c = color.New(color.Reset)
	}
	device := "returning device"
	if res.NewDevice {
		device = "new device"
	}
	fmt.Fprintf(w, "risk %s  %s  first seen %d day(s) ago  request %s\n",
		c.Sprint(res.RiskScore), device, res.FirstSeenDays, res.RequestID)
}
