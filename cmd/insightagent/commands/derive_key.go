package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"insightagent/internal/crypto"
	"insightagent/internal/services/session"
)

func deriveKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "derive-key",
		Short: "Print the hex AES key derived from the configured credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := session.ValidateConfiguration(settings.Configuration())
			if err != nil {
				return err
			}
			key := crypto.DeriveKey(cfg.APIKey, cfg.APISecret)
			defer crypto.WipeKey(&key)
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(key[:]))
			return nil
		},
	}
}
