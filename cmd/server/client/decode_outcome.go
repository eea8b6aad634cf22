package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	atlasv1alpha1 "github.com/KirkDiggler/rpg-atlas/internal/handlers/atlas/v1alpha1"
)

var decodeOutcomeCmd = &cobra.Command{
	Use:   "decode-outcome [code]",
	Short: "Look up a skill check reference code",
	Long: `Resolve a reference code against the journal, falling back to the code itself. Example:

  decode-outcome SKL-BEEF-07032025-T12-R15-S`,
	Args: cobra.ExactArgs(1),
	RunE: decodeOutcome,
}

func decodeOutcome(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createMapClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := atlasv1alpha1.Encode(&atlasv1alpha1.DecodeOutcomeRequest{Code: args[0]})
	if err != nil {
		return err
	}

	resp, err := client.DecodeOutcome(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to decode outcome: %w", err)
	}

	return printJSON(resp)
}
