package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	atlasv1alpha1 "github.com/KirkDiggler/rpg-atlas/internal/handlers/atlas/v1alpha1"
)

var resolveTravelCmd = &cobra.Command{
	Use:   "resolve-travel [pathway:sequence]...",
	Short: "Show the travel policy for a set of progression facts",
	Long: `Resolve which travel policy applies. Examples:

  resolve-travel
  resolve-travel ลูกศิษย์:4
  resolve-travel seer:7 ลูกศิษย์:9`,
	RunE: resolveTravel,
}

func parseFact(arg string) (entities.ProgressionFact, error) {
	i := strings.LastIndex(arg, ":")
	if i <= 0 {
		return entities.ProgressionFact{}, fmt.Errorf("expected pathway:sequence, got %q", arg)
	}
	seq, err := strconv.Atoi(arg[i+1:])
	if err != nil {
		return entities.ProgressionFact{}, fmt.Errorf("invalid sequence in %q: %w", arg, err)
	}
	return entities.ProgressionFact{PathwayName: arg[:i], Sequence: seq}, nil
}

func resolveTravel(cmd *cobra.Command, args []string) error {
	facts := make([]entities.ProgressionFact, 0, len(args))
	for _, arg := range args {
		fact, err := parseFact(arg)
		if err != nil {
			return err
		}
		facts = append(facts, fact)
	}

	client, cleanup, err := createMapClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := atlasv1alpha1.Encode(&atlasv1alpha1.ResolveTravelRuleRequest{Progression: facts})
	if err != nil {
		return err
	}

	resp, err := client.ResolveTravelRule(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to resolve travel rule: %w", err)
	}

	return printJSON(resp)
}
