package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	atlasv1alpha1 "github.com/KirkDiggler/rpg-atlas/internal/handlers/atlas/v1alpha1"
)

var watchMapCmd = &cobra.Command{
	Use:   "watch-map [map-id]",
	Short: "Stream a live view of a map until interrupted",
	Long: `Open a live map view and print every event. Needs --token. Example:

  watch-map map-harbor --token $ATLAS_TOKEN`,
	Args: cobra.ExactArgs(1),
	RunE: watchMap,
}

func watchMap(cmd *cobra.Command, args []string) error {
	if token == "" {
		return errors.New("watch-map requires --token")
	}

	client, cleanup, err := createMapClient()
	if err != nil {
		return err
	}
	defer cleanup()

	// The stream runs until interrupted; --timeout does not apply.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	req, err := atlasv1alpha1.Encode(&atlasv1alpha1.WatchMapRequest{MapID: args[0]})
	if err != nil {
		return err
	}

	stream, err := client.WatchMap(withToken(ctx), req)
	if err != nil {
		return fmt.Errorf("failed to watch map: %w", err)
	}

	fmt.Printf("Watching map %s (Ctrl-C to stop)...\n", args[0])
	for {
		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return fmt.Errorf("stream ended: %w", err)
		}
		if err := printJSON(msg); err != nil {
			return err
		}
	}
}
