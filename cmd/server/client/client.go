// Package client provides test commands for the atlas gRPC service
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/structpb"

	atlasv1alpha1 "github.com/KirkDiggler/rpg-atlas/internal/handlers/atlas/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	token      string
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the atlas API",
	Long:  `Client commands allow you to test the atlas API by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&token, "token", "", "Bearer token for calls that need a session")

	ClientCmd.AddCommand(resolveTravelCmd)
	ClientCmd.AddCommand(decodeOutcomeCmd)
	ClientCmd.AddCommand(watchMapCmd)
}

// createMapClient creates a map service client
func createMapClient() (atlasv1alpha1.MapServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return atlasv1alpha1.NewMapServiceClient(conn), cleanup, nil
}

// withToken attaches the bearer token when one was given.
func withToken(ctx context.Context) context.Context {
	if token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, atlasv1alpha1.AuthorizationHeader, token)
}

func printJSON(msg *structpb.Struct) error {
	out, err := json.MarshalIndent(msg.AsMap(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
