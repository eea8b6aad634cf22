// Package main is the entry point for the atlas servers and test client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-atlas/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-atlas",
	Short: "RPG Atlas map server",
	Long:  `RPG Atlas serves shared campaign maps: token movement, travel costs, locked zones and live views.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
