package cli

import (
	"github.com/mobile-next/touchdrag/commands"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Replay a recorded touch stream",
	Long:  `Replays a .json, .yaml or .plist recording into a fresh tracker and prints the drag consumed for every frame.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		response := commands.ReplayCommand(commands.ReplayRequest{Path: args[0]})
		return printResponse(response)
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}
