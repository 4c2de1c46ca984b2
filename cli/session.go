package cli

import (
	"github.com/mobile-next/touchdrag/commands"
	"github.com/spf13/cobra"
)

var (
	sessionName        string
	sessionSpeed       float32
	sessionSensitivity float32
	sessionBounds      float32
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Tracker session commands",
	Long:  `Create, list and close tracker sessions on a running server.`,
}

var sessionCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a tracker session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// zero values are filled in from the server's [frame] config
		return remoteCall("session.create", commands.SessionCreateRequest{
			Name:        sessionName,
			Speed:       sessionSpeed,
			Sensitivity: sessionSensitivity,
			Bounds:      sessionBounds,
		})
	},
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracker sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return remoteCall("session.list", nil)
	},
}

var sessionCloseCmd = &cobra.Command{
	Use:   "close",
	Short: "Close a tracker session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return remoteCall("session.close", map[string]string{"sessionId": sessionID})
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionCreateCmd, sessionListCmd, sessionCloseCmd)

	addClientFlags(sessionCreateCmd)
	sessionCreateCmd.Flags().StringVar(&sessionName, "name", "", "Human readable session name")
	sessionCreateCmd.Flags().Float32Var(&sessionSpeed, "speed", 0, "Animation clock speed (default from server config)")
	sessionCreateCmd.Flags().Float32Var(&sessionSensitivity, "sensitivity", 0, "Drag to view offset factor (default from server config)")
	sessionCreateCmd.Flags().Float32Var(&sessionBounds, "bounds", 0, "Clamp view offset to [-bounds, bounds] (default from server config)")

	addClientFlags(sessionListCmd)
	addSessionFlags(sessionCloseCmd)
}
