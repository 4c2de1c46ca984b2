package cli

import (
	"github.com/mobile-next/touchdrag/client"
	"github.com/mobile-next/touchdrag/commands"
	"github.com/spf13/cobra"
)

func addClientFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&serverAddr, "server", "", "Address of the touchdrag server (default from config)")
	cmd.Flags().StringVar(&authToken, "token", "", "Auth token (default from keyring)")
}

func addSessionFlags(cmd *cobra.Command) {
	addClientFlags(cmd)
	cmd.Flags().StringVarP(&sessionID, "session", "s", "", "Session ID")
	_ = cmd.MarkFlagRequired("session")
}

func targetAddr() string {
	if serverAddr != "" {
		return serverAddr
	}
	return cfg.Server.Listen
}

// resolveToken prefers --token and falls back to the keyring
func resolveToken() string {
	if authToken != "" {
		return authToken
	}
	token, err := storedToken()
	if err != nil {
		return ""
	}
	return token
}

// remoteCall runs one JSON-RPC call and prints the result as a command response
func remoteCall(method string, params interface{}) error {
	c, err := client.New(targetAddr(), resolveToken())
	if err != nil {
		return printResponse(commands.NewErrorResponse(err))
	}

	var result interface{}
	if err := c.Call(method, params, &result); err != nil {
		return printResponse(commands.NewErrorResponse(err))
	}

	return printResponse(commands.NewSuccessResponse(result))
}
