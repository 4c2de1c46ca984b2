package cli

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"
)

const keyringService = "touchdrag"
const keyringUser = "server"

const generatedTokenBytes = 32

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authentication commands",
	Long:  `Commands for managing the token the server requires when started with --auth.`,
}

var authSetCmd = &cobra.Command{
	Use:   "set [token]",
	Short: "Store the server auth token",
	Long:  `Stores the given token in the system keyring. Without an argument a random token is generated and printed.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token := ""
		if len(args) == 1 {
			token = args[0]
		} else {
			var err error
			token, err = generateToken()
			if err != nil {
				return err
			}
		}

		if token == "" {
			return fmt.Errorf("token cannot be empty")
		}

		if err := keyring.Set(keyringService, keyringUser, token); err != nil {
			return fmt.Errorf("failed to store token: %w", err)
		}

		fmt.Println(token)
		return nil
	},
}

var authTokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Display the stored auth token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := storedToken()
		if err != nil {
			return fmt.Errorf("no auth token found for touchdrag")
		}

		fmt.Println(token)
		return nil
	},
}

var authClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored auth token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := keyring.Delete(keyringService, keyringUser); err != nil {
			fmt.Println("no auth token stored")
			return nil
		}

		fmt.Println("Auth token removed.")
		return nil
	},
}

func storedToken() (string, error) {
	return keyring.Get(keyringService, keyringUser)
}

func generateToken() (string, error) {
	buf := make([]byte, generatedTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd, authTokenCmd, authClearCmd)
}
