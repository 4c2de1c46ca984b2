package cli

import "github.com/mobile-next/touchdrag/config"

const version = "dev"

var (
	verbose    bool
	configPath string

	// loaded by the root command before any subcommand runs
	cfg = config.Default()

	// for commands that talk to a running server
	serverAddr string
	authToken  string
	sessionID  string
)
