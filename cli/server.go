package cli

import (
	"fmt"

	"github.com/mobile-next/touchdrag/commands"
	"github.com/mobile-next/touchdrag/daemon"
	"github.com/mobile-next/touchdrag/server"
	"github.com/mobile-next/touchdrag/sessions"
	"github.com/mobile-next/touchdrag/utils"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server management commands",
	Long:  `Commands for managing the touchdrag server.`,
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the touchdrag server",
	Long:  `Starts the touchdrag JSON-RPC server that input layers feed touch events into.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listenAddr := cmd.Flag("listen").Value.String()
		if listenAddr == "" {
			listenAddr = cfg.Server.Listen
		}

		// GetBool/GetInt cannot fail for defined flags
		enableCORS, _ := cmd.Flags().GetBool("cors")
		enableAuth, _ := cmd.Flags().GetBool("auth")
		isDaemon, _ := cmd.Flags().GetBool("daemon")
		fps, _ := cmd.Flags().GetInt("fps")

		if !cmd.Flags().Changed("cors") {
			enableCORS = cfg.Server.CORS
		}
		if !cmd.Flags().Changed("auth") {
			enableAuth = cfg.Server.Auth
		}
		if fps == 0 {
			fps = cfg.Frame.FPS
		}

		token := ""
		if enableAuth {
			var err error
			token, err = storedToken()
			if err != nil {
				return fmt.Errorf("auth is enabled but no token is stored, run 'touchdrag auth set' first")
			}
		}

		normalized, err := utils.NormalizeListenAddr(listenAddr)
		if err != nil {
			return err
		}

		if !utils.IsAddrAvailable(normalized) {
			return fmt.Errorf("address %s is already in use", listenAddr)
		}

		if isDaemon && !daemon.IsChild() {
			_, err := daemon.Daemonize()
			if err != nil {
				return fmt.Errorf("failed to start daemon: %w", err)
			}

			fmt.Printf("Server daemon spawned, attempting to listen on %s\n", listenAddr)
			return nil
		}

		registry, err := sessions.NewRegistry(cfg.Sessions.Max, sessions.Options{
			Speed:       cfg.Frame.Speed,
			Sensitivity: cfg.Frame.Sensitivity,
			Bounds:      cfg.Frame.Bounds,
		})
		if err != nil {
			return err
		}
		commands.SetRegistry(registry)

		return server.StartServer(server.Options{
			Addr:       listenAddr,
			EnableCORS: enableCORS,
			AuthToken:  token,
			FPS:        fps,
		})
	},
}

var serverKillCmd = &cobra.Command{
	Use:   "kill",
	Short: "Stop a running touchdrag server",
	Long:  `Connects to the server and sends a shutdown command via JSON-RPC.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := daemon.KillServer(targetAddr(), resolveToken())
		if err != nil {
			return err
		}

		fmt.Printf("Server shutdown command sent successfully\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	// add server subcommands
	serverCmd.AddCommand(serverStartCmd)
	serverCmd.AddCommand(serverKillCmd)

	// server start flags
	serverStartCmd.Flags().String("listen", "", "Address to listen on (e.g., 'localhost:12000' or '0.0.0.0:13000')")
	serverStartCmd.Flags().Bool("cors", false, "Enable CORS support")
	serverStartCmd.Flags().Bool("auth", false, "Require the token stored with 'touchdrag auth' on every request")
	serverStartCmd.Flags().Int("fps", 0, "Default frame rate for drag subscriptions")
	serverStartCmd.Flags().BoolP("daemon", "d", false, "Run server in daemon mode (background)")

	// server kill flags
	addClientFlags(serverKillCmd)
}
