package cli

import (
	"encoding/json"
	"fmt"

	"github.com/mobile-next/touchdrag/commands"
	"github.com/mobile-next/touchdrag/config"
	"github.com/mobile-next/touchdrag/utils"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "touchdrag",
	Short: "Multi-touch drag tracking for per-frame camera control",
	Long:  `Tracks multi-finger touch streams and reports the averaged drag once per rendered frame.`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func initConfig() {
	utils.SetVerbose(verbose)
}

// loadConfig reads the ini file named by --config, or the default one
func loadConfig(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			utils.Verbose("No home directory, using built-in defaults: %v", err)
			cfg = config.Default()
			return nil
		}
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}

	utils.Verbose("Using config %s", path)
	cfg = loaded
	return nil
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.ini (default $HOME/.touchdrag/config.ini)")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// printJson is a helper function to print JSON responses
func printJson(data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		utils.Error("failed to encode output: %v", err)
		return
	}
	fmt.Println(string(jsonData))
}

// printResponse prints a command response and turns its error status into an error
func printResponse(response *commands.CommandResponse) error {
	printJson(response)
	if response.Status == "error" {
		return fmt.Errorf("%s", response.Error)
	}
	return nil
}
