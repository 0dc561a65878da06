package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/binstreamio/binstream/internal/config"
)

var (
	// Global flags
	configFile string

	// cfg is loaded before any subcommand runs.
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "binspect",
	Short: "binspect - binary stream inspection tool",
	Long: `binspect reads binary files through the binstream codec: it decodes
fixed-width primitives at arbitrary offsets in either byte order, extracts
token-delimited strings, and renders hexdumps. Offsets accept decimal or
0x-prefixed hex.`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	loaded, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded
}
