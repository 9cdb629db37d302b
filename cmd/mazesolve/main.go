// Command mazesolve generates rectangular mazes and races the search
// engines through them.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const programVersion = "0.1.0"

var (
	rootCmd = &cobra.Command{
		Use:           "mazesolve",
		Short:         "Generate mazes and race search engines through them",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	loglevel = rootCmd.PersistentFlags().String("loglevel", "info", "Console log level")

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show mazesolve version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("mazesolve " + programVersion)
		},
	}
)

func init() {
	// Logs go to stderr so solved grids and scenarios stay pipeable.
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        colorable.NewColorableStderr(),
		TimeFormat: "15:04:05.000",
	})

	rootCmd.AddCommand(versionCmd)
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(*loglevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", *loglevel, err)
		}
		zerolog.SetGlobalLevel(level)

		return nil
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Msg(err.Error())
		os.Exit(1)
	}
}
