// archived is the command line driver of the archived package, it runs the
// exercise scenario and a stress tester against archives.
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var verbose bool

var rootCmd = &cobra.Command{
	Use:          "archived",
	Short:        "Exercise and stress archived versions",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(demoCmd, stressCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Fatal("archived failed")
	}
}
