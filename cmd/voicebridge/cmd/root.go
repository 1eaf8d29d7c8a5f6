package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"voicebridge/cmd/voicebridge/cmd/serve"
	"voicebridge/cmd/voicebridge/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "voicebridge",
	Short: "HTTP service for voice translation: transcribe, translate, synthesize",
	Long: `voicebridge is the backend for a browser voice-translation demo.
It accepts recorded or uploaded audio, transcribes it, translates the
transcript to a target language, and synthesizes speech for playback.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
