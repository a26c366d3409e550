// Signboard turns a terminal into a full-screen message sign.
//
// Type a message, pick text and background colors, and present it as large
// as the terminal allows, either static or scrolling. Triple-click (or press
// space three times) to return to the editor.
//
// Usage:
//
//	signboard [flags]
//	signboard [command]
//
// Running without a command launches the interactive app.
// See 'signboard --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/signboard/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "signboard",
	Short: "Full-screen terminal message sign",
	Long: `Signboard shows a short message as large as your terminal allows.

The interactive app opens an editor: type a message, optionally choose
colors, single-line layout or scrolling with ctrl+s, then press enter.
While the sign is shown, three quick clicks or presses of space (or esc)
return to the editor with your message intact.

Defaults come from the settings file (see 'signboard config path'),
SIGNBOARD_* environment variables, and flags, in increasing priority.`,
	Example: `  # Open the editor
  signboard

  # Present a scrolling message straight away
  signboard --text "Back in 5 minutes" --marquee --present

  # Present whatever is on the clipboard, pink on blue
  signboard --from-clipboard --text-color pink --background-color blue --present`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runApp,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		d := version.Details()
		fmt.Fprintf(cmd.OutOrStdout(), "signboard %s\n", version.Full())
		fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", d["Go"], d["Platform"])
		if built, ok := d["Built"]; ok {
			fmt.Fprintf(cmd.OutOrStdout(), "  built from a commit of %s\n", built)
		}
	},
}
