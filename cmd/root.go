package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "piano-go",
	Short: "Converts MIDI files to simple text notation",
	Long:  `piano-go converts MIDI files into compact piano-style text notation.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
