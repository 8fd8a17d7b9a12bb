package cmd

import (
	"fmt"

	"github.com/hecksadecimal/piano-go/midi"
	"github.com/hecksadecimal/piano-go/notation"
	"github.com/hecksadecimal/piano-go/track"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var convertOpts = notation.DefaultOptions()
var convertNoPercussion bool

func init() {
	convertCmd.Flags().Float64Var(&convertOpts.TickLag, "tick-lag", convertOpts.TickLag, "quantization coarseness")
	convertCmd.Flags().IntVar(&convertOpts.OctaveTranspose, "transpose", convertOpts.OctaveTranspose, "whole octaves to transpose by")
	convertCmd.Flags().IntVar(&convertOpts.MaxLineLength, "line-length", convertOpts.MaxLineLength, "max characters per line")
	convertCmd.Flags().IntVar(&convertOpts.MaxLineCount, "lines", convertOpts.MaxLineCount, "max output lines")
	convertCmd.Flags().IntVar(&convertOpts.Precision, "precision", convertOpts.Precision, "duration modifier decimals")
	convertCmd.Flags().BoolVar(&convertNoPercussion, "no-percussion", false, "drop percussion tracks")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert FILE",
	Short: "Converts a MIDI file to text notation",
	Long:  `Converts a MIDI file to text notation and prints it.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convert(args[0])
	},
}

func convert(path string) error {
	op, err := midi.ReadFile(path)
	if err != nil {
		return err
	}

	song := track.NewSong(op)
	if convertNoPercussion {
		for _, t := range song.Tracks {
			if t.Percussion {
				song.SetEnabled(t.Number, false)
			}
		}
	}

	selected, err := song.Selection()
	if err != nil {
		return err
	}
	if title := song.Title(); title != "" {
		logrus.WithField("title", title).Info("converting")
	}

	fmt.Println(notation.Convert(selected, convertOpts))
	return nil
}
