package cmd

import (
	"fmt"
	"strings"

	"github.com/hecksadecimal/piano-go/midi"
	"github.com/hecksadecimal/piano-go/track"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(tracksCmd)
}

var tracksCmd = &cobra.Command{
	Use:   "tracks FILE",
	Short: "Lists the tracks in a MIDI file",
	Long:  `Lists the tracks in a MIDI file with their instruments and note counts.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return listTracks(args[0])
	},
}

func listTracks(path string) error {
	op, err := midi.ReadFile(path)
	if err != nil {
		return err
	}

	song := track.NewSong(op)
	if title := song.Title(); title != "" {
		fmt.Printf("Title: %v\n", title)
	}
	for _, t := range song.Tracks {
		label := strings.Join(t.Instruments(), ", ")
		if label == "" {
			label = "-"
		}
		fmt.Printf("%3d  %-24s %-32s notes=%d\n", t.Number, t.Name, label, t.NoteCount)
	}
	return nil
}
