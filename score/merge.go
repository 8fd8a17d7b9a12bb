package score

import (
	"github.com/hecksadecimal/piano-go/model"
	"golang.org/x/exp/slices"
)

// Merge flattens a score into its note events in chronological order.
// Non-note events are dropped, tracks left empty by the filter are
// discarded, and the remaining tracks are concatenated and stably sorted
// by onset. Track identity is gone after this point.
func Merge(sc model.Score) model.ScoreTrack {
	var merged model.ScoreTrack
	for _, track := range sc.Tracks {
		var notes model.ScoreTrack
		for _, ev := range track {
			if ev.Kind == model.Note {
				notes = append(notes, ev)
			}
		}
		if len(notes) == 0 {
			continue
		}
		merged = append(merged, notes...)
	}
	slices.SortStableFunc(merged, func(a, b model.ScoreEvent) bool {
		return a.Begin < b.Begin
	})
	return merged
}
