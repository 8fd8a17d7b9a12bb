package score

import "github.com/hecksadecimal/piano-go/model"

// Reduce folds a quantized note stream into chords. Zero-duration notes
// accumulate into the chord under construction; the first nonzero
// duration closes it, becoming the whole chord's length. A trailing
// never-closed chord is flushed with duration zero rather than lost.
func Reduce(notes []QuantizedNote) []model.Chord {
	var chords []model.Chord
	var current model.Notes
	for _, n := range notes {
		current = append(current, n.Pitch)
		if n.Duration != 0 {
			chords = append(chords, model.Chord{Notes: current, Duration: n.Duration})
			current = nil
		}
	}
	if len(current) > 0 {
		chords = append(chords, model.Chord{Notes: current})
	}
	return chords
}
