// Package notation renders parsed MIDI songs as compact text notation: a
// BPM header followed by comma-terminated note and chord tokens.
package notation

import (
	"github.com/hecksadecimal/piano-go/model"
	"github.com/hecksadecimal/piano-go/score"
)

// Convert runs the whole pipeline over a parsed opus and returns the
// rendered notation text. The input opus is never modified, and
// converting the same opus twice with the same options yields identical
// text, so callers are free to re-convert with different options.
func Convert(op model.Opus, opts Options) string {
	rebased := score.Rebase(op)
	sc := score.ToScore(rebased)
	merged := score.Merge(sc)
	notes := score.Quantize(merged, opts.TickLag)
	dominant := score.Dominant(notes)
	chords := score.Reduce(notes)

	st := NewRenderState()
	tokens := make([]string, 0, len(chords))
	for _, c := range chords {
		tokens = append(tokens, st.Chord(c, dominant, opts))
	}
	return FormatLines(tokens, score.BPM(dominant), opts)
}
