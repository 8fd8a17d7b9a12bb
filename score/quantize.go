package score

import (
	"math"

	"github.com/hecksadecimal/piano-go/model"
	"github.com/hecksadecimal/piano-go/util"
)

// QuantizedNote is a note reduced to its rounded duration and pitch,
// the only two facts the chord reducer and renderer need.
type QuantizedNote struct {
	Duration int64
	Pitch    uint8
}

// terminal duration for a final note whose sustain is unknown
const finalDuration = 1000

// Quantize turns an onset-ordered note stream into duration/pitch pairs
// on the grid implied by tickLag (quantum = 100*tickLag milliseconds).
// Each note's duration is the gap to the next onset; the last note keeps
// its own sustain, or a fixed 1000 ms terminal when it has none.
//
// A zero duration means the note sounds together with its successor.
// Exact zeros pass through untouched, and a nonzero duration never
// rounds below one quantum, so chord membership does not shift when
// tickLag changes.
func Quantize(events model.ScoreTrack, tickLag float64) []QuantizedNote {
	quantum := 100 * tickLag
	var out []QuantizedNote
	for i, ev := range events {
		var d int64
		switch {
		case i < len(events)-1:
			d = events[i+1].Begin - ev.Begin
		case ev.Duration > 0:
			d = ev.Duration
		default:
			d = finalDuration
		}
		if d != 0 && quantum > 0 {
			d = int64(math.Round(float64(d)/quantum) * quantum)
			if d == 0 {
				d = int64(quantum)
			}
		}
		out = append(out, QuantizedNote{Duration: d, Pitch: ev.Pitch})
	}
	return out
}

// Dominant returns the most frequent nonzero duration, ties going to the
// value encountered first. Zero when no nonzero durations exist.
func Dominant(notes []QuantizedNote) int64 {
	durations := make([]int64, 0, len(notes))
	for _, n := range notes {
		durations = append(durations, n.Duration)
	}

	counts := make(map[int64]int)
	var seen []int64
	for _, d := range util.FilterZeros(durations) {
		if _, ok := counts[d]; !ok {
			seen = append(seen, d)
		}
		counts[d]++
	}

	var best int64
	bestCount := 0
	for _, d := range seen {
		if counts[d] > bestCount {
			best, bestCount = d, counts[d]
		}
	}
	return best
}

// BPM derives the implied beats-per-minute from the dominant duration,
// zero when there is no beat to speak of.
func BPM(dominant int64) int {
	if dominant <= 0 {
		return 0
	}
	return int(60000 / dominant)
}
