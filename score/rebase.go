package score

import (
	"math"

	"github.com/hecksadecimal/piano-go/model"
)

// MillisecondBase is the time base of a rebased opus: 1000 ticks per
// second, so one tick is one millisecond.
const MillisecondBase = 1000

// DefaultTicksPerBeat mirrors the parser's default metric resolution and
// stands in when an opus carries no usable time base.
const DefaultTicksPerBeat = 960

// 120 BPM until a tempo event says otherwise
const defaultTempo = 500000

// Rebase converts a tick-based opus into a millisecond-based one. Tempo
// events are folded into the running tick length and not forwarded; every
// other event keeps its place with its delta re-expressed in milliseconds.
// Each output track leads with a tempo reset matching the new base so the
// result is a well-formed opus on its own.
func Rebase(op model.Opus) model.Opus {
	tpb := op.TicksPerBeat
	if tpb <= 0 {
		tpb = DefaultTicksPerBeat
	}

	out := model.Opus{TicksPerBeat: MillisecondBase}
	for _, track := range op.Tracks {
		msPerTick := float64(defaultTempo) / float64(1000*tpb)
		var msSoFar, prevMsSoFar float64

		newTrack := model.RawTrack{
			{Kind: model.SetTempo, Tempo: 1000000},
		}
		for _, ev := range track {
			msSoFar += msPerTick * float64(ev.Delta)
			if ev.Kind == model.SetTempo {
				// consumed here; its elapsed time still counts
				msPerTick = float64(ev.Tempo) / float64(1000*tpb)
				continue
			}
			ev.Delta = int64(math.Round(msSoFar - prevMsSoFar))
			prevMsSoFar = msSoFar
			newTrack = append(newTrack, ev)
		}
		out.Tracks = append(out.Tracks, newTrack)
	}
	return out
}
