package score

import "github.com/hecksadecimal/piano-go/model"

// ToScore converts a delta-timed opus into an absolute-time score,
// resolving note-on/note-off pairs into single note events carrying an
// onset and a sustain duration.
//
// Pairing is strictly FIFO per (channel, pitch): when identical notes
// overlap, the oldest open note-on is the one a note-off closes. A
// note-on with velocity zero counts as a note-off. Note-offs with no
// open note are ignored, and note-ons still open when the track ends are
// closed at the track's final position, so every sounded note produces
// exactly one note event.
//
// An opus with fewer than two tracks yields an empty score. Ported
// behavior; single-track files come out silent.
// TODO: confirm with hecksadecimal whether single-track input should be
// converted instead of dropped.
func ToScore(op model.Opus) model.Score {
	sc := model.Score{TicksPerBeat: op.TicksPerBeat}
	if len(op.Tracks) < 2 {
		return sc
	}

	for _, track := range op.Tracks {
		var soFar int64
		out := model.ScoreTrack{}
		pending := make(map[int][]model.ScoreEvent)
		var pendingOrder []int

		for _, ev := range track {
			soFar += ev.Delta
			switch {
			case ev.Kind == model.NoteOff || (ev.Kind == model.NoteOn && ev.Velocity == 0):
				key := noteKey(ev.Channel, ev.Pitch)
				queue := pending[key]
				if len(queue) == 0 {
					break
				}
				note := queue[0]
				pending[key] = queue[1:]
				note.Duration = soFar - note.Begin
				out = append(out, note)
			case ev.Kind == model.NoteOn:
				key := noteKey(ev.Channel, ev.Pitch)
				if _, ok := pending[key]; !ok {
					pendingOrder = append(pendingOrder, key)
				}
				pending[key] = append(pending[key], model.ScoreEvent{
					Kind:     model.Note,
					Begin:    soFar,
					Channel:  ev.Channel,
					Pitch:    ev.Pitch,
					Velocity: ev.Velocity,
				})
			default:
				out = append(out, model.ScoreEvent{
					Kind:    ev.Kind,
					Begin:   soFar,
					Channel: ev.Channel,
					Program: ev.Program,
					Tempo:   ev.Tempo,
					Text:    ev.Text,
				})
			}
		}

		// unterminated notes sound until the end of the track
		for _, key := range pendingOrder {
			for _, note := range pending[key] {
				note.Duration = soFar - note.Begin
				out = append(out, note)
			}
		}
		sc.Tracks = append(sc.Tracks, out)
	}
	return sc
}

func noteKey(channel, pitch uint8) int {
	return int(channel)<<7 | int(pitch)
}
