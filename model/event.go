package model

// EventKind tags the variant of a RawEvent or ScoreEvent.
type EventKind uint8

const (
	NoteOn EventKind = iota
	NoteOff
	// Note is a resolved note-on/note-off pair. It only appears in
	// scores, never in a raw opus.
	Note
	ProgramChange
	TrackName
	SetTempo
	Other
)

// RawEvent is a single delta-timed event as handed over by the MIDI
// parser. Delta is the time since the previous event in the same track,
// in ticks (milliseconds once the opus has been rebased). Only the
// fields relevant to the event's kind are meaningful.
type RawEvent struct {
	Kind     EventKind
	Delta    int64
	Channel  uint8
	Pitch    uint8
	Velocity uint8
	Program  uint8
	Tempo    uint32 // microseconds per beat, SetTempo only
	Text     string // TrackName only
}

type RawTrack = []RawEvent

// Opus is a delta-time encoded track collection. TicksPerBeat is the
// number of ticks per quarter note, or 1000 ticks per second after a
// rebase.
type Opus struct {
	TicksPerBeat int
	Tracks       []RawTrack
}

// Clone deep-copies the opus so pipeline stages and stored songs never
// alias each other's event records.
func (o Opus) Clone() Opus {
	out := Opus{TicksPerBeat: o.TicksPerBeat}
	for _, track := range o.Tracks {
		dup := make(RawTrack, len(track))
		copy(dup, track)
		out.Tracks = append(out.Tracks, dup)
	}
	return out
}

// ScoreEvent is an absolute-time event. Note events carry a resolved
// sustain Duration; NoteOn and NoteOff never survive into a score.
type ScoreEvent struct {
	Kind     EventKind
	Begin    int64 // absolute onset in track time units
	Duration int64 // sustain, Note only
	Channel  uint8
	Pitch    uint8
	Velocity uint8
	Program  uint8
	Tempo    uint32
	Text     string
}

type ScoreTrack = []ScoreEvent

// Score is the absolute-time counterpart of Opus.
type Score struct {
	TicksPerBeat int
	Tracks       []ScoreTrack
}
