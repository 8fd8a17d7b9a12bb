// Package midi is the boundary to the external SMF parser: raw bytes in,
// a delta-timed opus out.
package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/hecksadecimal/piano-go/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

// DefaultTicksPerBeat is gomidi's default metric resolution, used when a
// file's time format is missing or SMPTE-based.
const DefaultTicksPerBeat = 960

// Parse decodes raw SMF bytes into an opus.
func Parse(data []byte) (op model.Opus, e error) {
	// the smf reader can panic on hostile input
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return op, fmt.Errorf("parsing midi data: %w", err)
	}
	return fromSMF(s), nil
}

// ReadFile reads and decodes a MIDI file from disk.
func ReadFile(path string) (model.Opus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Opus{}, fmt.Errorf("reading midi file: %w", err)
	}
	return Parse(data)
}

func fromSMF(s *smf.SMF) model.Opus {
	op := model.Opus{TicksPerBeat: DefaultTicksPerBeat}
	if metric, ok := s.TimeFormat.(smf.MetricTicks); ok {
		op.TicksPerBeat = int(metric.Resolution())
	}

	for _, events := range s.Tracks {
		var track model.RawTrack
		for _, event := range events {
			ev := model.RawEvent{Delta: int64(event.Delta)}
			var channel, key, velocity, program uint8
			var text string
			var bpm float64
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				ev.Kind = model.NoteOn
				ev.Channel, ev.Pitch, ev.Velocity = channel, key, velocity
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				ev.Kind = model.NoteOff
				ev.Channel, ev.Pitch, ev.Velocity = channel, key, velocity
			case event.Message.GetProgramChange(&channel, &program):
				ev.Kind = model.ProgramChange
				ev.Channel, ev.Program = channel, program
			case event.Message.GetMetaTrackName(&text):
				ev.Kind = model.TrackName
				ev.Text = text
			case event.Message.GetMetaTempo(&bpm):
				ev.Kind = model.SetTempo
				if bpm > 0 {
					ev.Tempo = uint32(60000000/bpm + 0.5)
				}
			default:
				// kept so the track's delta chain stays intact; the
				// pipeline drops these after the merge
				ev.Kind = model.Other
			}
			track = append(track, ev)
		}
		op.Tracks = append(op.Tracks, track)
	}
	return op
}
