// Package track keeps the per-track bookkeeping around a parsed song:
// names, instruments, percussion detection and the enabled/disabled state
// that decides which tracks reach the conversion pipeline.
package track

import (
	"fmt"

	"github.com/hecksadecimal/piano-go/gm"
	"github.com/hecksadecimal/piano-go/model"
	"github.com/hecksadecimal/piano-go/util"
)

// Info is the inventory for one opus track.
type Info struct {
	Number     int
	Name       string
	Channels   []uint8
	Programs   []uint8
	NoteCount  int
	Percussion bool
	Enabled    bool
}

// Instruments returns human-facing labels for the track's programs.
func (i Info) Instruments() []string {
	if i.Percussion {
		return []string{"Percussion"}
	}
	var names []string
	for _, p := range i.Programs {
		names = append(names, gm.InstrumentName(p))
	}
	return names
}

// Song couples a parsed opus with per-track selection state. The opus is
// stored as a private copy so conversions can never feed back into it.
type Song struct {
	opus   model.Opus
	Tracks []Info
}

// NewSong inventories the opus tracks. Every track starts enabled,
// percussion included; disabling is the caller's call.
func NewSong(op model.Opus) *Song {
	s := &Song{opus: op.Clone()}
	for i, events := range op.Tracks {
		info := Info{Number: i, Enabled: true}
		channels := make(map[uint8]bool)
		programs := make(map[uint8]bool)
		for _, ev := range events {
			switch ev.Kind {
			case model.NoteOn:
				if ev.Velocity > 0 {
					info.NoteCount++
				}
				channels[ev.Channel] = true
			case model.NoteOff:
				channels[ev.Channel] = true
			case model.ProgramChange:
				programs[ev.Program] = true
				channels[ev.Channel] = true
			case model.TrackName:
				if info.Name == "" {
					info.Name = ev.Text
				}
			}
		}
		info.Channels = util.SortedKeys(channels)
		info.Programs = util.SortedKeys(programs)
		for _, ch := range info.Channels {
			if ch == gm.PercussionChannel {
				info.Percussion = true
			}
		}
		s.Tracks = append(s.Tracks, info)
	}
	return s
}

// Title returns the song title: the first named track wins.
func (s *Song) Title() string {
	for _, t := range s.Tracks {
		if t.Name != "" {
			return t.Name
		}
	}
	return ""
}

// SetEnabled flips one track's selection state.
func (s *Song) SetEnabled(num int, on bool) error {
	if num < 0 || num >= len(s.Tracks) {
		return fmt.Errorf("track %d out of range", num)
	}
	s.Tracks[num].Enabled = on
	return nil
}

// Selection returns a deep copy of the opus holding only the enabled
// tracks, ready for the conversion pipeline. The copy keeps concurrent
// conversions independent of each other and of the stored song.
func (s *Song) Selection() (model.Opus, error) {
	if len(s.opus.Tracks) == 0 {
		return model.Opus{}, model.ErrNoSongLoaded
	}
	out := model.Opus{TicksPerBeat: s.opus.TicksPerBeat}
	for i, events := range s.opus.Tracks {
		if !s.Tracks[i].Enabled {
			continue
		}
		dup := make(model.RawTrack, len(events))
		copy(dup, events)
		out.Tracks = append(out.Tracks, dup)
	}
	if len(out.Tracks) == 0 {
		return model.Opus{}, model.ErrAllTracksDisabled
	}
	return out, nil
}
