package midi

import (
	"testing"

	"github.com/hecksadecimal/piano-go/model"
	"github.com/stretchr/testify/assert"
)

// format 1, two tracks, 480 ticks per beat: a tempo track and a single
// middle C held for one beat
var minimalSMF = []byte{
	'M', 'T', 'h', 'd', 0x00, 0x00, 0x00, 0x06,
	0x00, 0x01, // format 1
	0x00, 0x02, // two tracks
	0x01, 0xE0, // 480 ticks per beat
	'M', 'T', 'r', 'k', 0x00, 0x00, 0x00, 0x0B,
	0x00, 0xFF, 0x51, 0x03, 0x07, 0xA1, 0x20, // tempo 500000
	0x00, 0xFF, 0x2F, 0x00, // end of track
	'M', 'T', 'r', 'k', 0x00, 0x00, 0x00, 0x0D,
	0x00, 0x90, 0x3C, 0x64, // note on C4
	0x83, 0x60, 0x80, 0x3C, 0x40, // note off after 480 ticks
	0x00, 0xFF, 0x2F, 0x00, // end of track
}

func TestParseMinimalFile(t *testing.T) {
	op, err := Parse(minimalSMF)

	assert := assert.New(t)
	assert.Nil(err)
	assert.Equal(op.TicksPerBeat, 480)
	assert.Equal(len(op.Tracks), 2)

	var tempo *model.RawEvent
	for i := range op.Tracks[0] {
		if op.Tracks[0][i].Kind == model.SetTempo {
			tempo = &op.Tracks[0][i]
		}
	}
	if assert.NotNil(tempo) {
		assert.Equal(tempo.Tempo, uint32(500000))
	}

	var on, off *model.RawEvent
	for i := range op.Tracks[1] {
		switch op.Tracks[1][i].Kind {
		case model.NoteOn:
			on = &op.Tracks[1][i]
		case model.NoteOff:
			off = &op.Tracks[1][i]
		}
	}
	if assert.NotNil(on) && assert.NotNil(off) {
		assert.Equal(on.Pitch, uint8(60))
		assert.Equal(on.Velocity, uint8(100))
		assert.Equal(on.Delta, int64(0))
		assert.Equal(off.Pitch, uint8(60))
		assert.Equal(off.Delta, int64(480))
	}
}

func TestParseGarbage(t *testing.T) {
	_, err := Parse([]byte("this is not a midi file"))
	assert.NotNil(t, err)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse(nil)
	assert.NotNil(t, err)
}
