package notation

import (
	"strings"
	"testing"

	"github.com/hecksadecimal/piano-go/model"
	"github.com/stretchr/testify/assert"
)

func middleCOpus() model.Opus {
	return model.Opus{
		TicksPerBeat: 480,
		Tracks: []model.RawTrack{
			{},
			{
				{Kind: model.NoteOn, Delta: 0, Pitch: 60, Velocity: 100},
				{Kind: model.NoteOff, Delta: 480, Pitch: 60},
			},
		},
	}
}

func TestConvertSingleMiddleC(t *testing.T) {
	// 480 ticks at 480 tpb and the default 120 BPM rebase to 500ms,
	// which quantizes cleanly and becomes the dominant duration
	assert.Equal(t, Convert(middleCOpus(), DefaultOptions()), "BPM: 120\nC,")
}

func TestConvertIsDeterministic(t *testing.T) {
	op := model.Opus{
		TicksPerBeat: 480,
		Tracks: []model.RawTrack{
			{},
			{
				{Kind: model.NoteOn, Delta: 0, Pitch: 60, Velocity: 100},
				{Kind: model.NoteOn, Delta: 0, Pitch: 64, Velocity: 100},
				{Kind: model.NoteOn, Delta: 0, Pitch: 67, Velocity: 100},
				{Kind: model.NoteOff, Delta: 480, Pitch: 60},
				{Kind: model.NoteOff, Delta: 0, Pitch: 64},
				{Kind: model.NoteOff, Delta: 0, Pitch: 67},
				{Kind: model.NoteOn, Delta: 0, Pitch: 62, Velocity: 100},
				{Kind: model.NoteOff, Delta: 240, Pitch: 62},
			},
		},
	}

	first := Convert(op, DefaultOptions())
	second := Convert(op, DefaultOptions())

	assert := assert.New(t)
	assert.Equal(first, second)
	assert.True(strings.HasPrefix(first, "BPM: "))
}

func TestConvertDoesNotMutateInput(t *testing.T) {
	op := middleCOpus()
	before := op.Clone()

	Convert(op, DefaultOptions())
	opts := DefaultOptions()
	opts.OctaveTranspose = 2
	Convert(op, opts)

	assert.Equal(t, op, before)
}

func TestConvertSharpThenNatural(t *testing.T) {
	op := model.Opus{
		TicksPerBeat: 480,
		Tracks: []model.RawTrack{
			{},
			{
				{Kind: model.NoteOn, Delta: 0, Pitch: 61, Velocity: 100},
				{Kind: model.NoteOff, Delta: 480, Pitch: 61},
				{Kind: model.NoteOn, Delta: 0, Pitch: 60, Velocity: 100},
				{Kind: model.NoteOff, Delta: 480, Pitch: 60},
			},
		},
	}

	out := Convert(op, DefaultOptions())

	assert := assert.New(t)
	assert.True(strings.Contains(out, "C#,"))
	assert.True(strings.Contains(out, "Cn,"))
}

func TestConvertDegenerateInputEmitsBareHeader(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Convert(model.Opus{}, DefaultOptions()), "BPM: 0")
	// single-track content is dropped by the pairer
	single := model.Opus{
		TicksPerBeat: 480,
		Tracks: []model.RawTrack{{
			{Kind: model.NoteOn, Delta: 0, Pitch: 60, Velocity: 100},
			{Kind: model.NoteOff, Delta: 480, Pitch: 60},
		}},
	}
	assert.Equal(Convert(single, DefaultOptions()), "BPM: 0")
}

func TestConvertTickLagOnlyChangesGranularity(t *testing.T) {
	op := middleCOpus()

	coarse := DefaultOptions()
	coarse.TickLag = 1
	fine := DefaultOptions()
	fine.TickLag = 0.1

	a := Convert(op, fine)
	b := Convert(op, coarse)

	// same note, same chord shape; only rounding may differ
	assert := assert.New(t)
	assert.True(strings.HasSuffix(a, "C,"))
	assert.True(strings.HasSuffix(b, "C,"))
}

func TestConvertOutputNeverExceedsBudget(t *testing.T) {
	var main model.RawTrack
	for i := 0; i < 2000; i++ {
		main = append(main, model.RawEvent{Kind: model.NoteOn, Delta: 10, Pitch: uint8(48 + i%24), Velocity: 100})
		main = append(main, model.RawEvent{Kind: model.NoteOff, Delta: 10, Pitch: uint8(48 + i%24)})
	}
	op := model.Opus{TicksPerBeat: 480, Tracks: []model.RawTrack{{}, main}}

	opts := DefaultOptions()
	opts.MaxLineLength = 20
	opts.MaxLineCount = 5

	out := Convert(op, opts)

	assert.True(t, len(out) <= 2*opts.MaxLineLength*opts.MaxLineCount)
}
