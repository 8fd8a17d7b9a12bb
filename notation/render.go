package notation

import (
	"strconv"
	"strings"

	"github.com/hecksadecimal/piano-go/model"
)

const (
	chordSeparator  = " "
	chordTerminator = ","

	// middle C (pitch 60) sits in octave 5 under pitch/12; notes in the
	// base octave never need a digit
	baseOctave = 5
)

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// letter slot (the 7 naturals collapsed) for each pitch class
var letterSlots = [12]int{0, 0, 1, 1, 2, 3, 3, 4, 4, 5, 5, 6}

// accidental flag index for the five sharped pitch classes, -1 otherwise
var sharpFlags = [12]int{-1, 0, -1, 1, -1, -1, 2, -1, 3, -1, 4, -1}

// for natural pitch classes, the accidental flag a natural sign cancels;
// E and B have no sharp of their own
var cancelFlags = [12]int{0, -1, 1, -1, -1, 2, -1, 3, -1, 4, -1, -1}

// RenderState carries the accidental and octave bookkeeping that lets
// repeated note names elide redundant markers, the way written notation
// does. One state serves one conversion from the first note to the last;
// it is never reset mid-piece, and concurrent conversions must each own
// their own state.
type RenderState struct {
	octaves [7]int
	sharps  [5]bool
}

func NewRenderState() *RenderState {
	var st RenderState
	for i := range st.octaves {
		st.octaves[i] = baseOctave
	}
	return &st
}

// Pitch renders one pitch number into a note name. Pitches that land
// below octave 1 or above the highest representable octave render as the
// empty string and leave the state untouched.
func (st *RenderState) Pitch(pitch uint8, opts Options) string {
	p := int(pitch) + opts.OctaveKeys*opts.OctaveTranspose
	if p < 0 {
		return ""
	}
	octave := p / opts.OctaveKeys
	degree := p % opts.OctaveKeys
	if octave < 1 || octave > opts.HighestOctave || degree >= len(noteNames) {
		return ""
	}

	name := noteNames[degree]
	if f := sharpFlags[degree]; f >= 0 {
		st.sharps[f] = true
	} else if f := cancelFlags[degree]; f >= 0 && st.sharps[f] {
		// the sharp was in effect for this letter; naturalize it
		name += "n"
		st.sharps[f] = false
	}

	slot := letterSlots[degree]
	if octave != st.octaves[slot] {
		name += strconv.Itoa(octave)
	}
	st.octaves[slot] = octave
	return name
}

// Chord renders a chord token: the pitches in list order joined by the
// separator, a duration modifier when the chord deviates from the
// dominant duration, and the trailing terminator.
func (st *RenderState) Chord(c model.Chord, dominant int64, opts Options) string {
	var parts []string
	for _, p := range c.Notes {
		if name := st.Pitch(p, opts); name != "" {
			parts = append(parts, name)
		}
	}
	token := strings.Join(parts, chordSeparator)
	if c.Duration > 0 && dominant > 0 && c.Duration != dominant {
		token += formatModifier(float64(dominant)/float64(c.Duration), opts.Precision)
	}
	return token + chordTerminator
}

// formatModifier renders a duration ratio at fixed precision, then
// strips trailing zeros and a dangling decimal point: 2.00 -> "2",
// 1.50 -> "1.5".
func formatModifier(ratio float64, precision int) string {
	s := strconv.FormatFloat(ratio, 'f', precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
