package model

type Notes = []uint8

// Chord is a group of pitches sharing one onset slot and one duration.
// Notes keeps the order the pitches arrived in.
type Chord struct {
	Notes    Notes
	Duration int64 // milliseconds
}
