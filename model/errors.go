package model

import "errors"

// Failures reported by the track bookkeeping layer before the conversion
// pipeline ever runs. The pipeline itself never errors; it degrades to
// empty output instead.
var (
	ErrNoSongLoaded      = errors.New("no song loaded")
	ErrAllTracksDisabled = errors.New("all tracks are disabled")
)
