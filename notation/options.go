package notation

// Options is the conversion configuration surface. The zero value is not
// usable; start from DefaultOptions and override what you need.
type Options struct {
	MaxLineLength   int     // characters per output line
	MaxLineCount    int     // lines before the rest is dropped
	TickLag         float64 // quantization coarseness, quantum = 100*TickLag ms
	OctaveTranspose int     // whole-octave shift applied before naming
	Precision       int     // decimal places in duration modifiers
	OctaveKeys      int     // pitch classes per octave
	HighestOctave   int     // highest octave that still renders
	LineTerminator  string
}

func DefaultOptions() Options {
	return Options{
		MaxLineLength:   50,
		MaxLineCount:    200,
		TickLag:         0.5,
		OctaveTranspose: 0,
		Precision:       2,
		OctaveKeys:      12,
		HighestOctave:   8,
		LineTerminator:  "\n",
	}
}
