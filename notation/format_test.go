package notation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLinesSingleToken(t *testing.T) {
	assert.Equal(t, FormatLines([]string{"C,"}, 120, DefaultOptions()), "BPM: 120\nC,")
}

func TestFormatLinesNoTokens(t *testing.T) {
	assert.Equal(t, FormatLines(nil, 0, DefaultOptions()), "BPM: 0")
}

func TestFormatLinesWrapsAndStripsTerminator(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxLineLength = 10 // wrap limit 8 after the margin

	out := FormatLines([]string{"C E G,", "D F A,"}, 500, opts)

	assert := assert.New(t)
	lines := strings.Split(out, "\n")
	assert.Equal(len(lines), 3)
	// the wrapped line loses its trailing terminator
	assert.Equal(lines[1], "C E G")
	// the final line keeps it
	assert.Equal(lines[2], "D F A,")
}

func TestFormatLinesDropsExcessWholeTokens(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxLineLength = 10
	opts.MaxLineCount = 2

	out := FormatLines([]string{"C E G,", "D F A,", "E G B,"}, 120, opts)

	assert := assert.New(t)
	assert.False(strings.Contains(out, "E G B"))
	// never cut mid-token
	for _, line := range strings.Split(out, "\n")[1:] {
		assert.True(line == "C E G" || line == "D F A")
	}
}

func TestFormatLinesRespectsOverallBudget(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxLineLength = 8
	opts.MaxLineCount = 3

	var tokens []string
	for i := 0; i < 500; i++ {
		tokens = append(tokens, "C E G,")
	}
	out := FormatLines(tokens, 120, opts)

	assert.True(t, len(out) <= 2*opts.MaxLineLength*opts.MaxLineCount)
}
