package notation

import (
	"strconv"
	"strings"
)

// a little slack under the configured line length
const lineMargin = 2

// FormatLines wraps chord tokens into lines no longer than the
// configured length, bounds the line count, prefixes the derived BPM
// header and applies the overall size cap. A wrapped line loses its
// trailing chord terminator; the line break takes its place. Tokens that
// no longer fit within the line budget are dropped whole, never cut.
func FormatLines(tokens []string, bpm int, opts Options) string {
	limit := opts.MaxLineLength - lineMargin
	var lines []string
	var current string

	for _, token := range tokens {
		if len(lines) >= opts.MaxLineCount {
			break
		}
		if current != "" && len(current)+len(token) > limit {
			lines = append(lines, strings.TrimSuffix(current, chordTerminator))
			current = ""
			if len(lines) >= opts.MaxLineCount {
				break
			}
		}
		current += token
	}
	if current != "" && len(lines) < opts.MaxLineCount {
		lines = append(lines, current)
	}

	text := "BPM: " + strconv.Itoa(bpm) + opts.LineTerminator + strings.Join(lines, opts.LineTerminator)
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, opts.LineTerminator)

	if budget := 2 * opts.MaxLineLength * opts.MaxLineCount; len(text) > budget {
		text = text[:budget]
	}
	return text
}
