package termio

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

// StripANSI removes CSI sequences.
func StripANSI(value string) string {
	return ansiPattern.ReplaceAllString(value, "")
}

// VisibleWidth returns the number of terminal cells value occupies.
func VisibleWidth(value string) int {
	return runewidth.StringWidth(StripANSI(value))
}

// Truncate shortens value to at most width cells, keeping escape sequences
// intact and ending with "..." when text was cut. A trailing reset is added
// when the cut may have left a style open.
func Truncate(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if VisibleWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(StripANSI(value), width, "")
	}

	target := width - 3
	var b strings.Builder
	visible := 0
	hasANSI := false

	for i := 0; i < len(value); {
		if value[i] == 0x1b {
			if seq, n, ok := readANSI(value[i:]); ok {
				hasANSI = true
				b.WriteString(seq)
				i += n
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(value[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		w := runewidth.RuneWidth(r)
		if visible+w > target {
			break
		}
		b.WriteRune(r)
		i += size
		visible += w
	}
	b.WriteString("...")
	if hasANSI {
		b.WriteString("\x1b[0m")
	}
	return b.String()
}

// SingleLine replaces line breaks so a value cannot spill into the next
// row of a block.
func SingleLine(value string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(value)
}

func readANSI(value string) (seq string, n int, ok bool) {
	if len(value) < 2 || value[0] != 0x1b || value[1] != '[' {
		return "", 0, false
	}
	for i := 2; i < len(value); i++ {
		if value[i] >= '@' && value[i] <= '~' {
			return value[:i+1], i + 1, true
		}
	}
	return "", 0, false
}
