package parser

import (
	"strings"
	"time"
)

// dateLayouts are tried in order when a text cell may hold a date.
// Slash dates are read month first, as Excel does for the en-US locale.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006/01/02",
	"2006/01/02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"1/2/2006 15:04",
	"01-02-06",
	"1/2/06",
	"02-Jan-2006",
	"2-Jan-06",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// parseTextDate parses s with the first matching layout.
func parseTextDate(s string) (time.Time, bool) {
	if len(s) < 6 || !strings.ContainsAny(s, "-/ ,") {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// isDateNumFmt reports whether a number format renders a date or time.
// id is the built-in format id, custom the format code for custom formats.
func isDateNumFmt(id int, custom string) bool {
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	}
	if custom == "" {
		return false
	}
	return hasDateTokens(custom)
}

// hasDateTokens scans the first section of a format code for date/time placeholders,
// skipping quoted literals, escapes and bracketed colour/locale blocks.
func hasDateTokens(code string) bool {
	inQuote := false
	for i := 0; i < len(code); i++ {
		ch := code[i]
		if ch == '"' {
			inQuote = !inQuote
			continue
		}
		if inQuote {
			continue
		}
		switch ch {
		case '\\', '_', '*':
			i++
			continue
		case ';':
			return false
		case '[':
			end := strings.IndexByte(code[i:], ']')
			if end < 0 {
				return false
			}
			// Elapsed time: [h], [mm], [ss]
			switch strings.ToLower(code[i+1 : i+end]) {
			case "h", "hh", "m", "mm", "s", "ss":
				return true
			}
			i += end
			continue
		}
		switch ch {
		case 'y', 'Y', 'd', 'D', 'h', 'H', 's', 'S', 'm', 'M':
			return true
		}
	}
	return false
}
