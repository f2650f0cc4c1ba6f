package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Config controls the normalization pipeline. Each stage is independently
// toggleable; stages always apply in the fixed order lowercase, diacritic
// strip, whitespace removal, trim.
type Config struct {
	// Lowercase folds the text to lower case.
	Lowercase bool

	// StripDiacritics decomposes the text (Unicode NFD) and removes
	// combining marks, so "café" matches "cafe".
	StripDiacritics bool

	// StripSpaces removes all whitespace characters.
	StripSpaces bool

	// Trim removes leading and trailing whitespace. A no-op when
	// StripSpaces already ran.
	Trim bool
}

// DefaultConfig returns the default pipeline with every stage enabled.
func DefaultConfig() Config {
	return Config{
		Lowercase:       true,
		StripDiacritics: true,
		StripSpaces:     true,
		Trim:            true,
	}
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// String runs the configured pipeline over s. It is a pure function and is
// total for any input, including the empty string.
func String(s string, cfg Config) string {
	if cfg.Lowercase {
		s = strings.ToLower(s)
	}
	if cfg.StripDiacritics {
		if out, _, err := transform.String(stripMarks, s); err == nil {
			s = out
		}
	}
	if cfg.StripSpaces {
		s = strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, s)
	}
	if cfg.Trim {
		s = strings.TrimSpace(s)
	}
	return s
}
