package types

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// Category colors. Each selects a presentation gradient in the UI layer.
const (
	ColorSlate  = "slate"
	ColorBlue   = "blue"
	ColorRose   = "rose"
	ColorAmber  = "amber"
	ColorSky    = "sky"
	ColorOrange = "orange"
	ColorViolet = "violet"
	ColorTeal   = "teal"
	ColorGreen  = "green"
)

// DefaultColor is used when a category has no color or the category does
// not exist. Lookups fall back to it instead of failing.
const DefaultColor = ColorSlate

// validColors is the set of recognized category colors.
var validColors = map[string]bool{
	ColorSlate:  true,
	ColorBlue:   true,
	ColorRose:   true,
	ColorAmber:  true,
	ColorSky:    true,
	ColorOrange: true,
	ColorViolet: true,
	ColorTeal:   true,
	ColorGreen:  true,
}

// ValidColor reports whether color is a recognized category color.
func ValidColor(color string) bool {
	return validColors[color]
}

// NormalizeColor returns color if recognized, DefaultColor otherwise.
func NormalizeColor(color string) string {
	if validColors[color] {
		return color
	}
	return DefaultColor
}

// Category groups symbols on the board. The key is a lookup-safe slug,
// unique within a profile but not across profiles.
type Category struct {
	CategoryID string    `json:"-"`
	ProfileID  string    `json:"-"`
	Key        string    `json:"key"`
	Name       string    `json:"name"`
	Color      string    `json:"color"`
	CreatedAt  time.Time `json:"-"`
}

// maxSlugLen bounds generated category keys.
const maxSlugLen = 48

var slugSeparators = regexp.MustCompile(`[\s_]+`)

// Slugify derives a category key from a display name: lower-cased, marks
// stripped from letters, whitespace collapsed to single hyphens, truncated
// to maxSlugLen runes. Returns "" for names with no usable characters;
// callers treat that as ErrInvalidName.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugSeparators.ReplaceAllString(s, "-")

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case unicode.IsLetter(r):
			if folded := foldRune(r); folded != 0 {
				b.WriteRune(folded)
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	runes := []rune(slug)
	if len(runes) > maxSlugLen {
		slug = strings.Trim(string(runes[:maxSlugLen]), "-")
	}
	return slug
}

// foldRune maps common accented Latin letters to their base ASCII letter.
// Unmapped letters are dropped from the slug.
func foldRune(r rune) rune {
	switch r {
	case 'á', 'à', 'â', 'ã', 'ä':
		return 'a'
	case 'é', 'è', 'ê', 'ë':
		return 'e'
	case 'í', 'ì', 'î', 'ï':
		return 'i'
	case 'ó', 'ò', 'ô', 'õ', 'ö':
		return 'o'
	case 'ú', 'ù', 'û', 'ü':
		return 'u'
	case 'ç':
		return 'c'
	case 'ñ':
		return 'n'
	}
	return 0
}
