package channel

import "strings"

// ListDelimiter separates multi-valued cells such as alt names and categories.
const ListDelimiter = ";"

// Record is one channel entry from any source. Records are built once by a
// schema binder and treated as read-only afterwards.
type Record struct {
	ID         string
	Name       string
	AltNames   []string
	Country    string
	Network    string
	Owners     string
	Categories []string
	IsNSFW     string
	Launched   string
	Closed     string
	ReplacedBy string
	Website    string
	Source     string
	Site       string

	// PreferredMarker is the raw preference value carried by the source row.
	PreferredMarker string
}

// HasID reports whether the record carries a non-empty identifier.
func (r Record) HasID() bool {
	return strings.TrimSpace(r.ID) != ""
}

// Names returns the primary name followed by alternate names, skipping blanks.
func (r Record) Names() []string {
	out := make([]string, 0, 1+len(r.AltNames))
	if name := strings.TrimSpace(r.Name); name != "" {
		out = append(out, name)
	}
	for _, alt := range r.AltNames {
		if alt = strings.TrimSpace(alt); alt != "" {
			out = append(out, alt)
		}
	}
	return out
}

// CanonicalCountry upper-cases a country code; blank means no country.
func CanonicalCountry(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// SplitList splits a delimited cell into trimmed, non-empty items.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ListDelimiter)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// JoinList renders a list back into a delimited cell.
func JoinList(items []string) string {
	return strings.Join(items, ListDelimiter)
}

// ParseMarker interprets a preference marker: any value starting with Y or y
// is affirmative.
func ParseMarker(value string) bool {
	value = strings.TrimSpace(value)
	return value != "" && (value[0] == 'Y' || value[0] == 'y')
}

// FormatFlag renders a boolean flag the way the flat files store it.
func FormatFlag(value bool) string {
	if value {
		return "Y"
	}
	return ""
}
