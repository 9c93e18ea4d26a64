package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	providerTokens = tokenSet(
		"directv", "pluto", "plex", "freeview", "sky", "virgin",
		"tvguide", "tvinsider", "tv24", "streaming", "epgshare",
	)
	qualityTokens   = tokenSet("hd", "uhd", "4k", "fhd", "sd")
	timeshiftTokens = tokenSet("+1", "+2", "east", "west", "timeshift")
	numericShifts   = tokenSet("+1", "+2")

	looseDrop  = union(providerTokens, qualityTokens, timeshiftTokens)
	strictDrop = union(qualityTokens, numericShifts)
)

// Loose returns the merge key form of a display name: case-folded words with
// provider, quality, and timeshift tokens removed, joined by single spaces.
func Loose(raw string) string {
	return strings.Join(keep(tokenize(raw), looseDrop), " ")
}

// Strict returns the preferred-index key form of a display name: case-folded
// alphanumerics only, with quality and numeric timeshift tokens removed.
// Provider and regional words are kept so that distinct feeds such as
// "Sky News" and "Fox East" stay distinct index keys.
func Strict(raw string) string {
	// A token that opens with a combining mark composes with its
	// predecessor once the separator is gone.
	joined := norm.NFKC.String(strings.Join(keep(tokenize(raw), strictDrop), ""))
	// Concatenation can spell a dropped token ("h-d" -> "hd").
	if _, drop := strictDrop[joined]; drop {
		return ""
	}
	return joined
}

func fold(raw string) string {
	s := norm.NFKC.String(strings.TrimSpace(raw))
	s = cases.Fold().String(s)
	return norm.NFKC.String(s)
}

// tokenize splits on anything that is not a letter, digit, or mark. A plus
// sign always starts a new token so "+1" survives as its own word.
func tokenize(raw string) []string {
	folded := fold(raw)
	if folded == "" {
		return nil
	}
	var (
		out []string
		cur strings.Builder
	)
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	for _, r := range folded {
		switch {
		case r == '+':
			flush()
			cur.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r):
			cur.WriteRune(r)
		default:
			flush()
		}
	}
	flush()
	return out
}

func keep(tokens []string, drop map[string]struct{}) []string {
	out := tokens[:0]
	for _, tok := range tokens {
		if _, ok := drop[tok]; ok {
			continue
		}
		tok = strings.Trim(tok, "+")
		if tok == "" {
			continue
		}
		if _, ok := drop[tok]; ok {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func tokenSet(values ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func union(sets ...map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for _, set := range sets {
		for k := range set {
			out[k] = struct{}{}
		}
	}
	return out
}
