package resolve

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/norcoast-labs/rtz-to-catalog/rtz"
)

// Unknown is the sentinel for unresolvable origin/destination fields. It is
// never the empty string so downstream grouping has a stable value to key on.
const Unknown = "Unknown"

// Metadata carries the resolved route identity fields.
type Metadata struct {
	Origin      string
	Destination string
}

var (
	authorityRe = regexp.MustCompile(`^[A-Z]{2,10}$`)
	dateRe      = regexp.MustCompile(`^\d{8}$`)
	directionRe = regexp.MustCompile(`^[A-Za-z]+$`)
)

// ResolveMetadata derives origin and destination for a route draft from its
// source filename, falling back to waypoint names and finally to Unknown.
func ResolveMetadata(filename string, draft rtz.RouteDraft) Metadata {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	tokens := strings.Split(base, "_")

	if origin, dest, ok := splitStrict(tokens); ok {
		return Metadata{Origin: origin, Destination: dest}
	}
	if origin, dest, ok := splitLoose(tokens); ok {
		return Metadata{Origin: origin, Destination: dest}
	}
	if origin, dest, ok := waypointNames(draft); ok {
		return Metadata{Origin: origin, Destination: dest}
	}
	return Metadata{Origin: Unknown, Destination: Unknown}
}

// splitStrict matches AUTHORITY_origin..._destination..._direction_YYYYMMDD.
// Re-extracted files often carry junk after the date ("_dup", "_1"); the
// date is located by scanning from the tail so such suffixes are ignored.
func splitStrict(tokens []string) (string, string, bool) {
	n := len(tokens)
	if n < 5 || !authorityRe.MatchString(tokens[0]) {
		return "", "", false
	}
	for k := n - 1; k >= 4; k-- {
		if dateRe.MatchString(tokens[k]) && directionRe.MatchString(tokens[k-1]) {
			return splitPlaces(tokens[1 : k-1])
		}
	}
	return "", "", false
}

// splitLoose matches AUTHORITY_origin..._destination... with no date tail.
func splitLoose(tokens []string) (string, string, bool) {
	n := len(tokens)
	if n < 3 {
		return "", "", false
	}
	if !authorityRe.MatchString(tokens[0]) || dateRe.MatchString(tokens[n-1]) {
		return "", "", false
	}
	return splitPlaces(tokens[1:])
}

// splitPlaces divides the middle tokens of a filename into origin and
// destination. Multi-word place names make the split ambiguous; the policy
// is: try every split point and take it if exactly one has both sides in the
// alias table, otherwise origin is the first token and destination the rest.
func splitPlaces(mid []string) (string, string, bool) {
	if len(mid) < 2 {
		return "", "", false
	}
	type split struct {
		origin string
		dest   string
	}
	var aliasHits []split
	for i := 1; i < len(mid); i++ {
		origin, originKnown := placeName(mid[:i])
		dest, destKnown := placeName(mid[i:])
		if originKnown && destKnown {
			aliasHits = append(aliasHits, split{origin: origin, dest: dest})
		}
	}
	if len(aliasHits) == 1 {
		return aliasHits[0].origin, aliasHits[0].dest, true
	}
	origin, _ := placeName(mid[:1])
	dest, _ := placeName(mid[1:])
	return origin, dest, true
}

// placeName renders filename tokens as a display name. Known aliases win so
// ASCII tokens map to their accented forms; anything else is title-cased.
func placeName(tokens []string) (string, bool) {
	key := Fold(strings.Join(tokens, " "))
	if display, ok := placeAliases[key]; ok {
		return display, true
	}
	return TitleCase(strings.Join(tokens, " ")), false
}

func waypointNames(draft rtz.RouteDraft) (string, string, bool) {
	if len(draft.Waypoints) == 0 {
		return "", "", false
	}
	first := strings.TrimSpace(draft.Waypoints[0].Name)
	last := strings.TrimSpace(draft.Waypoints[len(draft.Waypoints)-1].Name)
	if first == "" || last == "" {
		return "", "", false
	}
	return first, last, true
}

// Fold lowercases s and strips combining marks ("Ålesund" -> "alesund").
// Letters without a combining decomposition (ø) pass through unchanged;
// their ASCII filename variants are covered by the alias table instead.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// TitleCase renders a token sequence in title case ("bergen" -> "Bergen").
func TitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
