package employee

import (
	"strings"
	"unicode"
)

// cleanNameToken lowercases s and strips every rune that is not a lowercase
// letter after conversion.
func cleanNameToken(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DefaultEmail derives the canonical login address for a display name:
// lowercase, strip everything that is not a letter or whitespace, collapse
// the whitespace away, and append the domain. Deterministic: the same name
// always yields the same address.
func DefaultEmail(name string, domain string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if (r >= 'a' && r <= 'z') || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), "") + "@" + domain
}

// SuggestEmails returns candidate addresses for a display name. The first
// entry is always DefaultEmail; names with at least two tokens additionally
// get first.last, first-initial+last and first_last variants. Duplicates are
// dropped, keeping insertion order.
func SuggestEmails(name string, domain string) []string {
	suggestions := []string{DefaultEmail(name, domain)}

	parts := strings.Fields(strings.TrimSpace(name))
	if len(parts) >= 2 {
		first := cleanNameToken(parts[0])
		last := cleanNameToken(parts[len(parts)-1])
		if first != "" && last != "" {
			suggestions = append(suggestions,
				first+"."+last+"@"+domain,
				first[:1]+last+"@"+domain,
				first+"_"+last+"@"+domain,
			)
		}
	}

	seen := make(map[string]struct{}, len(suggestions))
	unique := suggestions[:0]
	for _, s := range suggestions {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		unique = append(unique, s)
	}
	return unique
}
