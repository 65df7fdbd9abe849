// Package cardref extracts bracketed card references from chat message text.
//
// A reference is the inner text of a `[[...]]` pair, e.g. "I cast [[Lightning
// Bolt]]" yields "Lightning Bolt". Extraction is a best-effort scan: malformed
// or unbalanced brackets simply don't match, they never produce an error.
package cardref

import "regexp"

// refPattern matches double-bracketed references. The inner text may not
// contain a closing bracket, so `[[a]] [[b]]` yields two matches rather than
// one spanning match.
var refPattern = regexp.MustCompile(`\[\[([^\]]+)\]\]`)

// Extract returns the card references found in text, in order of appearance.
// Returns nil when text contains no references.
func Extract(text string) []string {
	matches := refPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, m[1])
	}
	return refs
}
