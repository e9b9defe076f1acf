package platform

import "strings"

// Result of classifying a raw URL or handle.
type Result struct {
	Platform     string `json:"platform"`
	CanonicalURL string `json:"canonical_url"`
}

// Classify maps a raw URL or handle to a social platform. It is pure and is
// called on every keystroke in the link editor, so it must never allocate
// shared state or fail. Empty or whitespace-only input returns nil.
//
// Matching is first-match over the catalog's domain substrings; catalog
// ordering is therefore part of the contract. Anything unmatched is "custom".
func Classify(input string) *Result {
	return classify(SocialCatalog, input)
}

// ClassifyMusic is Classify restricted to the streaming-service catalog,
// used by the music block's manual add.
func ClassifyMusic(input string) *Result {
	return classify(MusicCatalog, input)
}

func classify(catalog []Entry, input string) *Result {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil
	}
	lower := strings.ToLower(trimmed)

	for _, e := range catalog {
		for _, d := range e.Domains {
			if strings.Contains(lower, d) {
				return &Result{Platform: e.ID, CanonicalURL: EnsureScheme(trimmed)}
			}
		}
	}
	return &Result{Platform: Custom, CanonicalURL: EnsureScheme(trimmed)}
}

// ProfileURL builds the canonical URL for an explicitly chosen platform.
// A bare handle like "@name" becomes "https://{domain}/name"; input that
// already carries the platform domain is just scheme-prefixed.
func ProfileURL(platformID, input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	var entry *Entry
	for i := range SocialCatalog {
		if SocialCatalog[i].ID == platformID {
			entry = &SocialCatalog[i]
			break
		}
	}
	if entry == nil || len(entry.Domains) == 0 {
		return EnsureScheme(trimmed)
	}

	domain := entry.Domains[0]
	clean := strings.ToLower(trimmed)
	clean = strings.TrimPrefix(clean, "http://")
	clean = strings.TrimPrefix(clean, "https://")
	clean = strings.TrimPrefix(clean, "www.")

	if strings.Contains(clean, domain) {
		return EnsureScheme(trimmed)
	}

	handle := strings.TrimPrefix(trimmed, "@")
	return "https://" + domain + "/" + handle
}

// EnsureScheme prefixes https:// when the input has no scheme.
func EnsureScheme(url string) string {
	lower := strings.ToLower(url)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return url
	}
	return "https://" + url
}
