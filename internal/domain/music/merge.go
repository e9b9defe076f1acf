package music

import (
	"errors"

	"linkpage-app/internal/domain/platform"
)

// ErrUnrecognizedPlatform is returned by ManualAdd when a URL cannot be
// mapped to any streaming service in the catalog.
var ErrUnrecognizedPlatform = errors.New("platform not recognized")

// MergeDiscovered folds a freshly resolved platform list into the list the
// user already has. Discovered entries overwrite a same-platform entry in
// place (new URL, forced visible) or get appended. Entries with an empty URL
// are dropped afterwards: resolver results supersede manual stubs, and an
// empty stub carries no information.
//
// Final ordering puts discovered platforms first, in discovery order, then
// the remaining entries in their prior relative order. Applying the same
// discovered list twice yields the same result as applying it once.
func MergeDiscovered(existing, discovered []platform.Link) []platform.Link {
	next := make([]platform.Link, len(existing))
	copy(next, existing)

	for _, d := range discovered {
		idx := indexOf(next, d.Platform)
		if idx != -1 {
			next[idx].URL = d.URL
			next[idx].Visible = true
		} else {
			next = append(next, platform.Link{Platform: d.Platform, URL: d.URL, Visible: true})
		}
	}

	active := next[:0:0]
	for _, l := range next {
		if l.URL != "" {
			active = append(active, l)
		}
	}

	discoveredIDs := make(map[string]bool, len(discovered))
	found := make([]platform.Link, 0, len(active))
	for _, d := range discovered {
		if discoveredIDs[d.Platform] {
			continue
		}
		discoveredIDs[d.Platform] = true
		if idx := indexOf(active, d.Platform); idx != -1 {
			found = append(found, active[idx])
		}
	}

	rest := make([]platform.Link, 0, len(active))
	for _, l := range active {
		if !discoveredIDs[l.Platform] {
			rest = append(rest, l)
		}
	}
	return append(found, rest...)
}

// ManualAdd classifies url against the music catalog and inserts or updates
// the matching entry, moving it to the front: a manual add is the most
// recent intent. Unclassifiable input returns ErrUnrecognizedPlatform and
// the existing list untouched.
func ManualAdd(existing []platform.Link, url string) ([]platform.Link, error) {
	res := platform.ClassifyMusic(url)
	if res == nil || res.Platform == platform.Custom {
		return existing, ErrUnrecognizedPlatform
	}

	next := make([]platform.Link, len(existing))
	copy(next, existing)

	idx := indexOf(next, res.Platform)
	if idx != -1 {
		item := next[idx]
		item.URL = res.CanonicalURL
		item.Visible = true
		next = append(next[:idx], next[idx+1:]...)
		return append([]platform.Link{item}, next...), nil
	}

	entry := platform.Link{Platform: res.Platform, URL: res.CanonicalURL, Visible: true}
	return append([]platform.Link{entry}, next...), nil
}

func indexOf(links []platform.Link, platformID string) int {
	for i, l := range links {
		if l.Platform == platformID {
			return i
		}
	}
	return -1
}
