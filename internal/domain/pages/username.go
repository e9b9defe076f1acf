package pages

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

// ErrUsernameTaken means the requested public name is already in use by a
// page or sits on the reserved list.
var ErrUsernameTaken = errors.New("username is taken")

/*
	Username helpers
	----------------
	- Responsible ONLY for:
	  • normalizing and validating public usernames
	  • checking availability against pages and the reserved list
	- No verification logic, no block logic here
*/

var (
	validUsername = regexp.MustCompile(`^[a-z0-9][a-z0-9_.\-]{2,29}$`)
	nonSlug       = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash     = regexp.MustCompile(`-+`)
)

// NormalizeUsername lower-cases and trims the requested public name.
func NormalizeUsername(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ValidateUsername checks the normalized form: 3-30 chars, lower-case
// letters, digits, dot, dash, underscore, starting with a letter or digit.
func ValidateUsername(username string) error {
	if !validUsername.MatchString(username) {
		return fmt.Errorf("username must be 3-30 characters of letters, digits, '.', '-' or '_'")
	}
	return nil
}

// MakeSuggestion generates a URL-safe username candidate from a display
// name. Example: "John Doe" -> "john-doe".
func MakeSuggestion(name string) string {
	base := strings.ToLower(strings.TrimSpace(name))
	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")
	if base == "" {
		base = "page"
	}
	return base
}

// UsernameAvailable reports whether the normalized username is neither
// taken by an existing page nor reserved.
func UsernameAvailable(db *gorm.DB, username string) (bool, error) {
	var count int64
	if err := db.Model(&Page{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if err := db.Model(&ReservedUsername{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}
