package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "myband", NormalizeUsername("  MyBand "))
	assert.Equal(t, "a.b-c_d", NormalizeUsername("A.B-C_D"))
}

func TestValidateUsername(t *testing.T) {
	valid := []string{"abc", "my-band", "user_42", "a.b.c", "0start"}
	for _, u := range valid {
		assert.NoError(t, ValidateUsername(u), u)
	}

	invalid := []string{"", "ab", "-lead", ".lead", "UPPER", "with space", "waytoolongusernamewaytoolongusername"}
	for _, u := range invalid {
		assert.Error(t, ValidateUsername(u), u)
	}
}

func TestMakeSuggestion(t *testing.T) {
	assert.Equal(t, "john-doe", MakeSuggestion("John Doe"))
	assert.Equal(t, "caf-bar", MakeSuggestion("Café & Bar"))
	assert.Equal(t, "page", MakeSuggestion("???"))
}
