package blocks

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownType(t *testing.T) {
	for _, typ := range []string{
		TypeLink, TypeText, TypeMusic, TypePricing, TypeSchedule,
		TypeSocialIcons, TypeEmailSubscribe, TypeButton, TypeFAQ,
	} {
		assert.True(t, KnownType(typ), typ)
	}
	assert.False(t, KnownType("gallery"))
	assert.False(t, KnownType(""))
}

func TestValidateContent_UnknownType(t *testing.T) {
	err := ValidateContent("carousel", json.RawMessage(`{}`))
	assert.True(t, IsValidation(err))
}

func TestValidateContent_Table(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		content string
		ok      bool
	}{
		{"link ok", TypeLink, `{"title":"My site","url":"https://example.com"}`, true},
		{"link missing title", TypeLink, `{"url":"https://example.com"}`, false},
		{"link missing url", TypeLink, `{"title":"My site"}`, false},
		{"link blank title", TypeLink, `{"title":"  ","url":"u"}`, false},

		{"text ok", TypeText, `{"text":"hello"}`, true},
		{"text title only", TypeText, `{"title":"About me"}`, true},
		{"text empty", TypeText, `{}`, false},

		{"music empty list ok", TypeMusic, `{"platforms":[]}`, true},
		{"music empty object ok", TypeMusic, `{}`, true},
		{"music entry without platform", TypeMusic, `{"platforms":[{"url":"https://x"}]}`, false},
		{"music full", TypeMusic, `{"title":"Song","artist":"Band","platforms":[{"platform":"spotify","url":"https://open.spotify.com/t"}]}`, true},

		{"pricing ok", TypePricing, `{"plans":[{"name":"Basic","price":"10","currency":"$","period":"mo","features":"a\nb","button_text":"Buy","highlighted":false}]}`, true},
		{"pricing no plans", TypePricing, `{"plans":[]}`, false},
		{"pricing empty plan", TypePricing, `{"plans":[{"name":"","price":""}]}`, false},
		{"pricing price only", TypePricing, `{"plans":[{"name":"","price":"5"}]}`, true},

		{"schedule ok", TypeSchedule, `{"schedule":{"mon":{"enabled":true,"from":"09:00","to":"18:00"}}}`, true},
		{"schedule empty", TypeSchedule, `{}`, false},

		{"social icons ok", TypeSocialIcons, `{"links":[{"platform":"instagram","url":"https://instagram.com/x"}]}`, true},
		{"social icons empty", TypeSocialIcons, `{"links":[]}`, false},
		{"social icons no platform", TypeSocialIcons, `{"links":[{"url":"https://x"}]}`, false},

		{"email subscribe ok", TypeEmailSubscribe, `{"title":"Subscribe"}`, true},
		{"email subscribe empty", TypeEmailSubscribe, `{}`, false},

		{"button ok", TypeButton, `{"title":"Download","url":"https://example.com/f.pdf"}`, true},
		{"button no url", TypeButton, `{"title":"Download"}`, false},

		{"faq ok", TypeFAQ, `{"items":[{"question":"Q?","answer":"A"}]}`, true},
		{"faq no items", TypeFAQ, `{"items":[]}`, false},
		{"faq blank question", TypeFAQ, `{"items":[{"question":" ","answer":"A"}]}`, false},

		{"malformed json", TypeLink, `{"title":`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContent(tt.typ, json.RawMessage(tt.content))
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, IsValidation(err), "expected a validation error, got %v", err)
			}
		})
	}
}

// Content must survive a decode/encode cycle byte-for-byte in meaning,
// including nested arrays: the shapes are a wire contract.
func TestContentRoundTrip(t *testing.T) {
	raw := json.RawMessage(`{"title":"Plans","plans":[{"name":"Basic","price":"10","currency":"$","period":"mo","features":"one\ntwo","button_text":"Pick","button_url":"https://example.com","highlighted":true},{"name":"Pro","price":"30","currency":"$","period":"mo","features":"","button_text":"Pick","highlighted":false}]}`)

	var c PricingContent
	require.NoError(t, json.Unmarshal(raw, &c))

	encoded, err := json.Marshal(c)
	require.NoError(t, err)

	var back PricingContent
	require.NoError(t, json.Unmarshal(encoded, &back))
	assert.Equal(t, c, back)
	assert.Len(t, back.Plans, 2)
	assert.Equal(t, "one\ntwo", back.Plans[0].Features)
	assert.True(t, back.Plans[0].Highlighted)
}

func TestCheckReorderSet(t *testing.T) {
	current := []string{"b1", "b2", "b3"}

	assert.NoError(t, checkReorderSet(current, []string{"b3", "b1", "b2"}))

	tests := []struct {
		name     string
		proposed []string
	}{
		{"missing one block", []string{"b1", "b2"}},
		{"extra block", []string{"b1", "b2", "b3", "b4"}},
		{"foreign block", []string{"b1", "b2", "b9"}},
		{"duplicate id", []string{"b1", "b2", "b2"}},
		{"empty", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkReorderSet(current, tt.proposed)
			require.Error(t, err)
			assert.True(t, IsValidation(err))
		})
	}
}

func TestCheckReorderSet_EmptyPage(t *testing.T) {
	assert.NoError(t, checkReorderSet(nil, nil))
}
