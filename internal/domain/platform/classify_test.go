package platform

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_EmptyInput(t *testing.T) {
	assert.Nil(t, Classify(""))
	assert.Nil(t, Classify("   "))
	assert.Nil(t, ClassifyMusic("\t\n"))
}

func TestClassify_Deterministic(t *testing.T) {
	inputs := []string{
		"https://instagram.com/someone",
		"@handle",
		"example.com",
		"https://music.youtube.com/watch?v=1",
	}
	for _, in := range inputs {
		first := Classify(in)
		second := Classify(in)
		assert.Equal(t, first, second, "classify must be referentially transparent for %q", in)
	}
}

func TestClassify_SocialCatalog(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		platform string
		url      string
	}{
		{"instagram url", "https://instagram.com/band", "instagram", "https://instagram.com/band"},
		{"instagram no scheme", "instagram.com/band", "instagram", "https://instagram.com/band"},
		{"uppercase domain", "HTTPS://WWW.TIKTOK.COM/@band", "tiktok", "HTTPS://WWW.TIKTOK.COM/@band"},
		{"telegram short domain", "t.me/band", "telegram", "https://t.me/band"},
		{"linkedin profile path", "linkedin.com/in/someone", "linkedin", "https://linkedin.com/in/someone"},
		{"unknown domain falls back to custom", "example.com", Custom, "https://example.com"},
		{"custom keeps existing scheme", "http://example.com", Custom, "http://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.input)
			require.NotNil(t, got)
			assert.Equal(t, tt.platform, got.Platform)
			assert.Equal(t, tt.url, got.CanonicalURL)
		})
	}
}

// music.youtube.com must win over youtube.com: the catalog declares the
// specific domain first and classification is first-match.
func TestClassifyMusic_SpecificBeforeGeneric(t *testing.T) {
	got := ClassifyMusic("https://music.youtube.com/watch?v=1")
	require.NotNil(t, got)
	assert.Equal(t, "youtubeMusic", got.Platform)

	got = ClassifyMusic("https://youtube.com/watch?v=1")
	require.NotNil(t, got)
	assert.Equal(t, "youtube", got.Platform)

	got = ClassifyMusic("https://itunes.apple.com/album/1")
	require.NotNil(t, got)
	assert.Equal(t, "appleMusic", got.Platform)
}

func TestClassifyMusic_Catalog(t *testing.T) {
	tests := []struct {
		input    string
		platform string
	}{
		{"https://open.spotify.com/track/abc", "spotify"},
		{"https://youtu.be/abc", "youtube"},
		{"https://music.yandex.ru/track/1", "yandex"},
		{"https://vk.com/audio1", "vk"},
		{"https://audius.co/artist/track", "audius"},
		{"https://mysite.ru/track", Custom},
	}
	for _, tt := range tests {
		got := ClassifyMusic(tt.input)
		require.NotNil(t, got)
		assert.Equal(t, tt.platform, got.Platform, "input %q", tt.input)
	}
}

func TestProfileURL(t *testing.T) {
	tests := []struct {
		name     string
		platform string
		input    string
		want     string
	}{
		{"bare handle", "instagram", "@band", "https://instagram.com/band"},
		{"plain username", "telegram", "band", "https://t.me/band"},
		{"already canonical", "instagram", "https://instagram.com/band", "https://instagram.com/band"},
		{"domain without scheme", "instagram", "instagram.com/band", "https://instagram.com/band"},
		{"custom keeps input", Custom, "example.com/me", "https://example.com/me"},
		{"domainless platform", "wechat", "my-wechat-id", "https://my-wechat-id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ProfileURL(tt.platform, tt.input))
		})
	}
}

func TestLink_VisibleDefaultsTrue(t *testing.T) {
	var l Link
	require.NoError(t, json.Unmarshal([]byte(`{"platform":"spotify","url":"https://open.spotify.com/t"}`), &l))
	assert.True(t, l.Visible)

	require.NoError(t, json.Unmarshal([]byte(`{"platform":"vk","url":"u","visible":false}`), &l))
	assert.False(t, l.Visible)
}
