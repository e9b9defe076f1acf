package music

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkpage-app/internal/domain/platform"
)

func link(p, url string, visible bool) platform.Link {
	return platform.Link{Platform: p, URL: url, Visible: visible}
}

func TestMergeDiscovered_OverwritesAndPrioritizes(t *testing.T) {
	existing := []platform.Link{
		link("spotify", "a", true),
		link("vk", "b", false),
	}
	discovered := []platform.Link{
		link("vk", "c", true),
	}

	got := MergeDiscovered(existing, discovered)

	require.Len(t, got, 2)
	assert.Equal(t, link("vk", "c", true), got[0], "discovered vk moves to front, url overwritten, visibility forced")
	assert.Equal(t, link("spotify", "a", true), got[1], "spotify retained after discovered entries")
}

func TestMergeDiscovered_AppendsNewPlatforms(t *testing.T) {
	existing := []platform.Link{link("yandex", "y", true)}
	discovered := []platform.Link{
		link("spotify", "s", true),
		link("appleMusic", "am", true),
	}

	got := MergeDiscovered(existing, discovered)

	require.Len(t, got, 3)
	assert.Equal(t, "spotify", got[0].Platform)
	assert.Equal(t, "appleMusic", got[1].Platform)
	assert.Equal(t, "yandex", got[2].Platform)
}

func TestMergeDiscovered_DropsEmptyURLs(t *testing.T) {
	existing := []platform.Link{
		link("spotify", "", true), // manual stub, never filled in
		link("vk", "b", true),
	}
	discovered := []platform.Link{link("deezer", "d", true)}

	got := MergeDiscovered(existing, discovered)

	require.Len(t, got, 2)
	assert.Equal(t, "deezer", got[0].Platform)
	assert.Equal(t, "vk", got[1].Platform)
}

func TestMergeDiscovered_Idempotent(t *testing.T) {
	existing := []platform.Link{
		link("spotify", "a", true),
		link("vk", "b", false),
		link("tidal", "", true),
	}
	discovered := []platform.Link{
		link("vk", "c", true),
		link("deezer", "d", true),
	}

	once := MergeDiscovered(existing, discovered)
	twice := MergeDiscovered(once, discovered)
	assert.Equal(t, once, twice)
}

func TestMergeDiscovered_EmptyInputs(t *testing.T) {
	assert.Empty(t, MergeDiscovered(nil, nil))

	existing := []platform.Link{link("spotify", "a", true)}
	got := MergeDiscovered(existing, nil)
	require.Len(t, got, 1)
	assert.Equal(t, existing[0], got[0])
}

func TestManualAdd_NewPlatformGoesFirst(t *testing.T) {
	existing := []platform.Link{link("spotify", "a", true)}

	got, err := ManualAdd(existing, "soundcloud.com/artist/track")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, link("soundcloud", "https://soundcloud.com/artist/track", true), got[0])
	assert.Equal(t, "spotify", got[1].Platform)
}

func TestManualAdd_ExistingPlatformMovesToFront(t *testing.T) {
	existing := []platform.Link{
		link("spotify", "a", true),
		link("vk", "old", false),
	}

	got, err := ManualAdd(existing, "https://vk.com/audio123")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, link("vk", "https://vk.com/audio123", true), got[0])
	assert.Equal(t, "spotify", got[1].Platform)
}

func TestManualAdd_Unrecognized(t *testing.T) {
	existing := []platform.Link{link("spotify", "a", true)}

	got, err := ManualAdd(existing, "https://myblog.example/post")
	assert.ErrorIs(t, err, ErrUnrecognizedPlatform)
	assert.Equal(t, existing, got, "existing list must be returned unchanged")
}
