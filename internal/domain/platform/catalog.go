package platform

// Entry describes one recognized service. Domains are substring-matched
// against lower-cased input; the FIRST entry with a hit wins, so specific
// domains (music.youtube.com) must be declared before generic ones
// (youtube.com). Keep that ordering intact when adding entries.
type Entry struct {
	ID      string
	Name    string
	Domains []string
}

const Custom = "custom"

// SocialCatalog mirrors the link editor's platform picker. Entries with no
// domain (wechat) can be picked manually but are never auto-detected.
var SocialCatalog = []Entry{
	{ID: "instagram", Name: "Instagram", Domains: []string{"instagram.com"}},
	{ID: "youtube", Name: "YouTube", Domains: []string{"youtube.com"}},
	{ID: "tiktok", Name: "TikTok", Domains: []string{"tiktok.com"}},
	{ID: "telegram", Name: "Telegram", Domains: []string{"t.me"}},
	{ID: "whatsapp", Name: "WhatsApp", Domains: []string{"wa.me"}},
	{ID: "facebook", Name: "Facebook", Domains: []string{"facebook.com"}},
	{ID: "wechat", Name: "WeChat", Domains: nil},
	{ID: "linkedin", Name: "LinkedIn", Domains: []string{"linkedin.com/in"}},
}

// MusicCatalog covers the streaming services the music block supports.
// Ordering is the detection priority from the music editor: music.youtube
// before youtube.com, itunes.apple.com grouped under appleMusic.
var MusicCatalog = []Entry{
	{ID: "spotify", Name: "Spotify", Domains: []string{"spotify.com"}},
	{ID: "appleMusic", Name: "Apple Music", Domains: []string{"itunes.apple.com", "apple.com"}},
	{ID: "youtubeMusic", Name: "YouTube Music", Domains: []string{"music.youtube"}},
	{ID: "youtube", Name: "YouTube", Domains: []string{"youtube.com", "youtu.be"}},
	{ID: "yandex", Name: "Yandex Music", Domains: []string{"yandex."}},
	{ID: "vk", Name: "VK Music", Domains: []string{"vk.com"}},
	{ID: "soundcloud", Name: "SoundCloud", Domains: []string{"soundcloud.com"}},
	{ID: "deezer", Name: "Deezer", Domains: []string{"deezer.com"}},
	{ID: "tidal", Name: "Tidal", Domains: []string{"tidal.com"}},
	{ID: "amazonMusic", Name: "Amazon Music", Domains: []string{"amazon."}},
	{ID: "pandora", Name: "Pandora", Domains: []string{"pandora.com"}},
	{ID: "bandcamp", Name: "Bandcamp", Domains: []string{"bandcamp.com"}},
	{ID: "boomplay", Name: "Boomplay", Domains: []string{"boomplay.com"}},
	{ID: "tiktok", Name: "TikTok", Domains: []string{"tiktok.com"}},
	{ID: "anghami", Name: "Anghami", Domains: []string{"anghami.com"}},
	{ID: "audius", Name: "Audius", Domains: []string{"audius.co", "audius.org"}},
	{ID: "audiomack", Name: "Audiomack", Domains: []string{"audiomack.com"}},
}

// IsMusicPlatform reports whether id belongs to the music catalog.
func IsMusicPlatform(id string) bool {
	for _, e := range MusicCatalog {
		if e.ID == id {
			return true
		}
	}
	return false
}
