package pages

import (
	"encoding/json"

	"linkpage-app/internal/domain/blocks"
	"linkpage-app/internal/domain/platform"

	"gorm.io/gorm"
)

// starterBlock is one pre-filled block in a starter template. Content may be
// partially filled (placeholder titles, empty urls) so it is written directly
// instead of going through the engine's create-time validation.
type starterBlock struct {
	Type    string
	Content any
}

var starterTemplates = map[string][]starterBlock{
	"musician": {
		{Type: blocks.TypeText, Content: blocks.TextContent{Title: "New release out now", Text: "Listen on your favorite platform."}},
		{Type: blocks.TypeMusic, Content: blocks.MusicContent{Platforms: []platform.Link{}}},
		{Type: blocks.TypeSocialIcons, Content: blocks.SocialIconsContent{}},
		{Type: blocks.TypeEmailSubscribe, Content: blocks.EmailSubscribeContent{
			Title:      "Join the mailing list",
			Subtitle:   "Tour dates and new music, straight to your inbox.",
			ButtonText: "Subscribe",
		}},
	},
	"barber": {
		{Type: blocks.TypeText, Content: blocks.TextContent{Title: "Book your next cut", Text: "Walk-ins welcome, appointments preferred."}},
		{Type: blocks.TypeButton, Content: blocks.ButtonContent{Title: "Book an appointment", URL: ""}},
		{Type: blocks.TypeSchedule, Content: blocks.ScheduleContent{
			Title: "Opening hours",
			Schedule: map[string]blocks.ScheduleDay{
				"mon": {Enabled: true, From: "10:00", To: "19:00"},
				"tue": {Enabled: true, From: "10:00", To: "19:00"},
				"wed": {Enabled: true, From: "10:00", To: "19:00"},
				"thu": {Enabled: true, From: "10:00", To: "19:00"},
				"fri": {Enabled: true, From: "10:00", To: "20:00"},
				"sat": {Enabled: true, From: "11:00", To: "18:00"},
				"sun": {Enabled: false, From: "", To: ""},
			},
		}},
		{Type: blocks.TypePricing, Content: blocks.PricingContent{
			Title: "Services",
			Plans: []blocks.PricingPlan{
				{Name: "Haircut", Price: "30", Currency: "USD"},
				{Name: "Beard trim", Price: "15", Currency: "USD"},
				{Name: "Full service", Price: "40", Currency: "USD", Highlighted: true},
			},
		}},
		{Type: blocks.TypeSocialIcons, Content: blocks.SocialIconsContent{}},
	},
	"business": {
		{Type: blocks.TypeText, Content: blocks.TextContent{Title: "About us", Text: "Tell visitors what you do and why it matters."}},
		{Type: blocks.TypeButton, Content: blocks.ButtonContent{Title: "Contact us", URL: ""}},
		{Type: blocks.TypePricing, Content: blocks.PricingContent{
			Title: "Plans",
			Plans: []blocks.PricingPlan{
				{Name: "Starter", Price: "9", Currency: "USD", Period: "month"},
				{Name: "Pro", Price: "29", Currency: "USD", Period: "month", Highlighted: true},
			},
		}},
		{Type: blocks.TypeFAQ, Content: blocks.FAQContent{
			Title: "FAQ",
			Items: []blocks.FAQItem{
				{Question: "How do I get started?", Answer: "Reach out through the contact button above."},
				{Question: "Do you offer refunds?", Answer: "Yes, within 14 days of purchase."},
			},
		}},
		{Type: blocks.TypeEmailSubscribe, Content: blocks.EmailSubscribeContent{
			Title:      "Stay in the loop",
			ButtonText: "Subscribe",
		}},
	},
	"blogger": {
		{Type: blocks.TypeText, Content: blocks.TextContent{Title: "Hey, I'm glad you're here", Text: "All my links in one place."}},
		{Type: blocks.TypeLink, Content: blocks.LinkContent{Title: "Latest post", URL: ""}},
		{Type: blocks.TypeLink, Content: blocks.LinkContent{Title: "My favorite gear", URL: ""}},
		{Type: blocks.TypeSocialIcons, Content: blocks.SocialIconsContent{}},
		{Type: blocks.TypeEmailSubscribe, Content: blocks.EmailSubscribeContent{
			Title:      "Never miss a post",
			ButtonText: "Subscribe",
		}},
	},
}

// KnownTemplate reports whether name is one of the starter templates.
func KnownTemplate(name string) bool {
	_, ok := starterTemplates[name]
	return ok
}

// SeedStarterBlocks writes the starter blocks for the named template onto a
// freshly created page. Unknown template names are ignored rather than failing
// the surrounding registration transaction. Content is written directly:
// starter blocks are allowed to ship with placeholder fields that the
// create-time validators would reject.
func SeedStarterBlocks(tx *gorm.DB, pageID string, template string) error {
	starters, ok := starterTemplates[template]
	if !ok {
		return nil
	}

	for i, s := range starters {
		content, err := json.Marshal(s.Content)
		if err != nil {
			return err
		}
		block := blocks.Block{
			PageID:    pageID,
			SortIndex: i,
			Type:      s.Type,
			Content:   content,
		}
		if err := tx.Create(&block).Error; err != nil {
			return err
		}
	}
	return nil
}
