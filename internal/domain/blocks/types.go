package blocks

import (
	"encoding/json"
	"strings"

	"linkpage-app/internal/domain/platform"
)

// Closed set of block types. Adding a type means adding one constant, one
// content struct and one registry entry; the engine itself never changes.
const (
	TypeLink           = "link"
	TypeText           = "text"
	TypeMusic          = "music"
	TypePricing        = "pricing"
	TypeSchedule       = "schedule"
	TypeSocialIcons    = "social_icons"
	TypeEmailSubscribe = "email_subscribe"
	TypeButton         = "button"
	TypeFAQ            = "faq"
)

// Content shapes are a wire contract: they must round-trip exactly through
// create/update, so every field the editors write is declared here.

type LinkContent struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	URL      string `json:"url"`
	Platform string `json:"platform,omitempty"`
}

type TextContent struct {
	Style string `json:"style,omitempty"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text"`
	URL   string `json:"url,omitempty"`
}

type MusicContent struct {
	Title     string          `json:"title,omitempty"`
	Artist    string          `json:"artist,omitempty"`
	Cover     string          `json:"cover,omitempty"`
	ShowCover *bool           `json:"showCover,omitempty"`
	Platforms []platform.Link `json:"platforms"`
}

type PricingPlan struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Currency    string `json:"currency"`
	Period      string `json:"period"`
	Features    string `json:"features"`
	ButtonText  string `json:"button_text"`
	ButtonURL   string `json:"button_url,omitempty"`
	Highlighted bool   `json:"highlighted"`
}

type PricingContent struct {
	Title string        `json:"title,omitempty"`
	Plans []PricingPlan `json:"plans"`
}

type ScheduleDay struct {
	Enabled bool   `json:"enabled"`
	From    string `json:"from"`
	To      string `json:"to"`
	Note    string `json:"note,omitempty"`
}

type ScheduleContent struct {
	Title    string                 `json:"title,omitempty"`
	Schedule map[string]ScheduleDay `json:"schedule"`
	Note     string                 `json:"note,omitempty"`
}

type SocialIconsContent struct {
	Links []platform.Link `json:"links"`
}

type EmailSubscribeContent struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	ButtonText  string `json:"button_text,omitempty"`
	SuccessText string `json:"success_text,omitempty"`
}

type ButtonContent struct {
	Title    string `json:"title"`
	Subtext  string `json:"subtext,omitempty"`
	URL      string `json:"url"`
	Type     string `json:"type,omitempty"`
	PresetID string `json:"presetId,omitempty"`
	FileName string `json:"fileName,omitempty"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FAQContent struct {
	Title        string    `json:"title,omitempty"`
	HasHighlight bool      `json:"hasHighlight,omitempty"`
	ShowNumbers  bool      `json:"showNumbers,omitempty"`
	Items        []FAQItem `json:"items"`
}

// validators holds the per-type minimal shape check. The ordering engine
// dispatches through this table and never inspects content otherwise.
var validators = map[string]func(json.RawMessage) error{
	TypeLink:           validateLink,
	TypeText:           validateText,
	TypeMusic:          validateMusic,
	TypePricing:        validatePricing,
	TypeSchedule:       validateSchedule,
	TypeSocialIcons:    validateSocialIcons,
	TypeEmailSubscribe: validateEmailSubscribe,
	TypeButton:         validateButton,
	TypeFAQ:            validateFAQ,
}

// KnownType reports whether t belongs to the closed block type set.
func KnownType(t string) bool {
	_, ok := validators[t]
	return ok
}

// ValidateContent runs the declared-minimum shape check for the given type.
func ValidateContent(blockType string, content json.RawMessage) error {
	validate, ok := validators[blockType]
	if !ok {
		return validationErrorf("unknown block type %q", blockType)
	}
	if len(content) == 0 {
		content = json.RawMessage(`{}`)
	}
	return validate(content)
}

func decode(content json.RawMessage, dst any, blockType string) error {
	if err := json.Unmarshal(content, dst); err != nil {
		return validationErrorf("malformed %s content: %v", blockType, err)
	}
	return nil
}

func validateLink(content json.RawMessage) error {
	var c LinkContent
	if err := decode(content, &c, TypeLink); err != nil {
		return err
	}
	if strings.TrimSpace(c.Title) == "" {
		return validationErrorf("link block requires a title")
	}
	if strings.TrimSpace(c.URL) == "" {
		return validationErrorf("link block requires a url")
	}
	return nil
}

func validateText(content json.RawMessage) error {
	var c TextContent
	if err := decode(content, &c, TypeText); err != nil {
		return err
	}
	if strings.TrimSpace(c.Text) == "" && strings.TrimSpace(c.Title) == "" {
		return validationErrorf("text block requires text or a title")
	}
	return nil
}

func validateMusic(content json.RawMessage) error {
	var c MusicContent
	if err := decode(content, &c, TypeMusic); err != nil {
		return err
	}
	for _, p := range c.Platforms {
		if strings.TrimSpace(p.Platform) == "" {
			return validationErrorf("music platform entry requires a platform id")
		}
	}
	return nil
}

func validatePricing(content json.RawMessage) error {
	var c PricingContent
	if err := decode(content, &c, TypePricing); err != nil {
		return err
	}
	if len(c.Plans) == 0 {
		return validationErrorf("pricing block requires at least one plan")
	}
	for _, p := range c.Plans {
		if strings.TrimSpace(p.Name) == "" && strings.TrimSpace(p.Price) == "" {
			return validationErrorf("pricing plan requires a name or a price")
		}
	}
	return nil
}

func validateSchedule(content json.RawMessage) error {
	var c ScheduleContent
	if err := decode(content, &c, TypeSchedule); err != nil {
		return err
	}
	if len(c.Schedule) == 0 {
		return validationErrorf("schedule block requires a schedule")
	}
	return nil
}

func validateSocialIcons(content json.RawMessage) error {
	var c SocialIconsContent
	if err := decode(content, &c, TypeSocialIcons); err != nil {
		return err
	}
	if len(c.Links) == 0 {
		return validationErrorf("social icons block requires at least one link")
	}
	for _, l := range c.Links {
		if strings.TrimSpace(l.Platform) == "" {
			return validationErrorf("social icon entry requires a platform id")
		}
	}
	return nil
}

func validateEmailSubscribe(content json.RawMessage) error {
	var c EmailSubscribeContent
	if err := decode(content, &c, TypeEmailSubscribe); err != nil {
		return err
	}
	if strings.TrimSpace(c.Title) == "" {
		return validationErrorf("email subscribe block requires a title")
	}
	return nil
}

func validateButton(content json.RawMessage) error {
	var c ButtonContent
	if err := decode(content, &c, TypeButton); err != nil {
		return err
	}
	if strings.TrimSpace(c.Title) == "" {
		return validationErrorf("button block requires a title")
	}
	if strings.TrimSpace(c.URL) == "" {
		return validationErrorf("button block requires a url")
	}
	return nil
}

func validateFAQ(content json.RawMessage) error {
	var c FAQContent
	if err := decode(content, &c, TypeFAQ); err != nil {
		return err
	}
	if len(c.Items) == 0 {
		return validationErrorf("faq block requires at least one item")
	}
	for _, item := range c.Items {
		if strings.TrimSpace(item.Question) == "" {
			return validationErrorf("faq item requires a question")
		}
	}
	return nil
}
