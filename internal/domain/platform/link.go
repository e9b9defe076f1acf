package platform

import "encoding/json"

// Link is one platform-tagged URL as stored inside block content and
// verification requests. Visible only matters for music platform lists:
// a platform can be known but hidden from the public renderer.
type Link struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Visible  bool   `json:"visible"`
}

// UnmarshalJSON defaults Visible to true when the field is absent,
// matching the frontend convention `visible !== false`.
func (l *Link) UnmarshalJSON(data []byte) error {
	type alias Link
	tmp := alias{Visible: true}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}
	*l = Link(tmp)
	return nil
}
