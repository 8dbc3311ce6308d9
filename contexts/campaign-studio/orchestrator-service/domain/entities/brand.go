package entities

import "strings"

// BrandSettings is the caller-supplied brand context. Read-only input to
// every stage that needs it; the pipeline never mutates it.
type BrandSettings struct {
	Name                string            `json:"name"`
	PrimaryColor        string            `json:"primary_color"`
	Voice               string            `json:"voice"`
	Mission             string            `json:"mission"`
	Tagline             string            `json:"tagline"`
	Industry            string            `json:"industry"`
	Description         string            `json:"description"`
	ContactFields       map[string]string `json:"contact_fields,omitempty"`
	ContactStripEnabled bool              `json:"contact_strip_enabled"`
}

// Empty reports whether the caller supplied no usable brand context, in
// which case the orchestrator falls back to the stored brand profile.
func (b BrandSettings) Empty() bool {
	return strings.TrimSpace(b.Name) == "" &&
		strings.TrimSpace(b.Description) == "" &&
		strings.TrimSpace(b.Industry) == ""
}
