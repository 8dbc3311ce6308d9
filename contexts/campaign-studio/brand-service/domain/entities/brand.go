package entities

import "time"

// BrandProfile is one user's stored brand settings, applied to every
// campaign the user generates unless the request overrides them.
type BrandProfile struct {
	UserID              string            `json:"user_id"`
	Name                string            `json:"brand_name"`
	PrimaryColor        string            `json:"primary_color"`
	Voice               string            `json:"brand_voice"`
	Mission             string            `json:"mission"`
	Tagline             string            `json:"tagline"`
	Industry            string            `json:"industry"`
	Description         string            `json:"description"`
	ContactFields       map[string]string `json:"contact_fields,omitempty"`
	ContactStripEnabled bool              `json:"contact_strip_enabled"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}
