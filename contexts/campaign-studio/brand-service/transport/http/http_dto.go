package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type UpsertBrandRequest struct {
	Name                string            `json:"brand_name"`
	PrimaryColor        string            `json:"primary_color"`
	Voice               string            `json:"brand_voice"`
	Mission             string            `json:"mission"`
	Tagline             string            `json:"tagline"`
	Industry            string            `json:"industry"`
	Description         string            `json:"description"`
	ContactFields       map[string]string `json:"contact_fields,omitempty"`
	ContactStripEnabled bool              `json:"contact_strip_enabled"`
}

type BrandResponse struct {
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
	UpdatedAt           string            `json:"updated_at"`
}
