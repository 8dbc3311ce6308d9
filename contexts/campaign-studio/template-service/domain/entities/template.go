package entities

import "time"

// TemplateStatus tracks the upload lifecycle. A template earns its uploader
// a reward exactly once, when it transitions to stored.
type TemplateStatus string

const (
	TemplateStatusPendingUpload TemplateStatus = "pending_upload"
	TemplateStatusStored        TemplateStatus = "stored"
)

type Template struct {
	TemplateID    string         `json:"template_id"`
	UploaderID    string         `json:"uploader_id"`
	Title         string         `json:"title"`
	Niche         string         `json:"niche"`
	AssetPath     string         `json:"asset_path"`
	Status        TemplateStatus `json:"status"`
	RewardGranted bool           `json:"reward_granted"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
