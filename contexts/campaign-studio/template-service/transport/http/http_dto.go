package http

import "time"

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RequestUploadRequest struct {
	Title    string `json:"title"`
	Niche    string `json:"niche"`
	FileName string `json:"file_name"`
}

type RequestUploadResponse struct {
	TemplateID string    `json:"template_id"`
	UploadURL  string    `json:"upload_url"`
	AssetPath  string    `json:"asset_path"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type TemplateDTO struct {
	TemplateID  string `json:"template_id"`
	UploaderID  string `json:"uploader_id"`
	Title       string `json:"title"`
	Niche       string `json:"niche"`
	AssetPath   string `json:"asset_path"`
	DownloadURL string `json:"download_url,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type ConfirmUploadResponse struct {
	Template      TemplateDTO `json:"template"`
	RewardCredits int         `json:"reward_credits"`
}

type TemplateListResponse struct {
	Items []TemplateDTO `json:"items"`
}
