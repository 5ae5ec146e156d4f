package dto

import (
	"github.com/google/uuid"
)

// LookupRequest asks for display names in batch.
type LookupRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

// LookupResponse maps id to display name. IDs without a profile are left
// out; the caller decides its own fallback.
type LookupResponse struct {
	Names map[string]string `json:"names"`
}

type MeResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	Company     *string   `json:"company,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
}

type AvatarUploadRequest struct {
	ContentType string `json:"content_type"`
}

// AvatarUploadResponse carries a presigned PUT URL; the client uploads
// directly and then reads the avatar from the public URL.
type AvatarUploadResponse struct {
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
	Key       string `json:"key"`
}
