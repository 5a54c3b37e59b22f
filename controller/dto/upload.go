package dto

import "encoding/json"

// Joints is kept raw so the payload survives storage and retrieval
// byte-for-byte.
type SkeletonUploadRequestDTO struct {
	VideoName     string          `json:"video_name" binding:"required,min=1,max=255"`
	Joints        json.RawMessage `json:"joints" binding:"required"`
	FileExtension string          `json:"file_extension" binding:"required,max=16"`
}

type UploadURLResponseDTO struct {
	Bucket    string `json:"bucket"`
	ObjectKey string `json:"object_key"`
	UploadURL string `json:"upload_url"`
	VideoID   string `json:"video_id"`
}

type SkeletonResponseDTO struct {
	VideoID string          `json:"video_id"`
	Joints  json.RawMessage `json:"joints"`
}
