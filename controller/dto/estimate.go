package dto

type ScoreUploadRequestDTO struct {
	Score string `json:"score" binding:"required,max=32"`
}

type ScoreResponseDTO struct {
	VideoID string `json:"video_id"`
	Score   string `json:"score"`
}
