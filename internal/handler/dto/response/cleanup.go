package response

type CleanupResponse struct {
	Success      bool   `json:"success"`
	DeletedCount int64  `json:"deletedCount"`
	Message      string `json:"message"`
}

func NewCleanupResponse(count int64, message string) *CleanupResponse {
	return &CleanupResponse{
		Success:      true,
		DeletedCount: count,
		Message:      message,
	}
}
