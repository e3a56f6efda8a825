package api

// requests---------------------

type UploadInitRequest struct {
	FileName string `json:"file_name" validate:"required" example:"report.pdf"`
}

type AskRequest struct {
	Message string `json:"message" validate:"required" example:"Summarize this document"`
	ChatID  string `json:"chat_id" validate:"required" example:"chat_550"`
	//optional; when set the lookup table read is skipped
	DocumentID int `json:"document_id,omitempty" example:"42"`
}

type ResolveDocumentRequest struct {
	ChatID string `json:"chat_id" validate:"required" example:"chat_550"`
}

// responses---------------------

type UploadInitResponse struct {
	PresignedURL string `json:"presigned_url"`
	ChatID       string `json:"chat_id" example:"chat_550"`
}

type IngestResponse struct {
	Success bool `json:"success" example:"true"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}

type ResolveDocumentResponse struct {
	DocumentID int `json:"document_id" example:"42"`
}

type MessageResponse struct {
	Role    string `json:"role" example:"assistant"`
	Content string `json:"content"`
}

type HistoryResponse struct {
	ChatID   string            `json:"chat_id"`
	Messages []MessageResponse `json:"messages"`
}

type OutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"file_name is required"`
}

type ErrorResponse struct {
	Error OutgoingError `json:"error"`
}
