package adapter

import (
	"errors"
	"net/http"

	"github.com/avanekar/PdfChatAPI/internal/api"
	"github.com/avanekar/PdfChatAPI/internal/domain/chatModel"
)

func ToUploadInitResponse(presignedURL string, chatID string) api.UploadInitResponse {
	return api.UploadInitResponse{
		PresignedURL: presignedURL,
		ChatID:       chatID,
	}
}

func ToHistoryResponse(chatID string, messages []chatModel.Message) api.HistoryResponse {
	out := make([]api.MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, api.MessageResponse{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}
	return api.HistoryResponse{
		ChatID:   chatID,
		Messages: out,
	}
}

func BadRequest(code int, message string) api.ErrorResponse {
	return api.ErrorResponse{
		Error: api.OutgoingError{
			Code:    code,
			Message: message,
		},
	}
}

// ToErrorStatus maps a domain error to the HTTP status and message the
// UI shows as a toast. Upstream detail is passed through verbatim.
func ToErrorStatus(err error) (int, string) {
	var upstream *chatModel.UpstreamError
	var store *chatModel.StoreError

	switch {
	case errors.Is(err, chatModel.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, chatModel.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.As(err, &upstream):
		return http.StatusBadRequest, upstream.Detail
	case errors.As(err, &store):
		return http.StatusInternalServerError, "storage error"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
