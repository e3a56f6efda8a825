package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/dslipak/pdf"

	"github.com/avanekar/PdfChatAPI/internal/adapter/utils"
	"github.com/avanekar/PdfChatAPI/internal/config"
	"github.com/avanekar/PdfChatAPI/internal/domain/chatModel"
	"github.com/avanekar/PdfChatAPI/internal/metrics"
	"github.com/avanekar/PdfChatAPI/pkg/logger_i"
)

// Service owns the two halves of getting a document queryable: issuing
// the upload grant and finalizing ingestion once the bytes are in the
// bucket.
type Service struct {
	ChatStore   chatModel.ChatStore
	Transcripts chatModel.TranscriptStore
	Presigner   chatModel.ObjectPresigner
	Backend     chatModel.QAClient
	logger      *logger_i.Logger
}

type ServiceConfig struct {
	ChatStore   chatModel.ChatStore
	Transcripts chatModel.TranscriptStore
	Presigner   chatModel.ObjectPresigner
	Backend     chatModel.QAClient
}

func InitUploadService(cfg ServiceConfig) *Service {
	return &Service{
		ChatStore:   cfg.ChatStore,
		Transcripts: cfg.Transcripts,
		Presigner:   cfg.Presigner,
		Backend:     cfg.Backend,
		logger:      logger_i.NewLogger("UploadService"),
	}
}

type UploadGrant struct {
	PresignedURL string
	ChatID       string
}

// InitiateUpload allocates a chat id, records the pending chat record
// (document id unset), and returns the write grant. The record write
// happens first; if it fails, no presign is attempted and the caller
// gets nothing to upload against.
func (s *Service) InitiateUpload(ctx context.Context, fileName string, userID string) (UploadGrant, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "file", fileName)

	if fileName == "" {
		return UploadGrant{}, fmt.Errorf("%w: file_name", chatModel.ErrValidation)
	}

	fileURL := s.Presigner.FileURL(fileName)
	if s.ChatStore.Exists(ctx, fileURL, userID) {
		//duplicate names get a fresh chat anyway; each chat owns its own record
		log.Warn("File name already uploaded by this user", "user", userID)
	}

	chatID := utils.GetNewChatID()
	record := chatModel.NewChatRecord(chatID, userID, fileURL)
	if err := s.ChatStore.PutRecord(ctx, record); err != nil {
		log.Error("Failed to create chat record", "error", err.Error())
		return UploadGrant{}, err
	}

	url, err := s.Presigner.PresignWrite(ctx, fileName)
	if err != nil {
		return UploadGrant{}, err
	}

	if err := s.Transcripts.InitChat(ctx, chatID); err != nil {
		//transcripts are presentation data, not worth failing the upload over
		log.Warn("Could not initialize transcript", "chat Id", chatID, "error", err.Error())
	}

	metrics.IncrementUploadsInitiated()
	log.Info("Upload initiated", "chat Id", chatID)
	return UploadGrant{PresignedURL: url, ChatID: chatID}, nil
}

// Finalize forwards the uploaded bytes to the QA backend and persists
// the document id it assigns. A store failure here is propagated, not
// absorbed: absorbing it would leave the record pointing at nothing and
// the user finding out only on their first question.
func (s *Service) Finalize(ctx context.Context, chatID string, fileName string, file io.Reader) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "chat Id", chatID)

	if chatID == "" {
		return fmt.Errorf("%w: chat_id", chatModel.ErrValidation)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	if _, err := pdf.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
		log.Warn("Rejected non-PDF upload", "error", err.Error())
		metrics.CountIngestion("rejected")
		return fmt.Errorf("%w: only PDF files are allowed", chatModel.ErrValidation)
	}

	documentID, err := s.Backend.UploadDocument(ctx, fileName, bytes.NewReader(data))
	if err != nil {
		metrics.CountIngestion("backend_error")
		return err
	}

	if err := s.ChatStore.SetDocumentID(ctx, chatID, documentID); err != nil {
		log.Error("Backend ingested but record update failed", "document id", documentID, "error", err.Error())
		metrics.CountIngestion("store_error")
		return err
	}

	metrics.CountIngestion("ok")
	log.Info("Ingestion finalized", "document id", documentID)
	return nil
}
