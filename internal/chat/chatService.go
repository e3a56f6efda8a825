package chat

import (
	"context"
	"fmt"

	"github.com/avanekar/PdfChatAPI/internal/config"
	"github.com/avanekar/PdfChatAPI/internal/domain/chatModel"
	"github.com/avanekar/PdfChatAPI/internal/metrics"
	"github.com/avanekar/PdfChatAPI/pkg/logger_i"
)

// Service resolves a chat's document id and proxies questions to the QA
// backend. It only ever reads the chat record; ingestion owns the write.
type Service struct {
	ChatStore   chatModel.ChatStore
	Transcripts chatModel.TranscriptStore
	Backend     chatModel.QAClient
	logger      *logger_i.Logger
}

type ServiceConfig struct {
	ChatStore   chatModel.ChatStore
	Transcripts chatModel.TranscriptStore
	Backend     chatModel.QAClient
}

func InitChatService(cfg ServiceConfig) *Service {
	return &Service{
		ChatStore:   cfg.ChatStore,
		Transcripts: cfg.Transcripts,
		Backend:     cfg.Backend,
		logger:      logger_i.NewLogger("ChatService"),
	}
}

// Ask answers a user message against the chat's document. A caller-supplied
// document id short-circuits the lookup table read entirely; zero means
// "resolve it for me". The sentinel -1 fails closed: a chat whose ingestion
// never completed is indistinguishable from one that never existed.
func (s *Service) Ask(ctx context.Context, chatID string, message string, documentID int) (string, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "chat Id", chatID)

	if message == "" || chatID == "" {
		return "", fmt.Errorf("%w: message and chat_id", chatModel.ErrValidation)
	}

	if documentID == 0 {
		documentID = s.ChatStore.GetDocumentID(ctx, chatID)
	}
	if documentID == config.DocumentIDNotSet {
		metrics.CountQuestion("not_found")
		log.Warn("No document id resolvable")
		return "", chatModel.ErrNotFound
	}

	answer, err := s.Backend.AskQuestion(ctx, message, documentID)
	if err != nil {
		metrics.CountQuestion("backend_error")
		return "", err
	}

	s.appendTranscript(ctx, chatID, chatModel.Message{Role: chatModel.RoleUser, Content: message})
	s.appendTranscript(ctx, chatID, chatModel.Message{Role: chatModel.RoleAssistant, Content: answer})

	metrics.CountQuestion("ok")
	return answer, nil
}

// ResolveDocument is the standalone lookup the chat page uses on load.
func (s *Service) ResolveDocument(ctx context.Context, chatID string) (int, error) {
	if chatID == "" {
		return 0, fmt.Errorf("%w: chat_id", chatModel.ErrValidation)
	}
	documentID := s.ChatStore.GetDocumentID(ctx, chatID)
	if documentID == config.DocumentIDNotSet {
		return 0, chatModel.ErrNotFound
	}
	return documentID, nil
}

func (s *Service) History(ctx context.Context, chatID string) ([]chatModel.Message, error) {
	if chatID == "" {
		return nil, fmt.Errorf("%w: chat_id", chatModel.ErrValidation)
	}
	return s.Transcripts.GetHistory(ctx, chatID)
}

func (s *Service) appendTranscript(ctx context.Context, chatID string, message chatModel.Message) {
	if err := s.Transcripts.AppendMessage(ctx, chatID, message); err != nil {
		s.logger.Warn("Could not cache transcript entry", "chat Id", chatID, "error", err.Error())
	}
}
