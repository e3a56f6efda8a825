package chat_test

import (
	"context"
	"io"

	"github.com/avanekar/PdfChatAPI/internal/domain/chatModel"
)

// MockChatStore implements chatModel.ChatStore; the chat service should
// only ever hit GetDocumentID.
type MockChatStore struct {
	OnGetDocumentID func(ctx context.Context, chatID string) int

	GetCalls int
	SetCalls int
}

func (m *MockChatStore) PutRecord(ctx context.Context, record chatModel.ChatRecord) error {
	return nil
}

func (m *MockChatStore) GetDocumentID(ctx context.Context, chatID string) int {
	m.GetCalls++
	if m.OnGetDocumentID != nil {
		return m.OnGetDocumentID(ctx, chatID)
	}
	return -1
}

func (m *MockChatStore) SetDocumentID(ctx context.Context, chatID string, documentID int) error {
	m.SetCalls++
	return nil
}

func (m *MockChatStore) Exists(ctx context.Context, fileURL string, userID string) bool {
	return false
}

// MockTranscripts implements chatModel.TranscriptStore
type MockTranscripts struct {
	Appended []chatModel.Message
}

func (m *MockTranscripts) InitChat(ctx context.Context, chatID string) error {
	return nil
}

func (m *MockTranscripts) AppendMessage(ctx context.Context, chatID string, message chatModel.Message) error {
	m.Appended = append(m.Appended, message)
	return nil
}

func (m *MockTranscripts) GetHistory(ctx context.Context, chatID string) ([]chatModel.Message, error) {
	return m.Appended, nil
}

// MockBackend implements chatModel.QAClient
type MockBackend struct {
	OnAskQuestion func(ctx context.Context, question string, documentID int) (string, error)

	AskCalls       int
	LastDocumentID int
}

func (m *MockBackend) UploadDocument(ctx context.Context, fileName string, file io.Reader) (int, error) {
	return 0, nil
}

func (m *MockBackend) AskQuestion(ctx context.Context, question string, documentID int) (string, error) {
	m.AskCalls++
	m.LastDocumentID = documentID
	if m.OnAskQuestion != nil {
		return m.OnAskQuestion(ctx, question, documentID)
	}
	return "mocked answer", nil
}
