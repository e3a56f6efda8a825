package upload_test

import (
	"context"
	"io"

	"github.com/avanekar/PdfChatAPI/internal/domain/chatModel"
)

// MockChatStore implements chatModel.ChatStore
type MockChatStore struct {
	OnPutRecord     func(ctx context.Context, record chatModel.ChatRecord) error
	OnGetDocumentID func(ctx context.Context, chatID string) int
	OnSetDocumentID func(ctx context.Context, chatID string, documentID int) error
	OnExists        func(ctx context.Context, fileURL string, userID string) bool

	PutCalls []chatModel.ChatRecord
	SetCalls int
}

func (m *MockChatStore) PutRecord(ctx context.Context, record chatModel.ChatRecord) error {
	m.PutCalls = append(m.PutCalls, record)
	if m.OnPutRecord != nil {
		return m.OnPutRecord(ctx, record)
	}
	return nil
}

func (m *MockChatStore) GetDocumentID(ctx context.Context, chatID string) int {
	if m.OnGetDocumentID != nil {
		return m.OnGetDocumentID(ctx, chatID)
	}
	return -1
}

func (m *MockChatStore) SetDocumentID(ctx context.Context, chatID string, documentID int) error {
	m.SetCalls++
	if m.OnSetDocumentID != nil {
		return m.OnSetDocumentID(ctx, chatID, documentID)
	}
	return nil
}

func (m *MockChatStore) Exists(ctx context.Context, fileURL string, userID string) bool {
	if m.OnExists != nil {
		return m.OnExists(ctx, fileURL, userID)
	}
	return false
}

// MockTranscripts implements chatModel.TranscriptStore
type MockTranscripts struct {
	InitCalls []string
	Appended  []chatModel.Message
}

func (m *MockTranscripts) InitChat(ctx context.Context, chatID string) error {
	m.InitCalls = append(m.InitCalls, chatID)
	return nil
}

func (m *MockTranscripts) AppendMessage(ctx context.Context, chatID string, message chatModel.Message) error {
	m.Appended = append(m.Appended, message)
	return nil
}

func (m *MockTranscripts) GetHistory(ctx context.Context, chatID string) ([]chatModel.Message, error) {
	return m.Appended, nil
}

// MockPresigner implements chatModel.ObjectPresigner
type MockPresigner struct {
	OnPresignWrite func(ctx context.Context, objectName string) (string, error)

	PresignCalls []string
}

func (m *MockPresigner) PresignWrite(ctx context.Context, objectName string) (string, error) {
	m.PresignCalls = append(m.PresignCalls, objectName)
	if m.OnPresignWrite != nil {
		return m.OnPresignWrite(ctx, objectName)
	}
	return "https://signed.example/" + objectName, nil
}

func (m *MockPresigner) FileURL(objectName string) string {
	return "https://test-bucket.s3.amazonaws.com/" + objectName
}

// MockBackend implements chatModel.QAClient
type MockBackend struct {
	OnUploadDocument func(ctx context.Context, fileName string, file io.Reader) (int, error)
	OnAskQuestion    func(ctx context.Context, question string, documentID int) (string, error)

	UploadCalls int
	AskCalls    int
}

func (m *MockBackend) UploadDocument(ctx context.Context, fileName string, file io.Reader) (int, error) {
	m.UploadCalls++
	if m.OnUploadDocument != nil {
		return m.OnUploadDocument(ctx, fileName, file)
	}
	return 42, nil
}

func (m *MockBackend) AskQuestion(ctx context.Context, question string, documentID int) (string, error) {
	m.AskCalls++
	if m.OnAskQuestion != nil {
		return m.OnAskQuestion(ctx, question, documentID)
	}
	return "mocked answer", nil
}
