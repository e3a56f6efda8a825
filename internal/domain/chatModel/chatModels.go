package chatModel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatRecord is the persisted row tying a chat session to an uploaded
// document. Created once at upload initiation with DocumentID unset,
// mutated exactly once by the ingestion finalizer, never deleted.
type ChatRecord struct {
	ChatID     string `json:"chat_id" dynamodbav:"chat_id"`
	UserID     string `json:"user_id" dynamodbav:"user_id"`
	FileURL    string `json:"file_url" dynamodbav:"file_url"`
	DocumentID int    `json:"document_id" dynamodbav:"document_id"`
	Timestamp  int64  `json:"timestamp" dynamodbav:"timestamp"`
}

func NewChatRecord(chatID string, userID string, fileURL string) ChatRecord {
	return ChatRecord{
		ChatID:     chatID,
		UserID:     userID,
		FileURL:    fileURL,
		DocumentID: -1,
		Timestamp:  time.Now().UnixMilli(),
	}
}

// Message is a single transcript entry. Transcripts are presentation
// data, cached with a TTL and safe to lose.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type ChatStore interface {
	PutRecord(ctx context.Context, record ChatRecord) error
	GetDocumentID(ctx context.Context, chatID string) int
	SetDocumentID(ctx context.Context, chatID string, documentID int) error
	Exists(ctx context.Context, fileURL string, userID string) bool
}

type TranscriptStore interface {
	InitChat(ctx context.Context, chatID string) error
	AppendMessage(ctx context.Context, chatID string, message Message) error
	GetHistory(ctx context.Context, chatID string) ([]Message, error)
}

type ObjectPresigner interface {
	PresignWrite(ctx context.Context, objectName string) (string, error)
	FileURL(objectName string) string
}

type QAClient interface {
	UploadDocument(ctx context.Context, fileName string, file io.Reader) (int, error)
	AskQuestion(ctx context.Context, question string, documentID int) (string, error)
}

var (
	ErrValidation = errors.New("missing required field")
	ErrNotFound   = errors.New("document not found")
)

// StoreError wraps a failed lookup table write so callers can react
// instead of discovering the gap later as a missing document id.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("chat store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// UpstreamError carries the QA backend's own detail message verbatim.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("qa backend returned %d: %s", e.StatusCode, e.Detail)
}
