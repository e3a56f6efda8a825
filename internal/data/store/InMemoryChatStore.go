package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/avanekar/PdfChatAPI/internal/config"
	"github.com/avanekar/PdfChatAPI/internal/domain/chatModel"
	"github.com/avanekar/PdfChatAPI/pkg/logger_i"
)

var inMemLogger = logger_i.NewLogger("InMem ChatStore")

// InMemoryChatStore keeps chat records in a map. It backs local runs and
// tests when DynamoDB is unreachable; records do not survive a restart.
type InMemoryChatStore struct {
	recordMutex *sync.RWMutex
	recordMap   map[string]chatModel.ChatRecord
}

func InitInMemoryChatStore() *InMemoryChatStore {
	return &InMemoryChatStore{
		recordMutex: new(sync.RWMutex),
		recordMap:   make(map[string]chatModel.ChatRecord),
	}
}

func (store *InMemoryChatStore) PutRecord(ctx context.Context, record chatModel.ChatRecord) error {
	store.recordMutex.Lock()
	defer store.recordMutex.Unlock()
	if _, exists := store.recordMap[record.ChatID]; exists {
		return &chatModel.StoreError{Op: "put", Err: fmt.Errorf("chat id %s already exists", record.ChatID)}
	}
	store.recordMap[record.ChatID] = record
	inMemLogger.Info(record.ChatID, " : Saved chat record to store")
	return nil
}

func (store *InMemoryChatStore) GetDocumentID(ctx context.Context, chatID string) int {
	store.recordMutex.RLock()
	defer store.recordMutex.RUnlock()
	record, found := store.recordMap[chatID]
	if !found {
		return config.DocumentIDNotSet
	}
	return record.DocumentID
}

func (store *InMemoryChatStore) SetDocumentID(ctx context.Context, chatID string, documentID int) error {
	store.recordMutex.Lock()
	defer store.recordMutex.Unlock()
	record, found := store.recordMap[chatID]
	if !found {
		return &chatModel.StoreError{Op: "update", Err: fmt.Errorf("chat id %s not found", chatID)}
	}
	record.DocumentID = documentID
	store.recordMap[chatID] = record
	return nil
}

func (store *InMemoryChatStore) Exists(ctx context.Context, fileURL string, userID string) bool {
	store.recordMutex.RLock()
	defer store.recordMutex.RUnlock()
	for _, record := range store.recordMap {
		if record.FileURL == fileURL && record.UserID == userID {
			return true
		}
	}
	return false
}
