package store

import (
	"context"
	"sync"

	"github.com/avanekar/PdfChatAPI/internal/domain/chatModel"
)

type InMemoryTranscriptStore struct {
	chatLock *sync.RWMutex
	chatMap  map[string][]chatModel.Message
}

func InitInMemoryTranscriptStore() *InMemoryTranscriptStore {
	return &InMemoryTranscriptStore{
		chatLock: new(sync.RWMutex),
		chatMap:  make(map[string][]chatModel.Message),
	}
}

func (store *InMemoryTranscriptStore) InitChat(ctx context.Context, chatID string) error {
	store.chatLock.Lock()
	defer store.chatLock.Unlock()
	store.chatMap[chatID] = make([]chatModel.Message, 0)
	return nil
}

func (store *InMemoryTranscriptStore) AppendMessage(ctx context.Context, chatID string, message chatModel.Message) error {
	store.chatLock.Lock()
	defer store.chatLock.Unlock()
	store.chatMap[chatID] = append(store.chatMap[chatID], message)
	return nil
}

func (store *InMemoryTranscriptStore) GetHistory(ctx context.Context, chatID string) ([]chatModel.Message, error) {
	store.chatLock.RLock()
	defer store.chatLock.RUnlock()
	history := store.chatMap[chatID]
	out := make([]chatModel.Message, len(history))
	copy(out, history)
	return out, nil
}
