package store

import (
	"context"
	"encoding/json"

	"github.com/avanekar/PdfChatAPI/internal/config"
	"github.com/avanekar/PdfChatAPI/internal/data/redisStore"
	"github.com/avanekar/PdfChatAPI/internal/domain/chatModel"
	"github.com/avanekar/PdfChatAPI/pkg/logger_i"
)

// RedisTranscriptStore caches the chat transcript as a redis list per
// chat id. Purely presentation data; every entry carries a TTL.
type RedisTranscriptStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisTranscriptStore(ctx context.Context) *RedisTranscriptStore {
	inner := redisStore.GetRedisStore(ctx, config.RedisTranscriptStore)
	if inner == nil {
		return nil
	}
	return &RedisTranscriptStore{
		store:  inner,
		logger: logger_i.NewLogger("TranscriptStore"),
	}
}

func (s *RedisTranscriptStore) InitChat(ctx context.Context, chatID string) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "chat Id", chatID)
	log.Debug("Initializing transcript")
	err := s.store.Del(ctx, chatID)
	if err != nil && !s.store.IsNil(err) {
		log.Error("Error clearing transcript", "error", err)
		return err
	}
	return nil
}

func (s *RedisTranscriptStore) AppendMessage(ctx context.Context, chatID string, message chatModel.Message) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "chat Id", chatID)

	data, err := json.Marshal(message)
	if err != nil {
		log.Error("Error marshalling message", "error", err)
		return err
	}
	if err := s.store.ListPush(ctx, chatID, data); err != nil {
		log.Error("Error saving message", "error", err)
		return err
	}
	//refresh the TTL on every append so an active chat never expires mid-session
	if err := s.store.Expire(ctx, chatID, config.RedisTranscriptTTL); err != nil {
		log.Error("Error refreshing transcript TTL", "error", err)
	}
	log.Debug("Saved message")
	return nil
}

func (s *RedisTranscriptStore) GetHistory(ctx context.Context, chatID string) ([]chatModel.Message, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "chat Id", chatID)
	log.Debug("Getting transcript")

	raw, err := s.store.ListGetTail(ctx, chatID, config.TranscriptTailSize)
	if err != nil {
		log.Error("Error getting transcript", "error", err)
		return nil, err
	}

	messages := make([]chatModel.Message, 0, len(raw))
	for _, entry := range raw {
		var m chatModel.Message
		if err := json.Unmarshal([]byte(entry), &m); err != nil {
			log.Error("Skipping malformed transcript entry", "error", err)
			continue
		}
		messages = append(messages, m)
	}
	return messages, nil
}

// TestTranscriptStore exists so miniredis-backed stores can be built in tests.
func TestTranscriptStore(inner *redisStore.Store) *RedisTranscriptStore {
	return &RedisTranscriptStore{
		store:  inner,
		logger: logger_i.NewLogger("test transcript store"),
	}
}
