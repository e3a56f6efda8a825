package store

import (
	"context"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/avanekar/PdfChatAPI/internal/config"
	"github.com/avanekar/PdfChatAPI/internal/data/dynamoStore"
	"github.com/avanekar/PdfChatAPI/internal/domain/chatModel"
	"github.com/avanekar/PdfChatAPI/pkg/logger_i"
)

type DynamoChatStore struct {
	store  *dynamoStore.Store
	logger *logger_i.Logger
}

func GetDynamoChatStore(ctx context.Context) *DynamoChatStore {
	inner := dynamoStore.GetDynamoStore(ctx)
	if inner == nil {
		return nil
	}
	return &DynamoChatStore{
		store:  inner,
		logger: logger_i.NewLogger("ChatStore"),
	}
}

// PutRecord inserts a fresh chat record. The condition expression keeps a
// generated-id collision from silently overwriting someone's record.
func (s *DynamoChatStore) PutRecord(ctx context.Context, record chatModel.ChatRecord) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "chat Id", record.ChatID)
	log.Debug("saving chat record")

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return &chatModel.StoreError{Op: "put", Err: err}
	}

	_, err = s.store.Client().PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.store.Table()),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(chat_id)"),
	})
	if err != nil {
		log.Error("Failed to save chat record", "error", err.Error())
		return &chatModel.StoreError{Op: "put", Err: err}
	}
	log.Debug("Saved chat record")
	return nil
}

// GetDocumentID returns the stored document id, or -1 when the record is
// missing, not yet ingested, or the lookup failed. Callers cannot tell
// those apart; the sentinel is the contract.
func (s *DynamoChatStore) GetDocumentID(ctx context.Context, chatID string) int {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "chat Id", chatID)
	log.Debug("resolving document id")

	out, err := s.store.Client().GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.store.Table()),
		Key:       chatKey(chatID),
	})
	if err != nil {
		log.Error("Failed to read chat record", "error", err.Error())
		return config.DocumentIDNotSet
	}
	if out.Item == nil {
		return config.DocumentIDNotSet
	}

	var record chatModel.ChatRecord
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		log.Error("Failed to unmarshal chat record", "error", err.Error())
		return config.DocumentIDNotSet
	}
	if record.DocumentID == 0 {
		//the attribute was absent entirely
		return config.DocumentIDNotSet
	}
	return record.DocumentID
}

// SetDocumentID updates exactly one attribute on an existing record and
// reports failure so the finalizer can surface it instead of leaving the
// record permanently pointing at nothing.
func (s *DynamoChatStore) SetDocumentID(ctx context.Context, chatID string, documentID int) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "chat Id", chatID)
	log.Debug("setting document id", "document id", documentID)

	_, err := s.store.Client().UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:        aws.String(s.store.Table()),
		Key:              chatKey(chatID),
		UpdateExpression: aws.String("SET document_id = :document_id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":document_id": &types.AttributeValueMemberN{Value: strconv.Itoa(documentID)},
		},
	})
	if err != nil {
		log.Error("Failed to set document id", "error", err.Error())
		return &chatModel.StoreError{Op: "update", Err: err}
	}
	log.Debug("Document id saved")
	return nil
}

// Exists checks by the (user_id, file_url) composite and defaults to
// false on any error.
func (s *DynamoChatStore) Exists(ctx context.Context, fileURL string, userID string) bool {
	out, err := s.store.Client().GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.store.Table()),
		Key: map[string]types.AttributeValue{
			"user_id":  &types.AttributeValueMemberS{Value: userID},
			"file_url": &types.AttributeValueMemberS{Value: fileURL},
		},
	})
	if err != nil {
		s.logger.Error("Exists check failed", "error", err.Error())
		return false
	}
	return out.Item != nil
}

func chatKey(chatID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"chat_id": &types.AttributeValueMemberS{Value: chatID},
	}
}

// TestChatStore exists so a faked dynamo client can be injected in tests.
func TestChatStore(inner *dynamoStore.Store) *DynamoChatStore {
	return &DynamoChatStore{
		store:  inner,
		logger: logger_i.NewLogger("test chat store"),
	}
}
