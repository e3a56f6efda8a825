package dynamoStore

import (
	"context"
	"sync"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/avanekar/PdfChatAPI/internal/config"
	"github.com/avanekar/PdfChatAPI/pkg/logger_i"
)

var (
	instance *Store
	mu       sync.Mutex
	logger   *logger_i.Logger
)

// API is the slice of the DynamoDB client the chat store uses. The real
// *dynamodb.Client satisfies it; tests substitute a fake.
type API interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type Store struct {
	client API
	table  string
}

// GetDynamoStore builds the shared client from the default AWS credential
// chain. Returns nil when configuration cannot be loaded so callers can
// fall back, mirroring the redis store behavior.
func GetDynamoStore(ctx context.Context) *Store {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance
	}
	if logger == nil {
		logger = logger_i.NewLogger("Dynamo Store")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(config.AWSRegion()))
	if err != nil {
		logger.Error("Could not load AWS config", "error", err.Error())
		return nil
	}

	instance = &Store{
		client: dynamodb.NewFromConfig(cfg),
		table:  config.UserFilesTable(),
	}
	logger.Info("Dynamo store init successfully", "table", instance.table)
	return instance
}

func (s *Store) Client() API {
	return s.client
}

func (s *Store) Table() string {
	return s.table
}

// NewTestStore exists so fakes can be injected in tests.
func NewTestStore(client API, table string) *Store {
	return &Store{
		client: client,
		table:  table,
	}
}
