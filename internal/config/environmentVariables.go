package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	NoAuthBypass = true //set false once a real token is issued to the frontend
	AuthToken    = ""

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 30 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//TODO: resolve the real user from a session once auth lands
	DefaultUserID = "1"

	//object storage
	PresignExpiry     = 60 * time.Second
	MaxUploadSize     = 32 << 20 //32mb
	DefaultBucketName = "pdf-chat-uploads"
	DefaultAWSRegion  = "us-east-1"

	//lookup table
	DefaultUserFilesTable = "user_files"
	//sentinel meaning "ingestion not yet completed"
	DocumentIDNotSet = -1

	//QA backend
	DefaultBackendBaseURL = "http://localhost:8000"
	BackendUploadPath     = "/api/v1/documents/upload/"
	BackendQuestionPath   = "/api/v1/documents/question/"
	BackendCallTimeout    = 120 * time.Second

	//outbound connection pooling
	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost     = "127.0.0.1"
	redisPort     = "6379"
	RedisAddr     = redisHost + ":" + redisPort
	RedisPassword = ""

	//redis has 16 DB we can use
	RedisTranscriptStore = 0

	//chat transcripts are presentation data, ok to expire
	RedisTranscriptTTL = 24 * time.Hour
	TranscriptTailSize = 50
)

// env reads happen at client-construction sites; these helpers keep the
// fallbacks in one place

func BucketName() string {
	return getEnvOr("AWS_BUCKET_NAME", DefaultBucketName)
}

func AWSRegion() string {
	return getEnvOr("AWS_BUCKET_REGION", DefaultAWSRegion)
}

func UserFilesTable() string {
	return getEnvOr("AWS_DYNAMODB_USER_FILES_TABLE", DefaultUserFilesTable)
}

func BackendBaseURL() string {
	return getEnvOr("BASE_APP_URL", DefaultBackendBaseURL)
}

func getEnvOr(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
