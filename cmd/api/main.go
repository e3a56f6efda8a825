// @title           PDF Chat API
// @version         1.0
// @description     Upload a PDF, then chat with it. The API presigns the S3 write, forwards ingestion to the QA backend, and proxies questions.
// @termsOfService  http://swagger.io/terms/

// @contact.name    API Support
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/avanekar/PdfChatAPI/internal/chat"
	"github.com/avanekar/PdfChatAPI/internal/config"
	"github.com/avanekar/PdfChatAPI/internal/data/store"
	"github.com/avanekar/PdfChatAPI/internal/domain/chatModel"
	"github.com/avanekar/PdfChatAPI/internal/handlers"
	"github.com/avanekar/PdfChatAPI/internal/objectstore"
	"github.com/avanekar/PdfChatAPI/internal/qabackend"
	"github.com/avanekar/PdfChatAPI/internal/server"
	"github.com/avanekar/PdfChatAPI/internal/upload"
	"github.com/avanekar/PdfChatAPI/pkg/logger_i"
)

var listenAddr string

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//lookup table; falls back to memory so local runs work without AWS
	var chatStore chatModel.ChatStore
	if dynamo := store.GetDynamoChatStore(serviceContext); dynamo != nil {
		chatStore = dynamo
	} else {
		logger.Error("DynamoDB is offline, chat records will not survive a restart")
		chatStore = store.InitInMemoryChatStore()
	}

	//transcript cache
	var transcripts chatModel.TranscriptStore
	if redisTranscripts := store.GetRedisTranscriptStore(serviceContext); redisTranscripts != nil {
		transcripts = redisTranscripts
	} else {
		logger.Error("Redis is offline, transcripts held in memory")
		transcripts = store.InitInMemoryTranscriptStore()
	}

	presigner := objectstore.GetS3Presigner(serviceContext)
	if presigner == nil {
		logger.Error("Object storage failed to initialize. Shutting down.")
		return
	}

	backend := qabackend.NewClient(config.BackendBaseURL())

	uploadService := upload.InitUploadService(upload.ServiceConfig{
		ChatStore:   chatStore,
		Transcripts: transcripts,
		Presigner:   presigner,
		Backend:     backend,
	})
	chatService := chat.InitChatService(chat.ServiceConfig{
		ChatStore:   chatStore,
		Transcripts: transcripts,
		Backend:     backend,
	})

	handlers.InitServiceHandler(uploadService, chatService)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
