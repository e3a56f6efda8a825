package handlers

import (
	"sync"

	"github.com/avanekar/PdfChatAPI/internal/chat"
	"github.com/avanekar/PdfChatAPI/internal/upload"
	"github.com/avanekar/PdfChatAPI/pkg/logger_i"
)

var (
	handlerInstance *ServiceHandler //private singleton
	once            sync.Once
	logRH           *logger_i.Logger
)

type ServiceHandler struct {
	uploadService *upload.Service
	chatService   *chat.Service
}

func InitServiceHandler(uploadService *upload.Service, chatService *chat.Service) {
	once.Do(func() {
		handlerInstance = &ServiceHandler{
			uploadService: uploadService,
			chatService:   chatService,
		}
		logRH = logger_i.NewLogger("RequestHandler")
		logRH.Info("Starting service handler")
	})
}
