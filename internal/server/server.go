package server

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/avanekar/PdfChatAPI/internal/adapter/utils"
	"github.com/avanekar/PdfChatAPI/internal/config"
	"github.com/avanekar/PdfChatAPI/internal/middleware"
	"github.com/avanekar/PdfChatAPI/internal/web"
	"github.com/avanekar/PdfChatAPI/pkg/logger_i"
)

var (
	server  *http.Server
	_logger *logger_i.Logger
)

type ShutdownParams struct {
	GracefulShutdown chan os.Signal
	StopExecution    chan bool
	CloseServices    context.CancelFunc
}

func CreateServer(listenAddr string) {
	_logger = logger_i.NewLogger("Server")

	r := utils.GetRouter()

	r.Router.Get("/healthz", middleware.GetHandler)

	//API consumed by the UI
	r.Router.Post("/upload-init", middleware.UploadInitHandler)
	r.Router.Post("/ingest", middleware.IngestHandler)
	r.Router.Post("/ask", middleware.AskHandler)
	r.Router.Post("/resolve-document", middleware.ResolveDocumentHandler)
	r.Router.Get("/chat-history/{chatID}", middleware.ChatHistoryHandler)

	//presentation pages, no auth or business rules
	r.Router.Get("/", web.HomePageHandler)
	r.Router.Get("/chat/{chatID}", web.ChatPageHandler)

	server = &http.Server{
		Addr:         listenAddr,
		Handler:      r.Router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	_logger.Info("Server is listening at", "address", listenAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		_logger.Error("Server crashed", "error :", err.Error(), "addr", listenAddr)
	}
}

func ShutDownHandler(shutdownParams ShutdownParams) {
	state := <-shutdownParams.GracefulShutdown
	println("\nServer is shutting down", state)

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownContextTimeout)
	defer cancel()

	done := make(chan struct{})

	go func() {
		server.SetKeepAlivesEnabled(false)

		if err := server.Shutdown(ctx); err != nil {
			_logger.Error("Could not shutdown gracefully", "error", err)
		}

		shutdownParams.CloseServices()
		close(shutdownParams.StopExecution)
		close(done)
	}()

	select {
	case <-done:
		_logger.Info("Gracefully shut down")
	case <-ctx.Done():
		_logger.Info("Force Shut down")
		os.Exit(1)
	}
}
