package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/avanekar/PdfChatAPI/internal/adapter"
	"github.com/avanekar/PdfChatAPI/internal/adapter/utils"
	"github.com/avanekar/PdfChatAPI/internal/api"
	"github.com/avanekar/PdfChatAPI/internal/config"
)

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// UploadInitHandler godoc
// @Summary      Initiate a PDF upload
// @Description  Creates the chat record with the document id unset and returns a 60-second presigned PUT URL plus the new chat id.
// @Tags         Upload
// @Accept       json
// @Produce      json
// @Param        request  body      api.UploadInitRequest   true  "File name"
// @Success      200      {object}  api.UploadInitResponse  "Upload grant"
// @Failure      400      {object}  api.ErrorResponse       "Missing file name"
// @Failure      500      {object}  api.ErrorResponse       "Record creation failed"
// @Router       /upload-init [post]
func UploadInitHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	var requestData api.UploadInitRequest
	defer closeRequestBody(r.Body)
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		logRH.Warn("Bad upload-init request", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, "Bad Request")
		return
	}

	grant, err := handlerInstance.uploadService.InitiateUpload(r.Context(), requestData.FileName, config.DefaultUserID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToUploadInitResponse(grant.PresignedURL, grant.ChatID))
}

// IngestHandler godoc
// @Summary      Finalize ingestion of an uploaded PDF
// @Description  Receives the file via multipart/form-data, forwards it to the QA backend, and persists the document id the backend assigns.
// @Tags         Upload
// @Accept       multipart/form-data
// @Produce      json
// @Param        file     formData  file    true  "The PDF file"
// @Param        chat_id  formData  string  true  "Chat id from /upload-init"
// @Success      200  {object}  api.IngestResponse  "Ingestion complete"
// @Failure      400  {object}  api.ErrorResponse   "Missing fields, non-PDF file, or backend rejection"
// @Failure      500  {object}  api.ErrorResponse   "Record update failed"
// @Router       /ingest [post]
func IngestHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	if err := r.ParseMultipartForm(config.MaxUploadSize); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "File too large or bad request")
		return
	}

	chatID := r.FormValue("chat_id")
	if chatID == "" {
		WriteErrorResponse(w, http.StatusBadRequest, "chat_id is required")
		return
	}

	fileReader, fileMetadata, err := r.FormFile("file")
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Could not retrieve file")
		return
	}
	defer fileReader.Close()

	if err := handlerInstance.uploadService.Finalize(r.Context(), chatID, fileMetadata.Filename, fileReader); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, api.IngestResponse{Success: true})
}

// AskHandler godoc
// @Summary      Ask a question about an ingested document
// @Description  Resolves the document id (from the payload or the lookup table) and proxies the question to the QA backend.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      api.AskRequest     true  "Message, chat id, optional document id"
// @Success      200      {object}  api.AskResponse    "The backend's answer"
// @Failure      400      {object}  api.ErrorResponse  "Missing fields or backend rejection"
// @Failure      404      {object}  api.ErrorResponse  "No document id resolvable"
// @Router       /ask [post]
func AskHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	var requestData api.AskRequest
	defer closeRequestBody(r.Body)
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		logRH.Warn("Bad ask request", "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, "Bad Request")
		return
	}

	answer, err := handlerInstance.chatService.Ask(r.Context(), requestData.ChatID, requestData.Message, requestData.DocumentID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, api.AskResponse{Answer: answer})
}

// ResolveDocumentHandler godoc
// @Summary      Resolve the document id for a chat
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      api.ResolveDocumentRequest   true  "Chat id"
// @Success      200      {object}  api.ResolveDocumentResponse  "The stored document id"
// @Failure      404      {object}  api.ErrorResponse            "Record missing or ingestion incomplete"
// @Router       /resolve-document [post]
func ResolveDocumentHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	var requestData api.ResolveDocumentRequest
	defer closeRequestBody(r.Body)
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Bad Request")
		return
	}

	documentID, err := handlerInstance.chatService.ResolveDocument(r.Context(), requestData.ChatID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, api.ResolveDocumentResponse{DocumentID: documentID})
}

// ChatHistoryHandler godoc
// @Summary      Get the cached transcript for a chat
// @Tags         Chat
// @Produce      json
// @Param        chatID  path      string               true  "Chat id"
// @Success      200     {object}  api.HistoryResponse  "Transcript, oldest first"
// @Router       /chat-history/{chatID} [get]
func ChatHistoryHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	chatID := utils.GetChiURLParam(r, "chatID")
	messages, err := handlerInstance.chatService.History(r.Context(), chatID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToHistoryResponse(chatID, messages))
}

func closeRequestBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		logRH.Error("Couldn't close the request body", "error", err)
	}
}
