package qabackend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/avanekar/PdfChatAPI/internal/config"
	"github.com/avanekar/PdfChatAPI/internal/customHttpClient"
	"github.com/avanekar/PdfChatAPI/internal/domain/chatModel"
	"github.com/avanekar/PdfChatAPI/internal/metrics"
	"github.com/avanekar/PdfChatAPI/pkg/logger_i"
)

// Client talks to the remote question-answering backend. The backend owns
// ingestion, embeddings and answering; we only move bytes and questions.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *logger_i.Logger
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    customHttpClient.GetClient(),
		logger:  logger_i.NewLogger("QA Backend"),
	}
}

// NewTestClient points at an httptest server with its own http.Client.
func NewTestClient(baseURL string, httpClient *http.Client) *Client {
	c := NewClient(baseURL)
	c.http = httpClient
	return c
}

type uploadResponse struct {
	ID int `json:"id"`
}

type questionRequest struct {
	Question   string `json:"question"`
	DocumentID int    `json:"document_id"`
}

type questionResponse struct {
	Answer string `json:"answer"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// UploadDocument forwards the PDF to the backend's ingestion endpoint and
// returns the document id the backend assigned.
func (c *Client) UploadDocument(ctx context.Context, fileName string, file io.Reader) (int, error) {
	log := c.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "file", fileName)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return 0, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return 0, err
	}
	if err := writer.Close(); err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+config.BackendUploadPath, &body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.CaptureExecutionMetrics("qa-backend", time.Since(start))
	if err != nil {
		log.Error("Ingestion call failed", "error", err.Error())
		return 0, err
	}
	defer closeBody(resp.Body, log)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, upstreamError(resp, log)
	}

	var data uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Error("Bad ingestion response", "error", err.Error())
		return 0, fmt.Errorf("decode ingestion response: %w", err)
	}
	log.Info("Document ingested", "document id", data.ID)
	return data.ID, nil
}

// AskQuestion forwards the question and returns the backend's answer
// verbatim.
func (c *Client) AskQuestion(ctx context.Context, question string, documentID int) (string, error) {
	log := c.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "document id", documentID)

	payload, err := json.Marshal(questionRequest{
		Question:   question,
		DocumentID: documentID,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+config.BackendQuestionPath, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.CaptureExecutionMetrics("qa-backend", time.Since(start))
	if err != nil {
		log.Error("Question call failed", "error", err.Error())
		return "", err
	}
	defer closeBody(resp.Body, log)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", upstreamError(resp, log)
	}

	var data questionResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		log.Error("Bad question response", "error", err.Error())
		return "", fmt.Errorf("decode question response: %w", err)
	}
	return data.Answer, nil
}

// upstreamError extracts the backend's own `detail` message so it reaches
// the user unchanged.
func upstreamError(resp *http.Response, log *logger_i.Logger) error {
	var data errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil || data.Detail == "" {
		data.Detail = resp.Status
	}
	log.Warn("Backend rejected request", "status", resp.StatusCode, "detail", data.Detail)
	return &chatModel.UpstreamError{
		StatusCode: resp.StatusCode,
		Detail:     data.Detail,
	}
}

func closeBody(body io.ReadCloser, log *logger_i.Logger) {
	if err := body.Close(); err != nil {
		log.Error("Couldn't close response body", "error", err)
	}
}
