package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/avanekar/PdfChatAPI/internal/api"
	"github.com/avanekar/PdfChatAPI/internal/chat"
	"github.com/avanekar/PdfChatAPI/internal/config"
	"github.com/avanekar/PdfChatAPI/internal/data/store"
	"github.com/avanekar/PdfChatAPI/internal/handlers"
	"github.com/avanekar/PdfChatAPI/internal/middleware"
	"github.com/avanekar/PdfChatAPI/internal/qabackend"
	"github.com/avanekar/PdfChatAPI/internal/upload"
)

// backendCalls counts hits on the fake QA backend across the whole test
// binary; individual tests snapshot it before and after.
var backendCalls atomic.Int64

// ipCounter hands each request its own source address so the per-ip rate
// limiter never throttles the suite.
var ipCounter atomic.Int64

func nextRemoteAddr() string {
	n := ipCounter.Add(1)
	return fmt.Sprintf("10.0.%d.%d:4321", n/250, n%250)
}

// stubPresigner implements chatModel.ObjectPresigner without AWS.
type stubPresigner struct{}

func (stubPresigner) PresignWrite(ctx context.Context, objectName string) (string, error) {
	return "https://test-bucket.s3.amazonaws.com/" + objectName + "?signed", nil
}

func (stubPresigner) FileURL(objectName string) string {
	return "https://test-bucket.s3.amazonaws.com/" + objectName
}

var (
	routerOnce   sync.Once
	sharedRouter *chi.Mux
)

// newTestRouter wires the real middleware-wrapped handlers against
// in-memory stores and a fake QA backend, the same shape main builds.
// The service handler is a process-wide singleton, so the wiring is
// built once and shared by every test in the binary.
func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	routerOnce.Do(func() {
		backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			backendCalls.Add(1)
			w.Header().Set("Content-Type", "application/json")
			switch r.URL.Path {
			case config.BackendUploadPath:
				json.NewEncoder(w).Encode(map[string]int{"id": 42})
			case config.BackendQuestionPath:
				json.NewEncoder(w).Encode(map[string]string{"answer": "It is a quarterly report."})
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))

		chatStore := store.InitInMemoryChatStore()
		transcripts := store.InitInMemoryTranscriptStore()
		qaClient := qabackend.NewTestClient(backend.URL, backend.Client())

		uploadService := upload.InitUploadService(upload.ServiceConfig{
			ChatStore:   chatStore,
			Transcripts: transcripts,
			Presigner:   stubPresigner{},
			Backend:     qaClient,
		})
		chatService := chat.InitChatService(chat.ServiceConfig{
			ChatStore:   chatStore,
			Transcripts: transcripts,
			Backend:     qaClient,
		})
		handlers.InitServiceHandler(uploadService, chatService)

		sharedRouter = chi.NewRouter()
		sharedRouter.Post("/upload-init", middleware.UploadInitHandler)
		sharedRouter.Post("/ingest", middleware.IngestHandler)
		sharedRouter.Post("/ask", middleware.AskHandler)
		sharedRouter.Post("/resolve-document", middleware.ResolveDocumentHandler)
		sharedRouter.Get("/chat-history/{chatID}", middleware.ChatHistoryHandler)
		sharedRouter.Get("/healthz", middleware.GetHandler)
	})
	return sharedRouter
}

func postJSON(t *testing.T, router *chi.Mux, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = nextRemoteAddr()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func pdfBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>\nendobj\n",
	}
	offsets := make([]int, 0, len(objects))
	for _, obj := range objects {
		offsets = append(offsets, buf.Len())
		buf.WriteString(obj)
	}

	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefStart)
	return buf.Bytes()
}

func ingestFile(t *testing.T, router *chi.Mux, chatID string, fileName string, fileContent []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("chat_id", chatID); err != nil {
		t.Fatalf("write chat_id field: %v", err)
	}
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create file part: %v", err)
	}
	if _, err := part.Write(fileContent); err != nil {
		t.Fatalf("write file part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/ingest", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.RemoteAddr = nextRemoteAddr()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUploadThenAskFlow(t *testing.T) {
	router := newTestRouter(t)

	initRec := postJSON(t, router, "/upload-init", api.UploadInitRequest{FileName: "report.pdf"})
	if initRec.Code != http.StatusOK {
		t.Fatalf("upload-init returned %d: %s", initRec.Code, initRec.Body.String())
	}
	grant := decodeJSON[api.UploadInitResponse](t, initRec)
	if grant.ChatID == "" {
		t.Fatal("upload-init returned no chat id")
	}

	ingestRec := ingestFile(t, router, grant.ChatID, "report.pdf", pdfBytes(t))
	if ingestRec.Code != http.StatusOK {
		t.Fatalf("ingest returned %d: %s", ingestRec.Code, ingestRec.Body.String())
	}

	resolveRec := postJSON(t, router, "/resolve-document", api.ResolveDocumentRequest{ChatID: grant.ChatID})
	if resolveRec.Code != http.StatusOK {
		t.Fatalf("resolve-document returned %d: %s", resolveRec.Code, resolveRec.Body.String())
	}
	resolved := decodeJSON[api.ResolveDocumentResponse](t, resolveRec)
	if resolved.DocumentID != 42 {
		t.Errorf("expected document id 42, got %d", resolved.DocumentID)
	}

	askRec := postJSON(t, router, "/ask", api.AskRequest{ChatID: grant.ChatID, Message: "What is this document?"})
	if askRec.Code != http.StatusOK {
		t.Fatalf("ask returned %d: %s", askRec.Code, askRec.Body.String())
	}
	answer := decodeJSON[api.AskResponse](t, askRec)
	if answer.Answer != "It is a quarterly report." {
		t.Errorf("answer must reach the caller verbatim, got %q", answer.Answer)
	}

	historyReq := httptest.NewRequest(http.MethodGet, "/chat-history/"+grant.ChatID, nil)
	historyReq.RemoteAddr = nextRemoteAddr()
	historyRec := httptest.NewRecorder()
	router.ServeHTTP(historyRec, historyReq)
	if historyRec.Code != http.StatusOK {
		t.Fatalf("chat-history returned %d: %s", historyRec.Code, historyRec.Body.String())
	}
	history := decodeJSON[api.HistoryResponse](t, historyRec)
	if len(history.Messages) != 2 {
		t.Errorf("expected user and assistant transcript entries, got %d", len(history.Messages))
	}
}

func TestAskUnknownChat(t *testing.T) {
	router := newTestRouter(t)

	before := backendCalls.Load()
	rec := postJSON(t, router, "/ask", api.AskRequest{ChatID: "chat_never_created", Message: "Hello?"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an unknown chat, got %d: %s", rec.Code, rec.Body.String())
	}
	if backendCalls.Load() != before {
		t.Error("the backend must never be called for an unresolvable chat")
	}
}

func TestIngestRejectsNonPDF(t *testing.T) {
	router := newTestRouter(t)

	initRec := postJSON(t, router, "/upload-init", api.UploadInitRequest{FileName: "notes.txt"})
	grant := decodeJSON[api.UploadInitResponse](t, initRec)

	before := backendCalls.Load()
	rec := ingestFile(t, router, grant.ChatID, "notes.txt", []byte("just plain text"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a non-PDF upload, got %d: %s", rec.Code, rec.Body.String())
	}
	if backendCalls.Load() != before {
		t.Error("rejected files must not reach the backend")
	}
}

func TestUploadInitValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/upload-init", api.UploadInitRequest{FileName: ""})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a missing file name, got %d", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.RemoteAddr = nextRemoteAddr()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz returned %d", rec.Code)
	}
}
