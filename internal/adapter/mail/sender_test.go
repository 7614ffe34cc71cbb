package mail

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"enrollhub/internal/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func relayStub(t *testing.T, statusCode int, body string, capture **multipart.Form) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			require.NoError(t, r.ParseMultipartForm(32<<20))
			*capture = r.MultipartForm
		}
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(body))
	}))
}

func TestSendSuccess(t *testing.T) {
	var received *multipart.Form
	server := relayStub(t, http.StatusOK, `{"status":"success"}`, &received)
	defer server.Close()

	sender := NewHTTPSender(server.URL, 5*time.Second)
	payload := map[string]string{
		"firstName": "Asha",
		"formType":  "enrollment",
	}
	attachment := &wizard.Attachment{Filename: "resume.pdf", Content: []byte("%PDF-1.4")}

	status, err := sender.Send(context.Background(), payload, attachment)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, status)
	assert.True(t, status.Delivered())

	// Every payload entry arrives as a text part.
	require.NotNil(t, received)
	assert.Equal(t, []string{"Asha"}, received.Value["firstName"])
	assert.Equal(t, []string{"enrollment"}, received.Value["formType"])

	// The resume arrives as a file part, not a value.
	files := received.File["resume"]
	require.Len(t, files, 1)
	assert.Equal(t, "resume.pdf", files[0].Filename)
	file, err := files[0].Open()
	require.NoError(t, err)
	defer file.Close()
	content, err := io.ReadAll(file)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), content)
}

func TestSendWithoutAttachment(t *testing.T) {
	var received *multipart.Form
	server := relayStub(t, http.StatusOK, `{"status":"success"}`, &received)
	defer server.Close()

	sender := NewHTTPSender(server.URL, 5*time.Second)
	status, err := sender.Send(context.Background(), map[string]string{"firstName": "Asha"}, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, status)
	require.NotNil(t, received)
	assert.Empty(t, received.File)
}

func TestSendPartialCountsAsDelivered(t *testing.T) {
	server := relayStub(t, http.StatusOK, `{"status":"partial","message":"auto-reply failed"}`, nil)
	defer server.Close()

	sender := NewHTTPSender(server.URL, 5*time.Second)
	status, err := sender.Send(context.Background(), map[string]string{}, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusPartial, status)
	assert.True(t, status.Delivered())
}

func TestSendRelayRejection(t *testing.T) {
	server := relayStub(t, http.StatusOK, `{"status":"error","message":"smtp down"}`, nil)
	defer server.Close()

	sender := NewHTTPSender(server.URL, 5*time.Second)
	status, err := sender.Send(context.Background(), map[string]string{}, nil)
	require.Error(t, err)
	assert.Equal(t, StatusError, status)
	assert.False(t, status.Delivered())
	assert.Contains(t, err.Error(), "smtp down")
}

func TestSendNonOKStatus(t *testing.T) {
	server := relayStub(t, http.StatusBadGateway, "upstream error", nil)
	defer server.Close()

	sender := NewHTTPSender(server.URL, 5*time.Second)
	status, err := sender.Send(context.Background(), map[string]string{}, nil)
	require.Error(t, err)
	assert.Equal(t, StatusError, status)
}

func TestSendUnparsableResponse(t *testing.T) {
	server := relayStub(t, http.StatusOK, "<html>not json</html>", nil)
	defer server.Close()

	sender := NewHTTPSender(server.URL, 5*time.Second)
	status, err := sender.Send(context.Background(), map[string]string{}, nil)
	require.Error(t, err)
	assert.Equal(t, StatusError, status)
}

func TestSendUnreachableRelay(t *testing.T) {
	sender := NewHTTPSender("http://127.0.0.1:1", time.Second)
	status, err := sender.Send(context.Background(), map[string]string{}, nil)
	require.Error(t, err)
	assert.Equal(t, StatusError, status)
}
