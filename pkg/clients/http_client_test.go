package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestHTTPClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "yes", r.Header.Get("X-Test"))
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("body"))
	}))
	defer srv.Close()

	headers := http.Header{}
	headers.Set("X-Test", "yes")
	status, body, err := NewHTTPClient().Get(context.Background(), srv.URL, headers)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, status)
	assert.Equal(t, "body", string(body))
}

func TestHTTPClient_GetCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewHTTPClient().Get(ctx, srv.URL, nil)

	assert.Error(t, err)
}

func TestHTTPClient_SetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockHTTPClientI(ctrl)
	mock.EXPECT().Get(gomock.Any(), "http://profiles", gomock.Nil()).Return(http.StatusOK, []byte("[]"), nil)

	c := NewHTTPClient()
	c.SetClient(mock)
	status, body, err := c.Get(context.Background(), "http://profiles", nil)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "[]", string(body))
}
