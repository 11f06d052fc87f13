package admin

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploader_LocalGuards(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()

	uploader := NewUploader(New(srv.URL + "/api"))

	t.Run("oversized file rejected before any request", func(t *testing.T) {
		oversized := bytes.Repeat([]byte("x"), 6*1024*1024)
		_, err := uploader.Upload(context.Background(), "big.jpg", oversized, "image/jpeg")
		var uploadErr UploadError
		require.ErrorAs(t, err, &uploadErr)
		assert.Contains(t, uploadErr.Reason, "5MB")
		assert.Equal(t, int32(0), requests.Load())
	})

	t.Run("non-image rejected before any request", func(t *testing.T) {
		_, err := uploader.Upload(context.Background(), "notes.txt", []byte("hello"), "text/plain")
		var uploadErr UploadError
		require.ErrorAs(t, err, &uploadErr)
		assert.Equal(t, int32(0), requests.Load())
	})
}

func TestUploader_Upload(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/admin/upload", r.URL.Path)
			require.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
			require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer file.Close()
			assert.Equal(t, "cover.png", header.Filename)

			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"success":true,"data":{"url":"https://cdn.example.com/cover.png","public_id":"uploads/cover.png"}}`)
		}))
		defer srv.Close()

		uploader := NewUploader(New(srv.URL+"/api", WithToken("tok-1")))
		asset, err := uploader.Upload(context.Background(), "cover.png", []byte("pngdata"), "image/png")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/cover.png", asset.URL)
		assert.Equal(t, "uploads/cover.png", asset.AssetID)
	})

	t.Run("2xx without url is still a failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"success":true,"data":{}}`)
		}))
		defer srv.Close()

		uploader := NewUploader(New(srv.URL + "/api"))
		_, err := uploader.Upload(context.Background(), "cover.png", []byte("pngdata"), "image/png")
		var uploadErr UploadError
		require.ErrorAs(t, err, &uploadErr)
	})

	t.Run("401 fires the hook", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		var hookFired atomic.Bool
		uploader := NewUploader(New(srv.URL+"/api", WithUnauthorizedHook(func() { hookFired.Store(true) })))
		_, err := uploader.Upload(context.Background(), "cover.png", []byte("pngdata"), "image/png")
		var authErr AuthError
		require.ErrorAs(t, err, &authErr)
		assert.True(t, hookFired.Load())
	})
}
