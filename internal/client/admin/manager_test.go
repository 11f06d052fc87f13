package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"locotraq/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id, name string) entities.Product {
	return entities.Product{
		ID:               id,
		ProductName:      name,
		Category:         "gps-trackers",
		Subcategory:      "vehicle",
		ShortDescription: "Compact tracker",
		Description:      "Compact GPS tracker with OBD-II plug.",
		Price:            129.90,
		OriginalPrice:    159.90,
		StockQuantity:    25,
		Brand:            "Locotraq",
		Features:         []string{"4G LTE"},
		Specifications:   map[string]string{"battery": "90 days"},
		Image:            "https://cdn.example.com/p/" + id + ".jpg",
		ImagePublicID:    "uploads/" + id + ".jpg",
	}
}

func newProductManager(t *testing.T, baseURL string, opts ...Option) *Manager[entities.Product] {
	t.Helper()
	client := New(baseURL, opts...)
	return NewManager(client, ManagerConfig[entities.Product]{
		Collection: "/admin/products",
		ApplyAsset: func(p entities.Product, a Asset) entities.Product {
			p.Image = a.URL
			p.ImagePublicID = a.AssetID
			return p
		},
	})
}

func TestManager_List(t *testing.T) {
	t.Run("envelope with underscore ids", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/api/admin/products", r.URL.Path)
			fmt.Fprint(w, `{"success":true,"data":[{"_id":"p1","productName":"Alpha"},{"_id":"p2","productName":"Beta"}]}`)
		}))
		defer srv.Close()

		mgr := newProductManager(t, srv.URL+"/api")
		items, err := mgr.List(context.Background(), false)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "p1", items[0].ID)
		assert.Equal(t, "p2", items[1].ID)
	})

	t.Run("bare array", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"id":"p1","productName":"Alpha"}]`)
		}))
		defer srv.Close()

		mgr := newProductManager(t, srv.URL+"/api")
		items, err := mgr.List(context.Background(), false)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "p1", items[0].ID)
	})

	t.Run("idempotent", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"id":"p1"},{"id":"p2"},{"id":"p3"}]`)
		}))
		defer srv.Close()

		mgr := newProductManager(t, srv.URL+"/api")
		first, err := mgr.List(context.Background(), false)
		require.NoError(t, err)
		second, err := mgr.List(context.Background(), false)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("notify once unless forced", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[]`)
		}))
		defer srv.Close()

		var notifications int32
		client := New(srv.URL + "/api")
		mgr := NewManager(client, ManagerConfig[entities.Product]{
			Collection: "/admin/products",
			Notify:     func(string) { atomic.AddInt32(&notifications, 1) },
		})

		_, err := mgr.List(context.Background(), false)
		require.NoError(t, err)
		_, err = mgr.List(context.Background(), false)
		require.NoError(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&notifications))

		_, err = mgr.List(context.Background(), true)
		require.NoError(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(&notifications))
	})

	t.Run("non-2xx is FetchFailed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		mgr := newProductManager(t, srv.URL+"/api")
		_, err := mgr.List(context.Background(), false)
		var fetchErr FetchFailedError
		require.ErrorAs(t, err, &fetchErr)
		assert.Equal(t, http.StatusInternalServerError, fetchErr.Status)
	})
}

func TestManager_Unauthorized(t *testing.T) {
	var unauthorized atomic.Bool
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `[{"id":"p1"},{"id":"p2"}]`)
	}))
	defer srv.Close()

	mgr := newProductManager(t, srv.URL+"/api", WithUnauthorizedHook(func() { unauthorized.Store(true) }))

	before, err := mgr.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, before, 2)

	fail.Store(true)
	_, err = mgr.List(context.Background(), false)
	var authErr AuthError
	require.ErrorAs(t, err, &authErr)
	assert.True(t, unauthorized.Load())
	assert.Equal(t, before, mgr.State(), "failed call must not mutate state")
}

func TestManager_Create(t *testing.T) {
	t.Run("prepends exactly once", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				fmt.Fprint(w, `[{"id":"p1"},{"id":"p2"}]`)
				return
			}
			var p entities.Product
			require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
			p.ID = "p3"
			w.WriteHeader(http.StatusCreated)
			require.NoError(t, json.NewEncoder(w).Encode(map[string]any{"success": true, "data": p}))
		}))
		defer srv.Close()

		mgr := newProductManager(t, srv.URL+"/api")
		_, err := mgr.List(context.Background(), false)
		require.NoError(t, err)

		created, err := mgr.Create(context.Background(), testProduct("", "Gamma"), nil)
		require.NoError(t, err)
		assert.Equal(t, "p3", created.ID)

		state := mgr.State()
		require.Len(t, state, 3)
		assert.Equal(t, "p3", state[0].ID)
		count := 0
		for _, item := range state {
			if item.ID == "p3" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("validation order reports first missing field", func(t *testing.T) {
		var requests atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
		}))
		defer srv.Close()

		mgr := newProductManager(t, srv.URL+"/api")
		draft := testProduct("", "")
		draft.Category = ""

		_, err := mgr.Create(context.Background(), draft, nil)
		var ve *entities.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "productName", ve.Field)
		assert.Equal(t, int32(0), requests.Load(), "validation must fail before any request")
	})

	t.Run("server error message surfaces", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprint(w, `{"success":false,"code":"VALIDATION_ERROR","error":"price out of range"}`)
		}))
		defer srv.Close()

		mgr := newProductManager(t, srv.URL+"/api")
		_, err := mgr.Create(context.Background(), testProduct("", "Gamma"), nil)
		var serverErr ServerError
		require.ErrorAs(t, err, &serverErr)
		assert.Equal(t, "price out of range", serverErr.Error())
	})

	t.Run("image upload precedes the post", func(t *testing.T) {
		var order []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			order = append(order, r.Method+" "+r.URL.Path)
			switch r.URL.Path {
			case "/api/admin/upload":
				fmt.Fprint(w, `{"success":true,"data":{"url":"https://cdn.example.com/new.jpg","public_id":"uploads/new.jpg"}}`)
			case "/api/admin/products":
				var p entities.Product
				require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
				assert.Equal(t, "https://cdn.example.com/new.jpg", p.Image)
				p.ID = "p9"
				require.NoError(t, json.NewEncoder(w).Encode(p))
			}
		}))
		defer srv.Close()

		mgr := newProductManager(t, srv.URL+"/api")
		image := &Image{Filename: "new.jpg", Content: []byte("jpegdata"), ContentType: "image/jpeg"}
		_, err := mgr.Create(context.Background(), testProduct("", "Gamma"), image)
		require.NoError(t, err)
		require.Equal(t, []string{"POST /api/admin/upload", "POST /api/admin/products"}, order)
	})

	t.Run("attached file satisfies the image requirement", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/api/admin/upload":
				fmt.Fprint(w, `{"success":true,"data":{"url":"https://cdn.example.com/fresh.jpg","public_id":"uploads/fresh.jpg"}}`)
			case "/api/admin/products":
				var p entities.Product
				require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
				assert.Equal(t, "https://cdn.example.com/fresh.jpg", p.Image)
				assert.Equal(t, "uploads/fresh.jpg", p.ImagePublicID)
				p.ID = "p10"
				w.WriteHeader(http.StatusCreated)
				require.NoError(t, json.NewEncoder(w).Encode(p))
			}
		}))
		defer srv.Close()

		mgr := newProductManager(t, srv.URL+"/api")
		draft := testProduct("", "Gamma")
		draft.Image = ""
		draft.ImagePublicID = ""
		image := &Image{Filename: "fresh.jpg", Content: []byte("jpegdata"), ContentType: "image/jpeg"}

		created, err := mgr.Create(context.Background(), draft, image)
		require.NoError(t, err)
		assert.Equal(t, "p10", created.ID)
		assert.Equal(t, "https://cdn.example.com/fresh.jpg", created.Image)
	})

	t.Run("other fields still fail fast with an attached file", func(t *testing.T) {
		var requests atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests.Add(1)
		}))
		defer srv.Close()

		mgr := newProductManager(t, srv.URL+"/api")
		draft := testProduct("", "Gamma")
		draft.Image = ""
		draft.Category = ""
		image := &Image{Filename: "fresh.jpg", Content: []byte("jpegdata"), ContentType: "image/jpeg"}

		_, err := mgr.Create(context.Background(), draft, image)
		var ve *entities.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "category", ve.Field)
		assert.Equal(t, int32(0), requests.Load(), "validation must fail before any request")
	})
}

func TestManager_Update(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			fmt.Fprint(w, `[{"id":"p1","productName":"Alpha"},{"id":"p2","productName":"Beta"},{"id":"p3","productName":"Gamma"}]`)
			return
		}
		require.Equal(t, "/api/admin/products/p2", r.URL.Path)
		require.Equal(t, http.MethodPut, r.Method)
		var p entities.Product
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		p.ID = "p2"
		require.NoError(t, json.NewEncoder(w).Encode(p))
	}))
	defer srv.Close()

	mgr := newProductManager(t, srv.URL+"/api")
	_, err := mgr.List(context.Background(), false)
	require.NoError(t, err)

	updated, err := mgr.Update(context.Background(), "p2", testProduct("p2", "Beta v2"), nil)
	require.NoError(t, err)
	assert.Equal(t, "Beta v2", updated.ProductName)

	state := mgr.State()
	require.Len(t, state, 3, "length unchanged")
	assert.Equal(t, "p1", state[0].ID)
	assert.Equal(t, "p2", state[1].ID, "position preserved")
	assert.Equal(t, "Beta v2", state[1].ProductName)
	assert.Equal(t, "p3", state[2].ID)
}

func TestManager_Remove(t *testing.T) {
	t.Run("shrinks by one and cleans up the asset", func(t *testing.T) {
		var cleanupCalls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodGet:
				fmt.Fprint(w, `[{"id":"p1","imagePublicId":"uploads/p1.jpg"},{"id":"p2"}]`)
			case r.Method == http.MethodDelete && r.URL.Path == "/api/admin/products/p1":
				fmt.Fprint(w, `{"success":true,"data":{"deleted":true}}`)
			case r.Method == http.MethodDelete && r.URL.Path == "/api/admin/upload":
				cleanupCalls.Add(1)
				var body map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "uploads/p1.jpg", body["public_id"])
				fmt.Fprint(w, `{"success":true,"data":{"deleted":true}}`)
			}
		}))
		defer srv.Close()

		mgr := newProductManager(t, srv.URL+"/api")
		_, err := mgr.List(context.Background(), false)
		require.NoError(t, err)

		require.NoError(t, mgr.Remove(context.Background(), "p1"))

		state := mgr.State()
		require.Len(t, state, 1)
		assert.Equal(t, "p2", state[0].ID)
		assert.Equal(t, int32(1), cleanupCalls.Load())
	})

	t.Run("cleanup failure does not surface", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodGet:
				fmt.Fprint(w, `[{"id":"p1","imagePublicId":"uploads/p1.jpg"}]`)
			case r.URL.Path == "/api/admin/upload":
				w.WriteHeader(http.StatusInternalServerError)
			default:
				fmt.Fprint(w, `{"success":true,"data":{"deleted":true}}`)
			}
		}))
		defer srv.Close()

		mgr := newProductManager(t, srv.URL+"/api")
		_, err := mgr.List(context.Background(), false)
		require.NoError(t, err)

		require.NoError(t, mgr.Remove(context.Background(), "p1"))
		assert.Empty(t, mgr.State())
	})
}

func TestManager_SetStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			fmt.Fprint(w, `[{"id":"p1","stockQuantity":5}]`)
			return
		}
		require.Equal(t, "/api/admin/products/p1/status", r.URL.Path)
		var patch map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		require.Len(t, patch, 1, "partial body carries only the changed field")
		fmt.Fprint(w, `{"success":true,"data":{"id":"p1","stockQuantity":0}}`)
	}))
	defer srv.Close()

	mgr := newProductManager(t, srv.URL+"/api")
	_, err := mgr.List(context.Background(), false)
	require.NoError(t, err)

	updated, err := mgr.SetStatus(context.Background(), "p1", map[string]any{"stockQuantity": 0})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.StockQuantity)
	assert.Equal(t, 0, mgr.State()[0].StockQuantity)
}

func TestManager_InflightGuard(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			close(started)
			<-release
		}
		fmt.Fprint(w, `{"success":true,"data":{"deleted":true}}`)
	}))
	defer srv.Close()

	mgr := newProductManager(t, srv.URL+"/api")

	done := make(chan error, 1)
	go func() {
		done <- mgr.Remove(context.Background(), "p1")
	}()
	<-started

	err := mgr.Remove(context.Background(), "p1")
	var conflict ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "p1", conflict.ID)

	close(release)
	require.NoError(t, <-done)
}

func TestNormalizeIdentifiers(t *testing.T) {
	raw := []byte(`[{"_id":"a","nested":{"_id":"b"}},{"id":"c","_id":"ignored"}]`)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(normalizeIdentifiers(raw), &items))
	assert.Equal(t, "a", items[0]["id"])
	assert.Equal(t, "b", items[0]["nested"].(map[string]any)["id"])
	assert.Equal(t, "c", items[1]["id"], "existing id key wins")
	_, hasUnderscore := items[1]["_id"]
	assert.False(t, hasUnderscore)
}

func TestServerError_GenericFallback(t *testing.T) {
	err := ServerError{Status: 502, Err: errors.New("connection refused")}
	assert.Equal(t, genericServerMessage, err.Error())
}
