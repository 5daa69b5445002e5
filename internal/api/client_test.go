package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/internal/models"
)

func TestListThreads(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "GET", r.Method)
			assert.Equal(t, "/api/v1/threads", r.URL.Path)
			assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))

			json.NewEncoder(w).Encode(map[string]any{
				"threads": []models.Thread{
					{ID: "t1", Title: "First", Type: models.ThreadClassroom, UnitID: "unit-1"},
					{ID: "t2", Title: "Second", Type: models.ThreadGeneric, Category: "misc"},
				},
			})
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "tok123", 5*time.Second)
		got, err := c.ListThreads(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "t1", got[0].ID)
		assert.Equal(t, models.ThreadGeneric, got[1].Type)
	})

	t.Run("server error surfaces backend message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "database unavailable"})
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "", 5*time.Second)
		_, err := c.ListThreads(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 500")
		assert.Contains(t, err.Error(), "database unavailable")
	})
}

func TestCreateThread(t *testing.T) {
	t.Run("success returns server record", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "POST", r.Method)
			assert.Equal(t, "/api/v1/threads", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var in models.NewThread
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, "Study group", in.Title)
			assert.Equal(t, models.ThreadGeneric, in.Type)

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(models.Thread{
				ID:        "t-new",
				Title:     in.Title,
				Type:      in.Type,
				Category:  in.Category,
				CreatedAt: time.Now().UTC(),
			})
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "", 5*time.Second)
		got, err := c.CreateThread(context.Background(), models.NewThread{
			Title:    "Study group",
			Body:     "Meeting weekly",
			Type:     models.ThreadGeneric,
			Category: "study-groups",
		})
		require.NoError(t, err)
		assert.Equal(t, "t-new", got.ID)
	})

	t.Run("validation rejection from server", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "category is required"})
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "", 5*time.Second)
		_, err := c.CreateThread(context.Background(), models.NewThread{Title: "x", Body: "y"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "category is required")
	})
}

func TestContentOperations(t *testing.T) {
	t.Run("update returns bumped version", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "PUT", r.Method)
			assert.Equal(t, "/api/v1/content/c42", r.URL.Path)

			var in struct {
				Body string `json:"body"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))

			json.NewEncoder(w).Encode(models.ContentItem{
				ID:      "c42",
				Type:    models.ContentNote,
				Body:    in.Body,
				Version: 3,
			})
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "", 5*time.Second)
		got, err := c.UpdateContent(context.Background(), "c42", "revised text")
		require.NoError(t, err)
		assert.Equal(t, "revised text", got.Body)
		assert.Equal(t, 3, got.Version)
	})

	t.Run("delete", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "DELETE", r.Method)
			assert.Equal(t, "/api/v1/content/c42", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "", 5*time.Second)
		assert.NoError(t, c.DeleteContent(context.Background(), "c42"))
	})

	t.Run("delete failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]string{"error": "not the owner"})
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "", 5*time.Second)
		err := c.DeleteContent(context.Background(), "c42")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not the owner")
	})

	t.Run("get content", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/content/c7", r.URL.Path)
			json.NewEncoder(w).Encode(models.ContentItem{ID: "c7", Type: models.ContentLink, Body: "https://example.edu", Version: 1})
		}))
		defer srv.Close()

		c := NewClient(srv.URL, "", 5*time.Second)
		got, err := c.GetContent(context.Background(), "c7")
		require.NoError(t, err)
		assert.Equal(t, models.ContentLink, got.Type)
	})
}

func TestContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := NewClient(srv.URL, "", 5*time.Second)
	_, err := c.ListThreads(ctx)
	assert.Error(t, err)
}
