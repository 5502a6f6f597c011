package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"katalog/internal/models"
	"katalog/pkg/catalog"

	"github.com/stretchr/testify/assert"
)

// newTestServer serves a minimal fake of the product API for client tests.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req["password"] != "password123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Authentication failed"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Login successful",
			"token":   "test-token",
			"user":    models.User{ID: "user-1", Email: req["email"]},
		})
	})

	mux.HandleFunc("GET /api/products", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Authorization header is required"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"products": []models.Product{
				{ID: "p1", Name: "Listed", Price: 10, Category: "a"},
			},
		})
	})

	mux.HandleFunc("GET /api/products/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Product not found"})
	})

	mux.HandleFunc("PUT /api/products/p1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "Not authorized to modify this product"})
	})

	mux.HandleFunc("POST /api/products", func(w http.ResponseWriter, r *http.Request) {
		var p models.Product
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		p.ID = "created-1"
		p.CreatedBy = "user-1"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message": "Product created successfully",
			"product": p,
		})
	})

	return httptest.NewServer(mux)
}

func TestClientLoginStoresToken(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	client := catalog.NewClient(srv.URL)
	assert.Empty(t, client.Token())

	user, err := client.Login(context.Background(), "a@example.com", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "test-token", client.Token())

	// Logout is a client-side state clear only
	client.Logout()
	assert.Empty(t, client.Token())
}

func TestClientLoginFailure(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	client := catalog.NewClient(srv.URL)
	_, err := client.Login(context.Background(), "a@example.com", "wrong")
	assert.ErrorIs(t, err, catalog.ErrUnauthorized)
	assert.Empty(t, client.Token())
}

func TestClientListSendsBearerToken(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	client := catalog.NewClient(srv.URL)

	// Without a token the server rejects the request
	_, err := client.List(context.Background())
	assert.ErrorIs(t, err, catalog.ErrUnauthorized)

	client.SetToken("test-token")
	products, err := client.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}

func TestClientErrorMapping(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	client := catalog.NewClient(srv.URL)
	client.SetToken("test-token")

	_, err := client.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = client.Update(context.Background(), "p1", models.Product{Name: "X", Description: "d", Price: 1, Category: "a"})
	assert.ErrorIs(t, err, catalog.ErrForbidden)
}

func TestClientCreateDecodesEnvelope(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	client := catalog.NewClient(srv.URL)
	client.SetToken("test-token")

	created, err := client.Create(context.Background(), models.Product{
		Name: "Fresh", Description: "d", Price: 9.99, Category: "a",
	})
	assert.NoError(t, err)
	assert.Equal(t, "created-1", created.ID)
	assert.Equal(t, "Fresh", created.Name)
	assert.Equal(t, "user-1", created.CreatedBy)
}
