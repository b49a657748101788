package outline

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagingServer serves total items in pages sized by the requested limit,
// under the given payload shape, and counts requests.
func pagingServer(t *testing.T, total int, wrapKey string, calls *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++

		var params map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		limit := int(params["limit"].(float64))
		offset := int(params["offset"].(float64))

		items := []any{}
		for i := offset; i < offset+limit && i < total; i++ {
			items = append(items, map[string]any{"id": fmt.Sprintf("item-%d", i)})
		}

		var data any = items
		if wrapKey != "" {
			data = map[string]any{wrapKey: items}
		}
		envelope := map[string]any{
			"data":       data,
			"pagination": map[string]any{"more": offset+limit < total},
		}
		_ = json.NewEncoder(w).Encode(envelope)
	}))
}

func TestClient_Paginate(t *testing.T) {
	var calls int
	server := pagingServer(t, 5, "", &calls)
	defer server.Close()

	client := New(server.URL, "secret")
	results, err := client.Paginate(context.Background(), "documents.list", nil, 2, 0)

	require.NoError(t, err)
	require.Len(t, results, 5)
	// 3 pages of data, plus none: the last page reports more=false.
	assert.Equal(t, 3, calls)

	first, ok := results[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "item-0", first["id"])
	last, ok := results[4].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "item-4", last["id"])
}

func TestClient_PaginateMaxResults(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		maxResults int
		wantLen    int
	}{
		{"cap below total", 10, 3, 3},
		{"cap above total", 4, 100, 4},
		{"cap equals total", 4, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			server := pagingServer(t, tt.total, "", &calls)
			defer server.Close()

			client := New(server.URL, "secret")
			results, err := client.Paginate(context.Background(), "documents.list", nil, 2, tt.maxResults)

			require.NoError(t, err)
			assert.Len(t, results, tt.wantLen)
		})
	}
}

func TestClient_PaginateWrappedPayload(t *testing.T) {
	for _, key := range []string{"items", "documents", "collections", "users", "groups"} {
		t.Run(key, func(t *testing.T) {
			var calls int
			server := pagingServer(t, 3, key, &calls)
			defer server.Close()

			client := New(server.URL, "secret")
			results, err := client.Paginate(context.Background(), "things.list", nil, 2, 0)

			require.NoError(t, err)
			assert.Len(t, results, 3)
		})
	}
}

func TestClient_PaginateEmpty(t *testing.T) {
	var calls int
	server := pagingServer(t, 0, "", &calls)
	defer server.Close()

	client := New(server.URL, "secret")
	results, err := client.Paginate(context.Background(), "documents.list", nil, 25, 0)

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 1, calls)
}

func TestClient_PaginateScalarPayload(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"data": "not a collection", "pagination": {"more": true}}`))
	}))
	defer server.Close()

	client := New(server.URL, "secret")
	results, err := client.Paginate(context.Background(), "documents.list", nil, 25, 0)

	// A payload that is neither list nor mapping terminates pagination
	// immediately, even with more=true.
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 1, calls)
}

func TestClient_PaginateDoesNotMutateParams(t *testing.T) {
	var calls int
	server := pagingServer(t, 1, "", &calls)
	defer server.Close()

	params := Params{"collectionId": "col-1"}
	client := New(server.URL, "secret")
	_, err := client.Paginate(context.Background(), "documents.list", params, 25, 0)

	require.NoError(t, err)
	assert.Equal(t, Params{"collectionId": "col-1"}, params)
}

func TestClient_PaginatePropagatesErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := New(server.URL, "secret")
	_, err := client.Paginate(context.Background(), "documents.list", nil, 25, 0)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindAuth, apiErr.Kind)
}
