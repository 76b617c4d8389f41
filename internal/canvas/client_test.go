package canvas

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	apperrors "gradebench-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(serverURL string) *Client {
	return NewClient(serverURL, "test-token", Options{
		PageSize:       2,
		Timeout:        5 * time.Second,
		MaxRetries:     3,
		RetryInterval:  time.Millisecond,
		RateLimitTries: 3,
		BackoffMax:     5 * time.Millisecond,
		HTTPClient:     &http.Client{},
	})
}

// pagedServer serves /api/v1/items as totalPages pages of two records each,
// linked with rel="next" headers.
func pagedServer(t *testing.T, totalPages int) (*httptest.Server, *int32) {
	var requests int32
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		assert.Equal(t, "2", r.URL.Query().Get("per_page"))

		page := 1
		if p := r.URL.Query().Get("page"); p != "" {
			fmt.Sscanf(p, "%d", &page)
		}
		if page < totalPages {
			w.Header().Set("Link", fmt.Sprintf(
				`<%s/api/v1/items?page=%d&per_page=2>; rel="next", <%s/api/v1/items?page=1&per_page=2>; rel="first"`,
				server.URL, page+1, server.URL))
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `[{"id": %d}, {"id": %d}]`, page*10, page*10+1)
	}))
	return server, &requests
}

func TestFetchAllFollowsLinkHeaders(t *testing.T) {
	server, requests := pagedServer(t, 5)
	defer server.Close()

	client := testClient(server.URL)
	records, err := client.FetchAll(context.Background(), "/items", nil)

	require.NoError(t, err)
	assert.Len(t, records, 10)
	assert.Equal(t, int32(5), atomic.LoadInt32(requests))

	// Page order must be preserved.
	var first struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(records[0], &first))
	assert.Equal(t, 10, first.ID)
}

func TestFetchAllSinglePage(t *testing.T) {
	server, requests := pagedServer(t, 1)
	defer server.Close()

	client := testClient(server.URL)
	records, err := client.FetchAll(context.Background(), "/items", nil)

	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, int32(1), atomic.LoadInt32(requests))
}

func TestFetchAllEmptyCollection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[]`)
	}))
	defer server.Close()

	client := testClient(server.URL)
	records, err := client.FetchAll(context.Background(), "/items", nil)

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestPagerStopsEarly(t *testing.T) {
	server, requests := pagedServer(t, 5)
	defer server.Close()

	client := testClient(server.URL)
	pager := client.NewPager("/items", nil)

	require.True(t, pager.Next(context.Background()))
	require.True(t, pager.Next(context.Background()))
	require.NoError(t, pager.Err())

	// Abandoning the pager must not fetch remaining pages.
	assert.Equal(t, int32(2), atomic.LoadInt32(requests))
}

func TestThrottledRequestIsRetriedThenSucceeds(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) <= 2 {
			w.Header().Set("X-Rate-Limit-Remaining", "0")
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"message": "Rate Limit Exceeded"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"id": 1}]`)
	}))
	defer server.Close()

	client := testClient(server.URL)
	records, err := client.FetchAll(context.Background(), "/items", nil)

	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestThrottleBudgetExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Rate-Limit-Remaining", "0")
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.FetchAll(context.Background(), "/items", nil)

	require.Error(t, err)
	assert.True(t, apperrors.IsRateLimited(err))
}

func TestPlainForbiddenIsAuthError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"message": "insufficient permissions"}`)
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.FetchAll(context.Background(), "/items", nil)

	require.Error(t, err)
	assert.True(t, apperrors.IsAuth(err))
	// Auth failures must not be retried.
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestUnauthorizedIsAuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.GetCourse(context.Background(), 42)

	require.Error(t, err)
	assert.True(t, apperrors.IsAuth(err))
}

func TestTransientFailureRetriedThenSucceeds(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"id": 7}]`)
	}))
	defer server.Close()

	client := testClient(server.URL)
	records, err := client.FetchAll(context.Background(), "/items", nil)

	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestTransientBudgetExhausted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := testClient(server.URL)
	_, err := client.FetchAll(context.Background(), "/items", nil)

	require.Error(t, err)
	assert.True(t, apperrors.IsTransport(err))
}

func TestNextLinkParsing(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{
			name:   "next among other rels",
			header: `<https://lms.test/api/v1/c?page=2>; rel="next", <https://lms.test/api/v1/c?page=1>; rel="first"`,
			want:   "https://lms.test/api/v1/c?page=2",
		},
		{
			name:   "no next rel",
			header: `<https://lms.test/api/v1/c?page=1>; rel="first", <https://lms.test/api/v1/c?page=9>; rel="last"`,
			want:   "",
		},
		{
			name:   "empty header",
			header: "",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			if tt.header != "" {
				h.Set("Link", tt.header)
			}
			assert.Equal(t, tt.want, nextLink(h))
		})
	}
}

func TestGetCourseIncludesTerm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/courses/42", r.URL.Path)
		assert.Equal(t, "term", r.URL.Query().Get("include[]"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id": 42, "name": "Databases", "course_code": "CS-145", "term": {"id": 1, "name": "Fall 2026"}}`)
	}))
	defer server.Close()

	client := testClient(server.URL)
	course, err := client.GetCourse(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), course.ID)
	require.NotNil(t, course.Term)
	assert.Equal(t, "Fall 2026", course.Term.Name)
}

func TestContextCancellationStopsPaging(t *testing.T) {
	server, _ := pagedServer(t, 5)
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	client := testClient(server.URL)
	pager := client.NewPager("/items", nil)

	require.True(t, pager.Next(ctx))
	cancel()
	assert.False(t, pager.Next(ctx))
	assert.Error(t, pager.Err())
}
