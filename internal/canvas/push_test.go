package canvas

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

// TestReplaceGroupMembersOverwrites verifies the full-replace semantics: the
// pushed list wins wholesale and the ack reflects the confirmed remote state.
func TestReplaceGroupMembersOverwrites(t *testing.T) {
	remoteMembers := []int64{101, 102, 103}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/api/v1/groups/9":
			var payload struct {
				Members []int64 `json:"members"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			remoteMembers = payload.Members

			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"id": 9, "name": "Team Rocket"}`)

		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/groups/9/users":
			w.Header().Set("Content-Type", "application/json")
			users := make([]map[string]interface{}, 0, len(remoteMembers))
			for _, id := range remoteMembers {
				users = append(users, map[string]interface{}{"id": id, "name": fmt.Sprintf("user-%d", id)})
			}
			require.NoError(t, json.NewEncoder(w).Encode(users))

		default:
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	client := testClient(server.URL)
	ack, err := client.ReplaceGroupMembers(context.Background(), 9, []int64{102, 103, 104})

	require.NoError(t, err)
	assert.Equal(t, int64(9), ack.GroupID)
	assert.Equal(t, []int64{102, 103, 104}, ack.Members)
	// Member 101 was dropped by the overwrite.
	assert.NotContains(t, ack.Members, int64(101))
}

func TestReplaceGroupMembersEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			var payload struct {
				Members []int64 `json:"members"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.NotNil(t, payload.Members)
			assert.Empty(t, payload.Members)
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"id": 9, "name": "Empty"}`)
		default:
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `[]`)
		}
	}))
	defer server.Close()

	client := testClient(server.URL)
	ack, err := client.ReplaceGroupMembers(context.Background(), 9, nil)

	require.NoError(t, err)
	assert.Empty(t, ack.Members)
}

func TestCreateGroupCategory(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/courses/7/group_categories", r.URL.Path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Project Groups", payload["name"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id": 55, "course_id": 7, "name": "Project Groups"}`)
	}))
	defer server.Close()

	client := testClient(server.URL)
	category, err := client.CreateGroupCategory(context.Background(), 7, "Project Groups")

	require.NoError(t, err)
	assert.Equal(t, int64(55), category.ID)
}

func TestCreateGroup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/group_categories/55/groups", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id": 90, "name": "Alpha", "group_category_id": 55}`)
	}))
	defer server.Close()

	client := testClient(server.URL)
	group, err := client.CreateGroup(context.Background(), 55, "Alpha", "first team")

	require.NoError(t, err)
	assert.Equal(t, int64(90), group.ID)
	assert.Equal(t, int64(55), group.GroupCategoryID)
}
