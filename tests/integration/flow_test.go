//go:build integration
// +build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	baseURL = "http://localhost:8080/api/v1"
)

// TestEndToEndFlow assumes the API server is running on localhost:8080
// against a migrated database (run `docker-compose up` first).
func TestEndToEndFlow(t *testing.T) {
	env := SetupTestEnv(t)
	defer env.Teardown()

	client := &http.Client{}

	postJSON := func(t *testing.T, path string, payload any) *http.Response {
		t.Helper()
		body, _ := json.Marshal(payload)
		resp, err := client.Post(baseURL+path, "application/json", bytes.NewBuffer(body))
		require.NoError(t, err)
		return resp
	}

	do := func(t *testing.T, method, path string, payload any) *http.Response {
		t.Helper()
		var body *bytes.Buffer = bytes.NewBuffer(nil)
		if payload != nil {
			raw, _ := json.Marshal(payload)
			body = bytes.NewBuffer(raw)
		}
		req, err := http.NewRequest(method, baseURL+path, body)
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		resp, err := client.Do(req)
		require.NoError(t, err)
		return resp
	}

	decode := func(t *testing.T, resp *http.Response) map[string]interface{} {
		t.Helper()
		defer resp.Body.Close()
		var result map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
		return result
	}

	var personID, entryID, tagID string

	t.Run("Create Person", func(t *testing.T) {
		resp := postJSON(t, "/persons", map[string]interface{}{
			"first_name": "Jan",
			"last_name":  "Novák",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		personID = decode(t, resp)["id"].(string)
	})

	t.Run("Create Entry", func(t *testing.T) {
		resp := postJSON(t, "/entries", map[string]interface{}{
			"type":    "note",
			"content": "Výlet do hor",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		entryID = decode(t, resp)["id"].(string)
	})

	t.Run("Create Tag", func(t *testing.T) {
		resp := postJSON(t, "/tags", map[string]interface{}{"name": "cestování"})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		tagID = decode(t, resp)["id"].(string)
	})

	t.Run("Duplicate Tag Name Conflicts", func(t *testing.T) {
		resp := postJSON(t, "/tags", map[string]interface{}{"name": "CESTOVÁNÍ"})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Link Entry Tag Idempotently", func(t *testing.T) {
		path := fmt.Sprintf("/entries/%s/tags/%s", entryID, tagID)

		resp := do(t, "POST", path, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		// Second add is a silent no-op.
		resp = do(t, "POST", path, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("Link Person Entry With Role", func(t *testing.T) {
		path := fmt.Sprintf("/persons/%s/entries/%s?role=author", personID, entryID)
		resp := do(t, "POST", path, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("Entry Detail Assembled", func(t *testing.T) {
		resp := do(t, "GET", fmt.Sprintf("/entries/%s/detail", entryID), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		view := decode(t, resp)
		tags := view["tags"].([]interface{})
		require.Len(t, tags, 1)
		persons := view["persons"].([]interface{})
		require.Len(t, persons, 1)
		assert.Equal(t, "author", persons[0].(map[string]interface{})["role"])
	})

	t.Run("Remove And Revive Link", func(t *testing.T) {
		path := fmt.Sprintf("/entries/%s/tags/%s", entryID, tagID)

		resp := do(t, "DELETE", path, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		// Removing again misses: the link is gone.
		resp = do(t, "DELETE", path, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		// Re-add revives the same link row.
		resp = do(t, "POST", path, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		var count int
		require.NoError(t, env.DB.QueryRow(
			`SELECT COUNT(*) FROM entry_tags WHERE entry_id = $1 AND tag_id = $2`,
			entryID, tagID).Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("Delete Person Twice Conflicts", func(t *testing.T) {
		resp := do(t, "DELETE", "/persons/"+personID, nil)
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = do(t, "DELETE", "/persons/"+personID, nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("Deleted Person Hidden From Detail", func(t *testing.T) {
		resp := do(t, "GET", fmt.Sprintf("/entries/%s/detail", entryID), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		view := decode(t, resp)
		persons := view["persons"].([]interface{})
		assert.Empty(t, persons)
	})
}
