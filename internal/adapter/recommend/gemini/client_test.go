package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func candidateResponse(text string) map[string]interface{} {
	return map[string]interface{}{
		"candidates": []map[string]interface{}{
			{
				"content": map[string]interface{}{
					"parts": []map[string]interface{}{
						{"text": text},
					},
				},
			},
		},
	}
}

func TestGenerate_ParsesSuggestions(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		text := `[{"title":"Heat","reason":"Crime epic with career-best performances","year":"1995"},` +
			`{"title":"Collateral","reason":"Tense nighttime thriller"}]`
		json.NewEncoder(w).Encode(candidateResponse(text))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", Model: "test-model", BaseURL: server.URL}, zap.NewNop())

	suggestions, err := client.Generate(context.Background(), "suggest crime movies")
	require.NoError(t, err)

	assert.Equal(t, "/v1beta/models/test-model:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	genCfg := gotBody["generationConfig"].(map[string]interface{})
	assert.Equal(t, "application/json", genCfg["responseMimeType"])
	assert.NotNil(t, genCfg["responseSchema"])

	require.Len(t, suggestions, 2)
	assert.Equal(t, "Heat", suggestions[0].Title)
	assert.Equal(t, "1995", suggestions[0].Year)
	assert.Equal(t, "Collateral", suggestions[1].Title)
	assert.Empty(t, suggestions[1].Year)
}

func TestGenerate_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exceeded"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: server.URL}, zap.NewNop())

	_, err := client.Generate(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestGenerate_MalformedCandidateText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(candidateResponse("here are some movies you might like"))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: server.URL}, zap.NewNop())

	_, err := client.Generate(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestGenerate_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "k", BaseURL: server.URL}, zap.NewNop())

	_, err := client.Generate(context.Background(), "prompt")
	assert.Error(t, err)
}
