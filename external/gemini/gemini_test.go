package gemini_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sabi-health/sabi-api/external/gemini"
)

func TestGenerate(t *testing.T) {
	completion := "Amina, rain don plenty for Kano. Sleep under net tonight."

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test", r.URL.Query().Get("key"), "wrong api key")

		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		assert.Nil(t, json.NewDecoder(r.Body).Decode(&req), "wrong request body")
		assert.NotEmpty(t, req.Contents[0].Parts[0].Text, "empty prompt")

		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{
					"content": map[string]interface{}{
						"parts": []map[string]string{{"text": completion}},
					},
				},
			},
		}

		b, _ := json.Marshal(resp)
		_, _ = w.Write(b)
	}))
	defer ts.Close()

	g := gemini.New("test", ts.URL)
	actual, err := g.Generate("say hi")
	assert.Nil(t, err, "wrong Generate")
	assert.Equal(t, completion, actual, "wrong completion")
}

func TestGenerateEmptyAPIKey(t *testing.T) {
	g := gemini.New("", "")
	_, err := g.Generate("say hi")
	assert.Equal(t, gemini.ErrEmptyAPIKey, err, "wrong error")
}

func TestGenerateNoCandidates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer ts.Close()

	g := gemini.New("test", ts.URL)
	_, err := g.Generate("say hi")
	assert.Error(t, err, "empty candidates must error")
}

func TestGenerateBadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	g := gemini.New("test", ts.URL)
	_, err := g.Generate("say hi")
	assert.Error(t, err, "status error expected")
}
