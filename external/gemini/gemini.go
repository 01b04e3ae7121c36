package gemini

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"
)

const (
	defaultURL     = "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent"
	defaultTimeout = 15 * time.Second
)

var (
	ErrEmptyAPIKey  = fmt.Errorf("empty gemini api key")
	errNoCandidates = fmt.Errorf("no completion candidates returned")
)

// Generator produces a free-text completion for a prompt.
type Generator interface {
	Generate(prompt string) (string, error)
}

type generator struct {
	apiKey string
	url    string
	client *http.Client
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type jsonRequest struct {
	Contents []content `json:"contents"`
}

type candidate struct {
	Content content `json:"content"`
}

type jsonResponse struct {
	Candidates []candidate `json:"candidates"`
}

func (g generator) Generate(prompt string) (string, error) {
	if g.apiKey == "" {
		return "", ErrEmptyAPIKey
	}

	body, err := json.Marshal(jsonRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if nil != err {
		return "", err
	}

	query := fmt.Sprintf("%s?key=%s", g.url, g.apiKey)
	resp, err := g.client.Post(query, "application/json", bytes.NewReader(body))
	if nil != err {
		return "", err
	}

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini responded with status %d", resp.StatusCode)
	}

	var r jsonResponse
	if err := json.Unmarshal(d, &r); nil != err {
		return "", err
	}

	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return "", errNoCandidates
	}

	return r.Candidates[0].Content.Parts[0].Text, nil
}

func New(apiKey string, url string) Generator {
	u := defaultURL
	if url != "" {
		u = url
	}

	return &generator{
		apiKey: apiKey,
		url:    u,
		client: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}
