package yarngpt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	defaultURL     = "https://yarngpt.ai/api/v1/tts"
	defaultTimeout = 30 * time.Second

	// DefaultVoice is the YarnGPT voice used for call audio.
	DefaultVoice = "Idera"
)

var (
	ErrEmptyAPIKey = fmt.Errorf("empty yarngpt api key")
)

// Synthesizer converts a script into a retrievable audio resource and
// returns its public URL.
type Synthesizer interface {
	Synthesize(text, voice string) (string, error)
}

type synthesizer struct {
	apiKey   string
	url      string
	audioDir string
	domain   string
	client   *http.Client
}

type jsonRequest struct {
	Text           string `json:"text"`
	Voice          string `json:"voice"`
	ResponseFormat string `json:"response_format"`
}

// Synthesize posts the script to YarnGPT, stores the returned mp3 under
// the audio directory and returns the URL it is served from.
func (s synthesizer) Synthesize(text, voice string) (string, error) {
	if s.apiKey == "" {
		return "", ErrEmptyAPIKey
	}

	if voice == "" {
		voice = DefaultVoice
	}

	body, err := json.Marshal(jsonRequest{
		Text:           text,
		Voice:          voice,
		ResponseFormat: "mp3",
	})
	if nil != err {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, s.url, bytes.NewReader(body))
	if nil != err {
		return "", err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if nil != err {
		return "", err
	}

	audio, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("yarngpt responded with status %d", resp.StatusCode)
	}

	filename := fmt.Sprintf("%s.mp3", uuid.New().String())
	if err := os.MkdirAll(s.audioDir, 0755); nil != err {
		return "", err
	}
	if err := ioutil.WriteFile(filepath.Join(s.audioDir, filename), audio, 0644); nil != err {
		return "", err
	}

	return fmt.Sprintf("%s/audio/%s", s.domain, filename), nil
}

func New(apiKey, url, audioDir, domain string) Synthesizer {
	u := defaultURL
	if url != "" {
		u = url
	}

	return &synthesizer{
		apiKey:   apiKey,
		url:      u,
		audioDir: audioDir,
		domain:   domain,
		client: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}
