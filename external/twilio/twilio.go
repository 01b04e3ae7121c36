package twilio

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultURL     = "https://api.twilio.com/2010-04-01"
	defaultTimeout = 15 * time.Second
)

var (
	ErrNotConfigured = fmt.Errorf("twilio credentials are not configured")
)

// Caller places an outbound voice call driven by a TwiML document and
// returns the provider-assigned call reference.
type Caller interface {
	CreateCall(twiml, to, statusCallback string) (string, error)
}

type caller struct {
	accountSID string
	authToken  string
	from       string
	url        string
	client     *http.Client
}

type jsonResponse struct {
	SID     string `json:"sid"`
	Message string `json:"message"`
}

func (t caller) CreateCall(twiml, to, statusCallback string) (string, error) {
	if t.accountSID == "" || t.authToken == "" || t.from == "" {
		return "", ErrNotConfigured
	}

	form := url.Values{}
	form.Set("Twiml", twiml)
	form.Set("To", to)
	form.Set("From", t.from)
	if statusCallback != "" {
		form.Set("StatusCallback", statusCallback)
		form.Set("StatusCallbackEvent", "answered completed")
	}

	endpoint := fmt.Sprintf("%s/Accounts/%s/Calls.json", t.url, t.accountSID)
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if nil != err {
		return "", err
	}
	req.SetBasicAuth(t.accountSID, t.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if nil != err {
		return "", err
	}

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return "", err
	}
	defer resp.Body.Close()

	var r jsonResponse
	if err := json.Unmarshal(d, &r); nil != err {
		return "", err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("twilio responded with status %d: %s", resp.StatusCode, r.Message)
	}

	return r.SID, nil
}

func New(accountSID, authToken, from, url string) Caller {
	u := defaultURL
	if url != "" {
		u = url
	}

	return &caller{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		url:        u,
		client: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}
