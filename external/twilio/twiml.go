package twilio

import (
	"encoding/xml"
)

// TwiML verbs for a single outbound call. Field order fixes the
// element order in the rendered document: the message itself, then the
// digit menu, then the closing line for silent callers.
type Say struct {
	XMLName  xml.Name `xml:"Say"`
	Voice    string   `xml:"voice,attr,omitempty"`
	Language string   `xml:"language,attr,omitempty"`
	Text     string   `xml:",chardata"`
}

type Play struct {
	XMLName xml.Name `xml:"Play"`
	URL     string   `xml:",chardata"`
}

type Gather struct {
	XMLName   xml.Name `xml:"Gather"`
	NumDigits int      `xml:"numDigits,attr"`
	Action    string   `xml:"action,attr"`
	Method    string   `xml:"method,attr"`
	Timeout   int      `xml:"timeout,attr"`
	Say       *Say
}

type Hangup struct {
	XMLName xml.Name `xml:"Hangup"`
}

type Response struct {
	XMLName xml.Name `xml:"Response"`
	Play    *Play
	Say     *Say
	Gather  *Gather
	Closing *Say
	Hangup  *Hangup
}

// Render marshals the response into a TwiML document.
func (r *Response) Render() string {
	d, err := xml.Marshal(r)
	if err != nil {
		// the verb structs only hold strings and ints, marshaling
		// cannot fail at runtime
		return xml.Header + "<Response></Response>"
	}
	return xml.Header + string(d)
}

// SpokenResponse builds a one-line spoken document followed by a
// hangup, used for webhook replies.
func SpokenResponse(text string) *Response {
	return &Response{
		Say:    &Say{Text: text},
		Hangup: &Hangup{},
	}
}
