/*
Package server answers numeronym requests over msgpack IPC.

Clients write msgpack encoded requests to the server's stdin and read one
response per request from its stdout. Requests are handled in order, and every
response echoes the request ID along with timing in microseconds.

# IPC

On start the server writes a status message:

	{"status": "ready"}

A generate request solves one phone number:

	{"id": "req1", "action": "generate", "number": "2504663277"}

and lists every path with all tied words of each span:

	{"id": "req1", "number": "2504663277", "area": "250",
	 "paths": [[{"w": ["good", "home"], "n": 4}, {"w": ["app"], "n": 3}]], "c": 1, "t": 42}

A suggest request returns the words a keypad prefix can start:

	{"id": "req2", "action": "suggest", "digits": "466", "l": 5}

An info request describes the loaded lexicon:

	{"id": "req3", "action": "info"}

Failures come back as an error message with an HTTP style code: 400 for bad
input and 500 when the solver broke one of its own invariants.
*/
package server

// Request is the single message type a client sends.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action"`
	Number string `msgpack:"number,omitempty"`
	Digits string `msgpack:"digits,omitempty"`
	Limit  int    `msgpack:"l,omitempty"`
}

const (
	ActionGenerate = "generate"
	ActionSuggest  = "suggest"
	ActionInfo     = "info"
)

// StatusResponse reports server state outside a request.
type StatusResponse struct {
	Status string `msgpack:"status"`
}

// Span is one word span of a path.
type Span struct {
	Words  []string `msgpack:"w"`
	Length int      `msgpack:"n"`
}

// GenerateResponse lists every path found for a number.
type GenerateResponse struct {
	ID        string   `msgpack:"id"`
	Number    string   `msgpack:"number"`
	AreaCode  string   `msgpack:"area"`
	Paths     [][]Span `msgpack:"paths"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"`
}

// SuggestionItem is one predicted word.
type SuggestionItem struct {
	Word  string `msgpack:"w"`
	Code  string `msgpack:"code"`
	Exact bool   `msgpack:"x,omitempty"`
}

// SuggestResponse lists keypad completions.
type SuggestResponse struct {
	ID          string           `msgpack:"id"`
	Suggestions []SuggestionItem `msgpack:"s"`
	Count       int              `msgpack:"c"`
	TimeTaken   int64            `msgpack:"t"`
}

// InfoResponse describes the loaded lexicon.
type InfoResponse struct {
	ID       string `msgpack:"id"`
	Status   string `msgpack:"status"`
	Words    int    `msgpack:"words"`
	Sizes    []int  `msgpack:"sizes"`
	Codes    int    `msgpack:"codes"`
	MaxLimit int    `msgpack:"max_limit"`
	Requests int    `msgpack:"requests"`
}

// ErrorResponse holds basic error information for a failed request
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"code"`
}
