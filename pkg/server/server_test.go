package server

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/brennanwilkes/Numeronym-Generator/pkg/config"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/lexicon"
)

func fixture(t *testing.T) *lexicon.Index {
	t.Helper()
	b := lexicon.NewBuilder()
	for _, w := range []string{"good", "home", "app", "go", "od", "in"} {
		require.NoError(t, b.Add(w))
	}
	return b.Build()
}

// run feeds requests to a fresh server and returns a decoder over its output,
// positioned after the ready message.
func run(t *testing.T, cfg *config.Config, requests ...any) *msgpack.Decoder {
	t.Helper()
	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, r := range requests {
		require.NoError(t, enc.Encode(r))
	}

	srv := NewServerWithIO(fixture(t), nil, cfg, &in, &out)
	require.NoError(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	assert.Equal(t, "ready", ready.Status)
	return dec
}

func TestGenerate(t *testing.T) {
	dec := run(t, nil, Request{ID: "req1", Action: ActionGenerate, Number: "(250) 466-3277"})

	var resp GenerateResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "req1", resp.ID)
	assert.Equal(t, "2504663277", resp.Number)
	assert.Equal(t, "250", resp.AreaCode)
	require.Equal(t, 2, resp.Count)
	assert.Equal(t, []Span{{Words: []string{"good", "home"}, Length: 4}, {Words: []string{"app"}, Length: 3}}, resp.Paths[0])
	assert.Equal(t, []Span{
		{Words: []string{"go", "in"}, Length: 2},
		{Words: []string{"od"}, Length: 2},
		{Words: []string{"app"}, Length: 3},
	}, resp.Paths[1])
}

func TestGenerateNoPaths(t *testing.T) {
	dec := run(t, nil, Request{ID: "none", Action: ActionGenerate, Number: "2500000000"})

	var resp GenerateResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "none", resp.ID)
	assert.Zero(t, resp.Count)
	assert.Empty(t, resp.Paths)
}

func TestGenerateInvalidNumber(t *testing.T) {
	dec := run(t, nil,
		Request{ID: "bad", Action: ActionGenerate, Number: "12345"},
		Request{ID: "ok", Action: ActionGenerate, Number: "2504663277"},
	)

	var errResp ErrorResponse
	require.NoError(t, dec.Decode(&errResp))
	assert.Equal(t, "bad", errResp.ID)
	assert.Equal(t, 400, errResp.Code)
	assert.NotEmpty(t, errResp.Error)

	var resp GenerateResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "ok", resp.ID)
	assert.Equal(t, 2, resp.Count)
}

func TestSuggest(t *testing.T) {
	dec := run(t, nil, Request{ID: "s1", Action: ActionSuggest, Digits: "46"})

	var resp SuggestResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "s1", resp.ID)
	require.Equal(t, 4, resp.Count)
	assert.Equal(t, SuggestionItem{Word: "go", Code: "46", Exact: true}, resp.Suggestions[0])
	assert.Equal(t, "good", resp.Suggestions[2].Word)
	assert.False(t, resp.Suggestions[2].Exact)
}

func TestSuggestLimitCapped(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxLimit = 1
	dec := run(t, cfg, Request{ID: "s2", Action: ActionSuggest, Digits: "46", Limit: 50})

	var resp SuggestResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, 1, resp.Count)
}

func TestSuggestInvalid(t *testing.T) {
	dec := run(t, nil,
		Request{ID: "a", Action: ActionSuggest},
		Request{ID: "b", Action: ActionSuggest, Digits: "4x"},
		Request{ID: "c", Action: ActionSuggest, Digits: "46634663"},
	)
	for _, id := range []string{"a", "b", "c"} {
		var resp ErrorResponse
		require.NoError(t, dec.Decode(&resp))
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, 400, resp.Code)
	}
}

func TestInfoAndUnknownAction(t *testing.T) {
	dec := run(t, nil,
		Request{ID: "x", Action: "dance"},
		Request{ID: "i", Action: ActionInfo},
	)

	var errResp ErrorResponse
	require.NoError(t, dec.Decode(&errResp))
	assert.Equal(t, "x", errResp.ID)
	assert.Equal(t, 400, errResp.Code)

	var info InfoResponse
	require.NoError(t, dec.Decode(&info))
	assert.Equal(t, "ok", info.Status)
	assert.Equal(t, 6, info.Words)
	assert.Equal(t, []int{0, 3, 1, 2, 0, 0, 0}, info.Sizes)
	assert.Equal(t, 4, info.Codes)
	assert.Equal(t, 64, info.MaxLimit)
	assert.Equal(t, 2, info.Requests)
}

func TestStartMalformedInput(t *testing.T) {
	in := bytes.NewBufferString("\xc1")
	var out bytes.Buffer

	srv := NewServerWithIO(fixture(t), nil, nil, in, &out)
	assert.Error(t, srv.Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	var resp ErrorResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, 400, resp.Code)
}
