package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/brennanwilkes/Numeronym-Generator/internal/logger"
	"github.com/brennanwilkes/Numeronym-Generator/internal/utils"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/config"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/keypad"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/lexicon"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/numeronym"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/report"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/suggest"
)

const defaultSuggestLimit = 10

// Server handles msgpack IPC for numeronym requests
type Server struct {
	ix        *lexicon.Index
	completer *suggest.Completer
	maxLimit  int
	dec       *msgpack.Decoder
	out       *bufio.Writer
	enc       *msgpack.Encoder
	log       *log.Logger
	requests  int
}

// NewServer creates a server using stdin/stdout for IPC.
func NewServer(ix *lexicon.Index, completer *suggest.Completer, cfg *config.Config) *Server {
	return NewServerWithIO(ix, completer, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing responses to w.
func NewServerWithIO(ix *lexicon.Index, completer *suggest.Completer, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if completer == nil {
		completer = suggest.NewCompleter(ix)
	}
	out := bufio.NewWriter(w)
	return &Server{
		ix:        ix,
		completer: completer,
		maxLimit:  cfg.Server.MaxLimit,
		dec:       msgpack.NewDecoder(bufio.NewReader(r)),
		out:       out,
		enc:       msgpack.NewEncoder(out),
		log:       logger.New("server"),
	}
}

// Start signals readiness and serves requests until the input ends.
// A clean end of input returns nil.
func (s *Server) Start() error {
	s.log.Debug("Starting Server.")

	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.log.Debug("Client disconnected", "requests", s.requests)
				return nil
			}
			// the stream cannot be resynchronised after a bad frame
			s.log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			return fmt.Errorf("decode request: %w", err)
		}
		s.requests++
		if err := s.handleRequest(req); err != nil {
			return err
		}
	}
}

func (s *Server) handleRequest(req Request) error {
	switch req.Action {
	case ActionGenerate:
		return s.handleGenerate(req)
	case ActionSuggest:
		return s.handleSuggest(req)
	case ActionInfo:
		return s.handleInfo(req)
	default:
		return s.sendError(req.ID, fmt.Sprintf("Unknown action: %q", req.Action), 400)
	}
}

func (s *Server) handleGenerate(req Request) error {
	start := time.Now()

	n, err := numeronym.ParseNumber(utils.StripSeparators(req.Number))
	if err != nil {
		s.log.Debug("Rejected number", "id", req.ID, "err", err)
		return s.sendError(req.ID, err.Error(), 400)
	}
	res, err := numeronym.Solve(n, s.ix)
	if err != nil {
		if numeronym.IsInternal(err) {
			s.log.Error("Solver failed", "id", req.ID, "number", n.Raw, "err", err)
			return s.sendError(req.ID, err.Error(), 500)
		}
		return s.sendError(req.ID, err.Error(), 400)
	}

	paths := make([][]Span, len(res.Paths))
	for i, p := range res.Paths {
		words := report.Expand(s.ix, p, 0)
		spans := make([]Span, len(p))
		for j, step := range p {
			spans[j] = Span{Words: words[j], Length: step.Length}
		}
		paths[i] = spans
	}

	return s.send(GenerateResponse{
		ID:        req.ID,
		Number:    n.Raw,
		AreaCode:  n.AreaCode,
		Paths:     paths,
		Count:     len(paths),
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handleSuggest(req Request) error {
	start := time.Now()

	if req.Digits == "" {
		return s.sendError(req.ID, "Missing 'digits' parameter", 400)
	}
	if !utils.IsOnlyNumbers(req.Digits) {
		return s.sendError(req.ID, "Digits must only contain 0-9", 400)
	}
	if len(req.Digits) > keypad.MaxWordSize {
		return s.sendError(req.ID, fmt.Sprintf("Digits exceed maximum length of %d", keypad.MaxWordSize), 400)
	}

	limit := req.Limit
	if limit < 1 {
		limit = defaultSuggestLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	found := s.completer.Complete(req.Digits, limit)
	items := make([]SuggestionItem, len(found))
	for i, sg := range found {
		items[i] = SuggestionItem{Word: sg.Word, Code: sg.Code, Exact: sg.Exact}
	}

	return s.send(SuggestResponse{
		ID:          req.ID,
		Suggestions: items,
		Count:       len(items),
		TimeTaken:   time.Since(start).Microseconds(),
	})
}

func (s *Server) handleInfo(req Request) error {
	sizes := s.ix.Sizes()
	return s.send(InfoResponse{
		ID:       req.ID,
		Status:   "ok",
		Words:    s.ix.Len(),
		Sizes:    sizes[:],
		Codes:    s.completer.Stats()["codes"],
		MaxLimit: s.maxLimit,
		Requests: s.requests,
	})
}

// send encodes one response and flushes it so the client sees it immediately.
func (s *Server) send(response any) error {
	if err := s.enc.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
		return fmt.Errorf("encode response: %w", err)
	}
	if err := s.out.Flush(); err != nil {
		return fmt.Errorf("flush response: %w", err)
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) error {
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
