// Package cli handles cmd line input for solving numbers one at a time.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/brennanwilkes/Numeronym-Generator/internal/utils"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/lexicon"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/numeronym"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/report"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/suggest"
)

// QueryPrefix marks an input line as a keypad completion query.
const QueryPrefix = "?"

type styles struct {
	header lipgloss.Style
	area   lipgloss.Style
	word   lipgloss.Style
	code   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header: r.NewStyle().Bold(true),
		area:   r.NewStyle().Faint(true),
		word: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"}),
		code: r.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#797593", Dark: "#908caa"}),
	}
}

// InputHandler reads phone numbers line by line and prints the report for
// each. Lines starting with QueryPrefix list keypad completions instead.
type InputHandler struct {
	ix           *lexicon.Index
	completer    suggest.ICompleter
	opts         report.Options
	suggestLimit int
	requestCount int
	in           io.Reader
	out          io.Writer
	styles       styles
}

// NewInputHandler handles initialization of the InputHandler on stdin/stdout
func NewInputHandler(ix *lexicon.Index, completer suggest.ICompleter, opts report.Options, limit int) *InputHandler {
	return NewInputHandlerWithIO(ix, completer, opts, limit, os.Stdin, os.Stdout)
}

// NewInputHandlerWithIO is NewInputHandler reading from in and printing to out.
// Colours are only used when out is a terminal.
func NewInputHandlerWithIO(ix *lexicon.Index, completer suggest.ICompleter, opts report.Options, limit int, in io.Reader, out io.Writer) *InputHandler {
	if completer == nil {
		completer = suggest.NewCompleter(ix)
	}
	return &InputHandler{
		ix:           ix,
		completer:    completer,
		opts:         opts,
		suggestLimit: limit,
		in:           in,
		out:          out,
		styles:       newStyles(lipgloss.NewRenderer(out)),
	}
}

// Start begins the interface loop. It returns nil once the input ends.
func (h *InputHandler) Start() error {
	log.Print("Numeronym CLI")
	log.Printf("type a phone number or %s<digits> and press Enter (Ctrl+C to exit):", QueryPrefix)
	reader := bufio.NewReader(h.in)

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			if herr := h.handleInput(line); herr != nil {
				return herr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// handleInput dispatches a single line. Bad input is logged and skipped;
// only write failures are returned.
func (h *InputHandler) handleInput(line string) error {
	h.requestCount++
	if digits, ok := strings.CutPrefix(line, QueryPrefix); ok {
		return h.handleQuery(strings.TrimSpace(digits))
	}
	return h.handleNumber(line)
}

func (h *InputHandler) handleNumber(line string) error {
	start := time.Now()

	n, err := numeronym.ParseNumber(utils.StripSeparators(line))
	if err != nil {
		log.Errorf("Skipping input: %v", err)
		return nil
	}
	res, err := numeronym.Solve(n, h.ix)
	if err != nil {
		log.Errorf("Skipping input: %v", err)
		return nil
	}
	log.Debugf("Took [ %v ] for number '%s'", time.Since(start), n.Raw)

	if len(res.Paths) == 0 {
		log.Warnf("No numeronyms found for: '%s'", n.Raw)
		return nil
	}

	var buf strings.Builder
	if err := report.New(&buf, h.ix, h.opts).Write(res); err != nil {
		return err
	}
	for _, l := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if _, err := fmt.Fprintln(h.out, h.styleLine(l, n.AreaCode)); err != nil {
			return err
		}
	}
	return nil
}

// styleLine colours one report line, keeping the indentation that aligns words.
func (h *InputHandler) styleLine(line, areaCode string) string {
	switch {
	case strings.HasPrefix(line, "TEL:"):
		return h.styles.header.Render(line)
	case line == areaCode:
		return h.styles.area.Render(line)
	}
	word := strings.TrimLeft(line, " ")
	return line[:len(line)-len(word)] + h.styles.word.Render(word)
}

func (h *InputHandler) handleQuery(digits string) error {
	if !utils.IsOnlyNumbers(digits) {
		log.Errorf("Query must be digits: '%s'", digits)
		return nil
	}

	start := time.Now()
	suggestions := h.completer.Complete(digits, h.suggestLimit)
	log.Debugf("Took [ %v ] for query '%s'", time.Since(start), digits)

	if len(suggestions) == 0 {
		log.Warnf("No words found for: '%s'", digits)
		return nil
	}
	for i, s := range suggestions {
		mark := " "
		if s.Exact {
			mark = "*"
		}
		_, err := fmt.Fprintf(h.out, "%2d.%s %s %s\n", i+1, mark,
			h.styles.word.Render(s.Word), h.styles.code.Render("("+s.Code+")"))
		if err != nil {
			return err
		}
	}
	return nil
}
