//go:generate mockgen -source=prompt.go -destination=mocks/mock_prompt.go -package=mocks

// Package prompt reads typed values from line-oriented user input. Bad input
// is returned as an *apperrors.ParseError so the caller can choose to retry
// or give up; nothing here terminates the process.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "github.com/agbru/drills/internal/errors"
	"github.com/agbru/drills/internal/logging"
)

// LineReader yields one line of input per call, without the trailing
// newline. It returns io.EOF once input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

// ScannerReader is a LineReader over an io.Reader.
type ScannerReader struct {
	scanner *bufio.Scanner
}

// NewScannerReader returns a LineReader reading r line by line.
func NewScannerReader(r io.Reader) *ScannerReader {
	return &ScannerReader{scanner: bufio.NewScanner(r)}
}

// ReadLine returns the next line, or io.EOF.
func (s *ScannerReader) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// ContextReader wraps a LineReader so that a pending read gives up when ctx
// is canceled. The underlying read keeps running in its goroutine; its line
// is handed to the next ReadLine call if one comes.
type ContextReader struct {
	ctx     context.Context
	in      LineReader
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

// NewContextReader returns a LineReader over in that honors ctx.
func NewContextReader(ctx context.Context, in LineReader) *ContextReader {
	return &ContextReader{ctx: ctx, in: in}
}

// ReadLine returns the next line, io.EOF, or ctx.Err() once ctx is done.
func (c *ContextReader) ReadLine() (string, error) {
	if err := c.ctx.Err(); err != nil {
		return "", err
	}
	if c.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			line, err := c.in.ReadLine()
			ch <- readResult{line: line, err: err}
		}()
		c.pending = ch
	}
	select {
	case <-c.ctx.Done():
		return "", c.ctx.Err()
	case r := <-c.pending:
		c.pending = nil
		return r.line, r.err
	}
}

// Prompter asks questions on an output stream and parses the answers.
type Prompter struct {
	in      LineReader
	out     io.Writer
	retries int
	logger  logging.Logger
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithRetries lets the prompter ask again up to n times after a malformed
// answer. The default is 0: the first parse failure is returned.
func WithRetries(n int) Option {
	return func(p *Prompter) {
		if n > 0 {
			p.retries = n
		}
	}
}

// WithLogger sets the logger used to record rejected input.
func WithLogger(l logging.Logger) Option {
	return func(p *Prompter) { p.logger = l }
}

// New creates a Prompter.
func New(in LineReader, out io.Writer, opts ...Option) *Prompter {
	p := &Prompter{in: in, out: out}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Float asks question and parses the answer as a float64.
func (p *Prompter) Float(question, field string) (float64, error) {
	return ask(p, question, field, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// Int asks question and parses the answer as a base-10 int64.
func (p *Prompter) Int(question, field string) (int64, error) {
	return ask(p, question, field, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	})
}

func ask[T any](p *Prompter, question, field string, parse func(string) (T, error)) (T, error) {
	var zero T
	for attempt := 0; ; attempt++ {
		if _, err := fmt.Fprintln(p.out, question); err != nil {
			return zero, err
		}
		line, err := p.in.ReadLine()
		if err != nil {
			if apperrors.IsContextError(err) {
				return zero, err
			}
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return zero, &apperrors.ParseError{Field: field, Err: err}
		}
		input := strings.TrimSpace(line)
		v, err := parse(input)
		if err == nil {
			return v, nil
		}
		perr := &apperrors.ParseError{Field: field, Input: input, Err: err}
		if p.logger != nil {
			p.logger.Debug("rejected input", logging.String("field", field), logging.String("input", input), logging.Int("attempt", attempt+1))
		}
		if attempt >= p.retries {
			return zero, perr
		}
		fmt.Fprintf(p.out, "%v, try again\n", perr)
	}
}
