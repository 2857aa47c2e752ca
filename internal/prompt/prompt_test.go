package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	apperrors "github.com/agbru/drills/internal/errors"
	"github.com/agbru/drills/internal/prompt/mocks"
)

func TestScannerReader(t *testing.T) {
	t.Parallel()
	r := NewScannerReader(strings.NewReader("100\r\n10\nlast"))
	for _, want := range []string{"100", "10", "last"} {
		got, err := r.ReadLine()
		if err != nil || got != want {
			t.Fatalf("ReadLine() = %q, %v; want %q", got, err, want)
		}
	}
	if _, err := r.ReadLine(); !errors.Is(err, io.EOF) {
		t.Errorf("ReadLine() at end = %v, want io.EOF", err)
	}
}

func TestPrompter_Float(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	in := mocks.NewMockLineReader(ctrl)
	in.EXPECT().ReadLine().Return("  100 ", nil)

	var out bytes.Buffer
	got, err := New(in, &out).Float("Enter the temperature in fahrenheit:", "temperature")
	if err != nil {
		t.Fatalf("Float() unexpected error: %v", err)
	}
	if got != 100 {
		t.Errorf("Float() = %v, want 100", got)
	}
	if out.String() != "Enter the temperature in fahrenheit:\n" {
		t.Errorf("question not written, got %q", out.String())
	}
}

func TestPrompter_FloatAcceptsSpecialValues(t *testing.T) {
	t.Parallel()
	p := New(NewScannerReader(strings.NewReader("inf\n")), io.Discard)
	got, err := p.Float("t?", "temperature")
	if err != nil || !math.IsInf(got, 1) {
		t.Errorf("Float(inf) = %v, %v", got, err)
	}
}

func TestPrompter_MalformedInputFailsImmediately(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	in := mocks.NewMockLineReader(ctrl)
	in.EXPECT().ReadLine().Return("abc", nil).Times(1)

	_, err := New(in, io.Discard).Int("n?", "n")

	var pe *apperrors.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if pe.Field != "n" || pe.Input != "abc" {
		t.Errorf("ParseError = %+v", pe)
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("error should wrap strconv.ErrSyntax: %v", err)
	}
}

func TestPrompter_Retries(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	in := mocks.NewMockLineReader(ctrl)
	gomock.InOrder(
		in.EXPECT().ReadLine().Return("ten", nil),
		in.EXPECT().ReadLine().Return("1e3", nil),
		in.EXPECT().ReadLine().Return("10", nil),
	)

	var out bytes.Buffer
	got, err := New(in, &out, WithRetries(2)).Int("n?", "n")
	if err != nil {
		t.Fatalf("Int() unexpected error: %v", err)
	}
	if got != 10 {
		t.Errorf("Int() = %d, want 10", got)
	}
	if c := strings.Count(out.String(), "try again"); c != 2 {
		t.Errorf("expected 2 retry messages, got %d in %q", c, out.String())
	}
}

func TestPrompter_RetriesExhausted(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	in := mocks.NewMockLineReader(ctrl)
	in.EXPECT().ReadLine().Return("x", nil).Times(2)

	_, err := New(in, io.Discard, WithRetries(1)).Float("t?", "temperature")
	var pe *apperrors.ParseError
	if !errors.As(err, &pe) || pe.Input != "x" {
		t.Errorf("error = %v, want ParseError for %q", err, "x")
	}
}

func TestPrompter_EOF(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	in := mocks.NewMockLineReader(ctrl)
	in.EXPECT().ReadLine().Return("", io.EOF)

	_, err := New(in, io.Discard, WithRetries(5)).Int("n?", "n")
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestPrompter_ReadError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	in := mocks.NewMockLineReader(ctrl)
	boom := errors.New("device gone")
	in.EXPECT().ReadLine().Return("", boom)

	_, err := New(in, io.Discard).Int("n?", "n")
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want %v", err, boom)
	}
}

func TestContextReader_PassesLines(t *testing.T) {
	t.Parallel()
	r := NewContextReader(context.Background(), NewScannerReader(strings.NewReader("a\nb\n")))
	for _, want := range []string{"a", "b"} {
		got, err := r.ReadLine()
		if err != nil || got != want {
			t.Fatalf("ReadLine() = %q, %v; want %q", got, err, want)
		}
	}
	if _, err := r.ReadLine(); !errors.Is(err, io.EOF) {
		t.Errorf("ReadLine() at end = %v, want io.EOF", err)
	}
}

func TestContextReader_CancelUnblocksRead(t *testing.T) {
	t.Parallel()
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	r := NewContextReader(ctx, NewScannerReader(pr))

	done := make(chan error, 1)
	go func() {
		_, err := r.ReadLine()
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("ReadLine() = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ReadLine() did not return after cancel")
	}
}

func TestPrompter_CanceledIsNotParseError(t *testing.T) {
	t.Parallel()
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(NewContextReader(ctx, NewScannerReader(pr)), io.Discard, WithRetries(3)).Float("t?", "temperature")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	var pe *apperrors.ParseError
	if errors.As(err, &pe) {
		t.Errorf("cancellation should not be reported as bad input: %v", err)
	}
}
