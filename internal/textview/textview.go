// Package textview holds the borrowed-view/owned-value printing exercise: a
// truncated view of one string and the whole of another.
package textview

import (
	"fmt"
	"io"
	"unicode/utf8"

	apperrors "github.com/agbru/drills/internal/errors"
)

// ViewLength is the number of characters PrintView shows.
const ViewLength = 3

// Prefix returns the first n characters of s. It counts runes, so the view
// never splits a multi-byte character, and the result shares s's memory.
func Prefix(s string, n int) (string, error) {
	if n < 0 {
		return "", apperrors.ValidationError{Field: "length", Message: "must be non-negative"}
	}
	end := 0
	for i := 0; i < n; i++ {
		if end >= len(s) {
			return "", apperrors.ValidationError{
				Field:   "text",
				Message: fmt.Sprintf("has %d characters, need %d", utf8.RuneCountInString(s), n),
			}
		}
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}
	return s[:end], nil
}

// PrintView writes the first ViewLength characters of s on their own line.
func PrintView(w io.Writer, s string) error {
	view, err := Prefix(s, ViewLength)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, view)
	return err
}

// PrintOwned writes s in full on its own line.
func PrintOwned(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}
