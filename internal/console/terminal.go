// internal/console/terminal.go
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/javajoker/inventory-sales/internal/i18n"
)

// ErrInputClosed is returned once the input stream is exhausted.
var ErrInputClosed = errors.New("input closed")

// MaxLineLength bounds a single answer. Longer lines are discarded and the
// prompt is repeated.
const MaxLineLength = 4096

// Terminal reads validated values from a line-oriented input and writes
// localized feedback. Every Request method retries until the input is valid.
type Terminal struct {
	in   *bufio.Reader
	out  io.Writer
	lang string
}

func NewTerminal(in io.Reader, out io.Writer, lang string) *Terminal {
	return &Terminal{
		in:   bufio.NewReader(in),
		out:  out,
		lang: lang,
	}
}

// T translates key in the terminal's language.
func (t *Terminal) T(key string, args ...interface{}) string {
	return i18n.T(t.lang, key, args...)
}

func (t *Terminal) Printf(format string, args ...interface{}) {
	fmt.Fprintf(t.out, format, args...)
}

func (t *Terminal) Println(args ...interface{}) {
	fmt.Fprintln(t.out, args...)
}

func (t *Terminal) readLine(prompt string) (string, error) {
	for {
		fmt.Fprint(t.out, prompt)
		line, tooLong, err := t.nextLine()
		if err != nil {
			return "", err
		}
		if tooLong {
			t.warn(t.T(i18n.KeyInputTooLong, MaxLineLength))
			continue
		}
		return strings.TrimSpace(line), nil
	}
}

// nextLine reads up to the next newline. Content past MaxLineLength is
// dropped and reported through tooLong.
func (t *Terminal) nextLine() (string, bool, error) {
	var buf []byte
	read, tooLong := false, false
	for {
		chunk, err := t.in.ReadSlice('\n')
		if len(chunk) > 0 {
			read = true
		}
		if !tooLong {
			buf = append(buf, chunk...)
			if len(strings.TrimRight(string(buf), "\r\n")) > MaxLineLength {
				buf, tooLong = nil, true
			}
		}

		switch {
		case err == nil:
			return strings.TrimRight(string(buf), "\r\n"), tooLong, nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if !read {
				fmt.Fprintln(t.out)
				return "", false, ErrInputClosed
			}
			return strings.TrimRight(string(buf), "\r\n"), tooLong, nil
		default:
			return "", false, err
		}
	}
}

// RequestText asks until a non-empty value is entered.
func (t *Terminal) RequestText(prompt string) (string, error) {
	for {
		value, err := t.readLine(prompt)
		if err != nil {
			return "", err
		}
		if value != "" {
			return value, nil
		}
		t.warn(t.T(i18n.KeyInputEmpty))
	}
}

// RequestInt asks until an integer no smaller than min (when set) is entered.
func (t *Terminal) RequestInt(prompt string, min *int) (int, error) {
	for {
		raw, err := t.readLine(prompt)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			t.warn(t.T(i18n.KeyInputInteger))
			continue
		}
		if min != nil && value < *min {
			t.warn(t.T(i18n.KeyInputMinimum, *min))
			continue
		}
		return value, nil
	}
}

// RequestReal asks until a number no smaller than min (when set) is entered.
func (t *Terminal) RequestReal(prompt string, min *decimal.Decimal) (decimal.Decimal, error) {
	for {
		raw, err := t.readLine(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		value, err := decimal.NewFromString(raw)
		if err != nil {
			t.warn(t.T(i18n.KeyInputNumber))
			continue
		}
		if min != nil && value.LessThan(*min) {
			t.warn(t.T(i18n.KeyInputMinimum, min.String()))
			continue
		}
		return value, nil
	}
}

// RequestOptional returns the trimmed line as is. Blank means keep.
func (t *Terminal) RequestOptional(prompt string) (string, error) {
	return t.readLine(prompt)
}

// Confirm accepts y/yes and the Spanish s/si.
func (t *Terminal) Confirm(prompt string) (bool, error) {
	answer, err := t.readLine(prompt)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "s", "si", "sí":
		return true, nil
	}
	return false, nil
}

func (t *Terminal) Pause() error {
	_, err := t.readLine(t.T(i18n.KeyAppPause))
	return err
}

func (t *Terminal) ReportError(msg string) {
	fmt.Fprintf(t.out, "\n[ERROR] %s\n\n", msg)
}

func (t *Terminal) ReportSuccess(msg string) {
	fmt.Fprintf(t.out, "\n[SUCCESS] %s\n\n", msg)
}

func (t *Terminal) warn(msg string) {
	fmt.Fprintf(t.out, "[!] %s\n", msg)
}
