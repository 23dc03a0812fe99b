package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "rmdcalc/internal/errors"
	"rmdcalc/internal/rmd"
)

// Prompts of the projection request, in the order they are asked
const (
	PromptAge         = "Your age this year: "
	PromptBalance     = "IRA balance as of last Dec 31: $"
	PromptYears       = "Project how many years? "
	PromptGrowth      = "Annual growth rate (e.g., 5 for 5%): "
	PromptWithholding = "Tax withholding percentage (e.g., 20): "
)

// Prompter writes prompts to out and reads one answer line per prompt
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter reading answers from in
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Line prints msg and returns the next input line without its line ending.
// A final line without a newline is returned normally; io.EOF is returned
// only when no input remains.
func (p *Prompter) Line(msg string) (string, error) {
	if _, err := io.WriteString(p.out, msg); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Int prompts for an integer. Surrounding whitespace is ignored.
func (p *Prompter) Int(field, msg string) (int, error) {
	text, err := p.answer(field, msg)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, apperrors.NewInputFormatError(field, text, err)
	}
	return n, nil
}

// Float prompts for a real number. Thousands separators and surrounding
// whitespace are ignored, so "500,000" reads as 500000.
func (p *Prompter) Float(field, msg string) (float64, error) {
	text, err := p.answer(field, msg)
	if err != nil {
		return 0, err
	}
	text = strings.ReplaceAll(text, ",", "")
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, apperrors.NewInputFormatError(field, text, err)
	}
	return v, nil
}

// Confirm asks a yes/no question. Only "y", in any case, is a yes; the end
// of input counts as no.
func (p *Prompter) Confirm(msg string) (bool, error) {
	line, err := p.Line(msg)
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return strings.ToLower(strings.TrimSpace(line)) == "y", nil
}

// ReadRequest asks the five projection prompts in order
func (p *Prompter) ReadRequest() (rmd.ProjectionRequest, error) {
	var (
		req rmd.ProjectionRequest
		err error
	)
	if req.StartAge, err = p.Int("age", PromptAge); err != nil {
		return req, err
	}
	if req.StartBalance, err = p.Float("balance", PromptBalance); err != nil {
		return req, err
	}
	if req.Years, err = p.Int("years", PromptYears); err != nil {
		return req, err
	}
	if req.GrowthRate, err = p.Float("growth rate", PromptGrowth); err != nil {
		return req, err
	}
	if req.WithholdingRate, err = p.Float("withholding rate", PromptWithholding); err != nil {
		return req, err
	}
	return req, nil
}

// answer reads a trimmed line, reporting exhausted input as a format error
func (p *Prompter) answer(field, msg string) (string, error) {
	line, err := p.Line(msg)
	if errors.Is(err, io.EOF) {
		return "", apperrors.NewInputFormatError(field, "", io.ErrUnexpectedEOF)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", field, err)
	}
	return strings.TrimSpace(line), nil
}
