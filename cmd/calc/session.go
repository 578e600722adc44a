package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alecthomas/repr"
	"github.com/mattn/go-isatty"

	"github.com/alecthomas/calc"
)

// A session evaluates lines and reports one result or error for each.
type session struct {
	parser *calc.Parser
	stdout io.Writer
	stderr io.Writer
	format string
	timing bool
	ast    bool
}

// batch evaluates every non-blank line of r.
//
// Failing lines are reported as they occur. An error is returned once all
// lines are processed if any of them failed.
func (s *session) batch(filename string, r io.Reader) error {
	br := bufio.NewReader(r)
	total, failed := 0, 0
	for line := 1; ; line++ {
		text, err := readLine(br)
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		total++
		if err := s.process(text); err != nil {
			failed++
			s.report(filename, line, err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%s: %d of %d expressions failed", filename, failed, total)
	}
	return nil
}

// interactive evaluates lines from in until EOF.
//
// The prompt is only written when in is a terminal.
func (s *session) interactive(in io.Reader, prompt string) error {
	tty := isTerminal(in)
	br := bufio.NewReader(in)
	for {
		if tty {
			fmt.Fprint(s.stdout, prompt)
		}
		text, err := readLine(br)
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		if err := s.process(text); err != nil {
			fmt.Fprintln(s.stderr, err)
		}
	}
	if tty {
		fmt.Fprintln(s.stdout)
	}
	return nil
}

// readLine reads a line of any length without its line terminator.
//
// A final line without a terminator is returned before io.EOF.
func readLine(br *bufio.Reader) (string, error) {
	text, err := br.ReadString('\n')
	if err == io.EOF && text != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// process a single line, writing its result to stdout.
func (s *session) process(text string) error {
	start := time.Now()
	expr, err := s.parser.ParseLine("", text)
	if err != nil {
		return err
	}
	result := calc.Evaluate(expr)
	elapsed := time.Since(start)
	if s.ast {
		fmt.Fprintln(s.stdout, repr.String(expr, repr.Indent("  ")))
	}
	out := fmt.Sprintf(s.format, result)
	if s.timing {
		out += fmt.Sprintf(" (%s)", elapsed)
	}
	fmt.Fprintln(s.stdout, out)
	return nil
}

// report an error on a line of a file as "<file>:<line>:<column>: <message>".
func (s *session) report(filename string, line int, err error) {
	var perr calc.Error
	if errors.As(err, &perr) {
		fmt.Fprintf(s.stderr, "%s:%d:%d: %s\n", filename, line, perr.Position().Column, perr.Message())
		return
	}
	fmt.Fprintf(s.stderr, "%s:%d: %s\n", filename, line, err)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
