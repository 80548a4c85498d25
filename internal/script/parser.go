package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// LineError ties an error to the script line that caused it.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Parse reads a scenario. Every malformed line is reported; the returned
// error joins one LineError per bad line.
func Parse(r io.Reader) ([]Command, error) {
	var (
		commands []Command
		errs     []error
	)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if i := strings.Index(text, " #"); i >= 0 {
			text = strings.TrimSpace(text[:i])
		}

		fields := strings.Fields(text)
		cmd := Command{
			Type: CommandType(strings.ToLower(fields[0])),
			Args: fields[1:],
			Line: line,
		}
		if err := validate(cmd); err != nil {
			errs = append(errs, &LineError{Line: line, Err: err})
			continue
		}
		commands = append(commands, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return commands, nil
}

// ParseString parses a scenario held in memory.
func ParseString(content string) ([]Command, error) {
	return Parse(strings.NewReader(content))
}

// ParseFile parses the scenario at path.
func ParseFile(path string) ([]Command, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer func() { _ = f.Close() }()

	commands, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return commands, nil
}
