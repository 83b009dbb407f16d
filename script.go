package gridsel

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"runtime/debug"
	"strings"
)

// Run applies a gesture script to the grid, one intent per line. Blank
// lines and lines starting with '#' are skipped. It stops at the first
// line that fails to parse or apply and reports its line number.
func (g *Grid) Run(r io.Reader) (err error) {
	line := 0
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("panic while running script",
				"line", line, "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
			err = fmt.Errorf("panic at line %d: %v", line, r)
		}
	}()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		in, err := ParseIntent(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		g.logger.Debug("applying intent", "line", line, "intent", in.String())
		if err := g.Apply(in); err != nil {
			return fmt.Errorf("line %d: %s: %w", line, in, err)
		}
	}
	return scanner.Err()
}

// Write feeds script text to Run, so a Grid can sit at the end of a pipe.
// Lines must arrive whole.
func (g *Grid) Write(p []byte) (int, error) {
	if err := g.Run(bytes.NewReader(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}
