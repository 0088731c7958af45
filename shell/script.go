package shell

import (
	"fmt"
	"os"
	"strings"
)

// LoadScript reads a startup script and returns its lines.
func LoadScript(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read script: %w", err)
	}
	return strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n"), nil
}

// RunScript executes script lines one by one, emitting rendered output
// lines (echoed commands included) through emit. Blank lines and "#"
// comments are skipped. Execution stops at the first failing line and
// the failing line number is reported. Returns true if the whole script
// ran, and whether an exit command was hit.
func (s *Shell) RunScript(lines []string, emit func(string)) (ok, exit bool) {
	for lineno, raw := range lines {
		line := strings.TrimRight(raw, "\n")
		stripped := strings.TrimSpace(line)
		if stripped == "" || strings.HasPrefix(stripped, "#") {
			continue
		}

		emit(s.Prompt() + line)
		res := s.Run(line)
		if res.Output != "" {
			for _, l := range strings.Split(res.Output, "\n") {
				emit(l)
			}
		}
		if res.Exit {
			return true, true
		}
		if !res.Ok {
			emit(fmt.Sprintf("script stopped at line %d", lineno+1))
			return false, false
		}
	}
	emit("(script finished)")
	return true, false
}
