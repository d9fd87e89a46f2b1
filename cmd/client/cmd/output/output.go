// Package output печать результатов команд: цветной текст или JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"agroportal/internal/app/client/mutation"
)

var (
	jsonMode bool
	out      io.Writer = os.Stdout

	successColor = color.New(color.FgGreen, color.Bold)
	failureColor = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow)
	headerColor  = color.New(color.FgCyan, color.Bold)
)

// SetJSON включает вывод в JSON
func SetJSON(enabled bool) {
	jsonMode = enabled
}

func JSON() bool {
	return jsonMode
}

// Print печатает v как JSON или через human
func Print(v any, human func(w io.Writer)) error {
	if jsonMode {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	human(out)
	return nil
}

// Table таблица с выравниванием по колонкам
func Table(w io.Writer, header string, rows func(tw io.Writer)) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	headerColor.Fprintln(tw, header)
	rows(tw)
	_ = tw.Flush()
}

func Header(title string) {
	if jsonMode {
		return
	}
	headerColor.Fprintf(out, "=== %s ===\n\n", title)
}

func Success(format string, args ...any) {
	if jsonMode {
		return
	}
	successColor.Fprintf(out, "✅ "+format+"\n", args...)
}

func Warn(format string, args ...any) {
	warnColor.Fprintf(os.Stderr, "⚠️  "+format+"\n", args...)
}

// Notifier печатает исход фоновых операций
type Notifier struct{}

func (Notifier) Notify(n mutation.Notice) {
	if n.Level == mutation.LevelFailure {
		failureColor.Fprintf(os.Stderr, "✗ %s", n.Message)
		if n.Err != nil {
			fmt.Fprintf(os.Stderr, ": %v", n.Err)
		}
		fmt.Fprintln(os.Stderr)
		return
	}
	if !jsonMode {
		successColor.Fprintf(out, "✓ %s\n", n.Message)
	}
}
