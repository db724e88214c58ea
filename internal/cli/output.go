package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/turmas/internal/cli/styles"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr
	Out io.Writer
	Err io.Writer
}

// AddOutputFlags registers --json and --quiet on cmd
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (names only)")
}

// NewFormatter builds a formatter from the --json and --quiet flags of cmd
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err != nil {
		return f.Err
	}
	return os.Stderr
}

// Success writes {"success": true, ...fields} in JSON mode
func (f *OutputFormatter) Success(fields map[string]interface{}) error {
	envelope := map[string]interface{}{"success": true}
	for k, v := range fields {
		envelope[k] = v
	}
	return json.NewEncoder(f.out()).Encode(envelope)
}

// Lines prints one value per line (quiet mode)
func (f *OutputFormatter) Lines(values ...string) {
	for _, v := range values {
		fmt.Fprintln(f.out(), v)
	}
}

// Printf writes human-readable output
func (f *OutputFormatter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(f.out(), format, args...)
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.errOut(), "%s %s\n", styles.ErrorStyle.Render("Error:"), message)
	if suggestion != "" && !f.Quiet {
		fmt.Fprintf(f.errOut(), "%s %s\n", styles.SubtleStyle.Render("Suggestion:"), suggestion)
	}
	return nil
}

// Fail reports err to the user and returns the CommandError carrying its
// exit code. Unexpected failures are logged with their full chain.
func (f *OutputFormatter) Fail(err error) error {
	c := Classify(err)
	if c.Unexpected {
		slog.Error("command failed", "code", c.Code, "error", err)
	}
	if fmtErr := f.ErrorWithSuggestion(c.Code, c.Message, c.Suggestion); fmtErr != nil {
		slog.Error("Error formatting error message", "error", fmtErr)
	}
	return &CommandError{Code: c.ExitCode, Err: err}
}
