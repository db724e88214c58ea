package cli

import (
	"encoding/json"
	"testing"

	turmascli "github.com/thenoetrevino/turmas/internal/cli"
)

// ParseJSON decodes a single JSON envelope printed by a command
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output %q: %v", output, err)
	}
	return result
}

// ErrorCode returns error.code from a failed JSON envelope
func ErrorCode(t *testing.T, output string) string {
	t.Helper()
	result := ParseJSON(t, output)
	errData, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected error object in %q", output)
	}
	code, _ := errData["code"].(string)
	return code
}

// ExitCode returns the exit code the root command would use for err
func ExitCode(err error) int {
	return turmascli.ExitCode(err)
}
