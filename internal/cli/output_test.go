package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/turmas/internal/models"
)

func newTestFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

func TestOutputFormatter_Success(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)

	require.NoError(t, f.Success(map[string]interface{}{
		"group": &models.Group{Name: "Rocket"},
	}))

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, true, result["success"])
	assert.Equal(t, "Rocket", result["group"].(map[string]interface{})["name"])
}

func TestOutputFormatter_Lines(t *testing.T) {
	f, out, _ := newTestFormatter(false, true)
	f.Lines("a", "b")
	assert.Equal(t, "a\nb\n", out.String())
}

func TestOutputFormatter_ErrorWithSuggestion_JSON(t *testing.T) {
	f, out, errOut := newTestFormatter(true, false)

	require.NoError(t, f.ErrorWithSuggestion("GROUP_NOT_FOUND", "group 'X' not found", "List groups"))
	assert.Empty(t, errOut.String())

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, false, result["success"])

	errData := result["error"].(map[string]interface{})
	assert.Equal(t, "GROUP_NOT_FOUND", errData["code"])
	assert.Equal(t, "group 'X' not found", errData["message"])
	assert.Equal(t, "List groups", errData["suggestion"])
}

func TestOutputFormatter_Error_OmitsEmptySuggestion(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)

	require.NoError(t, f.ErrorWithSuggestion("DUPLICATE_GROUP", "group 'X' already exists", ""))

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	_, hasSuggestion := result["error"].(map[string]interface{})["suggestion"]
	assert.False(t, hasSuggestion)
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	f, out, errOut := newTestFormatter(false, false)

	require.NoError(t, f.ErrorWithSuggestion("GROUP_NOT_FOUND", "group 'X' not found", "List groups"))
	assert.Empty(t, out.String(), "human errors go to stderr")
	assert.Contains(t, errOut.String(), "group 'X' not found")
	assert.Contains(t, errOut.String(), "List groups")
}

func TestOutputFormatter_Fail(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)

	err := f.Fail(models.NewDomainError(models.KindDuplicatePlayer, "player 'Ana' already exists in group 'X'"))

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, ExitConflict, cmdErr.Code)
	assert.ErrorIs(t, err, models.ErrDuplicatePlayer)
	assert.Contains(t, out.String(), `"code":"DUPLICATE_PLAYER"`)
}
