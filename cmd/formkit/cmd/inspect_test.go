package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/formkit/pkg/widgets"
)

const profile = `
name: profile
fields:
  - tag: input-text
    name: nick
    rules:
      - kind: required
        message: nick is required
  - tag: input-number
    name: age
    attributes: {min: 0, max: 130}
  - tag: input-radio
    name: plan
    attributes: {value: free, checked: true}
  - tag: input-radio
    name: plan
    attributes: {value: pro}
`

func loadProfile(t *testing.T) *widgets.Form {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(profile), 0o644))
	_, form, err := loadForm(path, widgets.Options{})
	require.NoError(t, err)
	t.Cleanup(form.Dispose)
	return form
}

func asciiOutput(buf *bytes.Buffer) *termenv.Output {
	return termenv.NewOutput(buf, termenv.WithProfile(termenv.Ascii))
}

func TestPrintForm_Invalid(t *testing.T) {
	form := loadProfile(t)
	var buf bytes.Buffer
	assert.False(t, printForm(asciiOutput(&buf), form))

	out := buf.String()
	assert.Contains(t, out, "Fields:")
	assert.Contains(t, out, "invalid")
	assert.Contains(t, out, "Problems:")
	assert.Contains(t, out, "nick: nick is required")
}

func TestAssign(t *testing.T) {
	form := loadProfile(t)
	require.NoError(t, assign(form, []string{"nick=ada", "age=42", "plan=pro"}))

	var buf bytes.Buffer
	assert.True(t, printForm(asciiOutput(&buf), form))
	assert.NotContains(t, buf.String(), "Problems:")
	assert.Contains(t, buf.String(), `"ada"`)

	g, ok := form.Group("plan")
	require.True(t, ok)
	assert.Equal(t, "pro", g.Value())
	assert.Equal(t, map[string]string{"nick": "ada", "age": "42", "plan": "pro"}, formText(form))
}

func TestAssign_Errors(t *testing.T) {
	form := loadProfile(t)
	assert.Error(t, assign(form, []string{"nick"}))
	assert.Error(t, assign(form, []string{"missing=1"}))
	assert.Error(t, assign(form, []string{"plan=enterprise"}))
	assert.Error(t, assign(form, []string{"age=old"}))
}
