package bundler

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ff66ccff/SearchForPE/internal/config"
)

// TestWriteSpecFile verifies the rendered spec carries the manifest fields.
func TestWriteSpecFile(t *testing.T) {
	chdirTemp(t)

	m := &config.Manifest{
		Entry:         "main.py",
		Name:          "SearchForPE",
		Datas:         []config.Data{{Source: "questions.json", Target: "."}},
		HiddenImports: []string{"customtkinter"},
	}
	require.NoError(t, config.Validate(m))

	b := &bundler{cfg: m}

	specPath, err := b.writeSpecFile(context.Background())
	require.NoError(t, err)
	require.Equal(t, "SearchForPE.spec", specPath)

	contents, err := os.ReadFile(specPath)
	require.NoError(t, err)

	spec := string(contents)
	require.Contains(t, spec, "['main.py']")
	require.Contains(t, spec, "('questions.json', '.')")
	require.Contains(t, spec, "'customtkinter'")
	require.Contains(t, spec, "name='SearchForPE'")
	require.Contains(t, spec, "console=False")
	require.NotContains(t, spec, "icon=")
}

// TestWriteSpecFileWithIconAndConsole covers the optional fields.
func TestWriteSpecFileWithIconAndConsole(t *testing.T) {
	chdirTemp(t)

	m := &config.Manifest{
		Entry:   "main.py",
		Name:    "SearchForPE",
		Console: true,
		Icon:    "app.ico",
	}
	require.NoError(t, config.Validate(m))

	b := &bundler{cfg: m}

	specPath, err := b.writeSpecFile(context.Background())
	require.NoError(t, err)

	contents, err := os.ReadFile(specPath)
	require.NoError(t, err)

	spec := string(contents)
	require.Contains(t, spec, "console=True")
	require.Contains(t, spec, "icon='app.ico'")
}

// TestPyString verifies quoting of backslashes and quotes in paths.
func TestPyString(t *testing.T) {
	t.Parallel()

	require.Equal(t, `'main.py'`, pyString("main.py"))
	require.Equal(t, `'C:\\app\\main.py'`, pyString(`C:\app\main.py`))
	require.Equal(t, `'it\'s.py'`, pyString("it's.py"))
}
