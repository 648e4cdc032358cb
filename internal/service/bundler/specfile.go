package bundler

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/ff66ccff/SearchForPE/internal/config"
	"github.com/ff66ccff/SearchForPE/internal/logger"
)

// specTemplate is the PyInstaller spec rendered from the bundle manifest.
// Values are emitted as single-quoted Python strings, see pyString.
var specTemplate = template.Must(template.New("spec").Funcs(template.FuncMap{
	"py": pyString,
}).Parse(`# -*- mode: python ; coding: utf-8 -*-

block_cipher = None

a = Analysis(
    [{{ py .Entry }}],
    pathex=[],
    binaries=[],
    datas=[{{ range .Datas }}({{ py .Source }}, {{ py .Target }}), {{ end }}],
    hiddenimports=[{{ range .HiddenImports }}{{ py . }}, {{ end }}],
    hookspath=[],
    hooksconfig={},
    runtime_hooks=[],
    excludes=[],
    cipher=block_cipher,
    noarchive=False,
)

pyz = PYZ(a.pure, a.zipped_data, cipher=block_cipher)

exe = EXE(
    pyz,
    a.scripts,
    a.binaries,
    a.zipfiles,
    a.datas,
    [],
    name={{ py .Name }},
    debug=False,
    bootloader_ignore_signals=False,
    strip=False,
    upx=True,
    upx_exclude=[],
    runtime_tmpdir=None,
    console={{ if .Console }}True{{ else }}False{{ end }},
    disable_windowed_traceback=False,
    target_arch=None,
    codesign_identity=None,
    entitlements_file=None,
{{ if .Icon }}    icon={{ py .Icon }},
{{ end }})
`))

// writeSpecFile renders the tool spec file next to the manifest and returns its path.
func (b *bundler) writeSpecFile(ctx context.Context) (string, error) {
	var builder strings.Builder
	if err := specTemplate.Execute(&builder, b.cfg); err != nil {
		return "", fmt.Errorf("render spec file: %w", err)
	}

	specPath := b.cfg.SpecFilename()
	if err := os.WriteFile(specPath, []byte(builder.String()), config.DefaultFilePermissions); err != nil {
		return "", fmt.Errorf("write spec file: %w", err)
	}

	logger.InfoKV(ctx, "Rendered tool spec file", "path", specPath)

	return specPath, nil
}

// pyString quotes a value as a single-quoted Python string literal.
func pyString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)

	return "'" + s + "'"
}
