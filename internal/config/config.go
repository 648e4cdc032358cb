package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Data describes a single embedding pair: a source file or directory copied
// into the bundle under the target folder.
type Data struct {
	// Source is the path of the file or directory to embed, relative to the manifest.
	Source string `yaml:"source"`
	// Target is the folder inside the bundle the source is placed under ("." for the root).
	Target string `yaml:"target"`
}

// Manifest describes how the application is bundled into a standalone executable.
type Manifest struct {
	// Entry is the path of the entry script handed to the packaging tool.
	Entry string `yaml:"entry"`
	// Name is the output artifact name without extension.
	Name string `yaml:"name"`
	// Datas lists auxiliary files embedded into the bundle.
	Datas []Data `yaml:"datas"`
	// HiddenImports lists module names the packaging tool must force-include.
	HiddenImports []string `yaml:"hidden_imports"`
	// Console controls whether the bundled executable shows a console window.
	Console bool `yaml:"console"`
	// Icon is an optional path to the artifact icon.
	Icon string `yaml:"icon"`
	// Tool is the packaging tool command to invoke.
	Tool string `yaml:"tool"`
	// ToolArgs are extra arguments passed to the tool before the spec file.
	ToolArgs []string `yaml:"tool_args"`
	// DistDir is the directory the tool writes the artifact to.
	DistDir string `yaml:"dist_dir"`
	// WorkDir is the directory for the tool's intermediate build state.
	WorkDir string `yaml:"work_dir"`
	// BankFile is an optional path to the question bank JSON embedded via Datas.
	// When set, the bundler verifies it loads and reports its size before packaging.
	BankFile string `yaml:"bank_file"`
}

const (
	// DefaultManifestFilename is the default filename for the bundle manifest.
	DefaultManifestFilename = "searchforpe-bundle.yaml"

	// DefaultBankFilename is the default filename for the question bank JSON.
	DefaultBankFilename = "questions.json"

	// DefaultTool is the packaging tool invoked when the manifest names none.
	DefaultTool = "pyinstaller"

	// DefaultDistDir is the default artifact output directory.
	DefaultDistDir = "dist"

	// DefaultWorkDir is the default intermediate build directory.
	DefaultWorkDir = "build"

	// DefaultFilePermissions is the default file permission for generated files.
	DefaultFilePermissions = 0o600
)

var (
	// errManifestIsNotSet is returned when a nil manifest is provided.
	errManifestIsNotSet = errors.New("manifest is not set")
	// errEntryRequired is returned when the entry script is missing.
	errEntryRequired = errors.New("entry script must be provided")
	// errNameRequired is returned when the artifact name is missing.
	errNameRequired = errors.New("artifact name must be provided")
	// errNameIsPath is returned when the artifact name contains path separators.
	errNameIsPath = errors.New("artifact name must not contain path separators")
	// errDataPairIncomplete is returned when an embedding pair misses a side.
	errDataPairIncomplete = errors.New("data pair must have both source and target")
)

// Load reads a manifest from the provided path and validates essential fields.
func Load(path string) (*Manifest, error) {
	if path == "" {
		path = DefaultManifestFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(contents, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}

	if err := Validate(&m); err != nil {
		return nil, err
	}

	return &m, nil
}

// Save writes the manifest to the provided path.
func Save(path string, m *Manifest) error {
	if m == nil {
		return errManifestIsNotSet
	}

	if path == "" {
		path = DefaultManifestFilename
	}

	if err := Validate(m); err != nil {
		return err
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// Validate checks the provided manifest for required fields and fills defaults.
func Validate(m *Manifest) error {
	if m == nil {
		return errManifestIsNotSet
	}

	if m.Entry == "" {
		return errEntryRequired
	}

	if m.Name == "" {
		return errNameRequired
	}

	// Keeps the artifact path derivation deterministic.
	if filepath.Base(m.Name) != m.Name {
		return fmt.Errorf("%s: %w", m.Name, errNameIsPath)
	}

	for _, d := range m.Datas {
		if d.Source == "" || d.Target == "" {
			return errDataPairIncomplete
		}
	}

	if m.Tool == "" {
		m.Tool = DefaultTool
	}

	if m.DistDir == "" {
		m.DistDir = DefaultDistDir
	}

	if m.WorkDir == "" {
		m.WorkDir = DefaultWorkDir
	}

	return nil
}

// ArtifactPath returns the expected artifact location for this manifest.
// The path depends only on the manifest fields and the current platform.
func (m *Manifest) ArtifactPath() string {
	return filepath.Join(m.DistDir, m.Name+ExecutableExtension())
}

// SpecFilename returns the name of the tool spec file rendered for this manifest.
func (m *Manifest) SpecFilename() string {
	return m.Name + ".spec"
}

// ExecutableExtension returns ".exe" on Windows and "" elsewhere.
func ExecutableExtension() string {
	if strings.Contains(strings.ToLower(runtime.GOOS), "windows") {
		return ".exe"
	}

	return ""
}
