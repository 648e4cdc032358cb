package bundler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/ff66ccff/SearchForPE/internal/config"
	"github.com/ff66ccff/SearchForPE/internal/logger"
	repository "github.com/ff66ccff/SearchForPE/internal/repository/bank"
	"github.com/ff66ccff/SearchForPE/internal/service/browser"
	"github.com/ff66ccff/SearchForPE/internal/service/common"
)

// Options contains inputs for the bundler entry point.
type Options struct {
	// ConfigPath is an optional path to the bundle manifest (defaults to searchforpe-bundle.yaml).
	ConfigPath string
	// Tool overrides the packaging tool command from the manifest.
	Tool string
	// ToolArgs are appended to the manifest's extra tool arguments.
	ToolArgs []string
	// NoOpen skips opening the output directory after a successful bundle.
	NoOpen bool
}

var (
	// ErrArtifactNotProduced indicates the tool exited without creating the
	// expected artifact. The tool's own output holds the diagnostics.
	ErrArtifactNotProduced = errors.New("artifact was not produced, check the packaging tool output above")

	// errBundleRunning indicates another bundle is already in progress.
	errBundleRunning = errors.New("a bundle is already in progress")
)

// Run executes the bundling workflow.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "searchforpe-bundler")

	b, err := newBundler(ctx, opts)
	if err != nil {
		return fmt.Errorf("initialize bundler: %w", err)
	}

	defer b.cleanup(ctx)

	if err = b.Run(ctx); err != nil {
		return err
	}

	logger.Info(ctx, "Bundler completed successfully")

	return nil
}

// bundler holds the state for a single packaging run.
// It is unexported—callers should use Run, which encapsulates setup and the
// concurrent-run guard.
type bundler struct {
	// cfg is the validated bundle manifest.
	cfg *config.Manifest
	// tool is the packaging tool command to invoke.
	tool string
	// toolArgs are extra arguments placed before the clean flag and spec path.
	toolArgs []string
	// open shows a directory to the operator; nil disables the step.
	open func(ctx context.Context, path string) error
	// markerOwned records whether this run created the in-progress marker.
	markerOwned bool
}

// newBundler loads the manifest and writes the in-progress marker.
func newBundler(ctx context.Context, opts *Options) (*bundler, error) {
	if IsBundleRunningNow(ctx) {
		return nil, errBundleRunning
	}

	m, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	b := &bundler{
		cfg:      m,
		tool:     m.Tool,
		toolArgs: append(append([]string(nil), m.ToolArgs...), opts.ToolArgs...),
		open:     browser.Open,
	}

	if opts.Tool != "" {
		b.tool = opts.Tool
	}

	if opts.NoOpen {
		b.open = nil
	}

	if err = writeMarker(); err != nil {
		return nil, err
	}

	b.markerOwned = true

	return b, nil
}

// Run performs the linear bundle sequence: check inputs, render the spec
// file, invoke the tool, then branch on artifact existence.
func (b *bundler) Run(ctx context.Context) error {
	actor, err := common.DetectActor()
	if err != nil {
		return fmt.Errorf("detect actor: %w", err)
	}

	logger.InfoKV(ctx, "Starting bundle",
		"name", b.cfg.Name,
		"entry", b.cfg.Entry,
		"host", actor.Hostname,
		"user", actor.Username)

	if err = b.checkInputs(ctx); err != nil {
		return err
	}

	specPath, err := b.writeSpecFile(ctx)
	if err != nil {
		return err
	}

	if err = b.invokeTool(ctx, specPath); err != nil {
		return err
	}

	return b.checkArtifact(ctx)
}

// checkInputs verifies the entry script and every embedded data source exist
// before handing off to the tool, and reports the bank size when configured.
func (b *bundler) checkInputs(ctx context.Context) error {
	if _, err := os.Stat(b.cfg.Entry); err != nil {
		return fmt.Errorf("entry script %s: %w", b.cfg.Entry, err)
	}

	for _, d := range b.cfg.Datas {
		if _, err := os.Stat(d.Source); err != nil {
			return fmt.Errorf("data source %s: %w", d.Source, err)
		}
	}

	if b.cfg.BankFile == "" {
		return nil
	}

	bank, err := repository.NewFileRepository(b.cfg.BankFile).Load(ctx)
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}

	judgment, choice := bank.Counts()
	logger.InfoKV(ctx, "Embedding question bank",
		"path", b.cfg.BankFile,
		"judgment_questions", judgment,
		"choice_questions", choice)

	return nil
}

// invokeTool runs the packaging tool synchronously with a clean rebuild.
// The tool's exit status is reported but not acted on: the only decision
// point of the workflow is whether the artifact exists afterwards.
func (b *bundler) invokeTool(ctx context.Context, specPath string) error {
	args := append(append([]string(nil), b.toolArgs...), "--clean", specPath)

	logger.InfoKV(ctx, "Packaging in progress, this may take a few minutes",
		"tool", b.tool)

	cmd := exec.CommandContext(ctx, b.tool, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		logger.WarnKV(ctx, "Packaging tool exited with an error", "error", err)
	}

	return ctx.Err()
}

// checkArtifact branches on the existence of the expected artifact.
func (b *bundler) checkArtifact(ctx context.Context) error {
	artifact := b.cfg.ArtifactPath()

	if _, err := os.Stat(artifact); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrArtifactNotProduced
		}

		return fmt.Errorf("stat artifact: %w", err)
	}

	logger.InfoKV(ctx, "Bundle completed", "artifact", artifact)

	if b.open == nil {
		return nil
	}

	if err := b.open(ctx, b.cfg.DistDir); err != nil {
		// The artifact is in place either way.
		logger.WarnKV(ctx, "Could not open the output directory", "error", err)
	}

	return nil
}

// cleanup removes the in-progress marker if this run created it.
func (b *bundler) cleanup(ctx context.Context) {
	if !b.markerOwned {
		return
	}

	if err := removeMarker(); err != nil {
		logger.WarnKV(ctx, "Could not remove the bundle marker", "error", err)
	}
}
