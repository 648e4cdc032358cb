package bundler

import (
	"context"
	"errors"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/ff66ccff/SearchForPE/internal/logger"
)

const (
	// MarkerFilename marks that a bundle is in progress to avoid parallel runs.
	MarkerFilename = "searchforpe-bundle-marker.bin"

	// markerLifetime is the period after which a stale bundle marker is ignored.
	markerLifetime = 30 * time.Minute

	// baseBundlerExecutable is the bundler binary name without extension.
	baseBundlerExecutable = "searchforpe-bundler"
)

// IsBundleRunningNow checks presence of the marker file and attempts recovery
// when it looks stale.
func IsBundleRunningNow(ctx context.Context) bool {
	logger.Debug(ctx, "Checking for the presence of a bundle marker")

	fileInfo, err := os.Stat(MarkerFilename)
	if err == nil {
		if time.Since(fileInfo.ModTime()) <= markerLifetime {
			return true
		}

		logger.Info(ctx, "The bundle marker is too old, attempting cleanup")

		if err = terminateProcessByName(bundlerExecutable()); err != nil {
			return true
		}

		if err = os.Remove(MarkerFilename); err != nil {
			return true
		}

		return false
	}

	if errors.Is(err, os.ErrNotExist) {
		return false
	}

	logger.Infof(ctx, "Unable to read bundle marker: %v", err)

	return false
}

// writeMarker creates the in-progress marker file.
func writeMarker() error {
	marker, err := os.Create(MarkerFilename)
	if err != nil {
		return err
	}

	return marker.Close()
}

// removeMarker deletes the in-progress marker file if it exists.
func removeMarker() error {
	err := os.Remove(MarkerFilename)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return err
}

// terminateProcessByName tries to kill other processes with the provided executable name.
func terminateProcessByName(processName string) error {
	processList, err := ps.Processes()
	if err != nil {
		return err
	}

	thisProcessID := os.Getpid()

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if process.Executable() != processName {
			continue
		}

		var runningProcess *os.Process

		runningProcess, err = os.FindProcess(process.Pid())
		if err != nil {
			return err
		}

		if err = runningProcess.Kill(); err != nil {
			return err
		}
	}

	return nil
}

// bundlerExecutable returns the platform-specific bundler binary name.
func bundlerExecutable() string {
	if strings.Contains(strings.ToLower(runtime.GOOS), "windows") {
		return baseBundlerExecutable + ".exe"
	}

	return baseBundlerExecutable
}
