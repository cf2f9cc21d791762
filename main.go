package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"amalgam/cmd"
	"amalgam/pkg/amalgam"
	"amalgam/pkg/logging"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	err := cmd.Execute()
	logger := logging.L()

	switch {
	case err == nil:
	case errors.Is(err, amalgam.ErrUsage):
		fmt.Fprintln(os.Stderr, "ERROR: Please launch amalgam in the library root")
		logger.Debug("Usage error", zap.Error(err))
		syncLogger(logger)
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		logger.Error("amalgam execution failed", zap.Error(err))
		syncLogger(logger)
		os.Exit(1)
	}

	syncLogger(logger)
}

// syncLogger flushes the logger when stderr can be synced.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if syncErr := logger.Sync(); syncErr != nil {
		lowerErr := strings.ToLower(syncErr.Error())
		if !strings.Contains(lowerErr, "invalid argument") {
			log.Printf("Logger sync failed: %v", syncErr)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
