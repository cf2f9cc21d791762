// File: pkg/amalgam/write.go
package amalgam

import (
	"bufio"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// writeDocument writes doc to outputPath, truncating any existing file.
func writeDocument(outputPath, doc string, logger *zap.Logger) (err error) {
	logger.Debug("Writing amalgamation to output file", zap.String("outputFile", outputPath))

	outFile, err := os.Create(outputPath)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(closeErr))
			err = multierr.Append(err, fmt.Errorf("failed to close output file: %w", closeErr))
		}
	}()

	writer := bufio.NewWriter(outFile)
	if _, err := writer.WriteString(doc); err != nil {
		logger.Error("Failed to write output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to write content: %w", err)
	}

	if err := writer.Flush(); err != nil {
		logger.Error("Failed to flush output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("failed to flush output: %w", err)
	}

	logger.Debug("Successfully wrote file", zap.String("path", outputPath))
	return nil
}
