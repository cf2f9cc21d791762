package amalgam

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Amalgamator concatenates a library's headers and sources into one file.
type Amalgamator struct {
	cfg           Config
	fsys          fs.FS
	isSelfInclude LineMatcher
	logger        *zap.Logger
}

// New returns an Amalgamator for cfg. A nil logger disables logging and an
// empty WorkDir means the current directory.
func New(cfg Config, logger *zap.Logger) *Amalgamator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.WorkDir == "" {
		cfg.WorkDir = "."
	}
	return &Amalgamator{
		cfg:           cfg,
		fsys:          os.DirFS(cfg.WorkDir),
		isSelfInclude: PrefixMatcher(cfg.SelfIncludePrefixes...),
		logger:        logger.With(zap.String("workDir", cfg.WorkDir)),
	}
}

// OutputPath returns the file Run writes to.
func (a *Amalgamator) OutputPath() string {
	return filepath.Join(a.cfg.WorkDir, a.cfg.Output)
}

// Run validates the tree, builds the document and writes it to OutputPath,
// replacing any existing file. Nothing is written if validation or reading
// fails. It returns the path written.
func (a *Amalgamator) Run(ctx context.Context) (string, error) {
	startTime := time.Now()
	a.logger.Info("Starting amalgamation", zap.String("output", a.cfg.Output))

	doc, err := a.Build(ctx)
	if err != nil {
		return "", err
	}

	outputPath := a.OutputPath()
	if err := writeDocument(outputPath, doc, a.logger); err != nil {
		return "", fmt.Errorf("failed to write amalgamation: %w", err)
	}

	a.logger.Info("Amalgamation completed",
		zap.String("outputFile", outputPath),
		zap.Int("sizeBytes", len(doc)),
		zap.Duration("elapsed", time.Since(startTime)))
	return outputPath, nil
}

// Check verifies the marker file and the declared include order without
// reading or writing any content.
func (a *Amalgamator) Check(ctx context.Context) error {
	_, err := a.headers(ctx)
	return err
}

// Build returns the amalgamated document without writing it.
func (a *Amalgamator) Build(ctx context.Context) (string, error) {
	headers, err := a.headers(ctx)
	if err != nil {
		return "", err
	}

	sources, err := Collect(Discover(a.fsys, a.dir(a.cfg.SourceDir), a.cfg.SourceSuffix))
	if err != nil {
		a.logger.Error("Failed to discover sources", zap.Error(err))
		return "", fmt.Errorf("failed to discover sources: %w", err)
	}
	a.logger.Debug("Discovered sources", zap.Strings("sources", sources))

	blocks := make([]string, 0, len(headers)+len(sources))
	for _, p := range slices.Concat(headers, sources) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		block, err := a.processFile(p)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block.Content)
	}

	return strings.Join(blocks, LineSeparator) + LineSeparator, nil
}

// headers checks the marker, validates the declared order against the
// discovered headers and returns header paths in declared order.
func (a *Amalgamator) headers(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := a.checkMarker(); err != nil {
		return nil, err
	}

	includeDir := a.dir(a.cfg.IncludeDir)
	discovered, err := Collect(Discover(a.fsys, includeDir, a.cfg.HeaderSuffix))
	if err != nil {
		a.logger.Error("Failed to discover headers", zap.Error(err))
		return nil, fmt.Errorf("failed to discover headers: %w", err)
	}
	a.logger.Debug("Discovered headers", zap.Strings("headers", discovered))

	if err := Validate(discovered, a.cfg.IncludeOrder, includeDir); err != nil {
		a.logger.Error("Include order is out of date", zap.Error(err))
		return nil, err
	}

	headers := make([]string, 0, len(a.cfg.IncludeOrder))
	for _, include := range a.cfg.IncludeOrder {
		headers = append(headers, path.Join(includeDir, filepath.ToSlash(include)))
	}
	return headers, nil
}

func (a *Amalgamator) checkMarker() error {
	_, err := fs.Stat(a.fsys, a.cfg.Marker)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return &UsageError{WorkDir: a.cfg.WorkDir, Marker: a.cfg.Marker}
	}
	return fmt.Errorf("failed to stat marker file: %w", err)
}

// processFile reads one file and strips its directives.
func (a *Amalgamator) processFile(p string) (Block, error) {
	a.logger.Debug("Processing file", zap.String("filePath", p))

	data, err := fs.ReadFile(a.fsys, p)
	if err != nil {
		a.logger.Error("Failed to read file", zap.String("filePath", p), zap.Error(err))
		return Block{}, fmt.Errorf("error reading file %s: %w", p, err)
	}

	return Block{
		Path:    p,
		Content: StripDirectives(string(data), a.isSelfInclude),
	}, nil
}

// dir turns a configured directory into a path usable with fsys.
func (a *Amalgamator) dir(d string) string {
	return normalizePath(d)
}
