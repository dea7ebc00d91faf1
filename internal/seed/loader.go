// Package seed bulk-loads menu items from name lists kept on disk or in S3.
package seed

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Loader reads a list of menu item names from a source.
type Loader interface {
	Load(ctx context.Context, path string) ([]string, error)
}

// fileLoader implements Loader for local name files.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads one item name per line. Files ending in .gz are decompressed.
func (l *fileLoader) Load(ctx context.Context, path string) ([]string, error) {
	l.logger.Info().Str("file", path).Msg("loading seed file")

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", path, err)
	}
	defer file.Close()

	names, err := readNames(ctx, file, isGzip(path))
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("error reading seed file")
		return nil, fmt.Errorf("error reading seed file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("names_loaded", len(names)).
		Msg("seed file loaded successfully")

	return names, nil
}

func isGzip(path string) bool {
	return strings.HasSuffix(path, ".gz")
}

// readNames returns the non-blank, non-comment lines of r, trimmed.
func readNames(ctx context.Context, r io.Reader, gz bool) ([]string, error) {
	if gz {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	names := make([]string, 0)
	lineCount := 0
	for scanner.Scan() {
		if lineCount%10_000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		lineCount++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return names, nil
}
