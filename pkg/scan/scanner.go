// Package scan walks the top level of a source tree and aggregates
// per-platform collections by classifying each folder name.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/romsort/romsort/pkg/catalog"
	"github.com/romsort/romsort/pkg/classify"
	"github.com/romsort/romsort/pkg/logging"
	"github.com/romsort/romsort/pkg/models"
)

// Scanner enumerates top-level source entries, counts recognized ROM
// files across each subtree, and classifies folder names into
// platforms. Each top-level directory is assumed to be one platform's
// collection; the recursive count covers nested subfolders because
// many collections organize games below the top level.
type Scanner struct {
	classifier       *classify.Classifier
	logger           logging.Logger
	includeEmptyDirs bool
}

// NewScanner creates a scanner around a classifier
func NewScanner(classifier *classify.Classifier, logger logging.Logger) *Scanner {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Scanner{
		classifier: classifier,
		logger:     logger,
	}
}

// SetIncludeEmptyDirs keeps directories with zero recognized files in
// the scan result
func (s *Scanner) SetIncludeEmptyDirs(include bool) {
	s.includeEmptyDirs = include
}

// Scan walks the top-level entries of sourceRoot. Entries resolving to
// targetRoot are skipped so the scan never walks its own output when
// source and target overlap.
func (s *Scanner) Scan(ctx context.Context, sourceRoot, targetRoot string) (*models.ScanResult, error) {
	info, err := os.Stat(sourceRoot)
	if err != nil {
		return nil, fmt.Errorf("source root not accessible: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source root is not a directory: %s", sourceRoot)
	}

	resolvedTarget := resolvePath(targetRoot)

	entries, err := os.ReadDir(sourceRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to list source root: %w", err)
	}

	result := &models.ScanResult{
		Platforms: make(map[string]*models.PlatformRecord),
		Excluded:  make(map[string]string),
	}

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if !entry.IsDir() {
			continue
		}

		dirPath := filepath.Join(sourceRoot, entry.Name())
		result.Stats.TotalProcessed++

		if resolvedTarget != "" && resolvePath(dirPath) == resolvedTarget {
			result.Stats.TargetSkipped++
			s.logger.Debug(ctx, "skipping target directory inside source", logging.Fields{
				"path": dirPath,
			})
			continue
		}

		fileCount, err := s.countROMFiles(ctx, dirPath)
		if err != nil {
			return nil, err
		}

		if fileCount == 0 {
			result.Stats.EmptyDirectories++
			if !s.includeEmptyDirs {
				s.logger.Debug(ctx, "skipping directory without ROM files", logging.Fields{
					"path": dirPath,
				})
				continue
			}
		} else {
			result.Stats.DirectoriesWithROMs++
		}

		s.accumulate(ctx, result, entry.Name(), fileCount)
	}

	return result, nil
}

// countROMFiles recursively counts recognized-extension files in the
// entire subtree
func (s *Scanner) countROMFiles(ctx context.Context, dir string) (int, error) {
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subpaths are logged and skipped, not fatal
			s.logger.Warn(ctx, "unreadable path during scan", logging.Fields{
				"path":  path,
				"error": err.Error(),
			})
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if !d.IsDir() && catalog.IsROMFile(d.Name()) {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// accumulate classifies a folder name and merges it into the result,
// combining counts when multiple source folders map to one platform
func (s *Scanner) accumulate(ctx context.Context, result *models.ScanResult, folderName string, fileCount int) {
	classification := s.classifier.Classify(folderName)

	switch classification.Kind {
	case models.ClassExcluded:
		result.Excluded[folderName] = classification.Reason
		s.logger.Info(ctx, "folder excluded", logging.Fields{
			"folder": folderName,
			"reason": classification.Reason,
		})

	case models.ClassMatched:
		record, ok := result.Platforms[classification.Shortcode]
		if !ok {
			record = &models.PlatformRecord{
				Shortcode:   classification.Shortcode,
				DisplayName: classification.DisplayName,
			}
			result.Platforms[classification.Shortcode] = record
		}
		record.FolderCount++
		record.FileCount += fileCount
		record.SourceFolders = append(record.SourceFolders, folderName)
		s.logger.Debug(ctx, "folder classified", logging.Fields{
			"folder":    folderName,
			"platform":  classification.Shortcode,
			"files":     fileCount,
			"handler":   classification.Handler,
		})

	default:
		result.Unclassified = append(result.Unclassified, folderName)
		result.Stats.UnclassifiedFiles += fileCount
		s.logger.Info(ctx, "folder not classified", logging.Fields{
			"folder": folderName,
			"files":  fileCount,
		})
	}
}

// ListROMFiles returns the recognized files under one source folder in
// walk order, as entries relative to the source root
func (s *Scanner) ListROMFiles(ctx context.Context, sourceRoot, folderName string) ([]models.FileEntry, error) {
	dir := filepath.Join(sourceRoot, folderName)

	var files []models.FileEntry
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			s.logger.Warn(ctx, "unreadable path while listing", logging.Fields{
				"path":  path,
				"error": err.Error(),
			})
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if d.IsDir() || !catalog.IsROMFile(d.Name()) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(sourceRoot, path)
		if err != nil {
			rel = path
		}
		files = append(files, models.FileEntry{
			RelativePath: rel,
			AbsolutePath: path,
			Size:         info.Size(),
			ModTime:      info.ModTime(),
			Permissions:  uint32(info.Mode().Perm()),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// resolvePath canonicalizes a path through symlinks for comparison;
// unresolvable paths fall back to a cleaned absolute form
func resolvePath(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
