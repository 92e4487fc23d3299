// Package media stores uploaded listing photos on the local filesystem and
// hands out the public reference paths persisted in the database.
package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"litoral-prime/internal/config"
)

// Store saves uploads under a single managed directory resolved once at
// startup and maps them to public reference paths.
type Store struct {
	dir          string
	publicPrefix string
	legacyPrefix string
}

// NewStore creates the upload directory if needed.
func NewStore(cfg config.UploadsConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{
		dir:          cfg.Dir,
		publicPrefix: strings.TrimSuffix(cfg.PublicPrefix, "/"),
		legacyPrefix: strings.TrimSuffix(cfg.LegacyPrefix, "/"),
	}, nil
}

// PublicPrefix returns the public path prefix for stored references.
func (s *Store) PublicPrefix() string {
	return s.publicPrefix
}

// Placeholder returns the reference substituted for listings without photos.
// It is never persisted by read paths.
func (s *Store) Placeholder() string {
	return s.publicPrefix + "/placeholder.png"
}

// Normalize rewrites a reference carrying the legacy public prefix to the
// current one. References outside the legacy prefix pass through unchanged.
func (s *Store) Normalize(ref string) string {
	ref = strings.TrimSpace(ref)
	if s.legacyPrefix == s.publicPrefix || s.legacyPrefix == "" {
		return ref
	}
	if strings.HasPrefix(ref, s.legacyPrefix+"/") {
		return s.publicPrefix + strings.TrimPrefix(ref, s.legacyPrefix)
	}
	return ref
}

// SaveUpload writes one multipart file into the managed directory and
// returns its public reference path. A write failure aborts with no file
// left behind so no dangling reference can be committed.
func (s *Store) SaveUpload(fh *multipart.FileHeader) (string, error) {
	name := sanitizeFilename(fh.Filename)
	if name == "" {
		return "", fmt.Errorf("upload has no filename")
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	diskPath := filepath.Join(s.dir, name)
	dst, err := os.Create(diskPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(diskPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(diskPath)
		return "", fmt.Errorf("failed to close file: %w", err)
	}

	return s.publicPrefix + "/" + name, nil
}

// SaveAll stores every file with a filename, preserving order. The first
// failure aborts the whole batch.
func (s *Store) SaveAll(files []*multipart.FileHeader) ([]string, error) {
	var refs []string
	for _, fh := range files {
		if fh == nil || fh.Filename == "" {
			continue
		}
		ref, err := s.SaveUpload(fh)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// Remove deletes the physical file behind a reference. Only references
// under the managed public prefix are touched; anything else is rejected.
func (s *Store) Remove(ref string) error {
	ref = strings.TrimSpace(ref)
	if !strings.HasPrefix(ref, s.publicPrefix+"/") {
		return fmt.Errorf("reference %q outside managed upload path", ref)
	}

	name := strings.TrimPrefix(ref, s.publicPrefix+"/")
	diskPath, err := s.safeJoin(name)
	if err != nil {
		return err
	}
	if err := os.Remove(diskPath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// safeJoin resolves name relative to the upload directory and rejects
// directory traversal.
func (s *Store) safeJoin(name string) (string, error) {
	absBase, err := filepath.Abs(s.dir)
	if err != nil {
		return "", fmt.Errorf("invalid upload directory: %w", err)
	}
	absPath, err := filepath.Abs(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}
	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal attempt")
	}
	return absPath, nil
}

func sanitizeFilename(name string) string {
	name = path.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "." || name == ".." {
		return ""
	}
	return name
}
