// Package cas implements the on-disk parse cache for build logs.
package cas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
	"go.trai.ch/autodeps/internal/core/domain"
	"go.trai.ch/autodeps/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ParseCache = (*Store)(nil)

// entry is the decoded content of one cache artifact.
type entry struct {
	LogPath     string              `json:"log_path"`
	LogDigest   string              `json:"log_digest"`
	Invocations []domain.Invocation `json:"invocations"`
}

// Store implements ports.ParseCache with one zstd-compressed JSON file per build log.
// An artifact is valid only while it is newer than the log and the log content is unchanged.
type Store struct {
	hasher ports.Hasher
}

// NewStore creates a new Store.
func NewStore(hasher ports.Hasher) *Store {
	return &Store{hasher: hasher}
}

// Get returns the cached invocations for logPath, if a valid artifact exists in dir.
func (s *Store) Get(dir, logPath string) ([]domain.Invocation, bool, error) {
	absLog, err := filepath.Abs(logPath)
	if err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", logPath)
	}

	logInfo, err := os.Stat(absLog)
	if err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", absLog)
	}

	filename := s.getFilename(dir, absLog)
	cacheInfo, err := os.Stat(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", filename)
	}
	if !cacheInfo.ModTime().After(logInfo.ModTime()) {
		return nil, false, nil
	}

	//nolint:gosec // Path is constructed from the cache directory and a hashed filename
	compressed, err := os.ReadFile(filename)
	if err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", filename)
	}

	e, err := decode(compressed)
	if err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrCacheCorrupt.Error()), "path", filename)
	}
	if e.LogPath != absLog {
		return nil, false, nil
	}

	digest, err := s.digest(absLog)
	if err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", absLog)
	}
	if digest != e.LogDigest {
		return nil, false, nil
	}

	return e.Invocations, true, nil
}

// Put stores the invocations parsed from logPath in dir.
func (s *Store) Put(dir, logPath string, invocations []domain.Invocation) error {
	absLog, err := filepath.Abs(logPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", logPath)
	}

	digest, err := s.digest(absLog)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", absLog)
	}

	data, err := encode(entry{LogPath: absLog, LogDigest: digest, Invocations: invocations})
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	filename := s.getFilename(dir, absLog)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", filename)
	}

	//nolint:gosec // Path is constructed from the cache directory and a hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", filename)
	}

	return nil
}

func (s *Store) getFilename(dir, absLog string) string {
	return filepath.Join(dir, fmt.Sprintf("%016x.json.zst", xxhash.Sum64String(absLog)))
}

func encode(e entry) ([]byte, error) {
	raw, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close() //nolint:errcheck // EncodeAll does not use the stream state

	return enc.EncodeAll(raw, nil), nil
}

func decode(compressed []byte) (entry, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return entry{}, err
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return entry{}, err
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return entry{}, err
	}
	return e, nil
}

// digest returns the content hash of a file as a fixed-width hex string.
func (s *Store) digest(path string) (string, error) {
	sum, err := s.hasher.ComputeFileHash(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", sum), nil
}
