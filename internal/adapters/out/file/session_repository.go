// Package file persists the portal session as a JSON document on the local filesystem.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"logistics/internal/core/domain/model/session"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

var _ ports.SessionRepository = (*SessionRepository)(nil)

// DefaultDir is used when no directory is configured.
var DefaultDir = filepath.Join(".portal", "sessions")

// SessionRepository stores one session per agent in <dir>/<agentID>.json.
type SessionRepository struct {
	dir     string
	agentID string
}

// NewSessionRepository creates a repository rooted at dir.
func NewSessionRepository(dir, agentID string) (*SessionRepository, error) {
	if agentID == "" {
		return nil, errs.NewValueIsRequiredError("agentID")
	}
	if dir == "" {
		dir = DefaultDir
	}
	return &SessionRepository{dir: dir, agentID: agentID}, nil
}

func (r *SessionRepository) path() string {
	return filepath.Join(r.dir, r.agentID+".json")
}

// Load reads the stored session. A missing file yields an empty session.
func (r *SessionRepository) Load(ctx context.Context) (session.Session, error) {
	if err := ctx.Err(); err != nil {
		return session.Empty(), err
	}

	data, err := os.ReadFile(r.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return session.Empty(), nil
		}
		return session.Empty(), fmt.Errorf("read session file: %w", err)
	}

	var dto sessionDTO
	if err = json.Unmarshal(data, &dto); err != nil {
		return session.Empty(), fmt.Errorf("decode session file: %w", err)
	}
	return dto.toDomain()
}

// Save writes the session through a synced temp file renamed over the target, so a
// crash never leaves a partial document behind.
func (r *SessionRepository) Save(ctx context.Context, s session.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.IsAuthenticated() {
		return r.Clear(ctx)
	}

	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := json.MarshalIndent(sessionToDTO(s), "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	tmp, err := os.CreateTemp(r.dir, "tmp-"+r.agentID+"-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmpPath, r.path()); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// Clear deletes the session file. A missing file is not an error.
func (r *SessionRepository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(r.path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete session file: %w", err)
	}
	return nil
}
