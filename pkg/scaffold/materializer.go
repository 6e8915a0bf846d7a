// Package scaffold materializes a resolved template onto the
// filesystem: directory creation, file creation and deletion, and the
// orchestration passes that drive them. Every mutation funnels through
// the Materializer, which converts OS errors into coded diagnostics and
// never lets them propagate.
package scaffold

import (
	"github.com/haliatech/sassy/pkg/logging"
	"github.com/haliatech/sassy/pkg/messages"
	"github.com/haliatech/sassy/pkg/result"
	"github.com/rs/zerolog"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Materializer performs idempotent, single-shot filesystem operations,
// each reported as an Outcome. Overwrite mode relaxes the existence
// checks: an existing directory counts as success without re-creation,
// an existing file is rewritten. The asymmetry is intentional.
type Materializer struct {
	fs        FS
	catalog   *messages.Catalog
	overwrite bool
	log       zerolog.Logger
}

// NewMaterializer wires a Materializer over the given filesystem.
func NewMaterializer(fs FS, catalog *messages.Catalog, overwrite bool) *Materializer {
	return &Materializer{
		fs:        fs,
		catalog:   catalog,
		overwrite: overwrite,
		log:       logging.GetLogger("scaffold.materializer"),
	}
}

// CreateDirectory creates path and any missing parents. An existing
// directory fails with dir_exists unless overwrite is on, in which case
// it succeeds without touching the filesystem.
func (m *Materializer) CreateDirectory(path string) result.Outcome {
	if info, err := m.fs.Stat(path); err == nil && info.IsDir() {
		if !m.overwrite {
			return result.Failure(m.catalog.Get(messages.DirExists, path))
		}
		return result.Success(m.catalog.Get(messages.DirCreateOK, path))
	}

	if err := m.fs.MkdirAll(path, dirPerm); err != nil {
		m.log.Debug().Err(err).Str("path", path).Msg("mkdir failed")
		return result.Failure(m.catalog.Get(messages.DirCreateFailed, path))
	}
	return result.Success(m.catalog.Get(messages.DirCreateOK, path))
}

// CreateFile writes content to path, appending a single trailing
// newline when content is non-empty. An existing regular file fails
// with file_exists unless overwrite is on, in which case the content is
// rewritten.
func (m *Materializer) CreateFile(path, content string) result.Outcome {
	if info, err := m.fs.Stat(path); err == nil && info.Mode().IsRegular() && !m.overwrite {
		return result.Failure(m.catalog.Get(messages.FileExists, path))
	}

	data := content
	if data != "" {
		data += "\n"
	}
	if err := m.fs.WriteFile(path, []byte(data), filePerm); err != nil {
		m.log.Debug().Err(err).Str("path", path).Msg("write failed")
		return result.Failure(m.catalog.Get(messages.FileCreateFailed, path).WithDetail(err.Error()))
	}
	return result.Success(m.catalog.Get(messages.FileCreateOK, path))
}

// DeleteFile removes the regular file at path. A missing file fails
// with file_not_found and performs no mutation.
func (m *Materializer) DeleteFile(path string) result.Outcome {
	info, err := m.fs.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return result.Failure(m.catalog.Get(messages.FileNotFound, path))
	}

	if err := m.fs.Remove(path); err != nil {
		m.log.Debug().Err(err).Str("path", path).Msg("remove failed")
		return result.Failure(m.catalog.Get(messages.FileDeleteFailed, path).WithDetail(err.Error()))
	}
	return result.Success(m.catalog.Get(messages.FileDeleteOK, path))
}
