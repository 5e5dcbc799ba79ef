// Package storage 提供导出文件存储后端
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"docgen-ai-api/internal/application/export"
	"docgen-ai-api/internal/config"
	"docgen-ai-api/pkg/errors"
)

// Local 本地文件系统存储
type Local struct {
	dir string
}

// NewLocal 创建本地存储，目录不存在时创建
func NewLocal(cfg *config.LocalStorageConfig) (*Local, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &Local{dir: cfg.Dir}, nil
}

// Save 持久化导出文件
func (l *Local) Save(_ context.Context, name string, data []byte) error {
	path, err := l.resolve(name)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

// Open 打开已导出的文件
func (l *Local) Open(_ context.Context, name string) (io.ReadCloser, error) {
	path, err := l.resolve(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ErrExportNotFound
		}
		return nil, fmt.Errorf("failed to open export file: %w", err)
	}
	return f, nil
}

// resolve 拼接存储路径并拒绝目录穿越
func (l *Local) resolve(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", errors.New(errors.CodeInvalidRequest, "invalid export file name")
	}
	return filepath.Join(l.dir, name), nil
}

var _ export.Store = (*Local)(nil)
