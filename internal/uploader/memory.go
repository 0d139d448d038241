package uploader

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process Uploader for tests and local development.
type Memory struct {
	mu     sync.Mutex
	assets map[string]File

	// FailUploads makes every Upload call error, for exercising abort paths.
	FailUploads bool
	// FailDeletes makes every Delete call error.
	FailDeletes bool
}

func NewMemory() *Memory {
	return &Memory{assets: make(map[string]File)}
}

func (m *Memory) Upload(_ context.Context, file File, folder string) (*Asset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailUploads {
		return nil, errors.New("upload failed")
	}
	id := uuid.NewString()
	m.assets[id] = file
	return &Asset{
		URL:    fmt.Sprintf("mem:/%s/%s/%s", folder, id, file.Name),
		FileID: id,
	}, nil
}

func (m *Memory) Delete(_ context.Context, fileID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailDeletes {
		return errors.New("delete failed")
	}
	if _, ok := m.assets[fileID]; !ok {
		return errors.New("asset not found")
	}
	delete(m.assets, fileID)
	return nil
}

// Stored reports how many assets are currently held.
func (m *Memory) Stored() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.assets)
}
