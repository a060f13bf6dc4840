// Package state persists instance descriptors as state.json.
package state

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/mcli/internal/atomicfile"
	"github.com/bnema/mcli/internal/domain"
	"github.com/bnema/mcli/internal/ports"
)

const (
	FileName      = "state.json"
	stateFileMode = 0o644
)

type Store struct{}

var _ ports.StateStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{}
}

func Path(instanceDir string) string {
	return filepath.Join(instanceDir, FileName)
}

// Read fails with a state error when the file is absent or corrupt.
func (s *Store) Read(ctx context.Context, instanceDir string) (domain.InstanceState, error) {
	if err := ctx.Err(); err != nil {
		return domain.InstanceState{}, err
	}

	data, err := os.ReadFile(Path(instanceDir))
	if err != nil {
		return domain.InstanceState{}, domain.Wrap(domain.CategoryState,
			fmt.Errorf("read instance state: %w: %w", domain.ErrStateUnreadable, err))
	}

	var file fileSchema
	if err := json.Unmarshal(data, &file); err != nil {
		return domain.InstanceState{}, domain.Wrap(domain.CategoryState,
			fmt.Errorf("decode instance state: %w: %v", domain.ErrStateUnreadable, err))
	}

	state, err := fromSchema(file)
	if err != nil {
		return domain.InstanceState{}, domain.Wrap(domain.CategoryState, fmt.Errorf("decode instance state: %w", err))
	}
	return state, nil
}

// Write replaces the whole document.
func (s *Store) Write(ctx context.Context, state domain.InstanceState, instanceDir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(toSchema(state), "", "  ")
	if err != nil {
		return domain.Wrap(domain.CategoryState, fmt.Errorf("encode instance state: %w", err))
	}
	if err := atomicfile.Write(Path(instanceDir), data, stateFileMode); err != nil {
		return domain.Wrap(domain.CategoryState, fmt.Errorf("write instance state: %w", err))
	}
	return nil
}
