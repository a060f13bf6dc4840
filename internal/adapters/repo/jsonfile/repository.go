// Package jsonfile stores account identities in accounts.json.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/mcli/internal/atomicfile"
	"github.com/bnema/mcli/internal/domain"
	"github.com/bnema/mcli/internal/ports"
)

const (
	FileName         = "accounts.json"
	accountsFileMode = 0o600
)

type Repository struct {
	accountsPath string
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.AccountRepository = (*Repository)(nil)

func NewRepository(accountsPath string) (*Repository, error) {
	if accountsPath == "" {
		return nil, errors.New("accounts path is empty")
	}
	absPath, err := filepath.Abs(accountsPath)
	if err != nil {
		return nil, fmt.Errorf("resolve accounts path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &Repository{accountsPath: absPath, mu: lockForPath(absPath)}, nil
}

func (r *Repository) Path() string {
	return r.accountsPath
}

// Save inserts account or replaces the entry with the same name.
func (r *Repository) Save(ctx context.Context, account ports.StoredAccount) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(account)
	updated := false
	for i := range file.Accounts {
		if file.Accounts[i].Name == encoded.Name {
			file.Accounts[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Accounts = append(file.Accounts, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return r.writeSchema(file)
}

func (r *Repository) GetByName(ctx context.Context, name string) (ports.StoredAccount, error) {
	if err := ctx.Err(); err != nil {
		return ports.StoredAccount{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return ports.StoredAccount{}, err
	}

	for _, entry := range file.Accounts {
		if entry.Name == name {
			return fromSchema(entry), nil
		}
	}
	return ports.StoredAccount{}, accountNotFound(name)
}

func (r *Repository) List(ctx context.Context) ([]ports.StoredAccount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	accounts := make([]ports.StoredAccount, 0, len(file.Accounts))
	for _, entry := range file.Accounts {
		accounts = append(accounts, fromSchema(entry))
	}
	return accounts, nil
}

func (r *Repository) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := file.Accounts[:0]
	for _, entry := range file.Accounts {
		if entry.Name != name {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(file.Accounts) {
		return accountNotFound(name)
	}
	file.Accounts = kept

	return r.writeSchema(file)
}

func accountNotFound(name string) error {
	return domain.Wrap(domain.CategoryAccount, fmt.Errorf("%q: %w", name, domain.ErrAccountNotFound))
}

func (r *Repository) readSchema() (fileSchema, error) {
	var file fileSchema

	data, err := os.ReadFile(r.accountsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read accounts file: %w", err)
	}

	if err := json.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode accounts file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encode accounts file: %w", err)
	}
	if err := atomicfile.Write(r.accountsPath, data, accountsFileMode); err != nil {
		return fmt.Errorf("write accounts file: %w", err)
	}
	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(account ports.StoredAccount) accountSchema {
	return accountSchema{
		Name:      account.Name,
		UUID:      account.UUID,
		SecretRef: account.SecretRef,
	}
}

func fromSchema(account accountSchema) ports.StoredAccount {
	return ports.StoredAccount{
		Name:      account.Name,
		UUID:      account.UUID,
		SecretRef: account.SecretRef,
	}
}
