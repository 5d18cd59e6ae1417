package memory

import (
	"context"

	"villagrove/internal/app/ports"
)

type UserRepo struct {
	store *Store
}

func NewUserRepo(store *Store) UserRepo {
	return UserRepo{store: store}
}

func (r UserRepo) Create(_ context.Context, user ports.UserRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, exists := r.store.usersByName[user.Username]; exists {
		return ports.ErrConflict
	}
	r.store.users[user.ID] = user
	r.store.usersByName[user.Username] = user.ID
	return nil
}

func (r UserRepo) GetByID(_ context.Context, id string) (ports.UserRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	user, ok := r.store.users[id]
	if !ok {
		return ports.UserRecord{}, ports.ErrNotFound
	}
	return user, nil
}

func (r UserRepo) GetByUsername(_ context.Context, username string) (ports.UserRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	id, ok := r.store.usersByName[username]
	if !ok {
		return ports.UserRecord{}, ports.ErrNotFound
	}
	return r.store.users[id], nil
}

func (r UserRepo) SaveWithVersion(_ context.Context, user ports.UserRecord, expectedVersion int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	current, ok := r.store.users[user.ID]
	if !ok {
		return ports.ErrNotFound
	}
	if current.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.store.users[user.ID] = user
	return nil
}
