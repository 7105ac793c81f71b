package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/tylerhq/tyler-go/internal/model"
	"github.com/tylerhq/tyler-go/internal/repository"
)

// fakeUserStore is an in-memory UserStore for service tests.
type fakeUserStore struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*model.User // keyed by email
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.users[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	stored := *user
	f.users[user.Email] = &stored
	return nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserStore) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.ID == id {
			user.PasswordHash = passwordHash
			return nil
		}
	}
	return repository.ErrUserNotFound
}

func (f *fakeUserStore) UpdatePasswordByEmail(_ context.Context, email, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[email]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	return nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, id int64, fullName, phone, bio string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.ID == id {
			user.FullName = fullName
			user.Phone = phone
			user.Bio = bio
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// fakeKV is an otpstore.Store with a controllable clock for expiry tests.
type fakeKV struct {
	mu      sync.Mutex
	now     time.Time
	entries map[string]fakeKVEntry
}

type fakeKVEntry struct {
	value     string
	expiresAt time.Time
}

func newFakeKV() *fakeKV {
	return &fakeKV{now: time.Now(), entries: make(map[string]fakeKVEntry)}
}

func (f *fakeKV) advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func (f *fakeKV) Put(_ context.Context, key, value string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = fakeKVEntry{value: value, expiresAt: f.now.Add(ttl)}
	return nil
}

func (f *fakeKV) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	e, ok := f.entries[key]
	if !ok || f.now.After(e.expiresAt) {
		return "", false, nil
	}
	return e.value, true, nil
}

func (f *fakeKV) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)
	return nil
}

// fakeMailer records sends and can be told to fail.
type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	fail bool
}

type sentMail struct {
	to      string
	subject string
	body    string
}

var errMailDown = errors.New("smtp connection refused")

func (f *fakeMailer) Send(to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail {
		return errMailDown
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}
