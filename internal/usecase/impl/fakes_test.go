package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"scanbox/internal/domain/entity"
	domainerrors "scanbox/internal/domain/errors"
	"scanbox/internal/domain/repository"
	"scanbox/internal/domain/service"
	"scanbox/internal/errors"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- In-memory repositories ---

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	if user, ok := r.users[id]; ok {
		clone := *user

		return &clone, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	all := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		clone := *user
		all = append(all, &clone)
	}

	return all, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return domainerrors.ErrEmailTaken.WrapMessage("email already registered")
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.users, id)

	return nil
}

type fakeStorageRepo struct {
	storages map[uuid.UUID]*entity.Storage
}

func newFakeStorageRepo() *fakeStorageRepo {
	return &fakeStorageRepo{storages: make(map[uuid.UUID]*entity.Storage)}
}

func (r *fakeStorageRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Storage, error) {
	if storage, ok := r.storages[id]; ok {
		clone := *storage

		return &clone, nil
	}

	return nil, repository.ErrStorageNotFound
}

func (r *fakeStorageRepo) FindAll(_ context.Context, ownerID *uuid.UUID) ([]*entity.Storage, error) {
	all := make([]*entity.Storage, 0, len(r.storages))
	for _, storage := range r.storages {
		if ownerID != nil && storage.OwnerID != *ownerID {
			continue
		}
		clone := *storage
		all = append(all, &clone)
	}

	return all, nil
}

func (r *fakeStorageRepo) Create(_ context.Context, storage *entity.Storage) error {
	if storage.ID == uuid.Nil {
		storage.ID = uuid.New()
	}
	clone := *storage
	r.storages[storage.ID] = &clone

	return nil
}

func (r *fakeStorageRepo) Update(_ context.Context, storage *entity.Storage) error {
	if _, ok := r.storages[storage.ID]; !ok {
		return repository.ErrStorageNotFound
	}
	clone := *storage
	r.storages[storage.ID] = &clone

	return nil
}

func (r *fakeStorageRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.storages[id]; !ok {
		return repository.ErrStorageNotFound
	}
	delete(r.storages, id)

	return nil
}

type fakeBoxRepo struct {
	boxes map[uuid.UUID]*entity.Box
}

func newFakeBoxRepo() *fakeBoxRepo {
	return &fakeBoxRepo{boxes: make(map[uuid.UUID]*entity.Box)}
}

func (r *fakeBoxRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Box, error) {
	if box, ok := r.boxes[id]; ok {
		clone := *box

		return &clone, nil
	}

	return nil, repository.ErrBoxNotFound
}

func (r *fakeBoxRepo) FindByLabelCode(_ context.Context, code string) (*entity.Box, error) {
	for _, box := range r.boxes {
		if box.LabelCode == code {
			clone := *box

			return &clone, nil
		}
	}

	return nil, repository.ErrBoxNotFound
}

func (r *fakeBoxRepo) FindAll(_ context.Context, storageID *uuid.UUID) ([]*entity.Box, error) {
	all := make([]*entity.Box, 0, len(r.boxes))
	for _, box := range r.boxes {
		if storageID != nil && (box.StorageID == nil || *box.StorageID != *storageID) {
			continue
		}
		clone := *box
		all = append(all, &clone)
	}

	return all, nil
}

func (r *fakeBoxRepo) Create(_ context.Context, box *entity.Box) error {
	if box.ID == uuid.Nil {
		box.ID = uuid.New()
	}
	clone := *box
	r.boxes[box.ID] = &clone

	return nil
}

func (r *fakeBoxRepo) Update(_ context.Context, box *entity.Box) error {
	if _, ok := r.boxes[box.ID]; !ok {
		return repository.ErrBoxNotFound
	}
	clone := *box
	r.boxes[box.ID] = &clone

	return nil
}

func (r *fakeBoxRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.boxes[id]; !ok {
		return repository.ErrBoxNotFound
	}
	delete(r.boxes, id)

	return nil
}

// --- Transaction manager ---

// fakeTxManager runs the unit of work directly against the shared fakes.
type fakeTxManager struct {
	userRepo    *fakeUserRepo
	storageRepo *fakeStorageRepo
	boxRepo     *fakeBoxRepo
}

type fakeFactory struct {
	tm *fakeTxManager
}

func (f *fakeFactory) UserRepo() repository.UserRepository       { return f.tm.userRepo }
func (f *fakeFactory) StorageRepo() repository.StorageRepository { return f.tm.storageRepo }
func (f *fakeFactory) BoxRepo() repository.BoxRepository         { return f.tm.boxRepo }

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&fakeFactory{tm: tm})
}

// --- Domain services ---

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

func (fakeHasher) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return domainerrors.ErrPasswordStrength.WrapMessage("too short")
	}

	return nil
}

type fakeTokenService struct {
	issued []service.SessionClaims
}

func (s *fakeTokenService) Issue(claims service.SessionClaims) (string, error) {
	s.issued = append(s.issued, claims)

	return "token-for-" + claims.Email, nil
}

func (s *fakeTokenService) Verify(token string) (*service.SessionClaims, error) {
	for _, claims := range s.issued {
		if token == "token-for-"+claims.Email {
			clone := claims

			return &clone, nil
		}
	}

	return nil, domainerrors.ErrInvalidToken.WrapMessage("unknown token")
}

func (s *fakeTokenService) SessionTTL() time.Duration {
	return 7 * 24 * time.Hour
}

type fakeOAuthVerifier struct {
	profile *service.OAuthProfile
	err     error
}

func (v *fakeOAuthVerifier) VerifyIDToken(_ context.Context, _ string) (*service.OAuthProfile, error) {
	return v.profile, v.err
}

func (v *fakeOAuthVerifier) Provider() entity.Provider {
	return entity.ProviderGoogle
}

type fakeOAuthExchanger struct {
	profile     *service.OAuthProfile
	err         error
	validStates map[string]bool
}

func (e *fakeOAuthExchanger) NewState() string {
	if e.validStates == nil {
		e.validStates = make(map[string]bool)
	}
	state := uuid.NewString()
	e.validStates[state] = true

	return state
}

func (e *fakeOAuthExchanger) ConsumeState(state string) bool {
	if !e.validStates[state] {
		return false
	}
	delete(e.validStates, state)

	return true
}

func (e *fakeOAuthExchanger) AuthorizationURL(state string) string {
	return "https://accounts.example.com/consent?state=" + state
}

func (e *fakeOAuthExchanger) ExchangeCode(_ context.Context, _ string) (*service.OAuthProfile, error) {
	return e.profile, e.err
}

type fakePublisher struct {
	events []*service.InventoryEvent
	err    error
}

func (p *fakePublisher) PublishInventoryEvent(_ context.Context, event *service.InventoryEvent) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)

	return nil
}

func (p *fakePublisher) Close() error {
	return nil
}

type fakeLabelRenderer struct {
	lastPayload service.LabelPayload
	err         error
}

func (r *fakeLabelRenderer) RenderLabel(payload service.LabelPayload) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.lastPayload = payload

	return []byte{0x89, 0x50, 0x4E, 0x47}, nil
}

func (r *fakeLabelRenderer) ParseLabel(_ string) (*service.LabelPayload, error) {
	return nil, errors.New("not implemented in fake")
}
