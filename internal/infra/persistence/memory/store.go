// Package memory is an in-process report store implementing the same
// repository contracts as the postgres package. It backs local runs without
// a database and the end-to-end tests.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"cafemap/internal/domain/entity"
	domainerrors "cafemap/internal/domain/errors"
	"cafemap/internal/domain/repository"
	"cafemap/internal/errors"

	"github.com/google/uuid"
)

// Store keeps users, cafés and reports in maps guarded by one RWMutex.
// Values are copied on the way in and out.
type Store struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]*entity.User
	cafes   map[uuid.UUID]*entity.Cafe
	reports map[uuid.UUID][]*entity.Report // keyed by café id, insertion order

	// txMu serializes Execute calls against each other.
	txMu sync.Mutex
	now  func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the clock used to stamp new rows.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		users:   make(map[uuid.UUID]*entity.User),
		cafes:   make(map[uuid.UUID]*entity.Cafe),
		reports: make(map[uuid.UUID][]*entity.Report),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

var (
	_ repository.CafeRepository     = (*Store)(nil)
	_ repository.ReportRepository   = (*Store)(nil)
	_ repository.UserRepository     = (*Store)(nil)
	_ repository.TransactionManager = (*Store)(nil)
)

func (s *Store) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// --- Cafés ---

// FindCafeByID retrieves a café by its id.
func (s *Store) FindCafeByID(_ context.Context, id uuid.UUID) (*entity.Cafe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cafe, ok := s.cafes[id]
	if !ok {
		return nil, repository.ErrCafeNotFound
	}

	return cloneCafe(cafe), nil
}

// FindCafesInBounds scans every café against the closed viewport rectangle.
func (s *Store) FindCafesInBounds(_ context.Context, bounds entity.Bounds) ([]*entity.Cafe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cafes := make([]*entity.Cafe, 0)
	for _, cafe := range s.cafes {
		if bounds.Contains(cafe) {
			cafes = append(cafes, cloneCafe(cafe))
		}
	}

	return cafes, nil
}

// UpsertCafe inserts the café or updates the one sharing its place id.
func (s *Store) UpsertCafe(_ context.Context, cafe *entity.Cafe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.timestamp()
	if cafe.PlaceID != nil {
		for _, existing := range s.cafes {
			if existing.PlaceID == nil || *existing.PlaceID != *cafe.PlaceID {
				continue
			}
			existing.Name = cafe.Name
			existing.Address = cafe.Address
			existing.Latitude = cafe.Latitude
			existing.Longitude = cafe.Longitude
			existing.UpdatedAt = now

			cafe.ID = existing.ID
			cafe.CreatedAt = existing.CreatedAt
			cafe.UpdatedAt = existing.UpdatedAt

			return nil
		}
	}

	if cafe.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate cafe id")
		}
		cafe.ID = id
	}
	cafe.CreatedAt = now
	cafe.UpdatedAt = now
	s.cafes[cafe.ID] = cloneCafe(cafe)

	return nil
}

// --- Reports ---

// CreateReport appends a report after checking the café and user exist.
func (s *Store) CreateReport(_ context.Context, report *entity.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cafes[report.CafeID]; !ok {
		return domainerrors.ErrReferenceInvalid.WithDetails("unknown cafe")
	}
	if _, ok := s.users[report.UserID]; !ok {
		return domainerrors.ErrReferenceInvalid.WithDetails("unknown user")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate report id")
	}
	now := s.timestamp()
	report.ID = id
	report.CreatedAt = now
	report.UpdatedAt = now

	stored := cloneReport(report)
	stored.Author = nil
	s.reports[report.CafeID] = append(s.reports[report.CafeID], stored)

	return nil
}

// FindLatestByCafe returns up to limit reports newest first, with authors.
func (s *Store) FindLatestByCafe(_ context.Context, cafeID uuid.UUID, limit int) ([]*entity.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := slices.Clone(s.reports[cafeID])
	slices.SortFunc(history, func(a, b *entity.Report) int {
		switch {
		case a.NewerThan(b):
			return -1
		case b.NewerThan(a):
			return 1
		default:
			return 0
		}
	})
	if limit >= 0 && len(history) > limit {
		history = history[:limit]
	}

	reports := make([]*entity.Report, 0, len(history))
	for _, r := range history {
		out := cloneReport(r)
		if user, ok := s.users[r.UserID]; ok {
			out.Author = user.Profile()
		}
		reports = append(reports, out)
	}

	return reports, nil
}

// FindLatestPerCafe reduces each requested café's history to its newest report.
func (s *Store) FindLatestPerCafe(_ context.Context, cafeIDs []uuid.UUID) (map[uuid.UUID]*entity.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	latest := make(map[uuid.UUID]*entity.Report, len(cafeIDs))
	for _, cafeID := range cafeIDs {
		var newest *entity.Report
		for _, r := range s.reports[cafeID] {
			if newest == nil || r.NewerThan(newest) {
				newest = r
			}
		}
		if newest != nil {
			latest[cafeID] = cloneReport(newest)
		}
	}

	return latest, nil
}

// --- Users ---

// FindUserByID retrieves a user by id.
func (s *Store) FindUserByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	out := *user

	return &out, nil
}

// UpsertUser inserts the user or refreshes its e-mail, name and avatar.
func (s *Store) UpsertUser(_ context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate user id")
		}
		user.ID = id
	}
	for id, existing := range s.users {
		if id != user.ID && existing.Email == user.Email {
			return domainerrors.ErrValidationFailed.WithDetails("e-mail already belongs to another user")
		}
	}

	now := s.timestamp()
	if existing, ok := s.users[user.ID]; ok {
		user.CreatedAt = existing.CreatedAt
	} else {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	stored := *user
	s.users[user.ID] = &stored

	return nil
}

// --- Transactions ---

// Execute runs fn against the store itself. If fn fails, the state captured
// before fn ran is restored.
func (s *Store) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snapshot := s.snapshot()
	if err := fn(storeFactory{s}); err != nil {
		s.restore(snapshot)

		return err
	}

	return nil
}

type storeState struct {
	users   map[uuid.UUID]*entity.User
	cafes   map[uuid.UUID]*entity.Cafe
	reports map[uuid.UUID][]*entity.Report
}

func (s *Store) snapshot() storeState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := storeState{
		users: make(map[uuid.UUID]*entity.User, len(s.users)),
		cafes: make(map[uuid.UUID]*entity.Cafe, len(s.cafes)),
		// Report slices are append-only, so shallow copies are enough.
		reports: maps.Clone(s.reports),
	}
	for id, u := range s.users {
		copied := *u
		state.users[id] = &copied
	}
	for id, c := range s.cafes {
		state.cafes[id] = cloneCafe(c)
	}
	for id, rs := range state.reports {
		state.reports[id] = slices.Clip(rs)
	}

	return state
}

func (s *Store) restore(state storeState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = state.users
	s.cafes = state.cafes
	s.reports = state.reports
}

type storeFactory struct {
	s *Store
}

func (f storeFactory) NewCafeRepository() repository.CafeRepository     { return f.s }
func (f storeFactory) NewReportRepository() repository.ReportRepository { return f.s }
func (f storeFactory) NewUserRepository() repository.UserRepository     { return f.s }

// --- copies ---

func cloneCafe(c *entity.Cafe) *entity.Cafe {
	out := *c
	if c.PlaceID != nil {
		placeID := *c.PlaceID
		out.PlaceID = &placeID
	}

	return &out
}

func cloneReport(r *entity.Report) *entity.Report {
	out := *r
	if r.Comment != nil {
		comment := *r.Comment
		out.Comment = &comment
	}
	if r.Author != nil {
		author := *r.Author
		out.Author = &author
	}

	return &out
}
