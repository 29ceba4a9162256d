package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"shared-notes-be/internal/entity"
	"shared-notes-be/internal/model"
	"shared-notes-be/internal/repository/contract"
	"shared-notes-be/internal/repository/specification"
	"shared-notes-be/internal/repository/unitofwork"
	"shared-notes-be/pkg/events"

	"github.com/google/uuid"
)

// In-memory repository fakes interpreting the same specifications the
// gorm implementations translate to SQL. Shared by the service tests.

type fakeStore struct {
	users     map[uuid.UUID]*entity.User
	notes     map[uuid.UUID]*entity.Note
	shares    map[uuid.UUID][]uuid.UUID // note id -> user ids
	histories []*entity.NoteHistory

	// logs is written by the activity consumer goroutine.
	logMu sync.Mutex
	logs  []*model.SystemLog

	txActive   bool
	committed  int
	rolledBack int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:  make(map[uuid.UUID]*entity.User),
		notes:  make(map[uuid.UUID]*entity.Note),
		shares: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (s *fakeStore) noteEntity(id uuid.UUID) *entity.Note {
	n, ok := s.notes[id]
	if !ok {
		return nil
	}
	cp := *n
	cp.SharedWith = append([]uuid.UUID(nil), s.shares[id]...)
	return &cp
}

// --- users ---

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	cp := *user
	r.store.users[user.Id] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.users, id)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, u := range r.store.users {
		if userMatches(u, specs) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.store.users {
		if userMatches(u, specs) {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func userMatches(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByUsername:
			if u.Username != s.Username {
				return false
			}
		case specification.ByEmail:
			if u.Email != s.Email {
				return false
			}
		default:
			panic(fmt.Sprintf("unsupported user specification %T", spec))
		}
	}
	return true
}

// --- notes ---

type fakeNoteRepo struct{ store *fakeStore }

func (r *fakeNoteRepo) Create(ctx context.Context, note *entity.Note) error {
	cp := *note
	r.store.notes[note.Id] = &cp
	return nil
}

func (r *fakeNoteRepo) Update(ctx context.Context, note *entity.Note) error {
	if _, ok := r.store.notes[note.Id]; !ok {
		return fmt.Errorf("note %s does not exist", note.Id)
	}
	cp := *note
	r.store.notes[note.Id] = &cp
	*note = *r.store.noteEntity(note.Id)
	return nil
}

func (r *fakeNoteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.notes, id)
	return nil
}

func (r *fakeNoteRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	for id, n := range r.store.notes {
		if noteMatches(n, specs) {
			return r.store.noteEntity(id), nil
		}
	}
	return nil, nil
}

func (r *fakeNoteRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	var out []*entity.Note
	for id, n := range r.store.notes {
		if noteMatches(n, specs) {
			out = append(out, r.store.noteEntity(id))
		}
	}
	return out, nil
}

func (r *fakeNoteRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakeNoteRepo) AddShare(ctx context.Context, noteId, userId uuid.UUID) error {
	for _, existing := range r.store.shares[noteId] {
		if existing == userId {
			return nil
		}
	}
	r.store.shares[noteId] = append(r.store.shares[noteId], userId)
	return nil
}

func (r *fakeNoteRepo) DeleteSharesByNoteId(ctx context.Context, noteId uuid.UUID) error {
	delete(r.store.shares, noteId)
	return nil
}

func noteMatches(n *entity.Note, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if n.Id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if n.UserId != s.UserID {
				return false
			}
		default:
			panic(fmt.Sprintf("unsupported note specification %T", spec))
		}
	}
	return true
}

// --- histories ---

type fakeHistoryRepo struct{ store *fakeStore }

func (r *fakeHistoryRepo) Create(ctx context.Context, history *entity.NoteHistory) error {
	cp := *history
	r.store.histories = append(r.store.histories, &cp)
	return nil
}

func (r *fakeHistoryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.NoteHistory, error) {
	var out []*entity.NoteHistory
	ordered := false
	desc := false
	for _, spec := range specs {
		if s, ok := spec.(specification.OrderBy); ok {
			if s.Field != "updated_at" {
				panic(fmt.Sprintf("unsupported history ordering field %q", s.Field))
			}
			ordered = true
			desc = s.Desc
		}
	}
	for _, h := range r.store.histories {
		if historyMatches(h, specs) {
			cp := *h
			out = append(out, &cp)
		}
	}
	if ordered {
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return out[i].UpdatedAt.After(out[j].UpdatedAt)
			}
			return out[i].UpdatedAt.Before(out[j].UpdatedAt)
		})
	}
	return out, nil
}

func (r *fakeHistoryRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakeHistoryRepo) DeleteByNoteId(ctx context.Context, noteId uuid.UUID) error {
	kept := r.store.histories[:0]
	for _, h := range r.store.histories {
		if h.NoteId != noteId {
			kept = append(kept, h)
		}
	}
	r.store.histories = kept
	return nil
}

func historyMatches(h *entity.NoteHistory, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByNoteID:
			if h.NoteId != s.NoteID {
				return false
			}
		case specification.OrderBy:
			// handled by FindAll
		default:
			panic(fmt.Sprintf("unsupported history specification %T", spec))
		}
	}
	return true
}

// --- system logs ---

type fakeSystemLogRepo struct{ store *fakeStore }

func (r *fakeSystemLogRepo) Create(ctx context.Context, log *model.SystemLog) error {
	r.store.logMu.Lock()
	defer r.store.logMu.Unlock()
	r.store.logs = append(r.store.logs, log)
	return nil
}

func (s *fakeStore) logSnapshot() []*model.SystemLog {
	s.logMu.Lock()
	defer s.logMu.Unlock()
	return append([]*model.SystemLog(nil), s.logs...)
}

// --- unit of work ---

type fakeUnitOfWork struct{ store *fakeStore }

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	u.store.txActive = true
	return nil
}

func (u *fakeUnitOfWork) Commit() error {
	u.store.txActive = false
	u.store.committed++
	return nil
}

func (u *fakeUnitOfWork) Rollback() error {
	if u.store.txActive {
		u.store.rolledBack++
		u.store.txActive = false
	}
	return nil
}

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return &fakeUserRepo{store: u.store}
}

func (u *fakeUnitOfWork) NoteRepository() contract.NoteRepository {
	return &fakeNoteRepo{store: u.store}
}

func (u *fakeUnitOfWork) NoteHistoryRepository() contract.NoteHistoryRepository {
	return &fakeHistoryRepo{store: u.store}
}

func (u *fakeUnitOfWork) SystemLogRepository() contract.SystemLogRepository {
	return &fakeSystemLogRepo{store: u.store}
}

type fakeFactory struct{ store *fakeStore }

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

// --- collaborators ---

type fakePublisher struct{ published []events.Event }

func (p *fakePublisher) Publish(ctx context.Context, event events.Event) error {
	p.published = append(p.published, event)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
