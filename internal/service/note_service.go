package service

import (
	"context"
	"fmt"
	"time"

	"shared-notes-be/internal/dto"
	"shared-notes-be/internal/entity"
	"shared-notes-be/internal/pkg/apperr"
	"shared-notes-be/internal/pkg/logger"
	"shared-notes-be/internal/repository/specification"
	"shared-notes-be/internal/repository/unitofwork"
	"shared-notes-be/pkg/access"

	"github.com/google/uuid"
)

type INoteService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	UpdateWithHistory(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Share(ctx context.Context, userId uuid.UUID, req *dto.ShareNoteRequest) (*dto.NoteResponse, error)
	History(ctx context.Context, userId uuid.UUID, id uuid.UUID) ([]*dto.NoteHistoryResponse, error)
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	policy           *access.Policy
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	sysLogger logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		policy:           access.NewPolicy(),
		publisherService: publisherService,
		logger:           sysLogger,
	}
}

func (s *noteService) findNote(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Note, error) {
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperr.NotFound("Note not found")
	}
	return note, nil
}

// publishActivity emits an audit event. Failures are logged, never
// surfaced: the audit trail is auxiliary to the request.
func (s *noteService) publishActivity(ctx context.Context, event string, noteId, userId uuid.UUID) {
	msg := dto.NoteActivityMessage{
		Event:      event,
		NoteId:     noteId,
		UserId:     userId,
		OccurredAt: time.Now(),
	}
	if err := s.publisherService.Publish(ctx, msg); err != nil {
		s.logger.Warn("note", "Failed to publish activity event", map[string]interface{}{
			"event": event,
			"error": err.Error(),
		})
	}
}

func (s *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note := entity.Note{
		Id:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		UserId:    userId,
		CreatedAt: time.Now(),
	}

	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, err
	}

	s.publishActivity(ctx, "NOTE_CREATED", note.Id, userId)

	return dto.NewNoteResponse(&note), nil
}

func (s *noteService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findNote(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	if !s.policy.CanRead(userId, note) {
		return nil, apperr.Forbidden("You do not have permission to access this note")
	}

	return dto.NewNoteResponse(note), nil
}

// Update overwrites title and content without recording a history entry.
func (s *noteService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findNote(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	if !s.policy.CanEdit(userId, note) {
		return nil, apperr.Forbidden("You do not have permission to edit this note")
	}

	now := time.Now()
	note.Title = req.Title
	note.Content = req.Content
	note.UpdatedAt = &now

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	s.publishActivity(ctx, "NOTE_UPDATED", note.Id, userId)

	return dto.NewNoteResponse(note), nil
}

// UpdateWithHistory snapshots the current content before applying the
// update: the history row always reflects the state immediately before
// the change. The two writes are deliberately not wrapped in a
// transaction; concurrent edits race with last-write-wins semantics.
func (s *noteService) UpdateWithHistory(ctx context.Context, userId uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findNote(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	if !s.policy.CanEdit(userId, note) {
		return nil, apperr.Forbidden("You do not have permission to edit this note")
	}

	history := entity.NoteHistory{
		Id:        uuid.New(),
		NoteId:    note.Id,
		Content:   note.Content,
		UpdatedBy: userId,
		UpdatedAt: time.Now(),
	}
	if err := uow.NoteHistoryRepository().Create(ctx, &history); err != nil {
		return nil, err
	}

	now := time.Now()
	note.Title = req.Title
	note.Content = req.Content
	note.UpdatedAt = &now

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, err
	}

	s.publishActivity(ctx, "NOTE_UPDATED", note.Id, userId)

	return dto.NewNoteResponse(note), nil
}

// Share resolves each username in order and adds it to the shared-with
// set. An unknown username aborts the loop; additions made before the
// failing entry stay committed.
func (s *noteService) Share(ctx context.Context, userId uuid.UUID, req *dto.ShareNoteRequest) (*dto.NoteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findNote(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	if !s.policy.CanShare(userId, note) {
		return nil, apperr.Forbidden("You do not have permission to share this note")
	}

	for _, username := range req.SharedWith {
		user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: username})
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, apperr.NotFound(fmt.Sprintf("User not found: %s", username))
		}
		if err := uow.NoteRepository().AddShare(ctx, note.Id, user.Id); err != nil {
			return nil, err
		}
	}

	note, err = s.findNote(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	s.publishActivity(ctx, "NOTE_SHARED", note.Id, userId)

	return dto.NewNoteResponse(note), nil
}

func (s *noteService) History(ctx context.Context, userId uuid.UUID, id uuid.UUID) ([]*dto.NoteHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findNote(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	if !s.policy.CanRead(userId, note) {
		return nil, apperr.Forbidden("You do not have permission to access this note's history")
	}

	histories, err := uow.NoteHistoryRepository().FindAll(ctx,
		specification.ByNoteID{NoteID: note.Id},
		specification.OrderBy{Field: "updated_at"},
	)
	if err != nil {
		return nil, err
	}

	return dto.NewNoteHistoryResponses(histories), nil
}

// Delete removes the note together with its history and share rows in a
// single transaction. The cascade is explicit, not delegated to the ORM.
func (s *noteService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	note, err := s.findNote(ctx, uow, id)
	if err != nil {
		return err
	}

	if !s.policy.CanDelete(userId, note) {
		return apperr.Forbidden("You do not have permission to delete this note")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.NoteHistoryRepository().DeleteByNoteId(ctx, note.Id); err != nil {
		return err
	}
	if err := uow.NoteRepository().DeleteSharesByNoteId(ctx, note.Id); err != nil {
		return err
	}
	if err := uow.NoteRepository().Delete(ctx, note.Id); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.publishActivity(ctx, "NOTE_DELETED", note.Id, userId)

	return nil
}
