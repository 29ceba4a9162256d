package unitofwork

import (
	"context"

	"shared-notes-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	NoteRepository() contract.NoteRepository
	NoteHistoryRepository() contract.NoteHistoryRepository
	SystemLogRepository() contract.SystemLogRepository
}
