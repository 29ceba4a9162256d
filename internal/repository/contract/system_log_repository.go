package contract

import (
	"context"

	"shared-notes-be/internal/model"
)

type SystemLogRepository interface {
	Create(ctx context.Context, log *model.SystemLog) error
}
