package repositories

import (
	"context"

	"lunargrid/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface is the remote collaborator owning the
// durable transaction store. The grid engine holds a read-mostly local copy
// and dispatches mutations here.
type TransactionRepositoryInterface interface {
	GetByMonth(ctx context.Context, userID uuid.UUID, year, month int) ([]models.Transaction, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	Create(ctx context.Context, transaction *models.Transaction) error
	Update(ctx context.Context, transaction *models.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepositoryInterface supplies category definitions; read-only to
// the engine.
type CategoryRepositoryInterface interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.CategoryDefinition, error)
}
