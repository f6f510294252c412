package repositories

import (
	"context"

	"github.com/suhlee/facilitysim/internal/models"
)

type FacilityRepository interface {
	BulkCreate(ctx context.Context, facilities []*models.Facility) error
	Create(ctx context.Context, facility *models.Facility) error
	GetAll(ctx context.Context) (map[string]*models.Facility, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type PersonaRepository interface {
	BulkCreate(ctx context.Context, personas []*models.Persona) error
	Create(ctx context.Context, persona *models.Persona) error
	GetAll(ctx context.Context) ([]*models.Persona, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}
