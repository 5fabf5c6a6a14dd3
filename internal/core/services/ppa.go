package services

import (
	"context"

	"github.com/go-playground/validator/v10"

	"ppalog/internal/core/domain"
	"ppalog/internal/core/ports"
)

// PPAManager covers the supervisor side of PPA handling: creating a
// place of primary assignment and listing the ones already owned.
type PPAManager struct {
	backend  ports.PPAAPI
	validate *validator.Validate
}

func NewPPAManager(backend ports.PPAAPI) *PPAManager {
	return &PPAManager{backend: backend, validate: newValidator()}
}

// Create registers a new PPA. The join code on the returned PPA is
// issued by the backend and never changes.
func (m *PPAManager) Create(ctx context.Context, req domain.CreatePPARequest) (*domain.PPA, error) {
	if err := checkStruct(m.validate, req); err != nil {
		return nil, err
	}
	return m.backend.CreatePPA(ctx, req)
}

// Mine lists the calling supervisor's PPAs.
func (m *PPAManager) Mine(ctx context.Context) ([]domain.PPA, error) {
	return m.backend.MyPPAs(ctx)
}
