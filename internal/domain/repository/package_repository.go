package repository

import "github.com/logitrack/logistics-api/internal/domain/entity"

// PackageRepository defines the interface for package-related database operations.
type PackageRepository interface {
	Create(p *entity.Package) error
	GetByID(id string) (*entity.Package, error)
	GetByTrackingCode(code string) (*entity.Package, error)
	ListByOwner(ownerID string) ([]*entity.Package, error)
	ListAll() ([]*entity.Package, error)
	UpdateStatus(id string, status entity.PackageStatus) (*entity.Package, error)
}
