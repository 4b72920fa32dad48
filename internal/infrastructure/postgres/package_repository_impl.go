package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/logitrack/logistics-api/internal/domain/entity"
	"github.com/logitrack/logistics-api/internal/domain/repository"
	"github.com/logitrack/logistics-api/pkg/apperr"
)

type PackageRepository struct {
	pool *pgxpool.Pool
}

func NewPackageRepository(pool *pgxpool.Pool) *PackageRepository {
	return &PackageRepository{pool: pool}
}

const packageColumns = `id, tracking_code, description, weight, origin_address,
	destination_address, recipient_name, recipient_phone, status, owner_id,
	created_at, updated_at`

func scanPackage(row pgx.Row) (*entity.Package, error) {
	p := &entity.Package{}
	if err := row.Scan(&p.ID, &p.TrackingCode, &p.Description, &p.Weight,
		&p.OriginAddress, &p.DestinationAddress, &p.RecipientName,
		&p.RecipientPhone, &p.Status, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PackageRepository) Create(p *entity.Package) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO packages (id, tracking_code, description, weight, origin_address,
			destination_address, recipient_name, recipient_phone, status, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`, p.ID, p.TrackingCode, p.Description, p.Weight, p.OriginAddress,
		p.DestinationAddress, p.RecipientName, p.RecipientPhone, p.Status, p.OwnerID)

	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflict("tracking code %s already exists", p.TrackingCode)
		}
		if isForeignKeyViolation(err) {
			return apperr.Conflict("owner %s does not exist", p.OwnerID)
		}
		return err
	}
	return nil
}

func (r *PackageRepository) GetByID(id string) (*entity.Package, error) {
	ctx := context.Background()
	p, err := scanPackage(r.pool.QueryRow(ctx, `
		SELECT `+packageColumns+`
		FROM packages
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("package %s not found", id)
		}
		return nil, err
	}
	return p, nil
}

func (r *PackageRepository) GetByTrackingCode(code string) (*entity.Package, error) {
	ctx := context.Background()
	p, err := scanPackage(r.pool.QueryRow(ctx, `
		SELECT `+packageColumns+`
		FROM packages
		WHERE tracking_code = $1
	`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("tracking code %s not found", code)
		}
		return nil, err
	}
	return p, nil
}

func (r *PackageRepository) ListByOwner(ownerID string) ([]*entity.Package, error) {
	return r.list(`
		SELECT `+packageColumns+`
		FROM packages
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
}

func (r *PackageRepository) ListAll() ([]*entity.Package, error) {
	return r.list(`
		SELECT ` + packageColumns + `
		FROM packages
		ORDER BY created_at DESC
	`)
}

func (r *PackageRepository) list(query string, args ...any) ([]*entity.Package, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var packages []*entity.Package
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

func (r *PackageRepository) UpdateStatus(id string, status entity.PackageStatus) (*entity.Package, error) {
	ctx := context.Background()
	p, err := scanPackage(r.pool.QueryRow(ctx, `
		UPDATE packages
		SET status = $1, updated_at = now()
		WHERE id = $2
		RETURNING `+packageColumns+`
	`, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("package %s not found", id)
		}
		return nil, err
	}
	return p, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

var _ repository.PackageRepository = (*PackageRepository)(nil)
