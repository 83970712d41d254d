package address

import (
	"context"
	"errors"
	"fmt"

	"contact-directory/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for address storage. Every read
// and mutation is scoped by both address id and contact id, so an address
// can never be reached through another contact.
type RepositoryInterface interface {
	Create(ctx context.Context, address *models.Address) (*models.Address, error)
	FindByIDAndContactID(ctx context.Context, addressID, contactID int64) (*models.Address, error)
	Update(ctx context.Context, address *models.Address) (*models.Address, error)
	Delete(ctx context.Context, addressID, contactID int64) error
	ListByContactID(ctx context.Context, contactID int64) ([]*models.Address, error)
}

// Repository implements the RepositoryInterface.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new address repository.
func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

// Create inserts a new address row linked to address.ContactID.
func (r *Repository) Create(ctx context.Context, address *models.Address) (*models.Address, error) {
	query := `
		INSERT INTO addresses (contact_id, street, city, province, country, postal_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		address.ContactID, address.Street, address.City, address.Province, address.Country, address.PostalCode,
	).Scan(&address.ID, &address.CreatedAt, &address.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("repository.CreateAddress: %w", err)
	}
	return address, nil
}

// scanAddress is a helper to scan a row into an Address model.
func (r *Repository) scanAddress(row pgx.Row) (*models.Address, error) {
	var address models.Address
	err := row.Scan(
		&address.ID,
		&address.ContactID,
		&address.Street,
		&address.City,
		&address.Province,
		&address.Country,
		&address.PostalCode,
		&address.CreatedAt,
		&address.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan address: %w", err)
	}
	return &address, nil
}

func (r *Repository) FindByIDAndContactID(ctx context.Context, addressID, contactID int64) (*models.Address, error) {
	query := `
		SELECT id, contact_id, COALESCE(street, ''), COALESCE(city, ''), COALESCE(province, ''), COALESCE(country, ''), COALESCE(postal_code, ''), created_at, updated_at
		FROM addresses
		WHERE id = $1 AND contact_id = $2`

	address, err := r.scanAddress(r.db.QueryRow(ctx, query, addressID, contactID))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindAddress: %w", err)
	}
	return address, nil
}

// Update overwrites all five textual fields of the row matched by both
// address id and contact id. A missing match reports models.ErrNotFound and
// mutates nothing.
func (r *Repository) Update(ctx context.Context, address *models.Address) (*models.Address, error) {
	query := `
		UPDATE addresses
		SET street = $1, city = $2, province = $3, country = $4, postal_code = $5, updated_at = NOW()
		WHERE id = $6 AND contact_id = $7
		RETURNING id, contact_id, street, city, province, country, postal_code, created_at, updated_at`

	updated, err := r.scanAddress(r.db.QueryRow(ctx, query,
		address.Street, address.City, address.Province, address.Country, address.PostalCode,
		address.ID, address.ContactID,
	))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.UpdateAddress: %w", err)
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, addressID, contactID int64) error {
	query := `DELETE FROM addresses WHERE id = $1 AND contact_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, addressID, contactID)
	if err != nil {
		return fmt.Errorf("repository.DeleteAddress: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound // Address not found under this contact
	}
	return nil
}

// ListByContactID retrieves every address of the contact in insertion order.
func (r *Repository) ListByContactID(ctx context.Context, contactID int64) ([]*models.Address, error) {
	query := `
		SELECT id, contact_id, COALESCE(street, ''), COALESCE(city, ''), COALESCE(province, ''), COALESCE(country, ''), COALESCE(postal_code, ''), created_at, updated_at
		FROM addresses
		WHERE contact_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, contactID)
	if err != nil {
		return nil, fmt.Errorf("repository.ListAddresses.Query: %w", err)
	}
	defer rows.Close()

	var addresses []*models.Address
	for rows.Next() {
		address, err := r.scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("repository.ListAddresses.Scan: %w", err)
		}
		addresses = append(addresses, address)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository.ListAddresses: %w", err)
	}

	return addresses, nil
}
