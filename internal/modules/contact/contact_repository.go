package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"contact-directory/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for contact storage. Every lookup
// is scoped by the owner's username so absence and non-ownership look the
// same to callers.
type RepositoryInterface interface {
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	FindByIDAndUsername(ctx context.Context, contactID int64, username string) (*models.Contact, error)
	ExistsByIDAndUsername(ctx context.Context, contactID int64, username string) (bool, error)
	Update(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	Delete(ctx context.Context, contactID int64, username string) error
	Search(ctx context.Context, username string, req models.SearchContactRequest) ([]*models.Contact, int64, error)
}

// Repository implements the RepositoryInterface.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new contact repository.
func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

// Create inserts a new contact owned by contact.Username.
func (r *Repository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	query := `
		INSERT INTO contacts (username, first_name, last_name, email, phone)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		contact.Username, contact.FirstName, contact.LastName, contact.Email, contact.Phone,
	).Scan(&contact.ID, &contact.CreatedAt, &contact.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("repository.CreateContact: %w", err)
	}
	return contact, nil
}

// scanContact is a helper to scan a row into a Contact model.
func (r *Repository) scanContact(row pgx.Row) (*models.Contact, error) {
	var contact models.Contact
	err := row.Scan(
		&contact.ID,
		&contact.Username,
		&contact.FirstName,
		&contact.LastName,
		&contact.Email,
		&contact.Phone,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan contact: %w", err)
	}
	return &contact, nil
}

func (r *Repository) FindByIDAndUsername(ctx context.Context, contactID int64, username string) (*models.Contact, error) {
	query := `
		SELECT id, username, first_name, COALESCE(last_name, ''), COALESCE(email, ''), COALESCE(phone, ''), created_at, updated_at
		FROM contacts
		WHERE id = $1 AND username = $2`

	contact, err := r.scanContact(r.db.QueryRow(ctx, query, contactID, username))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindContact: %w", err)
	}
	return contact, nil
}

func (r *Repository) ExistsByIDAndUsername(ctx context.Context, contactID int64, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM contacts WHERE id = $1 AND username = $2)`
	if err := r.db.QueryRow(ctx, query, contactID, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("repository.ContactExists: %w", err)
	}
	return exists, nil
}

// Update overwrites every mutable field of the contact matched by both id
// and owner username.
func (r *Repository) Update(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	query := `
		UPDATE contacts
		SET first_name = $1, last_name = $2, email = $3, phone = $4, updated_at = NOW()
		WHERE id = $5 AND username = $6
		RETURNING id, username, first_name, COALESCE(last_name, ''), COALESCE(email, ''), COALESCE(phone, ''), created_at, updated_at`

	updated, err := r.scanContact(r.db.QueryRow(ctx, query,
		contact.FirstName, contact.LastName, contact.Email, contact.Phone, contact.ID, contact.Username,
	))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.UpdateContact: %w", err)
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, contactID int64, username string) error {
	query := `DELETE FROM contacts WHERE id = $1 AND username = $2`
	cmdTag, err := r.db.Exec(ctx, query, contactID, username)
	if err != nil {
		return fmt.Errorf("repository.DeleteContact: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound // Contact not found or not owned by the caller
	}
	return nil
}

// Search retrieves one page of the caller's contacts matching the optional
// name/email/phone filters, plus the total match count.
func (r *Repository) Search(ctx context.Context, username string, req models.SearchContactRequest) ([]*models.Contact, int64, error) {
	whereClauses := []string{"username = $1"}
	args := []interface{}{username}
	argIdx := 2

	if req.Name != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+req.Name+"%")
		argIdx++
	}
	if req.Email != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("email ILIKE $%d", argIdx))
		args = append(args, "%"+req.Email+"%")
		argIdx++
	}
	if req.Phone != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("phone ILIKE $%d", argIdx))
		args = append(args, "%"+req.Phone+"%")
		argIdx++
	}

	where := strings.Join(whereClauses, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM contacts WHERE " + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repository.SearchContacts.Count: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, username, first_name, COALESCE(last_name, ''), COALESCE(email, ''), COALESCE(phone, ''), created_at, updated_at
		FROM contacts
		WHERE %s
		ORDER BY id
		LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)
	args = append(args, req.Size, (req.Page-1)*req.Size)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("repository.SearchContacts.Query: %w", err)
	}
	defer rows.Close()

	var contacts []*models.Contact
	for rows.Next() {
		contact, err := r.scanContact(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repository.SearchContacts.Scan: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repository.SearchContacts: %w", err)
	}

	return contacts, total, nil
}
