package contact

import (
	"context"
	"errors"
	"fmt"

	"contact-directory/internal/models"
)

// Validator checks a request DTO against its struct tags and reports
// failures as a *models.ValidationError.
type Validator interface {
	Validate(s interface{}) error
}

// ServiceInterface defines methods for contact business logic. It doubles as
// the ownership guard for the address module through CheckContactMustExists.
type ServiceInterface interface {
	Create(ctx context.Context, username string, req models.CreateContactRequest) (*models.ContactResponse, error)
	Get(ctx context.Context, username string, contactID int64) (*models.ContactResponse, error)
	Update(ctx context.Context, username string, req models.UpdateContactRequest) (*models.ContactResponse, error)
	Remove(ctx context.Context, username string, contactID int64) error
	Search(ctx context.Context, username string, req models.SearchContactRequest) ([]models.ContactResponse, models.PageMetadata, error)
	CheckContactMustExists(ctx context.Context, username string, contactID int64) error
}

type Service struct {
	contactRepo RepositoryInterface
	validator   Validator
}

func NewService(contactRepo RepositoryInterface, validator Validator) ServiceInterface {
	return &Service{
		contactRepo: contactRepo,
		validator:   validator,
	}
}

func (s *Service) Create(ctx context.Context, username string, req models.CreateContactRequest) (*models.ContactResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	contact := &models.Contact{
		Username:  username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	created, err := s.contactRepo.Create(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("service.CreateContact: %w", err)
	}
	return toContactResponse(created), nil
}

func (s *Service) Get(ctx context.Context, username string, contactID int64) (*models.ContactResponse, error) {
	contact, err := s.contactRepo.FindByIDAndUsername(ctx, contactID, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("service.GetContact: %w", err)
	}
	return toContactResponse(contact), nil
}

func (s *Service) Update(ctx context.Context, username string, req models.UpdateContactRequest) (*models.ContactResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	// The UPDATE is scoped by id and username in one statement, so the
	// ownership check and the overwrite cannot disagree.
	contact := &models.Contact{
		ID:        req.ID,
		Username:  username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	updated, err := s.contactRepo.Update(ctx, contact)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("service.UpdateContact: %w", err)
	}
	return toContactResponse(updated), nil
}

func (s *Service) Remove(ctx context.Context, username string, contactID int64) error {
	err := s.contactRepo.Delete(ctx, contactID, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return models.ErrNotFound
		}
		return fmt.Errorf("service.RemoveContact: %w", err)
	}
	return nil
}

func (s *Service) Search(ctx context.Context, username string, req models.SearchContactRequest) ([]models.ContactResponse, models.PageMetadata, error) {
	// Absent paging values fall back to the first page of ten before
	// validation so that a bare search is always well formed.
	if req.Page == 0 {
		req.Page = 1
	}
	if req.Size == 0 {
		req.Size = 10
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, models.PageMetadata{}, err
	}

	contacts, total, err := s.contactRepo.Search(ctx, username, req)
	if err != nil {
		return nil, models.PageMetadata{}, fmt.Errorf("service.SearchContacts: %w", err)
	}

	responses := make([]models.ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		responses = append(responses, *toContactResponse(contact))
	}

	paging := models.PageMetadata{
		Page:      req.Page,
		Size:      req.Size,
		TotalItem: total,
		TotalPage: (total + int64(req.Size) - 1) / int64(req.Size),
	}
	return responses, paging, nil
}

// CheckContactMustExists confirms the contact exists and belongs to
// username. The check runs on every call; the answer is never cached across
// requests.
func (s *Service) CheckContactMustExists(ctx context.Context, username string, contactID int64) error {
	exists, err := s.contactRepo.ExistsByIDAndUsername(ctx, contactID, username)
	if err != nil {
		return fmt.Errorf("service.CheckContactMustExists: %w", err)
	}
	if !exists {
		return models.ErrNotFound
	}
	return nil
}

func toContactResponse(contact *models.Contact) *models.ContactResponse {
	return &models.ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}
