package address

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

// ContactGuard confirms a contact exists and belongs to the caller. The
// contact service implements it; the check runs on every operation and is
// never cached across requests.
type ContactGuard interface {
	CheckContactMustExists(ctx context.Context, username string, contactID int64) error
}

// ServiceInterface defines methods for address business logic. Every
// operation follows the same pipeline: validate the request, confirm
// contact ownership, confirm address existence where one is addressed,
// touch the store, map the row to its public projection.
type ServiceInterface interface {
	Create(ctx context.Context, username string, req models.CreateAddressRequest) (*models.AddressResponse, error)
	Get(ctx context.Context, username string, req models.GetAddressRequest) (*models.AddressResponse, error)
	Update(ctx context.Context, username string, req models.UpdateAddressRequest) (*models.AddressResponse, error)
	Remove(ctx context.Context, username string, req models.RemoveAddressRequest) (*models.AddressResponse, error)
	List(ctx context.Context, username string, contactID int64) ([]models.AddressResponse, error)
}

type Service struct {
	addressRepo  RepositoryInterface
	contactGuard ContactGuard
	validator    Validator
}

func NewService(addressRepo RepositoryInterface, contactGuard ContactGuard, validator Validator) ServiceInterface {
	return &Service{
		addressRepo:  addressRepo,
		contactGuard: contactGuard,
		validator:    validator,
	}
}

// Create persists a new address under the caller's contact and returns its
// public projection. Nothing is written when validation or the ownership
// check fails.
func (s *Service) Create(ctx context.Context, username string, req models.CreateAddressRequest) (*models.AddressResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if err := s.contactGuard.CheckContactMustExists(ctx, username, req.ContactID); err != nil {
		return nil, err
	}

	address := &models.Address{
		ContactID:  req.ContactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	created, err := s.addressRepo.Create(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("service.CreateAddress: %w", err)
	}
	return toAddressResponse(created), nil
}

func (s *Service) Get(ctx context.Context, username string, req models.GetAddressRequest) (*models.AddressResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if err := s.contactGuard.CheckContactMustExists(ctx, username, req.ContactID); err != nil {
		return nil, err
	}

	address, err := s.addressRepo.FindByIDAndContactID(ctx, req.AddressID, req.ContactID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("service.GetAddress: %w", err)
	}
	return toAddressResponse(address), nil
}

// Update runs the same checks as Get, then overwrites all five fields on
// the matched row. Partial updates are not supported.
func (s *Service) Update(ctx context.Context, username string, req models.UpdateAddressRequest) (*models.AddressResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if err := s.contactGuard.CheckContactMustExists(ctx, username, req.ContactID); err != nil {
		return nil, err
	}

	// The UPDATE is scoped by both ids in one statement, so the address
	// existence check and the overwrite cannot disagree.
	address := &models.Address{
		ID:         req.ID,
		ContactID:  req.ContactID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	updated, err := s.addressRepo.Update(ctx, address)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("service.UpdateAddress: %w", err)
	}
	return toAddressResponse(updated), nil
}

// Remove deletes the matched row and returns its last known values.
func (s *Service) Remove(ctx context.Context, username string, req models.RemoveAddressRequest) (*models.AddressResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if err := s.contactGuard.CheckContactMustExists(ctx, username, req.ContactID); err != nil {
		return nil, err
	}

	address, err := s.addressRepo.FindByIDAndContactID(ctx, req.AddressID, req.ContactID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("service.RemoveAddress: %w", err)
	}

	if err := s.addressRepo.Delete(ctx, req.AddressID, req.ContactID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			// The row vanished between the lookup and the delete.
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("service.RemoveAddress: %w", err)
	}
	return toAddressResponse(address), nil
}

// List returns every address under the contact once ownership is confirmed.
// No per-address existence check is needed.
func (s *Service) List(ctx context.Context, username string, contactID int64) ([]models.AddressResponse, error) {
	if err := s.contactGuard.CheckContactMustExists(ctx, username, contactID); err != nil {
		return nil, err
	}

	addresses, err := s.addressRepo.ListByContactID(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("service.ListAddresses: %w", err)
	}

	responses := make([]models.AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		responses = append(responses, *toAddressResponse(address))
	}
	return responses, nil
}

// toAddressResponse projects a stored row onto the public response shape,
// dropping the contact linkage and storage metadata.
func toAddressResponse(address *models.Address) *models.AddressResponse {
	return &models.AddressResponse{
		ID:         address.ID,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		Country:    address.Country,
		PostalCode: address.PostalCode,
	}
}
