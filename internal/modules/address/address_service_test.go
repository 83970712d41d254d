package address

import (
	"context"
	"sort"
	"testing"
	"time"

	"contact-directory/internal/models"
	"contact-directory/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository keeps addresses in memory, scoping every lookup by both
// address id and contact id the way the real repository does.
type fakeRepository struct {
	nextID    int64
	addresses map[int64]*models.Address
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1, addresses: make(map[int64]*models.Address)}
}

func (f *fakeRepository) Create(_ context.Context, address *models.Address) (*models.Address, error) {
	address.ID = f.nextID
	f.nextID++
	address.CreatedAt = time.Now()
	address.UpdatedAt = address.CreatedAt
	stored := *address
	f.addresses[address.ID] = &stored
	return address, nil
}

func (f *fakeRepository) FindByIDAndContactID(_ context.Context, addressID, contactID int64) (*models.Address, error) {
	stored, ok := f.addresses[addressID]
	if !ok || stored.ContactID != contactID {
		return nil, models.ErrNotFound
	}
	found := *stored
	return &found, nil
}

func (f *fakeRepository) Update(_ context.Context, address *models.Address) (*models.Address, error) {
	stored, ok := f.addresses[address.ID]
	if !ok || stored.ContactID != address.ContactID {
		return nil, models.ErrNotFound
	}
	stored.Street = address.Street
	stored.City = address.City
	stored.Province = address.Province
	stored.Country = address.Country
	stored.PostalCode = address.PostalCode
	stored.UpdatedAt = time.Now()
	updated := *stored
	return &updated, nil
}

func (f *fakeRepository) Delete(_ context.Context, addressID, contactID int64) error {
	stored, ok := f.addresses[addressID]
	if !ok || stored.ContactID != contactID {
		return models.ErrNotFound
	}
	delete(f.addresses, addressID)
	return nil
}

func (f *fakeRepository) ListByContactID(_ context.Context, contactID int64) ([]*models.Address, error) {
	ids := make([]int64, 0, len(f.addresses))
	for id := range f.addresses {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []*models.Address
	for _, id := range ids {
		if f.addresses[id].ContactID == contactID {
			found := *f.addresses[id]
			out = append(out, &found)
		}
	}
	return out, nil
}

// fakeGuard owns a fixed username -> contact ids mapping and counts calls.
type fakeGuard struct {
	owned map[string][]int64
	calls int
}

func (f *fakeGuard) CheckContactMustExists(_ context.Context, username string, contactID int64) error {
	f.calls++
	for _, id := range f.owned[username] {
		if id == contactID {
			return nil
		}
	}
	return models.ErrNotFound
}

func newTestService() (ServiceInterface, *fakeRepository, *fakeGuard) {
	repo := newFakeRepository()
	guard := &fakeGuard{owned: map[string][]int64{
		"alice": {1, 2},
		"bob":   {3},
	}}
	return NewService(repo, guard, utils.NewValidator()), repo, guard
}

func validCreateRequest(contactID int64) models.CreateAddressRequest {
	return models.CreateAddressRequest{
		ContactID:  contactID,
		Street:     "Jalan Sudirman 1",
		City:       "Jakarta",
		Province:   "DKI Jakarta",
		Country:    "Indonesia",
		PostalCode: "10110",
	}
}

func TestAddressService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("echoes fields and assigns a new id", func(t *testing.T) {
		svc, _, _ := newTestService()

		req := validCreateRequest(1)
		resp, err := svc.Create(ctx, "alice", req)

		require.NoError(t, err)
		assert.NotZero(t, resp.ID)
		assert.Equal(t, req.Street, resp.Street)
		assert.Equal(t, req.City, resp.City)
		assert.Equal(t, req.Province, resp.Province)
		assert.Equal(t, req.Country, resp.Country)
		assert.Equal(t, req.PostalCode, resp.PostalCode)
	})

	t.Run("rejects any empty field before touching the store", func(t *testing.T) {
		blank := func(field string) models.CreateAddressRequest {
			req := validCreateRequest(1)
			switch field {
			case "street":
				req.Street = ""
			case "city":
				req.City = ""
			case "province":
				req.Province = ""
			case "country":
				req.Country = ""
			case "postal_code":
				req.PostalCode = ""
			}
			return req
		}

		for _, field := range []string{"street", "city", "province", "country", "postal_code"} {
			t.Run(field, func(t *testing.T) {
				svc, repo, guard := newTestService()

				_, err := svc.Create(ctx, "alice", blank(field))

				var ve *models.ValidationError
				require.ErrorAs(t, err, &ve)
				require.Len(t, ve.Fields, 1)
				assert.Equal(t, field, ve.Fields[0].Field)
				assert.Empty(t, repo.addresses, "no row may be written")
				assert.Zero(t, guard.calls, "validation runs before the ownership check")
			})
		}
	})

	t.Run("rejects a contact the caller does not own", func(t *testing.T) {
		svc, repo, _ := newTestService()

		_, err := svc.Create(ctx, "alice", validCreateRequest(3)) // bob's contact

		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Empty(t, repo.addresses)
	})
}

func TestAddressService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored address", func(t *testing.T) {
		svc, _, _ := newTestService()
		created, err := svc.Create(ctx, "alice", validCreateRequest(1))
		require.NoError(t, err)

		got, err := svc.Get(ctx, "alice", models.GetAddressRequest{ContactID: 1, AddressID: created.ID})

		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("unowned contact fails regardless of address validity", func(t *testing.T) {
		svc, _, _ := newTestService()
		created, err := svc.Create(ctx, "alice", validCreateRequest(1))
		require.NoError(t, err)

		_, err = svc.Get(ctx, "bob", models.GetAddressRequest{ContactID: 1, AddressID: created.ID})

		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("address under a different contact is invisible", func(t *testing.T) {
		svc, _, _ := newTestService()
		created, err := svc.Create(ctx, "alice", validCreateRequest(1))
		require.NoError(t, err)

		// Contact 2 is also alice's, but the address hangs off contact 1.
		_, err = svc.Get(ctx, "alice", models.GetAddressRequest{ContactID: 2, AddressID: created.ID})

		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestAddressService_Update(t *testing.T) {
	ctx := context.Background()

	update := func(id, contactID int64) models.UpdateAddressRequest {
		return models.UpdateAddressRequest{
			ID:         id,
			ContactID:  contactID,
			Street:     "Jalan Thamrin 9",
			City:       "Jakarta Pusat",
			Province:   "DKI Jakarta",
			Country:    "Indonesia",
			PostalCode: "10230",
		}
	}

	t.Run("overwrites all five fields", func(t *testing.T) {
		svc, _, _ := newTestService()
		created, err := svc.Create(ctx, "alice", validCreateRequest(1))
		require.NoError(t, err)

		resp, err := svc.Update(ctx, "alice", update(created.ID, 1))

		require.NoError(t, err)
		assert.Equal(t, created.ID, resp.ID)
		assert.Equal(t, "Jalan Thamrin 9", resp.Street)
		assert.Equal(t, "Jakarta Pusat", resp.City)
		assert.Equal(t, "10230", resp.PostalCode)
	})

	t.Run("is idempotent in effect", func(t *testing.T) {
		svc, _, _ := newTestService()
		created, err := svc.Create(ctx, "alice", validCreateRequest(1))
		require.NoError(t, err)

		first, err := svc.Update(ctx, "alice", update(created.ID, 1))
		require.NoError(t, err)
		second, err := svc.Update(ctx, "alice", update(created.ID, 1))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("empty field leaves the row unchanged", func(t *testing.T) {
		svc, repo, _ := newTestService()
		created, err := svc.Create(ctx, "alice", validCreateRequest(1))
		require.NoError(t, err)

		req := update(created.ID, 1)
		req.City = ""
		_, err = svc.Update(ctx, "alice", req)

		var ve *models.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, validCreateRequest(1).Street, repo.addresses[created.ID].Street)
	})

	t.Run("cross-contact address id is not updatable", func(t *testing.T) {
		svc, repo, _ := newTestService()
		created, err := svc.Create(ctx, "alice", validCreateRequest(1))
		require.NoError(t, err)

		_, err = svc.Update(ctx, "alice", update(created.ID, 2))

		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Equal(t, validCreateRequest(1).Street, repo.addresses[created.ID].Street)
	})
}

func TestAddressService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the last known values and deletes the row", func(t *testing.T) {
		svc, repo, _ := newTestService()
		created, err := svc.Create(ctx, "alice", validCreateRequest(1))
		require.NoError(t, err)

		removed, err := svc.Remove(ctx, "alice", models.RemoveAddressRequest{ContactID: 1, AddressID: created.ID})

		require.NoError(t, err)
		assert.Equal(t, created, removed)
		assert.Empty(t, repo.addresses)
	})

	t.Run("remove then get reports not found", func(t *testing.T) {
		svc, _, _ := newTestService()
		created, err := svc.Create(ctx, "alice", validCreateRequest(1))
		require.NoError(t, err)

		_, err = svc.Remove(ctx, "alice", models.RemoveAddressRequest{ContactID: 1, AddressID: created.ID})
		require.NoError(t, err)

		_, err = svc.Get(ctx, "alice", models.GetAddressRequest{ContactID: 1, AddressID: created.ID})
		assert.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("unowned contact fails before anything is deleted", func(t *testing.T) {
		svc, repo, _ := newTestService()
		created, err := svc.Create(ctx, "alice", validCreateRequest(1))
		require.NoError(t, err)

		_, err = svc.Remove(ctx, "bob", models.RemoveAddressRequest{ContactID: 1, AddressID: created.ID})

		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Len(t, repo.addresses, 1)
	})
}

func TestAddressService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the contact's addresses in insertion order", func(t *testing.T) {
		svc, _, _ := newTestService()

		first, err := svc.Create(ctx, "alice", validCreateRequest(1))
		require.NoError(t, err)
		second, err := svc.Create(ctx, "alice", validCreateRequest(1))
		require.NoError(t, err)
		_, err = svc.Create(ctx, "alice", validCreateRequest(2)) // other contact
		require.NoError(t, err)

		list, err := svc.List(ctx, "alice", 1)

		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, first.ID, list[0].ID)
		assert.Equal(t, second.ID, list[1].ID)
	})

	t.Run("unowned contact reports not found", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.List(ctx, "alice", 3)

		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

// The full lifecycle a client walks through: create, read back, overwrite,
// delete, confirm it is gone.
func TestAddressService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService()

	created, err := svc.Create(ctx, "alice", models.CreateAddressRequest{
		ContactID:  1,
		Street:     "street test",
		City:       "city test",
		Province:   "province test",
		Country:    "country test",
		PostalCode: "1111",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.Equal(t, "street test", created.Street)
	assert.Equal(t, "city test", created.City)
	assert.Equal(t, "province test", created.Province)
	assert.Equal(t, "country test", created.Country)
	assert.Equal(t, "1111", created.PostalCode)

	updated, err := svc.Update(ctx, "alice", models.UpdateAddressRequest{
		ID:         created.ID,
		ContactID:  1,
		Street:     "street updated",
		City:       "city updated",
		Province:   "province updated",
		Country:    "country updated",
		PostalCode: "2222",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "street updated", updated.Street)
	assert.Equal(t, "2222", updated.PostalCode)

	removed, err := svc.Remove(ctx, "alice", models.RemoveAddressRequest{ContactID: 1, AddressID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, updated, removed)

	_, err = svc.Get(ctx, "alice", models.GetAddressRequest{ContactID: 1, AddressID: created.ID})
	assert.ErrorIs(t, err, models.ErrNotFound)
}
