package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/snapmarket/snapmarket-api/internal/domain/booking"
	"github.com/snapmarket/snapmarket-api/internal/httperr"
	"github.com/snapmarket/snapmarket-api/internal/models"
)

// ======================================================
// FAKE REPOSITORY
// ======================================================

type fakeRepo struct {
	profiles      map[string]*models.Profile
	photographers map[string]*models.PhotographerProfile
	bookings      []*models.Booking
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		profiles:      map[string]*models.Profile{},
		photographers: map[string]*models.PhotographerProfile{},
	}
}

func (r *fakeRepo) addUser(id, name, role string) {
	r.profiles[id] = &models.Profile{ID: id, FullName: name, Role: role}
	if role == models.RolePhotographer {
		r.photographers[id] = &models.PhotographerProfile{ID: "pp-" + id, UserID: id, Available: true}
	}
}

func (r *fakeRepo) GetProfileByID(_ context.Context, id string) (*models.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func (r *fakeRepo) GetPhotographerProfileByUser(_ context.Context, userID string) (*models.PhotographerProfile, error) {
	p, ok := r.photographers[userID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func (r *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	stored := *b
	if client, ok := r.profiles[b.ClientID]; ok {
		stored.Client = *client
	}
	if photographer, ok := r.profiles[b.PhotographerID]; ok {
		stored.Photographer = *photographer
	}
	r.bookings = append(r.bookings, &stored)
	return nil
}

// Returns matches in insertion order; ordering is the use case's
// contract, not the fake's.
func (r *fakeRepo) ListBookingsForUser(_ context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ClientID == userID || b.PhotographerID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetBookingForPhotographer(_ context.Context, bookingID, photographerID string) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.ID == bookingID && b.PhotographerID == photographerID {
			return b, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	for i, stored := range r.bookings {
		if stored.ID == b.ID {
			updated := *b
			updated.Client = stored.Client
			updated.Photographer = stored.Photographer
			r.bookings[i] = &updated
			return nil
		}
	}
	return errors.New("record not found")
}

var _ domain.Repository = (*fakeRepo)(nil)

// ======================================================
// CREATE
// ======================================================

func TestCreateBookingAlwaysPending(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser("client-1", "Cleo Client", models.RoleClient)
	repo.addUser("photo-1", "Pat Photographer", models.RolePhotographer)

	uc := NewCreateBooking(repo, nil)

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		ClientID:       "client-1",
		PhotographerID: "photo-1",
		ServiceType:    "Portrait",
		PreferredDate:  time.Now().AddDate(0, 0, 1),
		Message:        "Need outdoor shoot",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if b.Status != string(domain.StatusPending) {
		t.Errorf("status = %q, want pending", b.Status)
	}
	if b.ID == "" {
		t.Error("booking created without an id")
	}
}

func TestCreateBookingUnknownClient(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser("photo-1", "Pat Photographer", models.RolePhotographer)

	uc := NewCreateBooking(repo, nil)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ClientID:       "nobody",
		PhotographerID: "photo-1",
		ServiceType:    "Portrait",
		PreferredDate:  time.Now().AddDate(0, 0, 1),
	})
	if !httperr.IsBusiness(err, "client_not_found") {
		t.Fatalf("Execute = %v, want client_not_found", err)
	}
	if len(repo.bookings) != 0 {
		t.Error("booking stored despite unresolved client")
	}
}

func TestCreateBookingUnknownPhotographer(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser("client-1", "Cleo Client", models.RoleClient)

	uc := NewCreateBooking(repo, nil)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ClientID:       "client-1",
		PhotographerID: "nobody",
		ServiceType:    "Portrait",
		PreferredDate:  time.Now().AddDate(0, 0, 1),
	})
	if !httperr.IsBusiness(err, "photographer_not_found") {
		t.Fatalf("Execute = %v, want photographer_not_found", err)
	}
	if len(repo.bookings) != 0 {
		t.Error("booking stored despite unresolved photographer")
	}
}

// ======================================================
// LIST
// ======================================================

func TestListBookingsForUserFiltersAndOrders(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser("client-1", "Cleo Client", models.RoleClient)
	repo.addUser("client-2", "Carl Client", models.RoleClient)
	repo.addUser("photo-1", "Pat Photographer", models.RolePhotographer)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// Deliberately out of creation order.
	seed := []*models.Booking{
		{ID: "b2", ClientID: "client-1", PhotographerID: "photo-1", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "b1", ClientID: "client-1", PhotographerID: "photo-1", CreatedAt: base.Add(1 * time.Hour)},
		{ID: "b3", ClientID: "client-1", PhotographerID: "photo-1", CreatedAt: base.Add(3 * time.Hour)},
		{ID: "other", ClientID: "client-2", PhotographerID: "photo-1", CreatedAt: base.Add(4 * time.Hour)},
	}
	for _, b := range seed {
		if err := repo.CreateBooking(context.Background(), b); err != nil {
			t.Fatal(err)
		}
	}

	uc := NewListBookingsForUser(repo)

	got, err := uc.Execute(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("got %d bookings, want 3", len(got))
	}
	for _, b := range got {
		if b.ClientID != "client-1" && b.PhotographerID != "client-1" {
			t.Errorf("booking %s does not involve client-1", b.ID)
		}
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].CreatedAt.After(got[i].CreatedAt) {
			t.Errorf("not strictly newest-first at index %d: %v then %v",
				i, got[i-1].CreatedAt, got[i].CreatedAt)
		}
	}
}

func TestListBookingsJoinsPartyNames(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser("client-1", "Cleo Client", models.RoleClient)
	repo.addUser("photo-1", "Pat Photographer", models.RolePhotographer)

	if err := repo.CreateBooking(context.Background(), &models.Booking{
		ID: "b1", ClientID: "client-1", PhotographerID: "photo-1",
		CreatedAt: time.Now(),
	}); err != nil {
		t.Fatal(err)
	}

	got, err := NewListBookingsForUser(repo).Execute(context.Background(), "photo-1")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if got[0].ClientName != "Cleo Client" || got[0].PhotographerName != "Pat Photographer" {
		t.Errorf("party names = %q / %q, want Cleo Client / Pat Photographer",
			got[0].ClientName, got[0].PhotographerName)
	}
}

// ======================================================
// DECIDE
// ======================================================

func TestDecideBookingByOwner(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser("client-1", "Cleo Client", models.RoleClient)
	repo.addUser("photo-1", "Pat Photographer", models.RolePhotographer)

	if err := repo.CreateBooking(context.Background(), &models.Booking{
		ID: "b1", ClientID: "client-1", PhotographerID: "photo-1",
		Status: string(domain.StatusPending),
	}); err != nil {
		t.Fatal(err)
	}

	uc := NewDecideBooking(repo, nil)

	b, err := uc.Execute(context.Background(), "photo-1", "b1", domain.StatusAccepted)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if b.Status != string(domain.StatusAccepted) {
		t.Errorf("status = %q, want accepted", b.Status)
	}
}

func TestDecideBookingOwnershipEnforced(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser("client-1", "Cleo Client", models.RoleClient)
	repo.addUser("photo-1", "Pat Photographer", models.RolePhotographer)
	repo.addUser("photo-2", "Paula Photographer", models.RolePhotographer)

	if err := repo.CreateBooking(context.Background(), &models.Booking{
		ID: "b1", ClientID: "client-1", PhotographerID: "photo-1",
		Status: string(domain.StatusPending),
	}); err != nil {
		t.Fatal(err)
	}

	uc := NewDecideBooking(repo, nil)

	_, err := uc.Execute(context.Background(), "photo-2", "b1", domain.StatusAccepted)
	if !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("Execute by non-owner = %v, want booking_not_found", err)
	}
}

func TestDecideBookingTerminalStateRejected(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser("client-1", "Cleo Client", models.RoleClient)
	repo.addUser("photo-1", "Pat Photographer", models.RolePhotographer)

	if err := repo.CreateBooking(context.Background(), &models.Booking{
		ID: "b1", ClientID: "client-1", PhotographerID: "photo-1",
		Status: string(domain.StatusPending),
	}); err != nil {
		t.Fatal(err)
	}

	uc := NewDecideBooking(repo, nil)

	if _, err := uc.Execute(context.Background(), "photo-1", "b1", domain.StatusAccepted); err != nil {
		t.Fatalf("first decision: %v", err)
	}

	_, err := uc.Execute(context.Background(), "photo-1", "b1", domain.StatusDeclined)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("second decision = %v, want invalid_state", err)
	}
}

// ======================================================
// END TO END
// ======================================================

func TestBookingLifecycle(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser("client-1", "Cleo Client", models.RoleClient)
	repo.addUser("photo-1", "Pat Photographer", models.RolePhotographer)

	createUC := NewCreateBooking(repo, nil)
	listUC := NewListBookingsForUser(repo)
	decideUC := NewDecideBooking(repo, nil)

	ctx := context.Background()

	created, err := createUC.Execute(ctx, CreateBookingInput{
		ClientID:       "client-1",
		PhotographerID: "photo-1",
		ServiceType:    "Portrait",
		PreferredDate:  time.Now().AddDate(0, 0, 1),
		Message:        "Need outdoor shoot",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	for _, userID := range []string{"client-1", "photo-1"} {
		got, err := listUC.Execute(ctx, userID)
		if err != nil {
			t.Fatalf("list for %s: %v", userID, err)
		}
		if len(got) != 1 || got[0].ID != created.ID || got[0].Status != "pending" {
			t.Fatalf("list for %s = %+v, want the pending booking", userID, got)
		}
	}

	if _, err := decideUC.Execute(ctx, "photo-1", created.ID, domain.StatusAccepted); err != nil {
		t.Fatalf("accept: %v", err)
	}

	for _, userID := range []string{"client-1", "photo-1"} {
		got, err := listUC.Execute(ctx, userID)
		if err != nil {
			t.Fatalf("list for %s: %v", userID, err)
		}
		if got[0].Status != "accepted" {
			t.Errorf("status seen by %s = %q, want accepted", userID, got[0].Status)
		}
	}
}
