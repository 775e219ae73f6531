package photographer

import (
	"context"
	"testing"

	domain "github.com/snapmarket/snapmarket-api/internal/domain/photographer"
	"github.com/snapmarket/snapmarket-api/internal/models"
)

type fakeRepo struct {
	byUser map[string]*models.PhotographerProfile
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byUser: map[string]*models.PhotographerProfile{}}
}

func (r *fakeRepo) GetByUser(_ context.Context, userID string) (*models.PhotographerProfile, error) {
	p, ok := r.byUser[userID]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakeRepo) Create(_ context.Context, p *models.PhotographerProfile) error {
	copied := *p
	r.byUser[p.UserID] = &copied
	return nil
}

func (r *fakeRepo) Update(_ context.Context, p *models.PhotographerProfile) error {
	copied := *p
	r.byUser[p.UserID] = &copied
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

func sampleInput() UpsertProfileInput {
	rate := 100
	years := 5
	return UpsertProfileInput{
		Bio:             "Outdoor portrait specialist.",
		Location:        "NY",
		City:            "New York",
		Specialty:       "Portrait",
		HourlyRate:      &rate,
		YearsExperience: &years,
	}
}

func TestUpsertCreatesOnFirstSubmission(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpsertProfile(repo, nil)

	p, err := uc.Execute(context.Background(), "user-1", sampleInput())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if p.ID == "" {
		t.Error("created profile has no id")
	}
	if !p.Available {
		t.Error("new profile should default to available")
	}
	if p.City != "New York" || p.HourlyRate == nil || *p.HourlyRate != 100 {
		t.Errorf("fields not persisted: %+v", p)
	}
}

func TestUpsertIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpsertProfile(repo, nil)

	first, err := uc.Execute(context.Background(), "user-1", sampleInput())
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}

	second, err := uc.Execute(context.Background(), "user-1", sampleInput())
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}

	if len(repo.byUser) != 1 {
		t.Fatalf("%d rows stored, want exactly 1", len(repo.byUser))
	}
	if second.ID != first.ID {
		t.Errorf("second submission created a new row (%s != %s)", second.ID, first.ID)
	}
	if second.Bio != first.Bio || second.City != first.City ||
		*second.HourlyRate != *first.HourlyRate {
		t.Errorf("fields drifted between identical submissions: %+v vs %+v", first, second)
	}
}

func TestUpsertUpdatesInPlace(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpsertProfile(repo, nil)

	if _, err := uc.Execute(context.Background(), "user-1", sampleInput()); err != nil {
		t.Fatalf("create: %v", err)
	}

	in := sampleInput()
	in.City = "Brooklyn"
	in.HourlyRate = nil // cleared field becomes absent
	unavailable := false
	in.Available = &unavailable

	p, err := uc.Execute(context.Background(), "user-1", in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if p.City != "Brooklyn" {
		t.Errorf("city = %q, want Brooklyn", p.City)
	}
	if p.HourlyRate != nil {
		t.Errorf("hourly rate = %v, want absent", *p.HourlyRate)
	}
	if p.Available {
		t.Error("availability not updated")
	}
}
