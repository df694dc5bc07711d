package service

import (
	"context"
	"testing"

	"github.com/Manish26364/sevas-admin/internal/core/domain"
)

func TestSettingsService_GetDefaultsWhenAbsent(t *testing.T) {
	svc := NewSettingsService(&stubSettingsRepo{}, discardLogger)

	got, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != domain.DefaultSettings() {
		t.Fatalf("got %+v, want defaults %+v", got, domain.DefaultSettings())
	}
}

func TestSettingsService_SaveThenGet(t *testing.T) {
	svc := NewSettingsService(&stubSettingsRepo{}, discardLogger)

	want := domain.Settings{BookingDuration: 1, MaxBookings: 5, MaxDaysAhead: 14}
	if err := svc.Save(context.Background(), want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestSettingsService_SaveOverwritesSingleton(t *testing.T) {
	repo := &stubSettingsRepo{}
	svc := NewSettingsService(repo, discardLogger)

	if err := svc.Save(context.Background(), domain.Settings{BookingDuration: 2, MaxBookings: 3, MaxDaysAhead: 7}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	want := domain.Settings{BookingDuration: 4, MaxBookings: 1, MaxDaysAhead: 30}
	if err := svc.Save(context.Background(), want); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}
