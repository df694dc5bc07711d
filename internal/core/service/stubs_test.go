package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Manish26364/sevas-admin/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests. Lookup semantics
// mirror the real Mongo queries (case-insensitive name matching included).
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubBookingRepo struct {
	byID      map[string]*domain.Booking
	insertErr error
	updateErr error
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{byID: make(map[string]*domain.Booking)}
}

func (r *stubBookingRepo) List(_ context.Context) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(r.byID))
	for _, b := range r.byID {
		clone := *b
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBookingRepo) FindByMachineAndTime(_ context.Context, machine, timeSlot string) (*domain.Booking, error) {
	for _, b := range r.byID {
		if b.Machine == machine && b.Time == timeSlot {
			clone := *b
			return &clone, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (r *stubBookingRepo) CountRegularByUser(_ context.Context, user string) (int64, error) {
	var n int64
	for _, b := range r.byID {
		if !b.IsMaintenance && strings.EqualFold(b.User, user) {
			n++
		}
	}
	return n, nil
}

func (r *stubBookingRepo) Insert(_ context.Context, b *domain.Booking) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *b
	r.byID[b.ID] = &clone
	return nil
}

func (r *stubBookingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubBookingRepo) DeleteRegularByUser(_ context.Context, user string) (int64, error) {
	var n int64
	for id, b := range r.byID {
		if !b.IsMaintenance && strings.EqualFold(b.User, user) {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}

func (r *stubBookingRepo) DeleteByMachine(_ context.Context, machine string, maintenance bool) (int64, error) {
	var n int64
	for id, b := range r.byID {
		if b.Machine == machine && b.IsMaintenance == maintenance {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}

type stubResidentRepo struct {
	byID map[string]*domain.Resident
}

func newStubResidentRepo(residents ...*domain.Resident) *stubResidentRepo {
	r := &stubResidentRepo{byID: make(map[string]*domain.Resident)}
	for _, res := range residents {
		clone := *res
		r.byID[res.ID] = &clone
	}
	return r
}

func (r *stubResidentRepo) List(_ context.Context) ([]*domain.Resident, error) {
	out := make([]*domain.Resident, 0, len(r.byID))
	for _, res := range r.byID {
		clone := *res
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubResidentRepo) FindByID(_ context.Context, id string) (*domain.Resident, error) {
	res, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrResidentNotFound
	}
	clone := *res
	return &clone, nil
}

func (r *stubResidentRepo) FindByName(_ context.Context, name string) (*domain.Resident, error) {
	for _, res := range r.byID {
		if strings.EqualFold(res.Name, name) {
			clone := *res
			return &clone, nil
		}
	}
	return nil, domain.ErrResidentNotFound
}

func (r *stubResidentRepo) Insert(_ context.Context, res *domain.Resident) error {
	clone := *res
	r.byID[res.ID] = &clone
	return nil
}

func (r *stubResidentRepo) SetBlocked(_ context.Context, id string, blocked bool) error {
	res, ok := r.byID[id]
	if !ok {
		return domain.ErrResidentNotFound
	}
	res.Blocked = blocked
	return nil
}

type stubMachineRepo struct {
	byName    map[string]*domain.Machine
	updateErr error
}

func newStubMachineRepo(machines ...*domain.Machine) *stubMachineRepo {
	r := &stubMachineRepo{byName: make(map[string]*domain.Machine)}
	for _, m := range machines {
		clone := *m
		r.byName[m.Name] = &clone
	}
	return r
}

func (r *stubMachineRepo) List(_ context.Context) ([]*domain.Machine, error) {
	out := make([]*domain.Machine, 0, len(r.byName))
	for _, m := range r.byName {
		clone := *m
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubMachineRepo) FindByName(_ context.Context, name string) (*domain.Machine, error) {
	m, ok := r.byName[name]
	if !ok {
		return nil, domain.ErrMachineNotFound
	}
	clone := *m
	return &clone, nil
}

func (r *stubMachineRepo) UpdateStatus(_ context.Context, name string, status domain.MachineStatus, usageDelta int) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	m, ok := r.byName[name]
	if !ok {
		return domain.ErrMachineNotFound
	}
	m.Status = status
	m.Usage += usageDelta
	return nil
}

type stubSettingsRepo struct {
	stored *domain.Settings
}

func (r *stubSettingsRepo) Get(_ context.Context) (*domain.Settings, error) {
	if r.stored == nil {
		return nil, domain.ErrSettingsNotFound
	}
	clone := *r.stored
	return &clone, nil
}

func (r *stubSettingsRepo) Save(_ context.Context, s domain.Settings) error {
	r.stored = &s
	return nil
}

type stubUserRepo struct {
	byUsername map[string]*domain.User
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

type stubSessionStore struct {
	sessions map[string]string
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]string)}
}

func (s *stubSessionStore) Create(_ context.Context, sid, username string, _ time.Duration) error {
	s.sessions[sid] = username
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, sid string) (string, error) {
	username, ok := s.sessions[sid]
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	return username, nil
}

func (s *stubSessionStore) Delete(_ context.Context, sid string) error {
	delete(s.sessions, sid)
	return nil
}
