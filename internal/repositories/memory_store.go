package repositories

import (
	"context"
	"sort"
	"sync"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

// MemoryStore is the in-process entity store. It replaces the mutable shared
// arrays of the original application with a single RWMutex-guarded structure
// behind the same repository interfaces the Postgres backend implements, so
// services never know which backend they run on. New records are prepended,
// preserving the newest-first display convention.
type MemoryStore struct {
	mu          sync.RWMutex
	equipments  []*entities.Equipment
	teams       []*entities.Team
	technicians []*entities.Technician
	requests    []*entities.MaintenanceRequest
	users       []*entities.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func copyEquipment(e *entities.Equipment) *entities.Equipment {
	c := *e
	return &c
}

func copyRequest(r *entities.MaintenanceRequest) *entities.MaintenanceRequest {
	c := *r
	return &c
}

// --- EquipmentRepositoryInterface ---

func (s *MemoryStore) GetEquipments(ctx context.Context) ([]*entities.Equipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*entities.Equipment, 0, len(s.equipments))
	for _, e := range s.equipments {
		list = append(list, copyEquipment(e))
	}
	return list, nil
}

func (s *MemoryStore) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.equipments {
		if e.ID == id {
			return copyEquipment(e), nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *MemoryStore) CreateEquipment(ctx context.Context, e *entities.Equipment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.equipments = append([]*entities.Equipment{copyEquipment(e)}, s.equipments...)
	return nil
}

// --- TeamRepositoryInterface ---

func (s *MemoryStore) GetTeams(ctx context.Context) ([]*entities.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*entities.Team, 0, len(s.teams))
	for _, t := range s.teams {
		c := *t
		c.Members = append([]string{}, t.Members...)
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (s *MemoryStore) FindTeam(ctx context.Context, id string) (*entities.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.teams {
		if t.ID == id {
			c := *t
			c.Members = append([]string{}, t.Members...)
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// AddTeam loads reference data; the lifecycle never mutates teams.
func (s *MemoryStore) AddTeam(t *entities.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *t
	c.Members = append([]string{}, t.Members...)
	s.teams = append(s.teams, &c)
}

// --- TechnicianRepositoryInterface ---

func (s *MemoryStore) GetTechnicians(ctx context.Context) ([]*entities.Technician, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*entities.Technician, 0, len(s.technicians))
	for _, t := range s.technicians {
		c := *t
		list = append(list, &c)
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Workload != list[j].Workload {
			return list[i].Workload < list[j].Workload
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

func (s *MemoryStore) FindTechnician(ctx context.Context, id string) (*entities.Technician, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.technicians {
		if t.ID == id {
			c := *t
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// AddTechnician loads reference data.
func (s *MemoryStore) AddTechnician(t *entities.Technician) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *t
	s.technicians = append(s.technicians, &c)
}

// --- RequestRepositoryInterface ---

func (s *MemoryStore) GetRequests(ctx context.Context) ([]*entities.MaintenanceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]*entities.MaintenanceRequest, 0, len(s.requests))
	for _, r := range s.requests {
		list = append(list, copyRequest(r))
	}
	return list, nil
}

func (s *MemoryStore) GetRequestsByEquipment(ctx context.Context, equipmentID string) ([]*entities.MaintenanceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var list []*entities.MaintenanceRequest
	for _, r := range s.requests {
		if r.EquipmentID == equipmentID {
			list = append(list, copyRequest(r))
		}
	}
	return list, nil
}

func (s *MemoryStore) GetRequestsFiltered(ctx context.Context, filter entities.ReportFilter) ([]*entities.MaintenanceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var list []*entities.MaintenanceRequest
	for _, r := range s.requests {
		if !matchesFilter(r, filter) {
			continue
		}
		list = append(list, copyRequest(r))
	}
	return list, nil
}

func matchesFilter(r *entities.MaintenanceRequest, filter entities.ReportFilter) bool {
	if filter.DateFrom != nil && r.ScheduledDate.Before(*filter.DateFrom) {
		return false
	}
	if filter.DateTo != nil && r.ScheduledDate.After(*filter.DateTo) {
		return false
	}
	if filter.EquipmentID != "" && r.EquipmentID != filter.EquipmentID {
		return false
	}
	if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, r.Status) {
		return false
	}
	if len(filter.Types) > 0 && !containsType(filter.Types, r.Type) {
		return false
	}
	return true
}

func containsStatus(list []entities.RequestStatus, s entities.RequestStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsType(list []entities.RequestType, t entities.RequestType) bool {
	for _, v := range list {
		if v == t {
			return true
		}
	}
	return false
}

func (s *MemoryStore) FindRequest(ctx context.Context, id string) (*entities.MaintenanceRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.requests {
		if r.ID == id {
			return copyRequest(r), nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *MemoryStore) CreateRequest(ctx context.Context, r *entities.MaintenanceRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append([]*entities.MaintenanceRequest{copyRequest(r)}, s.requests...)
	return nil
}

func (s *MemoryStore) UpdateRequest(ctx context.Context, r *entities.MaintenanceRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.requests {
		if existing.ID == r.ID {
			s.requests[i] = copyRequest(r)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// --- UserRepositoryInterface ---

func (s *MemoryStore) FindUserByID(ctx context.Context, id string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *MemoryStore) FindUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *MemoryStore) CreateUser(ctx context.Context, u *entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *u
	s.users = append(s.users, &c)
	return nil
}
