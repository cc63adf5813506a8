package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/pulsemark/agency-platform/internal/core/domain"
	"github.com/pulsemark/agency-platform/internal/core/ports"
)

// --- user repository stub --------------------------------------------------

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = fmt.Sprintf("user_%03d", r.nextID)
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context, clientID string) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if clientID == "" || u.ClientID == clientID {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// --- project repository stub -----------------------------------------------

type stubProjectRepo struct {
	projects map[string]*domain.Project
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[string]*domain.Project)}
}

func cloneProject(p *domain.Project) *domain.Project {
	clone := *p
	return &clone
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) error {
	r.projects[p.ID] = cloneProject(p)
	return nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string, clientID string) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok || (clientID != "" && p.ClientID != clientID) {
		return nil, domain.ErrProjectNotFound
	}
	return cloneProject(p), nil
}

func (r *stubProjectRepo) List(_ context.Context, filter ports.ListProjectsFilter) ([]*domain.Project, int64, error) {
	var out []*domain.Project
	for _, p := range r.projects {
		if filter.ClientID != "" && p.ClientID != filter.ClientID {
			continue
		}
		if filter.Status != "" && string(p.Status) != filter.Status {
			continue
		}
		out = append(out, cloneProject(p))
	}
	return out, int64(len(out)), nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *domain.Project) error {
	if _, ok := r.projects[p.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	r.projects[p.ID] = cloneProject(p)
	return nil
}

// --- approval repository stub ----------------------------------------------

type stubApprovalRepo struct {
	approvals map[string]*domain.Approval
}

func newStubApprovalRepo() *stubApprovalRepo {
	return &stubApprovalRepo{approvals: make(map[string]*domain.Approval)}
}

func cloneApproval(a *domain.Approval) *domain.Approval {
	clone := *a
	return &clone
}

func (r *stubApprovalRepo) Create(_ context.Context, a *domain.Approval) error {
	r.approvals[a.ID] = cloneApproval(a)
	return nil
}

func (r *stubApprovalRepo) FindByID(_ context.Context, id string, clientID string) (*domain.Approval, error) {
	a, ok := r.approvals[id]
	if !ok || (clientID != "" && a.ClientID != clientID) {
		return nil, domain.ErrApprovalNotFound
	}
	return cloneApproval(a), nil
}

func (r *stubApprovalRepo) List(_ context.Context, filter ports.ListApprovalsFilter) ([]*domain.Approval, error) {
	var out []*domain.Approval
	for _, a := range r.approvals {
		if filter.ClientID != "" && a.ClientID != filter.ClientID {
			continue
		}
		if filter.Status != "" && string(a.Status) != filter.Status {
			continue
		}
		out = append(out, cloneApproval(a))
	}
	return out, nil
}

func (r *stubApprovalRepo) Update(_ context.Context, a *domain.Approval) error {
	if _, ok := r.approvals[a.ID]; !ok {
		return domain.ErrApprovalNotFound
	}
	r.approvals[a.ID] = cloneApproval(a)
	return nil
}

func (r *stubApprovalRepo) CountPending(_ context.Context, clientID string) (int64, error) {
	var n int64
	for _, a := range r.approvals {
		if a.Status != domain.ApprovalPending {
			continue
		}
		if clientID != "" && a.ClientID != clientID {
			continue
		}
		n++
	}
	return n, nil
}

// --- key-value store stub ---------------------------------------------------

type memKV struct {
	mu   sync.Mutex
	data map[string][]byte
	fail bool
}

func newMemKV() *memKV { return &memKV{data: make(map[string][]byte)} }

func (m *memKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, domain.ErrServiceUnavailable
	}
	v, ok := m.data[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	return v, nil
}

func (m *memKV) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return domain.ErrServiceUnavailable
	}
	m.data[key] = value
	return nil
}

func (m *memKV) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// --- notification publisher stub --------------------------------------------

type capturePublisher struct {
	events []ports.NotificationEventInput
}

func (p *capturePublisher) Enqueue(event ports.NotificationEventInput) {
	p.events = append(p.events, event)
}

func (p *capturePublisher) EnqueueBatch(events []ports.NotificationEventInput) {
	p.events = append(p.events, events...)
}
