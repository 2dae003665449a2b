package plan

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"fitness-app/internal/domain/profile"
	"fitness-app/internal/domain/training"
	repo "fitness-app/internal/repository/interfaces"
	"fitness-app/pkg/llm"
)

type mockCompletionClient struct {
	mock.Mock
}

func (m *mockCompletionClient) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(ctx context.Context, p PromptParams) (*training.Document, error) {
	args := m.Called(ctx, p)
	doc, _ := args.Get(0).(*training.Document)
	return doc, args.Error(1)
}

// fakePlanRepo хранит планы в памяти и считает записи.
type fakePlanRepo struct {
	mu      sync.Mutex
	plans   map[uuid.UUID]training.Plan
	writes  int
	failErr error
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: map[uuid.UUID]training.Plan{}}
}

func (r *fakePlanRepo) Create(_ context.Context, p *training.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return r.failErr
	}
	r.writes++
	r.plans[p.ID] = *p
	return nil
}

func (r *fakePlanRepo) GetByID(_ context.Context, userID, id uuid.UUID) (*training.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok || p.UserID != userID {
		return nil, repo.ErrNotFound
	}
	return &p, nil
}

func (r *fakePlanRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*training.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*training.Plan
	for _, p := range r.plans {
		if p.UserID == userID {
			p := p
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakePlanRepo) Update(_ context.Context, p *training.Plan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return r.failErr
	}
	if existing, ok := r.plans[p.ID]; !ok || existing.UserID != p.UserID {
		return repo.ErrNotFound
	}
	r.writes++
	r.plans[p.ID] = *p
	return nil
}

func (r *fakePlanRepo) Delete(_ context.Context, userID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok || p.UserID != userID {
		return repo.ErrNotFound
	}
	delete(r.plans, id)
	return nil
}

type fakeProfileRepo struct {
	byUser map[uuid.UUID]*profile.Profile
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*profile.Profile, error) {
	p, ok := r.byUser[userID]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) Upsert(_ context.Context, p *profile.Profile) error {
	r.byUser[p.UserID] = p
	return nil
}
