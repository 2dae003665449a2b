package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	domain "fitness-app/internal/domain/user"
	repo "fitness-app/internal/repository/interfaces"
	useruc "fitness-app/internal/usecase/user"
)

type fakeUserRepo struct {
	user    *domain.User
	updated *domain.User
	deleted uuid.UUID
}

func (r *fakeUserRepo) Create(context.Context, *domain.User) error { return nil }
func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	if r.user == nil || r.user.ID != id {
		return nil, repo.ErrNotFound
	}
	copied := *r.user
	return &copied, nil
}
func (r *fakeUserRepo) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, repo.ErrNotFound
}
func (r *fakeUserRepo) GetByUsername(context.Context, string) (*domain.User, error) {
	return nil, repo.ErrNotFound
}
func (r *fakeUserRepo) List(context.Context) ([]*domain.User, error) {
	return []*domain.User{r.user}, nil
}
func (r *fakeUserRepo) Update(_ context.Context, u *domain.User) error {
	r.updated = u
	return nil
}
func (r *fakeUserRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	r.deleted = id
	return nil
}

func TestUpdateAccount_PartialUpdate(t *testing.T) {
	u := domain.NewUser("a@example.com", "hash", "athlete")
	u.FirstName = "Иван"
	users := &fakeUserRepo{user: u}
	svc := useruc.NewService(users)

	email := " New@Example.com "
	last := "Петров"
	got, err := svc.UpdateAccount(context.Background(), u.ID, useruc.AccountUpdateInput{
		Email:    &email,
		LastName: &last,
	})
	require.NoError(t, err)
	require.Equal(t, "new@example.com", got.Email)
	require.Equal(t, "Иван", got.FirstName)
	require.Equal(t, "Петров", got.LastName)
	require.Equal(t, "athlete", got.Username)
	require.Equal(t, got, users.updated)
}

func TestUpdateAccount_NotFound(t *testing.T) {
	svc := useruc.NewService(&fakeUserRepo{})
	_, err := svc.UpdateAccount(context.Background(), uuid.New(), useruc.AccountUpdateInput{})
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestDeleteAccount(t *testing.T) {
	users := &fakeUserRepo{}
	svc := useruc.NewService(users)
	id := uuid.New()

	require.NoError(t, svc.DeleteAccount(context.Background(), id))
	require.Equal(t, id, users.deleted)
}
