package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Arun-hash30/Attendence-helix/internal/user"
	usererrors "github.com/Arun-hash30/Attendence-helix/internal/user/errors"
	mock_user "github.com/Arun-hash30/Attendence-helix/internal/user/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*mock_user.MockRepository, user.Service) {
	ctrl := gomock.NewController(t)
	mockRepo := mock_user.NewMockRepository(ctrl)
	return mockRepo, user.NewService(mockRepo)
}

func TestUserService_ListActive(t *testing.T) {
	ctx := context.Background()

	t.Run("filters active users by role", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().
			FindAll(gomock.Any(), user.ListFilter{Role: user.RoleUser, ActiveOnly: true}).
			Return([]user.User{{ID: 3, Name: "Asha", Email: "asha@example.com", Role: user.RoleUser, IsActive: true}}, nil)

		res, err := svc.ListActive(ctx, user.RoleUser)

		assert.NoError(t, err)
		assert.Len(t, res, 1)
		assert.Equal(t, uint(3), res[0].ID)
		assert.Equal(t, "Asha", res[0].Name)
	})

	t.Run("repository error", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := svc.ListActive(ctx, "")

		assert.EqualError(t, err, "db down")
	})
}

func TestUserService_GetAll_InvalidRole(t *testing.T) {
	_, svc := setup(t)

	_, err := svc.GetAll(context.Background(), user.ListFilter{Role: "owner"})

	assert.ErrorIs(t, err, usererrors.ErrInvalidRole)
}

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().FindByID(gomock.Any(), uint(9)).Return(&user.User{ID: 9, Name: "Ravi", Role: user.RoleAdmin}, nil)

		res, err := svc.GetByID(ctx, 9)

		assert.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, res.Role)
	})

	t.Run("not found", func(t *testing.T) {
		repo, svc := setup(t)
		repo.EXPECT().FindByID(gomock.Any(), uint(9)).Return(&user.User{}, gorm.ErrRecordNotFound)

		_, err := svc.GetByID(ctx, 9)

		assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
	})
}

func TestUserService_Exists(t *testing.T) {
	repo, svc := setup(t)
	repo.EXPECT().Exists(gomock.Any(), uint(4)).Return(true, nil)

	ok, err := svc.Exists(context.Background(), 4)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Exists(context.Background(), 0)
	assert.NoError(t, err)
	assert.False(t, ok)
}
