package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/tasks/internal/auth/domain"
)

type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

type mockAuthUseCase struct {
	mock.Mock
}

func (m *mockAuthUseCase) Login(ctx context.Context, input *authDomain.LoginInput) (*authDomain.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.LoginOutput), args.Error(1)
}

func (m *mockAuthUseCase) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *mockAuthUseCase) Authenticate(ctx context.Context, token string) (*authDomain.Principal, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.Principal), args.Error(1)
}

func TestAuthUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Login success", func(t *testing.T) {
		mockNext := &mockAuthUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewAuthUseCaseWithMetrics(mockNext, mockMetrics)

		input := &authDomain.LoginInput{Username: "alice", Password: "secret"}
		output := &authDomain.LoginOutput{Token: "signed-token"}

		mockNext.On("Login", ctx, input).Return(output, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "login", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Login(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, output, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Login error", func(t *testing.T) {
		mockNext := &mockAuthUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewAuthUseCaseWithMetrics(mockNext, mockMetrics)

		input := &authDomain.LoginInput{Username: "alice", Password: "wrong"}

		mockNext.On("Login", ctx, input).Return(nil, authDomain.ErrInvalidCredentials).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "login", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "login", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		res, err := uc.Login(ctx, input)
		assert.Error(t, err)
		assert.Nil(t, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Logout success", func(t *testing.T) {
		mockNext := &mockAuthUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewAuthUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("Logout", ctx, "signed-token").Return(nil).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "logout", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "logout", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		assert.NoError(t, uc.Logout(ctx, "signed-token"))
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Authenticate success", func(t *testing.T) {
		mockNext := &mockAuthUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewAuthUseCaseWithMetrics(mockNext, mockMetrics)

		principal := &authDomain.Principal{ID: uuid.Must(uuid.NewV7())}

		mockNext.On("Authenticate", ctx, "signed-token").Return(principal, nil).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "authenticate", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "authenticate", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		res, err := uc.Authenticate(ctx, "signed-token")
		assert.NoError(t, err)
		assert.Equal(t, principal, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Authenticate error", func(t *testing.T) {
		mockNext := &mockAuthUseCase{}
		mockMetrics := &mockBusinessMetrics{}
		uc := NewAuthUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("Authenticate", ctx, "bad-token").Return(nil, authDomain.ErrTokenRevoked).Once()
		mockMetrics.On("RecordOperation", ctx, "auth", "authenticate", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "auth", "authenticate", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		res, err := uc.Authenticate(ctx, "bad-token")
		assert.Error(t, err)
		assert.Nil(t, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}
