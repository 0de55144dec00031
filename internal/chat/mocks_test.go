package chat_test

import (
	"context"

	"equiedge/internal/models"
	"equiedge/pkg/cometchat"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockSDK records every provider call so tests can assert exact call counts.
type MockSDK struct {
	mock.Mock
}

func (m *MockSDK) Init(ctx context.Context, cfg cometchat.Config) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func (m *MockSDK) Login(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

func (m *MockSDK) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSDK) CreateUser(ctx context.Context, id cometchat.Identity) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSDK) SendMessage(ctx context.Context, msg cometchat.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type fakeProfiles struct {
	profiles map[string]*models.Profile
}

func (f *fakeProfiles) GetByID(id string) (*models.Profile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

type fakeBookings struct {
	booked map[string]bool
	err    error
	calls  int
}

func (f *fakeBookings) HasAnyForProfile(profileID string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.booked[profileID], nil
}
