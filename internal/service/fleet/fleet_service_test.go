package fleet

import (
	"context"
	"testing"

	"github.com/avelhart/skybooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAirplaneRepository struct {
	mock.Mock
}

func (m *MockAirplaneRepository) List(ctx context.Context) ([]domain.Airplane, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airplane), args.Error(1)
}

func (m *MockAirplaneRepository) GetByID(ctx context.Context, id int64) (*domain.Airplane, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airplane), args.Error(1)
}

func (m *MockAirplaneRepository) Create(ctx context.Context, airplane *domain.Airplane) error {
	args := m.Called(ctx, airplane)
	return args.Error(0)
}

func (m *MockAirplaneRepository) Update(ctx context.Context, airplane *domain.Airplane) error {
	args := m.Called(ctx, airplane)
	return args.Error(0)
}

func (m *MockAirplaneRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAirportRepository struct {
	mock.Mock
}

func (m *MockAirportRepository) List(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockAirportRepository) Create(ctx context.Context, airport *domain.Airport) error {
	args := m.Called(ctx, airport)
	return args.Error(0)
}

func (m *MockAirportRepository) Update(ctx context.Context, airport *domain.Airport) error {
	args := m.Called(ctx, airport)
	return args.Error(0)
}

func (m *MockAirportRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestFleetService_CreateAirplane_SeatClassesMustAddUp(t *testing.T) {
	airplanes := &MockAirplaneRepository{}
	service := NewFleetService(airplanes, &MockAirportRepository{})

	err := service.CreateAirplane(context.Background(), &domain.Airplane{
		TailNumber:      "SB-001",
		Model:           "A320",
		TotalSeats:      180,
		EconomySeats:    150,
		BusinessSeats:   20,
		FirstClassSeats: 5,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	airplanes.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFleetService_CreateAirplane_Success(t *testing.T) {
	airplanes := &MockAirplaneRepository{}
	service := NewFleetService(airplanes, &MockAirportRepository{})

	airplanes.On("Create", mock.Anything, mock.AnythingOfType("*domain.Airplane")).Return(nil)

	err := service.CreateAirplane(context.Background(), &domain.Airplane{
		TailNumber:      "SB-001",
		Model:           "A320",
		TotalSeats:      180,
		EconomySeats:    150,
		BusinessSeats:   24,
		FirstClassSeats: 6,
	})

	require.NoError(t, err)
	airplanes.AssertExpectations(t)
}

func TestFleetService_CreateAirport_CodeLength(t *testing.T) {
	airports := &MockAirportRepository{}
	service := NewFleetService(&MockAirplaneRepository{}, airports)

	err := service.CreateAirport(context.Background(), &domain.Airport{
		Name:    "Indira Gandhi International",
		City:    "Delhi",
		Country: "India",
		Code:    "DELH",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	airports.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFleetService_CreateAirport_CodeMustBeLetters(t *testing.T) {
	airports := &MockAirportRepository{}
	service := NewFleetService(&MockAirplaneRepository{}, airports)

	for _, code := range []string{"DL1", "D-L", "12A"} {
		err := service.CreateAirport(context.Background(), &domain.Airport{
			Name:    "Indira Gandhi International",
			City:    "Delhi",
			Country: "India",
			Code:    code,
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
	airports.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFleetService_CreateAirport_Success(t *testing.T) {
	airports := &MockAirportRepository{}
	service := NewFleetService(&MockAirplaneRepository{}, airports)

	airports.On("Create", mock.Anything, mock.AnythingOfType("*domain.Airport")).Return(nil)

	err := service.CreateAirport(context.Background(), &domain.Airport{
		Name:    "Indira Gandhi International",
		City:    "Delhi",
		Country: "India",
		Code:    "DEL",
	})

	require.NoError(t, err)
}
