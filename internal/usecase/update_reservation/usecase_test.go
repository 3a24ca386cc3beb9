package update_reservation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtReservationService/internal/infra/storage/court"
	reservationRepo "github.com/m04kA/SMC-CourtReservationService/internal/infra/storage/reservation"
	surfaceTypeRepo "github.com/m04kA/SMC-CourtReservationService/internal/infra/storage/surfacetype"
	usersService "github.com/m04kA/SMC-CourtReservationService/internal/service/users"
)

type fakeReservationRepo struct {
	byID map[int64]*domain.Reservation
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	r, ok := f.byID[id]
	if !ok || r.IsDeleted {
		return nil, fmt.Errorf("%w: id=%d", reservationRepo.ErrReservationNotFound, id)
	}
	return r, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	existing, ok := f.byID[reservation.ID]
	if !ok || existing.IsDeleted {
		return nil, reservationRepo.ErrReservationNotFound
	}
	updated := *reservation
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	f.byID[reservation.ID] = &updated
	return &updated, nil
}

func (f *fakeReservationRepo) GetByCourtID(_ context.Context, courtID int64) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, r := range f.byID {
		if r.CourtID == courtID && !r.IsDeleted {
			result = append(result, r)
		}
	}
	return result, nil
}

type fakeCourtRepo struct {
	courts map[int64]*domain.Court
}

func (f *fakeCourtRepo) GetByID(_ context.Context, id int64) (*domain.Court, error) {
	court, ok := f.courts[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", courtRepo.ErrCourtNotFound, id)
	}
	return court, nil
}

type fakeSurfaceTypeRepo struct {
	surfaceTypes map[int64]*domain.SurfaceType
}

func (f *fakeSurfaceTypeRepo) GetByID(_ context.Context, id int64) (*domain.SurfaceType, error) {
	surfaceType, ok := f.surfaceTypes[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%d", surfaceTypeRepo.ErrSurfaceTypeNotFound, id)
	}
	return surfaceType, nil
}

type fakeUserDirectory struct {
	users  map[string]*domain.User
	nextID int64
}

func (f *fakeUserDirectory) ResolveOrCreate(_ context.Context, phoneNumber, name string) (*domain.User, error) {
	if user, ok := f.users[phoneNumber]; ok {
		return user, nil
	}
	if !domain.ValidPhoneNumber(phoneNumber) || !domain.ValidName(name) {
		return nil, fmt.Errorf("%w: phone=%s", usersService.ErrInvalidInput, phoneNumber)
	}
	f.nextID++
	user := &domain.User{ID: f.nextID, PhoneNumber: phoneNumber, Name: name}
	f.users[phoneNumber] = user
	return user, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func at(hour, minute int) time.Time {
	return time.Date(2025, 1, 14, hour, minute, 0, 0, time.UTC)
}

type fixture struct {
	useCase      *UseCase
	reservations *fakeReservationRepo
	courts       *fakeCourtRepo
	surfaceTypes *fakeSurfaceTypeRepo
	users        *fakeUserDirectory
}

// newFixture готовит корт с тарифом 5.0/мин и бронирование [10:00, 11:00) SINGLE
func newFixture() *fixture {
	reservations := &fakeReservationRepo{byID: map[int64]*domain.Reservation{
		1: {
			ID:        1,
			UserID:    10,
			CourtID:   1,
			StartTime: at(10, 0),
			EndTime:   at(11, 0),
			GameType:  domain.GameTypeSingle,
			Price:     300.0,
		},
	}}
	surfaceTypes := &fakeSurfaceTypeRepo{surfaceTypes: map[int64]*domain.SurfaceType{
		1: {ID: 1, Name: "Clay", PricePerMinute: 5.0},
	}}
	courts := &fakeCourtRepo{courts: map[int64]*domain.Court{
		1: {ID: 1, Name: "Center Court", SurfaceTypeID: 1},
	}}
	users := &fakeUserDirectory{users: map[string]*domain.User{
		"+420123456789": {ID: 10, PhoneNumber: "+420123456789", Name: "Jan Novak"},
	}}

	return &fixture{
		useCase:      NewUseCase(reservations, courts, surfaceTypes, users, fakeTxManager{}, nopLogger{}),
		reservations: reservations,
		courts:       courts,
		surfaceTypes: surfaceTypes,
		users:        users,
	}
}

func validRequest() *Request {
	return &Request{
		ReservationID: 1,
		UserPhone:     "+420123456789",
		UserName:      "Jan Novak",
		CourtID:       1,
		StartTime:     at(10, 0),
		EndTime:       at(11, 0),
		GameType:      domain.GameTypeSingle,
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.StartTime = at(12, 0)
	req.EndTime = at(13, 30)

	resp, err := f.useCase.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.InDelta(t, 450.0, resp.Price, 1e-9)
	assert.Equal(t, at(12, 0), f.reservations.byID[1].StartTime)
}

func TestUseCase_Execute_OwnIntervalNotAConflict(t *testing.T) {
	f := newFixture()

	// Сдвиг внутри собственного интервала: пересекается только с самим собой
	req := validRequest()
	req.StartTime = at(10, 30)
	req.EndTime = at(11, 30)

	resp, err := f.useCase.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, at(10, 30), resp.StartTime)
}

func TestUseCase_Execute_ConflictWithOtherReservation(t *testing.T) {
	f := newFixture()
	f.reservations.byID[2] = &domain.Reservation{
		ID:        2,
		UserID:    11,
		CourtID:   1,
		StartTime: at(12, 0),
		EndTime:   at(13, 0),
		GameType:  domain.GameTypeSingle,
		Price:     300.0,
	}

	req := validRequest()
	req.StartTime = at(12, 30)
	req.EndTime = at(13, 30)

	_, err := f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTimeConflict)
	assert.Equal(t, at(10, 0), f.reservations.byID[1].StartTime)
}

func TestUseCase_Execute_TouchingOtherReservationAllowed(t *testing.T) {
	f := newFixture()
	f.reservations.byID[2] = &domain.Reservation{
		ID:        2,
		UserID:    11,
		CourtID:   1,
		StartTime: at(12, 0),
		EndTime:   at(13, 0),
		GameType:  domain.GameTypeSingle,
		Price:     300.0,
	}

	req := validRequest()
	req.StartTime = at(11, 0)
	req.EndTime = at(12, 0)

	_, err := f.useCase.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestUseCase_Execute_ReservationNotFound(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.ReservationID = 99

	_, err := f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestUseCase_Execute_CourtNotFound(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.CourtID = 99

	_, err := f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestUseCase_Execute_MoveToOtherCourtReprices(t *testing.T) {
	f := newFixture()
	f.surfaceTypes.surfaceTypes[2] = &domain.SurfaceType{ID: 2, Name: "Grass", PricePerMinute: 7.0}
	f.courts.courts[2] = &domain.Court{ID: 2, Name: "Court 2", SurfaceTypeID: 2}

	req := validRequest()
	req.CourtID = 2
	req.GameType = domain.GameTypeDouble

	resp, err := f.useCase.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.CourtID)
	assert.InDelta(t, 630.0, resp.Price, 1e-9)
}

func TestUseCase_Execute_RepricesAtCurrentRate(t *testing.T) {
	f := newFixture()

	// Тариф вырос после создания, обновление пересчитывает по новому
	f.surfaceTypes.surfaceTypes[1].PricePerMinute = 10.0

	resp, err := f.useCase.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.InDelta(t, 600.0, resp.Price, 1e-9)
}

func TestUseCase_Execute_ResolvesNewUser(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.UserPhone = "+420987654321"
	req.UserName = "Petr Svoboda"

	resp, err := f.useCase.Execute(context.Background(), req)
	require.NoError(t, err)

	user, ok := f.users.users["+420987654321"]
	require.True(t, ok)
	assert.Equal(t, user.ID, resp.UserID)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.ReservationID = 0
	_, err := f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.EndTime = req.StartTime
	_, err = f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.GameType = "TRIPLE"
	_, err = f.useCase.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
