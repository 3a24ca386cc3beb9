package courts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
	courtRepo "github.com/m04kA/SMC-CourtReservationService/internal/infra/storage/court"
	surfaceTypeRepo "github.com/m04kA/SMC-CourtReservationService/internal/infra/storage/surfacetype"
)

type fakeCourtRepo struct {
	byID   map[int64]*domain.Court
	nextID int64
}

func newFakeCourtRepo() *fakeCourtRepo {
	return &fakeCourtRepo{byID: map[int64]*domain.Court{}}
}

func (f *fakeCourtRepo) Create(_ context.Context, court *domain.Court) (*domain.Court, error) {
	f.nextID++
	created := *court
	created.ID = f.nextID
	f.byID[created.ID] = &created
	return &created, nil
}

func (f *fakeCourtRepo) Update(_ context.Context, court *domain.Court) (*domain.Court, error) {
	existing, ok := f.byID[court.ID]
	if !ok || existing.IsDeleted {
		return nil, courtRepo.ErrCourtNotFound
	}
	updated := *court
	f.byID[court.ID] = &updated
	return &updated, nil
}

func (f *fakeCourtRepo) GetByID(_ context.Context, id int64) (*domain.Court, error) {
	court, ok := f.byID[id]
	if !ok || court.IsDeleted {
		return nil, courtRepo.ErrCourtNotFound
	}
	return court, nil
}

func (f *fakeCourtRepo) GetByName(_ context.Context, name string) (*domain.Court, error) {
	for _, court := range f.byID {
		if court.Name == name && !court.IsDeleted {
			return court, nil
		}
	}
	return nil, courtRepo.ErrCourtNotFound
}

func (f *fakeCourtRepo) GetAll(_ context.Context) ([]*domain.Court, error) {
	var result []*domain.Court
	for _, court := range f.byID {
		if !court.IsDeleted {
			result = append(result, court)
		}
	}
	return result, nil
}

func (f *fakeCourtRepo) SoftDelete(_ context.Context, id int64) error {
	court, ok := f.byID[id]
	if !ok || court.IsDeleted {
		return courtRepo.ErrCourtNotFound
	}
	court.IsDeleted = true
	return nil
}

func (f *fakeCourtRepo) SoftDeleteAll(_ context.Context) error {
	for _, court := range f.byID {
		court.IsDeleted = true
	}
	return nil
}

type fakeSurfaceTypeRepo struct {
	byID map[int64]*domain.SurfaceType
}

func (f *fakeSurfaceTypeRepo) GetByID(_ context.Context, id int64) (*domain.SurfaceType, error) {
	st, ok := f.byID[id]
	if !ok || st.IsDeleted {
		return nil, surfaceTypeRepo.ErrSurfaceTypeNotFound
	}
	return st, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService() *Service {
	surfaceTypes := &fakeSurfaceTypeRepo{byID: map[int64]*domain.SurfaceType{
		1: {ID: 1, Name: "Clay", PricePerMinute: 5.0},
	}}
	return NewService(newFakeCourtRepo(), surfaceTypes, nopLogger{})
}

func TestService_Save_Create(t *testing.T) {
	svc := newTestService()

	created, err := svc.Save(context.Background(), &domain.Court{Name: "Center Court", SurfaceTypeID: 1})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestService_Save_UnknownSurfaceType(t *testing.T) {
	svc := newTestService()

	_, err := svc.Save(context.Background(), &domain.Court{Name: "Center Court", SurfaceTypeID: 99})
	assert.ErrorIs(t, err, ErrUnknownSurfaceType)
}

func TestService_Save_DuplicateName(t *testing.T) {
	svc := newTestService()

	_, err := svc.Save(context.Background(), &domain.Court{Name: "Center Court", SurfaceTypeID: 1})
	require.NoError(t, err)

	_, err = svc.Save(context.Background(), &domain.Court{Name: "Center Court", SurfaceTypeID: 1})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestService_Save_UpdateKeepingOwnName(t *testing.T) {
	svc := newTestService()

	created, err := svc.Save(context.Background(), &domain.Court{Name: "Center Court", SurfaceTypeID: 1})
	require.NoError(t, err)

	updated, err := svc.Save(context.Background(), created)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
}

func TestService_Save_Validation(t *testing.T) {
	svc := newTestService()

	_, err := svc.Save(context.Background(), &domain.Court{Name: "ab", SurfaceTypeID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete_NotFound(t *testing.T) {
	svc := newTestService()
	assert.ErrorIs(t, svc.Delete(context.Background(), 99), ErrCourtNotFound)
}

func TestService_Delete_FreesName(t *testing.T) {
	svc := newTestService()

	created, err := svc.Save(context.Background(), &domain.Court{Name: "Center Court", SurfaceTypeID: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.Save(context.Background(), &domain.Court{Name: "Center Court", SurfaceTypeID: 1})
	assert.NoError(t, err)
}
