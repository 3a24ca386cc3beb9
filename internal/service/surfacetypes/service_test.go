package surfacetypes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
	surfaceTypeRepo "github.com/m04kA/SMC-CourtReservationService/internal/infra/storage/surfacetype"
)

type fakeRepo struct {
	byID   map[int64]*domain.SurfaceType
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byID: map[int64]*domain.SurfaceType{}}
}

func (f *fakeRepo) Create(_ context.Context, st *domain.SurfaceType) (*domain.SurfaceType, error) {
	f.nextID++
	created := *st
	created.ID = f.nextID
	f.byID[created.ID] = &created
	return &created, nil
}

func (f *fakeRepo) Update(_ context.Context, st *domain.SurfaceType) (*domain.SurfaceType, error) {
	existing, ok := f.byID[st.ID]
	if !ok || existing.IsDeleted {
		return nil, surfaceTypeRepo.ErrSurfaceTypeNotFound
	}
	updated := *st
	f.byID[st.ID] = &updated
	return &updated, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.SurfaceType, error) {
	st, ok := f.byID[id]
	if !ok || st.IsDeleted {
		return nil, surfaceTypeRepo.ErrSurfaceTypeNotFound
	}
	return st, nil
}

func (f *fakeRepo) GetByName(_ context.Context, name string) (*domain.SurfaceType, error) {
	for _, st := range f.byID {
		if st.Name == name && !st.IsDeleted {
			return st, nil
		}
	}
	return nil, surfaceTypeRepo.ErrSurfaceTypeNotFound
}

func (f *fakeRepo) GetAll(_ context.Context) ([]*domain.SurfaceType, error) {
	var result []*domain.SurfaceType
	for _, st := range f.byID {
		if !st.IsDeleted {
			result = append(result, st)
		}
	}
	return result, nil
}

func (f *fakeRepo) SoftDelete(_ context.Context, id int64) error {
	st, ok := f.byID[id]
	if !ok || st.IsDeleted {
		return surfaceTypeRepo.ErrSurfaceTypeNotFound
	}
	st.IsDeleted = true
	return nil
}

func (f *fakeRepo) SoftDeleteAll(_ context.Context) error {
	for _, st := range f.byID {
		st.IsDeleted = true
	}
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_Save_Create(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	created, err := svc.Save(context.Background(), &domain.SurfaceType{Name: "Clay", PricePerMinute: 5.0})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Clay", created.Name)
}

func TestService_Save_DuplicateName(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.Save(context.Background(), &domain.SurfaceType{Name: "Clay", PricePerMinute: 5.0})
	require.NoError(t, err)

	_, err = svc.Save(context.Background(), &domain.SurfaceType{Name: "Clay", PricePerMinute: 7.0})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestService_Save_UpdateKeepingOwnName(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	created, err := svc.Save(context.Background(), &domain.SurfaceType{Name: "Clay", PricePerMinute: 5.0})
	require.NoError(t, err)

	// Обновление с тем же именем конфликтом не считается
	created.PricePerMinute = 6.0
	updated, err := svc.Save(context.Background(), created)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, updated.PricePerMinute, 1e-9)
}

func TestService_Save_UpdateNotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.Save(context.Background(), &domain.SurfaceType{ID: 99, Name: "Grass", PricePerMinute: 4.0})
	assert.ErrorIs(t, err, ErrSurfaceTypeNotFound)
}

func TestService_Save_Validation(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.Save(context.Background(), &domain.SurfaceType{Name: "ab", PricePerMinute: 5.0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Save(context.Background(), &domain.SurfaceType{Name: "Clay", PricePerMinute: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Save(context.Background(), &domain.SurfaceType{Name: "Clay", PricePerMinute: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete_FreesName(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	created, err := svc.Save(context.Background(), &domain.SurfaceType{Name: "Clay", PricePerMinute: 5.0})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrSurfaceTypeNotFound)

	// Имя удаленного типа можно использовать снова
	_, err = svc.Save(context.Background(), &domain.SurfaceType{Name: "Clay", PricePerMinute: 8.0})
	assert.NoError(t, err)
}

func TestService_Delete_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})
	assert.ErrorIs(t, svc.Delete(context.Background(), 99), ErrSurfaceTypeNotFound)
}

func TestService_DeleteAll(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.Save(context.Background(), &domain.SurfaceType{Name: "Clay", PricePerMinute: 5.0})
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), &domain.SurfaceType{Name: "Grass", PricePerMinute: 4.0})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAll(context.Background()))

	all, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
