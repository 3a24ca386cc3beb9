package bootstrap

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
	courtsService "github.com/m04kA/SMC-CourtReservationService/internal/service/courts"
	surfaceTypesService "github.com/m04kA/SMC-CourtReservationService/internal/service/surfacetypes"
)

type fakeSurfaceTypeCatalog struct {
	byName map[string]*domain.SurfaceType
	nextID int64
}

func (f *fakeSurfaceTypeCatalog) Save(_ context.Context, surfaceType *domain.SurfaceType) (*domain.SurfaceType, error) {
	if _, ok := f.byName[surfaceType.Name]; ok {
		return nil, fmt.Errorf("%w: %s", surfaceTypesService.ErrDuplicateName, surfaceType.Name)
	}
	f.nextID++
	created := *surfaceType
	created.ID = f.nextID
	f.byName[surfaceType.Name] = &created
	return &created, nil
}

func (f *fakeSurfaceTypeCatalog) GetAll(_ context.Context) ([]*domain.SurfaceType, error) {
	result := make([]*domain.SurfaceType, 0, len(f.byName))
	for _, surfaceType := range f.byName {
		result = append(result, surfaceType)
	}
	return result, nil
}

type fakeCourtCatalog struct {
	byName map[string]*domain.Court
	nextID int64
}

func (f *fakeCourtCatalog) Save(_ context.Context, court *domain.Court) (*domain.Court, error) {
	if _, ok := f.byName[court.Name]; ok {
		return nil, fmt.Errorf("%w: %s", courtsService.ErrDuplicateName, court.Name)
	}
	f.nextID++
	created := *court
	created.ID = f.nextID
	f.byName[court.Name] = &created
	return &created, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestSeedCatalog_EmptyDatabase(t *testing.T) {
	surfaceTypes := &fakeSurfaceTypeCatalog{byName: map[string]*domain.SurfaceType{}}
	courts := &fakeCourtCatalog{byName: map[string]*domain.Court{}}

	err := SeedCatalog(context.Background(), surfaceTypes, courts, nopLogger{})
	require.NoError(t, err)

	require.Len(t, surfaceTypes.byName, 2)
	assert.InDelta(t, 5.0, surfaceTypes.byName["Clay"].PricePerMinute, 1e-9)
	assert.InDelta(t, 7.0, surfaceTypes.byName["Grass"].PricePerMinute, 1e-9)

	require.Len(t, courts.byName, 4)
	assert.Equal(t, surfaceTypes.byName["Clay"].ID, courts.byName["Court 1"].SurfaceTypeID)
	assert.Equal(t, surfaceTypes.byName["Clay"].ID, courts.byName["Court 2"].SurfaceTypeID)
	assert.Equal(t, surfaceTypes.byName["Grass"].ID, courts.byName["Court 3"].SurfaceTypeID)
	assert.Equal(t, surfaceTypes.byName["Grass"].ID, courts.byName["Court 4"].SurfaceTypeID)
}

func TestSeedCatalog_RerunIsIdempotent(t *testing.T) {
	surfaceTypes := &fakeSurfaceTypeCatalog{byName: map[string]*domain.SurfaceType{}}
	courts := &fakeCourtCatalog{byName: map[string]*domain.Court{}}

	require.NoError(t, SeedCatalog(context.Background(), surfaceTypes, courts, nopLogger{}))
	require.NoError(t, SeedCatalog(context.Background(), surfaceTypes, courts, nopLogger{}))

	assert.Len(t, surfaceTypes.byName, 2)
	assert.Len(t, courts.byName, 4)
}

func TestSeedCatalog_PartialCatalog(t *testing.T) {
	// Clay уже заведён вручную с другим тарифом, сид не должен его перезаписать
	surfaceTypes := &fakeSurfaceTypeCatalog{byName: map[string]*domain.SurfaceType{
		"Clay": {ID: 42, Name: "Clay", PricePerMinute: 9.0},
	}, nextID: 42}
	courts := &fakeCourtCatalog{byName: map[string]*domain.Court{}}

	err := SeedCatalog(context.Background(), surfaceTypes, courts, nopLogger{})
	require.NoError(t, err)

	assert.InDelta(t, 9.0, surfaceTypes.byName["Clay"].PricePerMinute, 1e-9)
	require.Len(t, courts.byName, 4)
	assert.Equal(t, int64(42), courts.byName["Court 1"].SurfaceTypeID)
}
