package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtReservationService/internal/domain"
	courtsService "github.com/m04kA/SMC-CourtReservationService/internal/service/courts"
	surfaceTypesService "github.com/m04kA/SMC-CourtReservationService/internal/service/surfacetypes"
)

// Стартовый каталог: два типа покрытия и четыре корта.
var (
	defaultSurfaceTypes = []domain.SurfaceType{
		{Name: "Clay", PricePerMinute: 5.0},
		{Name: "Grass", PricePerMinute: 7.0},
	}

	defaultCourts = []struct {
		Name        string
		SurfaceName string
	}{
		{Name: "Court 1", SurfaceName: "Clay"},
		{Name: "Court 2", SurfaceName: "Clay"},
		{Name: "Court 3", SurfaceName: "Grass"},
		{Name: "Court 4", SurfaceName: "Grass"},
	}
)

// SeedCatalog создаёт стартовые типы покрытий и корты.
// Повторный запуск безопасен: уже существующие записи пропускаются.
func SeedCatalog(ctx context.Context, surfaceTypes SurfaceTypeCatalog, courts CourtCatalog, log Logger) error {
	surfaceIDs := make(map[string]int64, len(defaultSurfaceTypes))

	for _, seed := range defaultSurfaceTypes {
		surfaceType := seed
		created, err := surfaceTypes.Save(ctx, &surfaceType)
		if err == nil {
			surfaceIDs[created.Name] = created.ID
			log.Info("Seed: surface type created: name=%s, price_per_minute=%.2f", created.Name, created.PricePerMinute)
			continue
		}
		if !errors.Is(err, surfaceTypesService.ErrDuplicateName) {
			return fmt.Errorf("bootstrap: SeedCatalog - save surface type %s: %w", seed.Name, err)
		}

		existingID, err := findSurfaceTypeID(ctx, surfaceTypes, seed.Name)
		if err != nil {
			return err
		}
		surfaceIDs[seed.Name] = existingID
		log.Info("Seed: surface type already exists, skipping: name=%s", seed.Name)
	}

	for _, seed := range defaultCourts {
		surfaceTypeID, ok := surfaceIDs[seed.SurfaceName]
		if !ok {
			return fmt.Errorf("bootstrap: SeedCatalog - court %s references unknown surface %s", seed.Name, seed.SurfaceName)
		}

		court := &domain.Court{Name: seed.Name, SurfaceTypeID: surfaceTypeID}
		if _, err := courts.Save(ctx, court); err != nil {
			if errors.Is(err, courtsService.ErrDuplicateName) {
				log.Info("Seed: court already exists, skipping: name=%s", seed.Name)
				continue
			}
			return fmt.Errorf("bootstrap: SeedCatalog - save court %s: %w", seed.Name, err)
		}
		log.Info("Seed: court created: name=%s, surface=%s", seed.Name, seed.SurfaceName)
	}

	return nil
}

func findSurfaceTypeID(ctx context.Context, surfaceTypes SurfaceTypeCatalog, name string) (int64, error) {
	all, err := surfaceTypes.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("bootstrap: findSurfaceTypeID - list surface types: %w", err)
	}
	for _, surfaceType := range all {
		if surfaceType.Name == name {
			return surfaceType.ID, nil
		}
	}
	return 0, fmt.Errorf("bootstrap: findSurfaceTypeID - surface type %s not found after duplicate", name)
}
