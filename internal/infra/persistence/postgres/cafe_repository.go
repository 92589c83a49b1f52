package postgres

import (
	"context"
	"time"

	"cafemap/internal/domain/entity"
	domainerrors "cafemap/internal/domain/errors"
	"cafemap/internal/domain/repository"
	"cafemap/internal/errors"
	"cafemap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cafeRepository implements repository.CafeRepository using GORM.
type cafeRepository struct {
	db *gorm.DB
}

// NewCafeRepository is the constructor for cafeRepository.
func NewCafeRepository(db *gorm.DB) repository.CafeRepository {
	return &cafeRepository{db: db}
}

// FindCafeByID retrieves a café by its id.
func (repo *cafeRepository) FindCafeByID(ctx context.Context, id uuid.UUID) (*entity.Cafe, error) {
	var cafeM model.CafeModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cafeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCafeNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find cafe by id")
	}

	return toCafeDomain(&cafeM), nil
}

// FindCafesInBounds selects cafés inside the closed viewport rectangle.
// Both ranges are compared as decimals so boundary cafés are never lost to
// float rounding.
func (repo *cafeRepository) FindCafesInBounds(ctx context.Context, bounds entity.Bounds) ([]*entity.Cafe, error) {
	latLo, latHi := bounds.LatRange()
	lngLo, lngHi := bounds.LngRange()

	var cafeModels []*model.CafeModel
	err := repo.db.WithContext(ctx).
		Where("latitude BETWEEN ? AND ?", latLo, latHi).
		Where("longitude BETWEEN ? AND ?", lngLo, lngHi).
		Find(&cafeModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find cafes in bounds")
	}

	cafes := make([]*entity.Cafe, 0, len(cafeModels))
	for _, cafeM := range cafeModels {
		cafes = append(cafes, toCafeDomain(cafeM))
	}

	return cafes, nil
}

// UpsertCafe inserts the café. When another café already owns the place id,
// that row's name, address and coordinates are updated instead and its id
// is written back into cafe.
func (repo *cafeRepository) UpsertCafe(ctx context.Context, cafe *entity.Cafe) error {
	if cafe.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate cafe id")
		}
		cafe.ID = id
	}

	now := time.Now().UTC()
	cafeM := fromCafeDomain(cafe)
	cafeM.CreatedAt = now
	cafeM.UpdatedAt = now

	db := repo.db.WithContext(ctx)
	if cafe.PlaceID != nil {
		db = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "place_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "address", "latitude", "longitude", "updated_at"}),
		})
	}

	if err := db.Create(cafeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert cafe")
	}

	if cafe.PlaceID == nil {
		cafe.CreatedAt = cafeM.CreatedAt
		cafe.UpdatedAt = cafeM.UpdatedAt

		return nil
	}

	var stored model.CafeModel
	if err := repo.db.WithContext(ctx).Where("place_id = ?", *cafe.PlaceID).First(&stored).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to reload upserted cafe")
	}
	cafe.ID = stored.ID
	cafe.CreatedAt = stored.CreatedAt
	cafe.UpdatedAt = stored.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toCafeDomain(data *model.CafeModel) *entity.Cafe {
	if data == nil {
		return nil
	}

	return &entity.Cafe{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		PlaceID:   data.PlaceID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCafeDomain(data *entity.Cafe) *model.CafeModel {
	if data == nil {
		return nil
	}

	return &model.CafeModel{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		PlaceID:   data.PlaceID,
	}
}
