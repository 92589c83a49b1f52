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

// latestPerCafeSelect ranks each café's reports newest first; the id breaks
// ties between reports written in the same microsecond.
const latestPerCafeSelect = "reports.*, ROW_NUMBER() OVER (PARTITION BY cafe_id ORDER BY created_at DESC, id DESC) AS rn"

// reportRepository implements repository.ReportRepository using GORM.
type reportRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return newReportRepository(db, time.Now)
}

func newReportRepository(db *gorm.DB, now func() time.Time) *reportRepository {
	return &reportRepository{db: db, now: now}
}

// CreateReport stamps id and timestamps and inserts the report.
func (repo *reportRepository) CreateReport(ctx context.Context, report *entity.Report) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate report id")
	}

	createdAt := repo.now().UTC().Truncate(time.Microsecond)
	reportM := fromReportDomain(report)
	reportM.ID = id
	reportM.CreatedAt = createdAt
	reportM.UpdatedAt = createdAt

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(reportM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceInvalid.WithDetails("unknown cafe or user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required report field")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create report")
	}

	report.ID = reportM.ID
	report.CreatedAt = reportM.CreatedAt
	report.UpdatedAt = reportM.UpdatedAt

	return nil
}

// FindLatestByCafe returns the newest reports of a café with their authors.
func (repo *reportRepository) FindLatestByCafe(ctx context.Context, cafeID uuid.UUID, limit int) ([]*entity.Report, error) {
	var reportModels []*model.ReportModel
	err := repo.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "image")
		}).
		Where("cafe_id = ?", cafeID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&reportModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find reports by cafe")
	}

	reports := make([]*entity.Report, 0, len(reportModels))
	for _, reportM := range reportModels {
		reports = append(reports, toReportDomain(reportM))
	}

	return reports, nil
}

// FindLatestPerCafe keeps rank 1 of a window over the requested cafés, so a
// whole viewport is resolved in one statement.
func (repo *reportRepository) FindLatestPerCafe(ctx context.Context, cafeIDs []uuid.UUID) (map[uuid.UUID]*entity.Report, error) {
	latest := make(map[uuid.UUID]*entity.Report, len(cafeIDs))
	if len(cafeIDs) == 0 {
		return latest, nil
	}

	ranked := repo.db.WithContext(ctx).
		Model(&model.ReportModel{}).
		Select(latestPerCafeSelect).
		Where("cafe_id IN ?", cafeIDs)

	var reportModels []*model.ReportModel
	err := repo.db.WithContext(ctx).
		Table("(?) AS ranked", ranked).
		Where("rn = ?", 1).
		Find(&reportModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find latest report per cafe")
	}

	for _, reportM := range reportModels {
		latest[reportM.CafeID] = toReportDomain(reportM)
	}

	return latest, nil
}

// --- Mapper Functions ---

func toReportDomain(data *model.ReportModel) *entity.Report {
	if data == nil {
		return nil
	}

	report := &entity.Report{
		ID:           data.ID,
		CafeID:       data.CafeID,
		UserID:       data.UserID,
		SeatStatus:   entity.SeatStatus(data.SeatStatus),
		Quietness:    entity.Quietness(data.Quietness),
		Wifi:         entity.WifiSpeed(data.Wifi),
		PowerOutlets: data.PowerOutlets,
		Comment:      data.Comment,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.User != nil {
		report.Author = &entity.UserProfile{
			ID:    data.User.ID,
			Name:  data.User.Name,
			Image: data.User.Image,
		}
	}

	return report
}

func fromReportDomain(data *entity.Report) *model.ReportModel {
	if data == nil {
		return nil
	}

	return &model.ReportModel{
		ID:           data.ID,
		CafeID:       data.CafeID,
		UserID:       data.UserID,
		SeatStatus:   data.SeatStatus.String(),
		Quietness:    data.Quietness.String(),
		Wifi:         data.Wifi.String(),
		PowerOutlets: data.PowerOutlets,
		Comment:      data.Comment,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
