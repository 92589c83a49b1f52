// Package seed loads a small fixed data set for local development.
package seed

import (
	"context"

	"cafemap/internal/domain/entity"
	"cafemap/internal/domain/repository"
	"cafemap/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DemoUserID is stable so that reseeding keeps issued demo tokens valid.
var DemoUserID = uuid.MustParse("0190f5a2-7c1e-7000-8000-00000000c0fe")

type cafeSeed struct {
	placeID string
	name    string
	address string
	lat     string
	lng     string
}

// Around Tokyo station.
var tokyoStationCafes = []cafeSeed{
	{"seed-marunouchi", "丸の内ステーションカフェ", "東京都千代田区丸の内1-9-1", "35.6812000", "139.7671000"},
	{"seed-yaesu", "八重洲ブリュワーズ", "東京都中央区八重洲1-5-3", "35.6803000", "139.7700000"},
	{"seed-yurakucho", "有楽町ガード下珈琲", "東京都千代田区有楽町2-7-1", "35.6750000", "139.7630000"},
}

var shibuyaCafes = []cafeSeed{
	{"seed-dogenzaka", "渋谷スクランブル珈琲", "東京都渋谷区道玄坂2-1", "35.6580000", "139.7016000"},
	{"seed-miyamasuzaka", "宮益坂ロースタリー", "東京都渋谷区渋谷1-14-11", "35.6605000", "139.7055000"},
}

type reportSeed struct {
	placeID string
	seats   entity.SeatStatus
	quiet   entity.Quietness
	wifi    entity.WifiSpeed
	power   bool
	comment string
}

// Yaesu and Miyamasuzaka are left without reports.
var demoReports = []reportSeed{
	{"seed-marunouchi", entity.SeatStatusAvailable, entity.QuietnessQuiet, entity.WifiFast, true, "窓際が空いてます"},
	{"seed-yurakucho", entity.SeatStatusCrowded, entity.QuietnessNoisy, entity.WifiSlow, false, ""},
	{"seed-dogenzaka", entity.SeatStatusFull, entity.QuietnessNormal, entity.WifiNormal, true, "満席"},
}

// Result lists what was written.
type Result struct {
	User    *entity.User
	Cafes   []*entity.Cafe
	Reports []*entity.Report
}

// Run upserts the Tokyo-station cafés in one transaction. With demo set it
// also adds the Shibuya cafés, the demo user and one report for some cafés.
// Cafés are keyed by place id, so running it twice does not duplicate them.
func Run(ctx context.Context, tm repository.TransactionManager, demo bool) (*Result, error) {
	result := &Result{}

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		seeds := tokyoStationCafes
		if demo {
			seeds = append(append([]cafeSeed{}, tokyoStationCafes...), shibuyaCafes...)
		}

		byPlaceID := make(map[string]*entity.Cafe, len(seeds))
		cafeRepo := factory.NewCafeRepository()
		for _, cs := range seeds {
			placeID := cs.placeID
			cafe := &entity.Cafe{
				Name:      cs.name,
				Address:   cs.address,
				Latitude:  decimal.RequireFromString(cs.lat),
				Longitude: decimal.RequireFromString(cs.lng),
				PlaceID:   &placeID,
			}
			if err := cafeRepo.UpsertCafe(ctx, cafe); err != nil {
				return errors.Wrapf(err, "failed to seed cafe %s", cs.placeID)
			}
			byPlaceID[placeID] = cafe
			result.Cafes = append(result.Cafes, cafe)
		}

		if !demo {
			return nil
		}

		user := &entity.User{
			ID:    DemoUserID,
			Email: "demo@cafemap.local",
			Name:  "デモユーザー",
		}
		if err := factory.NewUserRepository().UpsertUser(ctx, user); err != nil {
			return errors.Wrap(err, "failed to seed demo user")
		}
		result.User = user

		reportRepo := factory.NewReportRepository()
		for _, rs := range demoReports {
			report := &entity.Report{
				CafeID:       byPlaceID[rs.placeID].ID,
				UserID:       user.ID,
				SeatStatus:   rs.seats,
				Quietness:    rs.quiet,
				Wifi:         rs.wifi,
				PowerOutlets: rs.power,
			}
			if rs.comment != "" {
				comment := rs.comment
				report.Comment = &comment
			}
			if err := reportRepo.CreateReport(ctx, report); err != nil {
				return errors.Wrapf(err, "failed to seed report for %s", rs.placeID)
			}
			result.Reports = append(result.Reports, report)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
