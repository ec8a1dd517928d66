package db

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ads-campaigns/internal/core/domain"
)

// Dataset is a set of clicks and the conversions referencing them.
type Dataset struct {
	Clicks      []domain.Click
	Conversions []domain.Conversion
}

// Loader accepts clicks and conversions one at a time.
type Loader interface {
	AddClick(ctx context.Context, c domain.Click) error
	AddConversion(ctx context.Context, cv domain.Conversion) error
}

const (
	demoCampaigns  = 49
	demoMinBanners = 8
	demoMaxBanners = 25
)

// conversion rates a demo campaign is drawn from; they spread campaigns over
// all selection tiers
var demoConversionRates = []float64{0, 0.03, 0.12, 0.35}

// GenerateDemo builds a reproducible demo dataset for campaigns 1..49.
// Every banner is clicked in every quarter, so each campaign can fill a
// collection of CollectionSize banners whatever its tier.
func GenerateDemo(seed uint64) Dataset {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	var (
		ds      Dataset
		clickID int64
		convID  int64
	)
	for campaign := int64(1); campaign <= demoCampaigns; campaign++ {
		rate := demoConversionRates[r.IntN(len(demoConversionRates))]
		banners := demoMinBanners + r.IntN(demoMaxBanners-demoMinBanners+1)
		for j := 1; j <= banners; j++ {
			bannerID := campaign*100 + int64(j)
			for q := domain.FirstQuarter; q <= domain.FourthQuarter; q++ {
				for range 1 + r.IntN(6) {
					clickID++
					ds.Clicks = append(ds.Clicks, domain.Click{
						ID:         clickID,
						BannerID:   bannerID,
						CampaignID: campaign,
						Quarter:    q,
					})
					if r.Float64() < rate {
						convID++
						ds.Conversions = append(ds.Conversions, domain.Conversion{
							ID:      convID,
							ClickID: clickID,
							Revenue: math.Round((0.5+r.Float64()*49.5)*100) / 100,
						})
					}
				}
			}
		}
	}
	return ds
}

// Load feeds ds into l, clicks first.
func Load(ctx context.Context, l Loader, ds Dataset) error {
	for _, c := range ds.Clicks {
		if err := l.AddClick(ctx, c); err != nil {
			return fmt.Errorf("load click %d: %w", c.ID, err)
		}
	}
	for _, cv := range ds.Conversions {
		if err := l.AddConversion(ctx, cv); err != nil {
			return fmt.Errorf("load conversion %d: %w", cv.ID, err)
		}
	}
	return nil
}

// Seed inserts ds into the database in one transaction. Rows whose id
// already exists are left untouched.
func Seed(ctx context.Context, db *pgxpool.Pool, ds Dataset) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	batch := &pgx.Batch{}
	for _, c := range ds.Clicks {
		batch.Queue(`INSERT INTO clicks (click_id, banner_id, campaign_id, quarter)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`, c.ID, c.BannerID, c.CampaignID, int16(c.Quarter))
	}
	for _, cv := range ds.Conversions {
		batch.Queue(`INSERT INTO conversions (conversion_id, click_id, revenue)
VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`, cv.ID, cv.ClickID, cv.Revenue)
	}
	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert demo data: %w", err)
	}
	return nil
}
