package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ads-campaigns/internal/core/domain"
	"ads-campaigns/internal/core/port"
)

// BannerRepository implements port.BannerStore using pgxpool for PostgreSQL.
// Every session is a read-only REPEATABLE READ transaction, so the queries
// of one selection observe a single snapshot.
type BannerRepository struct {
	pool *pgxpool.Pool
}

// Compile-time interface check.
var _ port.BannerStore = (*BannerRepository)(nil)

// NewBannerRepository returns a new repository instance.
func NewBannerRepository(pool *pgxpool.Pool) *BannerRepository {
	return &BannerRepository{pool: pool}
}

// Session begins the read transaction backing a selection.
func (r *BannerRepository) Session(ctx context.Context) (port.BannerSession, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrStorageUnavailable, err)
	}
	return &bannerSession{tx: tx}, nil
}

type bannerSession struct {
	tx pgx.Tx
}

// Close rolls back the read transaction; nothing was written.
func (s *bannerSession) Close(ctx context.Context) error {
	err := s.tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}

// ConvertingBanners counts banners with at least one conversion in scope.
func (s *bannerSession) ConvertingBanners(ctx context.Context, campaignID int64, quarter domain.Quarter) (int, error) {
	const query = `
        SELECT COUNT(DISTINCT c.banner_id)
        FROM clicks c
        JOIN conversions cv ON cv.click_id = c.click_id
        WHERE c.campaign_id = $1
          AND c.quarter = $2`
	var x int
	if err := s.tx.QueryRow(ctx, query, campaignID, int(quarter)).Scan(&x); err != nil {
		return 0, err
	}
	return x, nil
}

// TopByRevenue ranks converting banners by summed revenue. Conversions are
// folded per click first so the click count is not multiplied by them.
func (s *bannerSession) TopByRevenue(ctx context.Context, q port.RankQuery) ([]domain.BannerStat, error) {
	const query = `
        SELECT
            c.banner_id,
            COUNT(*) AS clicks,
            SUM(cv.revenue)::float8 AS revenue
        FROM clicks c
        LEFT JOIN (
            SELECT click_id, SUM(revenue) AS revenue
            FROM conversions
            GROUP BY click_id
        ) cv ON cv.click_id = c.click_id
        WHERE c.campaign_id = $1
          AND c.quarter = $2
          AND c.banner_id <> ALL($3::bigint[])
        GROUP BY c.banner_id
        HAVING COUNT(cv.click_id) > 0
        ORDER BY revenue DESC, c.banner_id ASC
        LIMIT $4`
	return s.collect(ctx, q, query, true)
}

// TopByClicks ranks clicked banners by click count.
func (s *bannerSession) TopByClicks(ctx context.Context, q port.RankQuery) ([]domain.BannerStat, error) {
	const query = `
        SELECT c.banner_id, COUNT(*) AS clicks
        FROM clicks c
        WHERE c.campaign_id = $1
          AND c.quarter = $2
          AND c.banner_id <> ALL($3::bigint[])
        GROUP BY c.banner_id
        ORDER BY clicks DESC, c.banner_id ASC
        LIMIT $4`
	return s.collect(ctx, q, query, false)
}

// Random draws banners of the campaign from any quarter, provided the
// campaign has at least one click in the requested quarter. clicks counts
// only the requested quarter.
func (s *bannerSession) Random(ctx context.Context, q port.RankQuery) ([]domain.BannerStat, error) {
	const query = `
        SELECT c.banner_id, COUNT(*) FILTER (WHERE c.quarter = $2) AS clicks
        FROM clicks c
        WHERE c.campaign_id = $1
          AND c.banner_id <> ALL($3::bigint[])
          AND EXISTS (
              SELECT 1 FROM clicks cq
              WHERE cq.campaign_id = $1 AND cq.quarter = $2
          )
        GROUP BY c.banner_id
        ORDER BY random()
        LIMIT $4`
	return s.collect(ctx, q, query, false)
}

func (s *bannerSession) collect(ctx context.Context, q port.RankQuery, query string, withRevenue bool) ([]domain.BannerStat, error) {
	if q.Limit <= 0 {
		return []domain.BannerStat{}, nil
	}
	// IDs never returns nil, so an empty set binds as '{}' and excludes nothing.
	rows, err := s.tx.Query(ctx, query, q.CampaignID, int(q.Quarter), q.Exclude.IDs(), q.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BannerStat, error) {
		st := domain.BannerStat{CampaignID: q.CampaignID, Quarter: q.Quarter}
		if withRevenue {
			err := row.Scan(&st.BannerID, &st.Clicks, &st.Revenue)
			return st, err
		}
		err := row.Scan(&st.BannerID, &st.Clicks)
		return st, err
	})
}

// AllBanners returns the click count of every banner, campaign and quarter.
func (s *bannerSession) AllBanners(ctx context.Context) ([]domain.BannerStat, error) {
	const query = `
        SELECT banner_id, campaign_id, quarter, COUNT(*) AS clicks
        FROM clicks
        GROUP BY banner_id, campaign_id, quarter
        ORDER BY campaign_id, quarter, banner_id`
	rows, err := s.tx.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BannerStat, error) {
		var (
			st      domain.BannerStat
			quarter int16
		)
		err := row.Scan(&st.BannerID, &st.CampaignID, &quarter, &st.Clicks)
		st.Quarter = domain.Quarter(quarter)
		return st, err
	})
}
