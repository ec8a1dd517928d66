package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"ads-campaigns/internal/core/domain"
	"ads-campaigns/internal/core/port"
	"ads-campaigns/internal/observability"
)

// BannerUseCase implements port.BannerUseCase. It picks the banners of a
// campaign for the current quarter using the tier rules and shuffles them.
type BannerUseCase struct {
	store   port.BannerStore
	metrics *observability.Metrics

	// now returns the wall clock the quarter is derived from.
	now func() time.Time
	// shuffle permutes the final selection in place.
	shuffle func(n int, swap func(i, j int))
}

// Option configures a BannerUseCase.
type Option func(*BannerUseCase)

// WithMetrics records selection metrics on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(u *BannerUseCase) { u.metrics = m }
}

// WithClock overrides the wall clock.
func WithClock(now func() time.Time) Option {
	return func(u *BannerUseCase) { u.now = now }
}

// WithShuffle overrides the permutation applied to every selection.
func WithShuffle(shuffle func(n int, swap func(i, j int))) Option {
	return func(u *BannerUseCase) { u.shuffle = shuffle }
}

// NewBannerUseCase creates a new usecase reading from store.
func NewBannerUseCase(store port.BannerStore, opts ...Option) *BannerUseCase {
	u := &BannerUseCase{
		store:   store,
		now:     time.Now,
		shuffle: rand.Shuffle,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// GetAllBanners returns every distinct banner, campaign and quarter with
// its click count.
func (u *BannerUseCase) GetAllBanners(ctx context.Context) (banners []domain.Banner, err error) {
	sess, err := u.openSession(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := sess.Close(ctx); cerr != nil && err == nil {
			banners, err = nil, fmt.Errorf("close session: %w", cerr)
		}
	}()

	rows, err := sess.AllBanners(ctx)
	if err != nil {
		u.metrics.ObserveStorageError("all_banners")
		return nil, fmt.Errorf("list banners: %w", err)
	}

	banners = make([]domain.Banner, 0, len(rows))
	for _, row := range rows {
		banners = append(banners, domain.NewBanner(row))
	}
	return banners, nil
}

// SelectCampaignBanners returns the banners to show for campaignID in the
// current quarter. Banners listed in seen are never returned. The quarter
// is fixed at the start of the call so every query agrees on it.
func (u *BannerUseCase) SelectCampaignBanners(ctx context.Context, campaignID int64, seen []int64) (banners []domain.Banner, err error) {
	if campaignID < 0 {
		return nil, fmt.Errorf("%w: negative campaign id %d", port.ErrInvalidInput, campaignID)
	}
	for _, id := range seen {
		if id < 0 {
			return nil, fmt.Errorf("%w: negative banner id %d", port.ErrInvalidInput, id)
		}
	}

	started := u.now()
	quarter := domain.QuarterOf(started)

	sess, err := u.openSession(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := sess.Close(ctx); cerr != nil && err == nil {
			banners, err = nil, fmt.Errorf("close session: %w", cerr)
		}
	}()

	x, err := sess.ConvertingBanners(ctx, campaignID, quarter)
	if err != nil {
		u.metrics.ObserveStorageError("converting_banners")
		return nil, fmt.Errorf("count converting banners: %w", err)
	}

	tier := domain.TierFor(x)
	rows, err := u.collect(ctx, sess, tier, x, port.RankQuery{
		CampaignID: campaignID,
		Quarter:    quarter,
		Exclude:    domain.NewBannerSet(seen...),
	})
	if err != nil {
		return nil, err
	}

	banners = make([]domain.Banner, 0, len(rows))
	for _, row := range rows {
		row.CampaignID, row.Quarter = campaignID, quarter
		banners = append(banners, domain.NewBanner(row))
	}
	u.shuffle(len(banners), func(i, j int) {
		banners[i], banners[j] = banners[j], banners[i]
	})

	u.metrics.ObserveSelection(tier, len(banners), u.now().Sub(started))
	return banners, nil
}

// collect runs the retrievals of tier and returns the distinct rows in
// retrieval order. q.Exclude grows as banners are chosen.
func (u *BannerUseCase) collect(ctx context.Context, sess port.BannerSession, tier domain.Tier, x int, q port.RankQuery) ([]domain.BannerStat, error) {
	var (
		picked []domain.BannerStat
		err    error
	)
	switch tier {
	case domain.TierA:
		q.Limit = domain.MaxRevenueBanners
		picked, err = u.retrieve(ctx, "top_by_revenue", sess.TopByRevenue, q, picked)
	case domain.TierB:
		q.Limit = x
		picked, err = u.retrieve(ctx, "top_by_revenue", sess.TopByRevenue, q, picked)
	case domain.TierC:
		q.Limit = x
		if picked, err = u.retrieve(ctx, "top_by_revenue", sess.TopByRevenue, q, picked); err != nil {
			return nil, err
		}
		q.Limit = domain.CollectionSize - len(picked)
		picked, err = u.retrieve(ctx, "top_by_clicks", sess.TopByClicks, q, picked)
	case domain.TierD:
		q.Limit = domain.CollectionSize
		if picked, err = u.retrieve(ctx, "top_by_clicks", sess.TopByClicks, q, picked); err != nil {
			return nil, err
		}
		q.Limit = domain.CollectionSize - len(picked)
		picked, err = u.retrieve(ctx, "random", sess.Random, q, picked)
	default:
		return nil, fmt.Errorf("unknown tier %q", tier)
	}
	if err != nil {
		return nil, err
	}
	return picked, nil
}

type retrieval func(ctx context.Context, q port.RankQuery) ([]domain.BannerStat, error)

// retrieve runs fetch and appends the rows not yet excluded to picked,
// adding them to q.Exclude. A non-positive limit skips the query.
func (u *BannerUseCase) retrieve(ctx context.Context, name string, fetch retrieval, q port.RankQuery, picked []domain.BannerStat) ([]domain.BannerStat, error) {
	if q.Limit <= 0 {
		return picked, nil
	}
	rows, err := fetch(ctx, q)
	if err != nil {
		u.metrics.ObserveStorageError(name)
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	for _, row := range rows {
		if q.Limit == 0 {
			break
		}
		if q.Exclude.Has(row.BannerID) {
			continue
		}
		q.Exclude.Add(row.BannerID)
		picked = append(picked, row)
		q.Limit--
	}
	return picked, nil
}

func (u *BannerUseCase) openSession(ctx context.Context) (port.BannerSession, error) {
	sess, err := u.store.Session(ctx)
	if err != nil {
		u.metrics.ObserveStorageError("session")
		return nil, fmt.Errorf("open session: %w", err)
	}
	return sess, nil
}
