package usecase

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ads-campaigns/internal/adapter/memory"
	"ads-campaigns/internal/core/domain"
	"ads-campaigns/internal/core/port"
	"ads-campaigns/internal/core/port/mocks"
	"ads-campaigns/internal/db"
)

// 12:20 UTC falls in the second quarter.
var fixedNow = time.Date(2024, 5, 1, 12, 20, 0, 0, time.UTC)

const currentQuarter = domain.Quarter(2)

type dataset struct {
	store  *memory.BannerStore
	nextID int64
}

func newDataset() *dataset {
	return &dataset{store: memory.NewBannerStore()}
}

// banner adds n clicks of banner in campaign/quarter and, when revenue > 0,
// a conversion on the first of them.
func (d *dataset) banner(t *testing.T, campaign, banner int64, quarter domain.Quarter, clicks int, revenue float64) {
	t.Helper()
	ctx := context.Background()
	var first int64
	for i := range clicks {
		d.nextID++
		if i == 0 {
			first = d.nextID
		}
		require.NoError(t, d.store.AddClick(ctx, domain.Click{
			ID: d.nextID, BannerID: banner, CampaignID: campaign, Quarter: quarter,
		}))
	}
	if revenue > 0 {
		d.nextID++
		require.NoError(t, d.store.AddConversion(ctx, domain.Conversion{
			ID: d.nextID, ClickID: first, Revenue: revenue,
		}))
	}
}

func (d *dataset) useCase() *BannerUseCase {
	return NewBannerUseCase(d.store, WithClock(func() time.Time { return fixedNow }))
}

func bannerIDs(banners []domain.Banner) []int64 {
	out := make([]int64, 0, len(banners))
	for _, b := range banners {
		out = append(out, b.ID)
	}
	return out
}

func requireWellFormed(t *testing.T, campaign int64, banners []domain.Banner) {
	t.Helper()
	seen := make(map[int64]bool)
	for _, b := range banners {
		require.False(t, seen[b.ID], "duplicate banner %d", b.ID)
		seen[b.ID] = true
		require.Equal(t, b.ID, b.Banner)
		require.Equal(t, campaign, b.Campaign)
		require.Equal(t, currentQuarter, b.Quarter)
	}
}

func TestSelectTierA(t *testing.T) {
	d := newDataset()
	for b := int64(1); b <= 12; b++ {
		d.banner(t, 1, b, currentQuarter, 1, float64(b)*10)
	}

	got, err := d.useCase().SelectCampaignBanners(context.Background(), 1, nil)
	require.NoError(t, err)
	requireWellFormed(t, 1, got)
	assert.ElementsMatch(t, []int64{3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, bannerIDs(got))
}

func TestSelectTierASkipsSeen(t *testing.T) {
	d := newDataset()
	for b := int64(1); b <= 12; b++ {
		d.banner(t, 1, b, currentQuarter, 1, float64(b)*10)
	}
	seen := []int64{12, 11}

	got, err := d.useCase().SelectCampaignBanners(context.Background(), 1, seen)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, bannerIDs(got))
	assert.Equal(t, []int64{12, 11}, seen)
}

func TestSelectTierB(t *testing.T) {
	d := newDataset()
	for b := int64(1); b <= 7; b++ {
		d.banner(t, 1, b, currentQuarter, 2, float64(b))
	}
	// clicked but unconverted banners never reach tier B
	d.banner(t, 1, 100, currentQuarter, 50, 0)

	got, err := d.useCase().SelectCampaignBanners(context.Background(), 1, nil)
	require.NoError(t, err)
	requireWellFormed(t, 1, got)
	assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5, 6, 7}, bannerIDs(got))
	for _, b := range got {
		assert.Equal(t, int64(2), b.Click)
	}
}

func TestSelectTierC(t *testing.T) {
	d := newDataset()
	// converting banners also have the most clicks, so the click-ranked
	// query has to skip them
	d.banner(t, 1, 1, currentQuarter, 30, 5)
	d.banner(t, 1, 2, currentQuarter, 20, 3)
	d.banner(t, 1, 3, currentQuarter, 10, 1)
	d.banner(t, 1, 4, currentQuarter, 9, 0)
	d.banner(t, 1, 5, currentQuarter, 8, 0)
	d.banner(t, 1, 6, currentQuarter, 1, 0)

	got, err := d.useCase().SelectCampaignBanners(context.Background(), 1, nil)
	require.NoError(t, err)
	requireWellFormed(t, 1, got)
	assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5}, bannerIDs(got))
}

func TestSelectTierCFillsUpWhenSeenHidesRevenueBanner(t *testing.T) {
	d := newDataset()
	d.banner(t, 1, 1, currentQuarter, 1, 5)
	d.banner(t, 1, 2, currentQuarter, 1, 3)
	for b := int64(10); b < 15; b++ {
		d.banner(t, 1, b, currentQuarter, int(b), 0)
	}

	got, err := d.useCase().SelectCampaignBanners(context.Background(), 1, []int64{1})
	require.NoError(t, err)
	requireWellFormed(t, 1, got)
	assert.ElementsMatch(t, []int64{2, 14, 13, 12, 11}, bannerIDs(got))
}

func TestSelectTierDTopClicks(t *testing.T) {
	d := newDataset()
	for b := int64(1); b <= 8; b++ {
		d.banner(t, 1, b, currentQuarter, int(b), 0)
	}

	got, err := d.useCase().SelectCampaignBanners(context.Background(), 1, nil)
	require.NoError(t, err)
	requireWellFormed(t, 1, got)
	assert.ElementsMatch(t, []int64{4, 5, 6, 7, 8}, bannerIDs(got))
}

func TestSelectTierDRandomFill(t *testing.T) {
	d := newDataset()
	d.banner(t, 1, 1, currentQuarter, 3, 0)
	d.banner(t, 1, 2, currentQuarter, 1, 0)
	// banners of the same campaign clicked in other quarters
	d.banner(t, 1, 3, 1, 1, 0)
	d.banner(t, 1, 4, 3, 2, 0)
	d.banner(t, 1, 5, 4, 1, 7)
	// another campaign must not leak in
	d.banner(t, 2, 6, currentQuarter, 4, 0)

	got, err := d.useCase().SelectCampaignBanners(context.Background(), 1, nil)
	require.NoError(t, err)
	requireWellFormed(t, 1, got)
	require.Len(t, got, 5)
	assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5}, bannerIDs(got))
	for _, b := range got {
		if b.ID > 2 {
			assert.Zero(t, b.Click, "banner %d has no clicks this quarter", b.ID)
		}
	}
}

func TestSelectTierDRandomFillIsCapped(t *testing.T) {
	d := newDataset()
	d.banner(t, 1, 1, currentQuarter, 1, 0)
	for b := int64(10); b < 30; b++ {
		d.banner(t, 1, b, 1, 1, 0)
	}

	got, err := d.useCase().SelectCampaignBanners(context.Background(), 1, nil)
	require.NoError(t, err)
	requireWellFormed(t, 1, got)
	require.Len(t, got, 5)
	assert.Contains(t, bannerIDs(got), int64(1))
}

func TestSelectNoClicks(t *testing.T) {
	d := newDataset()
	d.banner(t, 2, 1, currentQuarter, 3, 1)

	got, err := d.useCase().SelectCampaignBanners(context.Background(), 1, nil)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestSelectNoClicksInCurrentQuarter(t *testing.T) {
	d := newDataset()
	for b := int64(1); b <= 6; b++ {
		d.banner(t, 1, b, 1, 2, 0)
	}
	d.banner(t, 1, 7, 3, 1, 4)

	got, err := d.useCase().SelectCampaignBanners(context.Background(), 1, nil)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSelectRandomFillWhenSeenHidesQuarterClicks(t *testing.T) {
	d := newDataset()
	d.banner(t, 1, 1, currentQuarter, 2, 0)
	for b := int64(2); b <= 7; b++ {
		d.banner(t, 1, b, 1, 1, 0)
	}

	got, err := d.useCase().SelectCampaignBanners(context.Background(), 1, []int64{1})
	require.NoError(t, err)
	requireWellFormed(t, 1, got)
	require.Len(t, got, 5)
	assert.NotContains(t, bannerIDs(got), int64(1))
}

func TestSelectMembershipStableOrderShuffled(t *testing.T) {
	d := newDataset()
	for b := int64(1); b <= 10; b++ {
		d.banner(t, 1, b, currentQuarter, 1, float64(b))
	}
	uc := d.useCase()
	ctx := context.Background()

	first, err := uc.SelectCampaignBanners(ctx, 1, nil)
	require.NoError(t, err)

	reordered := false
	for range 5 {
		next, err := uc.SelectCampaignBanners(ctx, 1, nil)
		require.NoError(t, err)
		require.ElementsMatch(t, bannerIDs(first), bannerIDs(next))
		if !slices.Equal(bannerIDs(first), bannerIDs(next)) {
			reordered = true
		}
	}
	assert.True(t, reordered, "order should differ between calls")
}

func TestSelectAppliesShuffle(t *testing.T) {
	d := newDataset()
	for b := int64(1); b <= 5; b++ {
		d.banner(t, 1, b, currentQuarter, 1, float64(b))
	}
	called := 0
	uc := NewBannerUseCase(d.store,
		WithClock(func() time.Time { return fixedNow }),
		WithShuffle(func(n int, swap func(i, j int)) {
			called++
			assert.Equal(t, 5, n)
		}),
	)

	_, err := uc.SelectCampaignBanners(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, called)
}

func TestSelectQuarterFollowsClock(t *testing.T) {
	d := newDataset()
	d.banner(t, 1, 1, 4, 1, 0)
	d.banner(t, 1, 2, currentQuarter, 1, 0)

	uc := NewBannerUseCase(d.store, WithClock(func() time.Time {
		return time.Date(2024, 5, 1, 12, 50, 0, 0, time.UTC)
	}))
	got, err := uc.SelectCampaignBanners(context.Background(), 1, nil)
	require.NoError(t, err)
	for _, b := range got {
		assert.Equal(t, domain.Quarter(4), b.Quarter)
	}
	i := slices.IndexFunc(got, func(b domain.Banner) bool { return b.ID == 1 })
	require.GreaterOrEqual(t, i, 0, "banner 1 missing from %v", bannerIDs(got))
	assert.Equal(t, int64(1), got[i].Click)
}

func TestSelectInvalidInput(t *testing.T) {
	store := mocks.NewMockBannerStore(t)
	uc := NewBannerUseCase(store)

	_, err := uc.SelectCampaignBanners(context.Background(), -1, nil)
	require.ErrorIs(t, err, port.ErrInvalidInput)

	_, err = uc.SelectCampaignBanners(context.Background(), 1, []int64{3, -2})
	require.ErrorIs(t, err, port.ErrInvalidInput)
}

func TestGetAllBanners(t *testing.T) {
	d := newDataset()
	d.banner(t, 1, 1, 1, 2, 0)
	d.banner(t, 1, 1, 3, 1, 0)
	d.banner(t, 2, 7, 1, 4, 9)

	got, err := d.useCase().GetAllBanners(context.Background())
	require.NoError(t, err)
	require.Equal(t, []domain.Banner{
		{ID: 1, Click: 2, Banner: 1, Campaign: 1, Quarter: 1},
		{ID: 1, Click: 1, Banner: 1, Campaign: 1, Quarter: 3},
		{ID: 7, Click: 4, Banner: 7, Campaign: 2, Quarter: 1},
	}, got)
}

func TestSessionUnavailable(t *testing.T) {
	store := mocks.NewMockBannerStore(t)
	store.EXPECT().Session(mock.Anything).Return(nil, port.ErrStorageUnavailable)

	uc := NewBannerUseCase(store)

	_, err := uc.SelectCampaignBanners(context.Background(), 1, nil)
	require.ErrorIs(t, err, port.ErrStorageUnavailable)

	_, err = uc.GetAllBanners(context.Background())
	require.ErrorIs(t, err, port.ErrStorageUnavailable)
}

func TestSubQueryFailureClosesSession(t *testing.T) {
	boom := errors.New("connection reset")

	store := mocks.NewMockBannerStore(t)
	sess := mocks.NewMockBannerSession(t)
	store.EXPECT().Session(mock.Anything).Return(sess, nil)
	sess.EXPECT().ConvertingBanners(mock.Anything, int64(4), currentQuarter).Return(0, nil)
	sess.EXPECT().TopByClicks(mock.Anything, mock.Anything).Return([]domain.BannerStat{
		{BannerID: 1, Clicks: 3, CampaignID: 4, Quarter: currentQuarter},
	}, nil)
	sess.EXPECT().Random(mock.Anything, mock.Anything).Return(nil, boom)
	sess.EXPECT().Close(mock.Anything).Return(nil).Once()

	uc := NewBannerUseCase(store, WithClock(func() time.Time { return fixedNow }))
	got, err := uc.SelectCampaignBanners(context.Background(), 4, nil)
	require.ErrorIs(t, err, boom)
	require.Nil(t, got)
}

func TestCloseFailureDiscardsResult(t *testing.T) {
	boom := errors.New("rollback failed")

	store := mocks.NewMockBannerStore(t)
	sess := mocks.NewMockBannerSession(t)
	store.EXPECT().Session(mock.Anything).Return(sess, nil)
	sess.EXPECT().AllBanners(mock.Anything).Return([]domain.BannerStat{{BannerID: 1, Clicks: 1, CampaignID: 1, Quarter: 1}}, nil)
	sess.EXPECT().Close(mock.Anything).Return(boom)

	got, err := NewBannerUseCase(store).GetAllBanners(context.Background())
	require.ErrorIs(t, err, boom)
	require.Nil(t, got)
}

func TestTierQueries(t *testing.T) {
	t.Run("tier B limits revenue query to X", func(t *testing.T) {
		store := mocks.NewMockBannerStore(t)
		sess := mocks.NewMockBannerSession(t)
		store.EXPECT().Session(mock.Anything).Return(sess, nil)
		sess.EXPECT().ConvertingBanners(mock.Anything, int64(1), currentQuarter).Return(7, nil)
		sess.EXPECT().TopByRevenue(mock.Anything, mock.MatchedBy(func(q port.RankQuery) bool {
			return q.Limit == 7 && q.CampaignID == 1 && q.Quarter == currentQuarter
		})).Return([]domain.BannerStat{}, nil)
		sess.EXPECT().Close(mock.Anything).Return(nil)

		uc := NewBannerUseCase(store, WithClock(func() time.Time { return fixedNow }))
		got, err := uc.SelectCampaignBanners(context.Background(), 1, nil)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("tier C excludes revenue picks and seen from click query", func(t *testing.T) {
		store := mocks.NewMockBannerStore(t)
		sess := mocks.NewMockBannerSession(t)
		store.EXPECT().Session(mock.Anything).Return(sess, nil)
		sess.EXPECT().ConvertingBanners(mock.Anything, int64(1), currentQuarter).Return(2, nil)
		sess.EXPECT().TopByRevenue(mock.Anything, mock.MatchedBy(func(q port.RankQuery) bool {
			return q.Limit == 2 && slices.Equal(q.Exclude.IDs(), []int64{99})
		})).Return([]domain.BannerStat{{BannerID: 5}, {BannerID: 6}}, nil)
		sess.EXPECT().TopByClicks(mock.Anything, mock.MatchedBy(func(q port.RankQuery) bool {
			return q.Limit == 3 && slices.Equal(q.Exclude.IDs(), []int64{5, 6, 99})
		})).Return([]domain.BannerStat{{BannerID: 7, Clicks: 4}}, nil)
		sess.EXPECT().Close(mock.Anything).Return(nil)

		uc := NewBannerUseCase(store, WithClock(func() time.Time { return fixedNow }))
		got, err := uc.SelectCampaignBanners(context.Background(), 1, []int64{99})
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{5, 6, 7}, bannerIDs(got))
	})

	t.Run("tier D skips random query when clicks fill the collection", func(t *testing.T) {
		store := mocks.NewMockBannerStore(t)
		sess := mocks.NewMockBannerSession(t)
		store.EXPECT().Session(mock.Anything).Return(sess, nil)
		sess.EXPECT().ConvertingBanners(mock.Anything, int64(1), currentQuarter).Return(0, nil)
		sess.EXPECT().TopByClicks(mock.Anything, mock.MatchedBy(func(q port.RankQuery) bool {
			return q.Limit == 5
		})).Return([]domain.BannerStat{{BannerID: 1}, {BannerID: 2}, {BannerID: 3}, {BannerID: 4}, {BannerID: 5}}, nil)
		sess.EXPECT().Close(mock.Anything).Return(nil)

		uc := NewBannerUseCase(store, WithClock(func() time.Time { return fixedNow }))
		got, err := uc.SelectCampaignBanners(context.Background(), 1, nil)
		require.NoError(t, err)
		assert.Len(t, got, 5)
	})

	t.Run("duplicate rows from storage are dropped", func(t *testing.T) {
		store := mocks.NewMockBannerStore(t)
		sess := mocks.NewMockBannerSession(t)
		store.EXPECT().Session(mock.Anything).Return(sess, nil)
		sess.EXPECT().ConvertingBanners(mock.Anything, int64(1), currentQuarter).Return(0, nil)
		sess.EXPECT().TopByClicks(mock.Anything, mock.Anything).Return([]domain.BannerStat{{BannerID: 1}}, nil)
		sess.EXPECT().Random(mock.Anything, mock.MatchedBy(func(q port.RankQuery) bool {
			return q.Limit == 4 && q.Exclude.Has(1)
		})).Return([]domain.BannerStat{{BannerID: 1}, {BannerID: 2}, {BannerID: 2}}, nil)
		sess.EXPECT().Close(mock.Anything).Return(nil)

		uc := NewBannerUseCase(store, WithClock(func() time.Time { return fixedNow }))
		got, err := uc.SelectCampaignBanners(context.Background(), 1, nil)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{1, 2}, bannerIDs(got))
	})
}

func TestSelectOnDemoData(t *testing.T) {
	store := memory.NewBannerStore()
	require.NoError(t, db.Load(context.Background(), store, db.GenerateDemo(5)))
	uc := NewBannerUseCase(store, WithClock(func() time.Time { return fixedNow }))

	tiers := make(map[domain.Tier]bool)
	for campaign := int64(1); campaign < 50; campaign++ {
		got, err := uc.SelectCampaignBanners(context.Background(), campaign, nil)
		require.NoError(t, err)
		requireWellFormed(t, campaign, got)
		require.GreaterOrEqual(t, len(got), domain.CollectionSize, "campaign %d", campaign)
		require.LessOrEqual(t, len(got), domain.MaxRevenueBanners, "campaign %d", campaign)

		sess, err := store.Session(context.Background())
		require.NoError(t, err)
		x, err := sess.ConvertingBanners(context.Background(), campaign, currentQuarter)
		require.NoError(t, err)
		require.NoError(t, sess.Close(context.Background()))
		tiers[domain.TierFor(x)] = true
	}
	assert.True(t, tiers[domain.TierD], "demo data should contain campaigns without conversions")
}
