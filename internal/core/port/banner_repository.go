package port

import (
	"context"
	"errors"

	"ads-campaigns/internal/core/domain"
)

var (
	// ErrStorageUnavailable is returned when a storage session cannot be
	// opened. The driver error is wrapped alongside it.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrInvalidInput is returned for malformed campaign or banner ids.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateKey is returned when loading a click or conversion whose id
	// already exists.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrSessionClosed is returned by a BannerSession used after Close.
	ErrSessionClosed = errors.New("session closed")
)

// BannerStore is the outbound storage port of the selection engine. Each
// logical operation opens its own session and must close it on every exit
// path.
type BannerStore interface {
	// Session opens a read session whose queries all observe the same
	// state of the store.
	Session(ctx context.Context) (BannerSession, error)
}

// BannerSession exposes the read queries over clicks and conversions.
// Implementations break ranking ties by ascending banner id.
type BannerSession interface {
	// ConvertingBanners counts distinct banners with at least one
	// conversion for the campaign in the quarter.
	ConvertingBanners(ctx context.Context, campaignID int64, quarter domain.Quarter) (int, error)
	// TopByRevenue returns converting banners ranked by summed revenue.
	TopByRevenue(ctx context.Context, q RankQuery) ([]domain.BannerStat, error)
	// TopByClicks returns clicked banners ranked by click count.
	TopByClicks(ctx context.Context, q RankQuery) ([]domain.BannerStat, error)
	// Random returns banners of the campaign in random order. Candidates are
	// all banners ever clicked for the campaign; Clicks is the count within
	// q.Quarter.
	Random(ctx context.Context, q RankQuery) ([]domain.BannerStat, error)
	// AllBanners returns one row per distinct (banner, campaign, quarter).
	AllBanners(ctx context.Context) ([]domain.BannerStat, error)
	// Close releases the session. It is safe to call more than once.
	Close(ctx context.Context) error
}

// RankQuery scopes a ranked retrieval. An empty Exclude excludes nothing.
type RankQuery struct {
	CampaignID int64
	Quarter    domain.Quarter
	Limit      int
	Exclude    domain.BannerSet
}
