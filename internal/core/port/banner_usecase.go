package port

import (
	"context"

	"ads-campaigns/internal/core/domain"
)

// BannerUseCase defines the business operations exposed by the banner
// selection engine. It is the primary port into the application domain.
type BannerUseCase interface {
	// GetAllBanners returns one record per distinct banner, campaign and
	// quarter with its click count.
	GetAllBanners(ctx context.Context) ([]domain.Banner, error)

	// SelectCampaignBanners returns the banners to show for a campaign in
	// the current quarter, skipping the ids in seen. The result order is
	// shuffled on every call. An empty result is not an error.
	SelectCampaignBanners(ctx context.Context, campaignID int64, seen []int64) ([]domain.Banner, error)
}
