package domain

// Tier is the selection rule chosen from the number of converting banners.
type Tier string

const (
	TierA Tier = "A" // X >= 10: top 10 by revenue
	TierB Tier = "B" // 5 <= X < 10: top X by revenue
	TierC Tier = "C" // 1 <= X < 5: top X by revenue, filled up by clicks
	TierD Tier = "D" // X == 0: top by clicks, filled up at random
)

const (
	// MaxRevenueBanners caps the size of a tier A selection.
	MaxRevenueBanners = 10
	// CollectionSize is the size tiers C and D try to reach.
	CollectionSize = 5
)

// TierFor returns the tier matching x converting banners.
func TierFor(x int) Tier {
	switch {
	case x >= MaxRevenueBanners:
		return TierA
	case x >= CollectionSize:
		return TierB
	case x >= 1:
		return TierC
	default:
		return TierD
	}
}
