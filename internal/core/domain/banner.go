package domain

// Banner is the record returned to callers for one banner of a campaign in a
// quarter. ID and Banner always carry the same banner id.
type Banner struct {
	ID       int64   `json:"id"`
	Click    int64   `json:"click"`
	Banner   int64   `json:"banner"`
	Campaign int64   `json:"campaign"`
	Quarter  Quarter `json:"quarter"`
}

// BannerStat is a raw aggregate row produced by the query layer.
// Revenue is only populated by revenue-ranked retrieval.
type BannerStat struct {
	BannerID   int64
	Clicks     int64
	CampaignID int64
	Quarter    Quarter
	Revenue    float64
}

// NewBanner converts an aggregate row into a Banner record.
func NewBanner(s BannerStat) Banner {
	return Banner{
		ID:       s.BannerID,
		Click:    s.Clicks,
		Banner:   s.BannerID,
		Campaign: s.CampaignID,
		Quarter:  s.Quarter,
	}
}
