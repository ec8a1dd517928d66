package domain

// Click is a record of a click on a banner. Quarter is the quarter of the
// hour the click happened in.
type Click struct {
	ID         int64
	BannerID   int64
	CampaignID int64
	Quarter    Quarter
}

// Conversion is a completed conversion tied to a single click.
type Conversion struct {
	ID      int64
	ClickID int64
	Revenue float64
}
