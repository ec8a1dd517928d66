package memory

import (
	"cmp"
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"

	"ads-campaigns/internal/core/domain"
	"ads-campaigns/internal/core/port"
)

// BannerStore is an in-memory implementation of port.BannerStore. Sessions
// work on a snapshot taken when they are opened.
type BannerStore struct {
	mu          sync.RWMutex
	clicks      map[int64]domain.Click      // keyed by click id
	conversions map[int64]domain.Conversion // keyed by conversion id

	shuffle func(n int, swap func(i, j int))
}

// Compile-time interface check.
var _ port.BannerStore = (*BannerStore)(nil)

// NewBannerStore creates an empty store.
func NewBannerStore() *BannerStore {
	return &BannerStore{
		clicks:      make(map[int64]domain.Click),
		conversions: make(map[int64]domain.Conversion),
		shuffle:     rand.Shuffle,
	}
}

// AddClick stores a click. Returns ErrDuplicateKey if the id exists.
func (s *BannerStore) AddClick(_ context.Context, c domain.Click) error {
	if c.ID < 0 || c.BannerID < 0 || c.CampaignID < 0 || !c.Quarter.Valid() {
		return fmt.Errorf("%w: click %+v", port.ErrInvalidInput, c)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.clicks[c.ID]; exists {
		return fmt.Errorf("%w: click %d", port.ErrDuplicateKey, c.ID)
	}
	s.clicks[c.ID] = c
	return nil
}

// AddConversion stores a conversion of an existing click.
func (s *BannerStore) AddConversion(_ context.Context, cv domain.Conversion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.clicks[cv.ClickID]; !exists {
		return fmt.Errorf("%w: conversion %d references unknown click %d", port.ErrInvalidInput, cv.ID, cv.ClickID)
	}
	if _, exists := s.conversions[cv.ID]; exists {
		return fmt.Errorf("%w: conversion %d", port.ErrDuplicateKey, cv.ID)
	}
	s.conversions[cv.ID] = cv
	return nil
}

// Session snapshots the store.
func (s *BannerStore) Session(_ context.Context) (port.BannerSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess := &session{
		clicks:  make([]domain.Click, 0, len(s.clicks)),
		revenue: make(map[int64]float64),
		shuffle: s.shuffle,
	}
	for _, c := range s.clicks {
		sess.clicks = append(sess.clicks, c)
	}
	slices.SortFunc(sess.clicks, func(a, b domain.Click) int { return cmp.Compare(a.ID, b.ID) })
	for _, cv := range s.conversions {
		sess.revenue[cv.ClickID] += cv.Revenue
	}
	return sess, nil
}

type session struct {
	clicks  []domain.Click
	revenue map[int64]float64 // summed revenue per converted click id
	shuffle func(n int, swap func(i, j int))
	closed  bool
}

type bannerAgg struct {
	domain.BannerStat
	converted bool
}

// aggregate groups the clicks of a campaign in a quarter by banner.
func (s *session) aggregate(campaignID int64, quarter domain.Quarter) []*bannerAgg {
	byBanner := make(map[int64]*bannerAgg)
	var order []*bannerAgg
	for _, c := range s.clicks {
		if c.CampaignID != campaignID || c.Quarter != quarter {
			continue
		}
		agg, ok := byBanner[c.BannerID]
		if !ok {
			agg = &bannerAgg{BannerStat: domain.BannerStat{
				BannerID:   c.BannerID,
				CampaignID: campaignID,
				Quarter:    quarter,
			}}
			byBanner[c.BannerID] = agg
			order = append(order, agg)
		}
		agg.Clicks++
		if rev, converted := s.revenue[c.ID]; converted {
			agg.converted = true
			agg.Revenue += rev
		}
	}
	return order
}

func (s *session) ConvertingBanners(_ context.Context, campaignID int64, quarter domain.Quarter) (int, error) {
	if s.closed {
		return 0, port.ErrSessionClosed
	}
	x := 0
	for _, agg := range s.aggregate(campaignID, quarter) {
		if agg.converted {
			x++
		}
	}
	return x, nil
}

func (s *session) TopByRevenue(_ context.Context, q port.RankQuery) ([]domain.BannerStat, error) {
	if s.closed {
		return nil, port.ErrSessionClosed
	}
	return rank(s.aggregate(q.CampaignID, q.Quarter), q, func(a *bannerAgg) bool { return a.converted },
		func(a, b *bannerAgg) int {
			return cmp.Or(cmp.Compare(b.Revenue, a.Revenue), cmp.Compare(a.BannerID, b.BannerID))
		}), nil
}

func (s *session) TopByClicks(_ context.Context, q port.RankQuery) ([]domain.BannerStat, error) {
	if s.closed {
		return nil, port.ErrSessionClosed
	}
	rows := rank(s.aggregate(q.CampaignID, q.Quarter), q, func(*bannerAgg) bool { return true },
		func(a, b *bannerAgg) int {
			return cmp.Or(cmp.Compare(b.Clicks, a.Clicks), cmp.Compare(a.BannerID, b.BannerID))
		})
	for i := range rows {
		rows[i].Revenue = 0
	}
	return rows, nil
}

// Random draws banners of the campaign from any quarter. A campaign without
// clicks in q.Quarter yields nothing.
func (s *session) Random(_ context.Context, q port.RankQuery) ([]domain.BannerStat, error) {
	if s.closed {
		return nil, port.ErrSessionClosed
	}
	if q.Limit <= 0 {
		return []domain.BannerStat{}, nil
	}

	if !slices.ContainsFunc(s.clicks, func(c domain.Click) bool {
		return c.CampaignID == q.CampaignID && c.Quarter == q.Quarter
	}) {
		return []domain.BannerStat{}, nil
	}

	clicks := make(map[int64]int64)
	var ids []int64
	for _, c := range s.clicks {
		if c.CampaignID != q.CampaignID || q.Exclude.Has(c.BannerID) {
			continue
		}
		n, known := clicks[c.BannerID]
		if !known {
			ids = append(ids, c.BannerID)
		}
		if c.Quarter == q.Quarter {
			n++
		}
		clicks[c.BannerID] = n
	}
	s.shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	rows := make([]domain.BannerStat, 0, min(q.Limit, len(ids)))
	for _, id := range ids[:min(q.Limit, len(ids))] {
		rows = append(rows, domain.BannerStat{
			BannerID:   id,
			Clicks:     clicks[id],
			CampaignID: q.CampaignID,
			Quarter:    q.Quarter,
		})
	}
	return rows, nil
}

func (s *session) AllBanners(_ context.Context) ([]domain.BannerStat, error) {
	if s.closed {
		return nil, port.ErrSessionClosed
	}

	type key struct {
		banner, campaign int64
		quarter          domain.Quarter
	}
	counts := make(map[key]int64)
	for _, c := range s.clicks {
		counts[key{c.BannerID, c.CampaignID, c.Quarter}]++
	}

	rows := make([]domain.BannerStat, 0, len(counts))
	for k, n := range counts {
		rows = append(rows, domain.BannerStat{
			BannerID:   k.banner,
			Clicks:     n,
			CampaignID: k.campaign,
			Quarter:    k.quarter,
		})
	}
	slices.SortFunc(rows, func(a, b domain.BannerStat) int {
		return cmp.Or(
			cmp.Compare(a.CampaignID, b.CampaignID),
			cmp.Compare(a.Quarter, b.Quarter),
			cmp.Compare(a.BannerID, b.BannerID),
		)
	})
	return rows, nil
}

func (s *session) Close(_ context.Context) error {
	s.closed = true
	return nil
}

// rank filters, orders and limits aggregates.
func rank(aggs []*bannerAgg, q port.RankQuery, keep func(*bannerAgg) bool, order func(a, b *bannerAgg) int) []domain.BannerStat {
	candidates := make([]*bannerAgg, 0, len(aggs))
	for _, agg := range aggs {
		if keep(agg) && !q.Exclude.Has(agg.BannerID) {
			candidates = append(candidates, agg)
		}
	}
	slices.SortFunc(candidates, order)

	n := max(0, min(q.Limit, len(candidates)))
	rows := make([]domain.BannerStat, 0, n)
	for _, agg := range candidates[:n] {
		rows = append(rows, agg.BannerStat)
	}
	return rows
}
