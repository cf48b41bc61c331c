package repository

import (
	"time"

	"github.com/orrynara/timebank/internal/model"
)

// SeedCatalog builds the demo inventory: four Korean regions, one
// flagship campsite per region and two units each, plus the two
// membership products.  Prices are one-night rates in won.
func SeedCatalog() *Catalog {
	regions := []model.Region{
		{ID: "R001", Name: "경기 양평", Description: "서울 근교, 숲속의 힐링 요새"},
		{ID: "R002", Name: "강원 춘천", Description: "호반의 도시, 물안개와 함께하는 아침"},
		{ID: "R003", Name: "제주 애월", Description: "에메랄드빛 바다와 현무암의 조화"},
		{ID: "R004", Name: "충남 태안", Description: "서해 낙조와 갯벌 체험이 있는 곳"},
	}
	campsites := []model.Campsite{
		{
			ID: "C001", RegionID: "R001", Name: "양평 1호점 (Z5 우주선)",
			Description: "경기 양평군 서종면 깊은 숲속, 자연과 기술의 조화",
			Units: []model.Unit{
				{ID: "U101", CampsiteID: "C001", Name: "Forest Sanctuary Z5", Price: 280000, MaxGuests: 4, Rating: 4.7, Tags: []string{"Forest", "Vintage", "BBQ"}},
				{ID: "U102", CampsiteID: "C001", Name: "Moonlight Valley Airstream", Price: 350000, MaxGuests: 2, Rating: 4.9, Tags: []string{"Luxury", "Stargazing", "Couple"}},
			},
		},
		{
			ID: "C002", RegionID: "R002", Name: "춘천 레이크뷰 (하우스형)",
			Description: "강원 춘천시 남산면 북한강변, 물안개 피어오르는 호수",
			Units: []model.Unit{
				{ID: "U201", CampsiteID: "C002", Name: "Sunset Lake House", Price: 310000, MaxGuests: 6, Rating: 4.8, Tags: []string{"Lake", "Activity", "Family"}},
				{ID: "U202", CampsiteID: "C002", Name: "Cloud 9 High Motorhome", Price: 450000, MaxGuests: 4, Rating: 5.0, Tags: []string{"Mountain", "Luxury", "Silence"}},
			},
		},
		{
			ID: "C003", RegionID: "R003", Name: "제주 애월 스테이 (캡슐형)",
			Description: "제주 제주시 애월읍 해안도로, 바다 바로 앞",
			Units: []model.Unit{
				{ID: "U301", CampsiteID: "C003", Name: "Ocean Cliff Edge Capsule", Price: 420000, MaxGuests: 2, Rating: 4.8, Tags: []string{"Ocean View", "Healing", "Premium"}},
				{ID: "U302", CampsiteID: "C003", Name: "Aewol Mini Capsule", Price: 150000, MaxGuests: 2, Rating: 4.9, Tags: []string{"Minimal", "Olle Trail"}},
			},
		},
		{
			ID: "C004", RegionID: "R004", Name: "태안 오션 글램핑 (이동식)",
			Description: "충남 태안군 안면읍 꽃지해수욕장, 황금빛 석양",
			Units: []model.Unit{
				{ID: "U401", CampsiteID: "C004", Name: "Nomad's Desert Glamping", Price: 380000, MaxGuests: 4, Rating: 4.9, Tags: []string{"Exotic", "Photo", "Glamping"}},
				{ID: "U402", CampsiteID: "C004", Name: "Sunset Mudflat Caravan", Price: 100000, MaxGuests: 4, Rating: 4.75, Tags: []string{"Sunset", "Mudflat", "Mobile"}},
			},
		},
	}
	memberships := []model.MembershipProduct{
		{ID: "M_ROYAL", Name: "리조트 로얄", PriceMonthly: 100000, Benefits: "연 60박 무료, 성수기 우선 예약"},
		{ID: "M_SMART", Name: "투지아 스마트", PriceMonthly: 20000, Benefits: "평일 유휴시간(4h) 무료, 주말 3만원 정액"},
	}
	return NewCatalog(regions, campsites, memberships)
}

// SeedDemoUsers registers the demo accounts the sample pages assume.
func (s *Store) SeedDemoUsers() error {
	if _, err := s.RegisterUser("demo_user", "김하나", "hana@timebank.example"); err != nil {
		return err
	}
	if _, err := s.RegisterUser("demo_member", "박로얄", "royal@timebank.example"); err != nil {
		return err
	}
	_, err := s.JoinMembership("demo_member")
	return err
}

// SeedDemoBookings appends two demo bookings so the listing pages are
// not empty on first launch.  SeedDemoUsers must run first.
func (s *Store) SeedDemoBookings() error {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if _, err := s.CreateBooking(BookingRequest{
		UserID:   "demo_member",
		UnitID:   "U101",
		CheckIn:  today,
		CheckOut: today.AddDate(0, 0, 1),
		Guests:   2,
	}); err != nil {
		return err
	}
	_, err := s.CreateBooking(BookingRequest{
		UserID:   "demo_user",
		UnitID:   "U201",
		CheckIn:  today.AddDate(0, 0, 1),
		CheckOut: today.AddDate(0, 0, 2),
		Guests:   4,
	})
	return err
}
