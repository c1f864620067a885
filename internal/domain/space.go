package domain

import "time"

// SpaceType тип общего помещения кондоминиума
type SpaceType string

const (
	SpaceSocialHall  SpaceType = "social_hall"
	SpaceBBQArea     SpaceType = "bbq_area"
	SpaceSauna       SpaceType = "sauna"
	SpaceEventHouse  SpaceType = "event_house"
	SpaceGym         SpaceType = "gym"
	SpacePool        SpaceType = "pool"
	SpaceSportsCourt SpaceType = "sports_court"
	SpaceParking     SpaceType = "parking"
	SpaceOther       SpaceType = "other"
)

// CommonSpace represents a shared bookable amenity of a condominium.
// Владелец данных — каталог помещений; этот сервис их только читает.
type CommonSpace struct {
	ID      int64
	CondoID int64
	Name    string
	Type    SpaceType

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsValidSpaceType returns true if t is one of the known space types
func IsValidSpaceType(t SpaceType) bool {
	switch t {
	case SpaceSocialHall, SpaceBBQArea, SpaceSauna, SpaceEventHouse,
		SpaceGym, SpacePool, SpaceSportsCourt, SpaceParking, SpaceOther:
		return true
	default:
		return false
	}
}
