package models

// SubGroup is a named, reusable subset of subscription ids. SubIDs may
// reference subscriptions that no longer exist; consumers treat dangling
// ids as absent.
type SubGroup struct {
	Base
	Name   string   `gorm:"not null" json:"name"`
	SubIDs []string `gorm:"column:sub_ids;serializer:json" json:"sub_ids"`
}

// Contains reports whether the group includes the given subscription id.
func (g *SubGroup) Contains(subID string) bool {
	for _, id := range g.SubIDs {
		if id == subID {
			return true
		}
	}
	return false
}
