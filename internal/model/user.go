package model

import "time"

// User is a member of the household directory. The PIN is never serialized;
// it only lives in the store and is cleared before a User leaves the
// authenticate path.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	PIN       string    `json:"-"`
	Color     string    `json:"color"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// FamilyMember is the public view of a User: PIN and active flag stripped.
type FamilyMember struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// FamilyMember returns the public view of u.
func (u User) FamilyMember() FamilyMember {
	return FamilyMember{ID: u.ID, Name: u.Name, Icon: u.Icon, Color: u.Color}
}
