package seed

import (
	"fmt"

	"ZombieFighters/internal/model"

	"github.com/google/uuid"
)

// InitialBudget is the money a fresh session starts with.
const InitialBudget = 100

// namespace scopes the v5 UUIDs handed to seed candidates.
var namespace = uuid.MustParse("6f1c2a8e-3d4b-5c6d-8e9f-0a1b2c3d4e5f")

type entry struct {
	name     string
	price    int
	strength int
	agility  int
	image    string
}

var entries = []entry{
	{"Survivor", 12, 6, 4, "https://via.placeholder.com/150/92c952"},
	{"Scavenger", 10, 5, 5, "https://via.placeholder.com/150/771796"},
	{"Shadow", 18, 7, 8, "https://via.placeholder.com/150/24f355"},
	{"Tracker", 14, 7, 6, "https://via.placeholder.com/150/d32776"},
	{"Sharpshooter", 20, 6, 8, "https://via.placeholder.com/150/1ee8a4"},
	{"Medic", 15, 5, 7, "https://via.placeholder.com/150/66b7d2"},
	{"Engineer", 16, 6, 5, "https://via.placeholder.com/150/56acb2"},
	{"Brawler", 11, 8, 3, "https://via.placeholder.com/150/8985dc"},
	{"Infiltrator", 17, 5, 9, "https://via.placeholder.com/150/392537"},
	{"Leader", 22, 7, 6, "https://via.placeholder.com/150/602b9e"},
}

// Candidates returns a fresh copy of the seed list. IDs are derived from the
// seed position and name, so they are unique within the list and identical
// across sessions.
func Candidates() []model.Candidate {
	out := make([]model.Candidate, len(entries))
	for i, e := range entries {
		out[i] = model.Candidate{
			ID:       NewID(i, e.name),
			Name:     e.name,
			Price:    e.price,
			Strength: e.strength,
			Agility:  e.agility,
			ImageRef: e.image,
		}
	}
	return out
}

// NewID derives the stable identifier for the seed entry at position i.
func NewID(i int, name string) string {
	return uuid.NewSHA1(namespace, []byte(fmt.Sprintf("%d:%s", i, name))).String()
}
