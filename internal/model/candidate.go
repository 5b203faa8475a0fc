package model

// Candidate is a recruitable fighter. Two candidates are the same fighter
// when their IDs match; the ID is assigned once when the seed list is built.
type Candidate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Strength int    `json:"strength"`
	Agility  int    `json:"agility"`
	ImageRef string `json:"image_ref"`
}

// IndexOf returns the position of the first candidate with the given ID, or -1.
func IndexOf(list []Candidate, id string) int {
	for i, c := range list {
		if c.ID == id {
			return i
		}
	}
	return -1
}
