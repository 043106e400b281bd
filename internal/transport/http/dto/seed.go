package dto

// SeedResponse reports how many documents each collection received.
// A collection that was already populated reports zero.
type SeedResponse struct {
	Projects int `json:"projects"`
	Services int `json:"services"`
	Blogs    int `json:"blogs"`
	Users    int `json:"users"`
}
