package models

// Zone is one row of the TLC taxi zone lookup table. Borough and
// ServiceZone are carried for completeness; the core views only join
// on LocationID and display Name.
type Zone struct {
	LocationID  int    `json:"location_id"`
	Borough     string `json:"borough,omitempty"`
	Name        string `json:"zone"`
	ServiceZone string `json:"service_zone,omitempty"`
}
