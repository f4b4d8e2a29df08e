package storage

// Settings holds the global defaults applied to freshly generated days.
type Settings struct {
	ID         int64   `json:"id"`
	HourlyRate float64 `json:"hourly_rate"`
}
