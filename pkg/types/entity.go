package types

import "time"

// BaseEntity carries the bookkeeping timestamps shared by stored records.
type BaseEntity struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
