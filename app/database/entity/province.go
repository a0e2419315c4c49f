package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Province is keyed by the natural code assigned by the external
// geographic-data source.
type Province struct {
	bun.BaseModel `bun:"table:provinces,alias:p" json:"-"`

	Code      string     `bun:"code,pk" json:"code"`
	Name      string     `bun:"name,notnull" json:"name"`
	CreatedAt time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,notnull" json:"updated_at"`
	DeletedAt *time.Time `bun:"deleted_at,soft_delete" json:"deleted_at,omitempty"`
}

func (p Province) Alias() string {
	return "p"
}
