package entity

import (
	"time"

	"github.com/uptrace/bun"
)

type City struct {
	bun.BaseModel `bun:"table:cities,alias:c" json:"-"`

	Code       string     `bun:"code,pk" json:"code"`
	Name       string     `bun:"name,notnull" json:"name"`
	ProvinceID string     `bun:"province_id,notnull" json:"province_id"`
	CreatedAt  time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt  time.Time  `bun:"updated_at,notnull" json:"updated_at"`
	DeletedAt  *time.Time `bun:"deleted_at,soft_delete" json:"deleted_at,omitempty"`
}

func (c City) Alias() string {
	return "c"
}
