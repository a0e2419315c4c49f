package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type School struct {
	bun.BaseModel `bun:"table:schools,alias:sc" json:"-"`

	ID             uuid.UUID  `bun:"id,pk,type:uuid" json:"id"`
	Name           string     `bun:"name,notnull" json:"name"`
	Address        string     `bun:"address" json:"address"`
	LogoPath       string     `bun:"logo_path" json:"logo_path"`
	SubscriptionID *uuid.UUID `bun:"subscription_id,type:uuid" json:"subscription_id,omitempty"`
	ProvinceID     *string    `bun:"province_id" json:"province_id,omitempty"`
	CityID         *string    `bun:"city_id" json:"city_id,omitempty"`
	CreatedAt      time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt      time.Time  `bun:"updated_at,notnull" json:"updated_at"`
	DeletedAt      *time.Time `bun:"deleted_at,soft_delete" json:"deleted_at,omitempty"`
}

func (s School) Alias() string {
	return "sc"
}
