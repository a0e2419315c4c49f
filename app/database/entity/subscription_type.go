package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type SubscriptionType struct {
	bun.BaseModel `bun:"table:subscription_types,alias:st" json:"-"`

	ID        uuid.UUID  `bun:"id,pk,type:uuid" json:"id"`
	Name      string     `bun:"name,notnull,unique" json:"name"`
	CreatedAt time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time  `bun:"updated_at,notnull" json:"updated_at"`
	DeletedAt *time.Time `bun:"deleted_at,soft_delete" json:"deleted_at,omitempty"`
}

func (s SubscriptionType) Alias() string {
	return "st"
}
