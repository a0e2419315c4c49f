package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Subscription struct {
	bun.BaseModel `bun:"table:subscriptions,alias:sub" json:"-"`

	ID                 uuid.UUID  `bun:"id,pk,type:uuid" json:"id"`
	Name               string     `bun:"name,notnull" json:"name"`
	Price              int        `bun:"price,notnull" json:"price"`
	SubscriptionTypeID uuid.UUID  `bun:"subscription_type_id,type:uuid" json:"subscription_type_id"`
	CreatedAt          time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt          time.Time  `bun:"updated_at,notnull" json:"updated_at"`
	DeletedAt          *time.Time `bun:"deleted_at,soft_delete" json:"deleted_at,omitempty"`
}

func (s Subscription) Alias() string {
	return "sub"
}
