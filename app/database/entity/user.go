package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"backend/school-platform/app/database/constant/user"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u" json:"-"`

	ID          uuid.UUID   `bun:"id,pk,type:uuid" json:"id"`
	Name        string      `bun:"name,notnull" json:"name"`
	Email       string      `bun:"email,notnull,unique" json:"email"`
	PhoneNumber string      `bun:"phone_number,notnull,unique" json:"phone_number"`
	Password    string      `bun:"password,notnull" json:"-"`
	Title       string      `bun:"title" json:"title"`
	Status      user.Status `bun:"status,notnull,default:'PENDING'" json:"status"`
	RoleID      uuid.UUID   `bun:"role_id,type:uuid" json:"role_id"`
	SchoolID    uuid.UUID   `bun:"school_id,type:uuid" json:"school_id"`
	CreatedAt   time.Time   `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time   `bun:"updated_at,notnull" json:"updated_at"`
	DeletedAt   *time.Time  `bun:"deleted_at,soft_delete" json:"deleted_at,omitempty"`
}

func (u User) Alias() string {
	return "u"
}
