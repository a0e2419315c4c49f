package response

import "backend/school-platform/app/database/entity"

// RegisterResponse returns the created account and the school shell that
// was opened for it.
type RegisterResponse struct {
	User   entity.User   `json:"user"`
	School entity.School `json:"school"`
}
