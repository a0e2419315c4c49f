package runtime

import (
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"backend/school-platform/app/internal/config"
	"backend/school-platform/app/pkg/db"
	"backend/school-platform/app/pkg/storage"
	"backend/school-platform/app/pkg/wilayah"
)

// Resource carries the process-wide dependencies that every layer is
// constructed from. It is assembled once in main and passed by value.
type Resource struct {
	Config     config.ApplicationConfig
	Logger     *zap.Logger
	DB         *db.DB
	HttpClient *resty.Client
	Storage    storage.Uploader
	Wilayah    wilayah.Client
}
