package ctxutil

import (
	"context"
	"os"
	"strings"
)

type AppMode string

const (
	AppModeLocal AppMode = "local"
	AppModeTest  AppMode = "test"
	AppModeDev   AppMode = "dev"
	AppModeProd  AppMode = "production"
)

func SetAppMode(ctx context.Context, appMode AppMode) context.Context {
	return context.WithValue(ctx, "app_mode", appMode)
}

func GetAppModeFromEnv() AppMode {
	env := strings.ToLower(os.Getenv("APP_ENV"))
	switch env {
	case string(AppModeTest):
		return AppModeTest
	case string(AppModeDev):
		return AppModeDev
	case string(AppModeProd):
		return AppModeProd
	default:
		return AppModeLocal
	}
}
