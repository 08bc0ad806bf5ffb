package configuration

import (
	"admin/internal/models"

	"go.uber.org/zap"
)

const (
	ProfileDefault = "default"
	ProfileAPI     = "api"
	ProfileWorker  = "worker"
)

// Profiles defines all available deployment profiles. The api profile serves
// requests from cached snapshots written by a separate worker deployment.
var Profiles = map[string]models.Profile{
	ProfileDefault: {
		Name:       ProfileDefault,
		HTTPServer: true,
		Workers: models.WorkerConfig{
			ReportRefresh: models.WorkerModeSingleton,
			ViewRefresh:   models.WorkerModeSingleton,
			Notifications: models.WorkerModeAll,
		},
	},
	ProfileAPI: {
		Name:       ProfileAPI,
		HTTPServer: true,
		Workers: models.WorkerConfig{
			ReportRefresh: models.WorkerModeDisabled,
			ViewRefresh:   models.WorkerModeDisabled,
			Notifications: models.WorkerModeDisabled,
		},
	},
	ProfileWorker: {
		Name:       ProfileWorker,
		HTTPServer: false,
		Workers: models.WorkerConfig{
			ReportRefresh: models.WorkerModeSingleton,
			ViewRefresh:   models.WorkerModeSingleton,
			Notifications: models.WorkerModeAll,
		},
	},
}

// GetProfile returns the profile by name. Returns the default profile if name
// is empty.
func GetProfile(name string) models.Profile {
	if name == "" {
		name = ProfileDefault
	}

	profile, ok := Profiles[name]
	if !ok {
		zap.L().Fatal("Unknown profile",
			zap.String("profile", name),
			zap.Strings("available_profiles", []string{ProfileDefault, ProfileAPI, ProfileWorker}))
	}

	zap.L().Info("Loaded profile", zap.String("profile", profile.Name))

	return profile
}
