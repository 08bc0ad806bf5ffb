package models

type WorkerMode string

const (
	WorkerModeDisabled  WorkerMode = "disabled"
	WorkerModeAll       WorkerMode = "all"
	WorkerModeSingleton WorkerMode = "singleton"
)

type WorkerConfig struct {
	ReportRefresh WorkerMode
	ViewRefresh   WorkerMode
	Notifications WorkerMode
}

func (w WorkerConfig) AnyEnabled() bool {
	return w.ReportRefresh != WorkerModeDisabled ||
		w.ViewRefresh != WorkerModeDisabled ||
		w.Notifications != WorkerModeDisabled
}

// Profile selects which parts of the service a deployment runs.
type Profile struct {
	Name       string
	HTTPServer bool
	Workers    WorkerConfig
}
