package app

import (
	"github.com/nfrund/formdocs/internal/config"
	"github.com/nfrund/formdocs/internal/module"
	"github.com/nfrund/formdocs/internal/modules/builder"
	"github.com/nfrund/formdocs/internal/modules/livereload"
	"github.com/nfrund/formdocs/internal/modules/reference"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(cfg config.Provider) []module.Module {
	modules := []module.Module{
		// Add new site modules here.
		reference.New(),
		builder.New(),
	}
	if cfg.GetHotReload() {
		modules = append(modules, livereload.New())
	}
	return modules
}
