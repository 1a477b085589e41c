package app

import (
	"context"
	"fmt"

	"github.com/ncarv/balcao/internal/config"
	"github.com/ncarv/balcao/internal/empresas"
	"github.com/ncarv/balcao/internal/prefs"
	"github.com/ncarv/balcao/internal/search"
	"github.com/ncarv/balcao/internal/ui"
)

// Options configure the balcão application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/balcao/prefs.toml
	APIBase    string // overrides the config file when set
	PageSize   int    // overrides config and prefs when set
}

// Run boots the balcão TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	apiBase := cfg.APIBase
	if opts.APIBase != "" {
		apiBase = opts.APIBase
	}
	client, err := empresas.NewClient(apiBase)
	if err != nil {
		return fmt.Errorf("init registry client: %w", err)
	}

	// Precedence for the page size: flag, then prefs, then config file.
	pageSize := cfg.PageSize
	if userPrefs.PageSize > 0 {
		pageSize = userPrefs.PageSize
	}
	if opts.PageSize > 0 {
		pageSize = opts.PageSize
	}
	controller := search.New(pageSize)

	uiOpts := ui.Options{
		Context:    ctx,
		Client:     client,
		Controller: controller,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
