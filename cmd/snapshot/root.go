package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/a-h/templ"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"tripdeck/internal/config"
	"tripdeck/internal/db"
	"tripdeck/internal/db/mock"
	applog "tripdeck/internal/log"
	"tripdeck/internal/views/layout"
	"tripdeck/internal/views/pages"
	"tripdeck/internal/views/theme"
)

type snapshotFlags struct {
	theme       string
	out         string
	query       string
	partial     bool
	databaseURL string
	logLevel    string
}

// openCatalogue uses the fixture catalogue unless a database URL is given.
var openCatalogue = func(ctx context.Context, url string) (*gorm.DB, error) {
	if strings.TrimSpace(url) == "" {
		return mock.New(ctx)
	}
	return db.Initialize(config.DatabaseConfig{URL: url, MaxIdleConns: 1, MaxOpenConns: 2})
}

func newRootCmd() *cobra.Command {
	flags := &snapshotFlags{}

	cmd := &cobra.Command{
		Use:           "snapshot",
		Short:         "Render the tripdeck component gallery to static HTML",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			applog.ReplaceLogger(applog.New(cmd.ErrOrStderr()))
			return applog.SetLevel(flags.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.theme, "theme", "t", "", "Theme to render (defaults to adventure)")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Write to this file instead of stdout")
	cmd.Flags().StringVarP(&flags.query, "query", "q", "", "Only show destinations matching this search")
	cmd.Flags().BoolVar(&flags.partial, "partial", false, "Render the gallery body without the document shell")
	cmd.Flags().StringVar(&flags.databaseURL, "database-url", os.Getenv("DATABASE_URL"), "Postgres catalogue to read instead of the fixtures")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level: "+strings.Join(applog.Levels, ", "))

	cmd.AddCommand(newThemesCmd())

	return cmd
}

func runSnapshot(ctx context.Context, stdout io.Writer, flags *snapshotFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	themeKey := theme.Key(strings.ToLower(strings.TrimSpace(flags.theme)))
	if themeKey != "" && !theme.Known(themeKey) {
		return fmt.Errorf("unknown theme %q: want one of %s", flags.theme, joinKeys(theme.Keys()))
	}

	database, err := openCatalogue(ctx, flags.databaseURL)
	if err != nil {
		return fmt.Errorf("open catalogue: %w", err)
	}
	destinations, err := db.ListDestinations(ctx, database)
	if err != nil {
		return err
	}

	snapshot := pages.NewGallerySnapshot(destinations, themeKey)
	snapshot.Filters = pages.GalleryFilters{Query: strings.TrimSpace(flags.query)}

	var component templ.Component
	if flags.partial {
		component = pages.GalleryPartial(snapshot)
	} else {
		component = pages.GalleryPage(snapshot)
	}

	w := stdout
	if flags.out != "" && flags.out != "-" {
		f, err := os.Create(flags.out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := component.Render(ctx, w); err != nil {
		return fmt.Errorf("render gallery: %w", err)
	}
	applog.Info(ctx, "snapshot rendered",
		"theme", snapshot.Theme,
		"destinations", len(snapshot.Visible()),
		"partial", flags.partial,
		"out", flags.out,
	)
	return nil
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, def := range layout.ThemeOptions() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-10s %s\n", def.Key, def.Label, def.Description)
			}
			return nil
		},
	}
}

func joinKeys(keys []theme.Key) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}
