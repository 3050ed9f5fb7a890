package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/smileynet/rolodex/internal/api"
	"github.com/smileynet/rolodex/internal/config"
	"github.com/smileynet/rolodex/internal/contact"
	"github.com/smileynet/rolodex/internal/logging"
	"github.com/smileynet/rolodex/internal/ui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for rolodex.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Browse  BrowseCmd        `cmd:"" default:"1" help:"Browse contacts interactively."`
	List    ListCmd          `cmd:"" help:"Print the contact list as plain text."`
}

// BrowseCmd opens the interactive contact manager TUI.
type BrowseCmd struct {
	BaseURL string `help:"Contact API base URL." default:""`
	Timeout int    `help:"Request timeout in seconds." default:"0"`
	Limit   int    `help:"Contacts taken from the API at startup." default:"0"`
	NoTUI   bool   `help:"Force plain text output even if stdout is a TTY." default:"false"`
}

// Run builds real dependencies and launches the TUI, falling back to the
// plain list when stdout is not a terminal.
func (b *BrowseCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	b.applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	log, err := logging.New(cfg.Log.Dir)
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	defer log.Sync()

	client := api.New(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(log),
	)

	if b.NoTUI || !stdoutIsTerminal() {
		return plainList(os.Stdout, client, cfg.UI.Limit)
	}

	m := ui.NewModel(client, cfg.UI.Limit, log)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		log.Error("tui exited", zap.Error(err))
		return fmt.Errorf("browse: %w", err)
	}
	return nil
}

// applyFlags overlays non-zero flag values on top of the layered config.
func (b *BrowseCmd) applyFlags(cfg *config.Config) {
	if b.BaseURL != "" {
		cfg.API.BaseURL = b.BaseURL
	}
	if b.Timeout > 0 {
		cfg.API.Timeout = time.Duration(b.Timeout) * time.Second
	}
	if b.Limit > 0 {
		cfg.UI.Limit = b.Limit
	}
}

// ListCmd prints the contact list without entering the TUI.
type ListCmd struct {
	BaseURL string `help:"Contact API base URL." default:""`
	Timeout int    `help:"Request timeout in seconds." default:"0"`
	Limit   int    `help:"Contacts taken from the API." default:"0"`
}

// Run fetches the contacts and prints them as a tab-aligned table.
func (l *ListCmd) Run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("list: %w", err)
	}
	if l.BaseURL != "" {
		cfg.API.BaseURL = l.BaseURL
	}
	if l.Timeout > 0 {
		cfg.API.Timeout = time.Duration(l.Timeout) * time.Second
	}
	if l.Limit > 0 {
		cfg.UI.Limit = l.Limit
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("list: %w", err)
	}

	client := api.New(cfg.API.BaseURL, api.WithTimeout(cfg.API.Timeout))
	return plainList(os.Stdout, client, cfg.UI.Limit)
}

// contactLister abstracts the List call for testing.
type contactLister interface {
	List(ctx context.Context) ([]contact.Contact, error)
}

// plainList writes the first limit contacts as a tab-aligned table.
func plainList(w io.Writer, svc contactLister, limit int) error {
	contacts, err := svc.List(context.Background())
	if err != nil {
		return fmt.Errorf("fetching contacts: %w", err)
	}
	if limit > 0 && len(contacts) > limit {
		contacts = contacts[:limit]
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tPHONE\tCOMPANY")
	for _, c := range contacts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.Phone, c.Company)
	}
	return tw.Flush()
}

// loadConfig loads layered config from user and project paths with env overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadLayered(
		os.ExpandEnv("$HOME/.config/rolodex/config.yaml"),
		".rolodex/config.yaml",
	)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Vars{"version": version + " " + commit + " " + date})
	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
