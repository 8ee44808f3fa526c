package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/userdir/internal/cache"
	"github.com/rshade/userdir/internal/config"
	"github.com/rshade/userdir/internal/directory"
	"github.com/rshade/userdir/internal/pagination"
	"github.com/rshade/userdir/internal/tui"
)

// Output formats.
const (
	formatTable  = "table"
	formatJSON   = "json"
	formatNDJSON = "ndjson"
)

// listOptions holds the list flags. The root command and "list" share one
// instance so both accept the same flags.
type listOptions struct {
	search   string
	sort     string
	page     int
	pageSize int
	output   string
	plain    bool
	endpoint string
}

func newListCmd(opts *listOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Search, sort and page through users",
		Long: `Fetches the users list once and shows one page of it.

In a terminal the list is interactive. With --plain, --output json|ndjson,
or when stdout is not a terminal, the requested page is printed instead.`,
		Example: `  # Interactive browser
  userdir list

  # Third page of ten users, sorted by name descending
  userdir list --page-size 10 --page 3 --sort name:desc --plain

  # Users matching "john" as NDJSON
  userdir list --search john --output ndjson`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, opts)
		},
	}
	addListFlags(cmd, opts)
	return cmd
}

func addListFlags(cmd *cobra.Command, o *listOptions) {
	fs := cmd.Flags()
	fs.StringVar(&o.search, "search", "", "only users whose name or email contains this text (case-insensitive)")
	fs.StringVar(&o.sort, "sort", "", "sort by field[:asc|desc], fields: "+strings.Join(pagination.SortableFields(), ", "))
	fs.IntVar(&o.page, "page", pagination.DefaultPage, "page number, 1-based")
	fs.IntVar(&o.pageSize, "page-size", 0, "users per page: 5, 10 or 15 (default from config)")
	fs.StringVarP(&o.output, "output", "o", "", "output format: table, json or ndjson (default from config)")
	fs.BoolVar(&o.plain, "plain", false, "print the page instead of starting the interactive browser")
	fs.StringVar(&o.endpoint, "endpoint", "", "users endpoint URL (default from config)")
}

// format returns the output format, falling back to the configured default.
func (o *listOptions) format() string {
	if o.output != "" {
		return strings.ToLower(o.output)
	}
	return config.GetDefaultOutputFormat()
}

// runsInteractive reports whether cmd will start the Bubble Tea program.
func (o *listOptions) runsInteractive(cmd *cobra.Command) bool {
	if cmd != cmd.Root() && cmd.Name() != "list" {
		return false
	}
	return o.format() == formatTable && tui.DetectOutputMode(false, false, o.plain) == tui.OutputModeInteractive
}

// params builds the pipeline parameters from flags and config.
func (o *listOptions) params(cmd *cobra.Command) (pagination.Params, error) {
	p := pagination.NewParams()
	p.Query = o.search
	p.Page = o.page
	p.PageSize = config.GetGlobalConfig().View.PageSize
	if cmd.Flags().Changed("page-size") {
		p.PageSize = o.pageSize
	}

	sortState, err := pagination.ParseSort(o.sort)
	if err != nil {
		return p, err
	}
	p.Sort = sortState

	if validateErr := p.Validate(); validateErr != nil {
		return p, validateErr
	}
	return p, nil
}

func isValidOutputFormat(format string) bool {
	switch format {
	case formatTable, formatJSON, formatNDJSON:
		return true
	default:
		return false
	}
}

// newUsersQuery wires the HTTP client and the query cache from config.
func (o *listOptions) newUsersQuery() (*directory.Query, error) {
	cfg := config.GetGlobalConfig()

	endpoint := cfg.Source.Endpoint
	if o.endpoint != "" {
		endpoint = o.endpoint
	}
	client := directory.NewClient(endpoint, directory.WithTimeout(cfg.Source.Timeout))

	store, err := cache.NewMemoryStore(cfg.Cache.Enabled, cfg.Cache.StaleTime.Duration())
	if err != nil {
		return nil, fmt.Errorf("creating query cache: %w", err)
	}
	return directory.NewQuery(directory.UsersQueryKey, client, store), nil
}

func runList(cmd *cobra.Command, o *listOptions) error {
	format := o.format()
	if !isValidOutputFormat(format) {
		return fmt.Errorf("unsupported output format: %s", format)
	}

	params, err := o.params(cmd)
	if err != nil {
		return err
	}

	query, err := o.newUsersQuery()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if format == formatJSON || format == formatNDJSON {
		return printUsers(ctx, cmd, query, params, format)
	}

	switch tui.DetectOutputMode(false, false, o.plain) {
	case tui.OutputModeInteractive:
		return runInteractiveTUI(ctx, query, params)
	case tui.OutputModeStyled:
		return printUsers(ctx, cmd, query, params, formatStyled)
	case tui.OutputModePlain:
		return printUsers(ctx, cmd, query, params, formatTable)
	default:
		return printUsers(ctx, cmd, query, params, formatTable)
	}
}

// printUsers fetches once and prints the requested page. A failed fetch is
// returned as an error so the process exits non-zero.
func printUsers(
	ctx context.Context,
	cmd *cobra.Command,
	query *directory.Query,
	params pagination.Params,
	format string,
) error {
	users, err := query.Fetch(ctx)
	if err != nil {
		logger.Error().Ctx(ctx).Err(err).Msg("loading users failed")
		return fmt.Errorf("loading users: %w", err)
	}

	result := pagination.Apply(users, params)
	logger.Debug().Ctx(ctx).
		Int("total_items", result.TotalItems).
		Int("page", result.Page).
		Int("total_pages", result.TotalPages).
		Msg("page computed")

	return renderUsers(cmd.OutOrStdout(), format, result)
}

func runInteractiveTUI(ctx context.Context, query *directory.Query, params pagination.Params) error {
	model := tui.NewUsersModel(ctx, query, tui.UsersOptions{
		Params:     params,
		Breakpoint: config.GetGlobalConfig().View.Breakpoint,
		Width:      tui.TerminalWidth(),
	})
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}
