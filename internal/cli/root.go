// Package cli is the checklist command line: the terminal UI by default,
// one subcommand per mutation, and the HTTP front end.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/checklist/internal/config"
	"github.com/idilsaglam/checklist/internal/model"
	"github.com/idilsaglam/checklist/internal/session"
	"github.com/idilsaglam/checklist/internal/store"
	"github.com/idilsaglam/checklist/internal/store/urlfile"
	"github.com/idilsaglam/checklist/internal/ui"
)

// app is the state shared by every subcommand.
type app struct {
	version    string
	configPath string
	url        string
	statePath  string
	theme      string
	verbose    bool

	cfg *config.Config
	log *log.Logger

	// copy writes to the system clipboard; tests replace it.
	copy func(string) error
}

func newApp(version string) *app {
	return &app{version: version, copy: clipboard.WriteAll}
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "checklist",
		Short: "Checklists whose whole state lives in a URL query string",
		Long: `checklist keeps named checklists in a URL query string:
l<n>name, l<n>type (ul|ol), l<n>items and l<n>checks for every list n.

Without a subcommand it opens the terminal UI on the state file.
Use --url to work on a link instead; the updated link is printed.`,
		Args:              usageArgs(cobra.NoArgs),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.setup(cmd) },
		RunE:              a.runTUI,
	}
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &UsageError{Msg: err.Error(), Hint: "run `" + c.CommandPath() + " --help`"}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultFile, "config file")
	pf.StringVar(&a.url, "url", "", "operate on this URL and print the updated URL instead of using the state file")
	pf.StringVar(&a.statePath, "state", "", "state file (default from config)")
	pf.StringVar(&a.theme, "theme", "", "classic, neon or mono (default from config)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log no-op mutations and diagnostics to stderr")

	root.AddCommand(
		a.showCommand(),
		a.newCommand(),
		a.addCommand(),
		a.checkCommand(),
		a.typeCommand(),
		a.moveItemCommand(),
		a.moveListCommand(),
		a.urlCommand(),
		a.serveCommand(),
		a.configCommand(),
		a.versionCommand(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.theme != "" {
		cfg.Theme = config.Theme(a.theme)
	}
	if a.statePath != "" {
		cfg.StateFile = a.statePath
	}
	if a.verbose {
		cfg.Log.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return &UsageError{Msg: err.Error()}
	}
	a.cfg = cfg

	ui.SetTheme(string(cfg.Theme))
	if cfg.Color.Force || cfg.Color.Disable {
		ui.SetColorForcing(cfg.Color.Force, cfg.Color.Disable)
	}

	out := io.Discard
	if cfg.Log.Verbose {
		out = cmd.ErrOrStderr()
	}
	a.log = log.New(out, "checklist: ", log.LstdFlags|log.Lshortfile)
	return nil
}

// location is the URL given with --url or the state file.
func (a *app) location() (store.Location, error) {
	if a.url != "" {
		return store.NewMemoryLocation(a.url), nil
	}
	return urlfile.New(a.cfg.StateFile)
}

func (a *app) open() (*session.Session, error) {
	loc, err := a.location()
	if err != nil {
		return nil, err
	}
	s, err := session.Open(loc, a.log)
	if err != nil {
		return nil, err
	}
	a.log.Printf("opened %d list(s)", s.Store.Len())
	return s, nil
}

// shareURL is the link for query: the --url link with its query replaced,
// or the configured base URL.
func (a *app) shareURL(query string) string {
	if a.url == "" {
		return a.cfg.ShareURL(query)
	}
	base := a.url
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	if query == "" {
		return base
	}
	return base + "?" + query
}

// saved reports a successful mutation. With --url the new link is the
// result and goes to stdout.
func (a *app) saved(cmd *cobra.Command, s *session.Session, msg string, changed bool) {
	if !changed {
		ui.OK("nothing to change")
	} else {
		ui.OK(msg)
	}
	if a.url != "" {
		fmt.Fprintln(cmd.OutOrStdout(), a.shareURL(s.Query()))
	}
}

func newStderrLogger(cmd *cobra.Command) *log.Logger {
	return log.New(cmd.ErrOrStderr(), "checklist: ", log.LstdFlags)
}

func usageArgs(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := v(cmd, args); err != nil {
			return &UsageError{Msg: err.Error(), Hint: "run `" + cmd.CommandPath() + " --help`"}
		}
		return nil
	}
}

// parseList accepts "3" or "l3".
func parseList(s *session.Session, arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(arg), "l"))
	if err != nil {
		return 0, usagef("not a list number: %s", arg)
	}
	if _, ok := s.Store.List(n); !ok {
		return 0, &UsageError{Msg: "no list " + model.ListID(n), Hint: "run `checklist show` to see the lists"}
	}
	return n, nil
}

// parsePosition accepts a 1-based item position of list n.
func parsePosition(s *session.Session, n int, arg string) (int, error) {
	p, err := strconv.Atoi(arg)
	if err != nil {
		return 0, usagef("not a position: %s", arg)
	}
	l, _ := s.Store.List(n)
	if p < 1 || p > len(l.Items) {
		return 0, &UsageError{
			Msg:  fmt.Sprintf("position out of range: %s has %d item(s), got %d", model.ListID(n), len(l.Items), p),
			Hint: "run `checklist show` to see valid positions",
		}
	}
	return p, nil
}

func stdinIsTerminal() bool {
	fi, err := os.Stdin.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
