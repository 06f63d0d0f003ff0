package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/checklist/internal/model"
	"github.com/idilsaglam/checklist/internal/session"
	"github.com/idilsaglam/checklist/internal/tui"
	"github.com/idilsaglam/checklist/internal/ui"
	"github.com/idilsaglam/checklist/internal/web"
)

func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	s, err := a.open()
	if err != nil {
		return err
	}
	if !stdinIsTerminal() {
		a.show(s)
		return nil
	}
	if err := tui.Run(s, tui.Options{ShareURL: a.shareURL, Copy: a.clip}); err != nil {
		return fmt.Errorf("terminal UI: %w", err)
	}
	if a.url != "" {
		fmt.Fprintln(cmd.OutOrStdout(), a.shareURL(s.Query()))
	}
	return nil
}

func (a *app) clip(text string) error {
	if !a.cfg.Clipboard {
		return fmt.Errorf("clipboard is disabled in config")
	}
	return a.copy(text)
}

func (a *app) show(s *session.Session) {
	t := ui.Current()
	done, pending := 0, 0
	for _, l := range s.Store.Lists() {
		for _, it := range l.Items {
			if it.Checked {
				done++
			} else {
				pending++
			}
		}
	}
	lines := []string{
		fmt.Sprintf("%s  %s %d  %s %d  %s %d",
			ui.C(t.Title, "Checklist"),
			ui.C(t.Success, "✔"), done,
			ui.C(t.Pending, "•"), pending,
			ui.C(t.Accent, "Lists"), s.Store.Len(),
		),
		"",
	}
	lines = append(lines, ui.DocumentLines(s.Doc)...)
	lines = append(lines, "", ui.C(t.Muted, "Tip: add with `checklist add 1 \"Buy milk\"`"))
	ui.Panel(lines)
}

func (a *app) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Aliases: []string{"ls"},
		Short:   "Print every list",
		Args:    usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			a.show(s)
			return nil
		},
	}
}

func (a *app) newCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "new [name...]",
		Short: "Create a list (the name may be empty)",
		Long: `Create a list numbered one past the highest list in the URL.

Every invocation starts from the stored URL, so after the highest list was
emptied by a move its number is handed out again. The terminal UI keeps such
numbers taken until it exits.`,
		Example: `  checklist new Groceries
  checklist --url 'https://example.com/?l1name=Trip' new "Packing list"`,
		Args: usageArgs(cobra.ArbitraryArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			n, err := s.Engine.CreateList(strings.Join(args, " "))
			if err != nil {
				return err
			}
			a.saved(cmd, s, "created "+model.ListID(n), true)
			return nil
		},
	}
}

func (a *app) addCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "add <list> <value...>",
		Short:   "Append an unchecked item to a list",
		Example: `  checklist add 1 "milk, 2%"`,
		Args:    usageArgs(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			n, err := parseList(s, args[0])
			if err != nil {
				return err
			}
			changed, err := s.Engine.AddItem(n, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			a.saved(cmd, s, "added to "+model.ListID(n), changed)
			return nil
		},
	}
}

func (a *app) checkCommand() *cobra.Command {
	var off bool
	cmd := &cobra.Command{
		Use:   "check <list> <position>",
		Short: "Check (or with --off uncheck) an item",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			n, err := parseList(s, args[0])
			if err != nil {
				return err
			}
			p, err := parsePosition(s, n, args[1])
			if err != nil {
				return err
			}
			changed, err := s.Engine.ToggleCheck(n, p, !off)
			if err != nil {
				return err
			}
			verb := "checked "
			if off {
				verb = "unchecked "
			}
			a.saved(cmd, s, verb+model.ItemID(n, p), changed)
			return nil
		},
	}
	cmd.Flags().BoolVar(&off, "off", false, "uncheck instead")
	return cmd
}

func (a *app) typeCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "type <list> ul|ol",
		Short:     "Switch a list between unordered and ordered",
		Args:      usageArgs(cobra.ExactArgs(2)),
		ValidArgs: []string{"ul", "ol"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			n, err := parseList(s, args[0])
			if err != nil {
				return err
			}
			t := model.ListType(args[1])
			if !t.Valid() {
				return usagef("list type must be ul or ol, got %q", args[1])
			}
			changed, err := s.Engine.ChangeListType(n, t)
			if err != nil {
				return err
			}
			a.saved(cmd, s, model.ListID(n)+" is now "+string(t), changed)
			return nil
		},
	}
}

func (a *app) moveItemCommand() *cobra.Command {
	var before string
	cmd := &cobra.Command{
		Use:   "move-item <list> <position> <to-list>",
		Short: "Move an item, to the end of a list or before one of its items",
		Example: `  checklist move-item 1 3 1 --before 1   # third item of l1 becomes its first
  checklist move-item 2 1 5              # l2's first item goes to the end of l5`,
		Args: usageArgs(cobra.ExactArgs(3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			from, err := parseList(s, args[0])
			if err != nil {
				return err
			}
			pos, err := parsePosition(s, from, args[1])
			if err != nil {
				return err
			}
			to, err := parseList(s, args[2])
			if err != nil {
				return err
			}
			at := 0
			if before != "" {
				if at, err = parsePosition(s, to, before); err != nil {
					return err
				}
			}
			changed, err := s.Engine.MoveItem(from, pos, to, at)
			if err != nil {
				return err
			}
			a.saved(cmd, s, "moved "+model.ItemID(from, pos)+" to "+model.ListID(to), changed)
			return nil
		},
	}
	cmd.Flags().StringVar(&before, "before", "", "position in the destination list to insert before")
	return cmd
}

func (a *app) moveListCommand() *cobra.Command {
	var before string
	cmd := &cobra.Command{
		Use:   "move-list <list>",
		Short: "Move a list to the end, or before another list",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			n, err := parseList(s, args[0])
			if err != nil {
				return err
			}
			slot := s.Store.Len()
			if before != "" {
				b, err := parseList(s, before)
				if err != nil {
					return err
				}
				slot = s.Store.Index(b)
			}
			changed, err := s.Engine.MoveList(n, slot)
			if err != nil {
				return err
			}
			a.saved(cmd, s, "moved "+model.ListID(n), changed)
			return nil
		},
	}
	cmd.Flags().StringVar(&before, "before", "", "list to move in front of")
	return cmd
}

func (a *app) urlCommand() *cobra.Command {
	var copyURL bool
	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the shareable URL of the current state",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open()
			if err != nil {
				return err
			}
			u := a.shareURL(s.Query())
			fmt.Fprintln(cmd.OutOrStdout(), u)
			if copyURL {
				if err := a.clip(u); err != nil {
					return fmt.Errorf("copy: %w", err)
				}
				ui.OK("copied to clipboard")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&copyURL, "copy", "c", false, "also copy it to the clipboard")
	return cmd
}

func (a *app) serveCommand() *cobra.Command {
	var addr string
	var allowAll bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the checklist page over HTTP",
		Long: `Serve the checklist page. The server keeps no state: every page and
API call carries its query string, so any link opens its own lists.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := web.Config{Addr: a.cfg.Serve.Addr, AllowAll: a.cfg.Serve.AllowAllOrigins}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("allow-all-origins") {
				cfg.AllowAll = allowAll
			}
			// The server's request log is always on.
			logger := a.log
			if !a.cfg.Log.Verbose {
				logger = newStderrLogger(cmd)
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return web.New(cfg, logger).Start(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&allowAll, "allow-all-origins", false, "allow every CORS origin")
	return cmd
}

func (a *app) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
		Args:  usageArgs(cobra.NoArgs),
	}
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective settings to the config file",
		Long: `Write the settings in effect (defaults, then the existing file, then
CHECKLIST_* variables and flags such as --theme) to the file named by --config.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(a.configPath); err == nil && !force {
				return &UsageError{Msg: a.configPath + " already exists", Hint: "pass --force to overwrite it"}
			}
			if err := a.cfg.Save(a.configPath); err != nil {
				return err
			}
			ui.OK("wrote " + a.configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "checklist version %s\n", a.version)
		},
	}
}
