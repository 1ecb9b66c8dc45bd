// Package cli wires the cobra command tree: the chat TUI on the bare
// command, a one-shot `do` for scripting, and `ls` for a plain listing.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/prata/internal/agent"
	"github.com/idilsaglam/prata/internal/config"
	"github.com/idilsaglam/prata/internal/core"
	"github.com/idilsaglam/prata/internal/logging"
	"github.com/idilsaglam/prata/internal/tui"
	"github.com/idilsaglam/prata/internal/ui"
)

var (
	flagDebug bool
	flagEmpty bool
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "prata",
		Short: "a todo list you talk to",
		Long: `prata keeps a todo list you drive with plain language.
Run it bare for the interactive chat session, or use "do" for one-shot
commands. Nothing is persisted; every session starts fresh.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd)
		},
	}
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "write debug logs to ~/.prata/prata.log")
	root.PersistentFlags().BoolVar(&flagEmpty, "empty", false, "start with an empty list instead of sample items")
	root.AddCommand(newDoCmd(), newLsCmd())
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		ui.Fail(err.Error())
		return 1
	}
	return 0
}

func initialStore() core.Store {
	if flagEmpty {
		return core.NewStore()
	}
	return core.SeedStore()
}

func setup(cmd *cobra.Command) (config.Config, *zap.Logger, agent.Translator, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, nil, err
	}
	if flagDebug {
		cfg.Debug = true
	}
	log, err := logging.New(cfg.Debug)
	if err != nil {
		return cfg, nil, nil, err
	}
	translator, err := agent.New(cmd.Context(), cfg, log)
	if err != nil {
		return cfg, log, nil, err
	}
	return cfg, log, translator, nil
}

func runChat(cmd *cobra.Command) error {
	cfg, log, translator, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	return tui.Run(initialStore(), translator, cfg.RequestTimeout(), log)
}

func newDoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "do <command...>",
		Short: "apply one natural-language command and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, translator, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout())
			defer cancel()

			text := strings.Join(args, " ")
			store := initialStore()
			translation, err := translator.Translate(ctx, text, store)
			if err != nil {
				return err
			}
			next, summary, err := core.ApplyBatch(store, translation.Actions)
			if err != nil {
				return err
			}

			if summary == "" {
				if translation.Reply != "" {
					summary = translation.Reply
				} else {
					summary = "Nothing to change."
				}
			}
			lines := []string{ui.Success.Render("prata: ") + summary}
			if next.Message != "" {
				lines = append(lines, ui.Pending.Render(next.Message))
			}
			lines = append(lines, "")
			lines = append(lines, listing(next)...)
			fmt.Println(ui.Panel(lines))
			return nil
		},
	}
}

func newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "print the list without starting a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(ui.Panel(listing(initialStore())))
			return nil
		},
	}
}

func listing(s core.Store) []string {
	lines := []string{ui.Title.Render("Tasks") + "  " + ui.Accent.Render(s.Filter.Describe())}
	visible := make(map[string]bool)
	for _, it := range s.Visible() {
		visible[it.ID] = true
	}
	shown := 0
	for i, it := range s.Items {
		if !visible[it.ID] {
			continue
		}
		lines = append(lines, ui.ItemLine(i+1, it))
		shown++
	}
	if shown == 0 {
		lines = append(lines, ui.Muted.Render("(no tasks)"))
	}
	st := core.ComputeStats(s.Items)
	lines = append(lines, "", ui.StatsLine(st), ui.Muted.Render(ui.ProgressBar(st.Completed, st.Total, 24)))
	return lines
}
