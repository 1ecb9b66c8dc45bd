// Package agent talks to the reasoning service: it sends the user's
// free-text command plus a snapshot of the current list, and turns the
// tool calls that come back into an ordered batch of core actions. The
// engine underneath stays deterministic; this package is the only place
// that knows a network exists.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/idilsaglam/prata/internal/config"
	"github.com/idilsaglam/prata/internal/core"
	"go.uber.org/zap"
)

// Translation is one reasoning-service round trip: the action batch to
// apply, in order, plus any conversational text the model produced.
type Translation struct {
	Actions []core.Action
	Reply   string
}

// Translator converts one free-text command into a Translation.
type Translator interface {
	Translate(ctx context.Context, input string, store core.Store) (Translation, error)
}

// New picks a backend from the config: an explicit provider wins,
// otherwise the configured key decides (config resolves provider-specific
// env keys before we get here).
func New(ctx context.Context, cfg config.Config, log *zap.Logger) (Translator, error) {
	if log == nil {
		log = zap.NewNop()
	}
	switch cfg.Provider {
	case "gemini", "":
		return NewGeminiClient(ctx, cfg, log)
	case "anthropic":
		return NewAnthropicClient(cfg, log), nil
	}
	return nil, fmt.Errorf("unknown provider %q (want gemini or anthropic)", cfg.Provider)
}

const systemPrompt = `You are prata, a todo list assistant. Translate the user's message into tool calls against their list, one call per requested change, in the order the user gave them. When the user refers to a task by its position, use the number shown in the list as the identifier. Keep any text reply to one short sentence.`

// ToolCall is one function invocation requested by the model, in the
// neutral form shared by both backends.
type ToolCall struct {
	Name string
	Args map[string]any
}

// toolParam / toolSpec describe the tool vocabulary once; each backend
// renders it into its own schema format.
type toolParam struct {
	name     string
	desc     string
	enum     []string
	required bool
}

type toolSpec struct {
	name   string
	desc   string
	params []toolParam
}

var toolSpecs = []toolSpec{
	{
		name: string(core.ActionAdd),
		desc: "Add a new task to the list.",
		params: []toolParam{
			{name: "title", desc: "Task title.", required: true},
			{name: "priority", desc: "Task priority.", enum: []string{"low", "medium", "high"}},
			{name: "category", desc: "Free-text category label, e.g. Work or Home."},
		},
	},
	{
		name: string(core.ActionComplete),
		desc: "Mark a task as completed.",
		params: []toolParam{
			{name: "identifier", desc: "Task reference: 1-based position, 'first', 'last', or part of the title.", required: true},
		},
	},
	{
		name: string(core.ActionUncomplete),
		desc: "Mark a completed task as active again.",
		params: []toolParam{
			{name: "identifier", desc: "Task reference: 1-based position, 'first', 'last', or part of the title.", required: true},
		},
	},
	{
		name: string(core.ActionDelete),
		desc: "Delete a task from the list.",
		params: []toolParam{
			{name: "identifier", desc: "Task reference: 1-based position, 'first', 'last', or part of the title.", required: true},
		},
	},
	{
		name: string(core.ActionSetFilter),
		desc: "Change which tasks are shown.",
		params: []toolParam{
			{name: "filterType", desc: "One of priority, completed, active, category, or all.", required: true},
			{name: "filterValue", desc: "Value for the filter, e.g. high for priority or Work for category."},
		},
	},
}

// decodeCalls maps tool calls onto core actions. Unknown tool names are
// passed through as-is; the executor fails open on kinds it doesn't know.
func decodeCalls(calls []ToolCall) []core.Action {
	actions := make([]core.Action, 0, len(calls))
	for _, c := range calls {
		actions = append(actions, decodeCall(c))
	}
	return actions
}

func decodeCall(c ToolCall) core.Action {
	str := func(key string) string {
		v, _ := c.Args[key].(string)
		return v
	}
	a := core.Action{Kind: core.ActionKind(c.Name)}
	switch a.Kind {
	case core.ActionAdd:
		a.Title = str("title")
		a.Priority = str("priority")
		a.Category = str("category")
	case core.ActionComplete, core.ActionUncomplete, core.ActionDelete:
		a.Identifier = str("identifier")
	case core.ActionSetFilter:
		a.FilterType = str("filterType")
		a.FilterValue = str("filterValue")
	}
	return a
}

// promptContext renders the store the way the user currently sees it, so
// the model can emit identifiers that resolve against the same positions.
func promptContext(s core.Store) string {
	var b strings.Builder
	if len(s.Items) == 0 {
		b.WriteString("The list is empty.")
	} else {
		b.WriteString("Current tasks:\n")
		for i, it := range s.Items {
			box := "[ ]"
			if it.Completed {
				box = "[x]"
			}
			fmt.Fprintf(&b, "%d. %s %s (%s)", i+1, box, it.Title, it.Priority)
			if it.Category != "" {
				fmt.Fprintf(&b, " #%s", it.Category)
			}
			b.WriteByte('\n')
		}
	}
	if !s.Filter.None() {
		fmt.Fprintf(&b, "\nActive display filter: %s", s.Filter.Describe())
	}
	return b.String()
}
