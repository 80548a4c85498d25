package script

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/wmiitile/internal/infrastructure/host"
	"github.com/bnema/wmiitile/internal/logging"
	"github.com/bnema/wmiitile/pkg/wmii"
)

// Result is the final state of a scenario run.
type Result struct {
	Name         string           `json:"name" yaml:"name"`
	Steps        int              `json:"steps" yaml:"steps"`
	Expectations int              `json:"expectations" yaml:"expectations"`
	Screen       wmii.Rect        `json:"screen" yaml:"screen"`
	Snapshot     *wmii.Snapshot   `json:"snapshot" yaml:"snapshot"`
	Placements   []wmii.Placement `json:"placements" yaml:"placements"`
	FocusHistory []wmii.ClientID  `json:"focus_history" yaml:"focus_history"`
}

// Runner executes commands against its own layout and host group.
type Runner struct {
	name   string
	layout *wmii.Layout
	group  *host.Group
	screen wmii.Rect

	steps        int
	expectations int
}

// NewRunner creates a runner with a fresh layout.
func NewRunner(name string, opts wmii.Options, screen wmii.Rect) *Runner {
	group := host.NewGroup()
	return &Runner{
		name:   name,
		layout: wmii.New(opts, group),
		group:  group,
		screen: screen,
	}
}

// Layout exposes the layout driven by the runner.
func (r *Runner) Layout() *wmii.Layout { return r.layout }

// Group exposes the simulated host.
func (r *Runner) Group() *host.Group { return r.group }

// Run executes commands in order. It stops at the first failed expectation
// or invariant violation; the returned result reflects the state at that point.
func (r *Runner) Run(ctx context.Context, commands []Command) (*Result, error) {
	ctx = logging.WithScript(ctx, r.name)
	log := logging.FromContext(ctx)

	for _, cmd := range commands {
		if err := ctx.Err(); err != nil {
			return r.result(), err
		}
		if err := r.exec(ctx, cmd); err != nil {
			return r.result(), &LineError{Line: cmd.Line, Err: err}
		}
		if cmd.IsMutation() {
			r.steps++
			r.layout.ConfigureAll(ctx, r.group.Clients(), r.screen)
			if err := r.layout.Validate(); err != nil {
				return r.result(), &LineError{Line: cmd.Line, Err: fmt.Errorf("after %q: %w", cmd, err)}
			}
		}
	}

	log.Debug().Int("steps", r.steps).Int("expectations", r.expectations).Msg("script finished")
	return r.result(), nil
}

func (r *Runner) result() *Result {
	placements := r.layout.Placements(r.screen)
	if placements == nil {
		placements = []wmii.Placement{}
	}
	history := r.group.FocusHistory()
	return &Result{
		Name:         r.name,
		Steps:        r.steps,
		Expectations: r.expectations,
		Screen:       r.screen,
		Snapshot:     r.layout.Info(),
		Placements:   placements,
		FocusHistory: history,
	}
}

func (r *Runner) exec(ctx context.Context, cmd Command) error {
	l := r.layout

	switch cmd.Type {
	case CommandAdd:
		for _, arg := range cmd.Args {
			id := wmii.ClientID(arg)
			if _, ok := r.group.Get(id); !ok {
				if _, err := r.group.Attach(id); err != nil {
					return err
				}
			}
			l.Add(ctx, id)
		}
	case CommandRemove:
		for _, arg := range cmd.Args {
			id := wmii.ClientID(arg)
			if next, ok := l.Remove(ctx, id); ok {
				r.group.Focus(ctx, next)
			}
			r.group.Close(id)
		}
	case CommandFocus:
		id := wmii.ClientID(cmd.Args[0])
		l.Focus(ctx, id)
		r.group.Focus(ctx, id)
	case CommandLeft:
		l.Left(ctx)
	case CommandRight:
		l.Right(ctx)
	case CommandUp:
		l.Up(ctx)
	case CommandDown:
		l.Down(ctx)
	case CommandNext:
		l.Next(ctx)
	case CommandPrevious:
		l.Previous(ctx)
	case CommandToggleSplit:
		l.ToggleSplit(ctx)
	case CommandShuffleLeft:
		l.ShuffleLeft(ctx)
	case CommandShuffleRight:
		l.ShuffleRight(ctx)
	case CommandShuffleUp:
		l.ShuffleUp(ctx)
	case CommandShuffleDown:
		l.ShuffleDown(ctx)
	case CommandAddColumn:
		l.AddColumn(ctx, cmd.Args[0] == "prepend", wmii.ClientID(cmd.Args[1]))
	case CommandScreen:
		screen, err := parseRect(cmd.Args)
		if err != nil {
			return err
		}
		r.screen = screen
		l.ConfigureAll(ctx, r.group.Clients(), r.screen)
	case CommandExpect:
		r.expectations++
		return r.expect(cmd.Args[0], cmd.Args[1:])
	default:
		return fmt.Errorf("%w %q", ErrUnknownCommand, cmd.Type)
	}
	return nil
}

func (r *Runner) expect(kind string, args []string) error {
	info := r.layout.Info()

	switch kind {
	case ExpectFocus:
		want := args[0]
		if want == "none" {
			want = ""
		}
		return check("focus", want, string(info.CurrentWindow))
	case ExpectColumns:
		n, err := parseInt(args[0])
		if err != nil {
			return err
		}
		return check("columns", strconv.Itoa(n), strconv.Itoa(len(info.Columns)))
	case ExpectRows:
		col, err := r.column(info, args[0])
		if err != nil {
			return err
		}
		return check(fmt.Sprintf("rows of column %d", col), strings.Join(args[1:], " "), joinIDs(info.Columns[col].Rows))
	case ExpectWidth:
		col, err := r.column(info, args[0])
		if err != nil {
			return err
		}
		if _, err := parseInt(args[1]); err != nil {
			return err
		}
		return check(fmt.Sprintf("width of column %d", col), args[1], strconv.Itoa(info.Columns[col].Width))
	case ExpectMode:
		col, err := r.column(info, args[0])
		if err != nil {
			return err
		}
		return check(fmt.Sprintf("mode of column %d", col), args[1], string(info.Columns[col].Mode))
	case ExpectClients:
		return check("clients", strings.Join(args, " "), joinIDs(info.Clients))
	case ExpectPlacement:
		want, err := parseRect(args[1:])
		if err != nil {
			return err
		}
		p, ok := r.placement(wmii.ClientID(args[0]))
		if !ok {
			return fmt.Errorf("%w: %s has no placement", ErrExpectationFailed, args[0])
		}
		got := wmii.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
		return check("placement of "+args[0], formatRect(want), formatRect(got))
	case ExpectHidden, ExpectVisible:
		w, ok := r.group.Get(wmii.ClientID(args[0]))
		if !ok {
			return fmt.Errorf("%w: no window %s", ErrExpectationFailed, args[0])
		}
		want := kind == ExpectHidden
		if w.Hidden() != want {
			return fmt.Errorf("%w: %s is not %s", ErrExpectationFailed, args[0], kind)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown expectation %q", ErrInvalidArgument, kind)
}

func (r *Runner) placement(id wmii.ClientID) (wmii.Placement, bool) {
	for _, p := range r.layout.Placements(r.screen) {
		if p.ClientID == id {
			return p, true
		}
	}
	return wmii.Placement{}, false
}

func (r *Runner) column(info *wmii.Snapshot, arg string) (int, error) {
	col, err := parseInt(arg)
	if err != nil {
		return 0, err
	}
	if col < 0 || col >= len(info.Columns) {
		return 0, fmt.Errorf("%w: column %d out of range (have %d)", ErrExpectationFailed, col, len(info.Columns))
	}
	return col, nil
}

func check(what, want, got string) error {
	if want != got {
		return fmt.Errorf("%w: %s: want %q, got %q", ErrExpectationFailed, what, want, got)
	}
	return nil
}

func joinIDs(ids []wmii.ClientID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, " ")
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidArgument, s)
	}
	return n, nil
}

func parseRect(args []string) (wmii.Rect, error) {
	var v [4]int
	for i := range v {
		n, err := parseInt(args[i])
		if err != nil {
			return wmii.Rect{}, err
		}
		v[i] = n
	}
	if v[2] <= 0 || v[3] <= 0 {
		return wmii.Rect{}, fmt.Errorf("%w: screen size must be positive", ErrInvalidArgument)
	}
	return wmii.Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
}

func formatRect(r wmii.Rect) string {
	return fmt.Sprintf("%d %d %d %d", r.X, r.Y, r.Width, r.Height)
}
