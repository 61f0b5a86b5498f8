package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
	errW   io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w, errW io.Writer) *Output {
	return &Output{format: format, w: w, errW: errW}
}

func outputFor(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		_, _ = fmt.Fprintln(o.errW, string(data))
	} else {
		_, _ = fmt.Fprintf(o.errW, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case Board:
		o.printBoard(v)
	case Zone:
		o.printZone(v)
	case MoveResult:
		o.printMoveResult(v)
	case HealthResult:
		o.printHealthResult(v)
	case ReleaseResult:
		o.printReleaseResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Sex  string `json:"sex"`
}

// Zone response type
type Zone struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// Board response type
type Board struct {
	ID        string    `json:"id"`
	Zones     []Zone    `json:"zones"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DragEvent response type
type DragEvent struct {
	Kind     string `json:"kind"`
	Item     string `json:"item"`
	From     string `json:"from"`
	To       string `json:"to"`
	OldIndex int    `json:"old_index"`
	NewIndex int    `json:"new_index"`
}

// ZoneRender response type
type ZoneRender struct {
	Zone    string   `json:"zone"`
	Players []Player `json:"players"`
}

// MoveResult response type
type MoveResult struct {
	Board   Board        `json:"board"`
	Events  []DragEvent  `json:"events"`
	Renders []ZoneRender `json:"renders"`
}

// HealthResult response type
type HealthResult struct {
	Status    string `json:"status"`
	ReleaseID string `json:"release_id,omitempty"`
}

// ReleaseResult describes a local release build
type ReleaseResult struct {
	ReleaseID  string `json:"release_id"`
	BuildDir   string `json:"build_dir"`
	ScriptFile string `json:"script_file"`
	SRIHash    string `json:"sri_hash"`
}

func (o *Output) printPlayer(p Player) {
	_, _ = fmt.Fprintf(o.w, "Player: %s (%s)\n", p.Name, p.ID)
	_, _ = fmt.Fprintf(o.w, "Sex: %s\n", p.Sex)
}

func (o *Output) printPlayers(players []Player) {
	_, _ = fmt.Fprintf(o.w, "Players (%d):\n", len(players))
	for _, p := range players {
		_, _ = fmt.Fprintf(o.w, "  - %s (%s) [%s]\n", p.Name, p.ID, p.Sex)
	}
}

func (o *Output) printBoard(b Board) {
	_, _ = fmt.Fprintf(o.w, "Board: %s\n", b.ID)
	_, _ = fmt.Fprintf(o.w, "Updated: %s\n", b.UpdatedAt.Format(time.RFC3339))
	for _, z := range b.Zones {
		o.printZone(z)
	}
}

func (o *Output) printZone(z Zone) {
	if len(z.Members) == 0 {
		_, _ = fmt.Fprintf(o.w, "  %s: (empty)\n", z.Name)
		return
	}
	_, _ = fmt.Fprintf(o.w, "  %s: %s\n", z.Name, strings.Join(z.Members, ", "))
}

func (o *Output) printMoveResult(m MoveResult) {
	for _, ev := range m.Events {
		_, _ = fmt.Fprintf(o.w, "%s: %s %s[%d] -> %s[%d]\n",
			ev.Kind, ev.Item, ev.From, ev.OldIndex, ev.To, ev.NewIndex)
	}
	for _, r := range m.Renders {
		names := make([]string, len(r.Players))
		for i, p := range r.Players {
			names[i] = p.ID
		}
		_, _ = fmt.Fprintf(o.w, "Rendered %s: %s\n", r.Zone, strings.Join(names, ", "))
	}
	o.printBoard(m.Board)
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", h.Status)
	if h.ReleaseID != "" {
		_, _ = fmt.Fprintf(o.w, "Release: %s\n", h.ReleaseID)
	}
}

func (o *Output) printReleaseResult(r ReleaseResult) {
	_, _ = fmt.Fprintf(o.w, "Created build at %s with releaseId: %s\n", r.BuildDir, r.ReleaseID)
}
