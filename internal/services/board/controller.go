package board

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/mcoot/linkboard/internal/dependencies/clock"
	"github.com/mcoot/linkboard/internal/dependencies/random"
	"github.com/mcoot/linkboard/internal/dnd"
	"github.com/mcoot/linkboard/internal/model"
	"github.com/mcoot/linkboard/internal/services/registry"
	"github.com/mcoot/linkboard/internal/storage"
)

const (
	// BoardIDLength is the length of generated board codes
	BoardIDLength = 6
	// BoardIDAlphabet is the characters used in board codes (avoid confusing chars)
	BoardIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	// GroupName is the move group every zone shares
	GroupName = "shared"
)

// ZoneRenderer receives the players a zone should now display
type ZoneRenderer interface {
	RenderZone(ctx context.Context, boardID model.BoardID, zone model.ZoneName, players []model.Player)
}

// ZoneRender is one zone re-render produced by a move
type ZoneRender struct {
	Zone    model.ZoneName
	Players []model.Player
}

// MoveResult describes what a move changed
type MoveResult struct {
	Board   *model.Board
	Events  []model.DragEvent
	Renders []ZoneRender
}

// Controller owns board zone state and reacts to drag events
type Controller struct {
	storage  storage.Storage
	registry *registry.Registry
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger
	group    *dnd.Group
	renderer ZoneRenderer

	// mu serialises board writes: each move's handlers finish before the next
	// event starts, and a delete never lands between a move's load and save
	mu      sync.Mutex
	pending []ZoneRender
}

// NewController creates a Controller with the link zone handlers installed.
// renderer may be nil.
func NewController(
	storage storage.Storage,
	reg *registry.Registry,
	clock clock.Clock,
	random random.Random,
	renderer ZoneRenderer,
	logger *slog.Logger,
) *Controller {
	c := &Controller{
		storage:  storage,
		registry: reg,
		clock:    clock,
		random:   random,
		renderer: renderer,
		logger:   logger.With(slog.String("component", "board")),
	}

	c.group = dnd.NewGroup(GroupName)
	for _, zone := range model.AllZones() {
		c.group.Register(zone, dnd.Options{})
	}
	c.group.Register(model.ZoneLink, dnd.Options{
		OnAdd: c.onAddLinkBox,
		OnEnd: c.onEndLinkBox,
	})

	return c
}

// Zones lists the zones of the move group in display order
func (c *Controller) Zones() []model.ZoneName {
	return c.group.Zones()
}

// Registry returns the player registry the controller renders from
func (c *Controller) Registry() *registry.Registry {
	return c.registry
}

// CreateBoard creates a board with every known player in the first column
func (c *Controller) CreateBoard(ctx context.Context) (*model.Board, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var id model.BoardID
	for {
		id = model.BoardID(c.random.String(BoardIDLength, BoardIDAlphabet))
		exists, err := c.storage.BoardExists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !exists {
			break
		}
	}

	board := model.NewBoard(id, c.clock.Now())
	board.Zones[model.ZoneColumn1] = c.registry.IDs()

	if err := c.storage.SaveBoard(ctx, board); err != nil {
		return nil, err
	}

	c.logger.Info("board created",
		slog.String("board", string(id)),
		slog.Int("players", c.registry.Len()))
	return board, nil
}

// GetBoard retrieves a board by id
func (c *Controller) GetBoard(ctx context.Context, id model.BoardID) (*model.Board, error) {
	return c.storage.GetBoard(ctx, id)
}

// DeleteBoard removes a board. It waits for any in-flight move so the move
// cannot save the board back.
func (c *Controller) DeleteBoard(ctx context.Context, id model.BoardID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.storage.DeleteBoard(ctx, id)
}

// ListMembers returns the ordered player ids in a zone
func (c *Controller) ListMembers(ctx context.Context, id model.BoardID, zone model.ZoneName) ([]model.PlayerID, error) {
	if !c.group.Has(zone) {
		return nil, fmt.Errorf("%w: %s", model.ErrZoneNotFound, zone)
	}
	board, err := c.storage.GetBoard(ctx, id)
	if err != nil {
		return nil, err
	}
	return board.Members(zone), nil
}

// ZonePlayers returns the ordered players in a zone
func (c *Controller) ZonePlayers(ctx context.Context, id model.BoardID, zone model.ZoneName) ([]model.Player, error) {
	ids, err := c.ListMembers(ctx, id, zone)
	if err != nil {
		return nil, err
	}
	return c.registry.Resolve(ids)
}

// Move applies a drag gesture to a board and runs the zone handlers.
// Nothing is saved or rendered unless the move and all handlers succeed.
func (c *Controller) Move(ctx context.Context, id model.BoardID, mv model.Move) (*MoveResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = nil

	board, err := c.storage.GetBoard(ctx, id)
	if err != nil {
		return nil, err
	}

	events, err := c.group.Apply(ctx, board, mv, c.clock.Now())
	if err != nil {
		c.logger.Warn("move rejected",
			slog.String("board", string(id)),
			slog.String("item", string(mv.Item)),
			slog.Any("error", err))
		return nil, err
	}

	if err := c.storage.SaveBoard(ctx, board); err != nil {
		return nil, err
	}

	// Zones the handlers did not re-render still show the default projection
	renders := c.pending
	for _, zone := range []model.ZoneName{mv.From, mv.To} {
		if slices.ContainsFunc(renders, func(r ZoneRender) bool { return r.Zone == zone }) {
			continue
		}
		players, err := c.registry.Resolve(board.Members(zone))
		if err != nil {
			c.logger.Warn("zone render skipped",
				slog.String("board", string(id)),
				slog.String("zone", string(zone)),
				slog.Any("error", err))
			continue
		}
		renders = append(renders, ZoneRender{Zone: zone, Players: players})
	}
	c.pending = nil

	if c.renderer != nil {
		for _, r := range renders {
			c.renderer.RenderZone(ctx, id, r.Zone, r.Players)
		}
	}

	return &MoveResult{
		Board:   board,
		Events:  events,
		Renders: renders,
	}, nil
}

// queueRender records a zone re-render to publish once the move is saved
func (c *Controller) queueRender(zone model.ZoneName, players []model.Player) {
	c.pending = slices.DeleteFunc(c.pending, func(r ZoneRender) bool { return r.Zone == zone })
	c.pending = append(c.pending, ZoneRender{Zone: zone, Players: players})
}

// onAddLinkBox re-renders the link zone from its current members
func (c *Controller) onAddLinkBox(ctx context.Context, board *model.Board, ev model.DragEvent) error {
	ids := board.Members(model.ZoneLink)
	c.logger.Info("players in link box",
		slog.String("board", string(board.ID)),
		slog.String("added", string(ev.Item)),
		slog.Any("players", ids))

	players, err := c.registry.Resolve(ids)
	if err != nil {
		return err
	}
	c.queueRender(model.ZoneLink, players)
	return nil
}

// onEndLinkBox only records the drag; there is nothing to persist
func (c *Controller) onEndLinkBox(ctx context.Context, board *model.Board, ev model.DragEvent) error {
	c.logger.Info("link box drag ended",
		slog.String("board", string(board.ID)),
		slog.String("item", string(ev.Item)),
		slog.String("from", string(ev.From)),
		slog.String("to", string(ev.To)),
		slog.Int("old_index", ev.OldIndex),
		slog.Int("new_index", ev.NewIndex))
	return nil
}
