package sim

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/weed-whacker/internal/catalog"
	"github.com/vovakirdan/weed-whacker/internal/config"
)

// Stats counts what happened during a session.
type Stats struct {
	WeedsSpawned int
	WeedsCleared int
	ChopsLanded  int
	ToolsBought  int
	ToolsSold    int
	ToolsBroken  int
	TilesBought  int
	EventsSeen   int // Non-default events started
}

// FrameReport describes what a single Update changed.
type FrameReport struct {
	EventExpired bool            // A timed event ran out
	EventStarted bool            // The weather roller started an event
	Event        catalog.EventID // Active event after the frame
	Spawned      bool
	SpawnedAt    Coord
}

// Session owns one garden and steps it frame by frame.
// A Session is not safe for concurrent use.
type Session struct {
	cfg    config.GameConfig
	cat    *catalog.Catalog
	rng    *rand.Rand
	seed   int64
	logger *log.Logger

	grid    *Grid
	player  *Player
	economy *Economy
	events  *EventManager

	spawnTimer   float64 // ms accumulated toward the next spawn
	weatherTimer int     // ms accumulated toward the next weather roll
	selection    int     // Index into PurchasableTiles
	elapsed      int     // Total simulated ms

	stats Stats
}

// Option configures a Session.
type Option func(*Session)

// WithRand supplies the random source used for spawns and weather.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithSeed seeds a fresh random source.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.seed = seed
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger routes session events to logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession validates cfg and builds a garden from it and cat.
func NewSession(cfg config.GameConfig, cat *catalog.Catalog, opts ...Option) (*Session, error) {
	if cat == nil {
		return nil, errors.New("sim: nil catalog")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	s := &Session{cfg: cfg, cat: cat}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.seed = time.Now().UnixNano()
		s.rng = rand.New(rand.NewSource(s.seed))
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	s.grid = NewGrid(cfg.World.Size, cfg.World.StartingSize)
	s.player = NewPlayer(cat, s.grid, s.grid.Center())
	s.economy = NewEconomy(s.grid, cfg.Economy)
	s.events = NewEventManager(cat)

	s.logger.Debug("session created",
		"world", cfg.World.Size,
		"plot", cfg.World.StartingSize,
		"seed", s.seed,
	)
	return s, nil
}

// Config returns the tuning the session was started with.
func (s *Session) Config() config.GameConfig { return s.cfg }

// Catalog returns the shared tool, weed and event definitions.
func (s *Session) Catalog() *catalog.Catalog { return s.cat }

// Grid returns the garden.
func (s *Session) Grid() *Grid { return s.grid }

// Player returns the gardener.
func (s *Session) Player() *Player { return s.player }

// Economy returns the wallet.
func (s *Session) Economy() *Economy { return s.economy }

// Events returns the weather state.
func (s *Session) Events() *EventManager { return s.events }

// Stats returns a snapshot of the session counters.
func (s *Session) Stats() Stats { return s.stats }

// Seed returns the seed behind every random roll in the session.
func (s *Session) Seed() int64 { return s.seed }

// Elapsed returns the simulated time since the session started.
func (s *Session) Elapsed() time.Duration { return time.Duration(s.elapsed) * time.Millisecond }

// SpawnTimer returns the milliseconds accumulated toward the next weed spawn.
func (s *Session) SpawnTimer() float64 { return s.spawnTimer }

// Update advances the garden by dtMS. Order: weather countdown, multipliers,
// player cooldowns, income, spawn timer, weather roller, selection clamp.
func (s *Session) Update(dtMS int) FrameReport {
	var rep FrameReport
	if dtMS <= 0 {
		rep.Event = s.events.CurrentID()
		return rep
	}
	s.elapsed += dtMS

	if s.events.Update(dtMS) {
		rep.EventExpired = true
		s.weatherTimer = 0
		s.logger.Debug("weather cleared", "event", s.events.Current().Key)
	}
	mult := s.events.Multipliers()

	s.player.Update(dtMS)
	s.economy.Update(dtMS, mult.Income)

	if at, ok := s.advanceSpawnTimer(dtMS, mult.WeedSpawnRate); ok {
		rep.Spawned = true
		rep.SpawnedAt = at
	}

	if !rep.EventExpired {
		rep.EventStarted = s.rollWeather(dtMS)
	}
	rep.Event = s.events.CurrentID()

	s.clampSelection()
	return rep
}

// SpawnInterval returns the effective ms between spawns, or 0 while spawning is paused.
func (s *Session) SpawnInterval() float64 {
	mult := s.events.WeedSpawnRate()
	if mult <= 0 {
		return 0
	}
	return float64(s.cfg.Weeds.SpawnIntervalMS) / mult
}

func (s *Session) advanceSpawnTimer(dtMS int, mult float64) (Coord, bool) {
	if mult <= 0 {
		return Coord{}, false
	}
	s.spawnTimer += float64(dtMS)
	if s.spawnTimer < float64(s.cfg.Weeds.SpawnIntervalMS)/mult {
		return Coord{}, false
	}
	s.spawnTimer = 0
	return s.SpawnWeed()
}

// SpawnWeed plants a weed on a random grass tile immediately.
func (s *Session) SpawnWeed() (Coord, bool) {
	at, ok := s.grid.spawnWeed(s.rng, s.cat, s.player.MovementCount())
	if ok {
		s.stats.WeedsSpawned++
	}
	return at, ok
}

// rollWeather occasionally starts a random event while the weather is calm.
func (s *Session) rollWeather(dtMS int) bool {
	interval := s.cfg.Weather.RollIntervalMS
	if interval <= 0 || !s.events.IsDefault() {
		return false
	}
	s.weatherTimer += dtMS
	if s.weatherTimer < interval {
		return false
	}
	s.weatherTimer = 0
	if s.rng.Float64() >= s.cfg.Weather.EventChance {
		return false
	}
	id, ok := s.cat.RandomEvent(s.rng)
	if !ok {
		return false
	}
	return s.StartEvent(id)
}

// StartEvent forces a weather event.
func (s *Session) StartEvent(id catalog.EventID) bool {
	if !s.events.StartEvent(id) {
		return false
	}
	if !s.events.IsDefault() {
		s.stats.EventsSeen++
	}
	s.logger.Info("weather changed", "event", s.events.Current().Key, "duration_ms", s.events.Current().Duration)
	return true
}

// StartEventByKey forces a weather event by catalog key.
func (s *Session) StartEventByKey(key string) bool {
	id, ok := s.cat.EventByKey(key)
	if !ok {
		return false
	}
	return s.StartEvent(id)
}

// MoveCooldown returns the move cooldown under the current player speed.
func (s *Session) MoveCooldown() int {
	return int(math.Round(float64(s.cfg.Player.MoveCooldownMS) / s.events.PlayerSpeed()))
}

// ChopCooldown returns the equipped tool's cooldown under the current weather.
func (s *Session) ChopCooldown() int {
	tool := s.cat.Tool(s.player.CurrentTool())
	return int(math.Round(float64(tool.Cooldown) * s.events.ToolCooldown()))
}

// Move steps the player one tile.
func (s *Session) Move(d Dir) bool {
	dx, dy := d.Delta()
	return s.player.TryMove(dx, dy, s.MoveCooldown())
}

// Chop swings the equipped tool.
func (s *Session) Chop() ChopResult {
	res := s.player.TryChop(s.ChopCooldown(), s.events.WeedGrowthRate())
	if !res.OK {
		return res
	}
	s.stats.ChopsLanded++
	s.stats.WeedsCleared += len(res.Cleared)
	if res.Broken {
		s.stats.ToolsBroken++
		s.logger.Info("tool broke", "tool", s.cat.Tool(res.BrokenTool).Key)
	}
	return res
}

// EquipTool equips an owned tool.
func (s *Session) EquipTool(id catalog.ToolID) bool {
	return s.player.Equip(id)
}

// BuyTool purchases a tool with session money.
func (s *Session) BuyTool(id catalog.ToolID) bool {
	if !s.player.BuyTool(id, s.economy) {
		return false
	}
	s.stats.ToolsBought++
	s.logger.Debug("tool bought", "tool", s.cat.Tool(id).Key, "money", s.economy.Money())
	return true
}

// SellTool sells an owned tool and returns the price received.
func (s *Session) SellTool(id catalog.ToolID) (int, bool) {
	price, ok := s.player.SellTool(id, s.economy)
	if !ok {
		return 0, false
	}
	s.stats.ToolsSold++
	s.logger.Debug("tool sold", "tool", s.cat.Tool(id).Key, "price", price)
	return price, true
}
