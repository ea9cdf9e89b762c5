package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/cinedex/internal/adapter"
	"github.com/mmcdole/cinedex/internal/catalog"
	"github.com/mmcdole/cinedex/internal/domain"
	"github.com/mmcdole/cinedex/internal/prefs"
	"github.com/mmcdole/cinedex/internal/tui/components"
	"github.com/mmcdole/cinedex/internal/tui/styles"
	"github.com/mmcdole/cinedex/internal/view"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

// Mode picks which records feed the list
type Mode int

const (
	ModeAll Mode = iota
	ModeFavorites
	ModeWatching
	ModeCompleted
)

func (m Mode) String() string {
	switch m {
	case ModeFavorites:
		return "Favorites"
	case ModeWatching:
		return "Watching"
	case ModeCompleted:
		return "Completed"
	default:
		return "All Movies"
	}
}

// Next cycles All -> Favorites -> Watching -> Completed -> All
func (m Mode) Next() Mode {
	return (m + 1) % 4
}

const (
	defaultDebounce = 300 * time.Millisecond
	statusTimeout   = 3 * time.Second
	suggestLimit    = 3
)

// Deps are the services the TUI drives
type Deps struct {
	Catalog   CatalogLoader
	Favorites *prefs.Favorites
	Watch     *prefs.WatchStates
	Settings  *prefs.Settings
	Launcher  domain.Launcher
	Selector  *view.Selector
	PlayerURL string        // template with {id}
	Debounce  time.Duration // search input idle time
	Rand      *rand.Rand
	Logger    *slog.Logger
	OpenID    int // record to select once the catalog loads, 0 for none
}

// markCache holds the favorite and watch markers for the rows. It is
// shared by pointer so the list's MarkFunc sees reloads.
type markCache struct {
	favorites map[int]bool
	watch     map[int]domain.WatchState
}

func (c *markCache) lookup(id int) (bool, domain.WatchState) {
	return c.favorites[id], c.watch[id]
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State  ApplicationState
	Ready  bool
	Width  int
	Height int

	deps   Deps
	logger *slog.Logger

	// Data
	records     []domain.MediaRecord // full catalog
	visible     []domain.MediaRecord // SelectView output for the current mode
	query       view.Query
	mode        Mode
	suggestions []string
	marks       *markCache

	// UI components
	List   components.MovieList
	Detail components.Detail
	Genres components.GenrePicker
	Jump   components.QuickJump
	Search textinput.Model

	searching bool // search input has focus
	searchSeq int  // bumped on every edit, stale debounce ticks are dropped

	// Loading
	Loading      bool
	Loaded       int
	Total        int
	loadSeq      int // bumped per load, late results are dropped
	lastResult   domain.SyncResult
	SpinnerFrame int

	// Status bar
	StatusMsg   string
	StatusIsErr bool
	statusSeq   int

	ShowGuide bool
	dark      bool
	pendingID int
}

// NewModel creates the application model. The first catalog load starts
// in Init.
func NewModel(deps Deps) Model {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Selector == nil {
		deps.Selector = view.NewSelector(view.ParseLocale(""))
	}
	if deps.Debounce <= 0 {
		deps.Debounce = defaultDebounce
	}

	dark := deps.Settings.IsDark()
	styles.Apply(dark)

	ti := textinput.New()
	ti.Placeholder = "Search titles and overviews..."
	ti.CharLimit = 100
	ti.Prompt = "/ "
	ti.PromptStyle = styles.PromptStyle

	marks := &markCache{}
	m := Model{
		State:     StateBrowsing,
		deps:      deps,
		logger:    deps.Logger,
		query:     view.Query{SortKey: view.DefaultSortKey},
		marks:     marks,
		List:      components.NewMovieList(marks.lookup),
		Detail:    components.NewDetail(),
		Genres:    components.NewGenrePicker(domain.KnownGenres),
		Jump:      components.NewQuickJump(),
		Search:    ti,
		Loading:   true,
		loadSeq:   1,
		ShowGuide: !deps.Settings.HasSeenGuide(),
		pendingID: deps.OpenID,
		dark:      dark,
	}
	m.reloadMarks()
	m.refreshView()
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadCatalogCmd(m.deps.Catalog, m.loadSeq, false),
		TickCmd(100*time.Millisecond),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		return m, TickCmd(100 * time.Millisecond)

	case CatalogProgressMsg:
		if msg.Seq == m.loadSeq {
			m.Loaded = msg.Loaded
			m.Total = msg.Total
		}
		// Always drain so the loader goroutine can finish
		return m, msg.NextCmd

	case CatalogLoadedMsg:
		if msg.Seq != m.loadSeq {
			m.logger.Debug("dropping late catalog result", "seq", msg.Seq, "current", m.loadSeq)
			return m, nil
		}
		return m, m.applyCatalog(msg)

	case SearchDebounceMsg:
		if msg.Seq != m.searchSeq {
			return m, nil
		}
		m.query.SearchText = m.Search.Value()
		m.refreshView()
		return m, nil

	case PlaybackStartedMsg:
		return m, m.setStatus(fmt.Sprintf("Opened player for %s", msg.Title), false)

	case ErrMsg:
		m.logger.Error("tui error", "context", msg.Context, "error", msg.Err)
		return m, m.setStatus(msg.Error(), true)

	case ClearStatusMsg:
		if msg.Seq == m.statusSeq {
			m.StatusMsg = ""
			m.StatusIsErr = false
		}
		return m, nil
	}

	// Cursor blink and other input housekeeping
	var cmd tea.Cmd
	if m.Jump.IsVisible() {
		m.Jump, cmd, _ = m.Jump.Update(msg)
	} else if m.searching {
		m.Search, cmd = m.Search.Update(msg)
	}
	return m, cmd
}

// applyCatalog installs a finished load
func (m *Model) applyCatalog(msg CatalogLoadedMsg) tea.Cmd {
	m.Loading = false
	m.lastResult = msg.Result
	m.records = msg.Snapshot.Records
	m.refreshView()

	status := m.catalogStatus(msg.Result)
	// With nothing loaded the lookup waits for the next load
	if id := m.pendingID; id != 0 && (len(m.records) > 0 || !msg.Result.Degraded()) {
		m.pendingID = 0
		if cmd := m.openRecord(id); cmd != nil {
			return cmd
		}
	}
	return status
}

// openRecord selects the record with id. It returns a status command only
// when the record is missing.
func (m *Model) openRecord(id int) tea.Cmd {
	r, err := catalog.FindByID(m.records, id)
	if errors.Is(err, domain.ErrRecordNotFound) {
		m.logger.Info("requested movie not in catalog", "id", id)
		m.Detail.SetNotFound(id)
		return m.setStatus("Movie not found", true)
	}
	m.jumpTo(r)
	return nil
}

func (m *Model) catalogStatus(r domain.SyncResult) tea.Cmd {
	switch {
	case r.Source == domain.SourceEmpty:
		m.logger.Warn("catalog unavailable", "error", r.Err)
		return m.setStatus("Couldn't load movies. Press R to try again later.", true)
	case r.Source == domain.SourceFallback:
		m.logger.Warn("serving saved catalog", "count", r.Count, "error", r.Err)
		return m.setStatus(fmt.Sprintf("Couldn't refresh, showing %d saved movies", r.Count), true)
	case r.Source == domain.SourceCache:
		return m.setStatus(fmt.Sprintf("%d movies", r.Count), false)
	default:
		return m.setStatus(fmt.Sprintf("Loaded %d movies", r.Count), false)
	}
}

// startLoad begins a new catalog load, superseding any in flight
func (m *Model) startLoad(force bool) tea.Cmd {
	m.loadSeq++
	m.Loading = true
	m.Loaded, m.Total = 0, 0
	return LoadCatalogCmd(m.deps.Catalog, m.loadSeq, force)
}

// setStatus shows a message and schedules its removal
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.StatusMsg = text
	m.StatusIsErr = isErr
	return ClearStatusCmd(m.statusSeq, statusTimeout)
}

// reloadMarks refreshes the favorite and watch markers from the stores
func (m *Model) reloadMarks() {
	favorites := make(map[int]bool)
	for _, f := range m.deps.Favorites.List() {
		favorites[f.ID] = true
	}
	watch := make(map[int]domain.WatchState)
	for _, e := range m.deps.Watch.List() {
		if id, ok := e.NumericID(); ok {
			watch[id] = e.State
		}
	}
	m.marks.favorites = favorites
	m.marks.watch = watch
}

// sourceRecords returns the records the current mode lists. Catalog
// records are preferred over the stored copies when both exist.
func (m Model) sourceRecords() []domain.MediaRecord {
	switch m.mode {
	case ModeFavorites:
		favs := m.deps.Favorites.List()
		out := make([]domain.MediaRecord, 0, len(favs))
		for _, f := range favs {
			if r, err := catalog.FindByID(m.records, f.ID); err == nil {
				out = append(out, r)
			} else {
				out = append(out, f.Record())
			}
		}
		return out

	case ModeWatching, ModeCompleted:
		state := domain.WatchWatching
		if m.mode == ModeCompleted {
			state = domain.WatchCompleted
		}
		entries := m.deps.Watch.ByState(state)
		out := make([]domain.MediaRecord, 0, len(entries))
		for _, e := range entries {
			id, ok := e.NumericID()
			if !ok {
				continue
			}
			if r, err := catalog.FindByID(m.records, id); err == nil {
				out = append(out, r)
			} else {
				out = append(out, domain.MediaRecord{ID: id, Title: e.Title, PosterPath: e.PosterPath})
			}
		}
		return out

	default:
		return m.records
	}
}

// refreshView reruns the filter/sort pipeline and updates the list
func (m *Model) refreshView() {
	base := m.sourceRecords()
	m.visible = m.deps.Selector.Select(base, m.query)
	m.suggestions = nil
	if len(m.visible) == 0 && m.query.SearchText != "" {
		m.suggestions = view.Suggest(base, m.query.SearchText, suggestLimit)
	}

	m.List.SetTitle(m.mode.String() + " · " + m.query.SortKey.Label())
	m.List.SetRecords(m.visible)
	m.updateDetail()
}

// updateDetail points the detail panel at the selected record
func (m *Model) updateDetail() {
	r, ok := m.List.Selected()
	if !ok {
		m.Detail.SetRecord(nil, false, domain.WatchNone, "")
		return
	}
	fav, state := m.marks.lookup(r.ID)
	m.Detail.SetRecord(&r, fav, state, adapter.PlayerURL(m.deps.PlayerURL, r.ID))
}

// jumpTo selects record, widening the view when it is filtered out
func (m *Model) jumpTo(record domain.MediaRecord) {
	if !m.List.SelectID(record.ID) {
		m.mode = ModeAll
		m.query.SearchText = ""
		m.query.RequiredGenres = nil
		m.Search.SetValue("")
		m.searchSeq++
		m.refreshView()
		m.List.SelectID(record.ID)
	}
	m.updateDetail()
}

// Visible returns the records currently listed
func (m Model) Visible() []domain.MediaRecord {
	return m.visible
}

// Query returns the current view query
func (m Model) Query() view.Query {
	return m.query
}

// CurrentMode returns the list mode
func (m Model) CurrentMode() Mode {
	return m.mode
}
