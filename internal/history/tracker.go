package history

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"hideout-tracker/internal/catalog"
)

const dateLayout = "2006-01-02"

// Metrics is the per-craft price state captured by a daily snapshot.
type Metrics struct {
	SellPrice     int     `json:"sellPrice"`
	MaterialCost  int     `json:"materialCost"`
	Profit        int     `json:"profit"`
	ProfitPerHour float64 `json:"profitPerHour"`
}

// Snapshot is one calendar day's capture, keyed "station|craft name".
type Snapshot struct {
	Date    string             `json:"date"`
	Entries map[string]Metrics `json:"entries"`
}

// CompletionEvent records that a craft was actually performed. The metric
// fields are copies taken at completion time; editing the craft later must
// not change them.
type CompletionEvent struct {
	ID           string    `json:"id"`
	CraftID      string    `json:"craftId"`
	StationID    string    `json:"stationId"`
	Name         string    `json:"name"`
	Profit       int       `json:"profit"`
	CraftTime    int       `json:"craftTime"`
	MaterialCost int       `json:"materialCost"`
	SellPrice    int       `json:"sellPrice"`
	Timestamp    time.Time `json:"timestamp"`
}

// Point is one day of history for a single craft.
type Point struct {
	Date string `json:"date"`
	Metrics
}

// PeriodStats sums completion events over one window.
type PeriodStats struct {
	Count       int `json:"count"`
	Profit      int `json:"profit"`
	TimeMinutes int `json:"timeMinutes"`
}

// StatsSummary is the completion-log rollup across the standard windows.
type StatsSummary struct {
	Today   PeriodStats `json:"today"`
	Week    PeriodStats `json:"week"`
	Month   PeriodStats `json:"month"`
	AllTime PeriodStats `json:"allTime"`
}

// Store persists tracker mutations. Every mutation writes through
// synchronously; the in-memory state is only updated when the write
// succeeds.
type Store interface {
	SaveSnapshot(Snapshot) error
	DeleteSnapshot(date string) error
	AppendCompletion(CompletionEvent) error
	ClearCompletions() error
}

// Tracker owns the daily snapshot log and the completion-event log.
// Not safe for concurrent use; the controller serializes access.
type Tracker struct {
	store     Store
	retention int
	snapshots map[string]Snapshot
	events    []CompletionEvent
	now       func() time.Time
}

// New creates an empty Tracker. store may be nil for a memory-only tracker.
func New(store Store, retentionDays int) *Tracker {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	return &Tracker{
		store:     store,
		retention: retentionDays,
		snapshots: make(map[string]Snapshot),
		now:       time.Now,
	}
}

// Restore seeds the tracker from persisted state at startup.
func (t *Tracker) Restore(snaps []Snapshot, events []CompletionEvent) {
	for _, s := range snaps {
		t.snapshots[s.Date] = s
	}
	t.events = append(t.events, events...)
}

// SnapshotKey builds the composite key a snapshot entry is stored under.
func SnapshotKey(stationID, craftName string) string {
	return stationID + "|" + craftName
}

// RecordSnapshot captures today's metrics for every api-sourced craft.
// At most one snapshot exists per calendar day; a repeat call on the same
// day reports false and changes nothing. After a successful insert the log
// is pruned to the retention bound, oldest dates first.
func (t *Tracker) RecordSnapshot(crafts map[string][]catalog.Craft) (bool, error) {
	date := t.now().Format(dateLayout)
	if _, exists := t.snapshots[date]; exists {
		return false, nil
	}

	snap := Snapshot{Date: date, Entries: make(map[string]Metrics)}
	for stationID, list := range crafts {
		for _, c := range list {
			if c.Source != catalog.SourceAPI {
				continue
			}
			rate, _ := c.ProfitPerHour()
			snap.Entries[SnapshotKey(stationID, c.Name)] = Metrics{
				SellPrice:     c.SellPrice,
				MaterialCost:  c.MaterialCost,
				Profit:        c.Profit(),
				ProfitPerHour: rate,
			}
		}
	}

	if t.store != nil {
		if err := t.store.SaveSnapshot(snap); err != nil {
			return false, fmt.Errorf("save snapshot: %w", err)
		}
	}
	t.snapshots[date] = snap

	if err := t.prune(); err != nil {
		return true, err
	}
	return true, nil
}

func (t *Tracker) prune() error {
	for len(t.snapshots) > t.retention {
		oldest := ""
		for date := range t.snapshots {
			if oldest == "" || date < oldest {
				oldest = date
			}
		}
		if t.store != nil {
			if err := t.store.DeleteSnapshot(oldest); err != nil {
				return fmt.Errorf("prune snapshot %s: %w", oldest, err)
			}
		}
		delete(t.snapshots, oldest)
	}
	return nil
}

// RecordCompletion appends a completion event holding a full value copy of
// the craft's metrics at this moment.
func (t *Tracker) RecordCompletion(stationID string, c catalog.Craft) (CompletionEvent, error) {
	ev := CompletionEvent{
		ID:           uuid.NewString(),
		CraftID:      c.ID,
		StationID:    stationID,
		Name:         c.Name,
		Profit:       c.Profit(),
		CraftTime:    c.CraftTime,
		MaterialCost: c.MaterialCost,
		SellPrice:    c.SellPrice,
		Timestamp:    t.now(),
	}
	if t.store != nil {
		if err := t.store.AppendCompletion(ev); err != nil {
			return CompletionEvent{}, fmt.Errorf("append completion: %w", err)
		}
	}
	t.events = append(t.events, ev)
	return ev, nil
}

// ClearCompletions wipes the completion log. Confirmation is the caller's
// responsibility.
func (t *Tracker) ClearCompletions() error {
	if t.store != nil {
		if err := t.store.ClearCompletions(); err != nil {
			return fmt.Errorf("clear completions: %w", err)
		}
	}
	t.events = nil
	return nil
}

// History returns up to `days` most recent daily points for one craft,
// oldest first. Days without a snapshot, or whose snapshot lacks the craft,
// are simply absent.
func (t *Tracker) History(stationID, craftName string, days int) []Point {
	key := SnapshotKey(stationID, craftName)

	dates := make([]string, 0, len(t.snapshots))
	for date, snap := range t.snapshots {
		if _, ok := snap.Entries[key]; ok {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)
	if days > 0 && len(dates) > days {
		dates = dates[len(dates)-days:]
	}

	points := make([]Point, 0, len(dates))
	for _, date := range dates {
		points = append(points, Point{Date: date, Metrics: t.snapshots[date].Entries[key]})
	}
	return points
}

// Snapshots returns the retained snapshots, oldest first.
func (t *Tracker) Snapshots() []Snapshot {
	dates := make([]string, 0, len(t.snapshots))
	for date := range t.snapshots {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	out := make([]Snapshot, 0, len(dates))
	for _, date := range dates {
		out = append(out, t.snapshots[date])
	}
	return out
}

// Completions returns the full event log in append order.
func (t *Tracker) Completions() []CompletionEvent {
	out := make([]CompletionEvent, len(t.events))
	copy(out, t.events)
	return out
}

// Stats rolls the completion log up into the standard windows. Windows are
// compared on date keys, so "today" is the current calendar day, not the
// trailing 24 hours.
func (t *Tracker) Stats() StatsSummary {
	now := t.now()
	today := now.Format(dateLayout)
	weekCutoff := now.AddDate(0, 0, -6).Format(dateLayout)
	monthCutoff := now.AddDate(0, 0, -29).Format(dateLayout)

	var s StatsSummary
	for _, ev := range t.events {
		date := ev.Timestamp.Format(dateLayout)
		s.AllTime.add(ev)
		if date >= monthCutoff {
			s.Month.add(ev)
		}
		if date >= weekCutoff {
			s.Week.add(ev)
		}
		if date == today {
			s.Today.add(ev)
		}
	}
	return s
}

func (p *PeriodStats) add(ev CompletionEvent) {
	p.Count++
	p.Profit += ev.Profit
	p.TimeMinutes += ev.CraftTime
}
