// Package greeting picks a localized greeting for the current time of day,
// weekday and calendar date.
//
// Phrases are resolved by strict first-match priority:
//
//  1. custom greeting for today's date ("MM-DD")
//  2. custom greeting for today's weekday ("day_N")
//  3. custom greeting for the current time slot
//  4. built-in date phrase
//  5. built-in weekday phrase
//  6. built-in time slot phrase
//  7. the slot's configured default
//
// Custom greetings are keyed "<locale>_<key>" and persisted as one JSON
// record in an optional store.Store.
package greeting

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/osse101/greeter/internal/metrics"
	"github.com/osse101/greeter/internal/store"
)

// Resolver selects greetings for one active locale. It is safe for concurrent use.
type Resolver struct {
	mu sync.RWMutex

	locale    string
	languages map[string]LanguageTable
	slots     map[string]TimeSlot
	ordered   []namedSlot

	// Custom greetings of every locale, keyed "<locale>_<key>".
	// synced is false when custom may differ from the stored record
	// (a read or write failed), so the next write merges before saving.
	custom map[string]string
	synced bool

	interval time.Duration
	store    store.Store
	clock    Clock
	log      *slog.Logger

	autoMu sync.Mutex
	auto   *autoUpdate
}

// New builds a Resolver from opts and loads custom greetings from opts.Store.
// It fails with LocaleNotFoundError when the locale has no language table.
func New(opts Options) (*Resolver, error) {
	slots := opts.TimeSlots
	if len(slots) == 0 {
		slots = DefaultTimeSlots()
	} else {
		slots = maps.Clone(slots)
	}
	if err := ValidateTimeSlots(slots); err != nil {
		return nil, err
	}

	r := &Resolver{
		languages: MergeLanguages(DefaultLanguages(), opts.Languages),
		slots:     slots,
		ordered:   orderSlots(slots),
		interval:  opts.UpdateInterval,
		store:     opts.Store,
		clock:     opts.Clock,
		log:       opts.Logger,
	}
	if r.interval <= 0 {
		r.interval = DefaultUpdateInterval
	}
	if r.clock == nil {
		r.clock = SystemClock
	}
	if r.log == nil {
		r.log = slog.Default()
	}

	locale := opts.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	canonical, ok := r.lookupLocale(locale)
	if !ok {
		return nil, LocaleNotFoundError{Locale: locale}
	}
	r.locale = canonical
	r.custom = make(map[string]string)
	r.reloadCustom(context.Background())
	r.warnMissingSlotPhrases(canonical)

	return r, nil
}

// GenerateGreeting returns the greeting for the current time.
// It never fails; "" means no tier produced a phrase.
func (r *Resolver) GenerateGreeting() string {
	return r.Resolve().Text
}

// Resolve returns the current greeting along with the tier that produced it
func (r *Resolver) Resolve() (g Greeting) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error(LogMsgGeneratePanic, "panic", rec)
			g = Greeting{Source: SourceNone}
		}
	}()

	g = r.snapshot()
	metrics.GreetingResolutions.WithLabelValues(string(g.Source)).Inc()
	return g
}

// snapshot resolves under the read lock
func (r *Resolver) snapshot() Greeting {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolve(r.clock.Now())
}

// resolve walks the priority tiers (caller must hold lock)
func (r *Resolver) resolve(now time.Time) Greeting {
	g := Greeting{
		Locale:  r.locale,
		Slot:    slotForHour(r.ordered, now.Hour()),
		Weekday: now.Weekday(),
		Date:    DateKey(now.Month(), now.Day()),
	}

	table := r.languages[r.locale]
	tiers := []struct {
		source Source
		text   string
	}{
		{SourceOverrideDate, r.custom[overrideKey(r.locale, g.Date)]},
		{SourceOverrideWeekday, r.custom[overrideKey(r.locale, WeekdayKey(g.Weekday))]},
		{SourceOverrideSlot, r.custom[overrideKey(r.locale, SlotKey(g.Slot))]},
		{SourceDate, table.Dates[g.Date]},
		{SourceWeekday, table.Weekdays[g.Weekday]},
		{SourceSlot, table.TimeSlots[g.Slot]},
		{SourceSlotDefault, r.slots[g.Slot].Default},
	}

	for _, tier := range tiers {
		if tier.text != "" {
			g.Text = tier.text
			g.Source = tier.source
			return g
		}
	}
	g.Source = SourceNone
	return g
}

// SetCustomGreeting stores phrase under "<locale>_<key>" and writes every
// custom greeting back to the store. Without a store the greeting is kept in
// memory only. On a store failure the in-memory value is kept and the error
// returned.
func (r *Resolver) SetCustomGreeting(ctx context.Context, key, phrase string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf(ErrFmtKeyEmpty, ErrInvalidKey)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	full := overrideKey(r.locale, key)
	return r.commitCustom(ctx, func(custom map[string]string) bool {
		custom[full] = phrase
		return true
	})
}

// RemoveCustomGreeting deletes the custom greeting for key in the active locale
func (r *Resolver) RemoveCustomGreeting(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf(ErrFmtKeyEmpty, ErrInvalidKey)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	full := overrideKey(r.locale, key)
	return r.commitCustom(ctx, func(custom map[string]string) bool {
		if _, ok := custom[full]; !ok {
			return false
		}
		delete(custom, full)
		return true
	})
}

// CustomGreetings returns the active locale's custom greetings keyed without the locale prefix
func (r *Resolver) CustomGreetings() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string)
	for full, phrase := range r.custom {
		if key, ok := stripLocale(r.locale, full); ok {
			out[key] = phrase
		}
	}
	return out
}

// SetLocale switches the active language table and reloads custom greetings.
// An unknown locale returns LocaleNotFoundError and leaves the resolver unchanged.
// If the store cannot be read the greetings already in memory are kept.
func (r *Resolver) SetLocale(ctx context.Context, locale string) error {
	canonical, ok := r.lookupLocale(locale)
	if !ok {
		metrics.LocaleSwitches.WithLabelValues(metrics.ResultNotFound).Inc()
		return LocaleNotFoundError{Locale: locale}
	}

	r.mu.Lock()
	previous := r.locale
	r.locale = canonical
	r.reloadCustom(ctx)
	r.mu.Unlock()

	metrics.LocaleSwitches.WithLabelValues(metrics.ResultOK).Inc()
	r.log.Info(LogMsgLocaleSwitched, "from", previous, "to", canonical)
	r.warnMissingSlotPhrases(canonical)
	return nil
}

// Locale returns the active locale code
func (r *Resolver) Locale() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.locale
}

// Locales returns every locale with a language table, sorted
func (r *Resolver) Locales() []string {
	locales := make([]string, 0, len(r.languages))
	for locale := range r.languages {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// TimeSlots returns a copy of the configured slot table
func (r *Resolver) TimeSlots() map[string]TimeSlot {
	return maps.Clone(r.slots)
}

// UpdateInterval returns the auto update period
func (r *Resolver) UpdateInterval() time.Duration {
	return r.interval
}

// lookupLocale canonicalizes code and reports whether it has a table.
// languages is immutable after New, so no lock is needed.
func (r *Resolver) lookupLocale(code string) (string, bool) {
	canonical := canonicalOrRaw(code)
	_, ok := r.languages[canonical]
	return canonical, ok
}

// readCustom fetches the custom greeting record. Malformed data is logged,
// dropped from any cache in front of the store and read as an empty set.
func (r *Resolver) readCustom(ctx context.Context) (map[string]string, error) {
	custom := make(map[string]string)

	raw, found, err := r.store.Get(ctx, CustomGreetingsKey)
	if err != nil {
		metrics.StoreErrors.WithLabelValues(metrics.OpLoad).Inc()
		return nil, fmt.Errorf(ErrFmtLoadCustom, err)
	}
	if !found || raw == "" {
		return custom, nil
	}
	if err := json.Unmarshal([]byte(raw), &custom); err != nil {
		metrics.StoreErrors.WithLabelValues(metrics.OpDecode).Inc()
		r.log.Warn(LogMsgCustomLoadFailed, "error", fmt.Errorf(ErrFmtDecodeCustom, err))
		if inv, ok := r.store.(store.Invalidator); ok {
			inv.Invalidate(CustomGreetingsKey)
		}
		return make(map[string]string), nil
	}
	return custom, nil
}

// reloadCustom refreshes r.custom from the store (caller must hold lock).
// A failed read keeps the current set and marks it unsynced.
func (r *Resolver) reloadCustom(ctx context.Context) {
	if r.store == nil {
		return
	}

	stored, err := r.readCustom(ctx)
	if err != nil {
		r.synced = false
		r.log.Warn(LogMsgCustomLoadFailed, "error", err)
		return
	}
	r.adopt(stored)
}

// adopt replaces r.custom with stored. Unsynced in-memory entries are
// merged over it instead of being discarded.
func (r *Resolver) adopt(stored map[string]string) {
	if r.synced {
		r.custom = stored
		return
	}
	merged := maps.Clone(stored)
	maps.Copy(merged, r.custom)
	r.synced = maps.Equal(merged, stored)
	r.custom = merged
}

// commitCustom applies change to the custom set and writes the whole set
// back (caller must hold lock). An unsynced set is first merged with the
// stored record; if that record cannot be read nothing is written, so a
// transient read failure never overwrites other locales' greetings.
func (r *Resolver) commitCustom(ctx context.Context, change func(custom map[string]string) bool) error {
	if r.store == nil {
		change(r.custom)
		return nil
	}

	if !r.synced {
		stored, err := r.readCustom(ctx)
		if err != nil {
			change(r.custom)
			r.log.Error(LogMsgCustomSaveSkipped, "error", err)
			return fmt.Errorf(ErrFmtSaveCustom, err)
		}
		r.adopt(stored)
	}

	if !change(r.custom) && r.synced {
		return nil
	}

	data, err := json.Marshal(r.custom)
	if err != nil {
		return fmt.Errorf(ErrFmtEncodeCustom, err)
	}
	if err := r.store.Set(ctx, CustomGreetingsKey, string(data)); err != nil {
		r.synced = false
		metrics.StoreErrors.WithLabelValues(metrics.OpSave).Inc()
		r.log.Error(LogMsgCustomSaveFailed, "error", err)
		return fmt.Errorf(ErrFmtSaveCustom, err)
	}
	r.synced = true
	return nil
}

func (r *Resolver) warnMissingSlotPhrases(locale string) {
	table := r.languages[locale]
	for _, slot := range r.ordered {
		if table.TimeSlots[slot.Name] == "" {
			r.log.Warn(LogMsgMissingSlotPhrase, "locale", locale, "slot", slot.Name)
		}
	}
}
