package greeting

import "time"

// ============================================================================
// Defaults
// ============================================================================

// DefaultLocale is the locale used when Options.Locale is empty.
const DefaultLocale = "zh-CN"

// CatchAllSlot is selected when no configured slot range contains the hour.
const CatchAllSlot = "night"

// DefaultUpdateInterval is the auto update period when Options.UpdateInterval is zero.
const DefaultUpdateInterval = 60 * time.Second

// CustomGreetingsKey is the store record holding every custom greeting as one JSON object.
const CustomGreetingsKey = "customGreetings"

// ============================================================================
// Slot Names
// ============================================================================

const (
	SlotMorning   = "morning"
	SlotAfternoon = "afternoon"
	SlotEvening   = "evening"
	SlotNight     = "night"
)

// ============================================================================
// Key Formatting
// ============================================================================

// HoursPerDay bounds slot hours to [0, HoursPerDay).
const HoursPerDay = 24

// DateKeyFormat renders a month-day pair as "MM-DD".
const DateKeyFormat = "%02d-%02d"

// WeekdayKeyFormat renders a weekday override key, e.g. "day_1" for Monday.
const WeekdayKeyFormat = "day_%d"

// OverrideKeySeparator joins the locale and the key in the override map.
const OverrideKeySeparator = "_"

// ============================================================================
// Resolution Sources
// ============================================================================

// Source identifies which tier produced a greeting.
type Source string

const (
	SourceOverrideDate    Source = "override_date"
	SourceOverrideWeekday Source = "override_weekday"
	SourceOverrideSlot    Source = "override_slot"
	SourceDate            Source = "date"
	SourceWeekday         Source = "weekday"
	SourceSlot            Source = "slot"
	SourceSlotDefault     Source = "slot_default"
	SourceNone            Source = "none"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgLocaleNotFound  = "locale not found"
	ErrMsgInvalidTimeSlot = "invalid time slot"
	ErrMsgInvalidKey      = "invalid custom greeting key"

	ErrFmtLocaleNotFound    = "%s: %q"
	ErrFmtSlotEmptyRange    = "%w: %s has equal start and end hour %d"
	ErrFmtSlotValidation    = "%w: %s: %v"
	ErrFmtSaveCustom        = "failed to save custom greetings: %w"
	ErrFmtEncodeCustom      = "failed to encode custom greetings: %w"
	ErrFmtKeyEmpty          = "%w: key must not be empty"
	ErrFmtDecodeCustom      = "failed to decode custom greetings: %w"
	ErrFmtLoadCustom        = "failed to load custom greetings: %w"
	ErrFmtParseLanguageFile = "failed to parse language file %s: %w"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgCustomLoadFailed    = "Failed to load custom greetings, continuing with built-in phrases"
	LogMsgCustomSaveFailed    = "Failed to save custom greetings"
	LogMsgCustomSaveSkipped   = "Custom greetings not saved, stored record could not be read"
	LogMsgMissingSlotPhrase   = "Language table has no phrase for time slot, slot default will be used"
	LogMsgLocaleSwitched      = "Greeting locale switched"
	LogMsgGeneratePanic       = "Recovered panic while generating greeting"
	LogMsgAutoUpdateStarted   = "Greeting auto update started"
	LogMsgAutoUpdateStopped   = "Greeting auto update stopped"
	LogMsgAutoUpdateDelivered = "Greeting delivered"
	LogMsgCallbackPanic       = "Recovered panic in greeting callback"
)
