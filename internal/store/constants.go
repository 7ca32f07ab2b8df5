package store

import (
	"os"
	"time"
)

// ============================================================================
// Cache Defaults
// ============================================================================

const (
	DefaultCacheSize = 128
	DefaultCacheTTL  = 5 * time.Minute
)

// ============================================================================
// File Store
// ============================================================================

// FilePermissions is the mode used when writing the store file
const FilePermissions os.FileMode = 0644

// DirPermissions is the mode used when creating the store's parent directory
const DirPermissions os.FileMode = 0755

// TempFileSuffix is appended to the store path while a write is in flight
const TempFileSuffix = ".tmp"

// ============================================================================
// PostgreSQL
// ============================================================================

// QueryGetValue reads one value by key
const QueryGetValue = `SELECT value FROM greeting_kv WHERE key = $1`

// QueryUpsertValue inserts or replaces one value
const QueryUpsertValue = `
		INSERT INTO greeting_kv (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()`

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrFmtReadFile      = "failed to read file %s: %w"
	ErrFmtUnmarshalFile = "failed to unmarshal JSON from %s: %w"
	ErrFmtMarshal       = "failed to marshal data: %w"
	ErrFmtWriteFile     = "failed to write file %s: %w"
	ErrFmtRenameFile    = "failed to replace file %s: %w"
	ErrFmtGetValue      = "failed to get value for key %q: %w"
	ErrFmtSetValue      = "failed to set value for key %q: %w"
)
