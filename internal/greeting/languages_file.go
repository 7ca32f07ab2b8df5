package greeting

import (
	"encoding/json"
	"fmt"
	"os"
)

// SchemaGreetingLanguages is the schema identifier of a language overlay file
const SchemaGreetingLanguages = "greeting-languages"

// LanguageFile is the on-disk shape of a language overlay:
//
//	{"version": "1.0", "schema": "greeting-languages",
//	 "time_slots": {"morning": {"start": 5, "end": 12}},
//	 "languages": {"en-US": {"dates": {"07-04": "Happy 4th"}}}}
type LanguageFile struct {
	Version   string                   `json:"version"`
	Schema    string                   `json:"schema"`
	TimeSlots map[string]TimeSlot      `json:"time_slots,omitempty"`
	Languages map[string]LanguageTable `json:"languages"`
}

// LoadLanguageFile reads an overlay file. A missing file yields an empty overlay.
func LoadLanguageFile(path string) (*LanguageFile, error) {
	file := &LanguageFile{}
	if path == "" {
		return file, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return file, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, file); err != nil {
		return nil, fmt.Errorf(ErrFmtParseLanguageFile, path, err)
	}
	if file.Version == "" {
		return nil, fmt.Errorf("%s missing version field", path)
	}
	if file.Schema != SchemaGreetingLanguages {
		return nil, fmt.Errorf("invalid schema in %s: expected '%s', got '%s'", path, SchemaGreetingLanguages, file.Schema)
	}

	return file, nil
}
