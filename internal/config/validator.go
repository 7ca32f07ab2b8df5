package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks field constraints declared in the struct tags
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msgs = append(msgs, fmt.Sprintf(ErrFmtFieldValidation, fe.Field(), fe.Tag()))
	}
	return fmt.Errorf(ErrFmtInvalidConfig, strings.Join(msgs, "; "))
}

// Warnings returns non-fatal issues with an otherwise valid configuration
func (c *Config) Warnings() []string {
	var warnings []string

	if c.StoreDriver == StoreDriverPostgres && c.Environment != DefaultEnvironment && c.DBPassword == DefaultDBPassword {
		warnings = append(warnings, WarnMsgDefaultDBPass)
	}
	if c.UpdateInterval > 0 && c.UpdateInterval < MinRecommendedInterval {
		warnings = append(warnings, fmt.Sprintf(WarnFmtIntervalTooShort, c.UpdateInterval.Milliseconds(), MinRecommendedInterval))
	}
	if c.HTTPEnabled() && c.APIKey == "" {
		warnings = append(warnings, WarnMsgOpenMutations)
	}
	if c.StoreDriver == StoreDriverNone && c.StoreCacheSize > 0 {
		warnings = append(warnings, WarnMsgCacheWithoutDisk)
	}

	return warnings
}
