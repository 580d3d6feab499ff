package types

import (
	"fmt"
	"sync"
)

// WarningLevel represents the severity of a warning
type WarningLevel string

const (
	WarningLevelInfo    WarningLevel = "info"
	WarningLevelWarning WarningLevel = "warning"
)

// Warning represents a recoverable issue encountered while compiling a report,
// such as an attachment that could not be decoded.
type Warning struct {
	Level   WarningLevel           // Warning severity level
	Message string                 // Human-readable warning message
	Code    ErrorCode              // Optional code for categorization
	Context map[string]interface{} // Additional context (path, section, etc.)
}

// Error implements the error interface so warnings can be used as errors if needed
func (w *Warning) Error() string {
	if w.Code != "" {
		return fmt.Sprintf("[%s] %s: %s", w.Level, w.Code, w.Message)
	}
	return fmt.Sprintf("[%s] %s", w.Level, w.Message)
}

// WithContext adds context to the warning and returns the same warning for chaining
func (w *Warning) WithContext(key string, value interface{}) *Warning {
	if w.Context == nil {
		w.Context = make(map[string]interface{})
	}
	w.Context[key] = value
	return w
}

// NewWarning creates a new warning with the given level and message
func NewWarning(level WarningLevel, message string) *Warning {
	return &Warning{
		Level:   level,
		Message: message,
		Context: make(map[string]interface{}),
	}
}

// NewWarningWithCode creates a new warning with a code
func NewWarningWithCode(level WarningLevel, code ErrorCode, message string) *Warning {
	w := NewWarning(level, message)
	w.Code = code
	return w
}

// WarningCollector collects warnings during compilation. It is safe for
// concurrent use by section builders.
type WarningCollector struct {
	mu       sync.Mutex
	warnings []*Warning
	enabled  bool
}

// NewWarningCollector creates a new warning collector
func NewWarningCollector(enabled bool) *WarningCollector {
	return &WarningCollector{
		warnings: make([]*Warning, 0),
		enabled:  enabled,
	}
}

// Add adds a warning to the collector
func (wc *WarningCollector) Add(warning *Warning) {
	if warning == nil {
		return
	}
	wc.mu.Lock()
	defer wc.mu.Unlock()
	if wc.enabled {
		wc.warnings = append(wc.warnings, warning)
	}
}

// Warnings returns a copy of all collected warnings
func (wc *WarningCollector) Warnings() []*Warning {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	out := make([]*Warning, len(wc.warnings))
	copy(out, wc.warnings)
	return out
}

// Count returns the number of warnings collected
func (wc *WarningCollector) Count() int {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	return len(wc.warnings)
}

// GetByCode returns warnings filtered by code
func (wc *WarningCollector) GetByCode(code ErrorCode) []*Warning {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	result := make([]*Warning, 0)
	for _, w := range wc.warnings {
		if w.Code == code {
			result = append(result, w)
		}
	}
	return result
}
