// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about generated-field passes and matching-key comparisons.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGenerateHooks(&myGenerateHooks{})
//	    observability.SetMatchHooks(&myMatchHooks{})
//	    // ... run application
//	}
//
// Callers emit events around the work they do:
//
//	observability.Generate().OnGenerateStart(ctx, name)
//	err := f.UpdateGeneratedFields(validate)
//	observability.Generate().OnGenerateComplete(ctx, name, len(f.Links), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Generate Hooks
// =============================================================================

// GenerateHooks receives events from generated-field passes.
type GenerateHooks interface {
	OnGenerateStart(ctx context.Context, feature string)
	OnGenerateComplete(ctx context.Context, feature string, links int, duration time.Duration, err error)
}

// =============================================================================
// Match Hooks
// =============================================================================

// MatchHooks receives events from matching-key comparisons.
type MatchHooks interface {
	// OnMatch records one record pairing attempt across snapshots.
	OnMatch(ctx context.Context, digest string, matched bool)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGenerateHooks is a no-op implementation of GenerateHooks.
type NoopGenerateHooks struct{}

func (NoopGenerateHooks) OnGenerateStart(context.Context, string) {}
func (NoopGenerateHooks) OnGenerateComplete(context.Context, string, int, time.Duration, error) {
}

// NoopMatchHooks is a no-op implementation of MatchHooks.
type NoopMatchHooks struct{}

func (NoopMatchHooks) OnMatch(context.Context, string, bool) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	generateHooks GenerateHooks = NoopGenerateHooks{}
	matchHooks    MatchHooks    = NoopMatchHooks{}
	hooksMu       sync.RWMutex
)

// SetGenerateHooks registers custom generate hooks.
// This should be called once at application startup.
func SetGenerateHooks(h GenerateHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generateHooks = h
	}
}

// SetMatchHooks registers custom match hooks.
// This should be called once at application startup.
func SetMatchHooks(h MatchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		matchHooks = h
	}
}

// Generate returns the registered generate hooks.
func Generate() GenerateHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generateHooks
}

// Match returns the registered match hooks.
func Match() MatchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return matchHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generateHooks = NoopGenerateHooks{}
	matchHooks = NoopMatchHooks{}
}
