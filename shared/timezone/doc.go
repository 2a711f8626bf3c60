// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Initialization, once at startup:
//     timezone.Init(cfg.App.Timezone)
//
//  2. Basic usage after initialization:
//     now := timezone.Now()                    // Get current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to app timezone
//
//  3. Reading "timestamp without time zone" columns:
//     begins := timezone.FromWall(row.Begins) // Same wall clock, app timezone
//
//  4. Formatting with a strftime pattern stored in the settings table:
//     clock := timezone.Strftime(timezone.Now(), "%H:%M")
//     ok := timezone.ValidStrftime("%H:%M")
//
// Supported timezone formats:
// - Standard timezone names only: "UTC", "Europe/Helsinki", "America/New_York", "Europe/London"
//
// The timezone is configured via the INFOPAGE_APP_TIMEZONE environment variable.
// An empty name selects the local timezone of the host.
package timezone
