// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Basic usage after initialization:
//     now := timezone.Now()                    // Get current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to app timezone
//
//  2. Joining a booking day and clock:
//     end, err := timezone.Combine("2024-01-01", "10:00", timezone.GetLocation())
//
//  3. Parsing times in app timezone:
//     t, err := timezone.Parse("2006-01-02", "2024-01-01")
//
// The timezone is configured via the APP_TIMEZONE environment variable
// (default Asia/Ho_Chi_Minh) and is initialized when the package is imported.
package timezone
