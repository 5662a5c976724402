// Package timezone resolves the application timezone once at import time.
//
// Dates typed at the console are parsed with Parse so that a booking made
// for "2024-01-05" means midnight of that day in APP_TIMEZONE:
//
//	d, err := timezone.Parse("2006-01-02", "2024-01-05")
//
// Use standard IANA names such as "UTC" or "America/Los_Angeles".
package timezone
