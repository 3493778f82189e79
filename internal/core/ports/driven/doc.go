// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - MailSource: Finds export emails and fetches their document payload
//   - Downloader: Fetches bytes from a download link
//   - Recognizer: Optical character recognition for a single page image
//   - NoteStore: Persists parsed note records
//   - ProcessedStore: Tracks which messages were already handled
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
