// Package store defines interfaces for flashcard data access.
// These interfaces abstract the underlying collection mechanism from
// the application's core logic, allowing business rules to remain
// independent of how the flashcard set was loaded or is held.
package store
