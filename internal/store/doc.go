// Package store defines the persistence contract for decks. The interface
// keeps the orchestration layer independent of where decks actually live;
// the only implementation today is the mutex-guarded map in platform/memory.
package store
