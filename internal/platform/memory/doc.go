// Package memory provides in-process implementations of the store interfaces.
// Nothing is persisted: all data is lost when the process exits.
package memory
