// Package api handles incoming HTTP requests for the deck endpoints:
// request decoding and validation, calls into service.DeckService, and
// mapping of results and errors onto HTTP responses.
package api
