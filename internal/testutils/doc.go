// Package testutils provides helpers shared by the HTTP and integration tests:
// locating the project root and its schema file, starting test servers,
// sending JSON requests and asserting error bodies.
//
//	server := testutils.CreateTestServer(t, router)
//	resp := testutils.ExecuteJSONRequest(t, server, http.MethodPost, "/Deck/CreateDeck", body)
//	deck := testutils.DecodeResponse[domain.Deck](t, resp, http.StatusCreated)
//
// Error responses are checked with AssertErrorResponse:
//
//	testutils.AssertErrorResponse(t, resp, http.StatusNotFound, "Deck not found")
package testutils
