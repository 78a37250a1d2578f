// Package verify exposes state identifier validation over HTTP as a mountable
// chi router.
//
// Routes:
//
//	GET  /jurisdictions          list every jurisdiction with its synopsis and patterns
//	GET  /jurisdictions/{code}   one jurisdiction, 404 when unknown
//	POST /validate               {"jurisdiction": "AL", "id": "1234567"}
//
// Responses use a {"data": ..., "error": ...} envelope. A failed validation
// answers 422 with per-field messages in error.details; identifier problems are
// reported under "id" and unknown jurisdictions under "jurisdiction".
package verify
