// Package gemini implements generation.Generator on top of Google's Gemini
// API (google.golang.org/genai).
//
// Each GenerateFlashCards call sends a fresh two-part conversation: a fixed
// system instruction describing the flashcard task, then one user turn holding
// the JSON-encoded generation request. No history is carried between calls,
// so a single GeminiGenerator is safe to share across goroutines.
//
// The expected reply is a JSON object with a "flashCards" array whose
// elements pair an original-language text with a target-language text:
//
//	{"flashCards":[{"originalLanguage":{"text":"Hello"},"targetLanguage":{"text":"Hola"}}]}
//
// The shape is described by a Gemini schema file loaded at construction. In
// strict mode the schema is sent as the response schema; in loose mode only
// the JSON MIME type is enforced and the schema is appended to the system
// instruction.
package gemini
