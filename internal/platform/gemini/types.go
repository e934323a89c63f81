package gemini

// promptData is the user turn sent to the model, serialised as JSON.
type promptData struct {
	OriginalLanguage string `json:"originalLanguage"`
	TargetLanguage   string `json:"targetLanguage"`
	Level            string `json:"level"`
	Region           string `json:"region,omitempty"`
	Count            int    `json:"count"`
}

// ResponseSchema is the structure of a model reply.
// FlashCards is a pointer so a missing key can be told apart from an empty array.
type ResponseSchema struct {
	FlashCards *[]CardSchema `json:"flashCards"`
}

// CardSchema is a single generated phrase pair.
type CardSchema struct {
	OriginalLanguage *TextSchema `json:"originalLanguage"`
	TargetLanguage   *TextSchema `json:"targetLanguage"`
}

// TextSchema holds the text of one side of a phrase pair.
type TextSchema struct {
	Text string `json:"text"`
}
