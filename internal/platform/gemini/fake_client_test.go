package gemini

import (
	"context"
	"sync"

	"google.golang.org/genai"
)

// fakeModels records every GenerateContent call and answers with a canned
// response or error.
type fakeModels struct {
	mu       sync.Mutex
	calls    []fakeCall
	response *genai.GenerateContentResponse
	err      error
	fn       func(ctx context.Context) (*genai.GenerateContentResponse, error)
}

type fakeCall struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

func (f *fakeModels) GenerateContent(
	ctx context.Context,
	model string,
	contents []*genai.Content,
	config *genai.GenerateContentConfig,
) (*genai.GenerateContentResponse, error) {
	f.mu.Lock()
	f.calls = append(f.calls, fakeCall{model: model, contents: contents, config: config})
	f.mu.Unlock()

	if f.fn != nil {
		return f.fn(ctx)
	}
	return f.response, f.err
}

func (f *fakeModels) Calls() []fakeCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]fakeCall(nil), f.calls...)
}

// textResponse wraps text in a single-candidate response.
func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Role:  "model",
					Parts: []*genai.Part{{Text: text}},
				},
				FinishReason: genai.FinishReasonStop,
			},
		},
	}
}
