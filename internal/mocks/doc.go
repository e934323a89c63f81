// Package mocks provides shared test doubles for the application's interfaces.
//
// Each mock is a struct with one function field per interface method plus
// default return values and call tracking:
//
//	gen := &mocks.MockGenerator{
//	    GenerateFlashCardsFn: func(ctx context.Context, req domain.GenerationRequest) ([]domain.FlashCard, error) {
//	        return nil, generation.ErrContentBlocked
//	    },
//	}
//
// When a function field is nil the mock falls back to its default values.
package mocks
