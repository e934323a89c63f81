package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDTO() GenerationRequestDTO {
	return GenerationRequestDTO{
		DeckName:         "Lisbon basics",
		Level:            "A2",
		OriginalLanguage: "en",
		TargetLanguage:   "pt",
		Region:           "Portugal",
		Count:            10,
	}
}

func TestGenerationRequestDTO_Parse(t *testing.T) {
	t.Parallel()

	req, err := validDTO().Parse()
	require.NoError(t, err)

	assert.Equal(t, LevelA2, req.Level)
	assert.Equal(t, "en", req.OriginalLanguage.String())
	assert.Equal(t, "pt", req.TargetLanguage.String())
	assert.Equal(t, "Portugal", req.Region)
	assert.Equal(t, 10, req.Count)
}

func TestGenerationRequestDTO_ParseFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(*GenerationRequestDTO)
		wantFields []string
		wantCause  error
	}{
		{
			name:       "unknown level",
			mutate:     func(d *GenerationRequestDTO) { d.Level = "Z9" },
			wantFields: []string{"level"},
			wantCause:  ErrInvalidLevel,
		},
		{
			name:       "bad target language",
			mutate:     func(d *GenerationRequestDTO) { d.TargetLanguage = "??" },
			wantFields: []string{"targetLanguage"},
			wantCause:  ErrInvalidLanguage,
		},
		{
			name:       "missing original language",
			mutate:     func(d *GenerationRequestDTO) { d.OriginalLanguage = "" },
			wantFields: []string{"originalLanguage"},
		},
		{
			name:       "zero count",
			mutate:     func(d *GenerationRequestDTO) { d.Count = 0 },
			wantFields: []string{"count"},
		},
		{
			name:       "count over limit",
			mutate:     func(d *GenerationRequestDTO) { d.Count = MaxCardsPerRequest + 1 },
			wantFields: []string{"count"},
		},
		{
			name: "several fields at once",
			mutate: func(d *GenerationRequestDTO) {
				d.Level = "Z9"
				d.Count = -1
			},
			wantFields: []string{"count", "level"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dto := validDTO()
			tc.mutate(&dto)

			req, err := dto.Parse()
			require.Error(t, err)
			assert.Equal(t, GenerationRequest{}, req)
			assert.True(t, errors.Is(err, ErrValidation))
			if tc.wantCause != nil {
				assert.True(t, errors.Is(err, tc.wantCause))
			}

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			fields := make([]string, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				fields = append(fields, f.Field)
			}
			assert.ElementsMatch(t, tc.wantFields, fields)
		})
	}
}
