package provider

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const validCard = `{"id": "hablar-pres-yo", "phrase": "Yo ___ con mi madre.", "verb": "hablar", "tense": "present", "subject": "yo", "answer": "hablo", "verb_type": "regular", "category": "daily life"}`

func TestDeckProvider_Parse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		data      string
		wantIDs   []string
		wantErr   bool
		wantEmpty bool
	}{
		{
			name:    "valid deck",
			data:    `[` + validCard + `]`,
			wantIDs: []string{"hablar-pres-yo"},
		},
		{
			name: "invalid entries are dropped",
			data: `[` + validCard + `,
				{"id": "no-blank", "phrase": "Yo hablo.", "verb": "hablar", "tense": "present", "subject": "yo", "answer": "hablo", "verb_type": "regular"},
				{"id": "bad-tense", "phrase": "Yo ___.", "verb": "hablar", "tense": "pluscuamperfecto", "subject": "yo", "answer": "hablo", "verb_type": "regular"},
				{"id": "bad-type", "phrase": "Yo ___.", "verb": "hablar", "tense": "present", "subject": "yo", "answer": "hablo", "verb_type": "weird"},
				{"id": "", "phrase": "Yo ___.", "verb": "hablar", "tense": "present", "subject": "yo", "answer": "hablo", "verb_type": "regular"},
				{"id": "comer-pres-yo", "phrase": "Yo ___ fruta.", "verb": "comer", "tense": "present", "subject": "yo", "answer": "como", "verb_type": "regular"}]`,
			wantIDs: []string{"hablar-pres-yo", "comer-pres-yo"},
		},
		{
			name: "duplicate ids keep the first entry",
			data: `[` + validCard + `,` + validCard + `]`,
			wantIDs: []string{"hablar-pres-yo"},
		},
		{
			name:      "zero valid cards",
			data:      `[{"id": "no-blank", "phrase": "Yo hablo.", "verb": "hablar", "tense": "present", "subject": "yo", "answer": "hablo", "verb_type": "regular"}]`,
			wantErr:   true,
			wantEmpty: true,
		},
		{
			name:      "empty array",
			data:      `[]`,
			wantErr:   true,
			wantEmpty: true,
		},
		{
			name:    "malformed json",
			data:    `{not json`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewDeckProvider(zap.NewNop())

			cards, err := p.Parse([]byte(tt.data))

			if tt.wantErr {
				require.Error(t, err)
				if tt.wantEmpty {
					require.ErrorIs(t, err, ErrEmptyDeck)
				}
				return
			}

			require.NoError(t, err)

			ids := make([]string, 0, len(cards))
			for _, c := range cards {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestDeckProvider_Load(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "deck.json")
		require.NoError(t, os.WriteFile(path, []byte(`[`+validCard+`]`), 0o600))

		p := NewDeckProvider(zap.NewNop())
		cards, err := p.Load(path)

		require.NoError(t, err)
		require.Len(t, cards, 1)
		assert.Equal(t, "hablar-pres-yo", cards[0].ID)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		p := NewDeckProvider(zap.NewNop())
		_, err := p.Load(filepath.Join(t.TempDir(), "nope.json"))

		require.Error(t, err)
	})
}
