package envelope

import "testing"

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want string
	}{
		{
			name: "resolved snapshot message",
			raw: map[string]any{
				"response": map[string]any{
					"result": `{"message":"All stocked up","metrics":{"totalSKUs":5}}`,
				},
			},
			want: "All stocked up",
		},
		{
			name: "response message",
			raw: map[string]any{
				"response": map[string]any{
					"message": "Here are your top sellers",
				},
			},
			want: "Here are your top sellers",
		},
		{
			name: "result text",
			raw: map[string]any{
				"response": map[string]any{
					"result": map[string]any{"text": "3 items below threshold"},
				},
			},
			want: "3 items below threshold",
		},
		{
			name: "result text non-string is stringified",
			raw: map[string]any{
				"response": map[string]any{
					"result": map[string]any{"text": map[string]any{"note": "hi"}},
				},
			},
			want: `{"note":"hi"}`,
		},
		{
			name: "result message",
			raw: map[string]any{
				"response": map[string]any{
					"result": map[string]any{"message": "restock queued"},
				},
			},
			want: "restock queued",
		},
		{
			name: "empty envelope falls back",
			raw:  map[string]any{},
			want: FallbackMessage,
		},
		{
			name: "nil envelope falls back",
			raw:  nil,
			want: FallbackMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractMessage(tt.raw)
			if got != tt.want {
				t.Fatalf("ExtractMessage = %q, want %q", got, tt.want)
			}
			if got == "" {
				t.Fatal("ExtractMessage returned empty string")
			}
		})
	}
}
