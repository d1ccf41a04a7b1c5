package decoder

import "testing"

func TestResolveTailLayout(t *testing.T) {
	tests := []struct {
		name      string
		remaining int
		beams     int
		want      tailLayout
	}{
		{"minimal plain tail", minTrailerTokens, 181, tailPlain},
		{"plain tail with remissions", minTrailerTokens + 10, 181, tailPlain},
		// Exactly at the threshold the plain reading wins. A flagged line
		// with zero remissions lands here, which is the heuristic's known
		// blind spot (see resolveTailLayout).
		{"exact threshold stays plain", minTrailerTokens + 181, 181, tailPlain},
		{"one past the boundary", minTrailerTokens + 181 + 1, 181, tailFlagged},
		{"flagged tail with remissions", minTrailerTokens + 181 + 40, 181, tailFlagged},
		{"zero beams plain", 15, 0, tailPlain},
		{"zero beams flagged", 16, 0, tailFlagged},
		{"short tail stays plain", 3, 10, tailPlain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveTailLayout(tt.remaining, tt.beams); got != tt.want {
				t.Errorf("resolveTailLayout(%d, %d) = %v, want %v",
					tt.remaining, tt.beams, got, tt.want)
			}
		})
	}
}
