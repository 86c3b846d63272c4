package match

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a    string
		b    string
		want int
	}{
		// Identical strings
		{"", "", 0},
		{"rpbgetreq", "rpbgetreq", 0},

		// Empty vs non-empty
		{"", "rpb", 3},
		{"rpb", "", 3},

		// Single edits
		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},

		// Message name pairs
		{"rpbgetreq", "rpbgetresp", 2},
		{"rpbputreq", "rpbgetreq", 2},
		{"rpbdelreq", "rpbdelresp", 2},
		{"rpbping", "rpbpingreq", 3},
		{"putrequest", "putresponse", 5},

		// Textbook cases
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},

		// Case differences cost edits; normalization is a separate step
		{"Ping", "ping", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			if got := Levenshtein(tt.a, tt.b); got != tt.want {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLevenshtein_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"rpbgetreq", "rpbgetresp"},
		{"putrequest", "putresponse"},
		{"kitten", "sitting"},
		{"", "rpb"},
	}

	for _, p := range pairs {
		forward := Levenshtein(p[0], p[1])
		backward := Levenshtein(p[1], p[0])

		if forward != backward {
			t.Errorf("Levenshtein(%q, %q) = %d but Levenshtein(%q, %q) = %d",
				p[0], p[1], forward, p[1], p[0], backward)
		}
	}
}

func TestLevenshteinNormalized(t *testing.T) {
	tests := []struct {
		a    string
		b    string
		want float64
	}{
		{"", "", 1.0},
		{"rpbgetreq", "rpbgetreq", 1.0},
		{"abc", "xyz", 0.0},
		{"rpbgetreq", "rpbgetresp", 0.8},
		{"kitten", "sitting", 1.0 - 3.0/7.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			got := LevenshteinNormalized(tt.a, tt.b)
			if diff := got - tt.want; diff < -0.001 || diff > 0.001 {
				t.Errorf("LevenshteinNormalized(%q, %q) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		minScore float64
	}{
		// Same name under different conventions
		{"RpbGetReq", "rpb_get_req", 1.0},
		{"riak_pb_messages", "RiakPbMessages", 1.0},

		// Close relatives
		{"RpbGetReq", "RpbGetResp", 0.7},
		{"RpbPutReq", "RpbGetReq", 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if got < tt.minScore {
				t.Errorf("Similarity(%q, %q) = %f, want >= %f", tt.a, tt.b, got, tt.minScore)
			}
		})
	}

	// Unrelated names should score below the suggestion cutoff.
	if got := Similarity("RpbErrorResp", "RpbSetBucketTypeReq"); got >= DefaultMinScore {
		t.Errorf("Similarity of unrelated names = %f, want < %f", got, DefaultMinScore)
	}
}

func BenchmarkLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Levenshtein("rpbsearchqueryreq", "rpbsearchqueryresp")
	}
}

func BenchmarkSimilarity(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Similarity("RiakPbMessages", "riak_pb_messages")
	}
}
