package protocols

import "testing"

func TestSTARKParametersValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  STARKParameters
		wantErr bool
	}{
		{"defaults", DefaultSTARKParameters(), false},
		{"custom", NewSTARKParameters(128), false},
		{"zero security", STARKParameters{SecurityLevel: 0, ExpansionFactor: 4, NumQueries: 40}, true},
		{"blowup not power of two", STARKParameters{SecurityLevel: 80, ExpansionFactor: 6, NumQueries: 40}, true},
		{"blowup too small", STARKParameters{SecurityLevel: 80, ExpansionFactor: 1, NumQueries: 40}, true},
		{"no queries", STARKParameters{SecurityLevel: 80, ExpansionFactor: 4, NumQueries: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSTARKParametersDerived(t *testing.T) {
	params := DefaultSTARKParameters()

	if got := params.EvaluationDomainLength(128); got != 512 {
		t.Errorf("EvaluationDomainLength(128) = %d, want 512", got)
	}

	// 512 values fold down to 4: 512 -> 256 -> ... -> 4, eight layers total
	if got := params.NumFRILayers(128); got != 8 {
		t.Errorf("NumFRILayers(128) = %d, want 8", got)
	}

	// A height-1 trace needs no folding at all
	if got := params.NumFRILayers(1); got != 1 {
		t.Errorf("NumFRILayers(1) = %d, want 1", got)
	}
}
