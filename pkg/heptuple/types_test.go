package heptuple

import "testing"

func TestHeptupleProfile_DominantDimension(t *testing.T) {
	tests := []struct {
		name    string
		profile HeptupleProfile
		want    int
		wantMax int
	}{
		{
			name: "tawhid dominant",
			profile: HeptupleProfile{
				Mysteres: 10, Creation: 20, Attributs: 30,
				Eschatologie: 40, Tawhid: 90, Guidance: 60, Egarement: 5,
			},
			want:    5,
			wantMax: 90,
		},
		{
			name: "first dimension dominant",
			profile: HeptupleProfile{
				Mysteres: 80, Creation: 20, Attributs: 30,
				Eschatologie: 40, Tawhid: 50, Guidance: 60, Egarement: 5,
			},
			want:    1,
			wantMax: 80,
		},
		{
			name: "tie resolves to lowest dimension",
			profile: HeptupleProfile{
				Mysteres: 10, Creation: 70, Attributs: 70,
				Eschatologie: 40, Tawhid: 50, Guidance: 60, Egarement: 5,
			},
			want:    2,
			wantMax: 70,
		},
		{
			name:    "zero profile",
			profile: HeptupleProfile{},
			want:    1,
			wantMax: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.profile.DominantDimension(); got != tt.want {
				t.Errorf("DominantDimension() = %d, want %d", got, tt.want)
			}
			if got := tt.profile.MaxIntensity(); got != tt.wantMax {
				t.Errorf("MaxIntensity() = %d, want %d", got, tt.wantMax)
			}
		})
	}
}

func TestHeptupleProfile_ToArray(t *testing.T) {
	p := HeptupleProfile{
		Mysteres: 1, Creation: 2, Attributs: 3,
		Eschatologie: 4, Tawhid: 5, Guidance: 6, Egarement: 7,
	}

	got := p.ToArray()
	want := [7]int{1, 2, 3, 4, 5, 6, 7}
	if got != want {
		t.Errorf("ToArray() = %v, want %v", got, want)
	}
}

func TestCorpus_Valid(t *testing.T) {
	for _, c := range AllCorpora() {
		if !c.Valid() {
			t.Errorf("Valid() = false for known corpus %q", c)
		}
	}
	for _, c := range []Corpus{"", "tafsir", "Coran"} {
		if c.Valid() {
			t.Errorf("Valid() = true for unknown corpus %q", c)
		}
	}
}

func TestFeedback_Validate(t *testing.T) {
	for _, rating := range []int{1, 3, 5} {
		if err := (Feedback{AnalyseID: 1, Rating: rating}).Validate(); err != nil {
			t.Errorf("Validate() rating %d error = %v", rating, err)
		}
	}
	for _, rating := range []int{0, -1, 6} {
		if err := (Feedback{AnalyseID: 1, Rating: rating}).Validate(); err == nil {
			t.Errorf("Validate() rating %d = nil, want error", rating)
		}
	}
}
