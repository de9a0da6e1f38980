package heptuple

import (
	"fmt"
	"time"
)

// Corpus identifies one of the reference corpora searchable through the API.
type Corpus string

// The three known corpora.
const (
	CorpusCoran   Corpus = "coran"
	CorpusHadiths Corpus = "hadiths"
	CorpusFiqh    Corpus = "fiqh"
)

// AllCorpora returns the default corpus set for federated search.
func AllCorpora() []Corpus {
	return []Corpus{CorpusCoran, CorpusHadiths, CorpusFiqh}
}

// Valid reports whether the corpus is one of the known types.
func (c Corpus) Valid() bool {
	switch c {
	case CorpusCoran, CorpusHadiths, CorpusFiqh:
		return true
	}
	return false
}

// DimensionNames are the seven heptuple dimensions, indexed by dimension
// number minus one.
var DimensionNames = [7]string{
	"Mystères", "Création", "Attributs",
	"Eschatologie", "Tawhid", "Guidance", "Égarement",
}

// HeptupleProfile holds the seven per-dimension scores (0-100) computed for
// a text or chapter.
type HeptupleProfile struct {
	Mysteres     int `json:"mysteres"`
	Creation     int `json:"creation"`
	Attributs    int `json:"attributs"`
	Eschatologie int `json:"eschatologie"`
	Tawhid       int `json:"tawhid"`
	Guidance     int `json:"guidance"`
	Egarement    int `json:"egarement"`
}

// ToArray returns the scores in dimension order.
func (p HeptupleProfile) ToArray() [7]int {
	return [7]int{
		p.Mysteres, p.Creation, p.Attributs,
		p.Eschatologie, p.Tawhid, p.Guidance, p.Egarement,
	}
}

// DominantDimension returns the 1-based number of the highest-scoring
// dimension. Ties resolve to the lowest dimension number.
func (p HeptupleProfile) DominantDimension() int {
	scores := p.ToArray()
	dominant := 0
	for i, s := range scores {
		if s > scores[dominant] {
			dominant = i
		}
	}
	return dominant + 1
}

// MaxIntensity returns the highest of the seven scores.
func (p HeptupleProfile) MaxIntensity() int {
	max := 0
	for _, s := range p.ToArray() {
		if s > max {
			max = s
		}
	}
	return max
}

// Sourate is one entry of the fixed 114-chapter catalogue.
type Sourate struct {
	ID              int              `json:"id,omitempty"`
	Numero          int              `json:"numero"`
	NomArabe        string           `json:"nom_arabe"`
	NomFrancais     string           `json:"nom_francais"`
	TypeRevelation  string           `json:"type_revelation"`
	NombreVersets   int              `json:"nombre_versets"`
	OrdreRevelation int              `json:"ordre_revelation,omitempty"`
	Profil          *HeptupleProfile `json:"profil_heptuple,omitempty"`
	Themes          []string         `json:"themes,omitempty"`
}

// Verset is a single verse within a chapter.
type Verset struct {
	ID                    int      `json:"id,omitempty"`
	SourateID             int      `json:"sourate_id"`
	NumeroVerset          int      `json:"numero_verset"`
	TexteArabe            string   `json:"texte_arabe"`
	TraductionFrancaise   string   `json:"traduction_francaise,omitempty"`
	DimensionPrincipale   int      `json:"dimension_principale,omitempty"`
	DimensionsSecondaires []int    `json:"dimensions_secondaires,omitempty"`
	MotsCles              []string `json:"mots_cles,omitempty"`
}

// UserProfile is the backend's view of an account. It is a passthrough
// value; the client interprets none of it beyond display.
type UserProfile struct {
	ID             int            `json:"id"`
	Username       string         `json:"username"`
	Email          string         `json:"email"`
	Role           string         `json:"role"`
	Specialization string         `json:"specialization,omitempty"`
	Preferences    map[string]any `json:"preferences,omitempty"`
	IsActive       bool           `json:"is_active"`
	CreatedAt      time.Time      `json:"created_at"`
}

// RegisterRequest carries the fields for account creation.
type RegisterRequest struct {
	Username       string         `json:"username"`
	Email          string         `json:"email"`
	Password       string         `json:"password"`
	Role           string         `json:"role,omitempty"`
	Specialization string         `json:"specialization,omitempty"`
	Preferences    map[string]any `json:"preferences,omitempty"`
}

// Analysis is the heptuple scoring result for a submitted text.
type Analysis struct {
	Profil             HeptupleProfile `json:"profil_heptuple"`
	ConfidenceScores   []float64       `json:"confidence_scores,omitempty"`
	DimensionDominante int             `json:"dimension_dominante"`
	IntensityMax       int             `json:"intensity_max"`
	Details            map[string]any  `json:"details,omitempty"`
	ProcessingTimeMS   int             `json:"processing_time_ms"`
	Version            string          `json:"version"`
}

// Hadith is a narrated saying from one of the reference collections.
type Hadith struct {
	ID                 int      `json:"id,omitempty"`
	NumeroHadith       string   `json:"numero_hadith"`
	Recueil            string   `json:"recueil"`
	Livre              string   `json:"livre,omitempty"`
	Chapitre           string   `json:"chapitre,omitempty"`
	TexteArabe         string   `json:"texte_arabe"`
	TexteFrancais      string   `json:"texte_francais"`
	Narrateur          string   `json:"narrateur,omitempty"`
	DegreAuthenticite  string   `json:"degre_authenticite,omitempty"`
	DimensionHeptuple  string   `json:"dimension_heptuple,omitempty"`
	MotsCles           []string `json:"mots_cles,omitempty"`
	Themes             []string `json:"themes,omitempty"`
	ContexteHistorique string   `json:"contexte_historique,omitempty"`
}

// Exegese is a scholarly commentary excerpt.
type Exegese struct {
	ID                int      `json:"id,omitempty"`
	Auteur            string   `json:"auteur"`
	TitreOuvrage      string   `json:"titre_ouvrage"`
	Epoque            string   `json:"epoque,omitempty"`
	EcoleJuridique    string   `json:"ecole_juridique,omitempty"`
	SourateID         int      `json:"sourate_id,omitempty"`
	VersetDebut       int      `json:"verset_debut,omitempty"`
	VersetFin         int      `json:"verset_fin,omitempty"`
	TexteExegese      string   `json:"texte_exegese"`
	DimensionHeptuple string   `json:"dimension_heptuple,omitempty"`
	Themes            []string `json:"themes,omitempty"`
	Langue            string   `json:"langue,omitempty"`
}

// EnrichedAnalysis bundles an Analysis with related reference material.
type EnrichedAnalysis struct {
	Analyse             Analysis         `json:"analyse"`
	Hadiths             []Hadith         `json:"hadiths,omitempty"`
	Exegeses            []Exegese        `json:"exegeses,omitempty"`
	Citations           []map[string]any `json:"citations,omitempty"`
	Histoires           []map[string]any `json:"histoires,omitempty"`
	ScoreEnrichissement float64          `json:"score_enrichissement"`
}

// Dimension describes one heptuple dimension as returned by the API.
type Dimension struct {
	Numero      int    `json:"numero"`
	Nom         string `json:"nom"`
	Description string `json:"description,omitempty"`
	Couleur     string `json:"couleur,omitempty"`
}

// UniversalSearchResult groups federated-search hits by corpus.
type UniversalSearchResult struct {
	Coran        []map[string]any `json:"coran"`
	Hadiths      []map[string]any `json:"hadiths"`
	Fiqh         []map[string]any `json:"fiqh"`
	TotalResults int              `json:"total_results"`
}

// CorpusSearchResult is the response of a single-corpus search.
type CorpusSearchResult struct {
	Results []map[string]any `json:"results"`
	Total   int              `json:"total"`
}

// Comparison is the result of comparing the heptuple profiles of several
// catalogue entries. The statistics block is backend-defined.
type Comparison struct {
	Sourates   []Sourate      `json:"sourates,omitempty"`
	Statistics map[string]any `json:"statistics,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
}

// Feedback is a user rating of a previous analysis.
type Feedback struct {
	AnalyseID   int    `json:"analyse_id"`
	Rating      int    `json:"rating"`
	Commentaire string `json:"commentaire,omitempty"`
	Suggestions string `json:"suggestions,omitempty"`
}

// Validate checks the feedback fields the backend enforces.
func (f Feedback) Validate() error {
	if f.Rating < 1 || f.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", f.Rating)
	}
	return nil
}

// HealthStatus is the service health probe response.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// DatabaseHealth is the storage health probe response.
type DatabaseHealth struct {
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}
