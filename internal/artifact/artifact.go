package artifact

// Outcome classifies what the analysis backend made of an image.
type Outcome string

const (
	// OutcomeRecognized means the backend confidently identified an artifact.
	OutcomeRecognized Outcome = "recognized"
	// OutcomeUnrecognized means the backend answered but did not identify a
	// Tunisian artifact. This is a valid result, not a failure.
	OutcomeUnrecognized Outcome = "unrecognized"
)

// Details describes a recognized artifact.
type Details struct {
	Title        string  `json:"title"`
	Period       string  `json:"period"`
	Description  string  `json:"description"`
	Significance string  `json:"significance"`
	Location     string  `json:"location"`
	Confidence   float64 `json:"confidence"`
}

// Result is the outcome of a single analysis submission. Exactly one of the
// two outcomes is populated: a recognized result carries Artifact, an
// unrecognized one carries PossibleIdentification/Explanation. Results are
// immutable once produced.
type Result struct {
	Outcome Outcome `json:"outcome"`

	// Recognized
	Artifact *Details `json:"artifact,omitempty"`

	// Unrecognized
	PossibleIdentification string  `json:"possible_identification,omitempty"`
	Explanation            string  `json:"explanation,omitempty"`
	Confidence             float64 `json:"confidence,omitempty"`
}

// Recognized reports whether the result identifies an artifact.
func (r *Result) Recognized() bool {
	return r.Outcome == OutcomeRecognized && r.Artifact != nil
}
