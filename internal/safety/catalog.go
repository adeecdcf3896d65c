package safety

import "strings"

// Category identifies which trigger list a message matched.
// Declaration order is priority order: when a message matches more than
// one list, the most urgent category wins.
type Category string

const (
	CategoryEmergency       Category = "emergency"
	CategorySelfHarm        Category = "self_harm"
	CategoryDosing          Category = "dosing"
	CategoryUnsafeTreatment Category = "unsafe_treatment"
)

// Catalog is an immutable set of trigger phrases, one list per category.
// Build it once at startup and share it; it is safe for concurrent reads.
type Catalog struct {
	entries []catalogEntry
}

type catalogEntry struct {
	category Category
	phrases  []string
}

// NewCatalog builds a catalog from the four lists. Phrases are lowercased
// at construction so matching never re-normalizes them.
func NewCatalog(emergency, selfHarm, dosing, unsafeTreatment []string) *Catalog {
	return &Catalog{
		entries: []catalogEntry{
			{CategoryEmergency, lowerAll(emergency)},
			{CategorySelfHarm, lowerAll(selfHarm)},
			{CategoryDosing, lowerAll(dosing)},
			{CategoryUnsafeTreatment, lowerAll(unsafeTreatment)},
		},
	}
}

// DefaultCatalog returns the production trigger lists.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		[]string{
			"chest pain",
			"can't breathe",
			"cannot breathe",
			"trouble breathing",
			"difficulty breathing",
			"heart attack",
			"stroke",
			"severe bleeding",
			"bleeding a lot",
			"unconscious",
			"passed out",
			"seizure",
			"anaphylaxis",
			"allergic reaction",
		},
		[]string{
			"kill myself",
			"suicide",
			"suicidal",
			"end my life",
			"hurt myself",
			"harm myself",
			"self harm",
			"self-harm",
			"want to die",
			"no reason to live",
		},
		[]string{
			"dose",
			"dosage",
			"how many mg",
			"how much should i take",
			"how many pills",
			"double the dose",
			"overdose",
			"max dose",
		},
		[]string{
			"stitch it myself",
			"stitch myself",
			"home surgery",
			"remove it myself",
			"drain it myself",
			"pop it myself",
			"set the bone myself",
			"pull the tooth myself",
			"without a doctor",
			"without seeing a doctor",
		},
	)
}

// cannedResponses maps each category to the exact string returned to the
// user. Returned verbatim, never templated with user input.
var cannedResponses = map[Category]string{
	CategoryEmergency:       "⚠️ Your symptoms might be serious. Please go to an emergency room or call emergency services.",
	CategorySelfHarm:        "I'm really sorry you're feeling this way. Please contact a crisis hotline or emergency services immediately.",
	CategoryDosing:          "I can't give medication doses. Please ask a doctor or pharmacist.",
	CategoryUnsafeTreatment: "I can't guide medical procedures. Please see a healthcare professional.",
}

// Response returns the canned answer for a matched category.
func Response(c Category) string {
	return cannedResponses[c]
}

func lowerAll(phrases []string) []string {
	out := make([]string, len(phrases))
	for i, p := range phrases {
		out[i] = strings.ToLower(p)
	}
	return out
}
