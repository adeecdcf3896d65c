package safety

import "testing"

func testCatalog() *Catalog {
	return NewCatalog(
		[]string{"chest pain", "heart attack"},
		[]string{"kill myself", "want to die"},
		[]string{"overdose", "dose"},
		[]string{"home surgery"},
	)
}

func TestClassify(t *testing.T) {
	gate := NewGate(testCatalog())

	tests := []struct {
		name     string
		message  string
		expected Category
		matched  bool
	}{
		{"emergency phrase", "I have chest pain right now", CategoryEmergency, true},
		{"self-harm phrase", "I want to kill myself", CategorySelfHarm, true},
		{"dosing phrase", "what is the right dose of ibuprofen", CategoryDosing, true},
		{"unsafe treatment phrase", "thinking about home surgery", CategoryUnsafeTreatment, true},
		{"no match", "What is a normal resting heart rate?", "", false},
		{"empty message", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := gate.Classify(tc.message)
			if ok != tc.matched {
				t.Fatalf("Classify(%q) matched = %v, want %v", tc.message, ok, tc.matched)
			}
			if got != tc.expected {
				t.Errorf("Classify(%q) = %q, want %q", tc.message, got, tc.expected)
			}
		})
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	gate := NewGate(testCatalog())

	// Emergency outranks dosing even though both lists match.
	got, ok := gate.Classify("I took an overdose and now I have chest pain")
	if !ok || got != CategoryEmergency {
		t.Fatalf("expected emergency to win the tie-break, got %q (matched=%v)", got, ok)
	}

	// Self-harm outranks dosing.
	got, ok = gate.Classify("overdose because I want to die")
	if !ok || got != CategorySelfHarm {
		t.Fatalf("expected self_harm to outrank dosing, got %q (matched=%v)", got, ok)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	gate := NewGate(testCatalog())

	lower, okLower := gate.Classify("aspirin overdose")
	upper, okUpper := gate.Classify("ASPIRIN OVERDOSE")

	if !okLower || !okUpper {
		t.Fatal("expected both casings to match")
	}
	if lower != upper || lower != CategoryDosing {
		t.Errorf("casing changed the result: %q vs %q", lower, upper)
	}
}

func TestClassifySubstringSemantics(t *testing.T) {
	gate := NewGate(testCatalog())

	// "dose" is contained in "endoserology"; substring containment is the
	// documented contract, so this must trigger.
	got, ok := gate.Classify("what is endoserology")
	if !ok || got != CategoryDosing {
		t.Errorf("expected embedded phrase to match, got %q (matched=%v)", got, ok)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	gate := NewGate(testCatalog())
	msg := "I want to kill myself"

	first, ok1 := gate.Classify(msg)
	second, ok2 := gate.Classify(msg)

	if first != second || ok1 != ok2 {
		t.Errorf("classification not stable: %q/%v then %q/%v", first, ok1, second, ok2)
	}
}

func TestResponsesAreNonEmpty(t *testing.T) {
	for _, c := range []Category{CategoryEmergency, CategorySelfHarm, CategoryDosing, CategoryUnsafeTreatment} {
		if Response(c) == "" {
			t.Errorf("no canned response for category %q", c)
		}
	}
}

func TestDefaultCatalogCoversAllCategories(t *testing.T) {
	gate := NewGate(DefaultCatalog())

	tests := []struct {
		message  string
		expected Category
	}{
		{"severe chest pain", CategoryEmergency},
		{"I want to kill myself", CategorySelfHarm},
		{"aspirin overdose", CategoryDosing},
		{"I'll stitch it myself", CategoryUnsafeTreatment},
	}

	for _, tc := range tests {
		got, ok := gate.Classify(tc.message)
		if !ok || got != tc.expected {
			t.Errorf("Classify(%q) = %q (matched=%v), want %q", tc.message, got, ok, tc.expected)
		}
	}
}
