package summary

import (
	"strings"
	"testing"
	"time"

	"gedcard/internal/family"
	"gedcard/internal/fieldrec"
)

func TestFormat(t *testing.T) {
	snap := &fieldrec.Snapshot{
		Source: fieldrec.Source{
			Title:  "page",
			URL:    "https://www.familysearch.org/tree/person/details/ABCD-123",
			Viewed: time.Date(2024, 6, 27, 10, 0, 0, 0, time.UTC),
		},
		Vitals: &fieldrec.PersonFields{
			FullName: "John James Smith",
			Gender:   "Male",
			Birth:    &fieldrec.EventFields{Date: "12 March 1850", Place: "York, England"},
			Death:    &fieldrec.EventFields{Place: "Leeds"},
		},
		Households: []fieldrec.Household{
			{
				Husband:  &fieldrec.PersonFields{PID: "ABCD-123", FullName: "John James Smith", Lifespan: "1850–1920"},
				Wife:     &fieldrec.PersonFields{PID: "EFGH-456", FullName: "Jane Ann Doe"},
				Marriage: &fieldrec.EventFields{Date: "about 1875"},
				Children: []*fieldrec.PersonFields{{PID: "KID-1", FullName: "Mary Smith", Lifespan: "1877–1950"}},
			},
			{
				Husband:  &fieldrec.PersonFields{PID: "OLD-1", FullName: "Adam Smith"},
				Children: []*fieldrec.PersonFields{{PID: "ABCD-123", FullName: "John James Smith"}},
			},
		},
	}
	got := Format(family.Build(snap, nil))
	want := strings.Join([]string{
		"John James Smith (1850–1920, ABCD-123)",
		"https://www.familysearch.org/tree/person/details/ABCD-123",
		"Date viewed: Jun 27, 2024",
		"",
		"Name: John James Smith",
		"Birth: 12 March 1850, York, England",
		"Death: Leeds",
		"",
		"Families:",
		"John James Smith (1850–1920, ABCD-123)",
		"Jane Ann Doe (EFGH-456)",
		"Married: about 1875",
		"Children:",
		"  Mary Smith (1877–1950, KID-1)",
		"",
		"Parents and Siblings:",
		"Adam Smith (OLD-1)",
		"Children:",
		"  John James Smith (1850–1920, ABCD-123)",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("unexpected report\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestFormatWithoutFocal(t *testing.T) {
	snap := &fieldrec.Snapshot{Source: fieldrec.Source{Title: "page", URL: "https://example.org/x"}}
	got := Format(family.Build(snap, nil))
	if !strings.HasSuffix(got, "No person found for https://example.org/x") {
		t.Fatalf("unexpected report %q", got)
	}
}

func TestShortDate(t *testing.T) {
	if got := ShortDate(time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)); got != "Jun 7, 2024" {
		t.Fatalf("ShortDate() = %q", got)
	}
}
