package testsupport

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gedcard/internal/fieldrec"
)

// FocalURL is the person page used by SmithSnapshot.
const FocalURL = "https://www.familysearch.org/tree/person/details/ABCD-123"

// SmithSnapshot returns a small snapshot: John James Smith, his wife, one
// child, and his parents.
func SmithSnapshot() *fieldrec.Snapshot {
	return &fieldrec.Snapshot{
		Source: fieldrec.Source{
			Title:  "John James Smith (1850–1920) • FamilySearch",
			URL:    FocalURL,
			PID:    "ABCD-123",
			Viewed: time.Date(2024, 6, 28, 15, 4, 5, 0, time.UTC),
		},
		Vitals: &fieldrec.PersonFields{
			FullName: "John James Smith",
			Gender:   "Male",
			Birth:    &fieldrec.EventFields{Date: "12 March 1850", Place: "York, England"},
		},
		Households: []fieldrec.Household{
			{
				Husband:  &fieldrec.PersonFields{PID: "ABCD-123", FullName: "John James Smith", Lifespan: "1850–1920", Gender: "Male"},
				Wife:     &fieldrec.PersonFields{PID: "EFGH-456", FullName: "Jane Ann Doe", Lifespan: "1852–1930", Gender: "Female"},
				Marriage: &fieldrec.EventFields{Date: "about 1875", Place: "Leeds, England"},
				Children: []*fieldrec.PersonFields{
					{PID: "KID-001", FullName: "Mary Smith", Lifespan: "1877–1950", Gender: "Female"},
				},
			},
			{
				Husband:  &fieldrec.PersonFields{PID: "OLD-001", FullName: "Adam Smith", Lifespan: "1820–1890", Gender: "Male"},
				Wife:     &fieldrec.PersonFields{PID: "OLD-002", FullName: "Eve Brown", Lifespan: "1825–1899", Gender: "Female"},
				Children: []*fieldrec.PersonFields{
					{PID: "ABCD-123", FullName: "John James Smith", Lifespan: "1850–1920", Gender: "Male"},
				},
			},
		},
	}
}

// WriteSnapshot serializes snap as JSON under dir and returns the file path.
func WriteSnapshot(t testing.TB, dir string, snap *fieldrec.Snapshot) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, "snapshot.json")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := fieldrec.Encode(f, snap); err != nil {
		t.Fatalf("encode snapshot: %v", err)
	}
	return path
}
