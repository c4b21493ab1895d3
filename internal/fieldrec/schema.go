package fieldrec

// FieldKind is the closed set of ways a field value is extracted.
type FieldKind int

const (
	// KindText reads the visible text of the matched element.
	KindText FieldKind = iota
	// KindEvent scrapes a nested event record (date and place) under the matched element.
	KindEvent
	// KindGender resolves gender from attributes and style markers rather than text.
	KindGender
)

func (k FieldKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindEvent:
		return "event"
	case KindGender:
		return "gender"
	default:
		return "unknown"
	}
}

// Field names one value of a record shape and where to find it on the page.
// Selector lists data-testid values, outermost first.
type Field struct {
	Name     string
	Kind     FieldKind
	Selector []string
}

// Schema is an ordered list of fields for one record shape.
type Schema []Field

// Field names shared by the schemas below.
const (
	FieldDate        = "date"
	FieldPlace       = "place"
	FieldFullName    = "fullname"
	FieldLifespan    = "lifespan"
	FieldGender      = "gender"
	FieldPID         = "pID"
	FieldBirth       = "birth"
	FieldChristening = "christening"
	FieldDeath       = "death"
	FieldBurial      = "burial"
)

// EventSchema describes a vital event block.
var EventSchema = Schema{
	{Name: FieldDate, Kind: KindText, Selector: []string{"conclusion-date"}},
	{Name: FieldPlace, Kind: KindText, Selector: []string{"conclusion-place"}},
}

// PersonSchema describes a relative on a family card.
var PersonSchema = Schema{
	{Name: FieldFullName, Kind: KindText, Selector: []string{"fullName"}},
	{Name: FieldLifespan, Kind: KindText, Selector: []string{"lifespan"}},
	{Name: FieldGender, Kind: KindGender},
	{Name: FieldPID, Kind: KindText, Selector: []string{"pid"}},
}

// VitalsSchema describes the focal individual's conclusion section.
var VitalsSchema = Schema{
	{Name: FieldFullName, Kind: KindText, Selector: []string{"conclusionDisplay:NAME", "conclusion-body"}},
	{Name: FieldGender, Kind: KindText, Selector: []string{"conclusionDisplay:GENDER", "conclusion-gender"}},
	{Name: FieldBirth, Kind: KindEvent, Selector: []string{"conclusionDisplay:BIRTH"}},
	{Name: FieldChristening, Kind: KindEvent, Selector: []string{"conclusionDisplay:CHRISTENING"}},
	{Name: FieldDeath, Kind: KindEvent, Selector: []string{"conclusionDisplay:DEATH"}},
	{Name: FieldBurial, Kind: KindEvent, Selector: []string{"conclusionDisplay:BURIAL"}},
}

// Value is the scraped value of one field: text for KindText and KindGender,
// Event for KindEvent.
type Value struct {
	Text  string
	Event *EventFields
}

// Record is the raw result of applying a Schema, keyed by field name.
type Record map[string]Value

// Empty reports whether every field came back blank.
func (r Record) Empty() bool {
	for _, v := range r {
		if v.Text != "" || !v.Event.Empty() {
			return false
		}
	}
	return true
}

// Event converts a record scraped with EventSchema.
func (r Record) Event() *EventFields {
	if r == nil {
		return nil
	}
	evt := &EventFields{Date: r[FieldDate].Text, Place: r[FieldPlace].Text}
	return evt.Normalize()
}

// Person converts a record scraped with PersonSchema or VitalsSchema.
func (r Record) Person() *PersonFields {
	if r == nil || r.Empty() {
		return nil
	}
	return &PersonFields{
		PID:         r[FieldPID].Text,
		FullName:    r[FieldFullName].Text,
		Lifespan:    r[FieldLifespan].Text,
		Gender:      r[FieldGender].Text,
		Birth:       r[FieldBirth].Event.Normalize(),
		Christening: r[FieldChristening].Event.Normalize(),
		Death:       r[FieldDeath].Event.Normalize(),
		Burial:      r[FieldBurial].Event.Normalize(),
	}
}
