// Package parse turns a flat, delimiter-separated token stream from a legacy
// parts catalog dump into structured records. The stream carries no field
// tags: records are located by a narrow numeric-shape rule and fields are
// assigned positionally, with regexp shape tests marking the transition from
// the variable-length name run to the fixed trailing fields.
package parse

// ExtraDataPlaceholder marks a record that reached the extra-data step with
// nothing left over, as opposed to a record that never got that far.
const ExtraDataPlaceholder = "-"

// ExtraDataSeparator joins leftover tokens in the Extra Data field. Three
// characters, so it cannot collide with any single-byte field delimiter.
const ExtraDataSeparator = "___"

// nameSlots is the number of localized name fields a record can hold.
const nameSlots = 6

// Record is the fully classified output of one chunk. The field set is
// closed; unpopulated fields stay empty strings.
type Record struct {
	SerialNumber    string
	PartNumber      string
	NameEnglish     string
	NameLang1       string
	NameLang2       string
	NameLang3       string
	NameLang4       string
	NameLang5       string
	PartNumberAlt   string // dotted other-format part number, e.g. "X530.108.146.000"
	ReferenceNumber string
	AdditionalInfo  string
	ExtraData       string
}

// Header returns the canonical column names in output order.
func Header() []string {
	return []string{
		"Serial Number",
		"Part Number",
		"Part Name English",
		"Part Name Language 1",
		"Part Name Language 2",
		"Part Name Language 3",
		"Part Name Language 4",
		"Part Name Language 5",
		"Part Number in Other Format",
		"Reference Number",
		"Additional Information",
		"Extra Data",
	}
}

// Row returns the record's field values in Header() order.
func (r Record) Row() []string {
	return []string{
		r.SerialNumber,
		r.PartNumber,
		r.NameEnglish,
		r.NameLang1,
		r.NameLang2,
		r.NameLang3,
		r.NameLang4,
		r.NameLang5,
		r.PartNumberAlt,
		r.ReferenceNumber,
		r.AdditionalInfo,
		r.ExtraData,
	}
}

// setNameSlot assigns a name to one of the six localized name slots.
// Out-of-range slots are ignored, which implements the silent-drop rule for
// overflow names.
func (r *Record) setNameSlot(slot int, name string) {
	switch slot {
	case 0:
		r.NameEnglish = name
	case 1:
		r.NameLang1 = name
	case 2:
		r.NameLang2 = name
	case 3:
		r.NameLang3 = name
	case 4:
		r.NameLang4 = name
	case 5:
		r.NameLang5 = name
	}
}
