package parse

import "strings"

// Classify consumes one chunk and produces exactly one record. The walk is
// strictly positional with a cursor that only advances; unexpected shapes
// never fail, they degrade into best-effort assignments.
func Classify(chunk []string) Record {
	var rec Record
	if len(chunk) == 0 {
		return rec
	}

	rec.SerialNumber = chunk[0]
	fields := chunk[1:]

	// Serial-only records exist in the dumps (empty spare slots); every
	// other field stays empty, including Extra Data.
	if len(fields) == 0 {
		return rec
	}

	ov := recordOverrides[rec.SerialNumber]

	// The first field is tentatively the part number. An override may take
	// it back below.
	rec.PartNumber = fields[0]
	cursor := 1

	// Consume name variants until a token matches one of the two stop
	// shapes. The stop token itself is not part of the run. If nothing
	// matches, the run extends to the end of the chunk.
	namesEnd := cursor
	for namesEnd < len(fields) && !isNameStop(fields[namesEnd]) {
		namesEnd++
	}
	names := fields[cursor:namesEnd]
	cursor = namesEnd

	if ov.beforeNames != nil {
		names = ov.beforeNames(&rec, names)
	}

	// Fixed-capacity assignment into the six name slots; names beyond the
	// capacity are silently dropped.
	slots := ov.nameSlots
	for i, name := range names {
		slot := i
		if slots != nil {
			if i >= len(slots) {
				break
			}
			slot = slots[i]
		}
		if slot >= nameSlots {
			continue
		}
		rec.setNameSlot(slot, name)
	}

	// Trailing fields in fixed order, each optional.
	if cursor < len(fields) && IsAltPartNumber(fields[cursor]) {
		rec.PartNumberAlt = fields[cursor]
		cursor++
	}
	if cursor < len(fields) && IsReferenceNumber(fields[cursor]) {
		rec.ReferenceNumber = fields[cursor]
		cursor++
	}
	if cursor < len(fields) {
		rec.AdditionalInfo = fields[cursor]
		cursor++
	}

	rest := fields[cursor:]
	if ov.afterCursor != nil {
		rest = ov.afterCursor(rest)
	}

	if len(rest) > 0 {
		rec.ExtraData = strings.Join(rest, ExtraDataSeparator)
	} else {
		rec.ExtraData = ExtraDataPlaceholder
	}

	return rec
}
