package parse

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		chunk []string
		want  Record
	}{
		{
			name:  "serial only leaves every other field empty",
			chunk: []string{"22"},
			want:  Record{SerialNumber: "22"},
		},
		{
			name:  "part number only",
			chunk: []string{"12", "PN-1"},
			want: Record{
				SerialNumber: "12",
				PartNumber:   "PN-1",
				ExtraData:    ExtraDataPlaceholder,
			},
		},
		{
			name: "full record",
			chunk: []string{
				"12", "PN-1", "Bolt", "Boulon", "Schraube",
				"X530.108.146.000", "72311106", "left-hand thread",
			},
			want: Record{
				SerialNumber:    "12",
				PartNumber:      "PN-1",
				NameEnglish:     "Bolt",
				NameLang1:       "Boulon",
				NameLang2:       "Schraube",
				PartNumberAlt:   "X530.108.146.000",
				ReferenceNumber: "72311106",
				AdditionalInfo:  "left-hand thread",
				ExtraData:       ExtraDataPlaceholder,
			},
		},
		{
			name: "reference number without other format",
			chunk: []string{
				"13", "PN-2", "Washer", "72311107",
			},
			want: Record{
				SerialNumber:    "13",
				PartNumber:      "PN-2",
				NameEnglish:     "Washer",
				ReferenceNumber: "72311107",
				ExtraData:       ExtraDataPlaceholder,
			},
		},
		{
			name: "name run extends to end when nothing matches a stop shape",
			chunk: []string{
				"14", "PN-3", "Nut", "Écrou", "Mutter",
			},
			want: Record{
				SerialNumber: "14",
				PartNumber:   "PN-3",
				NameEnglish:  "Nut",
				NameLang1:    "Écrou",
				NameLang2:    "Mutter",
				ExtraData:    ExtraDataPlaceholder,
			},
		},
		{
			name: "seventh name is silently dropped",
			chunk: []string{
				"15", "PN-4",
				"Alpha", "Beta", "Gamma", "Delta", "Eps", "Zeta", "Overflow",
				"72311108",
			},
			want: Record{
				SerialNumber:    "15",
				PartNumber:      "PN-4",
				NameEnglish:     "Alpha",
				NameLang1:       "Beta",
				NameLang2:       "Gamma",
				NameLang3:       "Delta",
				NameLang4:       "Eps",
				NameLang5:       "Zeta",
				ReferenceNumber: "72311108",
				ExtraData:       ExtraDataPlaceholder,
			},
		},
		{
			name: "leftover tokens join into extra data",
			chunk: []string{
				"16", "PN-5", "Pin", "72311109", "info", "foo", "bar",
			},
			want: Record{
				SerialNumber:    "16",
				PartNumber:      "PN-5",
				NameEnglish:     "Pin",
				ReferenceNumber: "72311109",
				AdditionalInfo:  "info",
				ExtraData:       "foo" + ExtraDataSeparator + "bar",
			},
		},
		{
			name: "additional information is a single token",
			chunk: []string{
				"17", "PN-6", "Clip", "note one", "note two",
			},
			// Free-text notes do not match a stop shape, so they are
			// swallowed by the name run; nothing remains past the cursor.
			want: Record{
				SerialNumber: "17",
				PartNumber:   "PN-6",
				NameEnglish:  "Clip",
				NameLang1:    "note one",
				NameLang2:    "note two",
				ExtraData:    ExtraDataPlaceholder,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.chunk)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClassify_Serial20NameRemap(t *testing.T) {
	// Record 20 has no part number; its tentative part number is the first
	// name variant and the collected names land in a fixed non-sequential
	// slot order.
	chunk := []string{"20", "X1", "A", "B", "C", "D", "E", "F", "72311110"}

	got := Classify(chunk)
	want := Record{
		SerialNumber:    "20",
		PartNumber:      "",
		NameLang2:       "X1",
		NameEnglish:     "A",
		NameLang4:       "B",
		NameLang1:       "C",
		NameLang3:       "D",
		NameLang5:       "E",
		// "F" is position 6 of the remapped run and is dropped.
		ReferenceNumber: "72311110",
		ExtraData:       ExtraDataPlaceholder,
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Classify() = %+v, want %+v", got, want)
	}
}

func TestClassify_Serial61DropsTrailing(t *testing.T) {
	chunk := []string{
		"61", "PN-61", "Gasket", "72311111", "info",
		"garbage1", "garbage2",
	}

	got := Classify(chunk)

	if got.ExtraData != ExtraDataPlaceholder {
		t.Errorf("ExtraData = %q, want placeholder %q", got.ExtraData, ExtraDataPlaceholder)
	}
	if got.AdditionalInfo != "info" {
		t.Errorf("AdditionalInfo = %q, want %q", got.AdditionalInfo, "info")
	}
}

func TestClassify_EmptyChunk(t *testing.T) {
	got := Classify(nil)
	if !reflect.DeepEqual(got, Record{}) {
		t.Errorf("Classify(nil) = %+v, want zero record", got)
	}
}

func TestRecord_RowMatchesHeader(t *testing.T) {
	rec := Classify([]string{"12", "PN-1", "Bolt", "72311106"})

	header := Header()
	row := rec.Row()
	if len(header) != len(row) {
		t.Fatalf("header has %d columns, row has %d", len(header), len(row))
	}
	if header[0] != "Serial Number" || header[len(header)-1] != "Extra Data" {
		t.Errorf("unexpected header order: %q", header)
	}
	if row[0] != "12" {
		t.Errorf("row[0] = %q, want serial number", row[0])
	}
}
