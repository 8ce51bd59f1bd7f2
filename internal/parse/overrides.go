package parse

// recordOverride adjusts classification for a single serial number. The
// source dumps contain a handful of records with known defects; each gets an
// entry here keyed by serial number so the exception set stays auditable
// without touching the classifier walk.
//
// Hooks fire at the two points where defects occur: just before the name run
// is assigned to slots, and after the positional fields have consumed the
// cursor.
type recordOverride struct {
	// beforeNames may rewrite the tentative part number and the collected
	// name run before slot assignment.
	beforeNames func(rec *Record, names []string) []string

	// nameSlots replaces the sequential slot order: names[i] goes to slot
	// nameSlots[i]. Nil keeps the default 0..5 order.
	nameSlots []int

	// afterCursor filters the tokens left over after Additional
	// Information, before they are joined into Extra Data.
	afterCursor func(rest []string) []string
}

// recordOverrides is the finite exception table.
var recordOverrides = map[string]recordOverride{
	// Record 20 has no real part number: the token in the part number
	// position is its first name variant, and the name variants arrive in a
	// scrambled language order.
	"20": {
		beforeNames: func(rec *Record, names []string) []string {
			names = append([]string{rec.PartNumber}, names...)
			rec.PartNumber = ""
			return names
		},
		// position: 0      1       2       3       4       5
		// slot:     lang 2 english lang 4  lang 1  lang 3  lang 5
		nameSlots: []int{2, 0, 4, 1, 3, 5},
	},

	// Record 61 trails binary garbage after its real fields; none of it has
	// semantic value.
	"61": {
		afterCursor: func([]string) []string { return nil },
	},
}
