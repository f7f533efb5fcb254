package phasedeuce

import "strconv"

// Outcome classifies the result of a store operation. The zero value is
// OutcomeOK.
type Outcome int

// Store operation outcomes.
const (
	OutcomeOK               Outcome = iota // every checked row held a valid checksum
	OutcomeGeneralFailure                  // unclassified I/O or parse failure
	OutcomeChecksumMismatch                // a stored checksum disagrees with the recomputed value
	OutcomeCorruptRow                      // a row is structurally broken (short, or non-numeric checksum)
	OutcomeAccessDenied                    // filesystem permissions blocked the operation
)

// String returns a short human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeGeneralFailure:
		return "general failure"
	case OutcomeChecksumMismatch:
		return "checksum mismatch"
	case OutcomeCorruptRow:
		return "corrupt row"
	case OutcomeAccessDenied:
		return "access denied"
	}
	return "unknown"
}

// Failed reports whether the outcome is an operational failure: the store
// could not complete the requested read or write at all.
func (o Outcome) Failed() bool {
	return o == OutcomeGeneralFailure || o == OutcomeAccessDenied
}

// Warning reports whether the outcome flags damaged data in an otherwise
// readable log. Warnings never block further appends.
func (o Outcome) Warning() bool {
	return o == OutcomeChecksumMismatch || o == OutcomeCorruptRow
}

// VerifyFields checks a single stored row against its own checksum.
//
// A row needs at least fieldCount fields; anything shorter is corrupt, as is
// a checksum field that does not parse as an unsigned 32-bit integer. Extra
// trailing fields are ignored: the first five are what the checksum covers.
// The checksum is recomputed over the stored field text exactly as read, so
// a row keeps verifying across any number of decode/encode round trips.
func VerifyFields(fields []string) Outcome {
	if len(fields) < fieldCount {
		return OutcomeCorruptRow
	}
	stored, err := strconv.ParseUint(fields[columnChecksum], 10, 32)
	if err != nil {
		return OutcomeCorruptRow
	}
	fresh := rowChecksum(
		fields[columnUnixTime],
		fields[columnFullName],
		fields[columnEmailAddress],
		fields[columnPhoneNumber],
	)
	if uint32(stored) != fresh {
		return OutcomeChecksumMismatch
	}
	return OutcomeOK
}
