package phasedeuce

import (
	"hash/adler32"
	"strconv"
	"strings"
)

// Column layout of a stored row. The checksum always sits in the fifth
// column; rows that grew extra columns in later revisions keep the first
// five stable.
const (
	columnUnixTime = iota
	columnFullName
	columnEmailAddress
	columnPhoneNumber
	columnChecksum

	fieldCount = 5
)

// EncodeRow serializes one identity into the stored field layout:
//
//	unix_time, full_name, email_address, phone_number, checksum
//
// CRLF and bare CR inside the identity text are folded to LF first: CSV
// readers fold CRLF to LF inside quoted fields, so the checksum must cover
// the spelling that survives a round trip. The timestamp is rendered as a
// base-10 string and the checksum covers the four data fields in column
// order; both numbers are carried as text so that verification can
// recompute over exactly what was stored.
func EncodeRow(unixTime int64, id Identity) []string {
	ts := strconv.FormatInt(unixTime, 10)
	name := normalizeNewlines(id.Name)
	email := normalizeNewlines(id.Email)
	phone := normalizeNewlines(id.Phone)
	sum := rowChecksum(ts, name, email, phone)
	return []string{
		ts,
		name,
		email,
		phone,
		strconv.FormatUint(uint64(sum), 10),
	}
}

// normalizeNewlines folds CRLF and bare CR to LF, the one line-ending
// spelling that survives a quoted-field CSV round trip on every platform.
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// rowChecksum computes Adler-32 over the UTF-8 bytes of the given fields,
// concatenated in order with no separator.
func rowChecksum(fields ...string) uint32 {
	h := adler32.New()
	for _, f := range fields {
		_, _ = h.Write([]byte(f))
	}
	return h.Sum32()
}
