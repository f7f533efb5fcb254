package phasedeuce

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
)

// Identity is one synthetic person: the data half of a stored row.
type Identity struct {
	Name  string
	Email string
	Phone string
}

// IdentitySource yields a fresh identity per call. A store consumes exactly
// one identity per append.
type IdentitySource interface {
	NextIdentity() Identity
}

// nanpPhonePattern accepts a 10-digit North American Numbering Plan phone
// number in NPA-NXX-XXXX form (dots or nothing also pass as separators, and
// the area code may be parenthesized).
var nanpPhonePattern = regexp.MustCompile(
	`^\(?([2-9][0-8][0-9])\)?[-.]?([2-9][0-9]{2})[-.]?([0-9]{4})$`)

var firstNames = []string{
	"Robert", "Shawn", "William", "James", "Oliver", "Benjamin",
	"Elijah", "Lucas", "Dick", "Logan", "Alexander", "Ethan",
	"Jacob", "Michael", "Daniel", "Henry", "Jackson", "Sebastian",
	"Peter", "Matthew", "Samuel", "David", "Joseph", "Carter",
	"Mary", "Patricia", "Linda", "Barbara", "Elizabeth", "Jennifer",
	"Maria", "Susan", "Margaret", "Dorothy", "Lisa", "Nancy",
	"Karen", "Betty", "Helen", "Sandra", "Donna", "Carol",
	"Ruth", "Sharon", "Michelle", "Laura", "Sarah", "Kimberly",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Miller",
	"Davis", "Wilson", "Anderson", "Taylor", "Moore", "Thomas",
	"Jackson", "White", "Harris", "Martin", "Thompson", "Garcia",
	"Martinez", "Robinson", "Clark", "Rodriguez", "Lewis", "Lee",
	"Walker", "Hall", "Allen", "Young", "Hernandez", "King",
	"Wang", "Devi", "Zhang", "Li", "Liu", "Singh",
	"Yang", "Kumar", "Wu", "Xu",
}

var emailDomains = []string{
	"gmail.com", "outlook.com", "yahoo.com", "icloud.com", "aol.com", "mail.com",
}

// PersonSource draws pseudo-random identities from fixed name and domain
// tables. The generator is injected so callers control seeding; a
// PersonSource is not safe for concurrent use.
type PersonSource struct {
	rng *rand.Rand
}

// NewPersonSource returns a source backed by rng.
func NewPersonSource(rng *rand.Rand) *PersonSource {
	return &PersonSource{rng: rng}
}

// NextIdentity builds one identity: a full name from the tables, an email
// address derived from that name, and a NANP-valid phone number.
func (p *PersonSource) NextIdentity() Identity {
	first := firstNames[p.rng.Intn(len(firstNames))]
	last := lastNames[p.rng.Intn(len(lastNames))]
	return Identity{
		Name:  first + " " + last,
		Email: p.email(first, last),
		Phone: p.phone(),
	}
}

// email assembles a lowercase username in one of four styles at a random
// domain: first.last, last.first, firstlast, or flast.
func (p *PersonSource) email(first, last string) string {
	first = strings.ToLower(first)
	last = strings.ToLower(last)
	var user string
	switch p.rng.Intn(4) {
	case 0:
		user = first + "." + last
	case 1:
		user = last + "." + first
	case 2:
		user = first + last
	default:
		user = first[:1] + last
	}
	return user + "@" + emailDomains[p.rng.Intn(len(emailDomains))]
}

// phone draws NPA, NXX, and XXXX groups until the assembled number passes
// the NANP pattern. Groups are rendered without zero padding, so short or
// otherwise invalid draws simply fail the pattern and are redrawn.
func (p *PersonSource) phone() string {
	for {
		n := strconv.Itoa(p.rng.Intn(1000)) + "-" +
			strconv.Itoa(p.rng.Intn(1000)) + "-" +
			strconv.Itoa(p.rng.Intn(10000))
		if nanpPhonePattern.MatchString(n) {
			return n
		}
	}
}
