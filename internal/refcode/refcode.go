// Package refcode converts outcome records to and from their public
// reference codes:
//
//	SKL-<tag>-<DDMMYYYY>-T<rate>-R<roll>-<S|F>
//
// The same grammar with a GS prefix marks granted skill uses. Codes are
// shareable artifacts, so Decode works without any stored record.
package refcode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/KirkDiggler/rpg-atlas/internal/entities"
	"github.com/KirkDiggler/rpg-atlas/internal/errors"
)

const (
	dateLayout = "02012006"
	tagLength  = 4
	maxValue   = 99 // two digits
)

var codePattern = regexp.MustCompile(`^(SKL|GS)-([A-Z0-9]+)-(\d{8})-T(\d{1,2})-R(\d{1,2})-([SF])$`)

// Decoded is what a code alone reveals about an outcome.
type Decoded struct {
	Code        string               `json:"code"`
	Kind        entities.OutcomeKind `json:"kind"`
	Tag         string               `json:"tag"`
	Date        time.Time            `json:"date"`       // Midnight UTC; zero when the digits are no calendar day
	DateLabel   string               `json:"date_label"` // DD/MM/YYYY as written in the code
	SuccessRate int                  `json:"success_rate"`
	Roll        int                  `json:"roll"`
	Outcome     entities.Outcome     `json:"outcome"`
}

// Record expands the decoded fields into a partial outcome record.
func (d *Decoded) Record() *entities.OutcomeRecord {
	return &entities.OutcomeRecord{
		Kind:          d.Kind,
		Roll:          d.Roll,
		SuccessRate:   d.SuccessRate,
		Outcome:       d.Outcome,
		ReferenceCode: d.Code,
		UsedAt:        d.Date,
	}
}

// SkillTag derives the tag for a player: the last four alphanumerics of the
// id, uppercased.
func SkillTag(playerID string) string {
	var b strings.Builder
	for _, r := range playerID {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	tag := b.String()
	if len(tag) > tagLength {
		tag = tag[len(tag)-tagLength:]
	}
	return tag
}

// Encode renders a record as a reference code. The date is taken from
// UsedAt in its own location.
func Encode(r *entities.OutcomeRecord) (string, error) {
	if r == nil {
		return "", errors.InvalidArgument("record is required")
	}

	vb := errors.NewValidationBuilder()

	kind := r.Kind
	if kind == "" {
		kind = entities.OutcomeKindSkill
	}
	errors.ValidateEnum("kind", string(kind), []string{string(entities.OutcomeKindSkill), string(entities.OutcomeKindGranted)}, vb)

	tag := SkillTag(r.PlayerID)
	if tag == "" {
		vb.InvalidField("player_id", "no alphanumeric characters to tag")
	}

	errors.ValidateRange("success_rate", r.SuccessRate, 0, maxValue, vb)
	errors.ValidateRange("roll", r.Roll, 0, maxValue, vb)

	var flag string
	switch r.Outcome {
	case entities.OutcomeSuccess:
		flag = "S"
	case entities.OutcomeFail:
		flag = "F"
	default:
		vb.InvalidField("outcome", "only success or fail can be encoded")
	}

	if r.UsedAt.IsZero() {
		vb.RequiredField("used_at")
	} else if y := r.UsedAt.Year(); y < 1000 || y > 9999 {
		vb.InvalidField("used_at", "year must have four digits")
	}

	if err := vb.Build(); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s-%s-%s-T%d-R%d-%s", kind, tag, r.UsedAt.Format(dateLayout), r.SuccessRate, r.Roll, flag), nil
}

// Decode parses a code. It returns nil for anything that does not match the
// grammar. Any eight date digits are accepted.
func Decode(code string) *Decoded {
	m := codePattern.FindStringSubmatch(code)
	if m == nil {
		return nil
	}

	digits := m[3]
	date, _ := time.Parse(dateLayout, digits)

	// the pattern bounds both groups to two digits
	rate, _ := strconv.Atoi(m[4])
	roll, _ := strconv.Atoi(m[5])

	outcome := entities.OutcomeFail
	if m[6] == "S" {
		outcome = entities.OutcomeSuccess
	}

	return &Decoded{
		Code:        code,
		Kind:        entities.OutcomeKind(m[1]),
		Tag:         m[2],
		Date:        date,
		DateLabel:   digits[0:2] + "/" + digits[2:4] + "/" + digits[4:8],
		SuccessRate: rate,
		Roll:        roll,
		Outcome:     outcome,
	}
}
