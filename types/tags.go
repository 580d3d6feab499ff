package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Tag counts of the fixed report template.
const (
	CategoryCount   = 2
	ReportTypeCount = 4
	InjuryCount     = 4
	SituationCount  = 30
	OrganCount      = 35
)

// unsetTag is how the form spells an unanswered single-choice question.
const unsetTag = "None"

// Category is the report category. The zero value is unset.
type Category int

const (
	CategoryUnset Category = iota
	Category1
	Category2
)

// ReportType is the kind of event being reported. The zero value is unset.
type ReportType int

const (
	ReportTypeUnset ReportType = iota
	ReportType1
	ReportType2
	ReportType3
	ReportType4
)

// Injury is the injury class. The zero value is unset; InjuryNone records
// that nobody was hurt.
type Injury int

const (
	InjuryUnset Injury = iota
	InjuryNone
	InjuryFirstAid
	InjuryMedical
	InjuryLostTime
)

// Situation is one of the predefined situations. SituationOther is the
// free-text slot and is never stored in Answer.Situations.
type Situation int

// SituationOther is the last row of the situation checklist.
const SituationOther Situation = SituationCount

// Organ is a body region on the body diagram, 1 through OrganCount.
type Organ int

// parseTag reads "<prefix>_<n>" with 1 <= n <= max. An empty string or
// "None" is reported as 0.
func parseTag(s, prefix string, max int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == unsetTag {
		return 0, nil
	}
	n, ok := tagNumber(s, prefix, max)
	if !ok {
		return 0, NewReportErrorf(ErrCodeInvalidInput, "unknown %s tag %q", prefix, s).
			WithContext("tag", s)
	}
	return n, nil
}

func tagNumber(s, prefix string, max int) (int, bool) {
	rest, ok := strings.CutPrefix(s, prefix+"_")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > max {
		return 0, false
	}
	return n, true
}

// ParseCategory parses "category_<n>"; "" and "None" yield CategoryUnset.
func ParseCategory(s string) (Category, error) {
	n, err := parseTag(s, "category", CategoryCount)
	return Category(n), err
}

// ParseReportType parses "report_<n>"; "" and "None" yield ReportTypeUnset.
func ParseReportType(s string) (ReportType, error) {
	n, err := parseTag(s, "report", ReportTypeCount)
	return ReportType(n), err
}

// ParseInjury parses "injury_<n>"; "" and "None" yield InjuryUnset.
func ParseInjury(s string) (Injury, error) {
	n, err := parseTag(s, "injury", InjuryCount)
	return Injury(n), err
}

// ParseSituation reports whether s is one of the predefined situation tags.
func ParseSituation(s string) (Situation, bool) {
	n, ok := tagNumber(s, "situation", SituationCount)
	return Situation(n), ok
}

// ParseOrgan parses "body_<n>".
func ParseOrgan(s string) (Organ, error) {
	n, ok := tagNumber(strings.TrimSpace(s), "body", OrganCount)
	if !ok {
		return 0, NewReportErrorf(ErrCodeInvalidInput, "unknown body tag %q", s).WithContext("tag", s)
	}
	return Organ(n), nil
}

// Key returns the catalog key of the category label, or "" when unset.
func (c Category) Key() string {
	if c <= CategoryUnset || c > CategoryCount {
		return ""
	}
	return fmt.Sprintf("category_%d", c)
}

// Key returns the catalog key of the report type label, or "" when unset.
func (r ReportType) Key() string {
	if r <= ReportTypeUnset || r > ReportTypeCount {
		return ""
	}
	return fmt.Sprintf("report_%d", r)
}

// Key returns the catalog key of the injury label, or "" when unset.
func (i Injury) Key() string {
	if i <= InjuryUnset || i > InjuryCount {
		return ""
	}
	return fmt.Sprintf("injury_%d", i)
}

// Bodily reports whether the injury class implies a location on the body.
func (i Injury) Bodily() bool {
	return i > InjuryNone && i <= InjuryCount
}

// Key returns the catalog key of the situation label.
func (s Situation) Key() string {
	return fmt.Sprintf("situation_%d", s)
}

// Key returns the catalog key of the body region name.
func (o Organ) Key() string {
	return fmt.Sprintf("body_%d", o)
}

// Categories lists every category in checklist order.
func Categories() []Category {
	return []Category{Category1, Category2}
}

// ReportTypes lists every report type in checklist order.
func ReportTypes() []ReportType {
	return []ReportType{ReportType1, ReportType2, ReportType3, ReportType4}
}

// Injuries lists every injury class in checklist order.
func Injuries() []Injury {
	return []Injury{InjuryNone, InjuryFirstAid, InjuryMedical, InjuryLostTime}
}
