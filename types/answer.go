package types

import (
	"encoding/json"
	"path/filepath"
	"strings"
)

// Answer is the finalized snapshot of a filled-in report form. It is handed
// to the compiler by value and not modified afterwards.
type Answer struct {
	Category   Category
	ReportType ReportType

	Date      string
	Hour      string
	Place     string
	Equipment string
	People    string

	// Situations holds the checked predefined situations in the order they
	// were ticked. Other is the free-text "other" situation, "" when absent.
	Situations []Situation
	Other      string

	Description string

	Injury Injury
	Organs []Organ

	Comments string

	// Logo is an optional image path for the header.
	Logo string
	// Attachments are file paths, rendered in this order after the report.
	Attachments []string

	// SaveDir and Name form the output destination.
	SaveDir string
	Name    string
}

// HasSituation reports whether s was checked. SituationOther is checked
// exactly when free text is present.
func (a Answer) HasSituation(s Situation) bool {
	if s == SituationOther {
		return a.Other != ""
	}
	for _, got := range a.Situations {
		if got == s {
			return true
		}
	}
	return false
}

// Destination returns the output file path.
func (a Answer) Destination() string {
	return filepath.Join(a.SaveDir, a.Name)
}

// Validate checks the record invariants.
func (a Answer) Validate() error {
	seen := make(map[Situation]bool, len(a.Situations))
	for _, s := range a.Situations {
		if s < 1 || s >= SituationOther {
			return NewReportErrorf(ErrCodeInvalidInput, "situation %d is not a predefined situation", int(s))
		}
		if seen[s] {
			return NewReportErrorf(ErrCodeInvalidInput, "situation %s listed twice", s.Key())
		}
		seen[s] = true
	}

	if len(a.Organs) > 0 && !a.Injury.Bodily() {
		return NewReportErrorf(ErrCodeInvalidInput, "%d body regions given for an injury class without a body location", len(a.Organs))
	}
	organs := make(map[Organ]bool, len(a.Organs))
	for _, o := range a.Organs {
		if o < 1 || o > OrganCount {
			return NewReportErrorf(ErrCodeInvalidInput, "body region %d out of range", int(o))
		}
		if organs[o] {
			return NewReportErrorf(ErrCodeInvalidInput, "body region %s listed twice", o.Key())
		}
		organs[o] = true
	}

	if a.Category < CategoryUnset || a.Category > CategoryCount ||
		a.ReportType < ReportTypeUnset || a.ReportType > ReportTypeCount ||
		a.Injury < InjuryUnset || a.Injury > InjuryCount {
		return NewReportError(ErrCodeInvalidInput, "single-choice answer out of range")
	}
	return nil
}

// rawAnswer is the loosely-typed record written by the form.
type rawAnswer struct {
	Category    string   `json:"category"`
	ReportType  string   `json:"report type"`
	Date        string   `json:"date"`
	Hour        string   `json:"hour"`
	Place       string   `json:"place"`
	Equipment   string   `json:"equipment"`
	People      string   `json:"people"`
	Situation   []string `json:"situation"`
	Description string   `json:"description"`
	Injury      string   `json:"injury"`
	Organs      []string `json:"organs"`
	Comments    string   `json:"comments"`
	Logo        string   `json:"logo"`
	Attachment  []string `json:"attachment"`
	Save        string   `json:"save"`
	Name        string   `json:"name"`
}

// UnmarshalJSON reads the form's record, converting tag strings into the
// typed answers. A situation entry that is not a predefined tag is the
// free-text "other" answer; a bare "other" tag without text is ignored.
func (a *Answer) UnmarshalJSON(data []byte) error {
	var raw rawAnswer
	if err := json.Unmarshal(data, &raw); err != nil {
		return WrapError(ErrCodeInvalidInput, "malformed answer record", err)
	}

	var out Answer
	var err error
	if out.Category, err = ParseCategory(raw.Category); err != nil {
		return err
	}
	if out.ReportType, err = ParseReportType(raw.ReportType); err != nil {
		return err
	}
	if out.Injury, err = ParseInjury(raw.Injury); err != nil {
		return err
	}

	for _, entry := range raw.Situation {
		if s, ok := ParseSituation(entry); ok {
			if s != SituationOther {
				out.Situations = append(out.Situations, s)
			}
			continue
		}
		if out.Other != "" {
			return NewReportErrorf(ErrCodeInvalidInput, "more than one free-text situation: %q and %q", out.Other, entry)
		}
		out.Other = entry
	}

	for _, tag := range raw.Organs {
		o, err := ParseOrgan(tag)
		if err != nil {
			return err
		}
		out.Organs = append(out.Organs, o)
	}

	out.Date, out.Hour, out.Place = raw.Date, raw.Hour, raw.Place
	out.Equipment, out.People = raw.Equipment, raw.People
	// The form's text editor leaves left-to-right marks in pasted text.
	out.Description = strings.ReplaceAll(raw.Description, "\u200e", "")
	out.Comments = raw.Comments
	out.Logo = raw.Logo
	out.Attachments = raw.Attachment
	out.SaveDir, out.Name = raw.Save, raw.Name

	*a = out
	return nil
}

// DefaultFileName builds the suggested output name from the catalog title
// and the report date, e.g. "Report_12-03-2024.pdf".
func DefaultFileName(title, date string) string {
	return title + "_" + strings.ReplaceAll(date, "/", "-") + ".pdf"
}
