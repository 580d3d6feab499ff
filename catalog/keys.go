package catalog

import "github.com/benedoc-inc/nearmiss/types"

// Fixed keys of the report template.
const (
	KeyTitle       = "title"
	KeyPDFTitle    = "pdf_title"
	KeyCategory    = "category_0"
	KeyReportType  = "report_0"
	KeyPeople      = "people"
	KeyDate        = "date"
	KeyHour        = "hour"
	KeyPlace       = "place"
	KeyEquipment   = "equipment"
	KeySituation   = "situation_0"
	KeyDescription = "description"
	KeyInjury      = "injury_0"
	KeyComments    = "injury_5"
	KeyBody        = "pdf_body"
)

// RequiredKeys returns every key the report sections read, in a stable order.
func RequiredKeys() []string {
	keys := []string{
		KeyTitle, KeyPDFTitle,
		KeyCategory, KeyReportType,
		KeyPeople, KeyDate, KeyHour, KeyPlace, KeyEquipment,
		KeySituation, KeyDescription,
		KeyInjury, KeyComments, KeyBody,
	}
	for _, c := range types.Categories() {
		keys = append(keys, c.Key())
	}
	for _, r := range types.ReportTypes() {
		keys = append(keys, r.Key())
	}
	for i := 1; i <= types.SituationCount; i++ {
		keys = append(keys, types.Situation(i).Key())
	}
	for _, inj := range types.Injuries() {
		keys = append(keys, inj.Key())
	}
	for i := 1; i <= types.OrganCount; i++ {
		keys = append(keys, types.Organ(i).Key())
	}
	return keys
}
