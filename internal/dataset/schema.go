package dataset

import (
	"strings"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/shared/apperror"
)

// Canonical column names the pipeline understands.
const (
	ColGender               = "Gender"
	ColDepartment           = "Department"
	ColPosition             = "Position"
	ColPositionAfterJoining = "Position After Joining"
	ColStatus               = "Employee Status"
	ColExitType             = "Exit Type"
	ColExitReason           = "Exit Reason Category"
	ColJoinDate             = "Join Date"
	ColExitDate             = "Exit Date"
	ColBirthday             = "Birthday Date"
	ColProbationEnd         = "Probation Period End Date"
	ColType                 = "Type"
	ColVendor               = "Vendor"
	ColNationality          = "Nationality"
	ColManagerCRM           = "Direct Manager CRM while Resignation"
)

// RequiredColumns gate ingestion: a table missing any of these is not a
// usable HR sheet and the load aborts before downstream stages see it.
var RequiredColumns = []string{
	ColGender, ColDepartment, ColPosition, ColStatus, ColExitType,
}

// Legacy header spellings mapped to canonical names. The keys are the
// post-cleanup forms (newlines already collapsed to spaces).
var renameMap = map[string]string{
	"Join Date (yyyy/mm/dd)":   ColJoinDate,
	"Exit Date yyyy/mm/dd":     ColExitDate,
	"Position (After Joining)": ColPositionAfterJoining,
}

// reverseRenameMap restores the original header conventions on save,
// embedded newlines included. It must stay the exact inverse of
// renameMap as the source file writes those headers across two lines.
var reverseRenameMap = map[string]string{
	ColJoinDate:             "Join Date\n(yyyy/mm/dd)",
	ColExitDate:             "Exit Date\nyyyy/mm/dd",
	ColPositionAfterJoining: "Position\n(After Joining)",
}

// CleanHeader strips embedded newlines and surrounding whitespace.
func CleanHeader(h string) string {
	return strings.TrimSpace(strings.ReplaceAll(h, "\n", " "))
}

// NormalizeHeaders cleans every header and applies the legacy rename
// map. Unknown headers pass through untouched; nothing is dropped or
// reordered and this step never fails.
func NormalizeHeaders(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		clean := CleanHeader(h)
		if canonical, ok := renameMap[clean]; ok {
			clean = canonical
		}
		out[i] = clean
	}
	return out
}

// ValidateRequired returns a schema error naming every required column
// the table lacks, or nil when the table is ingestible.
func ValidateRequired(headers []string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	var missing []string
	for _, col := range RequiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return apperror.MissingColumns(missing)
	}
	return nil
}

// DetectNameColumn finds the header carrying employee names. Headers
// containing both "full" and "name" win; otherwise any header with
// "name" except "Bank Name" is accepted. Empty string means no match.
func DetectNameColumn(headers []string) string {
	for _, h := range headers {
		lower := strings.ToLower(h)
		if strings.Contains(lower, "full") && strings.Contains(lower, "name") {
			return h
		}
	}
	for _, h := range headers {
		if strings.Contains(strings.ToLower(h), "name") && h != "Bank Name" {
			return h
		}
	}
	return ""
}
