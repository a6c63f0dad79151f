package dataset

import (
	"github.com/google/uuid"
)

// build maps normalized rows onto Employee records. Known canonical
// columns land in typed fields; everything else is preserved verbatim
// in Extra so the round-trip never loses a column.
func build(headers []string, rows [][]string) *Dataset {
	d := &Dataset{
		Headers:    headers,
		NameColumn: DetectNameColumn(headers),
	}

	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}
	d.Columns = ColumnSet{
		JoinDate:             present[ColJoinDate],
		ExitDate:             present[ColExitDate],
		BirthdayDate:         present[ColBirthday],
		ProbationEndDate:     present[ColProbationEnd],
		EmploymentType:       present[ColType],
		Vendor:               present[ColVendor],
		Nationality:          present[ColNationality],
		PositionAfterJoining: present[ColPositionAfterJoining],
		ManagerCRM:           present[ColManagerCRM],
	}

	for _, row := range rows {
		e := &Employee{ID: uuid.New(), Extra: map[string]string{}}
		for i, h := range headers {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			setField(d, e, h, cell)
		}
		d.Employees = append(d.Employees, e)
	}
	return d
}

func setField(d *Dataset, e *Employee, header, cell string) {
	if d.NameColumn != "" && header == d.NameColumn {
		e.FullName = cell
		return
	}
	switch header {
	case ColGender:
		e.Gender = cell
	case ColDepartment:
		e.Department = cell
	case ColPosition:
		e.Position = cell
	case ColStatus:
		e.Status = cell
	case ColExitType:
		e.ExitType = cell
	case ColExitReason:
		e.ExitReasonCategory = cell
	case ColJoinDate:
		e.JoinDate = ParseDate(cell)
	case ColExitDate:
		e.ExitDate = ParseDate(cell)
	case ColBirthday:
		e.BirthdayDate = ParseDate(cell)
	case ColProbationEnd:
		e.ProbationEndDate = ParseDate(cell)
	case ColPositionAfterJoining:
		e.PositionAfterJoining = optional(cell)
	case ColType:
		e.EmploymentType = optional(cell)
	case ColVendor:
		e.Vendor = optional(cell)
	case ColNationality:
		e.Nationality = optional(cell)
	case ColManagerCRM:
		e.ManagerCRM = optional(cell)
	default:
		e.Extra[header] = cell
	}
}

func optional(cell string) *string {
	if cell == "" {
		return nil
	}
	return &cell
}
