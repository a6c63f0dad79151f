package dataset

import (
	"encoding/csv"
	"io"
)

// RawTable is the loosely structured tabular input and output format:
// a header row plus string cells, empty string meaning null.
type RawTable struct {
	Headers []string
	Rows    [][]string
}

// ReadTable parses CSV bytes into a raw table. Short rows are padded
// implicitly by the column mapper; ragged input is tolerated.
func ReadTable(r io.Reader) (*RawTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return &RawTable{}, nil
	}
	return &RawTable{Headers: records[0], Rows: records[1:]}, nil
}

// WriteTable renders a raw table as CSV.
func WriteTable(w io.Writer, t *RawTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Export reverses the load for write-back: source columns only, in
// their original order, with the legacy header spellings restored via
// the exact inverse of the rename map. Derived columns never appear,
// so repeated load→edit→save cycles do not accumulate computed cruft.
func Export(d *Dataset) *RawTable {
	headers := make([]string, len(d.Headers))
	for i, h := range d.Headers {
		if legacy, ok := reverseRenameMap[h]; ok {
			headers[i] = legacy
		} else {
			headers[i] = h
		}
	}

	rows := make([][]string, 0, len(d.Employees))
	for _, e := range d.Employees {
		row := make([]string, len(d.Headers))
		for i, h := range d.Headers {
			row[i] = fieldValue(d, e, h)
		}
		rows = append(rows, row)
	}
	return &RawTable{Headers: headers, Rows: rows}
}

func fieldValue(d *Dataset, e *Employee, header string) string {
	if d.NameColumn != "" && header == d.NameColumn {
		return e.FullName
	}
	switch header {
	case ColGender:
		return e.Gender
	case ColDepartment:
		return e.Department
	case ColPosition:
		return e.Position
	case ColStatus:
		return e.Status
	case ColExitType:
		return e.ExitType
	case ColExitReason:
		return e.ExitReasonCategory
	case ColJoinDate:
		return FormatDate(e.JoinDate)
	case ColExitDate:
		return FormatDate(e.ExitDate)
	case ColBirthday:
		return FormatDate(e.BirthdayDate)
	case ColProbationEnd:
		return FormatDate(e.ProbationEndDate)
	case ColPositionAfterJoining:
		return strValue(e.PositionAfterJoining)
	case ColType:
		return strValue(e.EmploymentType)
	case ColVendor:
		return strValue(e.Vendor)
	case ColNationality:
		return strValue(e.Nationality)
	case ColManagerCRM:
		return strValue(e.ManagerCRM)
	default:
		return e.Extra[header]
	}
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
