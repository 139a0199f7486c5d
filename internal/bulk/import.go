// Package bulk imports coupon batches with per-row failure isolation.
package bulk

import "fmt"

// Row is one coupon spec in an import batch. Type selects the creation
// path: "domain" or "email".
type Row struct {
	Type            string  `json:"type"`
	Name            string  `json:"name"`
	Domain          string  `json:"domain,omitempty"`
	Email           string  `json:"email,omitempty"`
	DiscountPercent float64 `json:"discountPercent"`
	MaxSeats        int64   `json:"maxSeats,omitempty"`
	ExpiresAt       string  `json:"expiresAt,omitempty"`
}

// RowError records one failed row. Row numbers are 1-based.
type RowError struct {
	Row   int    `json:"row"`
	Name  string `json:"name"`
	Error string `json:"error"`
}

// Report accumulates the outcome of an import.
type Report struct {
	Created int        `json:"created"`
	Failed  int        `json:"failed"`
	Total   int        `json:"total"`
	Errors  []RowError `json:"errors,omitempty"`
}

// CreateFunc creates one coupon from a row.
type CreateFunc func(Row) error

// Import folds rows in input order through the create function matching
// each row's type. A row's failure is recorded in the report and does not
// stop the remaining rows.
func Import(rows []Row, createDomain, createEmail CreateFunc) Report {
	report := Report{Total: len(rows)}

	for i, row := range rows {
		var err error
		switch row.Type {
		case "domain":
			err = createDomain(row)
		case "email":
			err = createEmail(row)
		default:
			err = fmt.Errorf("Invalid coupon type: %s", row.Type)
		}

		if err != nil {
			name := row.Name
			if name == "" {
				name = fmt.Sprintf("Row %d", i+1)
			}
			report.Failed++
			report.Errors = append(report.Errors, RowError{
				Row:   i + 1,
				Name:  name,
				Error: err.Error(),
			})
			continue
		}

		report.Created++
	}

	return report
}
