// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emails

import (
	"fmt"
	"io"

	"github.com/pdiddy/pocket/pkg/types"
)

// ReportHeader is the first line of every report file.
const ReportHeader = "======= Extracted Emails ======="

// WriteReport renders r in the report file layout: the header and a blank
// line, one email per line, then a blank line and the two count lines.
func WriteReport(w io.Writer, r types.EmailReport) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", ReportHeader); err != nil {
		return err
	}
	for _, email := range r.Emails {
		if _, err := fmt.Fprintln(w, email); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nTotal Emails Found: %d\nUnique Emails: %d\n", r.Total, r.Unique)
	return err
}
