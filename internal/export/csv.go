package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"hideout-tracker/internal/catalog"
)

// CSV writes one station's craft table as comma-separated text with a
// header row. encoding/csv handles quoting for names containing the
// delimiter.
func CSV(w io.Writer, crafts []catalog.Craft) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, c := range crafts {
		if err := cw.Write(row(c)); err != nil {
			return fmt.Errorf("write row %q: %w", c.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
