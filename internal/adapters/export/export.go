// Package export renders stored assessments as CSV for spreadsheet use.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/okian/giftmatch/internal/domain/model"
	"github.com/okian/giftmatch/internal/domain/types"
)

// ContentType is the media type of the export.
const ContentType = "text/csv"

// dateLayout matches a US short date, e.g. 3/10/2026.
const dateLayout = "1/2/2006"

const topGiftColumns = 3

// Header returns the column names in output order.
func Header() []string {
	h := []string{"ID", "First Name", "Last Name", "Email", "Date"}
	for _, g := range types.Gifts() {
		h = append(h, g.DisplayName())
	}
	for i := 1; i <= topGiftColumns; i++ {
		h = append(h, "Top Gift "+strconv.Itoa(i))
	}
	return h
}

// Filename returns the attachment name for an export taken at now.
func Filename(now time.Time) string {
	return fmt.Sprintf("spiritual-gifts-assessments-%s.csv", now.UTC().Format(model.DateLayout))
}

// Write emits the header and one row per assessment, in the given order.
// The header is bare; every data cell is quoted with embedded quotes doubled.
// Rows are separated by a single newline.
func Write(w io.Writer, assessments []model.Assessment) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(Header(), ",")); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for i := range assessments {
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("export: write row: %w", err)
		}
		if _, err := bw.WriteString(row(&assessments[i])); err != nil {
			return fmt.Errorf("export: write row: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}
	return nil
}

func row(a *model.Assessment) string {
	cells := []string{a.ID, a.FirstName, a.LastName, a.Email, a.CreatedAt.UTC().Format(dateLayout)}
	for _, g := range types.Gifts() {
		cells = append(cells, strconv.Itoa(a.Result.GiftScores[g]))
	}
	for i := 0; i < topGiftColumns; i++ {
		cells = append(cells, string(a.TopGift(i)))
	}
	for i, c := range cells {
		cells[i] = quote(c)
	}
	return strings.Join(cells, ",")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
