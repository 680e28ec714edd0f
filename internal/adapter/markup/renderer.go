// Package markup renders results and errors as HTML table-row fragments.
package markup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/linaank/web1/internal/domain"
	apperrors "github.com/linaank/web1/internal/platform/errors"
	"github.com/linaank/web1/internal/platform/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TimestampLayout formats the row timestamp as yyyy-MM-dd HH:mm:ss.
const TimestampLayout = "2006-01-02 15:04:05"

// Columns is the number of cells in a result row.
const Columns = 6

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape replaces &, < and > with their entities.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Renderer renders fragments in one fixed locale.
type Renderer struct {
	printer *message.Printer
}

// NewRenderer creates a renderer for the given locale.
func NewRenderer(tag language.Tag) *Renderer {
	return &Renderer{printer: i18n.Printer(tag)}
}

// Row renders a result as a single <tr> with six cells.
func (r *Renderer) Row(res domain.Result) string {
	outcome := i18n.MsgMiss
	if res.Hit {
		outcome = i18n.MsgHit
	}

	var b strings.Builder
	b.Grow(160)
	b.WriteString("<tr>")
	writeCell(&b, formatNumber(res.X))
	writeCell(&b, formatNumber(res.Y))
	writeCell(&b, formatNumber(res.R))
	writeCell(&b, Escape(r.printer.Sprintf(outcome)))
	writeCell(&b, res.At.Format(TimestampLayout))
	writeCell(&b, FormatElapsed(res))
	b.WriteString("</tr>")
	return b.String()
}

// Error renders a localized error message as a full-width row.
func (r *Renderer) Error(err *apperrors.Error) string {
	return r.ErrorText(r.Message(err))
}

// ErrorText renders an already localized message as a full-width row.
func (r *Renderer) ErrorText(msg string) string {
	text := r.printer.Sprintf(i18n.MsgErrorPrefix, msg)
	return fmt.Sprintf(`<tr><td colspan="%d" style="color:red;">%s</td></tr>`, Columns, Escape(text))
}

// Message localizes the error's message key.
func (r *Renderer) Message(err *apperrors.Error) string {
	return r.printer.Sprintf(err.Message, err.Args...)
}

// Text localizes a bare message key.
func (r *Renderer) Text(key string, args ...any) string {
	return r.printer.Sprintf(key, args...)
}

// Rows concatenates stored fragments in the given order.
func Rows(rows []string) string {
	return strings.Join(rows, "")
}

// FormatElapsed renders the evaluation duration as milliseconds with three decimals.
func FormatElapsed(res domain.Result) string {
	ms := float64(res.Elapsed.Nanoseconds()) / 1e6
	return strconv.FormatFloat(ms, 'f', 3, 64) + " ms"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeCell(b *strings.Builder, s string) {
	b.WriteString("<td>")
	b.WriteString(s)
	b.WriteString("</td>")
}
