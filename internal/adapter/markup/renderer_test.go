package markup

import (
	"errors"
	"testing"
	"time"

	"github.com/linaank/web1/internal/domain"
	apperrors "github.com/linaank/web1/internal/platform/errors"
	"github.com/linaank/web1/internal/platform/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

var _ domain.RowRenderer = (*Renderer)(nil)

func fixedResult(hit bool) domain.Result {
	return domain.Result{
		Query:   domain.Query{X: 1, Y: 1.5, R: 3},
		Hit:     hit,
		At:      time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		Elapsed: 1234567 * time.Nanosecond,
	}
}

func TestRow_English(t *testing.T) {
	r := NewRenderer(language.English)

	got := r.Row(fixedResult(true))

	assert.Equal(t,
		"<tr><td>1</td><td>1.5</td><td>3</td><td>Hit</td><td>2025-03-14 09:26:53</td><td>1.235 ms</td></tr>",
		got)
}

func TestRow_Miss(t *testing.T) {
	r := NewRenderer(language.English)

	assert.Contains(t, r.Row(fixedResult(false)), "<td>Miss</td>")
}

func TestRow_Russian(t *testing.T) {
	r := NewRenderer(language.Russian)

	assert.Contains(t, r.Row(fixedResult(true)), "<td>Попадание</td>")
	assert.Contains(t, r.Row(fixedResult(false)), "<td>Промах</td>")
}

func TestRow_NumberFormatting(t *testing.T) {
	r := NewRenderer(language.English)
	res := fixedResult(true)
	res.X = -0.1
	res.Y = -3
	res.R = 2.25

	assert.Contains(t, r.Row(res), "<td>-0.1</td><td>-3</td><td>2.25</td>")
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{0, "0.000 ms"},
		{500 * time.Nanosecond, "0.001 ms"},
		{42 * time.Microsecond, "0.042 ms"},
		{3 * time.Millisecond, "3.000 ms"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatElapsed(domain.Result{Elapsed: tt.elapsed}))
		})
	}
}

func TestError_Localized(t *testing.T) {
	en := NewRenderer(language.English)
	ru := NewRenderer(language.Russian)

	err := apperrors.MissingParameterError()

	assert.Equal(t,
		`<tr><td colspan="6" style="color:red;">Error: Missing required parameters x, y, r.</td></tr>`,
		en.Error(err))
	assert.Equal(t,
		`<tr><td colspan="6" style="color:red;">Ошибка: Отсутствуют обязательные параметры x, y, r.</td></tr>`,
		ru.Error(err))
}

func TestError_WithArgs(t *testing.T) {
	r := NewRenderer(language.English)

	assert.Contains(t, r.Error(apperrors.NotANumberError("x", nil)), "Error: Parameter x must be a number.")
	assert.Contains(t, r.Error(apperrors.InternalError(errors.New("secret detail"))), "Error: Server error: internal")
	assert.NotContains(t, r.Error(apperrors.InternalError(errors.New("secret detail"))), "secret detail")
}

func TestErrorText_EscapesMarkup(t *testing.T) {
	r := NewRenderer(language.English)

	got := r.ErrorText(`<script>alert("x")</script> & more`)

	assert.Contains(t, got, `&lt;script&gt;alert("x")&lt;/script&gt; &amp; more`)
	assert.NotContains(t, got, "<script>")
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "&amp;lt;", Escape("&lt;"))
	assert.Equal(t, "a &lt; b &gt; c", Escape("a < b > c"))
	assert.Equal(t, `"quoted" 'single'`, Escape(`"quoted" 'single'`))
}

func TestText(t *testing.T) {
	r := NewRenderer(language.English)

	assert.Equal(t, "Not found.", r.Text(i18n.MsgNotFound))
}

func TestRows(t *testing.T) {
	assert.Equal(t, "", Rows(nil))
	assert.Equal(t, "<tr>b</tr><tr>a</tr>", Rows([]string{"<tr>b</tr>", "<tr>a</tr>"}))
}
