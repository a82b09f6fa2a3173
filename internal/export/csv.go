package export

import (
	"io"
	"strings"

	"github.com/polkiloo/encomendas/internal/domain/model"
)

// WriteCSV writes orders as ';' separated lines joined by '\n'. The header is bare
// and every value is quoted with inner quotes doubled.
func WriteCSV(w io.Writer, orders []model.Order) error {
	if err := ensureRows(orders); err != nil {
		return err
	}

	lines := make([]string, 0, len(orders)+1)
	lines = append(lines, strings.Join(Columns, ";"))
	for _, o := range orders {
		values := row(o)
		for i, v := range values {
			values[i] = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
		}
		lines = append(lines, strings.Join(values, ";"))
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}
