// Package export renders the order history as CSV, XLSX and printable HTML.
package export

import (
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/encomendas/internal/domain/errors"
	"github.com/polkiloo/encomendas/internal/domain/model"
)

// Columns is the header shared by the CSV and XLSX exports.
var Columns = []string{"Cliente", "Contato", "Produto", "CodInterno", "DataPedido", "DataChegada", "Status", "Observacao"}

// Filename returns historico_<day>.<ext> for the day of now.
func Filename(now time.Time, ext string) string {
	return fmt.Sprintf("historico_%s.%s", model.DateOf(now), ext)
}

func row(o model.Order) []string {
	chegada := ""
	if o.DataChegada != nil {
		chegada = o.DataChegada.String()
	}
	return []string{
		o.Cliente,
		o.Contato,
		o.Produto,
		o.CodInterno,
		o.DataPedido.String(),
		chegada,
		string(o.Status),
		strings.ReplaceAll(o.Observacao, "\n", " "),
	}
}

func ensureRows(orders []model.Order) error {
	if len(orders) == 0 {
		return domainErrors.ErrNothingToExport
	}
	return nil
}
