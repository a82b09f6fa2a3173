package export

import (
	"html/template"
	"io"

	"github.com/polkiloo/encomendas/internal/domain/model"
)

// PrintTitle heads the printable history page.
const PrintTitle = "Histórico de Pedidos"

var printTemplate = template.Must(template.New("print").Parse(`<html>
  <head>
    <title>{{.Title}}</title>
    <style>
      body { font-family: Arial, sans-serif; padding: 16px; }
      h2 { margin-top: 0; }
      table { width: 100%; border-collapse: collapse; }
      th, td { border: 1px solid #ccc; padding: 8px; font-size: 12px; }
      th { background: #f2f2f2; }
    </style>
  </head>
  <body>
    <h2>{{.Title}}</h2>
    <table>
      <thead>
        <tr>
          <th>Cliente</th>
          <th>Contato</th>
          <th>Produto</th>
          <th>Cód. Interno</th>
          <th>Pedido</th>
          <th>Chegada</th>
          <th>Status</th>
        </tr>
      </thead>
      <tbody>
{{- range .Rows}}
        <tr>
          <td>{{.Cliente}}</td>
          <td>{{or .Contato "-"}}</td>
          <td>{{.Produto}}</td>
          <td>{{or .CodInterno "-"}}</td>
          <td>{{or .DataPedido "-"}}</td>
          <td>{{or .DataChegada "-"}}</td>
          <td>{{.Status}}</td>
        </tr>
{{- end}}
      </tbody>
    </table>
  </body>
</html>
`))

type printRow struct {
	Cliente     string
	Contato     string
	Produto     string
	CodInterno  string
	DataPedido  string
	DataChegada string
	Status      string
}

// WritePrint renders orders as a printable HTML table. Values are escaped.
// An empty selection renders an empty table.
func WritePrint(w io.Writer, orders []model.Order) error {
	rows := make([]printRow, 0, len(orders))
	for _, o := range orders {
		r := row(o)
		rows = append(rows, printRow{
			Cliente:     r[0],
			Contato:     r[1],
			Produto:     r[2],
			CodInterno:  r[3],
			DataPedido:  r[4],
			DataChegada: r[5],
			Status:      r[6],
		})
	}
	return printTemplate.Execute(w, struct {
		Title string
		Rows  []printRow
	}{Title: PrintTitle, Rows: rows})
}
