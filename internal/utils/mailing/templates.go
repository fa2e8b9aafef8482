package mailing

import (
	"bytes"
	"html/template"
)

var orderPlacedTemplate = template.Must(template.New("order_placed").Parse(`
<p>Hi {{.Name}},</p>
<p>We received your order <b>{{.OrderID}}</b>.</p>
<table>
{{range .Items}}<tr><td>{{.Quantity}} x {{.Name}}</td><td>{{printf "%.2f" .Price}}</td></tr>
{{end}}</table>
<p>Tax: {{printf "%.2f" .Tax}}<br>Delivery: {{printf "%.2f" .DeliveryFee}}<br><b>Total: {{printf "%.2f" .Total}}</b></p>
<p>Delivering to: {{.Address}}</p>
`))

var orderStatusTemplate = template.Must(template.New("order_status").Parse(`
<p>Hi {{.Name}},</p>
<p>Your order <b>{{.OrderID}}</b> is now <b>{{.Status}}</b>.</p>
{{if .AppURL}}<p><a href="{{.AppURL}}/orders/{{.OrderID}}">View order</a></p>{{end}}
`))

type (
	OrderMailItem struct {
		Name     string
		Quantity int
		Price    float64
	}

	OrderPlacedMail struct {
		Name        string
		OrderID     string
		Items       []OrderMailItem
		Tax         float64
		DeliveryFee float64
		Total       float64
		Address     string
	}

	OrderStatusMail struct {
		Name    string
		OrderID string
		Status  string
		AppURL  string
	}
)

func RenderOrderPlaced(data OrderPlacedMail) (string, error) {
	var buf bytes.Buffer
	if err := orderPlacedTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func RenderOrderStatus(data OrderStatusMail) (string, error) {
	var buf bytes.Buffer
	if err := orderStatusTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
