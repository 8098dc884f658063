package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jortega-dev/tienda-admin/internal/service/models/customer"
	"github.com/jortega-dev/tienda-admin/internal/service/models/order"
	"github.com/jortega-dev/tienda-admin/internal/service/models/orderline"
	"github.com/jortega-dev/tienda-admin/internal/service/models/product"
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
}

func renderCustomers(out io.Writer, customers []customer.Customer) {
	if len(customers) == 0 {
		fmt.Fprintln(out, "No hay clientes registrados")

		return
	}

	table := newTable(out)
	fmt.Fprintln(table, "ID\tNOMBRE\tEMAIL\tTELÉFONO")
	for _, c := range customers {
		phone := c.Phone
		if phone == "" {
			phone = "-"
		}
		fmt.Fprintf(table, "%d\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, phone)
	}
	table.Flush()
}

func renderProducts(out io.Writer, products []product.Product) {
	if len(products) == 0 {
		fmt.Fprintln(out, "No hay productos registrados")

		return
	}

	table := newTable(out)
	fmt.Fprintln(table, "ID\tNOMBRE\tPRECIO\tDESCRIPCIÓN")
	for _, p := range products {
		fmt.Fprintf(table, "%d\t%s\t$%.2f\t%s\n", p.ID, p.Name, p.Price, p.Description)
	}
	table.Flush()
}

func renderOrders(out io.Writer, orders []order.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(out, "No hay pedidos registrados")

		return
	}

	table := newTable(out)
	fmt.Fprintln(table, "ID\tCLIENTE\tEMAIL\tFECHA")
	for _, o := range orders {
		fmt.Fprintf(table, "%d\t%s\t%s\t%s\n", o.ID, o.Customer.Name, o.Customer.Email, order.DateOnly(o.OrderDate))
	}
	table.Flush()
}

func renderOrderLines(out io.Writer, lines []orderline.OrderLine) {
	if len(lines) == 0 {
		fmt.Fprintln(out, "No hay detalles registrados")

		return
	}

	table := newTable(out)
	fmt.Fprintln(table, "ID\tPEDIDO\tCLIENTE\tPRODUCTO\tCANTIDAD\tPRECIO\tSUBTOTAL")
	for _, l := range lines {
		fmt.Fprintf(table, "%d\t#%d\t%s\t%s\t%d\t$%.2f\t$%.2f\n",
			l.ID, l.OrderID, l.Order.CustomerName, l.Product.Name, l.Quantity, l.Product.Price, l.Subtotal)
	}
	table.Flush()
}
