package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jortega-dev/tienda-admin/internal/service/controller"
	"github.com/jortega-dev/tienda-admin/internal/service/models/customer"
	"github.com/jortega-dev/tienda-admin/internal/service/models/order"
	"github.com/jortega-dev/tienda-admin/internal/service/models/orderline"
	"github.com/jortega-dev/tienda-admin/internal/service/models/product"
	"github.com/jortega-dev/tienda-admin/internal/service/resources"
	"github.com/spf13/cobra"
)

// newResourceCommand builds the list/create/update/delete command group
// for one entity type. All per-entity variation comes from the schema, so
// the four resources share this single implementation.
func newResourceCommand[T controller.Entity](
	env *cliEnv,
	use, short string,
	schema controller.Schema[T],
	pick func(*resources.Set) *controller.Controller[T],
	render func(io.Writer, []T),
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Lista todos los registros",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := pick(env.resources())
			if err := ctrl.Refresh(cmd.Context()); err != nil {
				return err
			}
			render(env.out, ctrl.Records())

			return nil
		},
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Crea un registro nuevo",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := pick(env.resources())
			for _, f := range schema.Fields {
				value, err := cmd.Flags().GetString(f.Name)
				if err != nil {
					return err
				}
				ctrl.SetField(f.Name, value)
			}

			return ctrl.Submit(cmd.Context())
		},
	}
	registerFieldFlags(createCmd, schema.Fields, true)

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Actualiza un registro existente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("identificador no válido: %q", args[0])
			}

			ctrl := pick(env.resources())
			if err := ctrl.Refresh(cmd.Context()); err != nil {
				return err
			}

			entity, ok := findByID(ctrl.Records(), id)
			if !ok {
				return fmt.Errorf("no existe un registro con id %d", id)
			}

			ctrl.RequestEdit(entity)
			for _, f := range schema.Fields {
				if !cmd.Flags().Changed(f.Name) {
					continue
				}
				value, err := cmd.Flags().GetString(f.Name)
				if err != nil {
					return err
				}
				ctrl.SetField(f.Name, value)
			}

			return ctrl.Submit(cmd.Context())
		},
	}
	registerFieldFlags(updateCmd, schema.Fields, false)

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Elimina un registro, previa confirmación",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("identificador no válido: %q", args[0])
			}

			if yes, _ := cmd.Flags().GetBool("yes"); yes {
				env.gate.AssumeYes()
			}

			ctrl := pick(env.resources())
			if err := ctrl.Refresh(cmd.Context()); err != nil {
				return err
			}

			entity, ok := findByID(ctrl.Records(), id)
			if !ok {
				return fmt.Errorf("no existe un registro con id %d", id)
			}

			return ctrl.RequestDelete(cmd.Context(), id, entity.Label())
		},
	}
	deleteCmd.Args = cobra.ExactArgs(1)
	deleteCmd.Flags().BoolP("yes", "y", false, "confirma la eliminación sin preguntar")

	cmd.AddCommand(listCmd, createCmd, updateCmd, deleteCmd)

	return cmd
}

func registerFieldFlags(cmd *cobra.Command, fields []controller.Field, markRequired bool) {
	for _, f := range fields {
		cmd.Flags().String(f.Name, "", "valor del campo "+f.Name)
		if markRequired && f.Required {
			_ = cmd.MarkFlagRequired(f.Name)
		}
	}
}

func pickCustomers(s *resources.Set) *controller.Controller[customer.Customer] {
	return s.Customers
}

func pickProducts(s *resources.Set) *controller.Controller[product.Product] {
	return s.Products
}

func pickOrders(s *resources.Set) *controller.Controller[order.Order] {
	return s.Orders
}

func pickOrderLines(s *resources.Set) *controller.Controller[orderline.OrderLine] {
	return s.OrderLines
}

func findByID[T controller.Entity](records []T, id int64) (T, bool) {
	for _, r := range records {
		if r.EntityID() == id {
			return r, true
		}
	}

	var zero T

	return zero, false
}
