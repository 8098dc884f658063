package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jortega-dev/tienda-admin/internal/service/controller"
	"github.com/jortega-dev/tienda-admin/internal/service/models/order"
	"github.com/spf13/cobra"
)

// newUICommand builds the interactive shell: a navigation loop that
// mounts exactly one section at a time, mirroring the single-page admin
// panel this tool replaces.
func newUICommand(env *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Abre el panel de administración interactivo",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd.Context(), env)
		},
	}
}

func runShell(ctx context.Context, env *cliEnv) error {
	for {
		fmt.Fprintln(env.out, "\nSecciones: [1] clientes  [2] pedidos  [3] productos  [4] detalle-pedidos  [q] salir")
		choice, err := env.readLine("sección: ")
		if err != nil {
			return nil
		}

		set := env.resources()
		switch choice {
		case "1":
			sectionLoop(ctx, env, "Clientes", set.Customers, renderCustomers, nil)
		case "2":
			sectionLoop(ctx, env, "Pedidos", set.Orders, renderOrders, env.orderHints)
		case "3":
			sectionLoop(ctx, env, "Productos", set.Products, renderProducts, nil)
		case "4":
			sectionLoop(ctx, env, "Detalle de Pedidos", set.OrderLines, renderOrderLines, env.orderLineHints)
		case "q", "":
			return nil
		}
	}
}

// sectionLoop drives one mounted section until the user navigates back.
func sectionLoop[T controller.Entity](
	ctx context.Context,
	env *cliEnv,
	title string,
	ctrl *controller.Controller[T],
	render func(io.Writer, []T),
	hints func(),
) {
	// Mount failures already notified; an empty list is still a view.
	_ = ctrl.Mount(ctx)

	for {
		fmt.Fprintf(env.out, "\n== %s ==\n", title)
		render(env.out, ctrl.Records())
		if hints != nil {
			hints()
		}

		action, err := env.readLine("[n]uevo  [e]ditar  [d] eliminar  [r]ecargar  [v]olver: ")
		if err != nil {
			return
		}

		switch action {
		case "n":
			promptDraft(env, ctrl)
			_ = ctrl.Submit(ctx)
		case "e":
			entity, ok := promptPick(env, ctrl)
			if !ok {
				continue
			}
			ctrl.RequestEdit(entity)
			promptDraft(env, ctrl)
			_ = ctrl.Submit(ctx)
		case "d":
			entity, ok := promptPick(env, ctrl)
			if !ok {
				continue
			}
			_ = ctrl.RequestDelete(ctx, entity.EntityID(), entity.Label())
		case "r":
			_ = ctrl.Refresh(ctx)
		case "v", "":
			return
		}
	}
}

// promptDraft asks for every schema field. When editing, an empty answer
// keeps the seeded value.
func promptDraft[T controller.Entity](env *cliEnv, ctrl *controller.Controller[T]) {
	for _, f := range ctrl.Schema().Fields {
		current := ctrl.Form().Field(f.Name)
		label := f.Name
		if current != "" {
			label = fmt.Sprintf("%s [%s]", f.Name, current)
		}

		value, err := env.readLine(label + ": ")
		if err != nil {
			return
		}
		if value == "" && current != "" {
			continue
		}
		ctrl.SetField(f.Name, value)
	}
}

func promptPick[T controller.Entity](env *cliEnv, ctrl *controller.Controller[T]) (T, bool) {
	var zero T

	answer, err := env.readLine("id: ")
	if err != nil {
		return zero, false
	}

	id, err := strconv.ParseInt(answer, 10, 64)
	if err != nil {
		fmt.Fprintf(env.out, "identificador no válido: %q\n", answer)

		return zero, false
	}

	entity, ok := findByID(ctrl.Records(), id)
	if !ok {
		fmt.Fprintf(env.out, "no existe un registro con id %d\n", id)

		return zero, false
	}

	return entity, true
}

// orderHints lists the customers available for the cliente_id dropdown.
func (e *cliEnv) orderHints() {
	refs := e.resources().CustomerRefs.Records()
	if len(refs) == 0 {
		return
	}

	options := make([]string, 0, len(refs))
	for _, c := range refs {
		options = append(options, fmt.Sprintf("%d=%s", c.ID, c.Name))
	}
	fmt.Fprintln(e.out, "clientes disponibles:", strings.Join(options, ", "))
}

// orderLineHints lists the orders and products available for the
// pedido_id and producto_id dropdowns.
func (e *cliEnv) orderLineHints() {
	set := e.resources()

	if refs := set.OrderRefs.Records(); len(refs) > 0 {
		options := make([]string, 0, len(refs))
		for _, o := range refs {
			options = append(options, fmt.Sprintf("%d=%s (%s)", o.ID, o.Customer.Name, order.DateOnly(o.OrderDate)))
		}
		fmt.Fprintln(e.out, "pedidos disponibles:", strings.Join(options, ", "))
	}

	if refs := set.ProductRefs.Records(); len(refs) > 0 {
		options := make([]string, 0, len(refs))
		for _, p := range refs {
			options = append(options, fmt.Sprintf("%d=%s", p.ID, p.Name))
		}
		fmt.Fprintln(e.out, "productos disponibles:", strings.Join(options, ", "))
	}
}
