package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jortega-dev/tienda-admin/internal/app"
	"github.com/jortega-dev/tienda-admin/internal/dal/api"
	"github.com/jortega-dev/tienda-admin/internal/service/resources"
	"github.com/spf13/cobra"
)

// cliEnv carries the terminal streams and the lazily built controller
// set. Controllers are only constructed by commands that talk to the
// store, so `adminctl store` can run without store.base_url configured.
type cliEnv struct {
	in   *bufio.Reader
	out  io.Writer
	gate *TerminalGate
	set  *resources.Set
}

func (e *cliEnv) resources() *resources.Set {
	if e.set == nil {
		client := api.MustNewClient()
		e.set = resources.NewSet(client, e.gate, NewTerminalNotifier(e.out))
	}

	return e.set
}

func (e *cliEnv) readLine(prompt string) (string, error) {
	fmt.Fprint(e.out, prompt)
	line, err := e.in.ReadString('\n')
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// Execute runs the adminctl command tree.
func Execute() error {
	in := bufio.NewReader(os.Stdin)
	env := &cliEnv{
		in:   in,
		out:  os.Stdout,
		gate: NewTerminalGate(in, os.Stdout),
	}

	root := &cobra.Command{
		Use:           "adminctl",
		Short:         "Administración de clientes, productos y pedidos",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newUICommand(env),
		newProxyCommand(),
		newStoreCommand(),
		newResourceCommand(env, "clientes", "Administra los clientes",
			resources.CustomerSchema(), pickCustomers, renderCustomers),
		newResourceCommand(env, "productos", "Administra los productos",
			resources.ProductSchema(), pickProducts, renderProducts),
		newResourceCommand(env, "pedidos", "Administra los pedidos",
			resources.OrderSchema(), pickOrders, renderOrders),
		newResourceCommand(env, "detalles", "Administra los detalles de pedidos",
			resources.OrderLineSchema(), pickOrderLines, renderOrderLines),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)

		return err
	}

	return nil
}

func newProxyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "proxy",
		Short: "Arranca el proxy de desarrollo",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.MustNewProxyApp().Run()

			return nil
		},
	}
}

func newStoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "store",
		Short: "Arranca el almacén de registros de desarrollo",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.MustNewStoreApp().Run()

			return nil
		},
	}
}
