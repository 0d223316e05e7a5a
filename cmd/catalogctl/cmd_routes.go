package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Catalogo-web/internal/domain/access"
	"github.com/jhoicas/Catalogo-web/internal/infrastructure/rbac"
	apphttp "github.com/jhoicas/Catalogo-web/internal/interfaces/http"
)

// catalogctl routes
var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Lista la tabla de rutas web con el rol de cada una y las reglas de política que la cubren",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printRoutes(cmd.OutOrStdout())
	},
}

func printRoutes(out io.Writer) error {
	en, err := rbac.NewEnforcer(access.DefaultPolicy(), nil)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MÉTODO\tRUTA\tNOMBRE\tROL\tPOLÍTICA")
	for _, r := range apphttp.WebRoutes(&apphttp.WebHandler{}) {
		role := r.Role
		policy := "-"
		if r.Public() {
			role = "pública"
		} else {
			policy = strings.Join(en.RequiredRoles(r.Path), ",")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", r.Method, r.Path, r.Name, role, policy)
	}
	return w.Flush()
}

var hashCost int

// catalogctl hash-password <password>
var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Imprime el hash bcrypt de un password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), hashCost)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(hash))
		return nil
	},
}

func init() {
	hashPasswordCmd.Flags().IntVar(&hashCost, "cost", bcrypt.DefaultCost, "costo bcrypt")
}
