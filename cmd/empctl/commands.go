package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/csg33k/employee-register/internal/adapters/pdf"
	"github.com/csg33k/employee-register/internal/adapters/xlsx"
	"github.com/csg33k/employee-register/internal/app"
	"github.com/csg33k/employee-register/internal/config"
	"github.com/csg33k/employee-register/internal/controller"
	"github.com/csg33k/employee-register/internal/domain"
	"github.com/csg33k/employee-register/internal/ports"
)

// opener builds the App for a command; tests swap it for an in-memory one.
type opener func(ctx context.Context) (*app.App, error)

func openFromConfig(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return app.Open(ctx, cfg, app.NewLogger(cfg))
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(openFromConfig)
}

func buildRootCmd(open opener) *cobra.Command {
	root := &cobra.Command{
		Use:          "empctl",
		Short:        "Manage the employee register from the terminal",
		SilenceUsage: true,
	}

	// withApp opens the store for the duration of one command.
	withApp := func(run func(cmd *cobra.Command, a *app.App, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			a, err := open(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()
			return run(cmd, a, args)
		}
	}

	root.AddCommand(
		listCmd(withApp),
		addCmd(withApp),
		editCmd(withApp),
		deleteCmd(withApp),
		exportCmd(withApp),
		importCmd(withApp),
		reportCmd(withApp),
	)
	return root
}

type runner = func(func(*cobra.Command, *app.App, []string) error) func(*cobra.Command, []string) error

func listCmd(withApp runner) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List employees, newest first",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app.App, _ []string) error {
			list, err := a.Controller.List(cmd.Context())
			if err != nil {
				return err
			}
			return printTable(cmd.OutOrStdout(), list)
		}),
	}
}

// bindFields registers one flag per employee field on cmd.
func bindFields(cmd *cobra.Command, e *domain.Employee) {
	f := cmd.Flags()
	f.StringVar(&e.Name, "name", "", "employee name (required)")
	f.StringVar(&e.City, "city", "", "city")
	f.StringVar(&e.State, "state", "", "state")
	f.StringVar(&e.EmailID, "email", "", "email address")
	f.StringVar(&e.ContactNo, "contact", "", "contact number")
	f.StringVar(&e.Address, "address", "", "street address")
	f.StringVar(&e.PinCode, "pin", "", "pin code, at least 6 characters (required)")
}

func addCmd(withApp runner) *cobra.Command {
	var e domain.Employee
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a new employee",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app.App, _ []string) error {
			if _, err := a.Controller.Save(cmd.Context(), domain.NewForm(e)); err != nil {
				return err
			}
			list, err := a.Controller.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved employee %d\n", list[0].EmpID)
			return nil
		}),
	}
	bindFields(cmd, &e)
	return cmd
}

func editCmd(withApp runner) *cobra.Command {
	var changes domain.Employee
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update the fields given as flags; others keep their values",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, a *app.App, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			form, err := a.Controller.BeginEdit(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("employee %d: %w", id, err)
			}
			flags := cmd.Flags()
			set := func(flag string, dst *string, v string) {
				if flags.Changed(flag) {
					*dst = v
				}
			}
			set("name", &form.Name, changes.Name)
			set("city", &form.City, changes.City)
			set("state", &form.State, changes.State)
			set("email", &form.EmailID, changes.EmailID)
			set("contact", &form.ContactNo, changes.ContactNo)
			set("address", &form.Address, changes.Address)
			set("pin", &form.PinCode, changes.PinCode)

			if _, err := a.Controller.Update(cmd.Context(), form); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated employee %d\n", id)
			return nil
		}),
	}
	bindFields(cmd, &changes)
	return cmd
}

func deleteCmd(withApp runner) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an employee after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, a *app.App, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			confirm := controller.Always
			if !yes {
				confirm = promptConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
			}
			deleted, err := a.Controller.Delete(cmd.Context(), id, confirm)
			if err != nil {
				return err
			}
			if deleted {
				fmt.Fprintf(cmd.OutOrStdout(), "deleted employee %d\n", id)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing deleted")
			}
			return nil
		}),
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func exportCmd(withApp runner) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.xlsx>",
		Short: "Write the list to an Excel workbook",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, a *app.App, args []string) error {
			list, err := a.Controller.List(cmd.Context())
			if err != nil {
				return err
			}
			return writeFile(args[0], func(w io.Writer) error { return xlsx.Export(list, w) })
		}),
	}
}

func reportCmd(withApp runner) *cobra.Command {
	return &cobra.Command{
		Use:   "report <file.pdf>",
		Short: "Write a PDF roster of the list",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, a *app.App, args []string) error {
			list, err := a.Controller.List(cmd.Context())
			if err != nil {
				return err
			}
			return writeFile(args[0], func(w io.Writer) error { return pdf.GeneratePDF(list, w) })
		}),
	}
}

func importCmd(withApp runner) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.xlsx>",
		Short: "Save every valid row of an Excel workbook as a new employee",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, a *app.App, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()
			rows, err := xlsx.Import(in)
			if err != nil {
				return err
			}
			res, err := a.Controller.Import(cmd.Context(), rows)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d saved, %d rejected\n", res.Saved, len(res.Failed))
			for _, f := range res.Failed {
				fmt.Fprintf(out, "  row %d: %v\n", f.Row, f.Err)
			}
			return nil
		}),
	}
}

// promptConfirmer asks on out and reads a y/N answer from in.
func promptConfirmer(in io.Reader, out io.Writer) ports.Confirmer {
	return ports.ConfirmFunc(func(_ context.Context, prompt string) (bool, error) {
		fmt.Fprintf(out, "%s [y/N] ", prompt)
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		}
		return false, nil
	})
}

func printTable(w io.Writer, list []domain.Employee) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "no employees")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tCONTACT\tCITY\tSTATE\tPIN")
	for _, e := range list {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", e.EmpID, e.Name, e.EmailID, e.ContactNo, e.City, e.State, e.PinCode)
	}
	return tw.Flush()
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
