// Command dbshell is an interactive SQL shell over the connections named in
// an mpphp/database config descriptor.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mpphp/database"
	"github.com/mpphp/database/config"
	"github.com/mpphp/database/sqlgen"
)

var errPrint = color.New(color.FgRed)

func main() {
	if err := rootCmd().Execute(); err != nil {
		errPrint.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var cfgPath string
	var connName string
	var echo bool

	cmd := &cobra.Command{
		Use:           "dbshell",
		Short:         "Interactive SQL shell for configured database connections",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			mgr := database.NewManager(cfg)
			defer mgr.Close()

			db, err := mgr.DB(connName)
			if err != nil {
				return err
			}
			return runShell(mgr, db, echo)
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to config file")
	cmd.Flags().StringVarP(&connName, "conn", "n", "", "connection name (default backend if empty)")
	cmd.Flags().BoolVar(&echo, "echo", false, "echo interpolated statement text before running")
	return cmd
}

func runShell(mgr *database.Manager, db *database.DB, echo bool) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "db> ",
		HistoryFile:     filepath.Join(os.TempDir(), ".dbshell_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer l.Close()

	fmt.Printf("Connected (%s). Type \\q to quit.\n", db.Dialect().Name())
	ctx := context.Background()

	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			continue
		case trimmed == "\\q" || trimmed == "quit" || trimmed == "exit":
			return nil
		case trimmed == "\\sql":
			echo = !echo
			fmt.Printf("echo %v\n", echo)
			continue
		case strings.HasPrefix(trimmed, "\\use"):
			name := strings.TrimSpace(strings.TrimPrefix(trimmed, "\\use"))
			next, err := mgr.DB(name)
			if err != nil {
				errPrint.Println(err)
				continue
			}
			db = next
			fmt.Printf("using %q (%s)\n", name, db.Dialect().Name())
			continue
		}

		q := &sqlgen.Query{SQL: trimmed}
		if echo {
			if text, err := sqlgen.Interpolate(q, db.Dialect()); err == nil {
				fmt.Println(text)
			}
		}

		if isQuery(trimmed) {
			records, err := db.Executor().Query(ctx, q)
			if err != nil {
				errPrint.Println(err)
				continue
			}
			renderRecords(records)
			continue
		}

		res, err := db.Executor().Exec(ctx, q)
		if err != nil {
			errPrint.Println(err)
			continue
		}
		fmt.Printf("ok (%d rows affected)\n", res.RowsAffected)
	}
}

// isQuery reports whether the statement produces a result set.
func isQuery(stmt string) bool {
	head := strings.ToUpper(stmt)
	for _, kw := range []string{"SELECT", "WITH", "SHOW", "PRAGMA", "EXPLAIN", "DESCRIBE"} {
		if strings.HasPrefix(head, kw) {
			return true
		}
	}
	return false
}

func renderRecords(records []*database.Record) {
	if len(records) == 0 {
		fmt.Println("(no results)")
		return
	}

	header := records[0].Columns()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(header))
		for i, col := range header {
			v, ok := rec.Get(col)
			if !ok || v == nil {
				row[i] = ""
				continue
			}
			row[i] = fmt.Sprintf("%v", v)
		}
		rows = append(rows, row)
	}
	table.AppendBulk(rows)
	table.Render()

	if len(records) == 1 {
		fmt.Println("(1 result)")
	} else {
		fmt.Printf("(%d results)\n", len(records))
	}
}
