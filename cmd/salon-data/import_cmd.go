package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	corepersistence "github.com/campos-estilistas/salon-sdk/modules/core/infrastructure/persistence"
	crmpersistence "github.com/campos-estilistas/salon-sdk/modules/crm/infrastructure/persistence"
	staffpersistence "github.com/campos-estilistas/salon-sdk/modules/staff/infrastructure/persistence"
	"github.com/campos-estilistas/salon-sdk/pkg/configuration"
	"github.com/campos-estilistas/salon-sdk/pkg/importer"
	"github.com/campos-estilistas/salon-sdk/pkg/legacy"
)

type importFlags struct {
	ledgerPath string
	rosterPath string
}

func newImportCmd() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import legacy salon exports into the database",
	}
	cmd.PersistentFlags().StringVar(&flags.ledgerPath, "ledger", "", "Client ledger CSV path (default from LEDGER_PATH)")
	cmd.PersistentFlags().StringVar(&flags.rosterPath, "roster", "", "Professional roster JSON path (default from ROSTER_PATH)")

	cmd.AddCommand(
		newImportPassCmd(&flags, "clients", "Import clients from the semicolon-delimited ledger"),
		newImportPassCmd(&flags, "professionals", "Import bookable professionals from the roster"),
		newImportPassCmd(&flags, "users", "Provision accounts from the roster (run after professionals)"),
		newImportAllCmd(&flags),
	)
	return cmd
}

func newImportPassCmd(flags *importFlags, name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPasses(cmd.Context(), flags, name)
		},
	}
}

func newImportAllCmd(flags *importFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every import pass in dependency order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPasses(cmd.Context(), flags, "clients", "professionals", "users")
		},
	}
}

func runPasses(ctx context.Context, flags *importFlags, names ...string) error {
	conf := configuration.Use()
	defer conf.Unload()

	ledgerPath := conf.Import.LedgerPath
	if flags.ledgerPath != "" {
		ledgerPath = flags.ledgerPath
	}
	rosterPath := conf.Import.RosterPath
	if flags.rosterPath != "" {
		rosterPath = flags.rosterPath
	}

	pool, err := pgxpool.New(ctx, conf.Database.ConnectionString())
	if err != nil {
		return withCode(exitDB, errors.Wrap(err, "connect database"))
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		return withCode(exitDB, errors.Wrap(err, "ping database"))
	}

	log := conf.Logger()
	clients := crmpersistence.NewClientRepository(pool)
	professionals := staffpersistence.NewProfessionalRepository(pool)
	users := corepersistence.NewUserRepository(pool)

	available := map[string]importer.PassSpec{
		"clients": {
			Name: "clients",
			Run: importer.NewClientImporter(clients, log, importer.ClientImportOptions{
				LedgerPath: ledgerPath,
				BatchSize:  conf.Import.BatchSize,
				ErrorCap:   conf.Import.ErrorCap,
			}).Run,
		},
		"professionals": {
			Name: "professionals",
			Run: importer.NewProfessionalImporter(professionals, log, importer.ProfessionalImportOptions{
				RosterPath: rosterPath,
				ErrorCap:   conf.Import.ErrorCap,
			}).Run,
		},
		"users": {
			Name:     "users",
			Requires: []string{"professionals"},
			Run: importer.NewUserImporter(users, professionals, log, importer.UserImportOptions{
				RosterPath:    rosterPath,
				EmailDomain:   conf.Import.EmailDomain,
				RoleOverrides: mustRoleOverrides(conf.Import.RoleOverrides),
				ErrorCap:      conf.Import.ErrorCap,
			}).Run,
		},
	}

	passes := make([]importer.PassSpec, 0, len(names))
	for _, name := range names {
		spec, ok := available[name]
		if !ok {
			return withCode(exitUsage, errors.Errorf("unknown pass: %s", name))
		}
		if len(names) == 1 {
			// A single pass invocation owns its ordering; the operator is
			// trusted to have run its dependencies already.
			spec.Requires = nil
		}
		passes = append(passes, spec)
	}

	pipeline, err := importer.NewPipeline(passes...)
	if err != nil {
		return withCode(exitUsage, err)
	}

	err = pipeline.Run(ctx, func(report *importer.RunReport) {
		fmt.Fprint(os.Stdout, report.Summary())
	})
	return passExitError(err)
}

func mustRoleOverrides(raw string) map[string]string {
	// Validated at configuration load; a parse failure here is a bug.
	overrides, err := configuration.ParseRoleOverrides(raw)
	if err != nil {
		panic(err)
	}
	return overrides
}

func passExitError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, legacy.ErrSourceNotFound):
		return withCode(exitSource, err)
	case errors.Is(err, legacy.ErrMalformedSource):
		return withCode(exitValidation, err)
	case errors.Is(err, importer.ErrDependencyFailed):
		return withCode(exitValidation, err)
	}
	return withCode(exitDB, err)
}
