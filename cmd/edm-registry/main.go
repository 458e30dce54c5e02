package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/wellnecity/edm/internal/app"
	"github.com/wellnecity/edm/internal/config"
	"github.com/wellnecity/edm/internal/integrity"
	"github.com/wellnecity/edm/internal/registry"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "edm-registry",
		Short: "Wellnecity enterprise data model registry",
	}
	rootCmd.AddCommand(initCmd(), verifyCmd(), checkCmd(), lintCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// initCmd creates every registered collection with its $jsonSchema validator
// and secondary indexes. Re-running against an initialized database refreshes
// validators via collMod and is otherwise a no-op.
func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create all collections with validators and indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			log := newLogger(cfg.LogLevel)
			ctx, cancel := signalContext()
			defer cancel()

			a, err := app.New(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			reg := a.Registry
			for _, name := range reg.Names() {
				coll, _ := reg.Collection(name)
				err := a.Database.CreateCollection(ctx, name, coll.CreateOptions())
				switch {
				case err == nil:
					log.Info().Str("collection", name).Msg("created collection")
				case isNamespaceExists(err):
					// Refresh the validator so schema changes reach
					// already-initialized databases.
					res := a.Database.RunCommand(ctx, bson.D{
						{Key: "collMod", Value: name},
						{Key: "validator", Value: coll.Validator()},
					})
					if res.Err() != nil {
						return fmt.Errorf("collMod %s: %w", name, res.Err())
					}
					log.Info().Str("collection", name).Msg("collection exists, validator refreshed")
				default:
					return fmt.Errorf("create collection %s: %w", name, err)
				}
				if models := coll.IndexModels(); len(models) > 0 {
					if _, err := a.Database.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
						return fmt.Errorf("create indexes on %s: %w", name, err)
					}
				}
			}
			log.Info().Int("collections", len(reg.Names())).Msg("registry initialized")
			return nil
		},
	}
}

// verifyCmd compares the live database against the registry and reports
// drift: missing collections, missing or unexpected indexes, and collections
// the registry does not know about.
func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Report drift between the live database and the registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			log := newLogger(cfg.LogLevel)
			ctx, cancel := signalContext()
			defer cancel()

			a, err := app.New(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			existing, err := a.Database.ListCollectionNames(ctx, bson.D{})
			if err != nil {
				return fmt.Errorf("list collections: %w", err)
			}
			live := make(map[string]bool, len(existing))
			for _, name := range existing {
				live[name] = true
			}

			reg := a.Registry
			drift := 0
			for _, name := range reg.SortedNames() {
				if !live[name] {
					fmt.Printf("MISSING collection %s\n", name)
					drift++
					continue
				}
				coll, _ := reg.Collection(name)
				actual, err := listIndexNames(ctx, a.Database.Collection(name))
				if err != nil {
					return fmt.Errorf("list indexes on %s: %w", name, err)
				}
				for _, want := range coll.IndexNames() {
					if !actual[want] {
						fmt.Printf("MISSING index %s on %s\n", want, name)
						drift++
					}
				}
			}
			for _, name := range existing {
				if strings.HasPrefix(name, "system.") {
					continue
				}
				if _, ok := reg.Collection(name); !ok {
					fmt.Printf("UNREGISTERED collection %s\n", name)
					drift++
				}
			}
			if drift > 0 {
				return fmt.Errorf("%d drift finding(s)", drift)
			}
			fmt.Printf("OK: %d collections match the registry\n", len(reg.Names()))
			return nil
		},
	}
}

// checkCmd sweeps the live record set through the integrity checker and
// prints every finding. Strict mode exits nonzero on violations.
func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run the cross-entity integrity checks against the live data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			log := newLogger(cfg.LogLevel)
			ctx, cancel := signalContext()
			defer cancel()

			a, err := app.New(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			mode := integrity.Strict
			if cfg.IntegrityMode == "advisory" {
				mode = integrity.Advisory
			}
			findings, err := a.Checker(mode, log).Check(ctx)
			if err != nil {
				return err
			}
			violations := 0
			for _, f := range findings {
				severity := "VIOLATION"
				if f.Advisory {
					severity = "ADVISORY"
				} else {
					violations++
				}
				fmt.Printf("%s %s\n", severity, f.Err)
			}
			if mode == integrity.Strict && violations > 0 {
				return fmt.Errorf("%d integrity violation(s)", violations)
			}
			fmt.Printf("checked: %d finding(s), %d violation(s)\n", len(findings), violations)
			return nil
		},
	}
}

// lintCmd prints the registry for review without touching any database.
func lintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Print the registry: collections, required fields, enums, indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := registry.New()
			for _, name := range reg.Names() {
				coll, _ := reg.Collection(name)
				var required, enums []string
				for _, f := range coll.Fields {
					if f.Required {
						required = append(required, f.Name)
					}
					if len(f.Enum) > 0 {
						enums = append(enums, fmt.Sprintf("%s[%d]", f.Name, len(f.Enum)))
					}
				}
				sort.Strings(required)
				fmt.Printf("%s (%d fields)\n", name, len(coll.Fields))
				fmt.Printf("  required: %s\n", strings.Join(required, ", "))
				if len(enums) > 0 {
					fmt.Printf("  enums:    %s\n", strings.Join(enums, ", "))
				}
				for _, idx := range coll.Indexes {
					flags := ""
					if idx.Unique {
						flags += " unique"
					}
					if idx.Sparse {
						flags += " sparse"
					}
					fmt.Printf("  index:    [%s]%s\n", strings.Join(idx.Keys, ", "), flags)
				}
			}
			fmt.Printf("\n%d collections registered\n", len(reg.Names()))
			return nil
		},
	}
}

func isNamespaceExists(err error) bool {
	var ce mongo.CommandError
	return errors.As(err, &ce) && ce.Code == 48
}

func listIndexNames(ctx context.Context, coll *mongo.Collection) (map[string]bool, error) {
	cur, err := coll.Indexes().List(ctx)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	names := make(map[string]bool)
	for cur.Next(ctx) {
		var spec bson.M
		if err := cur.Decode(&spec); err != nil {
			return nil, err
		}
		if name, ok := spec["name"].(string); ok {
			names[name] = true
		}
	}
	return names, cur.Err()
}
