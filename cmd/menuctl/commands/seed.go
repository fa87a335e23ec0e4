package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"menuboard/internal/domain/entity"
	"menuboard/internal/infra/persistence/postgres"
	"menuboard/internal/usecase"
	"menuboard/internal/usecase/impl"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the default menu",
	Long: `Insert the default categories and products through the same validation the API uses.

Categories that already exist are skipped together with their products.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSeed(cmd)
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

// seedProduct is one product of the default menu.
type seedProduct struct {
	name        string
	description string
	price       string
	productType entity.ProductType
	variants    []string
}

// seedCategory is one category of the default menu.
type seedCategory struct {
	name     string
	products []seedProduct
}

const placeholderImage = "/placeholder.svg?height=200&width=300"

var defaultMenu = []seedCategory{
	{
		name: "PROMOS",
		products: []seedProduct{
			{
				name:        "3x2 Nigiris",
				description: "Lleva 12 y paga 8",
				price:       "52.00",
				productType: entity.ProductTypeMultiple,
				variants:    []string{"Tuna Shiso", "Sake Rocoto", "Hotate Truffle", "Avocado Brasa"},
			},
			{
				name:        "Helados 2x1",
				description: "Helados de temporada",
				price:       "11.00",
				productType: entity.ProductTypeMultiple,
				variants:    []string{"Vainilla", "Chocolate", "Fresa", "Mango"},
			},
		},
	},
	{
		name: "NORI TACOS X2",
		products: []seedProduct{
			{
				name:        "Sesame Sake Taco",
				description: "tartar de salmón, arroz de sushi, palta, pepino japonés y salsa de sésamo",
				price:       "25.00",
				productType: entity.ProductTypeSingle,
			},
		},
	},
	{
		name: "HAND ROLLS X2",
		products: []seedProduct{
			{
				name:        "Ebi Panko Hand Roll",
				description: "langostino crocante y palta",
				price:       "17.00",
				productType: entity.ProductTypeSingle,
			},
		},
	},
	{
		name: "NT BOWLS",
		products: []seedProduct{
			{
				name:        "Teri Chicken",
				description: "pollo ahumado, salsa teriyaki, arroz de sushi y vegetales",
				price:       "32.00",
				productType: entity.ProductTypeSingle,
			},
		},
	},
}

// seedReport counts what a seed run inserted.
type seedReport struct {
	Categories int
	Products   int
	Skipped    []string
}

func runSeed(cmd *cobra.Command) error {
	env, err := loadEnvironment()
	if err != nil {
		return err
	}

	db, err := env.openPostgres()
	if err != nil {
		return err
	}
	defer closeDB(db)

	txManager := postgres.NewTransactionManager(db)
	categories := impl.NewCategoryService(impl.CategoryServiceParams{
		TxManager:    txManager,
		CategoryRepo: postgres.NewCategoryRepository(db),
		Logger:       env.logger,
	})
	products := impl.NewProductService(impl.ProductServiceParams{
		TxManager:   txManager,
		ProductRepo: postgres.NewProductRepository(db),
		Logger:      env.logger,
	})

	report, err := seedMenu(cmd.Context(), categories, products, defaultMenu, env.logger)
	if err != nil {
		return err
	}

	printSeedReport(cmd.OutOrStdout(), report)

	return nil
}

// seedMenu creates every category of menu that does not exist yet, then its products.
func seedMenu(
	ctx context.Context,
	categories usecase.CategoryUsecase,
	products usecase.ProductUsecase,
	menu []seedCategory,
	logger *slog.Logger,
) (*seedReport, error) {
	existing, err := categories.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(existing))
	for _, category := range existing {
		taken[strings.ToLower(category.Name)] = struct{}{}
	}

	report := &seedReport{}
	for _, seed := range menu {
		if _, ok := taken[strings.ToLower(seed.name)]; ok {
			report.Skipped = append(report.Skipped, seed.name)

			continue
		}

		category, err := categories.CreateCategory(ctx, seed.name)
		if err != nil {
			return report, err
		}
		report.Categories++

		for _, p := range seed.products {
			price := decimal.RequireFromString(p.price)
			description := p.description
			image := placeholderImage

			if _, err := products.CreateProduct(ctx, &usecase.CreateProductInput{
				Name:        p.name,
				Description: &description,
				Price:       &price,
				Image:       &image,
				Type:        p.productType,
				CategoryID:  category.ID,
				Variants:    p.variants,
			}); err != nil {
				return report, err
			}
			report.Products++
		}

		logger.Info("Seeded category",
			slog.String("category", seed.name),
			slog.Int("products", len(seed.products)),
		)
	}

	return report, nil
}

func printSeedReport(out io.Writer, report *seedReport) {
	fmt.Fprintf(out, "Created %d categories and %d products\n", report.Categories, report.Products)
	if len(report.Skipped) > 0 {
		fmt.Fprintf(out, "Skipped existing categories: %s\n", strings.Join(report.Skipped, ", "))
	}
}
