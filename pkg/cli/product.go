package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mchmarny/leadcalc/pkg/catalog"
	"github.com/mchmarny/leadcalc/pkg/data"
	"github.com/mchmarny/leadcalc/pkg/model"
	"github.com/mchmarny/leadcalc/pkg/net"
	"github.com/urfave/cli/v3"
)

const (
	productSearchLimitDefault = 50

	sourceBuiltIn = "built-in"
	sourceCustom  = "custom"
)

// ProductItem is a product with the store it came from.
type ProductItem struct {
	model.Product `yaml:",inline"`
	Source        string `json:"source" yaml:"source"`
	VariableLead  bool   `json:"variable_lead" yaml:"variable_lead"`
}

func newProductItem(p *model.Product, source string) *ProductItem {
	return &ProductItem{Product: *p, Source: source, VariableLead: p.HasVariableLead()}
}

func newProductCmd() *cli.Command {
	return &cli.Command{
		Name:  "product",
		Usage: "Browse the product catalog and manage custom products",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List built-in and custom products",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  categoryFlagName,
						Usage: fmt.Sprintf("Only list products in category %v", model.ProductCategories),
					},
				},
				Action: cmdProductList,
			},
			{
				Name:      "search",
				Usage:     "Search products by id, name or description",
				ArgsUsage: "<query>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  limitFlagName,
						Usage: "Limits number of custom products returned",
						Value: productSearchLimitDefault,
					},
				},
				Action: cmdProductSearch,
			},
			{
				Name:      "show",
				Usage:     "Show a single product",
				ArgsUsage: "<id>",
				Action:    cmdProductShow,
			},
			{
				Name:  "import",
				Usage: "Import custom products from a YAML or JSON file or URL",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    fileFlagName,
						Aliases: []string{"f"},
						Usage:   "Path to the product file",
					},
					&cli.StringFlag{
						Name:  urlFlagName,
						Usage: "URL of the product file",
					},
				},
				Action: cmdProductImport,
			},
			{
				Name:      "delete",
				Usage:     "Delete a custom product",
				ArgsUsage: "<id>",
				Action:    cmdProductDelete,
			},
		},
	}
}

// listProducts merges the built-in catalog with custom products, optionally
// filtered by category.
func listProducts(db *sql.DB, category string) ([]*ProductItem, error) {
	var cat model.ProductCategory
	if category != "" {
		var err error
		if cat, err = model.ParseProductCategory(category); err != nil {
			return nil, err
		}
	}

	builtIn := catalog.All()
	if cat != "" {
		builtIn = catalog.ByCategory(cat)
	}

	custom, err := data.ListProducts(db)
	if err != nil {
		return nil, fmt.Errorf("listing custom products: %w", err)
	}

	items := make([]*ProductItem, 0, len(builtIn)+len(custom))
	for i := range builtIn {
		items = append(items, newProductItem(&builtIn[i], sourceBuiltIn))
	}
	for _, p := range custom {
		if cat == "" || p.Category == cat {
			items = append(items, newProductItem(p, sourceCustom))
		}
	}
	return items, nil
}

func searchProducts(db *sql.DB, query string, limit int) ([]*ProductItem, error) {
	builtIn := catalog.Search(query)
	custom, err := data.SearchProducts(db, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching custom products: %w", err)
	}

	items := make([]*ProductItem, 0, len(builtIn)+len(custom))
	for i := range builtIn {
		items = append(items, newProductItem(&builtIn[i], sourceBuiltIn))
	}
	for _, p := range custom {
		items = append(items, newProductItem(p, sourceCustom))
	}
	return items, nil
}

func findProduct(db *sql.DB, id string) (*ProductItem, error) {
	p, err := data.FindProduct(db, id)
	if err != nil {
		return nil, err
	}
	source := sourceCustom
	if catalog.Exists(id) {
		source = sourceBuiltIn
	}
	return newProductItem(p, source), nil
}

func firstArg(cmd *cli.Command, name string) (string, error) {
	v := strings.TrimSpace(cmd.Args().First())
	if v == "" {
		return "", fmt.Errorf("%s argument required", name)
	}
	return v, nil
}

func cmdProductList(_ context.Context, cmd *cli.Command) error {
	cfg := getConfig(cmd)

	items, err := listProducts(cfg.DB, cmd.String(categoryFlagName))
	if err != nil {
		return err
	}
	return cfg.encode(items)
}

func cmdProductSearch(_ context.Context, cmd *cli.Command) error {
	cfg := getConfig(cmd)

	q, err := firstArg(cmd, "query")
	if err != nil {
		return err
	}

	items, err := searchProducts(cfg.DB, q, int(cmd.Int(limitFlagName)))
	if err != nil {
		return err
	}
	return cfg.encode(items)
}

func cmdProductShow(_ context.Context, cmd *cli.Command) error {
	cfg := getConfig(cmd)

	id, err := firstArg(cmd, "id")
	if err != nil {
		return err
	}

	item, err := findProduct(cfg.DB, id)
	if err != nil {
		return fmt.Errorf("getting product %s: %w", id, err)
	}
	return cfg.encode(item)
}

func cmdProductImport(ctx context.Context, cmd *cli.Command) error {
	cfg := getConfig(cmd)
	path, url := cmd.String(fileFlagName), cmd.String(urlFlagName)

	var (
		list []model.Product
		err  error
	)
	switch {
	case path != "" && url != "":
		return fmt.Errorf("only one of --%s or --%s allowed", fileFlagName, urlFlagName)
	case url != "":
		path = url
		list, err = loadRemoteProducts(ctx, url)
	case path != "":
		list, err = catalog.LoadFile(path)
	default:
		return fmt.Errorf("--%s or --%s required", fileFlagName, urlFlagName)
	}
	if err != nil {
		return fmt.Errorf("loading products: %w", err)
	}

	n, err := data.SaveProducts(cfg.DB, list)
	if err != nil {
		return fmt.Errorf("saving products: %w", err)
	}

	slog.Info("products imported", "file", path, "count", n)
	return cfg.encode(map[string]int{"imported": n})
}

func loadRemoteProducts(ctx context.Context, url string) ([]model.Product, error) {
	b, err := net.Fetch(ctx, nil, url)
	if err != nil {
		return nil, err
	}
	return catalog.Parse(b)
}

func cmdProductDelete(_ context.Context, cmd *cli.Command) error {
	cfg := getConfig(cmd)

	id, err := firstArg(cmd, "id")
	if err != nil {
		return err
	}

	if err := data.DeleteProduct(cfg.DB, id); err != nil {
		if errors.Is(err, data.ErrProductNotFound) {
			return fmt.Errorf("custom product %s not found", id)
		}
		return fmt.Errorf("deleting product %s: %w", id, err)
	}

	slog.Info("product deleted", "id", id)
	return nil
}
