// Package console implements the interactive, line-oriented product menu.
// All operations run sequentially on the input loop.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/mytheresa/go-inventory/app/catalog"
	"github.com/mytheresa/go-inventory/app/categories"
	"github.com/mytheresa/go-inventory/models"
	"github.com/mytheresa/go-inventory/pagination"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// viewPageSize is how many products are fetched per round trip when listing.
const viewPageSize = 20

type ProductService interface {
	List(ctx context.Context, req pagination.Request, filters models.ProductFilters) (pagination.Page[catalog.Product], error)
	Create(ctx context.Context, product models.Product) (catalog.Product, error)
	GetByID(ctx context.Context, id uint) (catalog.Product, error)
	Update(ctx context.Context, id uint, patch models.ProductPatch) (catalog.Product, error)
	Delete(ctx context.Context, id uint) (bool, error)
}

type CategoryService interface {
	Create(ctx context.Context, category models.Category) (models.Category, error)
}

type Console struct {
	in         *bufio.Scanner
	out        io.Writer
	products   ProductService
	categories CategoryService
	log        logrus.FieldLogger
}

func New(in io.Reader, out io.Writer, products ProductService, categories CategoryService, log logrus.FieldLogger) *Console {
	return &Console{
		in:         bufio.NewScanner(in),
		out:        out,
		products:   products,
		categories: categories,
		log:        log,
	}
}

// Run shows the menu until the user exits, the input ends or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	c.println("Welcome to the Product and Category Management System")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.println("")
		c.println("Choose an operation:")
		c.println("1. Create Product")
		c.println("2. View Products")
		c.println("3. View Product by ID")
		c.println("4. Update Product")
		c.println("5. Delete Product")
		c.println("6. Exit")

		choice, err := c.prompt("Enter your choice: ")
		if err != nil {
			return endOfInput(err)
		}

		var opErr error
		switch choice {
		case "1":
			opErr = c.createProduct(ctx)
		case "2":
			opErr = c.viewProducts(ctx)
		case "3":
			opErr = c.viewProduct(ctx)
		case "4":
			opErr = c.updateProduct(ctx)
		case "5":
			opErr = c.deleteProduct(ctx)
		case "6":
			c.println("Goodbye!")
			return nil
		default:
			c.println("Invalid choice. Please try again.")
			continue
		}

		if opErr != nil {
			if errors.Is(opErr, io.EOF) {
				return nil
			}
			c.report(opErr)
		}
	}
}

func (c *Console) createProduct(ctx context.Context) error {
	c.println("\n--- Create Product ---")

	categoryID, err := c.promptUint("Enter category ID (or 0 to create a new category): ", "category ID", nil)
	if err != nil {
		return err
	}

	if categoryID == 0 {
		name, err := c.prompt("Enter new category name: ")
		if err != nil {
			return err
		}
		if err := categories.ValidateName(name); err != nil {
			return err
		}
		category, err := c.categories.Create(ctx, models.Category{Name: name})
		if err != nil {
			return err
		}
		c.printf("Category '%s' created with ID %d\n", category.Name, category.ID)
		categoryID = category.ID
	}

	name, err := c.prompt("Enter product name: ")
	if err != nil {
		return err
	}
	description, err := c.prompt("Enter product description: ")
	if err != nil {
		return err
	}
	price, err := c.promptDecimal("Enter product price: ", nil)
	if err != nil {
		return err
	}
	quantity, err := c.promptInt("Enter product quantity: ", nil)
	if err != nil {
		return err
	}
	status, err := c.prompt("Enter product status (e.g., Available): ")
	if err != nil {
		return err
	}

	product := models.Product{
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
		Status:      status,
		CategoryID:  categoryID,
	}
	if err := models.PatchFrom(product).Validate(); err != nil {
		return err
	}

	created, err := c.products.Create(ctx, product)
	if err != nil {
		return err
	}

	c.printf("Product created successfully! (ID %d)\n", created.ID)
	return nil
}

func (c *Console) viewProducts(ctx context.Context) error {
	c.println("\n--- View Products ---")

	req := pagination.Request{Page: 0, Size: viewPageSize}
	shown := 0
	for {
		page, err := c.products.List(ctx, req, models.ProductFilters{})
		if err != nil {
			return err
		}
		for _, p := range page.Content {
			c.println(formatProduct(p))
			shown++
		}
		req.Page++
		if page.Empty() || req.Page >= page.TotalPages {
			break
		}
	}

	if shown == 0 {
		c.println("No products found.")
	}
	return nil
}

func (c *Console) viewProduct(ctx context.Context) error {
	c.println("\n--- View Product ---")

	id, err := c.promptID("Enter product ID: ")
	if err != nil {
		return err
	}

	product, err := c.products.GetByID(ctx, id)
	if err != nil {
		return err
	}

	c.println(formatProduct(product))
	return nil
}

// updateProduct prompts for every field; a blank answer keeps the current value.
func (c *Console) updateProduct(ctx context.Context) error {
	c.println("\n--- Update Product ---")

	id, err := c.promptID("Enter product ID to update: ")
	if err != nil {
		return err
	}

	current, err := c.products.GetByID(ctx, id)
	if err != nil {
		return err
	}

	patch := models.ProductPatch{
		Name:        current.Name,
		Description: current.Description,
		Price:       decimal.NewFromFloat(current.Price),
		Quantity:    current.Quantity,
		Status:      current.Status,
		CategoryID:  current.Category.ID,
	}

	if patch.Name, err = c.promptKeep("product name", current.Name); err != nil {
		return err
	}
	if patch.Description, err = c.promptKeep("product description", current.Description); err != nil {
		return err
	}
	if patch.Price, err = c.promptDecimal(keepLabel("product price", current.Price), &patch.Price); err != nil {
		return err
	}
	if patch.Quantity, err = c.promptInt(keepLabel("product quantity", current.Quantity), &patch.Quantity); err != nil {
		return err
	}
	if patch.Status, err = c.promptKeep("product status", current.Status); err != nil {
		return err
	}
	if patch.CategoryID, err = c.promptUint(keepLabel("category ID", current.Category.ID), "category ID", &patch.CategoryID); err != nil {
		return err
	}

	if err := patch.Validate(); err != nil {
		return err
	}
	if _, err := c.products.Update(ctx, id, patch); err != nil {
		return err
	}

	c.println("Product updated successfully!")
	return nil
}

func (c *Console) deleteProduct(ctx context.Context) error {
	c.println("\n--- Delete Product ---")

	id, err := c.promptID("Enter product ID to delete: ")
	if err != nil {
		return err
	}

	deleted, err := c.products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		c.printf("Product not found with ID %d\n", id)
		return nil
	}

	c.println("Product deleted successfully!")
	return nil
}

// report prints a failed operation and returns to the menu.
func (c *Console) report(err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		c.printf("Invalid input: %v\n", err)
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrConstraintViolation):
		c.printf("Error: %v\n", err)
	default:
		c.log.WithError(err).Error("Console operation failed")
		c.println("Error: the operation could not be completed.")
	}
}

// formatProduct prints a mapped product; the service never hands out one
// without its category.
func formatProduct(p catalog.Product) string {
	return fmt.Sprintf("Product{id=%d, name='%s', description='%s', price=%s, quantity=%d, status='%s', category=%s}",
		p.ID, p.Name, p.Description, strconv.FormatFloat(p.Price, 'f', -1, 64), p.Quantity, p.Status, p.Category.Name)
}

func keepLabel(field string, current any) string {
	return fmt.Sprintf("Enter new %s (current: %v): ", field, current)
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
