package console

import (
	"io"
	"strconv"
	"strings"

	"github.com/mytheresa/go-inventory/models"
	"github.com/shopspring/decimal"
)

// prompt prints label and reads one trimmed line. io.EOF is returned once
// the input is exhausted.
func (c *Console) prompt(label string) (string, error) {
	c.printf("%s", label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

func (c *Console) promptKeep(field, current string) (string, error) {
	v, err := c.prompt(keepLabel(field, current))
	if err != nil {
		return "", err
	}
	if v == "" {
		return current, nil
	}
	return v, nil
}

// The numeric prompts below return *keep when the answer is blank and keep
// is non-nil; a blank answer without keep is a validation error.

func (c *Console) promptDecimal(label string, keep *decimal.Decimal) (decimal.Decimal, error) {
	v, err := c.prompt(label)
	if err != nil {
		return decimal.Zero, err
	}
	if v == "" && keep != nil {
		return *keep, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, models.NewValidationError("price", "must be a number")
	}
	return d, nil
}

func (c *Console) promptInt(label string, keep *int) (int, error) {
	v, err := c.prompt(label)
	if err != nil {
		return 0, err
	}
	if v == "" && keep != nil {
		return *keep, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, models.NewValidationError("quantity", "must be a whole number")
	}
	return n, nil
}

func (c *Console) promptUint(label, field string, keep *uint) (uint, error) {
	v, err := c.prompt(label)
	if err != nil {
		return 0, err
	}
	if v == "" && keep != nil {
		return *keep, nil
	}
	n, err := strconv.ParseUint(v, 10, 0)
	if err != nil {
		return 0, models.NewValidationError(field, "must be a non-negative whole number")
	}
	return uint(n), nil
}

func (c *Console) promptID(label string) (uint, error) {
	id, err := c.promptUint(label, "product ID", nil)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, models.NewValidationError("product ID", "must be positive")
	}
	return id, nil
}
