package cart

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dolapay/embed-sdk/internal/dom"
	pkgerrors "github.com/dolapay/embed-sdk/pkg/errors"
	"github.com/dolapay/embed-sdk/pkg/ids"
	"github.com/dolapay/embed-sdk/pkg/types"
)

// Assembler turns trigger datasets into validated cart payloads. Carts are
// built synchronously per click and never stored.
type Assembler struct {
	ids      ids.Source
	validate *validator.Validate
}

// NewAssembler builds an assembler backed by the given identifier source.
func NewAssembler(src ids.Source) (*Assembler, error) {
	if src == nil {
		return nil, fmt.Errorf("identifier source required")
	}
	return &Assembler{ids: src, validate: newValidator()}, nil
}

// SingleItem assembles a one-item cart for the buy-now flow. Currency is
// taken from the same element's dataset.
func (a *Assembler) SingleItem(dataset map[string]string) (*types.Cart, error) {
	item, err := ComposeItem(dataset)
	if err != nil {
		return nil, err
	}
	ExtractVariants(a.ids, dataset, item)

	currency, err := RequireField(dataset[KeyCurrency], "Invalid currency")
	if err != nil {
		return nil, err
	}

	cart := &types.Cart{Currency: currency, Items: []types.CartItem{*item}}
	if err := a.checkCart(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// FromCollection assembles the multi-item cart flow: every cart-eligible
// element contributes one item, currency comes from the triggering
// element's dataset. The trigger itself need not be cart-eligible. Any
// item failure aborts the whole assembly.
func (a *Assembler) FromCollection(trigger map[string]string, elements []dom.Element) (*types.Cart, error) {
	var items []types.CartItem
	for _, el := range elements {
		dataset := el.Dataset()
		if dataset[KeyCartEligible] != "true" {
			continue
		}
		item, err := ComposeItem(dataset)
		if err != nil {
			return nil, err
		}
		ExtractVariants(a.ids, dataset, item)
		items = append(items, *item)
	}

	currency, err := RequireField(trigger[KeyCurrency], "Invalid currency")
	if err != nil {
		return nil, err
	}

	cart := &types.Cart{Currency: currency, Items: items}
	if err := a.checkCart(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// checkCart is the final gate before a cart may cross the bridge.
func (a *Assembler) checkCart(cart *types.Cart) error {
	if err := a.validate.Struct(cart); err != nil {
		return formatValidationErrors(err)
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

func formatValidationErrors(err error) *pkgerrors.Error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := map[string]string{}
		for _, fieldErr := range errs {
			details[fieldErr.Field()] = validationMessage(fieldErr)
		}
		return pkgerrors.New(pkgerrors.CodeValidation, "cart validation failed").WithDetails(details)
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "cart validation failed")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	}
	return "is invalid"
}
