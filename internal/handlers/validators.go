package handlers

import (
	"fmt"
	"reflect"
	"regexp"
	"sync"

	"github.com/SscSPs/autoinvest_app/internal/utils"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	handlePattern      = regexp.MustCompile(`^[A-Za-z0-9_.]{3,32}$`)
	registerValidators sync.Once
	registerErr        error
)

// RegisterValidators installs the custom binding tags used by the request DTOs.
// It is safe to call more than once; the first outcome is returned every time.
func RegisterValidators() error {
	registerValidators.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
			return
		}
		v.RegisterCustomTypeFunc(decimalValuer, decimal.Decimal{})
		if err := v.RegisterValidation("positive_amount", positiveAmount); err != nil {
			registerErr = fmt.Errorf("register positive_amount: %w", err)
			return
		}
		if err := v.RegisterValidation("handle", validHandle); err != nil {
			registerErr = fmt.Errorf("register handle: %w", err)
		}
	})
	return registerErr
}

// decimalValuer lets the validator see decimals as their canonical string.
func decimalValuer(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

// positiveAmount accepts amounts above zero with at most two decimal places that fit the ledger.
func positiveAmount(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.IsPositive() && utils.HasMoneyPrecision(d) && utils.WithinMoneyRange(d)
}

func validHandle(fl validator.FieldLevel) bool {
	return handlePattern.MatchString(fl.Field().String())
}
