package validation

import (
	"time"

	"bookify/internal/domain/payment"
	reqdto "bookify/internal/handler/dto/request"
	"bookify/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register installs the custom rules on gin's binding validator.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("gin binding validator is not go-playground/validator")
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation("currency", validateCurrency); err != nil {
		return errs.Wrap(err, "register currency validator")
	}
	v.RegisterStructValidation(validateSearchDates, reqdto.RoomSearchRequest{})
	return nil
}

func validateCurrency(fl validator.FieldLevel) bool {
	_, err := payment.NewCurrency(fl.Field().String())
	return err == nil
}

// check-in must fall strictly before check-out; format errors are left to the datetime tag
func validateSearchDates(sl validator.StructLevel) {
	req, ok := sl.Current().Interface().(reqdto.RoomSearchRequest)
	if !ok {
		return
	}
	checkIn, err := time.Parse(reqdto.DateLayout, req.CheckIn)
	if err != nil {
		return
	}
	checkOut, err := time.Parse(reqdto.DateLayout, req.CheckOut)
	if err != nil {
		return
	}
	if !checkIn.Before(checkOut) {
		sl.ReportError(req.CheckOut, "CheckOut", "checkOut", "booking_dates", "")
	}
}
