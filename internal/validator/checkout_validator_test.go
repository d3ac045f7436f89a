package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cuddlecrafts/internal/usecase"
)

func validInput() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		CustomerName:     "Hana Sato",
		Email:            "hana@example.com",
		Phone:            "090-1234-5678",
		Address:          "1-2-3 Sakura",
		City:             "Yokohama",
		State:            "Kanagawa",
		ZipCode:          "220-0001",
		Country:          "Japan",
		PaymentMethod:    "cod",
		ShippingOptionID: 1,
	}
}

func TestValidate_AllValid(t *testing.T) {
	v := NewCheckoutValidator()
	assert.Empty(t, v.Validate(validInput()))
}

func TestValidate_RequiredFields(t *testing.T) {
	v := NewCheckoutValidator()

	errs := v.Validate(usecase.CheckoutInput{})
	assert.Equal(t, "Name is required", errs["customerName"])
	assert.Equal(t, "Email is required", errs["email"])
	assert.Equal(t, "Phone is required", errs["phone"])
	assert.Equal(t, "Address is required", errs["address"])
	assert.Equal(t, "City is required", errs["city"])
	assert.Equal(t, "State is required", errs["state"])
	assert.Equal(t, "Zip code is required", errs["zipCode"])
	assert.Equal(t, "Country is required", errs["country"])
	assert.Equal(t, "Please select a shipping option", errs["shippingOption"])
}

func TestValidate_EmailFormat(t *testing.T) {
	v := NewCheckoutValidator()

	in := validInput()
	in.Email = "not-an-email"
	assert.Equal(t, "Invalid email", v.Validate(in)["email"])

	in.Email = "a b@example.com"
	assert.Equal(t, "Invalid email", v.Validate(in)["email"])
}

func TestValidate_CardFieldsOnlyForCardPayment(t *testing.T) {
	v := NewCheckoutValidator()

	//代引きならカード項目は見ない
	in := validInput()
	assert.Empty(t, v.Validate(in))

	in.PaymentMethod = "card"
	errs := v.Validate(in)
	assert.Equal(t, "Card number is required", errs["cardNumber"])
	assert.Equal(t, "Name on card is required", errs["cardName"])
	assert.Equal(t, "Expiry date is required", errs["expiryDate"])
	assert.Equal(t, "CVV is required", errs["cvv"])

	in.CardNumber = "4242424242424242"
	in.CardName = "HANA SATO"
	in.ExpiryDate = "12/27"
	in.CVV = "123"
	assert.Empty(t, v.Validate(in))
}
