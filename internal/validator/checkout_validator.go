package validator

import (
	"regexp"
	"strings"

	"cuddlecrafts/internal/usecase"
)

// local@domain.tld 程度の形だけ見る
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type checkoutValidator struct{}

// UsecaseはinterfaceをDIで受け取る
func NewCheckoutValidator() usecase.CheckoutValidator {
	return &checkoutValidator{}
}

// Validate はfield→messageのマップを返す。空なら送信できる。
// メッセージは画面にそのまま出す文言。
func (v *checkoutValidator) Validate(in usecase.CheckoutInput) map[string]string {
	errs := map[string]string{}

	if strings.TrimSpace(in.CustomerName) == "" {
		errs["customerName"] = "Name is required"
	}

	email := strings.TrimSpace(in.Email)
	if email == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(email) {
		errs["email"] = "Invalid email"
	}

	if strings.TrimSpace(in.Phone) == "" {
		errs["phone"] = "Phone is required"
	}
	if strings.TrimSpace(in.Address) == "" {
		errs["address"] = "Address is required"
	}
	if strings.TrimSpace(in.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(in.State) == "" {
		errs["state"] = "State is required"
	}
	if strings.TrimSpace(in.ZipCode) == "" {
		errs["zipCode"] = "Zip code is required"
	}
	if strings.TrimSpace(in.Country) == "" {
		errs["country"] = "Country is required"
	}

	if in.ShippingOptionID <= 0 {
		errs["shippingOption"] = "Please select a shipping option"
	}

	//カード払いのときだけカード項目を必須にする
	if in.PaymentMethod == "card" {
		if strings.TrimSpace(in.CardNumber) == "" {
			errs["cardNumber"] = "Card number is required"
		}
		if strings.TrimSpace(in.CardName) == "" {
			errs["cardName"] = "Name on card is required"
		}
		if strings.TrimSpace(in.ExpiryDate) == "" {
			errs["expiryDate"] = "Expiry date is required"
		}
		if strings.TrimSpace(in.CVV) == "" {
			errs["cvv"] = "CVV is required"
		}
	}

	return errs
}
