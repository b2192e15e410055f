package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ItemRequest is the query surface shared by the cost and shopping-list
// endpoints.
type ItemRequest struct {
	Item     int `validate:"gt=0"`
	Quantity int `validate:"gt=0"`
}

// itemRequestFromQuery parses and validates the item/quantity query
// parameters. Quantity defaults to 1 when absent.
func itemRequestFromQuery(r *http.Request) (ItemRequest, error) {
	var req ItemRequest

	itemStr := r.URL.Query().Get("item")
	if itemStr == "" {
		return req, fmt.Errorf("missing item query parameter")
	}
	item, err := strconv.Atoi(itemStr)
	if err != nil {
		return req, fmt.Errorf("invalid item query parameter: %w", err)
	}
	req.Item = item

	req.Quantity = 1
	if qStr := r.URL.Query().Get("quantity"); qStr != "" {
		q, err := strconv.Atoi(qStr)
		if err != nil {
			return req, fmt.Errorf("invalid quantity query parameter: %w", err)
		}
		req.Quantity = q
	}

	if err := validate.Struct(req); err != nil {
		return req, fmt.Errorf("invalid request: %w", err)
	}
	return req, nil
}
