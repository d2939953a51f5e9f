package graph

import (
	"fmt"
	"strconv"

	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"

	"github.com/alxcrm/graphql-crm-backend/internal/models"
	"github.com/alxcrm/graphql-crm-backend/internal/service"
)

func (r *Resolver) resolveCustomer(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, models.ErrInvalidInput("invalid customer ID")
	}
	return r.Customers.GetByID(p.Context, id)
}

func (r *Resolver) resolveAllCustomers(p graphql.ResolveParams) (interface{}, error) {
	return r.Customers.List(p.Context)
}

func (r *Resolver) resolveProduct(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, models.ErrInvalidInput("invalid product ID")
	}
	return r.Products.GetByID(p.Context, id)
}

func (r *Resolver) resolveAllProducts(p graphql.ResolveParams) (interface{}, error) {
	return r.Products.List(p.Context)
}

func (r *Resolver) resolveOrder(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, models.ErrInvalidInput("invalid order ID")
	}
	return r.Orders.GetByID(p.Context, id)
}

func (r *Resolver) resolveAllOrders(p graphql.ResolveParams) (interface{}, error) {
	return r.Orders.List(p.Context)
}

func (r *Resolver) resolveCreateCustomer(p graphql.ResolveParams) (interface{}, error) {
	input, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return nil, models.ErrInvalidInput("input is required")
	}

	customer, err := r.Customers.Create(p.Context, customerInput(input))
	if err != nil {
		return nil, err
	}

	return &createCustomerPayload{
		Customer: customer,
		Message:  "Customer created successfully",
	}, nil
}

func (r *Resolver) resolveBulkCreateCustomers(p graphql.ResolveParams) (interface{}, error) {
	items, ok := p.Args["input"].([]interface{})
	if !ok {
		return nil, models.ErrInvalidInput("input is required")
	}

	inputs := make([]service.CreateCustomerInput, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]interface{})
		if !ok {
			return nil, models.ErrInvalidInput("invalid customer input")
		}
		inputs = append(inputs, customerInput(fields))
	}

	customers, errs, err := r.Customers.BulkCreate(p.Context, inputs)
	if err != nil {
		return nil, err
	}

	return &bulkCreateCustomersPayload{
		Customers: customers,
		Errors:    errs,
	}, nil
}

func (r *Resolver) resolveCreateProduct(p graphql.ResolveParams) (interface{}, error) {
	input, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return nil, models.ErrInvalidInput("input is required")
	}

	in := service.CreateProductInput{
		Name: stringField(input, "name"),
	}
	if price, ok := input["price"].(float64); ok {
		in.Price = decimal.NewFromFloat(price)
	}
	if stock, ok := input["stock"].(int); ok {
		in.Stock = &stock
	}

	product, err := r.Products.Create(p.Context, in)
	if err != nil {
		return nil, err
	}

	return &createProductPayload{Product: product}, nil
}

func (r *Resolver) resolveCreateOrder(p graphql.ResolveParams) (interface{}, error) {
	input, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return nil, models.ErrInvalidInput("input is required")
	}

	rawCustomerID := stringField(input, "customerId")
	customerID, err := parseID(rawCustomerID)
	if err != nil {
		return nil, models.ErrInvalidCustomerID(rawCustomerID)
	}

	in := service.CreateOrderInput{CustomerID: customerID}
	if rawIDs, ok := input["productIds"].([]interface{}); ok {
		in.ProductIDs = make([]int64, 0, len(rawIDs))
		for _, rawID := range rawIDs {
			productID, err := parseID(rawID)
			if err != nil {
				return nil, models.ErrInvalidProductID(fmt.Sprintf("%v", rawID))
			}
			in.ProductIDs = append(in.ProductIDs, productID)
		}
	}

	order, err := r.Orders.Create(p.Context, in)
	if err != nil {
		return nil, err
	}

	return &createOrderPayload{Order: order}, nil
}

// customerInput maps coerced GraphQL input fields onto the service input
func customerInput(fields map[string]interface{}) service.CreateCustomerInput {
	return service.CreateCustomerInput{
		Name:  stringField(fields, "name"),
		Email: stringField(fields, "email"),
		Phone: stringField(fields, "phone"),
	}
}

func stringField(fields map[string]interface{}, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

// parseID converts a GraphQL ID value to an int64 database identifier
func parseID(value interface{}) (int64, error) {
	switch v := value.(type) {
	case string:
		return strconv.ParseInt(v, 10, 64)
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	default:
		return 0, fmt.Errorf("unsupported ID value %v", value)
	}
}
