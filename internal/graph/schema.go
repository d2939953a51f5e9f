package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/alxcrm/graphql-crm-backend/internal/models"
	"github.com/alxcrm/graphql-crm-backend/internal/service"
)

// Resolver carries the services the schema resolves against
type Resolver struct {
	Customers service.CustomerService
	Products  service.ProductService
	Orders    service.OrderService
}

// Mutation payloads. Field names are matched case-insensitively by the
// executor, so exported struct fields map onto the schema fields.
type createCustomerPayload struct {
	Customer *models.Customer
	Message  string
}

type bulkCreateCustomersPayload struct {
	Customers []*models.Customer
	Errors    []string
}

type createProductPayload struct {
	Product *models.Product
}

type createOrderPayload struct {
	Order *models.Order
}

// NewSchema builds the executable GraphQL schema over the resolver
func NewSchema(r *Resolver) (graphql.Schema, error) {
	customerType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Customer",
		Fields: graphql.Fields{
			"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"phone": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					customer, ok := p.Source.(*models.Customer)
					if !ok || customer.Phone == "" {
						return nil, nil
					}
					return customer.Phone, nil
				},
			},
		},
	})

	productType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Product",
		Fields: graphql.Fields{
			"id":   &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"price": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					product, ok := p.Source.(*models.Product)
					if !ok {
						return nil, nil
					}
					return product.Price.InexactFloat64(), nil
				},
			},
			"stock": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	orderType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Order",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"customer": &graphql.Field{Type: graphql.NewNonNull(customerType)},
			"products": &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(productType)))},
			"totalAmount": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					order, ok := p.Source.(*models.Order)
					if !ok {
						return nil, nil
					}
					return order.TotalAmount.InexactFloat64(), nil
				},
			},
			"orderDate": &graphql.Field{Type: graphql.NewNonNull(graphql.DateTime)},
		},
	})

	createCustomerInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateCustomerInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"email": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"phone": &graphql.InputObjectFieldConfig{Type: graphql.String},
		},
	})

	createProductInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateProductInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"name":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"price": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Float)},
			"stock": &graphql.InputObjectFieldConfig{Type: graphql.Int},
		},
	})

	createOrderInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CreateOrderInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"customerId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"productIds": &graphql.InputObjectFieldConfig{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.ID))),
			},
		},
	})

	createCustomerPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateCustomerPayload",
		Fields: graphql.Fields{
			"customer": &graphql.Field{Type: customerType},
			"message":  &graphql.Field{Type: graphql.String},
		},
	})

	bulkCreateCustomersPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "BulkCreateCustomersPayload",
		Fields: graphql.Fields{
			"customers": &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(customerType))},
			"errors":    &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
		},
	})

	createProductPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateProductPayload",
		Fields: graphql.Fields{
			"product": &graphql.Field{Type: productType},
		},
	})

	createOrderPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateOrderPayload",
		Fields: graphql.Fields{
			"order": &graphql.Field{Type: orderType},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"hello": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return "Hello, GraphQL!", nil
				},
			},
			"customer": &graphql.Field{
				Type:    customerType,
				Args:    idArgs(),
				Resolve: r.resolveCustomer,
			},
			"allCustomers": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(customerType)),
				Resolve: r.resolveAllCustomers,
			},
			"product": &graphql.Field{
				Type:    productType,
				Args:    idArgs(),
				Resolve: r.resolveProduct,
			},
			"allProducts": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(productType)),
				Resolve: r.resolveAllProducts,
			},
			"order": &graphql.Field{
				Type:    orderType,
				Args:    idArgs(),
				Resolve: r.resolveOrder,
			},
			"allOrders": &graphql.Field{
				Type:    graphql.NewList(graphql.NewNonNull(orderType)),
				Resolve: r.resolveAllOrders,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createCustomer": &graphql.Field{
				Type: createCustomerPayloadType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createCustomerInput)},
				},
				Resolve: r.resolveCreateCustomer,
			},
			"bulkCreateCustomers": &graphql.Field{
				Type: bulkCreateCustomersPayloadType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(createCustomerInput))),
					},
				},
				Resolve: r.resolveBulkCreateCustomers,
			},
			"createProduct": &graphql.Field{
				Type: createProductPayloadType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createProductInput)},
				},
				Resolve: r.resolveCreateProduct,
			},
			"createOrder": &graphql.Field{
				Type: createOrderPayloadType,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createOrderInput)},
				},
				Resolve: r.resolveCreateOrder,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func idArgs() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}
}
