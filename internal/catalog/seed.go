package catalog

import "catalog-explorer/internal/domain"

// Seed returns the built-in sample catalog: a web-store orders table and
// the customer master it references.
func Seed() []domain.Asset {
	return []domain.Asset{
		{
			ID:          "sales_orders_v1",
			Name:        "sales_orders",
			Domain:      "sales",
			Description: "Orders placed on the web store. Includes order amounts, payment status, and customer references.",
			Owner:       "data.sales@company.com",
			Tags:        domain.NewTagSet("gold", "pci-scope"),
			Datasource:  "postgres://warehouse/sales",
			UpdatedAt:   "2025-08-15",
			Columns: []domain.Column{
				{Name: "order_id", Type: "uuid", Description: "Primary key.", Tags: domain.NewTagSet()},
				{Name: "customer_id", Type: "uuid", Tags: domain.NewTagSet()},
				{Name: "email", Type: "text", Description: "Customer email.", Tags: domain.NewTagSet("pii", "contact")},
				{Name: "amount", Type: "numeric", Description: "Order amount in INR.", Tags: domain.NewTagSet()},
				{Name: "payment_status", Type: "text", Tags: domain.NewTagSet("pci")},
				{Name: "created_at", Type: "timestamptz", Tags: domain.NewTagSet()},
			},
			Lineage: domain.Lineage{
				Upstream:   []string{"raw_events"},
				Downstream: []string{"sales_kpi_daily", "marketing_attribution"},
			},
		},
		{
			ID:          "customers_v2",
			Name:        "customers",
			Domain:      "sales",
			Description: "Customer master. One row per user.",
			Owner:       "data.crm@company.com",
			Tags:        domain.NewTagSet("silver", "pii"),
			Datasource:  "s3://datalake/curated/customers/",
			UpdatedAt:   "2025-08-04",
			Columns: []domain.Column{
				{Name: "customer_id", Type: "uuid", Tags: domain.NewTagSet()},
				{Name: "full_name", Type: "text", Description: "User full name.", Tags: domain.NewTagSet("pii")},
				{Name: "email", Type: "text", Tags: domain.NewTagSet("pii", "contact")},
				{Name: "phone", Type: "text", Tags: domain.NewTagSet("pii", "contact")},
				{Name: "signup_dt", Type: "date", Tags: domain.NewTagSet()},
				{Name: "segment", Type: "text", Tags: domain.NewTagSet("ml-feature")},
			},
			Lineage: domain.Lineage{
				Upstream:   []string{"crm_export"},
				Downstream: []string{"sales_orders", "marketing_attribution"},
			},
		},
	}
}
