// Project Structure Overview
/*
inventory-sales/
├── cmd/
│   ├── console/
│   │   └── main.go
│   └── server/
│       └── main.go
├── internal/
│   ├── config/
│   │   └── config.go
│   ├── console/
│   │   ├── shell.go
│   │   └── terminal.go
│   ├── csvstore/
│   │   └── csvstore.go
│   ├── database/
│   │   ├── store.go
│   │   └── tx.go
│   ├── handlers/
│   │   ├── errors.go
│   │   ├── export.go
│   │   ├── product.go
│   │   ├── report.go
│   │   └── sale.go
│   ├── i18n/
│   │   ├── i18n.go
│   │   ├── locales/
│   │   │   ├── en.json
│   │   │   └── es.json
│   │   └── keys.go
│   ├── logger/
│   │   └── logger.go
│   ├── middleware/
│   │   ├── cors.go
│   │   ├── i18n.go
│   │   ├── logging.go
│   │   └── rate_limit.go
│   ├── models/
│   │   ├── common.go
│   │   ├── product.go
│   │   └── sale.go
│   ├── router/
│   │   └── router.go
│   ├── services/
│   │   ├── errors.go
│   │   ├── features/
│   │   ├── inventory_service.go
│   │   ├── report_service.go
│   │   └── sales_service.go
│   ├── tests/
│   └── utils/
│       ├── pagination.go
│       ├── response.go
│       └── validator.go
├── go.mod
└── DESIGN.md
*/

// Package inventorysales tracks a product inventory and its sales ledger.
// cmd/console runs the interactive menu and cmd/server exposes the same
// operations over HTTP.
package inventorysales
