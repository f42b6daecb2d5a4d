// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Validation
	KeyValidationInvalid  = "validation.invalid"
	KeyValidationRequired = "validation.required"

	// Terminal input
	KeyInputEmpty   = "input.empty"
	KeyInputInteger = "input.integer"
	KeyInputNumber  = "input.number"
	KeyInputMinimum = "input.minimum"
	KeyInputTooLong = "input.too_long"
	KeyMenuInvalid  = "menu.invalid"

	// Application
	KeyAppGoodbye     = "app.goodbye"
	KeyAppUnexpected  = "app.unexpected"
	KeyAppInterrupted = "app.interrupted"

	// Products
	KeyProductCreated         = "product.created"
	KeyProductUpdated         = "product.updated"
	KeyProductDeleted         = "product.deleted"
	KeyProductDeleteCancelled = "product.delete_cancelled"
	KeyProductDeleteConfirm   = "product.delete_confirm"
	KeyProductNotFound        = "product.not_found"
	KeyProductKeepValue       = "product.keep_value"
	KeyProductFieldNegative   = "product.field_negative"
	KeyProductFieldBlank      = "product.field_blank"
	KeyProductFieldTooLarge   = "product.field_too_large"

	// Inventory
	KeyInventoryEmpty = "inventory.empty"
	KeyInventoryNone  = "inventory.none"

	// Sales
	KeySaleRegistered        = "sale.registered"
	KeySaleNoStock           = "sale.no_stock"
	KeySaleInsufficientStock = "sale.insufficient_stock"
	KeySalesEmpty            = "sales.empty"

	// Reports
	KeyReportNothingSold = "report.nothing_sold"

	// Export
	KeyExportDone = "export.done"

	// HTTP
	KeyRateLimited = "rate_limit.exceeded"

	// Terminal input
	KeyInputInvalidNumberKeep  = "input.invalid_number_keep"
	KeyInputInvalidIntegerKeep = "input.invalid_integer_keep"

	// Application
	KeyAppPause = "app.pause"

	// Console menus
	KeyMenuTitle          = "menu.title"
	KeyMenuChoose         = "menu.choose"
	KeyMenuList           = "menu.list"
	KeyMenuAdd            = "menu.add"
	KeyMenuUpdate         = "menu.update"
	KeyMenuDelete         = "menu.delete"
	KeyMenuSale           = "menu.sale"
	KeyMenuHistory        = "menu.history"
	KeyMenuReports        = "menu.reports"
	KeyMenuExport         = "menu.export"
	KeyMenuExit           = "menu.exit"
	KeyReportsTitle       = "reports.title"
	KeyReportsTop         = "reports.top"
	KeyReportsBrand       = "reports.brand"
	KeyReportsIncome      = "reports.income"
	KeyReportsPerformance = "reports.performance"
	KeyReportsBack        = "reports.back"

	// Section headers
	KeyHeaderInventory = "header.inventory"
	KeyHeaderAdd       = "header.add"
	KeyHeaderUpdate    = "header.update"
	KeyHeaderDelete    = "header.delete"
	KeyHeaderSale      = "header.sale"
	KeyHeaderHistory   = "header.history"
	KeyHeaderExport    = "header.export"

	// Prompts
	KeyPromptName         = "prompt.name"
	KeyPromptBrand        = "prompt.brand"
	KeyPromptCategory     = "prompt.category"
	KeyPromptPrice        = "prompt.price"
	KeyPromptStock        = "prompt.stock"
	KeyPromptWarranty     = "prompt.warranty"
	KeyPromptUpdateID     = "prompt.update_id"
	KeyPromptDeleteID     = "prompt.delete_id"
	KeyPromptSaleID       = "prompt.sale_id"
	KeyPromptNewName      = "prompt.new_name"
	KeyPromptNewBrand     = "prompt.new_brand"
	KeyPromptNewCategory  = "prompt.new_category"
	KeyPromptNewPrice     = "prompt.new_price"
	KeyPromptNewStock     = "prompt.new_stock"
	KeyPromptNewWarranty  = "prompt.new_warranty"
	KeyPromptCustomerName = "prompt.customer_name"
	KeyPromptCustomerType = "prompt.customer_type"
	KeyPromptQuantity     = "prompt.quantity"

	// Customer types
	KeyCustomerTypes     = "customer.types"
	KeyCustomerRegular   = "customer.regular"
	KeyCustomerVIP       = "customer.vip"
	KeyCustomerWholesale = "customer.wholesale"
	KeyCustomerInvalid   = "customer.invalid"

	// Field labels
	KeyFieldUnitPrice = "field.unit_price"
	KeyFieldStock     = "field.stock"
	KeyFieldWarranty  = "field.warranty_months"
	KeyFieldName      = "field.name"
	KeyFieldBrand     = "field.brand"
	KeyFieldCategory  = "field.category"

	// Report rows
	KeyRowProduct         = "row.product"
	KeyRowSaleSummary     = "row.sale_summary"
	KeyRowSale            = "row.sale"
	KeyRowTopSeller       = "row.top_seller"
	KeyRowBrand           = "row.brand"
	KeyRowIncomeGross     = "row.income_gross"
	KeyRowIncomeDiscounts = "row.income_discounts"
	KeyRowIncomeNet       = "row.income_net"
	KeyRowPerformance     = "row.performance"
)
