// Package schema provisions the product attribute tables.
//
// Every statement is a template with a single %[1]s verb standing for the
// table prefix. The prefix is substituted verbatim; callers must supply a
// value that is safe in identifier position.
package schema

// MySQL family DDL. Indexes are declared inline in CREATE TABLE.
const (
	mysqlCreateCategories = "CREATE TABLE IF NOT EXISTS `%[1]sproduct_attribute_categories` (\n" +
		"  `id` INT UNSIGNED NOT NULL AUTO_INCREMENT,\n" +
		"  `code` VARCHAR(64) NOT NULL,\n" +
		"  `label` VARCHAR(255) NOT NULL,\n" +
		"  `description` TEXT NULL,\n" +
		"  `sort_order` INT NOT NULL DEFAULT 0,\n" +
		"  `is_active` TINYINT(1) NOT NULL DEFAULT 1,\n" +
		"  `updated_at` TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,\n" +
		"  PRIMARY KEY (`id`),\n" +
		"  UNIQUE KEY `uniq_code` (`code`)\n" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4"

	mysqlCreateValues = "CREATE TABLE IF NOT EXISTS `%[1]sproduct_attribute_values` (\n" +
		"  `id` INT UNSIGNED NOT NULL AUTO_INCREMENT,\n" +
		"  `category_id` INT UNSIGNED NOT NULL,\n" +
		"  `value` VARCHAR(255) NOT NULL,\n" +
		"  `slug` VARCHAR(191) NOT NULL,\n" +
		"  `sort_order` INT NOT NULL DEFAULT 0,\n" +
		"  `is_active` TINYINT(1) NOT NULL DEFAULT 1,\n" +
		"  `updated_at` TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,\n" +
		"  PRIMARY KEY (`id`),\n" +
		"  UNIQUE KEY `uniq_category_slug` (`category_id`, `slug`),\n" +
		"  KEY `idx_category` (`category_id`)\n" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4"

	mysqlCreateAssignments = "CREATE TABLE IF NOT EXISTS `%[1]sproduct_attribute_assignments` (\n" +
		"  `id` INT UNSIGNED NOT NULL AUTO_INCREMENT,\n" +
		"  `product_id` INT UNSIGNED NOT NULL,\n" +
		"  `category_id` INT UNSIGNED NOT NULL,\n" +
		"  `value_id` INT UNSIGNED NOT NULL,\n" +
		"  `sort_order` INT NOT NULL DEFAULT 0,\n" +
		"  `updated_at` TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,\n" +
		"  PRIMARY KEY (`id`),\n" +
		"  UNIQUE KEY `uniq_product_category_value` (`product_id`, `category_id`, `value_id`),\n" +
		"  KEY `idx_product` (`product_id`),\n" +
		"  KEY `idx_category` (`category_id`),\n" +
		"  KEY `idx_value` (`value_id`)\n" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4"

	mysqlCreateCategoryAssignments = "CREATE TABLE IF NOT EXISTS `%[1]sproduct_attribute_category_assignments` (\n" +
		"  `id` INT UNSIGNED NOT NULL AUTO_INCREMENT,\n" +
		"  `product_id` INT UNSIGNED NOT NULL,\n" +
		"  `category_id` INT UNSIGNED NOT NULL,\n" +
		"  `updated_at` TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,\n" +
		"  PRIMARY KEY (`id`),\n" +
		"  UNIQUE KEY `uniq_product_category` (`product_id`, `category_id`),\n" +
		"  KEY `idx_product` (`product_id`),\n" +
		"  KEY `idx_category` (`category_id`)\n" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4"
)

// SQLite DDL. Uniqueness stays inline; lookup indexes are separate
// statements because index names are database-wide and carry the prefix.
const (
	sqliteCreateCategories = `CREATE TABLE IF NOT EXISTS "%[1]sproduct_attribute_categories" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    code TEXT NOT NULL,
    label TEXT NOT NULL,
    description TEXT,
    sort_order INTEGER NOT NULL DEFAULT 0,
    is_active INTEGER NOT NULL DEFAULT 1,
    updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (code)
)`

	sqliteCreateValues = `CREATE TABLE IF NOT EXISTS "%[1]sproduct_attribute_values" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    category_id INTEGER NOT NULL,
    value TEXT NOT NULL,
    slug TEXT NOT NULL,
    sort_order INTEGER NOT NULL DEFAULT 0,
    is_active INTEGER NOT NULL DEFAULT 1,
    updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (category_id, slug)
)`

	sqliteCreateAssignments = `CREATE TABLE IF NOT EXISTS "%[1]sproduct_attribute_assignments" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    product_id INTEGER NOT NULL,
    category_id INTEGER NOT NULL,
    value_id INTEGER NOT NULL,
    sort_order INTEGER NOT NULL DEFAULT 0,
    updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (product_id, category_id, value_id)
)`

	sqliteCreateCategoryAssignments = `CREATE TABLE IF NOT EXISTS "%[1]sproduct_attribute_category_assignments" (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    product_id INTEGER NOT NULL,
    category_id INTEGER NOT NULL,
    updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (product_id, category_id)
)`
)

const (
	sqliteIdxValuesCategory              = `CREATE INDEX IF NOT EXISTS "%[1]sproduct_attribute_values_category_idx" ON "%[1]sproduct_attribute_values" (category_id)`
	sqliteIdxAssignmentsProduct          = `CREATE INDEX IF NOT EXISTS "%[1]sproduct_attribute_assignments_product_idx" ON "%[1]sproduct_attribute_assignments" (product_id)`
	sqliteIdxAssignmentsCategory         = `CREATE INDEX IF NOT EXISTS "%[1]sproduct_attribute_assignments_category_idx" ON "%[1]sproduct_attribute_assignments" (category_id)`
	sqliteIdxAssignmentsValue            = `CREATE INDEX IF NOT EXISTS "%[1]sproduct_attribute_assignments_value_idx" ON "%[1]sproduct_attribute_assignments" (value_id)`
	sqliteIdxCategoryAssignmentsProduct  = `CREATE INDEX IF NOT EXISTS "%[1]sproduct_attribute_category_assignments_product_idx" ON "%[1]sproduct_attribute_category_assignments" (product_id)`
	sqliteIdxCategoryAssignmentsCategory = `CREATE INDEX IF NOT EXISTS "%[1]sproduct_attribute_category_assignments_category_idx" ON "%[1]sproduct_attribute_category_assignments" (category_id)`
)

// mysqlDDL lists the MySQL family statements in execution order.
var mysqlDDL = []string{
	mysqlCreateCategories,
	mysqlCreateValues,
	mysqlCreateAssignments,
	mysqlCreateCategoryAssignments,
}

// sqliteDDL lists the SQLite statements in execution order. Each index
// follows the table it belongs to.
var sqliteDDL = []string{
	sqliteCreateCategories,
	sqliteCreateValues,
	sqliteIdxValuesCategory,
	sqliteCreateAssignments,
	sqliteIdxAssignmentsProduct,
	sqliteIdxAssignmentsCategory,
	sqliteIdxAssignmentsValue,
	sqliteCreateCategoryAssignments,
	sqliteIdxCategoryAssignmentsProduct,
	sqliteIdxCategoryAssignmentsCategory,
}
