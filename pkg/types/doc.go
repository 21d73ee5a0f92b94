// Package types defines the Conn capability, the Dialect choice, the Config
// used to open a database, and the sentinel errors shared by the attrschema
// packages.
package types
