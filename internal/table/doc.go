// Package table models tabular data read from workbooks and delimited text.
// Every cell is tagged with the scalar kind it had in the source, so missing values
// stay distinguishable from empty strings until the output boundary.
package table
