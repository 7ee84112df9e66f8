// Package spreadsheet reads workbook sheets into tables using excelize.
package spreadsheet
