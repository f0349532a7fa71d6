// Package utils provides small helpers shared across packages, such as
// normalising database column values into the string form item codes use.
package utils
