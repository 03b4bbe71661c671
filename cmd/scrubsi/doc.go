// Command scrubsi removes known invisible Unicode characters from a text
// file and writes the cleaned copy to a new, non-colliding path.
package main
