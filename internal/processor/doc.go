// Package processor orchestrates the vocabulary pipeline: decode the input
// text, clean subtitle markup, count words, translate the survivors and
// write the report.
package processor
