// Package sanitizer normalizes untrusted input before validation and
// storage. Email normalization keeps one canonical representation per
// address so lookups and uniqueness checks agree.
package sanitizer
