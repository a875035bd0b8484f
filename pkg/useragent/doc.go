// Package useragent derives a short, human-readable label from a raw
// User-Agent header. Session records keep the raw string; the label is for
// logs and session listings ("Chrome on macOS, desktop").
package useragent
